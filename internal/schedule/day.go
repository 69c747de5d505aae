package schedule

import "strings"

// DayCode identifies a day of the week using the catalog's symbolic codes,
// where Tuesday ("T") and Thursday ("TH") are distinct tokens.
type DayCode string

const (
	Monday    DayCode = "M"
	Tuesday   DayCode = "T"
	Wednesday DayCode = "W"
	Thursday  DayCode = "TH"
	Friday    DayCode = "F"
	Saturday  DayCode = "S"
	Sunday    DayCode = "SU"
)

// AllDays lists every day code in canonical Monday-to-Sunday order.
var AllDays = []DayCode{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayOrder = map[DayCode]int{
	Monday:    0,
	Tuesday:   1,
	Wednesday: 2,
	Thursday:  3,
	Friday:    4,
	Saturday:  5,
	Sunday:    6,
}

// Valid reports whether the code is one of the seven known day tokens.
func (day DayCode) Valid() bool {
	_, ok := dayOrder[day]
	return ok
}

// tokenizeDays resolves a raw day field into day codes. Codes may be joined
// by "/" or written as a compact run ("MWF", "TTH"); two-letter codes win
// over their one-letter prefixes, so "TTH" is Tuesday then Thursday.
// Duplicates collapse, token order is preserved. A field containing anything
// that is not a day code resolves to nil.
func tokenizeDays(field string) []DayCode {
	days := make([]DayCode, 0, 3)
	seen := make(map[DayCode]bool)

	for _, chunk := range strings.Split(strings.ToUpper(field), "/") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			return nil
		}

		for position := 0; position < len(chunk); {
			var day DayCode
			switch {
			case strings.HasPrefix(chunk[position:], string(Thursday)):
				day = Thursday
			case strings.HasPrefix(chunk[position:], string(Sunday)):
				day = Sunday
			default:
				day = DayCode(chunk[position : position+1])
				if !day.Valid() {
					return nil
				}
			}
			position += len(day)

			if !seen[day] {
				seen[day] = true
				days = append(days, day)
			}
		}
	}

	return days
}
