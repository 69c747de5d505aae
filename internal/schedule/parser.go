package schedule

import "strings"

const tbaLiteral = "TBA"

// Parse normalizes a raw meeting-schedule string into a ParsedSchedule.
//
// The grammar is one or more slot-groups joined by "+", each group being
// "|"-separated day, time and room fields: day codes joined by "/" (compact
// runs such as "MWF" or "TTH" are accepted), one or more 12-hour
// "start-end" ranges joined by "," or "/", and an optional room. A time
// field of "TBA" (or none at all) yields a slot with known days and absent
// boundaries.
//
// Parse returns nil on any syntax it cannot fully account for: one bad
// boundary or one group without a valid day poisons the entire string. The
// bare literal "TBA" is the one exception, a valid schedule with no slots.
func Parse(raw string) *ParsedSchedule {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if strings.EqualFold(trimmed, tbaLiteral) {
		return newTBASchedule(raw)
	}

	slots := make([]TimeSlot, 0, 2)
	for _, group := range strings.Split(trimmed, "+") {
		groupSlots, ok := parseGroup(group)
		if !ok {
			return nil
		}
		slots = append(slots, groupSlots...)
	}

	inheritRoom(slots)
	return newSlotSchedule(raw, slots)
}

// parseGroup resolves one slot-group into its slots. ok is false when the
// group yields no valid slot, which invalidates the whole schedule.
func parseGroup(group string) ([]TimeSlot, bool) {
	//** Split the group into day, time and room fields
	fields := strings.Split(group, "|")
	for i, field := range fields {
		fields[i] = strings.TrimSpace(field)
	}

	days := tokenizeDays(fields[0])
	if len(days) == 0 {
		return nil, false
	}

	timeField := ""
	if len(fields) > 1 {
		timeField = fields[1]
	}
	room := ""
	if len(fields) > 2 {
		room = fields[2]
	}

	//** A missing or TBA time field keeps the days with absent boundaries
	if timeField == "" || strings.EqualFold(timeField, tbaLiteral) {
		return []TimeSlot{{Days: days, Room: room}}, true
	}

	//** Convert every range boundary to 24-hour clocks
	type timeRange struct {
		start string
		end   string
	}
	tokens := splitRanges(timeField)
	if len(tokens) == 0 {
		return nil, false
	}
	ranges := make([]timeRange, 0, len(tokens))
	for _, token := range tokens {
		startToken, endToken, found := strings.Cut(token, "-")
		if !found {
			return nil, false
		}
		start, ok := ToClock(startToken)
		if !ok {
			return nil, false
		}
		end, ok := ToClock(endToken)
		if !ok || start >= end {
			return nil, false
		}
		ranges = append(ranges, timeRange{start: start, end: end})
	}

	//** Pair days with ranges
	slots := make([]TimeSlot, 0, len(ranges))
	switch {
	case len(ranges) == 1:
		// One range covers every listed day.
		slots = append(slots, TimeSlot{
			Days:      days,
			StartTime: ranges[0].start,
			EndTime:   ranges[0].end,
			Room:      room,
		})
	case len(days) == len(ranges):
		// Positional pairing: day i meets during range i.
		for i, r := range ranges {
			slots = append(slots, TimeSlot{
				Days:      []DayCode{days[i]},
				StartTime: r.start,
				EndTime:   r.end,
				Room:      room,
			})
		}
	default:
		// Mismatched counts cannot be paired unambiguously; associate the
		// full day union with every range.
		for _, r := range ranges {
			slots = append(slots, TimeSlot{
				Days:      days,
				StartTime: r.start,
				EndTime:   r.end,
				Room:      room,
			})
		}
	}

	return slots, true
}

// splitRanges splits a time field into its "start-end" tokens, which may be
// joined by "," or "/".
func splitRanges(field string) []string {
	tokens := strings.FieldsFunc(field, func(r rune) bool {
		return r == ',' || r == '/'
	})
	ranges := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token != "" {
			ranges = append(ranges, token)
		}
	}
	return ranges
}

// inheritRoom fills slots that carry no room with the schedule's inferred
// room, the first explicit room appearing in any group. Schedules with no
// room anywhere stay roomless.
func inheritRoom(slots []TimeSlot) {
	inferred := ""
	for _, slot := range slots {
		if slot.Room != "" {
			inferred = slot.Room
			break
		}
	}
	if inferred == "" {
		return
	}
	for i := range slots {
		if slots[i].Room == "" {
			slots[i].Room = inferred
		}
	}
}
