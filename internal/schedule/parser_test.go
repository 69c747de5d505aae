package schedule

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestParseSingleGroup(t *testing.T) {
	t.Run("Day, time and room", func(t *testing.T) {
		g := NewWithT(t)

		parsed := Parse("M/W/F | 9:00AM-10:30AM | ACAD309")

		g.Expect(parsed).NotTo(BeNil())
		g.Expect(parsed.Kind()).To(Equal(KindSingleSlot))
		g.Expect(parsed.IsTBA()).To(BeFalse())
		g.Expect(parsed.Slots()).To(HaveLen(1))

		slot := parsed.Slots()[0]
		g.Expect(slot.Days).To(Equal([]DayCode{Monday, Wednesday, Friday}))
		g.Expect(slot.StartTime).To(Equal("09:00"))
		g.Expect(slot.EndTime).To(Equal("10:30"))
		g.Expect(slot.Room).To(Equal("ACAD309"))
		g.Expect(slot.HasTimes()).To(BeTrue())
	})

	t.Run("Compact day run", func(t *testing.T) {
		g := NewWithT(t)

		parsed := Parse("TTH | 10:30AM-12:00PM | CASE123")

		g.Expect(parsed).NotTo(BeNil())
		g.Expect(parsed.Slots()).To(HaveLen(1))
		g.Expect(parsed.Slots()[0].Days).To(Equal([]DayCode{Tuesday, Thursday}))
		g.Expect(parsed.Slots()[0].StartTime).To(Equal("10:30"))
		g.Expect(parsed.Slots()[0].EndTime).To(Equal("12:00"))
	})

	t.Run("Missing room", func(t *testing.T) {
		g := NewWithT(t)

		parsed := Parse("S | 7:30AM-9:00AM")

		g.Expect(parsed).NotTo(BeNil())
		g.Expect(parsed.Slots()).To(HaveLen(1))
		g.Expect(parsed.Slots()[0].Room).To(BeEmpty())
	})

	t.Run("Whitespace around fields and boundaries", func(t *testing.T) {
		g := NewWithT(t)

		parsed := Parse("  m/w  |  9:00 AM - 10:30 AM  |  ACAD309  ")

		g.Expect(parsed).NotTo(BeNil())
		g.Expect(parsed.Slots()[0].Days).To(Equal([]DayCode{Monday, Wednesday}))
		g.Expect(parsed.Slots()[0].StartTime).To(Equal("09:00"))
		g.Expect(parsed.Slots()[0].EndTime).To(Equal("10:30"))
		g.Expect(parsed.Slots()[0].Room).To(Equal("ACAD309"))
	})

	t.Run("Midnight and noon boundaries", func(t *testing.T) {
		g := NewWithT(t)

		parsed := Parse("F | 12:00AM-12:00PM")

		g.Expect(parsed).NotTo(BeNil())
		g.Expect(parsed.Slots()[0].StartTime).To(Equal("00:00"))
		g.Expect(parsed.Slots()[0].EndTime).To(Equal("12:00"))
	})
}

func TestParseTBA(t *testing.T) {
	t.Run("Literal", func(t *testing.T) {
		g := NewWithT(t)

		for _, raw := range []string{"TBA", "tba", " Tba "} {
			parsed := Parse(raw)

			g.Expect(parsed).NotTo(BeNil(), "raw %q", raw)
			g.Expect(parsed.Kind()).To(Equal(KindTBA))
			g.Expect(parsed.IsTBA()).To(BeTrue())
			g.Expect(parsed.Slots()).To(BeEmpty())
			g.Expect(parsed.Raw()).To(Equal(raw))
		}
	})

	t.Run("TBA time field keeps the days", func(t *testing.T) {
		g := NewWithT(t)

		parsed := Parse("M/W | TBA | ACAD101")

		g.Expect(parsed).NotTo(BeNil())
		g.Expect(parsed.IsTBA()).To(BeFalse())
		g.Expect(parsed.Slots()).To(HaveLen(1))

		slot := parsed.Slots()[0]
		g.Expect(slot.Days).To(Equal([]DayCode{Monday, Wednesday}))
		g.Expect(slot.HasTimes()).To(BeFalse())
		g.Expect(slot.Room).To(Equal("ACAD101"))
	})

	t.Run("Day-only group", func(t *testing.T) {
		g := NewWithT(t)

		parsed := Parse("SU")

		g.Expect(parsed).NotTo(BeNil())
		g.Expect(parsed.Slots()).To(HaveLen(1))
		g.Expect(parsed.Slots()[0].Days).To(Equal([]DayCode{Sunday}))
		g.Expect(parsed.Slots()[0].HasTimes()).To(BeFalse())
	})
}

func TestParseMultipleGroups(t *testing.T) {
	t.Run("Two groups", func(t *testing.T) {
		g := NewWithT(t)

		parsed := Parse("M/W | 7:30AM-9:00AM | ACAD201 + S | 1:00PM-4:00PM | GYM")

		g.Expect(parsed).NotTo(BeNil())
		g.Expect(parsed.Kind()).To(Equal(KindMultiSlot))
		g.Expect(parsed.Slots()).To(HaveLen(2))

		g.Expect(parsed.Slots()[0].Days).To(Equal([]DayCode{Monday, Wednesday}))
		g.Expect(parsed.Slots()[0].StartTime).To(Equal("07:30"))
		g.Expect(parsed.Slots()[0].Room).To(Equal("ACAD201"))

		g.Expect(parsed.Slots()[1].Days).To(Equal([]DayCode{Saturday}))
		g.Expect(parsed.Slots()[1].StartTime).To(Equal("13:00"))
		g.Expect(parsed.Slots()[1].EndTime).To(Equal("16:00"))
		g.Expect(parsed.Slots()[1].Room).To(Equal("GYM"))
	})

	t.Run("Roomless group inherits the first explicit room", func(t *testing.T) {
		g := NewWithT(t)

		parsed := Parse("M | 9:00AM-10:00AM + W | 2:00PM-3:00PM | ACAD101")

		g.Expect(parsed).NotTo(BeNil())
		g.Expect(parsed.Slots()).To(HaveLen(2))
		g.Expect(parsed.Slots()[0].Room).To(Equal("ACAD101"))
		g.Expect(parsed.Slots()[1].Room).To(Equal("ACAD101"))
	})

	t.Run("No room anywhere stays roomless", func(t *testing.T) {
		g := NewWithT(t)

		parsed := Parse("M | 9:00AM-10:00AM + W | 2:00PM-3:00PM")

		g.Expect(parsed).NotTo(BeNil())
		g.Expect(parsed.Slots()[0].Room).To(BeEmpty())
		g.Expect(parsed.Slots()[1].Room).To(BeEmpty())
	})
}

func TestParseMultipleRanges(t *testing.T) {
	t.Run("Positional pairing when counts match", func(t *testing.T) {
		g := NewWithT(t)

		parsed := Parse("T/TH | 9:00AM-10:00AM,1:00PM-2:30PM | CASE204")

		g.Expect(parsed).NotTo(BeNil())
		g.Expect(parsed.Kind()).To(Equal(KindMultiSlot))
		g.Expect(parsed.Slots()).To(HaveLen(2))

		g.Expect(parsed.Slots()[0].Days).To(Equal([]DayCode{Tuesday}))
		g.Expect(parsed.Slots()[0].StartTime).To(Equal("09:00"))
		g.Expect(parsed.Slots()[0].EndTime).To(Equal("10:00"))

		g.Expect(parsed.Slots()[1].Days).To(Equal([]DayCode{Thursday}))
		g.Expect(parsed.Slots()[1].StartTime).To(Equal("13:00"))
		g.Expect(parsed.Slots()[1].EndTime).To(Equal("14:30"))
	})

	t.Run("Slash-separated ranges", func(t *testing.T) {
		g := NewWithT(t)

		parsed := Parse("M/W | 8:00AM-9:00AM/3:00PM-4:00PM")

		g.Expect(parsed).NotTo(BeNil())
		g.Expect(parsed.Slots()).To(HaveLen(2))
		g.Expect(parsed.Slots()[0].Days).To(Equal([]DayCode{Monday}))
		g.Expect(parsed.Slots()[1].Days).To(Equal([]DayCode{Wednesday}))
	})

	t.Run("Mismatched counts pair every day with every range", func(t *testing.T) {
		g := NewWithT(t)

		parsed := Parse("M/W/F | 9:00AM-10:00AM,1:00PM-2:00PM")

		g.Expect(parsed).NotTo(BeNil())
		g.Expect(parsed.Slots()).To(HaveLen(2))
		g.Expect(parsed.Slots()[0].Days).To(Equal([]DayCode{Monday, Wednesday, Friday}))
		g.Expect(parsed.Slots()[1].Days).To(Equal([]DayCode{Monday, Wednesday, Friday}))
		g.Expect(parsed.Slots()[0].StartTime).To(Equal("09:00"))
		g.Expect(parsed.Slots()[1].StartTime).To(Equal("13:00"))
	})
}

func TestParseRejectsMalformedSchedules(t *testing.T) {
	g := NewWithT(t)

	raws := []string{
		"",
		"   ",
		"X | 9:00AM-10:00AM",
		"M/X | 9:00AM-10:00AM",
		"M | 9:00AM",
		"M | 9:00-10:00",
		"M | 13:00PM-2:00PM",
		"M | 9:60AM-10:00AM",
		"M | 10:00AM-9:00AM",
		"M | 9:00AM-9:00AM",
		"M | ,",
		"M | 9:00AM-10:00AM + X | 1:00PM-2:00PM",
		"+ M | 9:00AM-10:00AM",
	}

	for _, raw := range raws {
		g.Expect(Parse(raw)).To(BeNil(), "raw %q", raw)
	}
}

func TestParsedScheduleDerivedAccessors(t *testing.T) {
	t.Run("Days union in canonical order", func(t *testing.T) {
		g := NewWithT(t)

		parsed := Parse("F | 7:30AM-9:00AM + M/W | 1:00PM-2:00PM + W | 4:00PM-5:00PM")

		g.Expect(parsed).NotTo(BeNil())
		g.Expect(parsed.Days()).To(Equal([]DayCode{Monday, Wednesday, Friday}))
	})

	t.Run("Boundaries come from the first slot", func(t *testing.T) {
		g := NewWithT(t)

		parsed := Parse("F | 7:30AM-9:00AM + M | 1:00PM-2:00PM")

		g.Expect(parsed).NotTo(BeNil())
		g.Expect(parsed.StartTime()).To(Equal("07:30"))
		g.Expect(parsed.EndTime()).To(Equal("09:00"))
	})

	t.Run("TBA yields no days and no boundaries", func(t *testing.T) {
		g := NewWithT(t)

		parsed := Parse("TBA")

		g.Expect(parsed.Days()).To(BeEmpty())
		g.Expect(parsed.StartTime()).To(BeEmpty())
		g.Expect(parsed.EndTime()).To(BeEmpty())
	})

	t.Run("Raw survives normalization", func(t *testing.T) {
		g := NewWithT(t)

		raw := "M/W/F | 9:00AM-10:30AM | ACAD309"
		parsed := Parse(raw)

		g.Expect(parsed.Raw()).To(Equal(raw))
	})
}
