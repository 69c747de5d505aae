package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeDays(t *testing.T) {
	// Arrange
	scenarios := []struct {
		field    string
		expected []DayCode
	}{
		{"M", []DayCode{Monday}},
		{"M/W/F", []DayCode{Monday, Wednesday, Friday}},
		{"MWF", []DayCode{Monday, Wednesday, Friday}},
		{"TTH", []DayCode{Tuesday, Thursday}},
		{"T/TH", []DayCode{Tuesday, Thursday}},
		{"THS", []DayCode{Thursday, Saturday}},
		{"SSU", []DayCode{Saturday, Sunday}},
		{"su/m", []DayCode{Sunday, Monday}},
		{"F/M/W", []DayCode{Friday, Monday, Wednesday}},
		{"M/M/M", []DayCode{Monday}},
		{" m / w ", []DayCode{Monday, Wednesday}},
	}

	for _, scenario := range scenarios {
		// Act
		days := tokenizeDays(scenario.field)

		// Assert
		assert.Equal(t, scenario.expected, days, "field %q", scenario.field)
	}
}

func TestTokenizeDaysRejectsUnknownTokens(t *testing.T) {
	// Arrange
	fields := []string{"", "   ", "X", "M/X", "MO", "TU", "M//W", "/M", "9:00AM"}

	for _, field := range fields {
		// Act
		days := tokenizeDays(field)

		// Assert
		assert.Nil(t, days, "field %q", field)
	}
}

func TestDayCodeValid(t *testing.T) {
	for _, day := range AllDays {
		assert.True(t, day.Valid())
	}

	assert.False(t, DayCode("X").Valid())
	assert.False(t, DayCode("").Valid())
	assert.False(t, DayCode("m").Valid())
}
