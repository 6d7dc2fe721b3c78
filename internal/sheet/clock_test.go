package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in     string
		h, m   int
		wantOK bool
	}{
		{"00:00", 0, 0, true},
		{"02:30", 2, 30, true},
		{"23:59", 23, 59, true},
		{"7:05", 7, 5, true},
		{" 01:00 ", 1, 0, true},
		{"", 0, 0, false},
		{"24:00", 0, 0, false},
		{"12:60", 0, 0, false},
		{"12:5", 0, 0, false},
		{"ab:cd", 0, 0, false},
		{"-1:00", 0, 0, false},
		{"+1:00", 0, 0, false},
		{"1230", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			h, m, ok := ParseClock(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.h, h)
			assert.Equal(t, tt.m, m)
		})
	}
}

func TestClockHours(t *testing.T) {
	assert.Equal(t, 2.5, ClockHours("02:30"))
	assert.Equal(t, 1.0, ClockHours("01:00"))
	assert.InDelta(t, 0.0833, ClockHours("00:05"), 0.0001)
	assert.Equal(t, 0.0, ClockHours(""))
	assert.Equal(t, 0.0, ClockHours("soon"))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"10/21/2026", "10/21/2026", true},
		{"1/2/2027", "01/02/2027", true},
		{"2026-12-01", "12/01/2026", true},
		{"12-01-2026", "12/01/2026", true},
		{" 2026-10-20 ", "10/20/2026", true},
		{"13/45/2026", "", false},
		{"next week", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseDate(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestOptionSets(t *testing.T) {
	assert.Len(t, CategoryOptions, 4)
	assert.Len(t, SubcategoryOptions, 13)
	assert.Len(t, JobOptions, 13)

	assert.Len(t, StatusOptions, 12)
	assert.Equal(t, "100", StatusOptions[0])
	assert.Equal(t, "45", StatusOptions[11])

	assert.Len(t, TimeOptions, 288)
	assert.Equal(t, "00:00", TimeOptions[0])
	assert.Equal(t, "00:05", TimeOptions[1])
	assert.Equal(t, "23:55", TimeOptions[287])
	for _, opt := range TimeOptions {
		_, _, ok := ParseClock(opt)
		assert.True(t, ok, opt)
	}
}
