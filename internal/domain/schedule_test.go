package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayFromDate(t *testing.T) {
	// 15 марта 2026 - воскресенье
	sunday := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, Sunday, WeekdayFromDate(sunday))
	assert.Equal(t, Monday, WeekdayFromDate(sunday.AddDate(0, 0, 1)))
	assert.Equal(t, Saturday, WeekdayFromDate(sunday.AddDate(0, 0, 6)))
}

func TestWeekdayFromMondayBased(t *testing.T) {
	cases := []struct {
		in   int
		want Weekday
	}{
		{0, Monday},
		{1, Tuesday},
		{2, Wednesday},
		{3, Thursday},
		{4, Friday},
		{5, Saturday},
		{6, Sunday},
	}

	for _, tc := range cases {
		got, ok := WeekdayFromMondayBased(tc.in)
		assert.True(t, ok)
		assert.Equal(t, tc.want, got, "monday-based %d", tc.in)
	}

	_, ok := WeekdayFromMondayBased(7)
	assert.False(t, ok)
	_, ok = WeekdayFromMondayBased(-1)
	assert.False(t, ok)
}

func TestWeekdayIsValid(t *testing.T) {
	assert.True(t, Sunday.IsValid())
	assert.True(t, Saturday.IsValid())
	assert.False(t, Weekday(7).IsValid())
	assert.False(t, Weekday(-1).IsValid())
}

func TestWorkingWindowIsWellFormed(t *testing.T) {
	well := WorkingWindow{StartTime: "09:00", EndTime: "18:00", StepMinutes: 30}
	assert.True(t, well.IsWellFormed())

	zeroStep := WorkingWindow{StartTime: "09:00", EndTime: "18:00", StepMinutes: 0}
	assert.False(t, zeroStep.IsWellFormed())

	inverted := WorkingWindow{StartTime: "18:00", EndTime: "09:00", StepMinutes: 30}
	assert.False(t, inverted.IsWellFormed())

	empty := WorkingWindow{StartTime: "09:00", EndTime: "09:00", StepMinutes: 30}
	assert.False(t, empty.IsWellFormed())
}
