package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("accepts HH:MM", func(t *testing.T) {
		ts, err := NewTimeStringFromString("09:30")
		require.NoError(t, err)
		assert.Equal(t, TimeString("09:30"), ts)
	})

	t.Run("accepts HH:MM:SS and drops seconds", func(t *testing.T) {
		ts, err := NewTimeStringFromString("09:30:45")
		require.NoError(t, err)
		assert.Equal(t, TimeString("09:30"), ts)
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		for _, input := range []string{"", "9:3", "25:00", "12:60", "noon", "12-30"} {
			_, err := NewTimeStringFromString(input)
			require.ErrorIs(t, err, ErrInvalidTimeString, "input %q", input)
		}
	})
}

func TestAddMinutes(t *testing.T) {
	t.Run("carries across the hour boundary", func(t *testing.T) {
		ts, err := TimeString("09:45").AddMinutes(30)
		require.NoError(t, err)
		assert.Equal(t, TimeString("10:15"), ts)
	})

	t.Run("zero-pads the result", func(t *testing.T) {
		ts, err := TimeString("08:55").AddMinutes(10)
		require.NoError(t, err)
		assert.Equal(t, TimeString("09:05"), ts)
	})

	t.Run("fails when leaving the day range", func(t *testing.T) {
		_, err := TimeString("23:45").AddMinutes(30)
		require.ErrorIs(t, err, ErrTimeOutOfRange)
	})
}

func TestOrdering(t *testing.T) {
	// Нули ведущих разрядов делают лексикографический порядок хронологическим
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("09:59").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:01").IsAfter("10:00"))
	assert.True(t, TimeString("10:00").Equal("10:00"))
}

func TestOnDate(t *testing.T) {
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	ts, err := TimeString("14:30").OnDate(date)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 16, 14, 30, 0, 0, time.UTC), ts)
}

func TestScan(t *testing.T) {
	t.Run("from string", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("10:00:00"))
		assert.Equal(t, TimeString("10:00"), ts)
	})

	t.Run("from bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("10:30")))
		assert.Equal(t, TimeString("10:30"), ts)
	})

	t.Run("from time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2026, 3, 16, 7, 5, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("07:05"), ts)
	})

	t.Run("nil resets the value", func(t *testing.T) {
		ts := TimeString("10:00")
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})
}

func TestValue(t *testing.T) {
	t.Run("valid time", func(t *testing.T) {
		v, err := TimeString("10:00").Value()
		require.NoError(t, err)
		assert.Equal(t, "10:00", v)
	})

	t.Run("zero value maps to NULL", func(t *testing.T) {
		v, err := TimeString("").Value()
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("invalid value is rejected", func(t *testing.T) {
		_, err := TimeString("25:00").Value()
		require.ErrorIs(t, err, ErrInvalidTimeString)
	})
}
