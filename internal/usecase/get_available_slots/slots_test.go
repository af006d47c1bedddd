package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMP-AppointmentService/internal/domain"
	"github.com/m04kA/SMP-AppointmentService/pkg/types"
)

// nopLogger заглушка логгера для тестов
type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func window(start, end string, step int) domain.WorkingWindow {
	return domain.WorkingWindow{
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		StepMinutes: step,
	}
}

func slotTimes(slots []domain.Slot) []string {
	times := make([]string, len(slots))
	for i, slot := range slots {
		times[i] = slot.StartTime.String()
	}
	return times
}

func TestGenerateWindowSlots(t *testing.T) {
	t.Run("steps from start and excludes end", func(t *testing.T) {
		slots, err := generateWindowSlots(window("09:00", "10:00", 20))
		require.NoError(t, err)

		assert.Equal(t, []types.TimeString{"09:00", "09:20", "09:40"}, slots)
	})

	t.Run("carries across the hour boundary", func(t *testing.T) {
		slots, err := generateWindowSlots(window("09:50", "10:30", 15))
		require.NoError(t, err)

		assert.Equal(t, []types.TimeString{"09:50", "10:05", "10:20"}, slots)
	})

	t.Run("last slot before end is included", func(t *testing.T) {
		slots, err := generateWindowSlots(window("09:00", "09:31", 15))
		require.NoError(t, err)

		// 09:30 < 09:31, поэтому слот входит
		assert.Equal(t, []types.TimeString{"09:00", "09:15", "09:30"}, slots)
	})

	t.Run("stops at the end of day", func(t *testing.T) {
		slots, err := generateWindowSlots(window("23:00", "23:59", 30))
		require.NoError(t, err)

		assert.Equal(t, []types.TimeString{"23:00", "23:30"}, slots)
	})

	t.Run("rejects non-positive step", func(t *testing.T) {
		_, err := generateWindowSlots(window("09:00", "10:00", 0))
		require.ErrorIs(t, err, ErrInvalidWindowConfig)
	})

	t.Run("rejects start not before end", func(t *testing.T) {
		_, err := generateWindowSlots(window("10:00", "10:00", 15))
		require.ErrorIs(t, err, ErrInvalidWindowConfig)

		_, err = generateWindowSlots(window("12:00", "10:00", 15))
		require.ErrorIs(t, err, ErrInvalidWindowConfig)
	})
}

func TestComputeSlots(t *testing.T) {
	log := nopLogger{}

	t.Run("marks occupied times as unavailable", func(t *testing.T) {
		windows := []domain.WorkingWindow{window("09:00", "10:00", 20)}
		occupied := domain.OccupiedTimes{}
		occupied.Add("09:20")

		slots := computeSlots(windows, occupied, log)

		require.Len(t, slots, 3)
		assert.True(t, slots[0].Available)
		assert.False(t, slots[1].Available)
		assert.True(t, slots[2].Available)
	})

	t.Run("no windows produce empty slice", func(t *testing.T) {
		slots := computeSlots(nil, domain.OccupiedTimes{}, log)

		require.NotNil(t, slots)
		assert.Empty(t, slots)
	})

	t.Run("merges windows in chronological order", func(t *testing.T) {
		// Окна заданы не по порядку
		windows := []domain.WorkingWindow{
			window("14:00", "15:00", 30),
			window("09:00", "10:00", 30),
		}

		slots := computeSlots(windows, domain.OccupiedTimes{}, log)

		assert.Equal(t, []string{"09:00", "09:30", "14:00", "14:30"}, slotTimes(slots))
	})

	t.Run("deduplicates overlapping windows", func(t *testing.T) {
		windows := []domain.WorkingWindow{
			window("09:00", "10:00", 30),
			window("09:30", "10:30", 30),
		}

		slots := computeSlots(windows, domain.OccupiedTimes{}, log)

		assert.Equal(t, []string{"09:00", "09:30", "10:00"}, slotTimes(slots))
	})

	t.Run("malformed window does not break the others", func(t *testing.T) {
		windows := []domain.WorkingWindow{
			window("09:00", "10:00", 30),
			window("12:00", "11:00", 30), // start после end
			window("14:00", "15:00", 0),  // нулевой шаг
			window("16:00", "17:00", 30),
		}

		slots := computeSlots(windows, domain.OccupiedTimes{}, log)

		assert.Equal(t, []string{"09:00", "09:30", "16:00", "16:30"}, slotTimes(slots))
	})

	t.Run("deterministic for the same input", func(t *testing.T) {
		windows := []domain.WorkingWindow{
			window("09:00", "12:00", 45),
			window("10:00", "11:00", 20),
		}
		occupied := domain.OccupiedTimes{}
		occupied.Add("10:30")

		first := computeSlots(windows, occupied, log)
		second := computeSlots(windows, occupied, log)

		assert.Equal(t, first, second)
	})

	t.Run("occupancy from any source hides the slot", func(t *testing.T) {
		// Источник занятости не различается: занятое время просто занято
		windows := []domain.WorkingWindow{window("09:00", "11:00", 60)}
		occupied := domain.OccupiedTimes{}
		occupied.Add("09:00")
		occupied.Add("10:00")

		slots := computeSlots(windows, occupied, log)

		require.Len(t, slots, 2)
		assert.False(t, slots[0].Available)
		assert.False(t, slots[1].Available)
	})
}
