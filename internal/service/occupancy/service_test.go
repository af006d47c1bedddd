package occupancy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMP-AppointmentService/internal/domain"
	"github.com/m04kA/SMP-AppointmentService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type readerStub struct {
	records []domain.OccupancyRecord
	err     error
}

func (s *readerStub) ListOccupancy(ctx context.Context, professionalID int64, date time.Time) ([]domain.OccupancyRecord, error) {
	return s.records, s.err
}

func records(source domain.OccupancySource, times ...string) []domain.OccupancyRecord {
	result := make([]domain.OccupancyRecord, len(times))
	for i, t := range times {
		result[i] = domain.OccupancyRecord{StartTime: types.TimeString(t), Source: source}
	}
	return result
}

func TestListOccupiedTimes(t *testing.T) {
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	t.Run("unions both sources", func(t *testing.T) {
		svc := NewService(
			&readerStub{records: records(domain.SourcePublicBooking, "10:00", "11:00")},
			&readerStub{records: records(domain.SourceAgendaEntry, "11:00", "14:30")},
			nopLogger{},
		)

		occupied, err := svc.ListOccupiedTimes(context.Background(), 7, date)
		require.NoError(t, err)

		// 11:00 встречается в обоих источниках, множество содержит его один раз
		assert.Len(t, occupied, 3)
		assert.True(t, occupied.Contains("10:00"))
		assert.True(t, occupied.Contains("11:00"))
		assert.True(t, occupied.Contains("14:30"))
	})

	t.Run("empty sources yield empty set", func(t *testing.T) {
		svc := NewService(&readerStub{}, &readerStub{}, nopLogger{})

		occupied, err := svc.ListOccupiedTimes(context.Background(), 7, date)
		require.NoError(t, err)

		assert.Empty(t, occupied)
	})

	t.Run("failure of either source fails the read", func(t *testing.T) {
		// Нельзя молча отдать частичную занятость: движок слотов
		// пометил бы занятые времена как свободные
		svc := NewService(
			&readerStub{records: records(domain.SourcePublicBooking, "10:00")},
			&readerStub{err: errors.New("agenda storage down")},
			nopLogger{},
		)

		_, err := svc.ListOccupiedTimes(context.Background(), 7, date)
		require.ErrorIs(t, err, ErrInternal)
	})
}
