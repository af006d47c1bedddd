package occupancy

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMP-AppointmentService/internal/domain"
)

// Service собирает занятость профессионала на дату из обоих источников записей
// Источники независимы и читаются параллельно; результат - объединенное
// множество нормализованных времен "HH:MM". Какой workflow создал запись,
// для занятости значения не имеет.
type Service struct {
	publicBookings OccupancyReader
	agendaEntries  OccupancyReader
	logger         Logger
}

// NewService создает новый сервис занятости
func NewService(publicBookings, agendaEntries OccupancyReader, logger Logger) *Service {
	return &Service{
		publicBookings: publicBookings,
		agendaEntries:  agendaEntries,
		logger:         logger,
	}
}

// readResult результат чтения одного источника занятости
type readResult struct {
	records []domain.OccupancyRecord
	err     error
}

// ListOccupiedTimes возвращает множество занятых времен на дату
// Оба источника читаются параллельно; порядок между ними не гарантируется
// и не требуется - результат объединяется в множество
func (s *Service) ListOccupiedTimes(ctx context.Context, professionalID int64, date time.Time) (domain.OccupiedTimes, error) {
	results := make(chan readResult, 2)

	read := func(reader OccupancyReader) {
		records, err := reader.ListOccupancy(ctx, professionalID, date)
		results <- readResult{records: records, err: err}
	}

	go read(s.publicBookings)
	go read(s.agendaEntries)

	occupied := make(domain.OccupiedTimes)
	for i := 0; i < 2; i++ {
		result := <-results
		if result.err != nil {
			s.logger.Error("ListOccupiedTimes: source read failed for professional=%d, date=%s: %v",
				professionalID, date.Format(domain.DateFormat), result.err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, result.err)
		}
		for _, record := range result.records {
			occupied.Add(record.StartTime)
		}
	}

	s.logger.Info("ListOccupiedTimes: professional=%d, date=%s, occupied=%d",
		professionalID, date.Format(domain.DateFormat), len(occupied))

	return occupied, nil
}
