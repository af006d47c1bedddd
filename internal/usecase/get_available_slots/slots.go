package get_available_slots

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMP-AppointmentService/internal/domain"
	"github.com/m04kA/SMP-AppointmentService/pkg/types"
)

// generateWindowSlots генерирует кандидатов слотов одного рабочего окна
// Начинаем с startTime, добавляем stepMinutes через арифметику минут дня
// (не конкатенацию строк - перенос через границу часа обязан быть точным).
// Интервал полуоткрытый [start, end): endTime никогда не предлагается.
func generateWindowSlots(window domain.WorkingWindow) ([]types.TimeString, error) {
	if window.StepMinutes <= 0 {
		return nil, fmt.Errorf("%w: step must be positive, got %d", ErrInvalidWindowConfig, window.StepMinutes)
	}
	if !window.StartTime.IsBefore(window.EndTime) {
		return nil, fmt.Errorf("%w: start %s must be before end %s", ErrInvalidWindowConfig, window.StartTime, window.EndTime)
	}

	slots := make([]types.TimeString, 0)
	current := window.StartTime

	for current.IsBefore(window.EndTime) {
		slots = append(slots, current)

		next, err := current.AddMinutes(window.StepMinutes)
		if err != nil {
			// Следующий шаг вышел за пределы суток - окно исчерпано
			break
		}
		current = next
	}

	return slots, nil
}

// computeSlots вычисляет слоты дня по рабочим окнам и занятости
// Чистая детерминированная функция: результат зависит только от входа,
// побочных эффектов нет, безопасна для конкурентных вызовов.
//
// Окна обрабатываются независимо, результат объединяется с дедупликацией
// (окна могут пересекаться или идти не по порядку) и сортируется по времени.
// Некорректное окно (шаг <= 0, start >= end) пропускается с предупреждением,
// не ломая вклад остальных окон. Ноль окон - пустой список, не ошибка.
func computeSlots(windows []domain.WorkingWindow, occupied domain.OccupiedTimes, logger Logger) []domain.Slot {
	seen := make(map[types.TimeString]struct{})
	result := make([]domain.Slot, 0)

	for _, window := range windows {
		windowSlots, err := generateWindowSlots(window)
		if err != nil {
			logger.Warn("computeSlots: skipping window id=%d (professional=%d, weekday=%s): %v",
				window.ID, window.ProfessionalID, window.Weekday, err)
			continue
		}

		for _, startTime := range windowSlots {
			if _, ok := seen[startTime]; ok {
				continue
			}
			seen[startTime] = struct{}{}

			result = append(result, domain.Slot{
				StartTime: startTime,
				Available: !occupied.Contains(startTime),
			})
		}
	}

	// Нули ведущих разрядов гарантированы форматом HH:MM,
	// поэтому лексикографический порядок совпадает с хронологическим
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime.IsBefore(result[j].StartTime)
	})

	return result
}

// isInFuture проверяет, что дата+время строго позже now
// Дата и время комбинируются в одной (локальной) временной зоне
func isInFuture(date time.Time, startTime types.TimeString, now time.Time) bool {
	timestamp, err := startTime.OnDate(date)
	if err != nil {
		return false
	}
	return timestamp.After(now)
}
