package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMP-AppointmentService/internal/domain"
	"github.com/m04kA/SMP-AppointmentService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано и корректно
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	// Контактные данные клиента обязательны
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName is too long", ErrInvalidInput)
	}

	phone := strings.TrimSpace(req.CustomerPhone)
	if phone == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}
	if len(phone) > domain.MaxCustomerPhoneLength {
		return fmt.Errorf("%w: customerPhone is too long", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}

// isSlotOffered проверяет, что время входит в сетку слотов хотя бы одного окна
// Время принадлежит сетке окна, если start <= t < end и смещение от начала
// окна кратно шагу. Некорректные окна пропускаются
func isSlotOffered(windows []domain.WorkingWindow, startTime types.TimeString) bool {
	for _, window := range windows {
		if windowOffers(window, startTime) {
			return true
		}
	}
	return false
}

// windowOffers проверяет принадлежность времени сетке одного окна
func windowOffers(window domain.WorkingWindow, startTime types.TimeString) bool {
	if !window.IsWellFormed() {
		return false
	}

	// Полуоткрытый интервал [start, end): endTime не предлагается
	if startTime.IsBefore(window.StartTime) || !startTime.IsBefore(window.EndTime) {
		return false
	}

	slotMinutes, err := startTime.MinutesOfDay()
	if err != nil {
		return false
	}
	windowStart, err := window.StartTime.MinutesOfDay()
	if err != nil {
		return false
	}

	return (slotMinutes-windowStart)%window.StepMinutes == 0
}

// isInFuture проверяет, что дата+время строго позже now
func isInFuture(date time.Time, startTime types.TimeString, now time.Time) bool {
	timestamp, err := startTime.OnDate(date)
	if err != nil {
		return false
	}
	return timestamp.After(now)
}
