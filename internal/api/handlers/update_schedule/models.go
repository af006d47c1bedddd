package update_schedule

import (
	"github.com/m04kA/SMP-AppointmentService/internal/service/schedule/models"
)

// WindowInput одно рабочее окно в HTTP запросе
type WindowInput struct {
	Weekday     int    `json:"weekday"`     // 0=воскресенье .. 6=суббота
	StartTime   string `json:"startTime"`   // "09:00"
	EndTime     string `json:"endTime"`     // "18:00"
	StepMinutes int    `json:"stepMinutes"` // Шаг сетки слотов в минутах
}

// UpdateScheduleRequest HTTP request model
// Пустой список windows - валидный запрос: онлайн-запись закрывается
type UpdateScheduleRequest struct {
	Windows []WindowInput `json:"windows"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(professionalID, userID int64) *models.ReplaceScheduleRequest {
	windows := make([]models.WindowInput, len(r.Windows))
	for i, input := range r.Windows {
		windows[i] = models.WindowInput{
			Weekday:     input.Weekday,
			StartTime:   input.StartTime,
			EndTime:     input.EndTime,
			StepMinutes: input.StepMinutes,
		}
	}

	return &models.ReplaceScheduleRequest{
		UserID:         userID,
		ProfessionalID: professionalID,
		Windows:        windows,
	}
}
