package models

import (
	"github.com/m04kA/SMP-AppointmentService/internal/domain"
)

// Request модели

// WindowInput одно рабочее окно в запросе на замену расписания
type WindowInput struct {
	Weekday     int    `json:"weekday"`     // 0=воскресенье .. 6=суббота
	StartTime   string `json:"startTime"`   // "09:00"
	EndTime     string `json:"endTime"`     // "18:00"
	StepMinutes int    `json:"stepMinutes"` // Шаг сетки слотов в минутах
}

// ReplaceScheduleRequest запрос на полную замену недельного расписания
// Пустой список окон - валидный запрос: профессионал закрывает запись
type ReplaceScheduleRequest struct {
	UserID         int64         `json:"userId"`
	ProfessionalID int64         `json:"professionalId"`
	Windows        []WindowInput `json:"windows"`
}

// Response модели

// WindowResponse одно рабочее окно в ответе
type WindowResponse struct {
	ID          int64  `json:"id"`
	Weekday     int    `json:"weekday"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	StepMinutes int    `json:"stepMinutes"`
}

// WeeklyScheduleResponse недельное расписание профессионала
type WeeklyScheduleResponse struct {
	ProfessionalID int64            `json:"professionalId"`
	Windows        []WindowResponse `json:"windows"`
}

// Методы конвертации

// FromDomainWindows конвертирует domain окна в DTO расписания
func FromDomainWindows(professionalID int64, windows []domain.WorkingWindow) *WeeklyScheduleResponse {
	resp := &WeeklyScheduleResponse{
		ProfessionalID: professionalID,
		Windows:        make([]WindowResponse, len(windows)),
	}

	for i, window := range windows {
		resp.Windows[i] = WindowResponse{
			ID:          window.ID,
			Weekday:     int(window.Weekday),
			StartTime:   window.StartTime.String(),
			EndTime:     window.EndTime.String(),
			StepMinutes: window.StepMinutes,
		}
	}

	return resp
}
