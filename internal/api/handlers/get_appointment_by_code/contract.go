package get_appointment_by_code

import (
	"context"

	"github.com/m04kA/SMP-AppointmentService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetByPublicCode(ctx context.Context, code string) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
