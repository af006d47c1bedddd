package update_schedule

import (
	"context"

	"github.com/m04kA/SMP-AppointmentService/internal/service/schedule/models"
)

type ScheduleService interface {
	ReplaceWeeklySchedule(ctx context.Context, req *models.ReplaceScheduleRequest) (*models.WeeklyScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
