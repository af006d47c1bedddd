package cancel_appointment_by_code

import "context"

type AppointmentService interface {
	CancelByPublicCode(ctx context.Context, code string, reason string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
