package domain

import (
	"time"

	"github.com/m04kA/SMP-AppointmentService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending                 AppointmentStatus = "pending"
	StatusConfirmed               AppointmentStatus = "confirmed"
	StatusCompleted               AppointmentStatus = "completed"
	StatusCancelledByClient       AppointmentStatus = "cancelled_by_client"
	StatusCancelledByProfessional AppointmentStatus = "cancelled_by_professional"
)

// Appointment represents a customer booking made through the public link
type Appointment struct {
	ID              int64
	PublicCode      string // UUID handed to the customer for lookups
	ProfessionalID  int64
	ServiceID       int64
	AppointmentDate time.Time
	StartTime       types.TimeString
	Status          AppointmentStatus

	// Customer contact data captured at booking time
	CustomerName  string
	CustomerPhone string

	Notes *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot returns true if the appointment still claims its time slot.
// Pending, confirmed and completed appointments all occupy; only cancelled ones do not.
func (a *Appointment) OccupiesSlot() bool {
	return a.Status != StatusCancelledByClient && a.Status != StatusCancelledByProfessional
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelledByClient || a.Status == StatusCancelledByProfessional
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanTransitionTo reports whether the status machine allows moving to target.
// Allowed transitions: pending -> confirmed | cancelled_*,
// confirmed -> completed | cancelled_*. Completed and cancelled are terminal.
func (a *Appointment) CanTransitionTo(target AppointmentStatus) bool {
	switch a.Status {
	case StatusPending:
		return target == StatusConfirmed ||
			target == StatusCancelledByClient ||
			target == StatusCancelledByProfessional
	case StatusConfirmed:
		return target == StatusCompleted ||
			target == StatusCancelledByClient ||
			target == StatusCancelledByProfessional
	default:
		return false
	}
}

// ProfessionalAppointmentsFilter фильтр для получения записей профессионала
type ProfessionalAppointmentsFilter struct {
	ProfessionalID  int64              // Обязательный параметр
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отмененные записи
}
