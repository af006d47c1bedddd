package domain

import "github.com/m04kA/SMP-AppointmentService/pkg/types"

// Slot represents a single offerable point in time on a date.
// Derived, never persisted: recomputed on every query.
type Slot struct {
	StartTime types.TimeString
	Available bool
}
