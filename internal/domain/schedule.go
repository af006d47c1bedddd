package domain

import (
	"time"

	"github.com/m04kA/SMP-AppointmentService/pkg/types"
)

// Weekday is the single weekday convention of the service: Sunday=0 .. Saturday=6.
// External sources that count from Monday must be converted at the adapter
// boundary with WeekdayFromMondayBased; raw integers never cross into the engine.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// IsValid reports whether the value is within 0..6
func (w Weekday) IsValid() bool {
	return w >= Sunday && w <= Saturday
}

// String returns the English weekday name
func (w Weekday) String() string {
	if !w.IsValid() {
		return "invalid"
	}
	return [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}[w]
}

// WeekdayFromTime converts time.Weekday (Sunday=0) to the domain convention.
func WeekdayFromTime(w time.Weekday) Weekday {
	return Weekday(w)
}

// WeekdayFromDate returns the domain weekday of the given date.
func WeekdayFromDate(date time.Time) Weekday {
	return WeekdayFromTime(date.Weekday())
}

// WeekdayFromMondayBased converts the legacy Monday=0 .. Sunday=6 convention
// used by one of the configuration sources into the domain convention.
func WeekdayFromMondayBased(v int) (Weekday, bool) {
	if v < 0 || v > 6 {
		return 0, false
	}
	return Weekday((v + 1) % 7), true
}

// WorkingWindow represents one contiguous span during which a professional
// accepts bookings on a given weekday. A weekday may have several windows
// (split by a lunch break, for example); each is processed independently.
type WorkingWindow struct {
	ID             int64
	ProfessionalID int64
	Weekday        Weekday
	StartTime      types.TimeString
	EndTime        types.TimeString
	StepMinutes    int // granularity of slot generation within the window

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWellFormed reports whether the window can produce slots:
// positive step and start strictly before end.
func (w *WorkingWindow) IsWellFormed() bool {
	return w.StepMinutes > 0 && w.StartTime.IsBefore(w.EndTime)
}
