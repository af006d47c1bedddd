package domain

import (
	"time"

	"github.com/m04kA/SMP-AppointmentService/pkg/types"
)

// OccupancySource identifies which record kind claimed a time
type OccupancySource string

const (
	SourcePublicBooking OccupancySource = "public_booking"
	SourceAgendaEntry   OccupancySource = "agenda_entry"
)

// OccupancyRecord is the single abstraction both booking record kinds map into
// before reaching the slot engine. The engine never branches on the source:
// an appointment occupies its slot regardless of which workflow created it.
type OccupancyRecord struct {
	Date      time.Time
	StartTime types.TimeString
	Source    OccupancySource
}

// OccupiedTimes is the set of times on a date already claimed by a
// non-cancelled record, keyed by normalized "HH:MM" strings.
type OccupiedTimes map[string]struct{}

// Add inserts a time into the set
func (o OccupiedTimes) Add(t types.TimeString) {
	o[t.String()] = struct{}{}
}

// Contains reports whether the given time is claimed
func (o OccupiedTimes) Contains(t types.TimeString) bool {
	_, ok := o[t.String()]
	return ok
}
