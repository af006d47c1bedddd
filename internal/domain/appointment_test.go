package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOccupiesSlot(t *testing.T) {
	// Слот держат все статусы кроме отмененных
	for _, status := range []AppointmentStatus{StatusPending, StatusConfirmed, StatusCompleted} {
		appt := Appointment{Status: status}
		assert.True(t, appt.OccupiesSlot(), "status %s", status)
	}

	for _, status := range []AppointmentStatus{StatusCancelledByClient, StatusCancelledByProfessional} {
		appt := Appointment{Status: status}
		assert.False(t, appt.OccupiesSlot(), "status %s", status)
	}
}

func TestCanBeCancelled(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Appointment{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Appointment{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Appointment{Status: StatusCancelledByClient}).CanBeCancelled())
	assert.False(t, (&Appointment{Status: StatusCancelledByProfessional}).CanBeCancelled())
}

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelledByClient, true},
		{StatusPending, StatusCancelledByProfessional, true},
		{StatusPending, StatusCompleted, false},

		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelledByClient, true},
		{StatusConfirmed, StatusCancelledByProfessional, true},
		{StatusConfirmed, StatusPending, false},

		// Завершенные и отмененные - терминальные состояния
		{StatusCompleted, StatusConfirmed, false},
		{StatusCompleted, StatusCancelledByClient, false},
		{StatusCancelledByClient, StatusPending, false},
		{StatusCancelledByProfessional, StatusConfirmed, false},
	}

	for _, tc := range cases {
		appt := Appointment{Status: tc.from}
		assert.Equal(t, tc.allowed, appt.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
