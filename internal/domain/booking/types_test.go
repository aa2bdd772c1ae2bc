//go:build unit

package booking_test

import (
	"testing"

	"hotelier-hub/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		name    string
		from    booking.Status
		to      booking.Status
		allowed bool
	}{
		{name: "pending to confirmed", from: booking.StatusPending, to: booking.StatusConfirmed, allowed: true},
		{name: "pending to cancelled", from: booking.StatusPending, to: booking.StatusCancelled, allowed: true},
		{name: "pending to checked_in skips confirmation", from: booking.StatusPending, to: booking.StatusCheckedIn, allowed: false},
		{name: "pending to checked_out", from: booking.StatusPending, to: booking.StatusCheckedOut, allowed: false},
		{name: "confirmed to checked_in", from: booking.StatusConfirmed, to: booking.StatusCheckedIn, allowed: true},
		{name: "confirmed to cancelled", from: booking.StatusConfirmed, to: booking.StatusCancelled, allowed: true},
		{name: "confirmed to checked_out", from: booking.StatusConfirmed, to: booking.StatusCheckedOut, allowed: false},
		{name: "checked_in to checked_out", from: booking.StatusCheckedIn, to: booking.StatusCheckedOut, allowed: true},
		{name: "checked_in cannot cancel", from: booking.StatusCheckedIn, to: booking.StatusCancelled, allowed: false},
		{name: "checked_out is terminal", from: booking.StatusCheckedOut, to: booking.StatusConfirmed, allowed: false},
		{name: "cancelled is terminal", from: booking.StatusCancelled, to: booking.StatusPending, allowed: false},
		{name: "cancelled cannot reconfirm", from: booking.StatusCancelled, to: booking.StatusConfirmed, allowed: false},
		{name: "same status is a no-op", from: booking.StatusConfirmed, to: booking.StatusConfirmed, allowed: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []booking.Status{
		booking.StatusPending, booking.StatusConfirmed, booking.StatusCancelled,
		booking.StatusCheckedIn, booking.StatusCheckedOut,
	} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, booking.Status("archived").IsValid())
	assert.False(t, booking.Status("").IsValid())
}
