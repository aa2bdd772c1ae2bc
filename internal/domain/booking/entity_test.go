//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"hotelier-hub/internal/domain/booking"
	"hotelier-hub/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRoomSelection(t *testing.T, roomTypeID uuid.UUID, totalPrice float64) booking.RoomSelection {
	t.Helper()
	sel, err := booking.NewRoomSelection(roomTypeID, "Deluxe", uuid.New(), "Standard Rate", 2, 0, totalPrice/2, totalPrice)
	require.NoError(t, err)
	return sel
}

func TestNewBooking(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	hotelID := uuid.New()
	guestID := uuid.New()
	stay := booking.NewStayRange(
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
	)

	t.Run("total is the sum of line item totals", func(t *testing.T) {
		rooms := []booking.RoomSelection{
			mustRoomSelection(t, uuid.New(), 100),
			mustRoomSelection(t, uuid.New(), 250.50),
		}
		b, err := booking.NewBooking(clk, hotelID, guestID, stay, rooms, nil, nil, booking.SourceDirect)
		require.NoError(t, err)

		assert.InDelta(t, 350.50, b.TotalAmount(), 1e-9)
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Zero(t, b.PaidAmount())
	})

	t.Run("single room total equals its price", func(t *testing.T) {
		rooms := []booking.RoomSelection{mustRoomSelection(t, uuid.New(), 100)}
		b, err := booking.NewBooking(clk, hotelID, guestID, stay, rooms, nil, nil, booking.SourceDirect)
		require.NoError(t, err)
		assert.InDelta(t, 100.0, b.TotalAmount(), 1e-9)
	})

	t.Run("booking number carries the creation date", func(t *testing.T) {
		rooms := []booking.RoomSelection{mustRoomSelection(t, uuid.New(), 100)}
		b, err := booking.NewBooking(clk, hotelID, guestID, stay, rooms, nil, nil, booking.SourceDirect)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(b.Number(), "BK20240601"))
		assert.Len(t, b.Number(), len("BK20240601")+6)
		assert.Equal(t, strings.ToUpper(b.Number()), b.Number())
	})

	t.Run("rejects empty room list", func(t *testing.T) {
		_, err := booking.NewBooking(clk, hotelID, guestID, stay, nil, nil, nil, booking.SourceDirect)
		assert.ErrorIs(t, err, booking.ErrNoRooms)
	})

	t.Run("unknown source falls back to direct", func(t *testing.T) {
		rooms := []booking.RoomSelection{mustRoomSelection(t, uuid.New(), 100)}
		b, err := booking.NewBooking(clk, hotelID, guestID, stay, rooms, nil, nil, booking.Source("fax"))
		require.NoError(t, err)
		assert.Equal(t, booking.SourceDirect, b.Source())
	})
}

func TestBookingTransitionTo(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	stay := booking.NewStayRange(
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
	)
	rooms := []booking.RoomSelection{mustRoomSelection(t, uuid.New(), 100)}

	newBooking := func(t *testing.T) *booking.Booking {
		b, err := booking.NewBooking(clk, uuid.New(), uuid.New(), stay, rooms, nil, nil, booking.SourceDirect)
		require.NoError(t, err)
		return b
	}

	t.Run("full lifecycle", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.TransitionTo(booking.StatusConfirmed))
		require.NoError(t, b.TransitionTo(booking.StatusCheckedIn))
		require.NoError(t, b.TransitionTo(booking.StatusCheckedOut))
		assert.Equal(t, booking.StatusCheckedOut, b.Status())
	})

	t.Run("cannot cancel after check-in", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.TransitionTo(booking.StatusConfirmed))
		require.NoError(t, b.TransitionTo(booking.StatusCheckedIn))
		err := b.TransitionTo(booking.StatusCancelled)
		assert.ErrorIs(t, err, booking.ErrInvalidStatusTransition)
		assert.Equal(t, booking.StatusCheckedIn, b.Status())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		b := newBooking(t)
		assert.ErrorIs(t, b.TransitionTo(booking.Status("archived")), booking.ErrInvalidStatus)
	})
}

func TestBookingRecordPayment(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	stay := booking.NewStayRange(
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
	)
	rooms := []booking.RoomSelection{mustRoomSelection(t, uuid.New(), 100)}

	b, err := booking.NewBooking(clk, uuid.New(), uuid.New(), stay, rooms, nil, nil, booking.SourceDirect)
	require.NoError(t, err)

	b.RecordPayment(50)
	assert.InDelta(t, 50.0, b.PaidAmount(), 1e-9)

	// Accrual has no cap: overpayment past total_amount is accepted.
	b.RecordPayment(60)
	assert.InDelta(t, 110.0, b.PaidAmount(), 1e-9)
	assert.Greater(t, b.PaidAmount(), b.TotalAmount())

	// Negative amounts act as refunds.
	b.RecordPayment(-30)
	assert.InDelta(t, 80.0, b.PaidAmount(), 1e-9)
}
