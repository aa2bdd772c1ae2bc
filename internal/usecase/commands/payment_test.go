//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotelier-hub/internal/domain/payment"
	"hotelier-hub/internal/pkg/clock"
	"hotelier-hub/internal/usecase/commands"
	"hotelier-hub/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaymentEnv(t *testing.T) (commands.PaymentCommands, commands.BookingCommands, *fake.Store) {
	t.Helper()
	store := fake.NewStore()
	uow := fake.NewUnitOfWork(store)
	clk := clock.NewMockClock(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	return commands.NewPaymentCommands(uow), commands.NewBookingCommands(uow, clk), store
}

func TestPaymentCommands_Record(t *testing.T) {
	ctx := context.Background()
	hotelID := uuid.New()

	seedBooking := func(t *testing.T, bookings commands.BookingCommands) uuid.UUID {
		t.Helper()
		res, err := bookings.Create(ctx, hotelID, createInput(t, "ravi@example.com", 300))
		require.NoError(t, err)
		return res.Booking.ID()
	}

	t.Run("stores the payment and accrues onto the booking", func(t *testing.T) {
		payments, bookings, store := newPaymentEnv(t)
		bookingID := seedBooking(t, bookings)

		res, err := payments.Record(ctx, hotelID, commands.RecordPaymentInput{
			BookingID: bookingID,
			Amount:    120.50,
			Method:    "card",
		})
		require.NoError(t, err)

		assert.Equal(t, payment.StatusCompleted, res.Payment.Status())
		assert.Equal(t, payment.DefaultCurrency, res.Payment.Currency())
		assert.Equal(t, "Ravi Nair", res.GuestName)
		assert.NotEmpty(t, res.BookingNumber)

		b, err := store.Bookings().FindByID(ctx, hotelID, bookingID)
		require.NoError(t, err)
		assert.InDelta(t, 120.50, b.PaidAmount(), 1e-9)
	})

	t.Run("payments accumulate across records", func(t *testing.T) {
		payments, bookings, store := newPaymentEnv(t)
		bookingID := seedBooking(t, bookings)

		for _, amount := range []float64{100, 150} {
			_, err := payments.Record(ctx, hotelID, commands.RecordPaymentInput{
				BookingID: bookingID,
				Amount:    amount,
				Method:    "upi",
			})
			require.NoError(t, err)
		}

		b, err := store.Bookings().FindByID(ctx, hotelID, bookingID)
		require.NoError(t, err)
		assert.InDelta(t, 250.0, b.PaidAmount(), 1e-9)
	})

	t.Run("negative amount acts as an informal refund", func(t *testing.T) {
		payments, bookings, store := newPaymentEnv(t)
		bookingID := seedBooking(t, bookings)

		_, err := payments.Record(ctx, hotelID, commands.RecordPaymentInput{
			BookingID: bookingID,
			Amount:    200,
			Method:    "card",
		})
		require.NoError(t, err)
		_, err = payments.Record(ctx, hotelID, commands.RecordPaymentInput{
			BookingID: bookingID,
			Amount:    -50,
			Method:    "card",
		})
		require.NoError(t, err)

		b, err := store.Bookings().FindByID(ctx, hotelID, bookingID)
		require.NoError(t, err)
		assert.InDelta(t, 150.0, b.PaidAmount(), 1e-9)
	})

	t.Run("unknown booking", func(t *testing.T) {
		payments, _, _ := newPaymentEnv(t)

		_, err := payments.Record(ctx, hotelID, commands.RecordPaymentInput{
			BookingID: uuid.New(),
			Amount:    100,
			Method:    "card",
		})
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("empty method is rejected", func(t *testing.T) {
		payments, bookings, _ := newPaymentEnv(t)
		bookingID := seedBooking(t, bookings)

		_, err := payments.Record(ctx, hotelID, commands.RecordPaymentInput{
			BookingID: bookingID,
			Amount:    100,
		})
		assert.ErrorIs(t, err, payment.ErrEmptyMethod)
	})
}
