package commands

import (
	"context"

	"hotelier-hub/internal/domain/payment"
	"hotelier-hub/internal/infra"
	"hotelier-hub/internal/pkg/errs"
	"hotelier-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type RecordPaymentInput struct {
	BookingID        uuid.UUID
	Amount           float64
	Currency         string
	Method           string
	GatewayReference *string
}

type PaymentResult struct {
	Payment       *payment.Payment
	BookingNumber string
	GuestName     string
}

type PaymentCommands interface {
	Record(ctx context.Context, hotelID uuid.UUID, in RecordPaymentInput) (*PaymentResult, error)
}

type paymentCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewPaymentCommands(uow shared.UnitOfWork) PaymentCommands {
	return &paymentCommandsImpl{uow: uow}
}

// Record inserts the payment row and accrues its amount onto the booking's
// paid_amount in a single transaction. The accrual has no cap and negative
// amounts pass through as informal refunds.
func (c *paymentCommandsImpl) Record(ctx context.Context, hotelID uuid.UUID, in RecordPaymentInput) (*PaymentResult, error) {
	var result PaymentResult
	err := c.uow.Within(ctx, func(ctx context.Context, r shared.Repos) error {
		b, err := r.Bookings().FindByID(ctx, hotelID, in.BookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		p, err := payment.NewPayment(hotelID, b.ID(), in.Amount, in.Currency, in.Method, in.GatewayReference)
		if err != nil {
			return err
		}
		if err := r.Payments().Create(ctx, p); err != nil {
			return err
		}
		if err := r.Bookings().IncrementPaidAmount(ctx, hotelID, b.ID(), p.Amount()); err != nil {
			return err
		}

		result = PaymentResult{Payment: p, BookingNumber: b.Number(), GuestName: "Unknown Guest"}
		if g, err := r.Guests().FindByID(ctx, hotelID, b.GuestID()); err == nil {
			result.GuestName = g.FullName()
		} else if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to record payment")
	}
	return &result, nil
}
