package commands

import (
	"context"

	"hotelier-hub/internal/domain/booking"
	"hotelier-hub/internal/infra"
	"hotelier-hub/internal/pkg/clock"
	"hotelier-hub/internal/pkg/errs"
	"hotelier-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound   = errs.New("booking not found")
	ErrInvalidTransition = errs.New("invalid booking status transition")
)

type GuestInput struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       *string
	Nationality *string
	IDType      *string
	IDNumber    *string
	Address     *string
}

type CreateBookingInput struct {
	Guest           GuestInput
	Stay            booking.StayRange
	Rooms           []booking.RoomSelection
	SpecialRequests *string
	PromoCode       *string
	Source          booking.Source
}

type UpdateBookingInput struct {
	Status          *booking.Status
	PaidAmount      *float64
	SpecialRequests *string
}

type BookingResult struct {
	Booking *booking.Booking
	Guest   *booking.Guest
}

type BookingCommands interface {
	Create(ctx context.Context, hotelID uuid.UUID, in CreateBookingInput) (*BookingResult, error)
	Update(ctx context.Context, hotelID, bookingID uuid.UUID, in UpdateBookingInput) (*BookingResult, error)
}

type bookingCommandsImpl struct {
	uow shared.UnitOfWork
	clk clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, clk: clk}
}

// Create records a booking, resolving or creating the guest by email within
// the tenant. The total is the sum of the caller's line totals; no price is
// recomputed against the rate catalog, and no inventory hold is taken.
func (c *bookingCommandsImpl) Create(ctx context.Context, hotelID uuid.UUID, in CreateBookingInput) (*BookingResult, error) {
	var result BookingResult
	err := c.uow.Within(ctx, func(ctx context.Context, r shared.Repos) error {
		g, err := r.Guests().FindByEmail(ctx, hotelID, in.Guest.Email)
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
			g = booking.NewGuest(hotelID, in.Guest.FirstName, in.Guest.LastName, in.Guest.Email,
				in.Guest.Phone, in.Guest.Nationality, in.Guest.IDType, in.Guest.IDNumber, in.Guest.Address)
			if err := r.Guests().Create(ctx, g); err != nil {
				return err
			}
		}

		b, err := booking.NewBooking(c.clk, hotelID, g.ID(), in.Stay, in.Rooms,
			in.SpecialRequests, in.PromoCode, in.Source)
		if err != nil {
			return err
		}
		if err := r.Bookings().Create(ctx, b); err != nil {
			return err
		}

		result = BookingResult{Booking: b, Guest: g}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Update merges the caller-supplied fields onto the booking. Status changes
// go through the lifecycle table; setting the current status is a no-op.
func (c *bookingCommandsImpl) Update(ctx context.Context, hotelID, bookingID uuid.UUID, in UpdateBookingInput) (*BookingResult, error) {
	var result BookingResult
	err := c.uow.Within(ctx, func(ctx context.Context, r shared.Repos) error {
		b, err := r.Bookings().FindByID(ctx, hotelID, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if in.Status != nil {
			if err := b.TransitionTo(*in.Status); err != nil {
				return errs.Mark(err, ErrInvalidTransition)
			}
		}
		if in.PaidAmount != nil {
			b.SetPaidAmount(*in.PaidAmount)
		}
		if in.SpecialRequests != nil {
			b.SetSpecialRequests(in.SpecialRequests)
		}

		if err := r.Bookings().Update(ctx, b); err != nil {
			return err
		}

		g, err := r.Guests().FindByID(ctx, hotelID, b.GuestID())
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		result = BookingResult{Booking: b, Guest: g}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
