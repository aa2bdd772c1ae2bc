package queries

import (
	"context"

	"hotelier-hub/internal/domain/booking"
	"hotelier-hub/internal/infra"
	"hotelier-hub/internal/infra/repository"
	"hotelier-hub/internal/pkg/errs"
	"hotelier-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

// BookingView pairs a booking with its guest for API responses.
type BookingView struct {
	Booking *booking.Booking
	Guest   *booking.Guest
}

type BookingQueries interface {
	List(ctx context.Context, hotelID uuid.UUID, filter repository.ListFilter) ([]BookingView, error)
	Get(ctx context.Context, hotelID, bookingID uuid.UUID) (*BookingView, error)
	ListGuests(ctx context.Context, hotelID uuid.UUID) ([]*booking.Guest, error)
}

type bookingQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewBookingQueries(uow shared.UnitOfWork) BookingQueries {
	return &bookingQueriesImpl{uow: uow}
}

func (q *bookingQueriesImpl) List(ctx context.Context, hotelID uuid.UUID, filter repository.ListFilter) ([]BookingView, error) {
	r := q.uow.Repos()
	bookings, err := r.Bookings().List(ctx, hotelID, filter)
	if err != nil {
		return nil, err
	}
	return attachGuests(ctx, r, hotelID, bookings)
}

func (q *bookingQueriesImpl) Get(ctx context.Context, hotelID, bookingID uuid.UUID) (*BookingView, error) {
	r := q.uow.Repos()
	b, err := r.Bookings().FindByID(ctx, hotelID, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	view := BookingView{Booking: b}
	if g, err := r.Guests().FindByID(ctx, hotelID, b.GuestID()); err == nil {
		view.Guest = g
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}
	return &view, nil
}

func (q *bookingQueriesImpl) ListGuests(ctx context.Context, hotelID uuid.UUID) ([]*booking.Guest, error) {
	return q.uow.Repos().Guests().ListByHotel(ctx, hotelID)
}

func attachGuests(ctx context.Context, r shared.Repos, hotelID uuid.UUID, bookings []*booking.Booking) ([]BookingView, error) {
	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := BookingView{Booking: b}
		if g, err := r.Guests().FindByID(ctx, hotelID, b.GuestID()); err == nil {
			view.Guest = g
		} else if !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
