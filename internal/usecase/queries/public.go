package queries

import (
	"context"
	"time"

	"hotelier-hub/internal/domain/booking"
	"hotelier-hub/internal/domain/hotel"
	"hotelier-hub/internal/domain/room"
	"hotelier-hub/internal/infra"
	"hotelier-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

// occupyingStatuses are the booking states that hold a room against
// the public search. Pending bookings do not block a sale.
var occupyingStatuses = []booking.Status{booking.StatusConfirmed, booking.StatusCheckedIn}

type PublicQueries interface {
	HotelByID(ctx context.Context, hotelID uuid.UUID) (*hotel.Hotel, error)
	HotelBySlug(ctx context.Context, slug string) (*hotel.Hotel, error)
	// SearchRooms returns the active room types that can sleep the
	// requested party and still have stock left over the stay. The
	// check is coarse: a booking occupies its room type for the whole
	// requested range, not day by day.
	SearchRooms(ctx context.Context, hotelID uuid.UUID, checkIn, checkOut time.Time, guests int) ([]*room.RoomType, error)
}

type publicQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewPublicQueries(uow shared.UnitOfWork) PublicQueries {
	return &publicQueriesImpl{uow: uow}
}

func (q *publicQueriesImpl) HotelByID(ctx context.Context, hotelID uuid.UUID) (*hotel.Hotel, error) {
	h, err := q.uow.Repos().Hotels().FindByID(ctx, hotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return h, nil
}

func (q *publicQueriesImpl) HotelBySlug(ctx context.Context, slug string) (*hotel.Hotel, error) {
	s, err := hotel.NewSlug(slug)
	if err != nil {
		return nil, ErrHotelNotFound
	}
	h, err := q.uow.Repos().Hotels().FindBySlug(ctx, s)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return h, nil
}

func (q *publicQueriesImpl) SearchRooms(ctx context.Context, hotelID uuid.UUID, checkIn, checkOut time.Time, guests int) ([]*room.RoomType, error) {
	r := q.uow.Repos()

	roomTypes, err := r.RoomTypes().ListActiveByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if len(roomTypes) == 0 {
		return []*room.RoomType{}, nil
	}

	bookings, err := r.Bookings().ListOverlappingWithStatuses(ctx, hotelID, checkIn, checkOut, occupyingStatuses)
	if err != nil {
		return nil, err
	}

	bookedCounts := make(map[uuid.UUID]int)
	for _, b := range bookings {
		for _, sel := range b.Rooms() {
			bookedCounts[sel.RoomTypeID]++
		}
	}

	available := make([]*room.RoomType, 0, len(roomTypes))
	for _, rt := range roomTypes {
		if rt.MaxOccupancy() < guests {
			continue
		}
		if rt.TotalInventory() > bookedCounts[rt.ID()] {
			available = append(available, rt)
		}
	}
	return available, nil
}
