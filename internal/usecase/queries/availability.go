package queries

import (
	"context"
	"time"

	"hotelier-hub/internal/domain/availability"
	"hotelier-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	Get(ctx context.Context, hotelID uuid.UUID, start, end time.Time) ([]availability.RoomTypeAvailability, error)
}

type availabilityQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewAvailabilityQueries(uow shared.UnitOfWork) AvailabilityQueries {
	return &availabilityQueriesImpl{uow: uow}
}

// Get projects the hotel's room types and non-cancelled bookings into the
// day-by-day availability grid.
func (q *availabilityQueriesImpl) Get(ctx context.Context, hotelID uuid.UUID, start, end time.Time) ([]availability.RoomTypeAvailability, error) {
	r := q.uow.Repos()

	roomTypes, err := r.RoomTypes().ListByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	bookings, err := r.Bookings().ListOverlapping(ctx, hotelID, start, end)
	if err != nil {
		return nil, err
	}

	inventories := make([]availability.RoomTypeInventory, 0, len(roomTypes))
	for _, rt := range roomTypes {
		inventories = append(inventories, availability.RoomTypeInventory{
			ID:             rt.ID(),
			Name:           rt.Name(),
			TotalInventory: rt.TotalInventory(),
		})
	}

	stays := make([]availability.BookedStay, 0, len(bookings))
	for _, b := range bookings {
		roomTypeIDs := make([]uuid.UUID, 0, len(b.Rooms()))
		for _, sel := range b.Rooms() {
			roomTypeIDs = append(roomTypeIDs, sel.RoomTypeID)
		}
		stays = append(stays, availability.BookedStay{Stay: b.Stay(), RoomTypes: roomTypeIDs})
	}

	return availability.Calculate(inventories, stays, start, end), nil
}
