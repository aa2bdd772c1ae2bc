package queries

import (
	"context"

	"hotelier-hub/internal/domain/rates"
	"hotelier-hub/internal/domain/room"
	"hotelier-hub/internal/infra"
	"hotelier-hub/internal/pkg/errs"
	"hotelier-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrRoomTypeNotFound = errs.New("room type not found")

type RoomQueries interface {
	List(ctx context.Context, hotelID uuid.UUID) ([]*room.RoomType, error)
	Get(ctx context.Context, hotelID, roomTypeID uuid.UUID) (*room.RoomType, error)
	ListRatePlans(ctx context.Context, hotelID uuid.UUID) ([]*rates.RatePlan, error)
	ListRoomRates(ctx context.Context, hotelID uuid.UUID) ([]*rates.RoomRate, error)
}

type roomQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewRoomQueries(uow shared.UnitOfWork) RoomQueries {
	return &roomQueriesImpl{uow: uow}
}

func (q *roomQueriesImpl) List(ctx context.Context, hotelID uuid.UUID) ([]*room.RoomType, error) {
	return q.uow.Repos().RoomTypes().ListByHotel(ctx, hotelID)
}

func (q *roomQueriesImpl) Get(ctx context.Context, hotelID, roomTypeID uuid.UUID) (*room.RoomType, error) {
	rt, err := q.uow.Repos().RoomTypes().FindByID(ctx, hotelID, roomTypeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, err
	}
	return rt, nil
}

func (q *roomQueriesImpl) ListRatePlans(ctx context.Context, hotelID uuid.UUID) ([]*rates.RatePlan, error) {
	return q.uow.Repos().Rates().ListPlansByHotel(ctx, hotelID)
}

func (q *roomQueriesImpl) ListRoomRates(ctx context.Context, hotelID uuid.UUID) ([]*rates.RoomRate, error) {
	return q.uow.Repos().Rates().ListRoomRatesByHotel(ctx, hotelID)
}
