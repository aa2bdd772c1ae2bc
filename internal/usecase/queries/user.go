package queries

import (
	"context"

	"hotelier-hub/internal/domain/hotel"
	"hotelier-hub/internal/domain/user"
	"hotelier-hub/internal/infra"
	"hotelier-hub/internal/pkg/errs"
	"hotelier-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound  = errs.New("user not found")
	ErrHotelNotFound = errs.New("hotel not found")
)

type UserQueries interface {
	Me(ctx context.Context, userID uuid.UUID) (*user.User, error)
	MyHotel(ctx context.Context, hotelID uuid.UUID) (*hotel.Hotel, error)
}

type userQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewUserQueries(uow shared.UnitOfWork) UserQueries {
	return &userQueriesImpl{uow: uow}
}

func (q *userQueriesImpl) Me(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	u, err := q.uow.Repos().Users().FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (q *userQueriesImpl) MyHotel(ctx context.Context, hotelID uuid.UUID) (*hotel.Hotel, error) {
	h, err := q.uow.Repos().Hotels().FindByID(ctx, hotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return h, nil
}
