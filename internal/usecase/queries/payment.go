package queries

import (
	"context"

	"hotelier-hub/internal/infra/repository"
	"hotelier-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentQueries interface {
	List(ctx context.Context, hotelID uuid.UUID) ([]repository.PaymentRow, error)
}

type paymentQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewPaymentQueries(uow shared.UnitOfWork) PaymentQueries {
	return &paymentQueriesImpl{uow: uow}
}

func (q *paymentQueriesImpl) List(ctx context.Context, hotelID uuid.UUID) ([]repository.PaymentRow, error) {
	return q.uow.Repos().Payments().ListByHotel(ctx, hotelID)
}
