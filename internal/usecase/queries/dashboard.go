package queries

import (
	"context"

	"hotelier-hub/internal/infra/readstore"
	"hotelier-hub/internal/pkg/clock"
	"hotelier-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

const recentBookingsLimit = 5

type DashboardQueries interface {
	Stats(ctx context.Context, hotelID uuid.UUID) (readstore.Stats, error)
	RecentBookings(ctx context.Context, hotelID uuid.UUID) ([]BookingView, error)
}

type dashboardQueriesImpl struct {
	uow shared.UnitOfWork
	clk clock.Clock
}

func NewDashboardQueries(uow shared.UnitOfWork, clk clock.Clock) DashboardQueries {
	return &dashboardQueriesImpl{uow: uow, clk: clk}
}

func (q *dashboardQueriesImpl) Stats(ctx context.Context, hotelID uuid.UUID) (readstore.Stats, error) {
	today := truncateToDay(q.clk.Now())
	return q.uow.Repos().Dashboard().Stats(ctx, hotelID, today)
}

func (q *dashboardQueriesImpl) RecentBookings(ctx context.Context, hotelID uuid.UUID) ([]BookingView, error) {
	r := q.uow.Repos()
	bookings, err := r.Bookings().ListRecent(ctx, hotelID, recentBookingsLimit)
	if err != nil {
		return nil, err
	}
	return attachGuests(ctx, r, hotelID, bookings)
}
