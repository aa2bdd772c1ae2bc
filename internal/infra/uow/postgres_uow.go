package uow

import (
	"context"

	"hotelier-hub/internal/infra/db"
	"hotelier-hub/internal/infra/readstore"
	"hotelier-hub/internal/infra/repository"
	"hotelier-hub/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	tm   *db.TxManager
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		tm:   db.NewTxManager(pool),
	}
}

func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, r shared.Repos) error) error {
	return u.tm.RunInTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, newRepos(tx))
	})
}

func (u *PostgresUoW) Repos() shared.Repos {
	return newRepos(u.pool)
}

// repos binds the repository set to one database handle, building each
// repository lazily.
type repos struct {
	dbtx db.DBTX

	userRepo        shared.UserRepository
	hotelRepo       shared.HotelRepository
	roomTypeRepo    shared.RoomTypeRepository
	rateRepo        shared.RateRepository
	guestRepo       shared.GuestRepository
	bookingRepo     shared.BookingRepository
	paymentRepo     shared.PaymentRepository
	integrationRepo shared.IntegrationRepository
	dashboardStore  shared.DashboardStore
}

func newRepos(dbtx db.DBTX) *repos {
	return &repos{dbtx: dbtx}
}

func (r *repos) Users() shared.UserRepository {
	if r.userRepo == nil {
		r.userRepo = repository.NewUserRepository(r.dbtx)
	}
	return r.userRepo
}

func (r *repos) Hotels() shared.HotelRepository {
	if r.hotelRepo == nil {
		r.hotelRepo = repository.NewHotelRepository(r.dbtx)
	}
	return r.hotelRepo
}

func (r *repos) RoomTypes() shared.RoomTypeRepository {
	if r.roomTypeRepo == nil {
		r.roomTypeRepo = repository.NewRoomTypeRepository(r.dbtx)
	}
	return r.roomTypeRepo
}

func (r *repos) Rates() shared.RateRepository {
	if r.rateRepo == nil {
		r.rateRepo = repository.NewRateRepository(r.dbtx)
	}
	return r.rateRepo
}

func (r *repos) Guests() shared.GuestRepository {
	if r.guestRepo == nil {
		r.guestRepo = repository.NewGuestRepository(r.dbtx)
	}
	return r.guestRepo
}

func (r *repos) Bookings() shared.BookingRepository {
	if r.bookingRepo == nil {
		r.bookingRepo = repository.NewBookingRepository(r.dbtx)
	}
	return r.bookingRepo
}

func (r *repos) Payments() shared.PaymentRepository {
	if r.paymentRepo == nil {
		r.paymentRepo = repository.NewPaymentRepository(r.dbtx)
	}
	return r.paymentRepo
}

func (r *repos) Integrations() shared.IntegrationRepository {
	if r.integrationRepo == nil {
		r.integrationRepo = repository.NewIntegrationRepository(r.dbtx)
	}
	return r.integrationRepo
}

func (r *repos) Dashboard() shared.DashboardStore {
	if r.dashboardStore == nil {
		r.dashboardStore = readstore.NewDashboardStore(r.dbtx)
	}
	return r.dashboardStore
}
