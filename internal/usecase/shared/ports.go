// Package shared defines the use-side persistence ports. Implementations
// live in internal/infra.
package shared

import (
	"context"
	"time"

	"hotelier-hub/internal/domain/booking"
	"hotelier-hub/internal/domain/hotel"
	"hotelier-hub/internal/domain/integration"
	"hotelier-hub/internal/domain/payment"
	"hotelier-hub/internal/domain/rates"
	"hotelier-hub/internal/domain/room"
	"hotelier-hub/internal/domain/user"
	"hotelier-hub/internal/infra/readstore"
	"hotelier-hub/internal/infra/repository"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type HotelRepository interface {
	Create(ctx context.Context, h *hotel.Hotel) error
	FindByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error)
	FindBySlug(ctx context.Context, slug hotel.Slug) (*hotel.Hotel, error)
	SlugExists(ctx context.Context, slug hotel.Slug) (bool, error)
	Update(ctx context.Context, h *hotel.Hotel) error
}

type RoomTypeRepository interface {
	Create(ctx context.Context, rt *room.RoomType) error
	FindByID(ctx context.Context, hotelID, id uuid.UUID) (*room.RoomType, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*room.RoomType, error)
	ListActiveByHotel(ctx context.Context, hotelID uuid.UUID) ([]*room.RoomType, error)
	Update(ctx context.Context, rt *room.RoomType) error
	Delete(ctx context.Context, hotelID, id uuid.UUID) error
	TotalInventory(ctx context.Context, hotelID uuid.UUID) (int, error)
}

type RateRepository interface {
	CreatePlan(ctx context.Context, p *rates.RatePlan) error
	ListPlansByHotel(ctx context.Context, hotelID uuid.UUID) ([]*rates.RatePlan, error)
	DeletePlan(ctx context.Context, hotelID, id uuid.UUID) error
	CreateRoomRate(ctx context.Context, rr *rates.RoomRate) error
	ListRoomRatesByHotel(ctx context.Context, hotelID uuid.UUID) ([]*rates.RoomRate, error)
}

type GuestRepository interface {
	Create(ctx context.Context, g *booking.Guest) error
	FindByEmail(ctx context.Context, hotelID uuid.UUID, email string) (*booking.Guest, error)
	FindByID(ctx context.Context, hotelID, id uuid.UUID) (*booking.Guest, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*booking.Guest, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, hotelID, id uuid.UUID) (*booking.Booking, error)
	List(ctx context.Context, hotelID uuid.UUID, filter repository.ListFilter) ([]*booking.Booking, error)
	ListRecent(ctx context.Context, hotelID uuid.UUID, limit int) ([]*booking.Booking, error)
	ListOverlapping(ctx context.Context, hotelID uuid.UUID, start, end time.Time) ([]*booking.Booking, error)
	ListOverlappingWithStatuses(ctx context.Context, hotelID uuid.UUID, start, end time.Time, statuses []booking.Status) ([]*booking.Booking, error)
	Update(ctx context.Context, b *booking.Booking) error
	IncrementPaidAmount(ctx context.Context, hotelID, id uuid.UUID, amount float64) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) error
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]repository.PaymentRow, error)
	FindByID(ctx context.Context, hotelID, id uuid.UUID) (*payment.Payment, error)
}

type IntegrationRepository interface {
	CreateAPIKey(ctx context.Context, k *integration.APIKey) error
	ListAPIKeys(ctx context.Context, hotelID uuid.UUID) ([]*integration.APIKey, error)
	FindAPIKeyByID(ctx context.Context, hotelID, id uuid.UUID) (*integration.APIKey, error)
	UpdateAPIKeyActive(ctx context.Context, k *integration.APIKey) error
	DeleteAPIKey(ctx context.Context, hotelID, id uuid.UUID) error
	FindSettings(ctx context.Context, hotelID uuid.UUID) (*integration.Settings, error)
	CreateSettings(ctx context.Context, s *integration.Settings) error
	UpdateSettings(ctx context.Context, s *integration.Settings) error
}

type DashboardStore interface {
	Stats(ctx context.Context, hotelID uuid.UUID, today time.Time) (readstore.Stats, error)
}

// Repos is the repository set bound to one database handle: either the
// shared pool or a single transaction.
type Repos interface {
	Users() UserRepository
	Hotels() HotelRepository
	RoomTypes() RoomTypeRepository
	Rates() RateRepository
	Guests() GuestRepository
	Bookings() BookingRepository
	Payments() PaymentRepository
	Integrations() IntegrationRepository
	Dashboard() DashboardStore
}

// UnitOfWork runs work against the datastore. Within executes fn inside a
// single transaction, retrying serialization failures; Repos gives
// auto-commit access for reads and independent writes.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, r Repos) error) error
	Repos() Repos
}
