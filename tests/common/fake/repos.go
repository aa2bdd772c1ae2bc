// Package fake provides an in-memory shared.Repos / shared.UnitOfWork pair
// for use-case unit tests. Within runs the callback directly against the
// same store, so there is no rollback: a failed "transaction" may leave
// partial writes behind, which is acceptable for single-scenario tests.
package fake

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
	"hotelier-hub/internal/infra"
	"hotelier-hub/internal/infra/readstore"
	"hotelier-hub/internal/infra/repository"
	"hotelier-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

// Store holds all rows in insertion-ordered slices so list queries are
// deterministic.
type Store struct {
	users     []*user.User
	hotels    []*hotel.Hotel
	roomTypes []*room.RoomType
	ratePlans []*rates.RatePlan
	roomRates []*rates.RoomRate
	guests    []*booking.Guest
	bookings  []*booking.Booking
	payments  []*payment.Payment
	apiKeys   []*integration.APIKey
	settings  []*integration.Settings

	stats readstore.Stats
}

var (
	_ shared.Repos      = (*Store)(nil)
	_ shared.UnitOfWork = (*UnitOfWork)(nil)
)

func NewStore() *Store {
	return &Store{}
}

// SetStats seeds the dashboard counters returned by Dashboard().Stats.
func (s *Store) SetStats(st readstore.Stats) {
	s.stats = st
}

func (s *Store) Users() shared.UserRepository               { return &userRepo{s} }
func (s *Store) Hotels() shared.HotelRepository             { return &hotelRepo{s} }
func (s *Store) RoomTypes() shared.RoomTypeRepository       { return &roomTypeRepo{s} }
func (s *Store) Rates() shared.RateRepository               { return &rateRepo{s} }
func (s *Store) Guests() shared.GuestRepository             { return &guestRepo{s} }
func (s *Store) Bookings() shared.BookingRepository         { return &bookingRepo{s} }
func (s *Store) Payments() shared.PaymentRepository         { return &paymentRepo{s} }
func (s *Store) Integrations() shared.IntegrationRepository { return &integrationRepo{s} }
func (s *Store) Dashboard() shared.DashboardStore           { return &dashboardStore{s} }

// UnitOfWork satisfies shared.UnitOfWork over a Store.
type UnitOfWork struct {
	store *Store
}

func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, r shared.Repos) error) error {
	return fn(ctx, u.store)
}

func (u *UnitOfWork) Repos() shared.Repos {
	return u.store
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func duplicate(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindDuplicateKey)
}

type userRepo struct{ s *Store }

func (r *userRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range r.s.users {
		if existing.Email().Value() == u.Email().Value() {
			return duplicate("user email already exists")
		}
	}
	r.s.users = append(r.s.users, u)
	return nil
}

func (r *userRepo) FindByEmail(_ context.Context, email user.Email) (*user.User, error) {
	for _, u := range r.s.users {
		if u.Email().Value() == email.Value() {
			return u, nil
		}
	}
	return nil, notFound("user not found")
}

func (r *userRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	for _, u := range r.s.users {
		if u.ID() == id {
			return u, nil
		}
	}
	return nil, notFound("user not found")
}

func (r *userRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	for i, u := range r.s.users {
		if u.ID() == id {
			r.s.users[i] = user.ReconstructUser(u.ID(), u.Email(), u.Name(), passwordHash,
				u.Role(), u.HotelID(), u.IsActive(), u.CreatedAt(), time.Now())
			return nil
		}
	}
	return notFound("user not found")
}

type hotelRepo struct{ s *Store }

func (r *hotelRepo) Create(_ context.Context, h *hotel.Hotel) error {
	r.s.hotels = append(r.s.hotels, h)
	return nil
}

func (r *hotelRepo) FindByID(_ context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	for _, h := range r.s.hotels {
		if h.ID() == id {
			return h, nil
		}
	}
	return nil, notFound("hotel not found")
}

func (r *hotelRepo) FindBySlug(_ context.Context, slug hotel.Slug) (*hotel.Hotel, error) {
	for _, h := range r.s.hotels {
		if h.Slug().Value() == slug.Value() {
			return h, nil
		}
	}
	return nil, notFound("hotel not found")
}

func (r *hotelRepo) SlugExists(_ context.Context, slug hotel.Slug) (bool, error) {
	for _, h := range r.s.hotels {
		if h.Slug().Value() == slug.Value() {
			return true, nil
		}
	}
	return false, nil
}

func (r *hotelRepo) Update(_ context.Context, h *hotel.Hotel) error {
	for i, existing := range r.s.hotels {
		if existing.ID() == h.ID() {
			r.s.hotels[i] = h
			return nil
		}
	}
	return notFound("hotel not found")
}

type roomTypeRepo struct{ s *Store }

func (r *roomTypeRepo) Create(_ context.Context, rt *room.RoomType) error {
	r.s.roomTypes = append(r.s.roomTypes, rt)
	return nil
}

func (r *roomTypeRepo) FindByID(_ context.Context, hotelID, id uuid.UUID) (*room.RoomType, error) {
	for _, rt := range r.s.roomTypes {
		if rt.ID() == id && rt.HotelID() == hotelID {
			return rt, nil
		}
	}
	return nil, notFound("room type not found")
}

func (r *roomTypeRepo) ListByHotel(_ context.Context, hotelID uuid.UUID) ([]*room.RoomType, error) {
	var out []*room.RoomType
	for _, rt := range r.s.roomTypes {
		if rt.HotelID() == hotelID {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r *roomTypeRepo) ListActiveByHotel(_ context.Context, hotelID uuid.UUID) ([]*room.RoomType, error) {
	var out []*room.RoomType
	for _, rt := range r.s.roomTypes {
		if rt.HotelID() == hotelID && rt.IsActive() {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r *roomTypeRepo) Update(_ context.Context, rt *room.RoomType) error {
	for i, existing := range r.s.roomTypes {
		if existing.ID() == rt.ID() && existing.HotelID() == rt.HotelID() {
			r.s.roomTypes[i] = rt
			return nil
		}
	}
	return notFound("room type not found")
}

func (r *roomTypeRepo) Delete(_ context.Context, hotelID, id uuid.UUID) error {
	for i, rt := range r.s.roomTypes {
		if rt.ID() == id && rt.HotelID() == hotelID {
			r.s.roomTypes = append(r.s.roomTypes[:i], r.s.roomTypes[i+1:]...)
			return nil
		}
	}
	return notFound("room type not found")
}

func (r *roomTypeRepo) TotalInventory(_ context.Context, hotelID uuid.UUID) (int, error) {
	total := 0
	for _, rt := range r.s.roomTypes {
		if rt.HotelID() == hotelID && rt.IsActive() {
			total += rt.TotalInventory()
		}
	}
	return total, nil
}

type rateRepo struct{ s *Store }

func (r *rateRepo) CreatePlan(_ context.Context, p *rates.RatePlan) error {
	r.s.ratePlans = append(r.s.ratePlans, p)
	return nil
}

func (r *rateRepo) ListPlansByHotel(_ context.Context, hotelID uuid.UUID) ([]*rates.RatePlan, error) {
	var out []*rates.RatePlan
	for _, p := range r.s.ratePlans {
		if p.HotelID() == hotelID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *rateRepo) DeletePlan(_ context.Context, hotelID, id uuid.UUID) error {
	for i, p := range r.s.ratePlans {
		if p.ID() == id && p.HotelID() == hotelID {
			r.s.ratePlans = append(r.s.ratePlans[:i], r.s.ratePlans[i+1:]...)
			return nil
		}
	}
	return notFound("rate plan not found")
}

func (r *rateRepo) CreateRoomRate(_ context.Context, rr *rates.RoomRate) error {
	r.s.roomRates = append(r.s.roomRates, rr)
	return nil
}

func (r *rateRepo) ListRoomRatesByHotel(_ context.Context, hotelID uuid.UUID) ([]*rates.RoomRate, error) {
	var out []*rates.RoomRate
	for _, rr := range r.s.roomRates {
		if rr.HotelID() == hotelID {
			out = append(out, rr)
		}
	}
	return out, nil
}

type guestRepo struct{ s *Store }

func (r *guestRepo) Create(_ context.Context, g *booking.Guest) error {
	r.s.guests = append(r.s.guests, g)
	return nil
}

func (r *guestRepo) FindByEmail(_ context.Context, hotelID uuid.UUID, email string) (*booking.Guest, error) {
	for _, g := range r.s.guests {
		if g.HotelID() == hotelID && g.Email() == email {
			return g, nil
		}
	}
	return nil, notFound("guest not found")
}

func (r *guestRepo) FindByID(_ context.Context, hotelID, id uuid.UUID) (*booking.Guest, error) {
	for _, g := range r.s.guests {
		if g.HotelID() == hotelID && g.ID() == id {
			return g, nil
		}
	}
	return nil, notFound("guest not found")
}

func (r *guestRepo) ListByHotel(_ context.Context, hotelID uuid.UUID) ([]*booking.Guest, error) {
	var out []*booking.Guest
	for _, g := range r.s.guests {
		if g.HotelID() == hotelID {
			out = append(out, g)
		}
	}
	return out, nil
}

type bookingRepo struct{ s *Store }

func (r *bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	r.s.bookings = append(r.s.bookings, b)
	return nil
}

func (r *bookingRepo) FindByID(_ context.Context, hotelID, id uuid.UUID) (*booking.Booking, error) {
	for _, b := range r.s.bookings {
		if b.HotelID() == hotelID && b.ID() == id {
			return b, nil
		}
	}
	return nil, notFound("booking not found")
}

func (r *bookingRepo) List(_ context.Context, hotelID uuid.UUID, filter repository.ListFilter) ([]*booking.Booking, error) {
	var matched []*booking.Booking
	for _, b := range r.s.bookings {
		if b.HotelID() != hotelID {
			continue
		}
		if filter.Status != "" && b.Status() != filter.Status {
			continue
		}
		matched = append(matched, b)
	}
	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			return nil, nil
		}
		matched = matched[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (r *bookingRepo) ListRecent(_ context.Context, hotelID uuid.UUID, limit int) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for i := len(r.s.bookings) - 1; i >= 0 && len(out) < limit; i-- {
		if r.s.bookings[i].HotelID() == hotelID {
			out = append(out, r.s.bookings[i])
		}
	}
	return out, nil
}

func (r *bookingRepo) ListOverlapping(_ context.Context, hotelID uuid.UUID, start, end time.Time) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range r.s.bookings {
		if b.HotelID() == hotelID && b.Status() != booking.StatusCancelled && b.Stay().Overlaps(start, end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *bookingRepo) ListOverlappingWithStatuses(_ context.Context, hotelID uuid.UUID, start, end time.Time, statuses []booking.Status) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range r.s.bookings {
		if b.HotelID() != hotelID || !b.Stay().Overlaps(start, end) {
			continue
		}
		for _, st := range statuses {
			if b.Status() == st {
				out = append(out, b)
				break
			}
		}
	}
	return out, nil
}

func (r *bookingRepo) Update(_ context.Context, b *booking.Booking) error {
	for i, existing := range r.s.bookings {
		if existing.ID() == b.ID() && existing.HotelID() == b.HotelID() {
			r.s.bookings[i] = b
			return nil
		}
	}
	return notFound("booking not found")
}

func (r *bookingRepo) IncrementPaidAmount(_ context.Context, hotelID, id uuid.UUID, amount float64) error {
	for _, b := range r.s.bookings {
		if b.HotelID() == hotelID && b.ID() == id {
			b.RecordPayment(amount)
			return nil
		}
	}
	return notFound("booking not found")
}

type paymentRepo struct{ s *Store }

func (r *paymentRepo) Create(_ context.Context, p *payment.Payment) error {
	r.s.payments = append(r.s.payments, p)
	return nil
}

func (r *paymentRepo) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]repository.PaymentRow, error) {
	var out []repository.PaymentRow
	for _, p := range r.s.payments {
		if p.HotelID() != hotelID {
			continue
		}
		row := repository.PaymentRow{Payment: p, GuestName: "Unknown Guest"}
		if b, err := (&bookingRepo{r.s}).FindByID(ctx, hotelID, p.BookingID()); err == nil {
			row.BookingNumber = b.Number()
			if g, err := (&guestRepo{r.s}).FindByID(ctx, hotelID, b.GuestID()); err == nil {
				row.GuestName = g.FullName()
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *paymentRepo) FindByID(_ context.Context, hotelID, id uuid.UUID) (*payment.Payment, error) {
	for _, p := range r.s.payments {
		if p.HotelID() == hotelID && p.ID() == id {
			return p, nil
		}
	}
	return nil, notFound("payment not found")
}

type integrationRepo struct{ s *Store }

func (r *integrationRepo) CreateAPIKey(_ context.Context, k *integration.APIKey) error {
	r.s.apiKeys = append(r.s.apiKeys, k)
	return nil
}

func (r *integrationRepo) ListAPIKeys(_ context.Context, hotelID uuid.UUID) ([]*integration.APIKey, error) {
	var out []*integration.APIKey
	for _, k := range r.s.apiKeys {
		if k.HotelID() == hotelID {
			out = append(out, k)
		}
	}
	return out, nil
}

func (r *integrationRepo) FindAPIKeyByID(_ context.Context, hotelID, id uuid.UUID) (*integration.APIKey, error) {
	for _, k := range r.s.apiKeys {
		if k.HotelID() == hotelID && k.ID() == id {
			return k, nil
		}
	}
	return nil, notFound("api key not found")
}

func (r *integrationRepo) UpdateAPIKeyActive(_ context.Context, k *integration.APIKey) error {
	for i, existing := range r.s.apiKeys {
		if existing.ID() == k.ID() && existing.HotelID() == k.HotelID() {
			r.s.apiKeys[i] = k
			return nil
		}
	}
	return notFound("api key not found")
}

func (r *integrationRepo) DeleteAPIKey(_ context.Context, hotelID, id uuid.UUID) error {
	for i, k := range r.s.apiKeys {
		if k.HotelID() == hotelID && k.ID() == id {
			r.s.apiKeys = append(r.s.apiKeys[:i], r.s.apiKeys[i+1:]...)
			return nil
		}
	}
	return notFound("api key not found")
}

func (r *integrationRepo) FindSettings(_ context.Context, hotelID uuid.UUID) (*integration.Settings, error) {
	for _, st := range r.s.settings {
		if st.HotelID() == hotelID {
			return st, nil
		}
	}
	return nil, notFound("integration settings not found")
}

func (r *integrationRepo) CreateSettings(_ context.Context, st *integration.Settings) error {
	r.s.settings = append(r.s.settings, st)
	return nil
}

func (r *integrationRepo) UpdateSettings(_ context.Context, st *integration.Settings) error {
	for i, existing := range r.s.settings {
		if existing.HotelID() == st.HotelID() {
			r.s.settings[i] = st
			return nil
		}
	}
	return notFound("integration settings not found")
}

type dashboardStore struct{ s *Store }

func (d *dashboardStore) Stats(_ context.Context, _ uuid.UUID, _ time.Time) (readstore.Stats, error) {
	return d.s.stats, nil
}
