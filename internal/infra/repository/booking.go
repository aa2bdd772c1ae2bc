package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"hotelier-hub/internal/domain/booking"
	"hotelier-hub/internal/infra"
	"hotelier-hub/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(database db.DBTX) *BookingRepository {
	return &BookingRepository{db: database}
}


// ListFilter narrows the booking list query. Zero values mean "no filter".
type ListFilter struct {
	Status booking.Status
	Limit  int
	Offset int
}

const bookingColumns = `id, hotel_id, guest_id, booking_number, check_in, check_out, status,
	rooms, total_amount, paid_amount, special_requests, promo_code, source, created_at, updated_at`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	rooms, err := json.Marshal(b.Rooms())
	if err != nil {
		return infra.WrapRepoErr("failed to marshal booking rooms", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO bookings (id, hotel_id, guest_id, booking_number, check_in, check_out, status,
			rooms, total_amount, paid_amount, special_requests, promo_code, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		b.ID(), b.HotelID(), b.GuestID(), b.Number(), b.Stay().CheckIn(), b.Stay().CheckOut(),
		string(b.Status()), rooms, b.TotalAmount(), b.PaidAmount(), b.SpecialRequests(),
		b.PromoCode(), string(b.Source()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, hotelID, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+bookingColumns+` FROM bookings WHERE id = $1 AND hotel_id = $2`, id, hotelID)
	return scanBooking(row)
}

func (r *BookingRepository) List(ctx context.Context, hotelID uuid.UUID, filter ListFilter) ([]*booking.Booking, error) {
	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE hotel_id = $1`
	args := []any{hotelID}
	if filter.Status != "" {
		query += ` AND status = $2`
		args = append(args, string(filter.Status))
	}
	query += ` ORDER BY created_at DESC LIMIT ` + strconv.Itoa(limit) + ` OFFSET ` + strconv.Itoa(offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()
	return collectBookings(rows)
}

// ListRecent returns the newest bookings for the dashboard.
func (r *BookingRepository) ListRecent(ctx context.Context, hotelID uuid.UUID, limit int) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+bookingColumns+` FROM bookings
		WHERE hotel_id = $1 ORDER BY created_at DESC LIMIT $2`, hotelID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent bookings", err)
	}
	defer rows.Close()
	return collectBookings(rows)
}

// ListOverlapping returns non-cancelled bookings whose stay intersects the
// inclusive [start, end] date range. The availability engine consumes this.
func (r *BookingRepository) ListOverlapping(ctx context.Context, hotelID uuid.UUID, start, end time.Time) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+bookingColumns+` FROM bookings
		WHERE hotel_id = $1 AND status <> 'cancelled'
		AND check_in <= $3 AND check_out > $2`, hotelID, start, end)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping bookings", err)
	}
	defer rows.Close()
	return collectBookings(rows)
}

// ListOverlappingWithStatuses is the variant behind the public room search
// and the occupancy reports, which each count a specific status set.
func (r *BookingRepository) ListOverlappingWithStatuses(ctx context.Context, hotelID uuid.UUID, start, end time.Time, statuses []booking.Status) ([]*booking.Booking, error) {
	strs := make([]string, 0, len(statuses))
	for _, s := range statuses {
		strs = append(strs, string(s))
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+bookingColumns+` FROM bookings
		WHERE hotel_id = $1 AND status = ANY($4)
		AND check_in < $3 AND check_out > $2`, hotelID, start, end, strs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping bookings", err)
	}
	defer rows.Close()
	return collectBookings(rows)
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings
		SET status = $3, paid_amount = $4, special_requests = $5, updated_at = now()
		WHERE id = $1 AND hotel_id = $2`,
		b.ID(), b.HotelID(), string(b.Status()), b.PaidAmount(), b.SpecialRequests(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// IncrementPaidAmount accrues a payment onto the stored booking row. Runs
// inside the same transaction as the payment insert.
func (r *BookingRepository) IncrementPaidAmount(ctx context.Context, hotelID, id uuid.UUID, amount float64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings SET paid_amount = paid_amount + $3, updated_at = now()
		WHERE id = $1 AND hotel_id = $2`, id, hotelID, amount)
	if err != nil {
		return infra.WrapRepoErr("failed to increment paid amount", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func collectBookings(rows pgx.Rows) ([]*booking.Booking, error) {
	var result []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return result, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id              uuid.UUID
		hotelID         uuid.UUID
		guestID         uuid.UUID
		number          string
		checkIn         time.Time
		checkOut        time.Time
		status          string
		roomsRaw        []byte
		totalAmount     float64
		paidAmount      float64
		specialRequests *string
		promoCode       *string
		source          string
		createdAt       time.Time
		updatedAt       time.Time
	)
	err := row.Scan(&id, &hotelID, &guestID, &number, &checkIn, &checkOut, &status,
		&roomsRaw, &totalAmount, &paidAmount, &specialRequests, &promoCode, &source, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan booking", err)
	}

	var rooms []booking.RoomSelection
	if len(roomsRaw) > 0 {
		if err := json.Unmarshal(roomsRaw, &rooms); err != nil {
			return nil, infra.WrapRepoErr("failed to unmarshal booking rooms", err)
		}
	}

	return booking.ReconstructBooking(id, hotelID, guestID, number,
		booking.NewStayRange(checkIn, checkOut), booking.Status(status), rooms,
		totalAmount, paidAmount, specialRequests, promoCode, booking.Source(source),
		createdAt, updatedAt), nil
}
