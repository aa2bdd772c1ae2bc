package repository

import (
	"context"
	"errors"
	"time"

	"hotelier-hub/internal/domain/booking"
	"hotelier-hub/internal/infra"
	"hotelier-hub/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type GuestRepository struct {
	db db.DBTX
}

func NewGuestRepository(database db.DBTX) *GuestRepository {
	return &GuestRepository{db: database}
}


const guestColumns = `id, hotel_id, first_name, last_name, email, phone, nationality,
	id_type, id_number, address, created_at`

func (r *GuestRepository) Create(ctx context.Context, g *booking.Guest) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO guests (id, hotel_id, first_name, last_name, email, phone, nationality,
			id_type, id_number, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		g.ID(), g.HotelID(), g.FirstName(), g.LastName(), g.Email(), g.Phone(), g.Nationality(),
		g.IDType(), g.IDNumber(), g.Address(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create guest", err)
	}
	return nil
}

func (r *GuestRepository) FindByEmail(ctx context.Context, hotelID uuid.UUID, email string) (*booking.Guest, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+guestColumns+` FROM guests WHERE hotel_id = $1 AND email = $2`, hotelID, email)
	return scanGuest(row)
}

func (r *GuestRepository) FindByID(ctx context.Context, hotelID, id uuid.UUID) (*booking.Guest, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+guestColumns+` FROM guests WHERE id = $1 AND hotel_id = $2`, id, hotelID)
	return scanGuest(row)
}

func (r *GuestRepository) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*booking.Guest, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+guestColumns+` FROM guests WHERE hotel_id = $1 ORDER BY created_at DESC`, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guests", err)
	}
	defer rows.Close()

	var result []*booking.Guest
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate guests", err)
	}
	return result, nil
}

func scanGuest(row pgx.Row) (*booking.Guest, error) {
	var (
		id          uuid.UUID
		hotelID     uuid.UUID
		firstName   string
		lastName    string
		email       string
		phone       *string
		nationality *string
		idType      *string
		idNumber    *string
		address     *string
		createdAt   time.Time
	)
	err := row.Scan(&id, &hotelID, &firstName, &lastName, &email, &phone, &nationality,
		&idType, &idNumber, &address, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("guest not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan guest", err)
	}

	return booking.ReconstructGuest(id, hotelID, firstName, lastName, email,
		phone, nationality, idType, idNumber, address, createdAt), nil
}
