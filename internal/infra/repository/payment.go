package repository

import (
	"context"
	"errors"
	"time"

	"hotelier-hub/internal/domain/payment"
	"hotelier-hub/internal/infra"
	"hotelier-hub/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PaymentRepository struct {
	db db.DBTX
}

func NewPaymentRepository(database db.DBTX) *PaymentRepository {
	return &PaymentRepository{db: database}
}


// PaymentRow is the payment list view joined with the booking number and
// guest name it settles.
type PaymentRow struct {
	Payment       *payment.Payment
	BookingNumber string
	GuestName     string
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO payments (id, hotel_id, booking_id, amount, currency, status, payment_method, gateway_reference)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID(), p.HotelID(), p.BookingID(), p.Amount(), p.Currency(), string(p.Status()),
		p.Method(), p.GatewayReference(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

// ListByHotel returns payments enriched with the booking number and guest
// name. Missing joins degrade to placeholders rather than failing the list.
func (r *PaymentRepository) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]PaymentRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.hotel_id, p.booking_id, p.amount, p.currency, p.status, p.payment_method,
			p.gateway_reference, p.created_at,
			b.booking_number, g.first_name, g.last_name
		FROM payments p
		LEFT JOIN bookings b ON b.id = p.booking_id
		LEFT JOIN guests g ON g.id = b.guest_id
		WHERE p.hotel_id = $1
		ORDER BY p.created_at DESC`, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}
	defer rows.Close()

	var result []PaymentRow
	for rows.Next() {
		var (
			id               uuid.UUID
			hID              uuid.UUID
			bookingID        uuid.UUID
			amount           float64
			currency         string
			status           string
			method           string
			gatewayReference *string
			createdAt        time.Time
			bookingNumber    *string
			firstName        *string
			lastName         *string
		)
		err := rows.Scan(&id, &hID, &bookingID, &amount, &currency, &status, &method,
			&gatewayReference, &createdAt, &bookingNumber, &firstName, &lastName)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment", err)
		}

		row := PaymentRow{
			Payment: payment.ReconstructPayment(id, hID, bookingID, amount, currency,
				payment.Status(status), method, gatewayReference, createdAt),
			BookingNumber: "N/A",
			GuestName:     "Unknown Guest",
		}
		if bookingNumber != nil {
			row.BookingNumber = *bookingNumber
		}
		if firstName != nil && lastName != nil {
			row.GuestName = *firstName + " " + *lastName
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payments", err)
	}
	return result, nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, hotelID, id uuid.UUID) (*payment.Payment, error) {
	var (
		pid              uuid.UUID
		hID              uuid.UUID
		bookingID        uuid.UUID
		amount           float64
		currency         string
		status           string
		method           string
		gatewayReference *string
		createdAt        time.Time
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, hotel_id, booking_id, amount, currency, status, payment_method, gateway_reference, created_at
		FROM payments WHERE id = $1 AND hotel_id = $2`, id, hotelID).
		Scan(&pid, &hID, &bookingID, &amount, &currency, &status, &method, &gatewayReference, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan payment", err)
	}

	return payment.ReconstructPayment(pid, hID, bookingID, amount, currency,
		payment.Status(status), method, gatewayReference, createdAt), nil
}
