package response

import (
	"time"

	"hotelier-hub/internal/infra/repository"
	"hotelier-hub/internal/usecase/commands"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	ID               uuid.UUID `json:"id"`
	HotelID          uuid.UUID `json:"hotel_id"`
	BookingID        uuid.UUID `json:"booking_id"`
	BookingNumber    string    `json:"booking_number"`
	GuestName        string    `json:"guest_name"`
	Amount           float64   `json:"amount"`
	Currency         string    `json:"currency"`
	Status           string    `json:"status"`
	Method           string    `json:"method"`
	GatewayReference *string   `json:"gateway_reference,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func FromPaymentResult(r *commands.PaymentResult) *PaymentResponse {
	p := r.Payment
	return &PaymentResponse{
		ID:               p.ID(),
		HotelID:          p.HotelID(),
		BookingID:        p.BookingID(),
		BookingNumber:    r.BookingNumber,
		GuestName:        r.GuestName,
		Amount:           p.Amount(),
		Currency:         p.Currency(),
		Status:           string(p.Status()),
		Method:           p.Method(),
		GatewayReference: p.GatewayReference(),
		CreatedAt:        p.CreatedAt(),
	}
}

func FromPaymentRow(row *repository.PaymentRow) *PaymentResponse {
	p := row.Payment
	return &PaymentResponse{
		ID:               p.ID(),
		HotelID:          p.HotelID(),
		BookingID:        p.BookingID(),
		BookingNumber:    row.BookingNumber,
		GuestName:        row.GuestName,
		Amount:           p.Amount(),
		Currency:         p.Currency(),
		Status:           string(p.Status()),
		Method:           p.Method(),
		GatewayReference: p.GatewayReference(),
		CreatedAt:        p.CreatedAt(),
	}
}

func FromPaymentRows(rows []repository.PaymentRow) []*PaymentResponse {
	out := make([]*PaymentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromPaymentRow(&rows[i]))
	}
	return out
}
