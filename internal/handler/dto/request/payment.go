package request

import (
	"hotelier-hub/internal/usecase/commands"

	"github.com/google/uuid"
)

type RecordPaymentRequest struct {
	BookingID        uuid.UUID `json:"booking_id" binding:"required"`
	Amount           float64   `json:"amount" binding:"required"`
	Currency         string    `json:"currency"`
	Method           string    `json:"method" binding:"required"`
	GatewayReference *string   `json:"gateway_reference,omitempty"`
}

func (r *RecordPaymentRequest) ToInput() commands.RecordPaymentInput {
	return commands.RecordPaymentInput{
		BookingID:        r.BookingID,
		Amount:           r.Amount,
		Currency:         r.Currency,
		Method:           r.Method,
		GatewayReference: r.GatewayReference,
	}
}
