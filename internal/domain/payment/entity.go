package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus = errors.New("invalid payment status")
	ErrEmptyMethod   = errors.New("payment method cannot be empty")
)

type Status string

const (
	StatusPending       Status = "pending"
	StatusCompleted     Status = "completed"
	StatusFailed        Status = "failed"
	StatusRefunded      Status = "refunded"
	StatusPartialRefund Status = "partial_refund"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusRefunded, StatusPartialRefund:
		return true
	}
	return false
}

const DefaultCurrency = "INR"

// Payment is one payment event against a booking. Recording a payment also
// accrues its amount onto the booking's paid_amount; a negative amount acts
// as an informal refund. Nothing compensates the booking when a payment
// later fails.
type Payment struct {
	id               uuid.UUID
	hotelID          uuid.UUID
	bookingID        uuid.UUID
	amount           float64
	currency         string
	status           Status
	method           string
	gatewayReference *string
	createdAt        time.Time
}

func NewPayment(hotelID, bookingID uuid.UUID, amount float64, currency, method string, gatewayReference *string) (*Payment, error) {
	if method == "" {
		return nil, ErrEmptyMethod
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	return &Payment{
		id:               uuid.New(),
		hotelID:          hotelID,
		bookingID:        bookingID,
		amount:           amount,
		currency:         currency,
		status:           StatusCompleted,
		method:           method,
		gatewayReference: gatewayReference,
	}, nil
}

func ReconstructPayment(
	id, hotelID, bookingID uuid.UUID,
	amount float64,
	currency string,
	status Status,
	method string,
	gatewayReference *string,
	createdAt time.Time,
) *Payment {
	return &Payment{
		id:               id,
		hotelID:          hotelID,
		bookingID:        bookingID,
		amount:           amount,
		currency:         currency,
		status:           status,
		method:           method,
		gatewayReference: gatewayReference,
		createdAt:        createdAt,
	}
}

func (p *Payment) ID() uuid.UUID             { return p.id }
func (p *Payment) HotelID() uuid.UUID        { return p.hotelID }
func (p *Payment) BookingID() uuid.UUID      { return p.bookingID }
func (p *Payment) Amount() float64           { return p.amount }
func (p *Payment) Currency() string          { return p.currency }
func (p *Payment) Status() Status            { return p.status }
func (p *Payment) Method() string            { return p.method }
func (p *Payment) GatewayReference() *string { return p.gatewayReference }
func (p *Payment) CreatedAt() time.Time      { return p.createdAt }
