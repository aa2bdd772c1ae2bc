package booking

import (
	"errors"
	"time"

	"hotelier-hub/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrNoRooms       = errors.New("booking must contain at least one room")
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Booking is one stay record. Room line items are embedded snapshots, and
// the total is the sum of caller-supplied line totals: prices are trusted
// as received, never recomputed from the rate catalog.
type Booking struct {
	id              uuid.UUID
	hotelID         uuid.UUID
	guestID         uuid.UUID
	number          string
	stay            StayRange
	status          Status
	rooms           []RoomSelection
	totalAmount     float64
	paidAmount      float64
	specialRequests *string
	promoCode       *string
	source          Source
	createdAt       time.Time
	updatedAt       time.Time
}

func NewBooking(
	clk clock.Clock,
	hotelID, guestID uuid.UUID,
	stay StayRange,
	rooms []RoomSelection,
	specialRequests, promoCode *string,
	source Source,
) (*Booking, error) {
	if len(rooms) == 0 {
		return nil, ErrNoRooms
	}
	if !source.IsValid() {
		source = SourceDirect
	}

	total := 0.0
	for _, r := range rooms {
		if r.TotalPrice < 0 {
			return nil, ErrNegativePrice
		}
		total += r.TotalPrice
	}

	return &Booking{
		id:              uuid.New(),
		hotelID:         hotelID,
		guestID:         guestID,
		number:          GenerateNumber(clk.Now()),
		stay:            stay,
		status:          StatusPending,
		rooms:           rooms,
		totalAmount:     total,
		paidAmount:      0,
		specialRequests: specialRequests,
		promoCode:       promoCode,
		source:          source,
	}, nil
}

func ReconstructBooking(
	id, hotelID, guestID uuid.UUID,
	number string,
	stay StayRange,
	status Status,
	rooms []RoomSelection,
	totalAmount, paidAmount float64,
	specialRequests, promoCode *string,
	source Source,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		hotelID:         hotelID,
		guestID:         guestID,
		number:          number,
		stay:            stay,
		status:          status,
		rooms:           rooms,
		totalAmount:     totalAmount,
		paidAmount:      paidAmount,
		specialRequests: specialRequests,
		promoCode:       promoCode,
		source:          source,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// TransitionTo moves the booking through the lifecycle table. Same-status
// updates are a no-op success so partial updates can resend the current
// status.
func (b *Booking) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidStatusTransition
	}
	b.status = next
	return nil
}

// RecordPayment accrues a payment onto the booking. Amounts are not capped
// against the total and negative amounts are accepted (the informal refund
// convention).
func (b *Booking) RecordPayment(amount float64) {
	b.paidAmount += amount
}

func (b *Booking) SetSpecialRequests(s *string) {
	b.specialRequests = s
}

func (b *Booking) SetPaidAmount(amount float64) {
	b.paidAmount = amount
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) HotelID() uuid.UUID       { return b.hotelID }
func (b *Booking) GuestID() uuid.UUID       { return b.guestID }
func (b *Booking) Number() string           { return b.number }
func (b *Booking) Stay() StayRange          { return b.stay }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) Rooms() []RoomSelection   { return b.rooms }
func (b *Booking) TotalAmount() float64     { return b.totalAmount }
func (b *Booking) PaidAmount() float64      { return b.paidAmount }
func (b *Booking) SpecialRequests() *string { return b.specialRequests }
func (b *Booking) PromoCode() *string       { return b.promoCode }
func (b *Booking) Source() Source           { return b.source }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }
