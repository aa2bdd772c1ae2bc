// Package rates holds the pricing catalog: named rate plans and optional
// date-ranged price overrides. The catalog is informational; booking
// creation and availability never consult it.
package rates

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("rate plan name cannot be empty")
	ErrNegativePrice   = errors.New("rate price cannot be negative")
	ErrInvalidDateSpan = errors.New("rate date_from must not be after date_to")
)

const (
	DefaultMealPlan          = "RO"
	DefaultCancellationHours = 24
)

// RatePlan is a named pricing/cancellation policy for one hotel.
type RatePlan struct {
	id                uuid.UUID
	hotelID           uuid.UUID
	name              string
	description       *string
	mealPlan          string
	isRefundable      bool
	cancellationHours int
	isActive          bool
	createdAt         time.Time
	updatedAt         time.Time
}

func NewRatePlan(hotelID uuid.UUID, name string, description *string, mealPlan string, isRefundable bool, cancellationHours int) (*RatePlan, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if mealPlan == "" {
		mealPlan = DefaultMealPlan
	}
	if cancellationHours < 0 {
		cancellationHours = DefaultCancellationHours
	}

	return &RatePlan{
		id:                uuid.New(),
		hotelID:           hotelID,
		name:              name,
		description:       description,
		mealPlan:          mealPlan,
		isRefundable:      isRefundable,
		cancellationHours: cancellationHours,
		isActive:          true,
	}, nil
}

func ReconstructRatePlan(
	id, hotelID uuid.UUID,
	name string,
	description *string,
	mealPlan string,
	isRefundable bool,
	cancellationHours int,
	isActive bool,
	createdAt, updatedAt time.Time,
) *RatePlan {
	return &RatePlan{
		id:                id,
		hotelID:           hotelID,
		name:              name,
		description:       description,
		mealPlan:          mealPlan,
		isRefundable:      isRefundable,
		cancellationHours: cancellationHours,
		isActive:          isActive,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (p *RatePlan) ID() uuid.UUID          { return p.id }
func (p *RatePlan) HotelID() uuid.UUID     { return p.hotelID }
func (p *RatePlan) Name() string           { return p.name }
func (p *RatePlan) Description() *string   { return p.description }
func (p *RatePlan) MealPlan() string       { return p.mealPlan }
func (p *RatePlan) IsRefundable() bool     { return p.isRefundable }
func (p *RatePlan) CancellationHours() int { return p.cancellationHours }
func (p *RatePlan) IsActive() bool         { return p.isActive }
func (p *RatePlan) CreatedAt() time.Time   { return p.createdAt }
func (p *RatePlan) UpdatedAt() time.Time   { return p.updatedAt }

// RoomRate overrides the price for a (room type, rate plan) pair over a
// date span.
type RoomRate struct {
	id         uuid.UUID
	hotelID    uuid.UUID
	roomTypeID uuid.UUID
	ratePlanID uuid.UUID
	dateFrom   time.Time
	dateTo     time.Time
	price      float64
	createdAt  time.Time
}

func NewRoomRate(hotelID, roomTypeID, ratePlanID uuid.UUID, dateFrom, dateTo time.Time, price float64) (*RoomRate, error) {
	if price < 0 {
		return nil, ErrNegativePrice
	}
	if dateFrom.After(dateTo) {
		return nil, ErrInvalidDateSpan
	}

	return &RoomRate{
		id:         uuid.New(),
		hotelID:    hotelID,
		roomTypeID: roomTypeID,
		ratePlanID: ratePlanID,
		dateFrom:   dateFrom,
		dateTo:     dateTo,
		price:      price,
	}, nil
}

func ReconstructRoomRate(id, hotelID, roomTypeID, ratePlanID uuid.UUID, dateFrom, dateTo time.Time, price float64, createdAt time.Time) *RoomRate {
	return &RoomRate{
		id:         id,
		hotelID:    hotelID,
		roomTypeID: roomTypeID,
		ratePlanID: ratePlanID,
		dateFrom:   dateFrom,
		dateTo:     dateTo,
		price:      price,
		createdAt:  createdAt,
	}
}

func (r *RoomRate) ID() uuid.UUID         { return r.id }
func (r *RoomRate) HotelID() uuid.UUID    { return r.hotelID }
func (r *RoomRate) RoomTypeID() uuid.UUID { return r.roomTypeID }
func (r *RoomRate) RatePlanID() uuid.UUID { return r.ratePlanID }
func (r *RoomRate) DateFrom() time.Time   { return r.dateFrom }
func (r *RoomRate) DateTo() time.Time     { return r.dateTo }
func (r *RoomRate) Price() float64        { return r.price }
func (r *RoomRate) CreatedAt() time.Time  { return r.createdAt }
