package response

import (
	"time"

	"hotelier-hub/internal/domain/rates"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type RatePlanResponse struct {
	ID                uuid.UUID `json:"id"`
	HotelID           uuid.UUID `json:"hotel_id"`
	Name              string    `json:"name"`
	Description       *string   `json:"description,omitempty"`
	MealPlan          string    `json:"meal_plan"`
	IsRefundable      bool      `json:"is_refundable"`
	CancellationHours int       `json:"cancellation_hours"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type RoomRateResponse struct {
	ID         uuid.UUID `json:"id"`
	HotelID    uuid.UUID `json:"hotel_id"`
	RoomTypeID uuid.UUID `json:"room_type_id"`
	RatePlanID uuid.UUID `json:"rate_plan_id"`
	DateFrom   string    `json:"date_from"`
	DateTo     string    `json:"date_to"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromRatePlan(p *rates.RatePlan) *RatePlanResponse {
	return &RatePlanResponse{
		ID:                p.ID(),
		HotelID:           p.HotelID(),
		Name:              p.Name(),
		Description:       p.Description(),
		MealPlan:          p.MealPlan(),
		IsRefundable:      p.IsRefundable(),
		CancellationHours: p.CancellationHours(),
		IsActive:          p.IsActive(),
		CreatedAt:         p.CreatedAt(),
		UpdatedAt:         p.UpdatedAt(),
	}
}

func FromRatePlans(plans []*rates.RatePlan) []*RatePlanResponse {
	out := make([]*RatePlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, FromRatePlan(p))
	}
	return out
}

func FromRoomRate(r *rates.RoomRate) *RoomRateResponse {
	return &RoomRateResponse{
		ID:         r.ID(),
		HotelID:    r.HotelID(),
		RoomTypeID: r.RoomTypeID(),
		RatePlanID: r.RatePlanID(),
		DateFrom:   r.DateFrom().Format(dateLayout),
		DateTo:     r.DateTo().Format(dateLayout),
		Price:      r.Price(),
		CreatedAt:  r.CreatedAt(),
	}
}

func FromRoomRates(rs []*rates.RoomRate) []*RoomRateResponse {
	out := make([]*RoomRateResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRoomRate(r))
	}
	return out
}
