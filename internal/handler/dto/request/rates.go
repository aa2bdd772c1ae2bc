package request

import (
	"time"

	"hotelier-hub/internal/usecase/commands"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

type CreateRatePlanRequest struct {
	Name              string  `json:"name" binding:"required"`
	Description       *string `json:"description,omitempty"`
	MealPlan          string  `json:"meal_plan"`
	IsRefundable      bool    `json:"is_refundable"`
	CancellationHours int     `json:"cancellation_hours" binding:"omitempty,min=0"`
}

func (r *CreateRatePlanRequest) ToInput() commands.CreateRatePlanInput {
	return commands.CreateRatePlanInput{
		Name:              r.Name,
		Description:       r.Description,
		MealPlan:          r.MealPlan,
		IsRefundable:      r.IsRefundable,
		CancellationHours: r.CancellationHours,
	}
}

type CreateRoomRateRequest struct {
	RoomTypeID uuid.UUID `json:"room_type_id" binding:"required"`
	RatePlanID uuid.UUID `json:"rate_plan_id" binding:"required"`
	DateFrom   string    `json:"date_from" binding:"required"`
	DateTo     string    `json:"date_to" binding:"required"`
	Price      float64   `json:"price" binding:"min=0"`
}

func (r *CreateRoomRateRequest) ToInput() (commands.CreateRoomRateInput, error) {
	from, err := parseDate(r.DateFrom)
	if err != nil {
		return commands.CreateRoomRateInput{}, err
	}
	to, err := parseDate(r.DateTo)
	if err != nil {
		return commands.CreateRoomRateInput{}, err
	}
	return commands.CreateRoomRateInput{
		RoomTypeID: r.RoomTypeID,
		RatePlanID: r.RatePlanID,
		DateFrom:   from,
		DateTo:     to,
		Price:      r.Price,
	}, nil
}
