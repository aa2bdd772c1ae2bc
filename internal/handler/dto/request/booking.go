package request

import (
	"hotelier-hub/internal/domain/booking"
	"hotelier-hub/internal/usecase/commands"

	"github.com/google/uuid"
)

type GuestRequest struct {
	FirstName   string  `json:"first_name" binding:"required"`
	LastName    string  `json:"last_name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Phone       *string `json:"phone,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
	IDType      *string `json:"id_type,omitempty"`
	IDNumber    *string `json:"id_number,omitempty"`
	Address     *string `json:"address,omitempty"`
}

type BookingRoomRequest struct {
	RoomTypeID    uuid.UUID `json:"room_type_id" binding:"required"`
	RoomTypeName  string    `json:"room_type_name"`
	RatePlanID    uuid.UUID `json:"rate_plan_id"`
	RatePlanName  string    `json:"rate_plan_name"`
	Guests        int       `json:"guests"`
	Children      int       `json:"children"`
	PricePerNight float64   `json:"price_per_night" binding:"min=0"`
	TotalPrice    float64   `json:"total_price" binding:"min=0"`
}

type CreateBookingRequest struct {
	CheckIn         string               `json:"check_in" binding:"required"`
	CheckOut        string               `json:"check_out" binding:"required"`
	Guest           GuestRequest         `json:"guest" binding:"required"`
	Rooms           []BookingRoomRequest `json:"rooms" binding:"required,min=1"`
	SpecialRequests *string              `json:"special_requests,omitempty"`
	PromoCode       *string              `json:"promo_code,omitempty"`
	Source          string               `json:"source"`
}

func (r *CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	checkIn, err := parseDate(r.CheckIn)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	checkOut, err := parseDate(r.CheckOut)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}

	rooms := make([]booking.RoomSelection, 0, len(r.Rooms))
	for _, room := range r.Rooms {
		sel, err := booking.NewRoomSelection(
			room.RoomTypeID, room.RoomTypeName,
			room.RatePlanID, room.RatePlanName,
			room.Guests, room.Children,
			room.PricePerNight, room.TotalPrice,
		)
		if err != nil {
			return commands.CreateBookingInput{}, err
		}
		rooms = append(rooms, sel)
	}

	return commands.CreateBookingInput{
		Guest: commands.GuestInput{
			FirstName:   r.Guest.FirstName,
			LastName:    r.Guest.LastName,
			Email:       r.Guest.Email,
			Phone:       r.Guest.Phone,
			Nationality: r.Guest.Nationality,
			IDType:      r.Guest.IDType,
			IDNumber:    r.Guest.IDNumber,
			Address:     r.Guest.Address,
		},
		Stay:            booking.NewStayRange(checkIn, checkOut),
		Rooms:           rooms,
		SpecialRequests: r.SpecialRequests,
		PromoCode:       r.PromoCode,
		Source:          booking.Source(r.Source),
	}, nil
}

type UpdateBookingRequest struct {
	Status          *string  `json:"status,omitempty"`
	PaidAmount      *float64 `json:"paid_amount,omitempty"`
	SpecialRequests *string  `json:"special_requests,omitempty"`
}

func (r *UpdateBookingRequest) ToInput() (commands.UpdateBookingInput, error) {
	in := commands.UpdateBookingInput{
		PaidAmount:      r.PaidAmount,
		SpecialRequests: r.SpecialRequests,
	}
	if r.Status != nil {
		s := booking.Status(*r.Status)
		if !s.IsValid() {
			return commands.UpdateBookingInput{}, booking.ErrInvalidStatus
		}
		in.Status = &s
	}
	return in, nil
}
