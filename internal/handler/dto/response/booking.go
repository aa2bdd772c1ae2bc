package response

import (
	"time"

	"hotelier-hub/internal/domain/booking"
	"hotelier-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type GuestResponse struct {
	ID          uuid.UUID `json:"id"`
	HotelID     uuid.UUID `json:"hotel_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
	Nationality *string   `json:"nationality,omitempty"`
	IDType      *string   `json:"id_type,omitempty"`
	IDNumber    *string   `json:"id_number,omitempty"`
	Address     *string   `json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type BookingResponse struct {
	ID              uuid.UUID               `json:"id"`
	HotelID         uuid.UUID               `json:"hotel_id"`
	BookingNumber   string                  `json:"booking_number"`
	Guest           *GuestResponse          `json:"guest"`
	CheckIn         string                  `json:"check_in"`
	CheckOut        string                  `json:"check_out"`
	Status          string                  `json:"status"`
	Rooms           []booking.RoomSelection `json:"rooms"`
	TotalAmount     float64                 `json:"total_amount"`
	PaidAmount      float64                 `json:"paid_amount"`
	SpecialRequests *string                 `json:"special_requests,omitempty"`
	PromoCode       *string                 `json:"promo_code,omitempty"`
	Source          string                  `json:"source"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

func FromGuest(g *booking.Guest) *GuestResponse {
	if g == nil {
		return nil
	}
	return &GuestResponse{
		ID:          g.ID(),
		HotelID:     g.HotelID(),
		FirstName:   g.FirstName(),
		LastName:    g.LastName(),
		Email:       g.Email(),
		Phone:       g.Phone(),
		Nationality: g.Nationality(),
		IDType:      g.IDType(),
		IDNumber:    g.IDNumber(),
		Address:     g.Address(),
		CreatedAt:   g.CreatedAt(),
	}
}

func FromGuests(gs []*booking.Guest) []*GuestResponse {
	out := make([]*GuestResponse, 0, len(gs))
	for _, g := range gs {
		out = append(out, FromGuest(g))
	}
	return out
}

func FromBooking(b *booking.Booking, g *booking.Guest) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID(),
		HotelID:         b.HotelID(),
		BookingNumber:   b.Number(),
		Guest:           FromGuest(g),
		CheckIn:         b.Stay().CheckIn().Format(dateLayout),
		CheckOut:        b.Stay().CheckOut().Format(dateLayout),
		Status:          b.Status().String(),
		Rooms:           b.Rooms(),
		TotalAmount:     b.TotalAmount(),
		PaidAmount:      b.PaidAmount(),
		SpecialRequests: b.SpecialRequests(),
		PromoCode:       b.PromoCode(),
		Source:          string(b.Source()),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return FromBooking(v.Booking, v.Guest)
}

func FromBookingViews(vs []queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(vs))
	for i := range vs {
		out = append(out, FromBookingView(&vs[i]))
	}
	return out
}
