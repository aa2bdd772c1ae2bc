package response

import (
	"time"

	"hotelier-hub/internal/domain/room"

	"github.com/google/uuid"
)

type RoomTypeResponse struct {
	ID              uuid.UUID `json:"id"`
	HotelID         uuid.UUID `json:"hotel_id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	BaseOccupancy   int       `json:"base_occupancy"`
	MaxOccupancy    int       `json:"max_occupancy"`
	MaxChildren     int       `json:"max_children"`
	ExtraBedAllowed bool      `json:"extra_bed_allowed"`
	BasePrice       float64   `json:"base_price"`
	TotalInventory  int       `json:"total_inventory"`
	Photos          []string  `json:"photos"`
	Amenities       []string  `json:"amenities"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromRoomType(rt *room.RoomType) *RoomTypeResponse {
	return &RoomTypeResponse{
		ID:              rt.ID(),
		HotelID:         rt.HotelID(),
		Name:            rt.Name(),
		Description:     rt.Description(),
		BaseOccupancy:   rt.BaseOccupancy(),
		MaxOccupancy:    rt.MaxOccupancy(),
		MaxChildren:     rt.MaxChildren(),
		ExtraBedAllowed: rt.ExtraBedAllowed(),
		BasePrice:       rt.BasePrice(),
		TotalInventory:  rt.TotalInventory(),
		Photos:          rt.Photos(),
		Amenities:       rt.Amenities(),
		IsActive:        rt.IsActive(),
		CreatedAt:       rt.CreatedAt(),
		UpdatedAt:       rt.UpdatedAt(),
	}
}

func FromRoomTypes(rts []*room.RoomType) []*RoomTypeResponse {
	out := make([]*RoomTypeResponse, 0, len(rts))
	for _, rt := range rts {
		out = append(out, FromRoomType(rt))
	}
	return out
}
