package request

import (
	"hotelier-hub/internal/domain/room"
	"hotelier-hub/internal/usecase/commands"
)

type CreateRoomTypeRequest struct {
	Name            string   `json:"name" binding:"required"`
	Description     *string  `json:"description,omitempty"`
	BaseOccupancy   int      `json:"base_occupancy" binding:"omitempty,min=1"`
	MaxOccupancy    int      `json:"max_occupancy" binding:"omitempty,min=1"`
	MaxChildren     int      `json:"max_children" binding:"omitempty,min=0"`
	ExtraBedAllowed bool     `json:"extra_bed_allowed"`
	BasePrice       float64  `json:"base_price" binding:"min=0"`
	TotalInventory  int      `json:"total_inventory" binding:"omitempty,min=0"`
	Photos          []string `json:"photos,omitempty"`
	Amenities       []string `json:"amenities,omitempty"`
}

// ToInput fills in the catalog defaults for fields the caller omitted.
func (r *CreateRoomTypeRequest) ToInput() commands.CreateRoomTypeInput {
	in := commands.CreateRoomTypeInput{
		Name:            r.Name,
		Description:     r.Description,
		BaseOccupancy:   r.BaseOccupancy,
		MaxOccupancy:    r.MaxOccupancy,
		MaxChildren:     r.MaxChildren,
		ExtraBedAllowed: r.ExtraBedAllowed,
		BasePrice:       r.BasePrice,
		TotalInventory:  r.TotalInventory,
		Photos:          r.Photos,
		Amenities:       r.Amenities,
	}
	if in.BaseOccupancy == 0 {
		in.BaseOccupancy = 2
	}
	if in.MaxOccupancy == 0 {
		in.MaxOccupancy = 3
	}
	if in.TotalInventory == 0 {
		in.TotalInventory = 1
	}
	return in
}

type UpdateRoomTypeRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	BaseOccupancy   *int     `json:"base_occupancy,omitempty" binding:"omitempty,min=1"`
	MaxOccupancy    *int     `json:"max_occupancy,omitempty" binding:"omitempty,min=1"`
	MaxChildren     *int     `json:"max_children,omitempty" binding:"omitempty,min=0"`
	ExtraBedAllowed *bool    `json:"extra_bed_allowed,omitempty"`
	BasePrice       *float64 `json:"base_price,omitempty" binding:"omitempty,min=0"`
	TotalInventory  *int     `json:"total_inventory,omitempty" binding:"omitempty,min=0"`
	Photos          []string `json:"photos,omitempty"`
	Amenities       []string `json:"amenities,omitempty"`
	IsActive        *bool    `json:"is_active,omitempty"`
}

func (r *UpdateRoomTypeRequest) ToPatch() room.Patch {
	return room.Patch{
		Name:            r.Name,
		Description:     r.Description,
		BaseOccupancy:   r.BaseOccupancy,
		MaxOccupancy:    r.MaxOccupancy,
		MaxChildren:     r.MaxChildren,
		ExtraBedAllowed: r.ExtraBedAllowed,
		BasePrice:       r.BasePrice,
		TotalInventory:  r.TotalInventory,
		Photos:          r.Photos,
		Amenities:       r.Amenities,
		IsActive:        r.IsActive,
	}
}
