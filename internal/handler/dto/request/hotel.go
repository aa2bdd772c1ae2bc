package request

import (
	"hotelier-hub/internal/domain/hotel"
)

type UpdateHotelRequest struct {
	Name         *string        `json:"name,omitempty"`
	Description  *string        `json:"description,omitempty"`
	StarRating   *int           `json:"star_rating,omitempty" binding:"omitempty,min=1,max=7"`
	LogoURL      *string        `json:"logo_url,omitempty"`
	PrimaryColor *string        `json:"primary_color,omitempty"`
	Address      map[string]any `json:"address,omitempty"`
	Contact      map[string]any `json:"contact,omitempty"`
	Settings     map[string]any `json:"settings,omitempty"`
}

func (r *UpdateHotelRequest) ToPatch() hotel.Patch {
	return hotel.Patch{
		Name:         r.Name,
		Description:  r.Description,
		StarRating:   r.StarRating,
		LogoURL:      r.LogoURL,
		PrimaryColor: r.PrimaryColor,
		Address:      r.Address,
		Contact:      r.Contact,
		Settings:     r.Settings,
	}
}
