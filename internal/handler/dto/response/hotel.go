package response

import (
	"time"

	"hotelier-hub/internal/domain/hotel"

	"github.com/google/uuid"
)

type HotelResponse struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	Slug         string         `json:"slug"`
	Description  *string        `json:"description,omitempty"`
	StarRating   *int           `json:"star_rating,omitempty"`
	LogoURL      *string        `json:"logo_url,omitempty"`
	PrimaryColor *string        `json:"primary_color,omitempty"`
	Address      map[string]any `json:"address"`
	Contact      map[string]any `json:"contact"`
	Settings     map[string]any `json:"settings"`
	IsActive     bool           `json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func FromHotel(h *hotel.Hotel) *HotelResponse {
	return &HotelResponse{
		ID:           h.ID(),
		Name:         h.Name(),
		Slug:         h.Slug().Value(),
		Description:  h.Description(),
		StarRating:   h.StarRating(),
		LogoURL:      h.LogoURL(),
		PrimaryColor: h.PrimaryColor(),
		Address:      h.Address(),
		Contact:      h.Contact(),
		Settings:     h.Settings(),
		IsActive:     h.IsActive(),
		CreatedAt:    h.CreatedAt(),
		UpdatedAt:    h.UpdatedAt(),
	}
}
