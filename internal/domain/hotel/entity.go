package hotel

import (
	"time"

	"github.com/google/uuid"
)

// DefaultSettings mirrors the settings blob a new tenant starts with.
func DefaultSettings() map[string]any {
	return map[string]any{
		"currency":       "INR",
		"timezone":       "Asia/Kolkata",
		"check_in_time":  "14:00",
		"check_out_time": "11:00",
	}
}

func DefaultAddress() map[string]any {
	return map[string]any{
		"city":    "Unknown",
		"country": "India",
	}
}

// Hotel is the tenant root. Address, contact and settings are opaque blobs
// persisted as JSON; the domain never interprets individual keys.
type Hotel struct {
	id           uuid.UUID
	name         string
	slug         Slug
	description  *string
	starRating   *int
	logoURL      *string
	primaryColor *string
	address      map[string]any
	contact      map[string]any
	settings     map[string]any
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewHotel(name string, slug Slug) *Hotel {
	return &Hotel{
		id:       uuid.New(),
		name:     name,
		slug:     slug,
		address:  DefaultAddress(),
		contact:  map[string]any{},
		settings: DefaultSettings(),
		isActive: true,
	}
}

func ReconstructHotel(
	id uuid.UUID,
	name string,
	slug Slug,
	description *string,
	starRating *int,
	logoURL, primaryColor *string,
	address, contact, settings map[string]any,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Hotel {
	return &Hotel{
		id:           id,
		name:         name,
		slug:         slug,
		description:  description,
		starRating:   starRating,
		logoURL:      logoURL,
		primaryColor: primaryColor,
		address:      address,
		contact:      contact,
		settings:     settings,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (h *Hotel) ID() uuid.UUID            { return h.id }
func (h *Hotel) Name() string             { return h.name }
func (h *Hotel) Slug() Slug               { return h.slug }
func (h *Hotel) Description() *string     { return h.description }
func (h *Hotel) StarRating() *int         { return h.starRating }
func (h *Hotel) LogoURL() *string         { return h.logoURL }
func (h *Hotel) PrimaryColor() *string    { return h.primaryColor }
func (h *Hotel) Address() map[string]any  { return h.address }
func (h *Hotel) Contact() map[string]any  { return h.contact }
func (h *Hotel) Settings() map[string]any { return h.settings }
func (h *Hotel) IsActive() bool           { return h.isActive }
func (h *Hotel) CreatedAt() time.Time     { return h.createdAt }
func (h *Hotel) UpdatedAt() time.Time     { return h.updatedAt }
