package hotel

// Patch applies a partial profile update. Nil fields keep their current
// value; the slug is never patchable after creation.
type Patch struct {
	Name         *string
	Description  *string
	StarRating   *int
	LogoURL      *string
	PrimaryColor *string
	Address      map[string]any
	Contact      map[string]any
	Settings     map[string]any
}

func (h *Hotel) Apply(p Patch) {
	if p.Name != nil {
		h.name = *p.Name
	}
	if p.Description != nil {
		h.description = p.Description
	}
	if p.StarRating != nil {
		h.starRating = p.StarRating
	}
	if p.LogoURL != nil {
		h.logoURL = p.LogoURL
	}
	if p.PrimaryColor != nil {
		h.primaryColor = p.PrimaryColor
	}
	if p.Address != nil {
		h.address = p.Address
	}
	if p.Contact != nil {
		h.contact = p.Contact
	}
	if p.Settings != nil {
		h.settings = p.Settings
	}
}
