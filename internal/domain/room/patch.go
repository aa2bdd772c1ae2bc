package room

// Patch applies a partial room-type update. Nil fields keep their current
// value.
type Patch struct {
	Name            *string
	Description     *string
	BaseOccupancy   *int
	MaxOccupancy    *int
	MaxChildren     *int
	ExtraBedAllowed *bool
	BasePrice       *float64
	TotalInventory  *int
	Photos          []string
	Amenities       []string
	IsActive        *bool
}

func (r *RoomType) Apply(p Patch) error {
	if p.Name != nil {
		if *p.Name == "" {
			return ErrEmptyName
		}
		r.name = *p.Name
	}
	if p.Description != nil {
		r.description = p.Description
	}
	if p.BaseOccupancy != nil {
		r.baseOccupancy = *p.BaseOccupancy
	}
	if p.MaxOccupancy != nil {
		r.maxOccupancy = *p.MaxOccupancy
	}
	if r.baseOccupancy < 1 || r.maxOccupancy < r.baseOccupancy {
		return ErrInvalidOccupancy
	}
	if p.MaxChildren != nil && *p.MaxChildren >= 0 {
		r.maxChildren = *p.MaxChildren
	}
	if p.ExtraBedAllowed != nil {
		r.extraBedAllowed = *p.ExtraBedAllowed
	}
	if p.BasePrice != nil {
		if *p.BasePrice < 0 {
			return ErrNegativePrice
		}
		r.basePrice = *p.BasePrice
	}
	if p.TotalInventory != nil {
		if *p.TotalInventory < 0 {
			return ErrNegativeInventory
		}
		r.totalInventory = *p.TotalInventory
	}
	if p.Photos != nil {
		r.photos = p.Photos
	}
	if p.Amenities != nil {
		r.amenities = p.Amenities
	}
	if p.IsActive != nil {
		r.isActive = *p.IsActive
	}
	return nil
}
