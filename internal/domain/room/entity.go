package room

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName         = errors.New("room type name cannot be empty")
	ErrNegativeInventory = errors.New("total inventory cannot be negative")
	ErrNegativePrice     = errors.New("base price cannot be negative")
	ErrInvalidOccupancy  = errors.New("occupancy limits must be positive")
)

// RoomType is a sellable category of room, not a physical unit. Inventory is
// a single date-independent count of units of this type.
type RoomType struct {
	id              uuid.UUID
	hotelID         uuid.UUID
	name            string
	description     *string
	baseOccupancy   int
	maxOccupancy    int
	maxChildren     int
	extraBedAllowed bool
	basePrice       float64
	totalInventory  int
	photos          []string
	amenities       []string
	isActive        bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewRoomType(
	hotelID uuid.UUID,
	name string,
	description *string,
	baseOccupancy, maxOccupancy, maxChildren int,
	extraBedAllowed bool,
	basePrice float64,
	totalInventory int,
	photos, amenities []string,
) (*RoomType, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if baseOccupancy < 1 || maxOccupancy < baseOccupancy {
		return nil, ErrInvalidOccupancy
	}
	if basePrice < 0 {
		return nil, ErrNegativePrice
	}
	if totalInventory < 0 {
		return nil, ErrNegativeInventory
	}
	if maxChildren < 0 {
		maxChildren = 0
	}
	if photos == nil {
		photos = []string{}
	}
	if amenities == nil {
		amenities = []string{}
	}

	return &RoomType{
		id:              uuid.New(),
		hotelID:         hotelID,
		name:            name,
		description:     description,
		baseOccupancy:   baseOccupancy,
		maxOccupancy:    maxOccupancy,
		maxChildren:     maxChildren,
		extraBedAllowed: extraBedAllowed,
		basePrice:       basePrice,
		totalInventory:  totalInventory,
		photos:          photos,
		amenities:       amenities,
		isActive:        true,
	}, nil
}

func ReconstructRoomType(
	id, hotelID uuid.UUID,
	name string,
	description *string,
	baseOccupancy, maxOccupancy, maxChildren int,
	extraBedAllowed bool,
	basePrice float64,
	totalInventory int,
	photos, amenities []string,
	isActive bool,
	createdAt, updatedAt time.Time,
) *RoomType {
	return &RoomType{
		id:              id,
		hotelID:         hotelID,
		name:            name,
		description:     description,
		baseOccupancy:   baseOccupancy,
		maxOccupancy:    maxOccupancy,
		maxChildren:     maxChildren,
		extraBedAllowed: extraBedAllowed,
		basePrice:       basePrice,
		totalInventory:  totalInventory,
		photos:          photos,
		amenities:       amenities,
		isActive:        isActive,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (r *RoomType) ID() uuid.UUID        { return r.id }
func (r *RoomType) HotelID() uuid.UUID   { return r.hotelID }
func (r *RoomType) Name() string         { return r.name }
func (r *RoomType) Description() *string { return r.description }
func (r *RoomType) BaseOccupancy() int   { return r.baseOccupancy }
func (r *RoomType) MaxOccupancy() int    { return r.maxOccupancy }
func (r *RoomType) MaxChildren() int     { return r.maxChildren }
func (r *RoomType) ExtraBedAllowed() bool {
	return r.extraBedAllowed
}
func (r *RoomType) BasePrice() float64   { return r.basePrice }
func (r *RoomType) TotalInventory() int  { return r.totalInventory }
func (r *RoomType) Photos() []string     { return r.photos }
func (r *RoomType) Amenities() []string  { return r.amenities }
func (r *RoomType) IsActive() bool       { return r.isActive }
func (r *RoomType) CreatedAt() time.Time { return r.createdAt }
func (r *RoomType) UpdatedAt() time.Time { return r.updatedAt }
