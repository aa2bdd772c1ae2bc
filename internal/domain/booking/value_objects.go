package booking

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNegativePrice = errors.New("line item price cannot be negative")

// StayRange is the half-open interval [checkIn, checkOut): the checkout
// date itself is not occupied. checkIn < checkOut is not validated here;
// callers may pass arbitrary ranges and the downstream math tolerates
// them.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) StayRange {
	return StayRange{
		checkIn:  truncateToDay(checkIn),
		checkOut: truncateToDay(checkOut),
	}
}

func (s StayRange) CheckIn() time.Time  { return s.checkIn }
func (s StayRange) CheckOut() time.Time { return s.checkOut }

// Occupies reports whether the stay occupies the given day.
func (s StayRange) Occupies(day time.Time) bool {
	d := truncateToDay(day)
	return !d.Before(s.checkIn) && d.Before(s.checkOut)
}

// Overlaps reports whether the stay intersects [start, end] (dates
// inclusive on both ends, stay half-open).
func (s StayRange) Overlaps(start, end time.Time) bool {
	return !s.checkIn.After(truncateToDay(end)) && s.checkOut.After(truncateToDay(start))
}

func (s StayRange) Nights() int {
	n := int(s.checkOut.Sub(s.checkIn).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RoomSelection is an embedded snapshot of one room sold within a booking.
// It captures names and prices at time of sale and is never re-resolved
// against the live catalog.
type RoomSelection struct {
	ID            uuid.UUID `json:"id"`
	RoomTypeID    uuid.UUID `json:"room_type_id"`
	RoomTypeName  string    `json:"room_type_name"`
	RatePlanID    uuid.UUID `json:"rate_plan_id"`
	RatePlanName  string    `json:"rate_plan_name"`
	Guests        int       `json:"guests"`
	Children      int       `json:"children"`
	PricePerNight float64   `json:"price_per_night"`
	TotalPrice    float64   `json:"total_price"`
}

func NewRoomSelection(
	roomTypeID uuid.UUID,
	roomTypeName string,
	ratePlanID uuid.UUID,
	ratePlanName string,
	guests, children int,
	pricePerNight, totalPrice float64,
) (RoomSelection, error) {
	if pricePerNight < 0 || totalPrice < 0 {
		return RoomSelection{}, ErrNegativePrice
	}
	if guests < 1 {
		guests = 1
	}
	if children < 0 {
		children = 0
	}
	return RoomSelection{
		ID:            uuid.New(),
		RoomTypeID:    roomTypeID,
		RoomTypeName:  roomTypeName,
		RatePlanID:    ratePlanID,
		RatePlanName:  ratePlanName,
		Guests:        guests,
		Children:      children,
		PricePerNight: pricePerNight,
		TotalPrice:    totalPrice,
	}, nil
}

const numberSuffixLen = 6

// GenerateNumber builds a human-readable booking number: BK + yyyymmdd +
// 6 random hex chars. Practically unique, not collision-checked.
func GenerateNumber(now time.Time) string {
	var buf [3]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fall back to a UUID-derived suffix if the entropy source fails.
		return "BK" + now.UTC().Format("20060102") + strings.ToUpper(uuid.NewString()[:numberSuffixLen])
	}
	return "BK" + now.UTC().Format("20060102") + strings.ToUpper(hex.EncodeToString(buf[:]))
}
