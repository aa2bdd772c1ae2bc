// Package availability derives per-day remaining inventory for a hotel's
// room types from its non-cancelled bookings. It is a pure computation over
// snapshots handed to it; fetching the inputs is the caller's job.
package availability

import (
	"time"

	"hotelier-hub/internal/domain/booking"

	"github.com/google/uuid"
)

// RoomTypeInventory is the slice of the inventory catalog the engine needs.
type RoomTypeInventory struct {
	ID             uuid.UUID
	Name           string
	TotalInventory int
}

// BookedStay is one non-cancelled booking projected down to its stay range
// and the room type of each embedded line item. One line item reserves one
// unit for every occupied night.
type BookedStay struct {
	Stay      booking.StayRange
	RoomTypes []uuid.UUID
}

// DayAvailability is the per-date slot for one room type.
type DayAvailability struct {
	Date      time.Time `json:"date"`
	Total     int       `json:"total"`
	Booked    int       `json:"booked"`
	Available int       `json:"available"`
	IsBlocked bool      `json:"is_blocked"`
}

// RoomTypeAvailability is one room type's day-by-day breakdown over the
// queried range.
type RoomTypeAvailability struct {
	RoomTypeID   uuid.UUID         `json:"room_type_id"`
	RoomTypeName string            `json:"room_type_name"`
	Days         []DayAvailability `json:"days"`
}

// Calculate walks every date in the inclusive [start, end] range and counts,
// per room type, how many line items occupy that night. A stay occupies the
// half-open [check_in, check_out) interval, so the checkout date itself is
// free. An empty range (start == end) still yields one day.
//
// available is clamped at zero: bookings are created without an inventory
// hold, so overlapping stays can oversubscribe a room type.
func Calculate(roomTypes []RoomTypeInventory, stays []BookedStay, start, end time.Time) []RoomTypeAvailability {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		start, end = end, start
	}

	result := make([]RoomTypeAvailability, 0, len(roomTypes))
	for _, rt := range roomTypes {
		days := make([]DayAvailability, 0, int(end.Sub(start).Hours()/24)+1)
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			booked := 0
			for _, s := range stays {
				if !s.Stay.Occupies(d) {
					continue
				}
				for _, id := range s.RoomTypes {
					if id == rt.ID {
						booked++
					}
				}
			}
			available := rt.TotalInventory - booked
			if available < 0 {
				available = 0
			}
			days = append(days, DayAvailability{
				Date:      d,
				Total:     rt.TotalInventory,
				Booked:    booked,
				Available: available,
			})
		}
		result = append(result, RoomTypeAvailability{
			RoomTypeID:   rt.ID,
			RoomTypeName: rt.Name,
			Days:         days,
		})
	}
	return result
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
