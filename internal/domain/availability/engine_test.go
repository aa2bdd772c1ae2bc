//go:build unit

package availability_test

import (
	"testing"
	"time"

	"hotelier-hub/internal/domain/availability"
	"hotelier-hub/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func stay(checkIn, checkOut time.Time, roomTypes ...uuid.UUID) availability.BookedStay {
	return availability.BookedStay{
		Stay:      booking.NewStayRange(checkIn, checkOut),
		RoomTypes: roomTypes,
	}
}

func TestCalculate(t *testing.T) {
	roomA := uuid.New()

	t.Run("two overlapping stays exhaust inventory of two", func(t *testing.T) {
		roomTypes := []availability.RoomTypeInventory{{ID: roomA, Name: "Deluxe", TotalInventory: 2}}
		stays := []availability.BookedStay{
			stay(day(2024, 6, 1), day(2024, 6, 3), roomA),
			stay(day(2024, 6, 1), day(2024, 6, 3), roomA),
		}

		got := availability.Calculate(roomTypes, stays, day(2024, 6, 1), day(2024, 6, 2))
		require.Len(t, got, 1)

		want := []availability.DayAvailability{
			{Date: day(2024, 6, 1), Total: 2, Booked: 2, Available: 0},
			{Date: day(2024, 6, 2), Total: 2, Booked: 2, Available: 0},
		}
		if diff := cmp.Diff(want, got[0].Days); diff != "" {
			t.Errorf("days mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("removing one stay frees one unit", func(t *testing.T) {
		roomTypes := []availability.RoomTypeInventory{{ID: roomA, Name: "Deluxe", TotalInventory: 2}}
		stays := []availability.BookedStay{
			stay(day(2024, 6, 1), day(2024, 6, 3), roomA),
		}

		got := availability.Calculate(roomTypes, stays, day(2024, 6, 1), day(2024, 6, 2))
		require.Len(t, got, 1)
		for _, d := range got[0].Days {
			assert.Equal(t, 1, d.Booked)
			assert.Equal(t, 1, d.Available)
		}
	})

	t.Run("checkout date is not occupied", func(t *testing.T) {
		roomTypes := []availability.RoomTypeInventory{{ID: roomA, Name: "Deluxe", TotalInventory: 1}}
		stays := []availability.BookedStay{
			stay(day(2024, 6, 1), day(2024, 6, 3), roomA),
		}

		got := availability.Calculate(roomTypes, stays, day(2024, 6, 1), day(2024, 6, 3))
		require.Len(t, got, 1)
		require.Len(t, got[0].Days, 3)
		assert.Equal(t, 1, got[0].Days[0].Booked)
		assert.Equal(t, 1, got[0].Days[1].Booked)
		assert.Equal(t, 0, got[0].Days[2].Booked)
		assert.Equal(t, 1, got[0].Days[2].Available)
	})

	t.Run("empty range yields one day", func(t *testing.T) {
		roomTypes := []availability.RoomTypeInventory{{ID: roomA, Name: "Deluxe", TotalInventory: 3}}

		got := availability.Calculate(roomTypes, nil, day(2024, 6, 1), day(2024, 6, 1))
		require.Len(t, got, 1)
		require.Len(t, got[0].Days, 1)
		assert.Equal(t, 3, got[0].Days[0].Available)
	})

	t.Run("available never goes negative", func(t *testing.T) {
		roomTypes := []availability.RoomTypeInventory{{ID: roomA, Name: "Deluxe", TotalInventory: 1}}
		stays := []availability.BookedStay{
			stay(day(2024, 6, 1), day(2024, 6, 2), roomA),
			stay(day(2024, 6, 1), day(2024, 6, 2), roomA),
			stay(day(2024, 6, 1), day(2024, 6, 2), roomA),
		}

		got := availability.Calculate(roomTypes, stays, day(2024, 6, 1), day(2024, 6, 1))
		require.Len(t, got, 1)
		assert.Equal(t, 3, got[0].Days[0].Booked)
		assert.Equal(t, 0, got[0].Days[0].Available)
	})

	t.Run("stays for other room types are not counted", func(t *testing.T) {
		roomB := uuid.New()
		roomTypes := []availability.RoomTypeInventory{
			{ID: roomA, Name: "Deluxe", TotalInventory: 2},
			{ID: roomB, Name: "Suite", TotalInventory: 1},
		}
		stays := []availability.BookedStay{
			stay(day(2024, 6, 1), day(2024, 6, 2), roomB),
		}

		got := availability.Calculate(roomTypes, stays, day(2024, 6, 1), day(2024, 6, 1))
		require.Len(t, got, 2)
		assert.Equal(t, 0, got[0].Days[0].Booked)
		assert.Equal(t, 1, got[1].Days[0].Booked)
	})

	t.Run("multi-room booking counts each line item", func(t *testing.T) {
		roomTypes := []availability.RoomTypeInventory{{ID: roomA, Name: "Deluxe", TotalInventory: 5}}
		stays := []availability.BookedStay{
			stay(day(2024, 6, 1), day(2024, 6, 2), roomA, roomA),
		}

		got := availability.Calculate(roomTypes, stays, day(2024, 6, 1), day(2024, 6, 1))
		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0].Days[0].Booked)
		assert.Equal(t, 3, got[0].Days[0].Available)
	})
}
