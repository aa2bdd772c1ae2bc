//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotelier-hub/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStayRangeOccupies(t *testing.T) {
	stay := booking.NewStayRange(day(2024, 6, 10), day(2024, 6, 12))

	tests := []struct {
		name string
		d    time.Time
		want bool
	}{
		{"check-in night", day(2024, 6, 10), true},
		{"middle night", day(2024, 6, 11), true},
		{"check-out day is free", day(2024, 6, 12), false},
		{"day before", day(2024, 6, 9), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stay.Occupies(tt.d))
		})
	}
}

func TestStayRangeOverlaps(t *testing.T) {
	stay := booking.NewStayRange(day(2024, 6, 10), day(2024, 6, 12))

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"fully inside", day(2024, 6, 10), day(2024, 6, 11), true},
		{"range ends on check-in", day(2024, 6, 8), day(2024, 6, 10), true},
		{"range starts on check-out", day(2024, 6, 12), day(2024, 6, 14), false},
		{"disjoint before", day(2024, 6, 1), day(2024, 6, 5), false},
		{"spanning", day(2024, 6, 1), day(2024, 6, 30), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stay.Overlaps(tt.start, tt.end))
		})
	}
}

func TestStayRangeNights(t *testing.T) {
	assert.Equal(t, 2, booking.NewStayRange(day(2024, 6, 10), day(2024, 6, 12)).Nights())
	assert.Equal(t, 1, booking.NewStayRange(day(2024, 6, 10), day(2024, 6, 11)).Nights())
}

func TestNewRoomSelection(t *testing.T) {
	roomTypeID := uuid.New()
	ratePlanID := uuid.New()

	t.Run("valid", func(t *testing.T) {
		sel, err := booking.NewRoomSelection(roomTypeID, "Deluxe", ratePlanID, "BB", 2, 1, 50, 100)
		require.NoError(t, err)
		assert.Equal(t, 2, sel.Guests)
		assert.Equal(t, 1, sel.Children)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := booking.NewRoomSelection(roomTypeID, "Deluxe", ratePlanID, "BB", 2, 0, -1, 100)
		assert.ErrorIs(t, err, booking.ErrNegativePrice)
	})

	t.Run("clamps guest counts", func(t *testing.T) {
		sel, err := booking.NewRoomSelection(roomTypeID, "Deluxe", ratePlanID, "BB", 0, -2, 50, 100)
		require.NoError(t, err)
		assert.Equal(t, 1, sel.Guests)
		assert.Equal(t, 0, sel.Children)
	})
}

func TestGenerateNumber(t *testing.T) {
	now := time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC)
	seen := make(map[string]struct{})
	for range 20 {
		n := booking.GenerateNumber(now)
		assert.Len(t, n, len("BK20241231")+6)
		assert.Contains(t, n, "BK20241231")
		seen[n] = struct{}{}
	}
	assert.Greater(t, len(seen), 1, "numbers should not repeat")
}
