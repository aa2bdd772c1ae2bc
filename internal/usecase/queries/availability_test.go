//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hotelier-hub/internal/domain/booking"
	"hotelier-hub/internal/usecase/queries"
	"hotelier-hub/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityQueries_Get(t *testing.T) {
	ctx := context.Background()
	hotelID := uuid.New()

	t.Run("projects bookings onto the day grid", func(t *testing.T) {
		store := fake.NewStore()
		q := queries.NewAvailabilityQueries(fake.NewUnitOfWork(store))
		rt := seedRoomType(t, store, hotelID, "Deluxe", 3, 2, true)

		// Occupies the nights of the 10th and 11th; the 12th is checkout.
		seedBooking(t, store, hotelID, rt.ID(), booking.StatusConfirmed,
			date(2024, 7, 10), date(2024, 7, 12))

		grid, err := q.Get(ctx, hotelID, date(2024, 7, 9), date(2024, 7, 12))
		require.NoError(t, err)
		require.Len(t, grid, 1)
		require.Len(t, grid[0].Days, 4)

		assert.Equal(t, rt.ID(), grid[0].RoomTypeID)
		booked := make([]int, 0, 4)
		for _, d := range grid[0].Days {
			booked = append(booked, d.Booked)
			assert.Equal(t, 2, d.Total)
			assert.Equal(t, d.Total-d.Booked, d.Available)
		}
		assert.Equal(t, []int{0, 1, 1, 0}, booked)
	})

	t.Run("cancelled bookings release their nights", func(t *testing.T) {
		store := fake.NewStore()
		q := queries.NewAvailabilityQueries(fake.NewUnitOfWork(store))
		rt := seedRoomType(t, store, hotelID, "Deluxe", 3, 1, true)

		seedBooking(t, store, hotelID, rt.ID(), booking.StatusCancelled,
			date(2024, 7, 10), date(2024, 7, 12))

		grid, err := q.Get(ctx, hotelID, date(2024, 7, 10), date(2024, 7, 11))
		require.NoError(t, err)
		require.Len(t, grid, 1)
		for _, d := range grid[0].Days {
			assert.Zero(t, d.Booked)
			assert.Equal(t, 1, d.Available)
		}
	})

	t.Run("oversubscription clamps available at zero", func(t *testing.T) {
		store := fake.NewStore()
		q := queries.NewAvailabilityQueries(fake.NewUnitOfWork(store))
		rt := seedRoomType(t, store, hotelID, "Single", 2, 1, true)

		for i := 0; i < 3; i++ {
			seedBooking(t, store, hotelID, rt.ID(), booking.StatusConfirmed,
				date(2024, 7, 10), date(2024, 7, 11))
		}

		grid, err := q.Get(ctx, hotelID, date(2024, 7, 10), date(2024, 7, 10))
		require.NoError(t, err)
		require.Len(t, grid, 1)
		require.Len(t, grid[0].Days, 1)
		assert.Equal(t, 3, grid[0].Days[0].Booked)
		assert.Zero(t, grid[0].Days[0].Available)
	})

	t.Run("inactive room types still appear in the grid", func(t *testing.T) {
		store := fake.NewStore()
		q := queries.NewAvailabilityQueries(fake.NewUnitOfWork(store))
		seedRoomType(t, store, hotelID, "Retired", 2, 1, false)

		grid, err := q.Get(ctx, hotelID, date(2024, 7, 10), date(2024, 7, 10))
		require.NoError(t, err)
		assert.Len(t, grid, 1)
	})

	t.Run("rooms of other hotels are invisible", func(t *testing.T) {
		store := fake.NewStore()
		q := queries.NewAvailabilityQueries(fake.NewUnitOfWork(store))
		seedRoomType(t, store, uuid.New(), "Elsewhere", 2, 1, true)

		grid, err := q.Get(ctx, hotelID, date(2024, 7, 10), date(2024, 7, 10))
		require.NoError(t, err)
		assert.Empty(t, grid)
	})
}
