//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotelier-hub/internal/domain/booking"
	"hotelier-hub/internal/domain/hotel"
	"hotelier-hub/internal/domain/room"
	"hotelier-hub/internal/usecase/queries"
	"hotelier-hub/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRoomType(t *testing.T, store *fake.Store, hotelID uuid.UUID, name string, maxOccupancy, inventory int, active bool) *room.RoomType {
	t.Helper()
	rt, err := room.NewRoomType(hotelID, name, nil, 2, maxOccupancy, 1, false, 100, inventory, nil, nil)
	require.NoError(t, err)
	if !active {
		rt = room.ReconstructRoomType(rt.ID(), rt.HotelID(), rt.Name(), rt.Description(),
			rt.BaseOccupancy(), rt.MaxOccupancy(), rt.MaxChildren(), rt.ExtraBedAllowed(),
			rt.BasePrice(), rt.TotalInventory(), rt.Photos(), rt.Amenities(), false,
			time.Now(), time.Now())
	}
	require.NoError(t, store.RoomTypes().Create(context.Background(), rt))
	return rt
}

func seedBooking(t *testing.T, store *fake.Store, hotelID, roomTypeID uuid.UUID, status booking.Status, checkIn, checkOut time.Time) {
	t.Helper()
	sel, err := booking.NewRoomSelection(roomTypeID, "room", uuid.New(), "rate", 2, 0, 100, 200)
	require.NoError(t, err)
	b := booking.ReconstructBooking(uuid.New(), hotelID, uuid.New(), "BK-test",
		booking.NewStayRange(checkIn, checkOut), status, []booking.RoomSelection{sel},
		200, 0, nil, nil, booking.SourceDirect, time.Now(), time.Now())
	require.NoError(t, store.Bookings().Create(context.Background(), b))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPublicQueries_SearchRooms(t *testing.T) {
	ctx := context.Background()
	hotelID := uuid.New()
	checkIn := date(2024, 7, 10)
	checkOut := date(2024, 7, 12)

	t.Run("filters by party size", func(t *testing.T) {
		store := fake.NewStore()
		q := queries.NewPublicQueries(fake.NewUnitOfWork(store))
		small := seedRoomType(t, store, hotelID, "Single", 1, 5, true)
		large := seedRoomType(t, store, hotelID, "Family", 4, 5, true)

		got, err := q.SearchRooms(ctx, hotelID, checkIn, checkOut, 3)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, large.ID(), got[0].ID())
		assert.NotEqual(t, small.ID(), got[0].ID())
	})

	t.Run("inactive room types never surface", func(t *testing.T) {
		store := fake.NewStore()
		q := queries.NewPublicQueries(fake.NewUnitOfWork(store))
		seedRoomType(t, store, hotelID, "Retired", 4, 5, false)

		got, err := q.SearchRooms(ctx, hotelID, checkIn, checkOut, 2)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("sold out over the range drops the room type", func(t *testing.T) {
		store := fake.NewStore()
		q := queries.NewPublicQueries(fake.NewUnitOfWork(store))
		rt := seedRoomType(t, store, hotelID, "Deluxe", 3, 2, true)

		seedBooking(t, store, hotelID, rt.ID(), booking.StatusConfirmed, checkIn, checkOut)
		seedBooking(t, store, hotelID, rt.ID(), booking.StatusCheckedIn, checkIn, checkOut)

		got, err := q.SearchRooms(ctx, hotelID, checkIn, checkOut, 2)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("pending and cancelled bookings do not block a sale", func(t *testing.T) {
		store := fake.NewStore()
		q := queries.NewPublicQueries(fake.NewUnitOfWork(store))
		rt := seedRoomType(t, store, hotelID, "Deluxe", 3, 1, true)

		seedBooking(t, store, hotelID, rt.ID(), booking.StatusPending, checkIn, checkOut)
		seedBooking(t, store, hotelID, rt.ID(), booking.StatusCancelled, checkIn, checkOut)

		got, err := q.SearchRooms(ctx, hotelID, checkIn, checkOut, 2)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("a stay ending before the range leaves stock free", func(t *testing.T) {
		store := fake.NewStore()
		q := queries.NewPublicQueries(fake.NewUnitOfWork(store))
		rt := seedRoomType(t, store, hotelID, "Deluxe", 3, 1, true)

		seedBooking(t, store, hotelID, rt.ID(), booking.StatusConfirmed, date(2024, 7, 5), date(2024, 7, 8))

		got, err := q.SearchRooms(ctx, hotelID, checkIn, checkOut, 2)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("a checkout on the arrival day does not collide", func(t *testing.T) {
		store := fake.NewStore()
		q := queries.NewPublicQueries(fake.NewUnitOfWork(store))
		rt := seedRoomType(t, store, hotelID, "Deluxe", 3, 1, true)

		seedBooking(t, store, hotelID, rt.ID(), booking.StatusConfirmed, date(2024, 7, 8), checkIn)

		got, err := q.SearchRooms(ctx, hotelID, checkIn, checkOut, 2)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestPublicQueries_HotelLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("by slug", func(t *testing.T) {
		store := fake.NewStore()
		q := queries.NewPublicQueries(fake.NewUnitOfWork(store))

		slug, err := hotel.SlugFromName("Sunrise Inn")
		require.NoError(t, err)
		h := hotel.NewHotel("Sunrise Inn", slug)
		require.NoError(t, store.Hotels().Create(ctx, h))

		got, err := q.HotelBySlug(ctx, "sunrise-inn")
		require.NoError(t, err)
		assert.Equal(t, h.ID(), got.ID())
	})

	t.Run("malformed slug behaves like a miss", func(t *testing.T) {
		q := queries.NewPublicQueries(fake.NewUnitOfWork(fake.NewStore()))

		_, err := q.HotelBySlug(ctx, "Not A Slug!")
		assert.ErrorIs(t, err, queries.ErrHotelNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		q := queries.NewPublicQueries(fake.NewUnitOfWork(fake.NewStore()))

		_, err := q.HotelByID(ctx, uuid.New())
		assert.ErrorIs(t, err, queries.ErrHotelNotFound)
	})
}
