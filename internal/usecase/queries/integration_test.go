//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hotelier-hub/internal/domain/hotel"
	"hotelier-hub/internal/domain/integration"
	"hotelier-hub/internal/pkg/config"
	"hotelier-hub/internal/usecase/queries"
	"hotelier-hub/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIntegrationQueryEnv(t *testing.T) (queries.IntegrationQueries, *fake.Store) {
	t.Helper()
	store := fake.NewStore()
	cfg := config.PublicConfig{WidgetBaseURL: "https://book.example.com"}
	return queries.NewIntegrationQueries(fake.NewUnitOfWork(store), cfg), store
}

func seedHotel(t *testing.T, store *fake.Store, name string) *hotel.Hotel {
	t.Helper()
	slug, err := hotel.SlugFromName(name)
	require.NoError(t, err)
	h := hotel.NewHotel(name, slug)
	require.NoError(t, store.Hotels().Create(context.Background(), h))
	return h
}

func TestIntegrationQueries_Settings(t *testing.T) {
	ctx := context.Background()
	hotelID := uuid.New()

	t.Run("first read creates the default row", func(t *testing.T) {
		q, store := newIntegrationQueryEnv(t)

		s, err := q.Settings(ctx, hotelID)
		require.NoError(t, err)
		assert.True(t, s.WidgetEnabled())
		assert.Equal(t, integration.DefaultWidgetTheme, s.WidgetTheme())

		persisted, err := store.Integrations().FindSettings(ctx, hotelID)
		require.NoError(t, err)
		assert.Equal(t, s.ID(), persisted.ID())
	})

	t.Run("subsequent reads return the same row", func(t *testing.T) {
		q, _ := newIntegrationQueryEnv(t)

		first, err := q.Settings(ctx, hotelID)
		require.NoError(t, err)
		second, err := q.Settings(ctx, hotelID)
		require.NoError(t, err)
		assert.Equal(t, first.ID(), second.ID())
	})
}

func TestIntegrationQueries_WidgetCode(t *testing.T) {
	ctx := context.Background()

	t.Run("renders the hotel slug and configured base url", func(t *testing.T) {
		q, store := newIntegrationQueryEnv(t)
		h := seedHotel(t, store, "Sunrise Inn")

		code, err := q.WidgetCode(ctx, h.ID())
		require.NoError(t, err)

		assert.Contains(t, code.HTMLCode, `data-hotel-slug="sunrise-inn"`)
		assert.Contains(t, code.JavaScriptCode, "https://book.example.com/widget.js")
		assert.Contains(t, code.JavaScriptCode, "hotelSlug: 'sunrise-inn'")
		assert.Contains(t, code.CSSCode, "#hotelier-booking-widget")
		assert.Contains(t, code.Instructions, "https://book.example.com/book/sunrise-inn")
	})

	t.Run("uses saved widget settings", func(t *testing.T) {
		q, store := newIntegrationQueryEnv(t)
		h := seedHotel(t, store, "Sunrise Inn")

		s := integration.NewDefaultSettings(h.ID())
		theme := "dark"
		color := "#123456"
		s.Apply(integration.Patch{WidgetTheme: &theme, WidgetPrimaryColor: &color})
		require.NoError(t, store.Integrations().CreateSettings(ctx, s))

		code, err := q.WidgetCode(ctx, h.ID())
		require.NoError(t, err)
		assert.Contains(t, code.HTMLCode, `data-theme="dark"`)
		assert.Contains(t, code.HTMLCode, `data-color="#123456"`)
	})

	t.Run("missing settings row falls back to defaults without persisting", func(t *testing.T) {
		q, store := newIntegrationQueryEnv(t)
		h := seedHotel(t, store, "Sunrise Inn")

		code, err := q.WidgetCode(ctx, h.ID())
		require.NoError(t, err)
		assert.Contains(t, code.HTMLCode, `data-theme="`+integration.DefaultWidgetTheme+`"`)

		_, err = store.Integrations().FindSettings(ctx, h.ID())
		assert.Error(t, err)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		q, _ := newIntegrationQueryEnv(t)

		_, err := q.WidgetCode(ctx, uuid.New())
		assert.ErrorIs(t, err, queries.ErrHotelNotFound)
	})
}
