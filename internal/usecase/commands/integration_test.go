//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"hotelier-hub/internal/domain/integration"
	"hotelier-hub/internal/pkg/clock"
	"hotelier-hub/internal/usecase/commands"
	"hotelier-hub/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIntegrationEnv(t *testing.T) (commands.IntegrationCommands, *fake.Store, *clock.MockClock) {
	t.Helper()
	store := fake.NewStore()
	clk := clock.NewMockClock(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	return commands.NewIntegrationCommands(fake.NewUnitOfWork(store), clk), store, clk
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestIntegrationCommands_UpdateSettings(t *testing.T) {
	ctx := context.Background()
	hotelID := uuid.New()

	t.Run("creates the row with defaults on first update", func(t *testing.T) {
		cmd, store, _ := newIntegrationEnv(t)

		theme := "dark"
		updated, err := cmd.UpdateSettings(ctx, hotelID, integration.Patch{WidgetTheme: &theme})
		require.NoError(t, err)

		assert.Equal(t, "dark", updated.WidgetTheme())
		// Untouched fields keep their defaults.
		assert.True(t, updated.WidgetEnabled())

		persisted, err := store.Integrations().FindSettings(ctx, hotelID)
		require.NoError(t, err)
		assert.Equal(t, "dark", persisted.WidgetTheme())
	})

	t.Run("patches an existing row in place", func(t *testing.T) {
		cmd, store, _ := newIntegrationEnv(t)

		_, err := cmd.UpdateSettings(ctx, hotelID, integration.Patch{WidgetTheme: strPtr("dark")})
		require.NoError(t, err)
		_, err = cmd.UpdateSettings(ctx, hotelID, integration.Patch{
			WebhookURL:  strPtr("https://example.com/hooks"),
			CORSEnabled: boolPtr(false),
		})
		require.NoError(t, err)

		persisted, err := store.Integrations().FindSettings(ctx, hotelID)
		require.NoError(t, err)
		assert.Equal(t, "dark", persisted.WidgetTheme())
		require.NotNil(t, persisted.WebhookURL())
		assert.Equal(t, "https://example.com/hooks", *persisted.WebhookURL())
		assert.False(t, persisted.CORSEnabled())
	})
}

func TestIntegrationCommands_APIKeys(t *testing.T) {
	ctx := context.Background()
	hotelID := uuid.New()

	t.Run("create returns the secret exactly once", func(t *testing.T) {
		cmd, store, _ := newIntegrationEnv(t)

		created, err := cmd.CreateAPIKey(ctx, hotelID, commands.CreateAPIKeyInput{
			Name:   "Website widget",
			Scopes: integration.DefaultScopes,
		})
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(created.SecretKey, "sk_live_"))
		assert.True(t, strings.HasSuffix(created.Key.KeyPrefix(), "..."))
		assert.Equal(t, integration.HashKey(created.SecretKey), created.Key.KeyHash())
		assert.Nil(t, created.Key.ExpiresAt())

		keys, err := store.Integrations().ListAPIKeys(ctx, hotelID)
		require.NoError(t, err)
		assert.Len(t, keys, 1)
	})

	t.Run("expiry is counted in days from now", func(t *testing.T) {
		cmd, _, clk := newIntegrationEnv(t)

		days := 30
		created, err := cmd.CreateAPIKey(ctx, hotelID, commands.CreateAPIKeyInput{
			Name:          "Short-lived",
			ExpiresInDays: &days,
		})
		require.NoError(t, err)

		require.NotNil(t, created.Key.ExpiresAt())
		assert.Equal(t, clk.Now().UTC().AddDate(0, 0, 30), *created.Key.ExpiresAt())
	})

	t.Run("toggle flips active state", func(t *testing.T) {
		cmd, _, _ := newIntegrationEnv(t)

		created, err := cmd.CreateAPIKey(ctx, hotelID, commands.CreateAPIKeyInput{Name: "Toggle me"})
		require.NoError(t, err)
		require.True(t, created.Key.IsActive())

		toggled, err := cmd.ToggleAPIKey(ctx, hotelID, created.Key.ID())
		require.NoError(t, err)
		assert.False(t, toggled.IsActive())

		toggled, err = cmd.ToggleAPIKey(ctx, hotelID, created.Key.ID())
		require.NoError(t, err)
		assert.True(t, toggled.IsActive())
	})

	t.Run("toggle unknown key", func(t *testing.T) {
		cmd, _, _ := newIntegrationEnv(t)

		_, err := cmd.ToggleAPIKey(ctx, hotelID, uuid.New())
		assert.ErrorIs(t, err, commands.ErrAPIKeyNotFound)
	})

	t.Run("delete removes the key", func(t *testing.T) {
		cmd, store, _ := newIntegrationEnv(t)

		created, err := cmd.CreateAPIKey(ctx, hotelID, commands.CreateAPIKeyInput{Name: "Delete me"})
		require.NoError(t, err)

		require.NoError(t, cmd.DeleteAPIKey(ctx, hotelID, created.Key.ID()))

		keys, err := store.Integrations().ListAPIKeys(ctx, hotelID)
		require.NoError(t, err)
		assert.Empty(t, keys)

		assert.ErrorIs(t, cmd.DeleteAPIKey(ctx, hotelID, created.Key.ID()), commands.ErrAPIKeyNotFound)
	})
}

func TestIntegrationCommands_TestWebhook(t *testing.T) {
	ctx := context.Background()
	hotelID := uuid.New()

	t.Run("no settings row", func(t *testing.T) {
		cmd, _, _ := newIntegrationEnv(t)

		_, err := cmd.TestWebhook(ctx, hotelID)
		assert.ErrorIs(t, err, commands.ErrWebhookNotConfigured)
	})

	t.Run("settings without a url", func(t *testing.T) {
		cmd, _, _ := newIntegrationEnv(t)

		_, err := cmd.UpdateSettings(ctx, hotelID, integration.Patch{})
		require.NoError(t, err)

		_, err = cmd.TestWebhook(ctx, hotelID)
		assert.ErrorIs(t, err, commands.ErrWebhookNotConfigured)
	})

	t.Run("returns the configured url", func(t *testing.T) {
		cmd, _, _ := newIntegrationEnv(t)

		_, err := cmd.UpdateSettings(ctx, hotelID, integration.Patch{
			WebhookURL: strPtr("https://example.com/hooks"),
		})
		require.NoError(t, err)

		url, err := cmd.TestWebhook(ctx, hotelID)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/hooks", url)
	})
}
