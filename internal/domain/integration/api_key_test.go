//go:build unit

package integration_test

import (
	"strings"
	"testing"

	"hotelier-hub/internal/domain/integration"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKey(t *testing.T) {
	key, err := integration.GenerateKey()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key.Secret, "sk_live_"))
	assert.Equal(t, key.Secret[:12]+"...", key.Prefix)
	assert.Len(t, key.Hash, 64)
	assert.Equal(t, integration.HashKey(key.Secret), key.Hash)
	assert.NotContains(t, key.Hash, "sk_live_")

	other, err := integration.GenerateKey()
	require.NoError(t, err)
	assert.NotEqual(t, key.Secret, other.Secret)
}

func TestNewAPIKey(t *testing.T) {
	key, err := integration.GenerateKey()
	require.NoError(t, err)
	hotelID := uuid.New()

	t.Run("defaults scopes when empty", func(t *testing.T) {
		k, err := integration.NewAPIKey(hotelID, "Main Website", key, "", nil)
		require.NoError(t, err)
		assert.Equal(t, integration.DefaultScopes, k.Scopes())
		assert.True(t, k.IsActive())
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := integration.NewAPIKey(hotelID, "  ", key, "", nil)
		assert.ErrorIs(t, err, integration.ErrEmptyKeyName)
	})

	t.Run("toggle flips active state", func(t *testing.T) {
		k, err := integration.NewAPIKey(hotelID, "Mobile App", key, "", nil)
		require.NoError(t, err)
		k.Toggle()
		assert.False(t, k.IsActive())
		k.Toggle()
		assert.True(t, k.IsActive())
	})
}
