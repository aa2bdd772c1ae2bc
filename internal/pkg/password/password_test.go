//go:build unit

package password_test

import (
	"testing"

	"hotelier-hub/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePolicy(t *testing.T) {
	cases := []struct {
		name     string
		password string
		errIs    error
	}{
		{name: "seven chars with digit", password: "short1A", errIs: password.ErrTooShort},
		{name: "long enough but no uppercase", password: "longenough1", errIs: password.ErrNoUppercase},
		{name: "long enough but no digit", password: "Longenough", errIs: password.ErrNoDigit},
		{name: "meets policy", password: "Longenough1"},
		{name: "exactly eight chars", password: "Abcdefg1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := password.ValidatePolicy(tc.password)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestHashAndCompare(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		hash, err := password.HashPassword("Longenough1")
		require.NoError(t, err)
		assert.NotEqual(t, "Longenough1", hash)

		assert.NoError(t, password.ComparePassword(hash, "Longenough1"))
		assert.ErrorIs(t, password.ComparePassword(hash, "Wrongpass1"), password.ErrComparisonFailed)
	})

	t.Run("empty inputs", func(t *testing.T) {
		_, err := password.HashPassword("")
		assert.ErrorIs(t, err, password.ErrInvalidPassword)
		assert.ErrorIs(t, password.ComparePassword("", "x"), password.ErrInvalidPassword)
		assert.ErrorIs(t, password.ComparePassword("x", ""), password.ErrInvalidPassword)
	})
}
