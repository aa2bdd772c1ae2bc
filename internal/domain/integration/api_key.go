// Package integration holds per-hotel external-access configuration: API
// keys for the embeddable booking engine and the settings that drive the
// widget and webhooks. Orthogonal to the booking domain.
package integration

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyKeyName = errors.New("api key name cannot be empty")

const (
	keyPrefixScheme  = "sk_live_"
	keyPrefixDisplay = 12
	DefaultScopes    = "read:rooms,read:availability,create:booking"
)

// GeneratedKey carries the plaintext secret alongside its stored forms. The
// secret exists only in this value: after creation only the hash and the
// display prefix survive.
type GeneratedKey struct {
	Secret string
	Prefix string
	Hash   string
}

// GenerateKey mints a new secret of the form sk_live_<random>. The display
// prefix is the first 12 characters followed by an ellipsis.
func GenerateKey() (GeneratedKey, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return GeneratedKey{}, err
	}
	secret := keyPrefixScheme + base64.RawURLEncoding.EncodeToString(buf)
	return GeneratedKey{
		Secret: secret,
		Prefix: secret[:keyPrefixDisplay] + "...",
		Hash:   HashKey(secret),
	}, nil
}

// HashKey is the storage form of a key secret.
func HashKey(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// APIKey is one external-access credential for a hotel.
type APIKey struct {
	id         uuid.UUID
	hotelID    uuid.UUID
	name       string
	keyPrefix  string
	keyHash    string
	scopes     string
	isActive   bool
	lastUsedAt *time.Time
	expiresAt  *time.Time
	createdAt  time.Time
}

func NewAPIKey(hotelID uuid.UUID, name string, key GeneratedKey, scopes string, expiresAt *time.Time) (*APIKey, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyKeyName
	}
	if scopes == "" {
		scopes = DefaultScopes
	}

	return &APIKey{
		id:        uuid.New(),
		hotelID:   hotelID,
		name:      name,
		keyPrefix: key.Prefix,
		keyHash:   key.Hash,
		scopes:    scopes,
		isActive:  true,
		expiresAt: expiresAt,
	}, nil
}

func ReconstructAPIKey(
	id, hotelID uuid.UUID,
	name, keyPrefix, keyHash, scopes string,
	isActive bool,
	lastUsedAt, expiresAt *time.Time,
	createdAt time.Time,
) *APIKey {
	return &APIKey{
		id:         id,
		hotelID:    hotelID,
		name:       name,
		keyPrefix:  keyPrefix,
		keyHash:    keyHash,
		scopes:     scopes,
		isActive:   isActive,
		lastUsedAt: lastUsedAt,
		expiresAt:  expiresAt,
		createdAt:  createdAt,
	}
}

// Toggle flips the key between enabled and disabled.
func (k *APIKey) Toggle() {
	k.isActive = !k.isActive
}

func (k *APIKey) ID() uuid.UUID          { return k.id }
func (k *APIKey) HotelID() uuid.UUID     { return k.hotelID }
func (k *APIKey) Name() string           { return k.name }
func (k *APIKey) KeyPrefix() string      { return k.keyPrefix }
func (k *APIKey) KeyHash() string        { return k.keyHash }
func (k *APIKey) Scopes() string         { return k.scopes }
func (k *APIKey) IsActive() bool         { return k.isActive }
func (k *APIKey) LastUsedAt() *time.Time { return k.lastUsedAt }
func (k *APIKey) ExpiresAt() *time.Time  { return k.expiresAt }
func (k *APIKey) CreatedAt() time.Time   { return k.createdAt }
