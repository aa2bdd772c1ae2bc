package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrWrongKind    = errors.New("unexpected token kind")
)

// Kind tags a token with its intended use. Verification fails when the
// presented kind does not match the expected one.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

type Claims struct {
	Kind Kind `json:"kind"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey       []byte
	accessDuration  time.Duration
	refreshDuration time.Duration
}

func NewService(secretKey string, accessDuration, refreshDuration time.Duration) *Service {
	return &Service{
		secretKey:       []byte(secretKey),
		accessDuration:  accessDuration,
		refreshDuration: refreshDuration,
	}
}

func (s *Service) GenerateAccessToken(userID uuid.UUID) (string, error) {
	return s.generate(userID, KindAccess, s.accessDuration)
}

func (s *Service) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	return s.generate(userID, KindRefresh, s.refreshDuration)
}

// GenerateAccessTokenWithTTL issues an access-kind token with a custom
// lifetime. Used for short-lived password reset tokens.
func (s *Service) GenerateAccessTokenWithTTL(userID uuid.UUID, ttl time.Duration) (string, error) {
	return s.generate(userID, KindAccess, ttl)
}

func (s *Service) AccessTokenDuration() time.Duration {
	return s.accessDuration
}

func (s *Service) generate(userID uuid.UUID, kind Kind, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ValidateToken verifies the signature, expiry and kind, and returns the
// subject user ID. Malformed input yields ErrInvalidToken, never a panic.
func (s *Service) ValidateToken(tokenString string, expected Kind) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, ErrExpiredToken
		}
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	if claims.Kind != expected {
		return uuid.Nil, ErrWrongKind
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return userID, nil
}
