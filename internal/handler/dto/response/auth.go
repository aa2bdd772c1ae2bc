package response

import (
	"time"

	"hotelier-hub/internal/domain/user"
	"hotelier-hub/internal/usecase/commands"

	"github.com/google/uuid"
)

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	HotelID   *uuid.UUID `json:"hotel_id,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
}

type SignupResponse struct {
	Tokens TokenResponse `json:"tokens"`
	User   *UserResponse `json:"user"`
}

func FromTokenPair(t *commands.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		TokenType:    "bearer",
		ExpiresIn:    t.ExpiresIn,
	}
}

func FromUser(u *user.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID(),
		Email:     u.Email().Value(),
		Name:      u.Name(),
		Role:      string(u.Role()),
		HotelID:   u.HotelID(),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt(),
	}
}
