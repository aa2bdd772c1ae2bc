package user

import (
	"time"

	"github.com/google/uuid"
)

// User belongs to exactly one hotel once assigned. A deactivated user can
// no longer authenticate but keeps their rows.
type User struct {
	id           uuid.UUID
	email        Email
	name         string
	passwordHash string
	role         Role
	hotelID      *uuid.UUID
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, name, passwordHash string, role Role, hotelID *uuid.UUID) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		hotelID:      hotelID,
		isActive:     true,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	name, passwordHash string,
	role Role,
	hotelID *uuid.UUID,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		hotelID:      hotelID,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) Name() string         { return u.name }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) HotelID() *uuid.UUID  { return u.hotelID }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
