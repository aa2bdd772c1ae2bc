package repository

import (
	"context"
	"errors"
	"time"

	"hotelier-hub/internal/domain/user"
	"hotelier-hub/internal/infra"
	"hotelier-hub/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(database db.DBTX) *UserRepository {
	return &UserRepository{db: database}
}


const userColumns = `id, email, name, password_hash, role, hotel_id, is_active, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, email, name, password_hash, role, hotel_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID(), u.Email().Value(), u.Name(), u.PasswordHash(), string(u.Role()), u.HotelID(), u.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email.Value())
	return scanUser(row)
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`,
		id, passwordHash,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update password", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		id           uuid.UUID
		email        string
		name         string
		passwordHash string
		role         string
		hotelID      *uuid.UUID
		isActive     bool
		createdAt    time.Time
		updatedAt    time.Time
	)
	err := row.Scan(&id, &email, &name, &passwordHash, &role, &hotelID, &isActive, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan user", err)
	}

	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid email in storage", err)
	}

	return user.ReconstructUser(id, emailVO, name, passwordHash, user.Role(role), hotelID, isActive, createdAt, updatedAt), nil
}
