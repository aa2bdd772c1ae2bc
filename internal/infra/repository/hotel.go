package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hotelier-hub/internal/domain/hotel"
	"hotelier-hub/internal/infra"
	"hotelier-hub/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type HotelRepository struct {
	db db.DBTX
}

func NewHotelRepository(database db.DBTX) *HotelRepository {
	return &HotelRepository{db: database}
}


const hotelColumns = `id, name, slug, description, star_rating, logo_url, primary_color,
	address, contact, settings, is_active, created_at, updated_at`

func (r *HotelRepository) Create(ctx context.Context, h *hotel.Hotel) error {
	address, err := json.Marshal(h.Address())
	if err != nil {
		return infra.WrapRepoErr("failed to marshal hotel address", err)
	}
	contact, err := json.Marshal(h.Contact())
	if err != nil {
		return infra.WrapRepoErr("failed to marshal hotel contact", err)
	}
	settings, err := json.Marshal(h.Settings())
	if err != nil {
		return infra.WrapRepoErr("failed to marshal hotel settings", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO hotels (id, name, slug, description, star_rating, logo_url, primary_color,
			address, contact, settings, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		h.ID(), h.Name(), h.Slug().Value(), h.Description(), h.StarRating(), h.LogoURL(), h.PrimaryColor(),
		address, contact, settings, h.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create hotel", err)
	}
	return nil
}

func (r *HotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	row := r.db.QueryRow(ctx, `SELECT `+hotelColumns+` FROM hotels WHERE id = $1`, id)
	return scanHotel(row)
}

func (r *HotelRepository) FindBySlug(ctx context.Context, slug hotel.Slug) (*hotel.Hotel, error) {
	row := r.db.QueryRow(ctx, `SELECT `+hotelColumns+` FROM hotels WHERE slug = $1`, slug.Value())
	return scanHotel(row)
}

func (r *HotelRepository) SlugExists(ctx context.Context, slug hotel.Slug) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM hotels WHERE slug = $1)`, slug.Value()).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slug existence", err)
	}
	return exists, nil
}

func (r *HotelRepository) Update(ctx context.Context, h *hotel.Hotel) error {
	address, err := json.Marshal(h.Address())
	if err != nil {
		return infra.WrapRepoErr("failed to marshal hotel address", err)
	}
	contact, err := json.Marshal(h.Contact())
	if err != nil {
		return infra.WrapRepoErr("failed to marshal hotel contact", err)
	}
	settings, err := json.Marshal(h.Settings())
	if err != nil {
		return infra.WrapRepoErr("failed to marshal hotel settings", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE hotels
		SET name = $2, description = $3, star_rating = $4, logo_url = $5, primary_color = $6,
			address = $7, contact = $8, settings = $9, is_active = $10, updated_at = now()
		WHERE id = $1`,
		h.ID(), h.Name(), h.Description(), h.StarRating(), h.LogoURL(), h.PrimaryColor(),
		address, contact, settings, h.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update hotel", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("hotel not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func scanHotel(row pgx.Row) (*hotel.Hotel, error) {
	var (
		id           uuid.UUID
		name         string
		slugStr      string
		description  *string
		starRating   *int
		logoURL      *string
		primaryColor *string
		addressRaw   []byte
		contactRaw   []byte
		settingsRaw  []byte
		isActive     bool
		createdAt    time.Time
		updatedAt    time.Time
	)
	err := row.Scan(&id, &name, &slugStr, &description, &starRating, &logoURL, &primaryColor,
		&addressRaw, &contactRaw, &settingsRaw, &isActive, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan hotel", err)
	}

	slug, err := hotel.NewSlug(slugStr)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid slug in storage", err)
	}

	address, err := unmarshalBlob(addressRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to unmarshal hotel address", err)
	}
	contact, err := unmarshalBlob(contactRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to unmarshal hotel contact", err)
	}
	settings, err := unmarshalBlob(settingsRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to unmarshal hotel settings", err)
	}

	return hotel.ReconstructHotel(id, name, slug, description, starRating, logoURL, primaryColor,
		address, contact, settings, isActive, createdAt, updatedAt), nil
}

func unmarshalBlob(raw []byte) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
