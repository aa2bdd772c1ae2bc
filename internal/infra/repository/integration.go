package repository

import (
	"context"
	"errors"
	"time"

	"hotelier-hub/internal/domain/integration"
	"hotelier-hub/internal/infra"
	"hotelier-hub/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type IntegrationRepository struct {
	db db.DBTX
}

func NewIntegrationRepository(database db.DBTX) *IntegrationRepository {
	return &IntegrationRepository{db: database}
}


const apiKeyColumns = `id, hotel_id, name, key_prefix, key_hash, scopes, is_active,
	last_used_at, expires_at, created_at`

func (r *IntegrationRepository) CreateAPIKey(ctx context.Context, k *integration.APIKey) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO api_keys (id, hotel_id, name, key_prefix, key_hash, scopes, is_active, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		k.ID(), k.HotelID(), k.Name(), k.KeyPrefix(), k.KeyHash(), k.Scopes(), k.IsActive(), k.ExpiresAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create api key", err)
	}
	return nil
}

func (r *IntegrationRepository) ListAPIKeys(ctx context.Context, hotelID uuid.UUID) ([]*integration.APIKey, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+apiKeyColumns+` FROM api_keys WHERE hotel_id = $1 ORDER BY created_at DESC`, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list api keys", err)
	}
	defer rows.Close()

	var result []*integration.APIKey
	for rows.Next() {
		k, err := scanAPIKey(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, k)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate api keys", err)
	}
	return result, nil
}

func (r *IntegrationRepository) FindAPIKeyByID(ctx context.Context, hotelID, id uuid.UUID) (*integration.APIKey, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+apiKeyColumns+` FROM api_keys WHERE id = $1 AND hotel_id = $2`, id, hotelID)
	return scanAPIKey(row)
}

func (r *IntegrationRepository) UpdateAPIKeyActive(ctx context.Context, k *integration.APIKey) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE api_keys SET is_active = $3 WHERE id = $1 AND hotel_id = $2`,
		k.ID(), k.HotelID(), k.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update api key", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("api key not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *IntegrationRepository) DeleteAPIKey(ctx context.Context, hotelID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM api_keys WHERE id = $1 AND hotel_id = $2`, id, hotelID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete api key", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("api key not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

const settingsColumns = `id, hotel_id, widget_enabled, widget_theme, widget_primary_color,
	widget_position, allowed_domains, cors_enabled, webhook_url, webhook_events, webhook_secret,
	rate_limit_per_hour, require_https, created_at, updated_at`

func (r *IntegrationRepository) FindSettings(ctx context.Context, hotelID uuid.UUID) (*integration.Settings, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+settingsColumns+` FROM integration_settings WHERE hotel_id = $1`, hotelID)
	return scanSettings(row)
}

func (r *IntegrationRepository) CreateSettings(ctx context.Context, s *integration.Settings) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO integration_settings (id, hotel_id, widget_enabled, widget_theme,
			widget_primary_color, widget_position, allowed_domains, cors_enabled, webhook_url,
			webhook_events, webhook_secret, rate_limit_per_hour, require_https)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		s.ID(), s.HotelID(), s.WidgetEnabled(), s.WidgetTheme(), s.WidgetPrimaryColor(),
		s.WidgetPosition(), s.AllowedDomains(), s.CORSEnabled(), s.WebhookURL(),
		s.WebhookEvents(), s.WebhookSecret(), s.RateLimitPerHour(), s.RequireHTTPS(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create integration settings", err)
	}
	return nil
}

func (r *IntegrationRepository) UpdateSettings(ctx context.Context, s *integration.Settings) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE integration_settings
		SET widget_enabled = $2, widget_theme = $3, widget_primary_color = $4, widget_position = $5,
			allowed_domains = $6, cors_enabled = $7, webhook_url = $8, webhook_events = $9,
			webhook_secret = $10, rate_limit_per_hour = $11, require_https = $12, updated_at = now()
		WHERE hotel_id = $1`,
		s.HotelID(), s.WidgetEnabled(), s.WidgetTheme(), s.WidgetPrimaryColor(), s.WidgetPosition(),
		s.AllowedDomains(), s.CORSEnabled(), s.WebhookURL(), s.WebhookEvents(),
		s.WebhookSecret(), s.RateLimitPerHour(), s.RequireHTTPS(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update integration settings", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("integration settings not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func scanAPIKey(row pgx.Row) (*integration.APIKey, error) {
	var (
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
	)
	err := row.Scan(&id, &hotelID, &name, &keyPrefix, &keyHash, &scopes, &isActive,
		&lastUsedAt, &expiresAt, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("api key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan api key", err)
	}

	return integration.ReconstructAPIKey(id, hotelID, name, keyPrefix, keyHash, scopes,
		isActive, lastUsedAt, expiresAt, createdAt), nil
}

func scanSettings(row pgx.Row) (*integration.Settings, error) {
	var (
		id                 uuid.UUID
		hotelID            uuid.UUID
		widgetEnabled      bool
		widgetTheme        string
		widgetPrimaryColor string
		widgetPosition     string
		allowedDomains     string
		corsEnabled        bool
		webhookURL         *string
		webhookEvents      string
		webhookSecret      *string
		rateLimitPerHour   int
		requireHTTPS       bool
		createdAt          time.Time
		updatedAt          time.Time
	)
	err := row.Scan(&id, &hotelID, &widgetEnabled, &widgetTheme, &widgetPrimaryColor,
		&widgetPosition, &allowedDomains, &corsEnabled, &webhookURL, &webhookEvents,
		&webhookSecret, &rateLimitPerHour, &requireHTTPS, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("integration settings not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan integration settings", err)
	}

	return integration.ReconstructSettings(id, hotelID, widgetEnabled, widgetTheme,
		widgetPrimaryColor, widgetPosition, allowedDomains, corsEnabled, webhookURL,
		webhookEvents, webhookSecret, rateLimitPerHour, requireHTTPS, createdAt, updatedAt), nil
}
