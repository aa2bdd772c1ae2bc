package response

import (
	"time"

	"hotelier-hub/internal/domain/integration"
	"hotelier-hub/internal/usecase/commands"

	"github.com/google/uuid"
)

type IntegrationSettingsResponse struct {
	ID                 uuid.UUID `json:"id"`
	HotelID            uuid.UUID `json:"hotel_id"`
	WidgetEnabled      bool      `json:"widget_enabled"`
	WidgetTheme        string    `json:"widget_theme"`
	WidgetPrimaryColor string    `json:"widget_primary_color"`
	WidgetPosition     string    `json:"widget_position"`
	AllowedDomains     string    `json:"allowed_domains"`
	CORSEnabled        bool      `json:"cors_enabled"`
	WebhookURL         *string   `json:"webhook_url,omitempty"`
	WebhookEvents      string    `json:"webhook_events"`
	RateLimitPerHour   int       `json:"rate_limit_per_hour"`
	RequireHTTPS       bool      `json:"require_https"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// APIKeyResponse exposes only the display prefix; the hash never leaves
// the server and the secret is returned once, at creation.
type APIKeyResponse struct {
	ID         uuid.UUID  `json:"id"`
	HotelID    uuid.UUID  `json:"hotel_id"`
	Name       string     `json:"name"`
	KeyPrefix  string     `json:"key_prefix"`
	Scopes     string     `json:"scopes"`
	IsActive   bool       `json:"is_active"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type CreatedAPIKeyResponse struct {
	APIKeyResponse
	SecretKey string `json:"secret_key"`
}

func FromIntegrationSettings(s *integration.Settings) *IntegrationSettingsResponse {
	return &IntegrationSettingsResponse{
		ID:                 s.ID(),
		HotelID:            s.HotelID(),
		WidgetEnabled:      s.WidgetEnabled(),
		WidgetTheme:        s.WidgetTheme(),
		WidgetPrimaryColor: s.WidgetPrimaryColor(),
		WidgetPosition:     s.WidgetPosition(),
		AllowedDomains:     s.AllowedDomains(),
		CORSEnabled:        s.CORSEnabled(),
		WebhookURL:         s.WebhookURL(),
		WebhookEvents:      s.WebhookEvents(),
		RateLimitPerHour:   s.RateLimitPerHour(),
		RequireHTTPS:       s.RequireHTTPS(),
		CreatedAt:          s.CreatedAt(),
		UpdatedAt:          s.UpdatedAt(),
	}
}

func FromAPIKey(k *integration.APIKey) *APIKeyResponse {
	return &APIKeyResponse{
		ID:         k.ID(),
		HotelID:    k.HotelID(),
		Name:       k.Name(),
		KeyPrefix:  k.KeyPrefix(),
		Scopes:     k.Scopes(),
		IsActive:   k.IsActive(),
		LastUsedAt: k.LastUsedAt(),
		ExpiresAt:  k.ExpiresAt(),
		CreatedAt:  k.CreatedAt(),
	}
}

func FromAPIKeys(ks []*integration.APIKey) []*APIKeyResponse {
	out := make([]*APIKeyResponse, 0, len(ks))
	for _, k := range ks {
		out = append(out, FromAPIKey(k))
	}
	return out
}

func FromCreatedAPIKey(c *commands.CreatedAPIKey) *CreatedAPIKeyResponse {
	return &CreatedAPIKeyResponse{
		APIKeyResponse: *FromAPIKey(c.Key),
		SecretKey:      c.SecretKey,
	}
}
