package request

import (
	"hotelier-hub/internal/domain/integration"
	"hotelier-hub/internal/usecase/commands"
)

type UpdateIntegrationSettingsRequest struct {
	WidgetEnabled      *bool   `json:"widget_enabled,omitempty"`
	WidgetTheme        *string `json:"widget_theme,omitempty"`
	WidgetPrimaryColor *string `json:"widget_primary_color,omitempty"`
	WidgetPosition     *string `json:"widget_position,omitempty"`
	AllowedDomains     *string `json:"allowed_domains,omitempty"`
	CORSEnabled        *bool   `json:"cors_enabled,omitempty"`
	WebhookURL         *string `json:"webhook_url,omitempty"`
	WebhookEvents      *string `json:"webhook_events,omitempty"`
	WebhookSecret      *string `json:"webhook_secret,omitempty"`
	RateLimitPerHour   *int    `json:"rate_limit_per_hour,omitempty" binding:"omitempty,min=1"`
	RequireHTTPS       *bool   `json:"require_https,omitempty"`
}

func (r *UpdateIntegrationSettingsRequest) ToPatch() integration.Patch {
	return integration.Patch{
		WidgetEnabled:      r.WidgetEnabled,
		WidgetTheme:        r.WidgetTheme,
		WidgetPrimaryColor: r.WidgetPrimaryColor,
		WidgetPosition:     r.WidgetPosition,
		AllowedDomains:     r.AllowedDomains,
		CORSEnabled:        r.CORSEnabled,
		WebhookURL:         r.WebhookURL,
		WebhookEvents:      r.WebhookEvents,
		WebhookSecret:      r.WebhookSecret,
		RateLimitPerHour:   r.RateLimitPerHour,
		RequireHTTPS:       r.RequireHTTPS,
	}
}

type CreateAPIKeyRequest struct {
	Name          string `json:"name" binding:"required"`
	Scopes        string `json:"scopes"`
	ExpiresInDays *int   `json:"expires_in_days,omitempty" binding:"omitempty,min=1"`
}

func (r *CreateAPIKeyRequest) ToInput() commands.CreateAPIKeyInput {
	return commands.CreateAPIKeyInput{
		Name:          r.Name,
		Scopes:        r.Scopes,
		ExpiresInDays: r.ExpiresInDays,
	}
}
