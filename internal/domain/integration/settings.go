package integration

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultWidgetTheme        = "light"
	DefaultWidgetPrimaryColor = "#3B82F6"
	DefaultWidgetPosition     = "bottom-right"
	DefaultWebhookEvents      = "booking.created,booking.cancelled"
	DefaultRateLimitPerHour   = 1000
)

// Settings is the per-hotel integration configuration. There is at most one
// row per hotel; reads create it lazily with the defaults below.
type Settings struct {
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
}

// NewDefaultSettings builds the record created on first read for a hotel.
func NewDefaultSettings(hotelID uuid.UUID) *Settings {
	return &Settings{
		id:                 uuid.New(),
		hotelID:            hotelID,
		widgetEnabled:      true,
		widgetTheme:        DefaultWidgetTheme,
		widgetPrimaryColor: DefaultWidgetPrimaryColor,
		widgetPosition:     DefaultWidgetPosition,
		allowedDomains:     "",
		corsEnabled:        true,
		webhookEvents:      DefaultWebhookEvents,
		rateLimitPerHour:   DefaultRateLimitPerHour,
		requireHTTPS:       true,
	}
}

func ReconstructSettings(
	id, hotelID uuid.UUID,
	widgetEnabled bool,
	widgetTheme, widgetPrimaryColor, widgetPosition, allowedDomains string,
	corsEnabled bool,
	webhookURL *string,
	webhookEvents string,
	webhookSecret *string,
	rateLimitPerHour int,
	requireHTTPS bool,
	createdAt, updatedAt time.Time,
) *Settings {
	return &Settings{
		id:                 id,
		hotelID:            hotelID,
		widgetEnabled:      widgetEnabled,
		widgetTheme:        widgetTheme,
		widgetPrimaryColor: widgetPrimaryColor,
		widgetPosition:     widgetPosition,
		allowedDomains:     allowedDomains,
		corsEnabled:        corsEnabled,
		webhookURL:         webhookURL,
		webhookEvents:      webhookEvents,
		webhookSecret:      webhookSecret,
		rateLimitPerHour:   rateLimitPerHour,
		requireHTTPS:       requireHTTPS,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// Patch applies a partial update. Nil fields keep their current value.
type Patch struct {
	WidgetEnabled      *bool
	WidgetTheme        *string
	WidgetPrimaryColor *string
	WidgetPosition     *string
	AllowedDomains     *string
	CORSEnabled        *bool
	WebhookURL         *string
	WebhookEvents      *string
	WebhookSecret      *string
	RateLimitPerHour   *int
	RequireHTTPS       *bool
}

func (s *Settings) Apply(p Patch) {
	if p.WidgetEnabled != nil {
		s.widgetEnabled = *p.WidgetEnabled
	}
	if p.WidgetTheme != nil {
		s.widgetTheme = *p.WidgetTheme
	}
	if p.WidgetPrimaryColor != nil {
		s.widgetPrimaryColor = *p.WidgetPrimaryColor
	}
	if p.WidgetPosition != nil {
		s.widgetPosition = *p.WidgetPosition
	}
	if p.AllowedDomains != nil {
		s.allowedDomains = *p.AllowedDomains
	}
	if p.CORSEnabled != nil {
		s.corsEnabled = *p.CORSEnabled
	}
	if p.WebhookURL != nil {
		s.webhookURL = p.WebhookURL
	}
	if p.WebhookEvents != nil {
		s.webhookEvents = *p.WebhookEvents
	}
	if p.WebhookSecret != nil {
		s.webhookSecret = p.WebhookSecret
	}
	if p.RateLimitPerHour != nil {
		s.rateLimitPerHour = *p.RateLimitPerHour
	}
	if p.RequireHTTPS != nil {
		s.requireHTTPS = *p.RequireHTTPS
	}
}

func (s *Settings) ID() uuid.UUID              { return s.id }
func (s *Settings) HotelID() uuid.UUID         { return s.hotelID }
func (s *Settings) WidgetEnabled() bool        { return s.widgetEnabled }
func (s *Settings) WidgetTheme() string        { return s.widgetTheme }
func (s *Settings) WidgetPrimaryColor() string { return s.widgetPrimaryColor }
func (s *Settings) WidgetPosition() string     { return s.widgetPosition }
func (s *Settings) AllowedDomains() string     { return s.allowedDomains }
func (s *Settings) CORSEnabled() bool          { return s.corsEnabled }
func (s *Settings) WebhookURL() *string        { return s.webhookURL }
func (s *Settings) WebhookEvents() string      { return s.webhookEvents }
func (s *Settings) WebhookSecret() *string     { return s.webhookSecret }
func (s *Settings) RateLimitPerHour() int      { return s.rateLimitPerHour }
func (s *Settings) RequireHTTPS() bool         { return s.requireHTTPS }
func (s *Settings) CreatedAt() time.Time       { return s.createdAt }
func (s *Settings) UpdatedAt() time.Time       { return s.updatedAt }
