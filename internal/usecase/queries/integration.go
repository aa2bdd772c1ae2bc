package queries

import (
	"context"
	"fmt"

	"hotelier-hub/internal/domain/integration"
	"hotelier-hub/internal/infra"
	"hotelier-hub/internal/pkg/config"
	"hotelier-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

// WidgetCode bundles the embeddable snippets for a hotel's booking widget.
type WidgetCode struct {
	HTMLCode       string `json:"html_code"`
	JavaScriptCode string `json:"javascript_code"`
	CSSCode        string `json:"css_code"`
	Instructions   string `json:"instructions"`
}

type IntegrationQueries interface {
	// Settings returns the hotel's integration settings, creating the
	// row with defaults on first access.
	Settings(ctx context.Context, hotelID uuid.UUID) (*integration.Settings, error)
	ListAPIKeys(ctx context.Context, hotelID uuid.UUID) ([]*integration.APIKey, error)
	WidgetCode(ctx context.Context, hotelID uuid.UUID) (*WidgetCode, error)
}

type integrationQueriesImpl struct {
	uow shared.UnitOfWork
	cfg config.PublicConfig
}

func NewIntegrationQueries(uow shared.UnitOfWork, cfg config.PublicConfig) IntegrationQueries {
	return &integrationQueriesImpl{uow: uow, cfg: cfg}
}

func (q *integrationQueriesImpl) Settings(ctx context.Context, hotelID uuid.UUID) (*integration.Settings, error) {
	var settings *integration.Settings
	err := q.uow.Within(ctx, func(ctx context.Context, r shared.Repos) error {
		s, err := r.Integrations().FindSettings(ctx, hotelID)
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
			s = integration.NewDefaultSettings(hotelID)
			if err := r.Integrations().CreateSettings(ctx, s); err != nil {
				return err
			}
		}
		settings = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (q *integrationQueriesImpl) ListAPIKeys(ctx context.Context, hotelID uuid.UUID) ([]*integration.APIKey, error) {
	return q.uow.Repos().Integrations().ListAPIKeys(ctx, hotelID)
}

func (q *integrationQueriesImpl) WidgetCode(ctx context.Context, hotelID uuid.UUID) (*WidgetCode, error) {
	r := q.uow.Repos()

	h, err := r.Hotels().FindByID(ctx, hotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	s, err := r.Integrations().FindSettings(ctx, hotelID)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		// Render with defaults without persisting anything.
		s = integration.NewDefaultSettings(hotelID)
	}

	slug := h.Slug().Value()
	baseURL := q.cfg.WidgetBaseURL

	html := fmt.Sprintf(`<!-- Hotelier Hub Booking Widget -->
<div id="hotelier-booking-widget"
     data-hotel-slug="%s"
     data-theme="%s"
     data-color="%s">
</div>`, slug, s.WidgetTheme(), s.WidgetPrimaryColor())

	js := fmt.Sprintf(`<script>
  (function() {
    var script = document.createElement('script');
    script.src = '%s/widget.js';
    script.async = true;
    script.onload = function() {
      HotelierWidget.init({
        hotelSlug: '%s',
        theme: '%s',
        primaryColor: '%s',
        position: '%s'
      });
    };
    document.head.appendChild(script);
  })();
</script>`, baseURL, slug, s.WidgetTheme(), s.WidgetPrimaryColor(), s.WidgetPosition())

	css := `<style>
  #hotelier-booking-widget {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
  }
  /* Widget will load its own styles */
</style>`

	instructions := fmt.Sprintf(`
# Integration Instructions

## Step 1: Add the HTML
Paste this code where you want the booking widget to appear on your website:

%s

## Step 2: Add the JavaScript
Add this script tag before the closing </body> tag:

%s

## Step 3: (Optional) Add Custom Styling
You can customize the widget appearance with CSS:

%s

## Important Notes:
- The widget will automatically match your hotel's branding
- Bookings made through the widget will appear in your dashboard
- You can customize colors and theme in Integration Settings
- Make sure to add your website domain to "Allowed Domains" for security

## Direct Booking Link:
You can also link directly to your booking page:
%s/book/%s

## Need Help?
Contact support or check our documentation for advanced customization options.
`, html, js, css, baseURL, slug)

	return &WidgetCode{
		HTMLCode:       html,
		JavaScriptCode: js,
		CSSCode:        css,
		Instructions:   instructions,
	}, nil
}
