package commands

import (
	"context"
	"time"

	"hotelier-hub/internal/domain/integration"
	"hotelier-hub/internal/infra"
	"hotelier-hub/internal/pkg/clock"
	"hotelier-hub/internal/pkg/errs"
	"hotelier-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAPIKeyNotFound       = errs.New("api key not found")
	ErrWebhookNotConfigured = errs.New("webhook url not configured")
)

type CreateAPIKeyInput struct {
	Name          string
	Scopes        string
	ExpiresInDays *int
}

// CreatedAPIKey carries the plaintext secret back to the caller exactly
// once.
type CreatedAPIKey struct {
	Key       *integration.APIKey
	SecretKey string
}

type IntegrationCommands interface {
	UpdateSettings(ctx context.Context, hotelID uuid.UUID, patch integration.Patch) (*integration.Settings, error)
	CreateAPIKey(ctx context.Context, hotelID uuid.UUID, in CreateAPIKeyInput) (*CreatedAPIKey, error)
	ToggleAPIKey(ctx context.Context, hotelID, keyID uuid.UUID) (*integration.APIKey, error)
	DeleteAPIKey(ctx context.Context, hotelID, keyID uuid.UUID) error
	TestWebhook(ctx context.Context, hotelID uuid.UUID) (string, error)
}

type integrationCommandsImpl struct {
	uow shared.UnitOfWork
	clk clock.Clock
}

func NewIntegrationCommands(uow shared.UnitOfWork, clk clock.Clock) IntegrationCommands {
	return &integrationCommandsImpl{uow: uow, clk: clk}
}

// UpdateSettings patches the hotel's integration settings, creating the row
// with defaults first when it does not exist yet.
func (c *integrationCommandsImpl) UpdateSettings(ctx context.Context, hotelID uuid.UUID, patch integration.Patch) (*integration.Settings, error) {
	var updated *integration.Settings
	err := c.uow.Within(ctx, func(ctx context.Context, r shared.Repos) error {
		s, err := r.Integrations().FindSettings(ctx, hotelID)
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
			s = integration.NewDefaultSettings(hotelID)
			s.Apply(patch)
			if err := r.Integrations().CreateSettings(ctx, s); err != nil {
				return err
			}
			updated = s
			return nil
		}

		s.Apply(patch)
		if err := r.Integrations().UpdateSettings(ctx, s); err != nil {
			return err
		}
		updated = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *integrationCommandsImpl) CreateAPIKey(ctx context.Context, hotelID uuid.UUID, in CreateAPIKeyInput) (*CreatedAPIKey, error) {
	generated, err := integration.GenerateKey()
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate api key")
	}

	var expiresAt *time.Time
	if in.ExpiresInDays != nil {
		t := c.clk.Now().UTC().AddDate(0, 0, *in.ExpiresInDays)
		expiresAt = &t
	}

	k, err := integration.NewAPIKey(hotelID, in.Name, generated, in.Scopes, expiresAt)
	if err != nil {
		return nil, err
	}
	if err := c.uow.Repos().Integrations().CreateAPIKey(ctx, k); err != nil {
		return nil, err
	}

	return &CreatedAPIKey{Key: k, SecretKey: generated.Secret}, nil
}

func (c *integrationCommandsImpl) ToggleAPIKey(ctx context.Context, hotelID, keyID uuid.UUID) (*integration.APIKey, error) {
	var toggled *integration.APIKey
	err := c.uow.Within(ctx, func(ctx context.Context, r shared.Repos) error {
		k, err := r.Integrations().FindAPIKeyByID(ctx, hotelID, keyID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAPIKeyNotFound
			}
			return err
		}
		k.Toggle()
		if err := r.Integrations().UpdateAPIKeyActive(ctx, k); err != nil {
			return err
		}
		toggled = k
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toggled, nil
}

func (c *integrationCommandsImpl) DeleteAPIKey(ctx context.Context, hotelID, keyID uuid.UUID) error {
	err := c.uow.Repos().Integrations().DeleteAPIKey(ctx, hotelID, keyID)
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrAPIKeyNotFound
	}
	return err
}

// TestWebhook checks that a webhook URL is configured and returns it. The
// test event itself is not sent yet.
// TODO: deliver a signed test event to the configured URL.
func (c *integrationCommandsImpl) TestWebhook(ctx context.Context, hotelID uuid.UUID) (string, error) {
	s, err := c.uow.Repos().Integrations().FindSettings(ctx, hotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrWebhookNotConfigured
		}
		return "", err
	}
	if s.WebhookURL() == nil || *s.WebhookURL() == "" {
		return "", ErrWebhookNotConfigured
	}
	return *s.WebhookURL(), nil
}
