package commands

import (
	"context"
	"log/slog"
	"time"

	"hotelier-hub/internal/domain/hotel"
	"hotelier-hub/internal/domain/user"
	"hotelier-hub/internal/infra"
	"hotelier-hub/internal/pkg/errs"
	"hotelier-hub/internal/pkg/jwt"
	"hotelier-hub/internal/pkg/password"
	"hotelier-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrEmailAlreadyExists   = errs.New("email already registered")
	ErrWeakPassword         = errs.New("password does not meet policy")
	ErrInvalidResetToken    = errs.New("invalid or expired reset token")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

const resetTokenTTL = 15 * time.Minute

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
}

type SignupInput struct {
	Email     string
	Password  string
	Name      string
	HotelName string
}

type SignupResult struct {
	Tokens TokenPair
	User   *user.User
}

type AuthCommands interface {
	Signup(ctx context.Context, in SignupInput) (*SignupResult, error)
	Login(ctx context.Context, email, plainPassword string) (*TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
	}
}

// Signup registers a hotel and its owner in one transaction. The slug is
// derived from the hotel name and disambiguated with a random suffix when
// it is already taken.
func (a *authCommandsImpl) Signup(ctx context.Context, in SignupInput) (*SignupResult, error) {
	if err := password.ValidatePolicy(in.Password); err != nil {
		return nil, errs.Mark(err, ErrWeakPassword)
	}

	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	hash, err := password.HashPassword(in.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	var created *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, r shared.Repos) error {
		if _, err := r.Users().FindByEmail(ctx, email); err == nil {
			return ErrEmailAlreadyExists
		} else if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		slug, err := hotel.SlugFromName(in.HotelName)
		if err != nil {
			return err
		}
		taken, err := r.Hotels().SlugExists(ctx, slug)
		if err != nil {
			return err
		}
		if taken {
			slug = slug.WithRandomSuffix()
		}

		h := hotel.NewHotel(in.HotelName, slug)
		if err := r.Hotels().Create(ctx, h); err != nil {
			return err
		}

		hotelID := h.ID()
		created = user.NewUser(email, in.Name, hash, user.RoleOwner, &hotelID)
		if err := r.Users().Create(ctx, created); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrEmailAlreadyExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	tokens, err := a.issueTokens(created.ID())
	if err != nil {
		return nil, err
	}
	return &SignupResult{Tokens: *tokens, User: created}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*TokenPair, error) {
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	u, err := a.uow.Repos().Users().FindByEmail(ctx, emailVO)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(u.PasswordHash(), plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive() {
		return nil, ErrUserInactive
	}

	return a.issueTokens(u.ID())
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := a.jwtService.ValidateToken(refreshToken, jwt.KindRefresh)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	u, err := a.uow.Repos().Users().FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !u.IsActive() {
		return nil, ErrInvalidCredentials
	}

	return a.issueTokens(u.ID())
}

// ForgotPassword issues a short-lived reset token. The token is logged, not
// mailed; the returned message never reveals whether the email exists. An
// empty token means no matching account.
func (a *authCommandsImpl) ForgotPassword(ctx context.Context, email string) (string, error) {
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return "", nil
	}

	u, err := a.uow.Repos().Users().FindByEmail(ctx, emailVO)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil
		}
		return "", err
	}

	token, err := a.jwtService.GenerateAccessTokenWithTTL(u.ID(), resetTokenTTL)
	if err != nil {
		return "", errs.Mark(err, ErrTokenGeneration)
	}

	slog.Info("password reset token issued", "user_id", u.ID().String())
	return token, nil
}

func (a *authCommandsImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	userID, err := a.jwtService.ValidateToken(token, jwt.KindAccess)
	if err != nil {
		return errs.Mark(err, ErrInvalidResetToken)
	}

	u, err := a.uow.Repos().Users().FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}
	if !u.IsActive() {
		return ErrInvalidResetToken
	}

	if err := password.ValidatePolicy(newPassword); err != nil {
		return errs.Mark(err, ErrWeakPassword)
	}
	hash, err := password.HashPassword(newPassword)
	if err != nil {
		return errs.Wrap(err, "failed to hash password")
	}
	return a.uow.Repos().Users().UpdatePassword(ctx, u.ID(), hash)
}

func (a *authCommandsImpl) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	u, err := a.uow.Repos().Users().FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := password.ComparePassword(u.PasswordHash(), currentPassword); err != nil {
		return ErrInvalidCredentials
	}

	if err := password.ValidatePolicy(newPassword); err != nil {
		return errs.Mark(err, ErrWeakPassword)
	}
	hash, err := password.HashPassword(newPassword)
	if err != nil {
		return errs.Wrap(err, "failed to hash password")
	}
	return a.uow.Repos().Users().UpdatePassword(ctx, u.ID(), hash)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(a.jwtService.AccessTokenDuration().Seconds()),
	}, nil
}
