//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"hotelier-hub/internal/domain/hotel"
	"hotelier-hub/internal/domain/user"
	"hotelier-hub/internal/handler/api"
	resdto "hotelier-hub/internal/handler/dto/response"
	"hotelier-hub/internal/handler/middleware"
	"hotelier-hub/internal/usecase/commands"
	"hotelier-hub/internal/usecase/queries"
	"hotelier-hub/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubAuthCommands struct {
	signup         func(ctx context.Context, in commands.SignupInput) (*commands.SignupResult, error)
	login          func(ctx context.Context, email, password string) (*commands.TokenPair, error)
	refreshToken   func(ctx context.Context, refreshToken string) (*commands.TokenPair, error)
	forgotPassword func(ctx context.Context, email string) (string, error)
	resetPassword  func(ctx context.Context, token, newPassword string) error
	changePassword func(ctx context.Context, userID uuid.UUID, current, next string) error
}

func (s *stubAuthCommands) Signup(ctx context.Context, in commands.SignupInput) (*commands.SignupResult, error) {
	return s.signup(ctx, in)
}

func (s *stubAuthCommands) Login(ctx context.Context, email, password string) (*commands.TokenPair, error) {
	return s.login(ctx, email, password)
}

func (s *stubAuthCommands) RefreshToken(ctx context.Context, refreshToken string) (*commands.TokenPair, error) {
	return s.refreshToken(ctx, refreshToken)
}

func (s *stubAuthCommands) ForgotPassword(ctx context.Context, email string) (string, error) {
	return s.forgotPassword(ctx, email)
}

func (s *stubAuthCommands) ResetPassword(ctx context.Context, token, newPassword string) error {
	return s.resetPassword(ctx, token, newPassword)
}

func (s *stubAuthCommands) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	return s.changePassword(ctx, userID, current, next)
}

type stubUserQueries struct {
	me      func(ctx context.Context, userID uuid.UUID) (*user.User, error)
	myHotel func(ctx context.Context, hotelID uuid.UUID) (*hotel.Hotel, error)
}

func (s *stubUserQueries) Me(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	return s.me(ctx, userID)
}

func (s *stubUserQueries) MyHotel(ctx context.Context, hotelID uuid.UUID) (*hotel.Hotel, error) {
	return s.myHotel(ctx, hotelID)
}

func testUser(t interface{ Fatalf(string, ...any) }) *user.User {
	email, err := user.NewEmail("owner@example.com")
	if err != nil {
		t.Fatalf("email: %v", err)
	}
	hotelID := uuid.New()
	return user.NewUser(email, "Asha", "hash", user.RoleOwner, &hotelID)
}

type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	commands *stubAuthCommands
	queries  *stubUserQueries
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.commands = &stubAuthCommands{}
	s.queries = &stubUserQueries{}
	handler := api.NewAuthHandler(s.commands, s.queries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Next()
	}

	s.router.POST("/auth/signup", handler.Signup)
	s.router.POST("/auth/login", handler.Login)
	s.router.POST("/auth/forgot-password", handler.ForgotPassword)
	s.router.GET("/users/me", authMiddleware, handler.Me)
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestSignup() {
	validBody := map[string]any{
		"email":      "owner@example.com",
		"password":   "Sup3rSecret",
		"name":       "Asha",
		"hotel_name": "Sunrise Inn",
	}

	s.Run("201 on success", func() {
		u := testUser(s.T())
		s.commands.signup = func(_ context.Context, in commands.SignupInput) (*commands.SignupResult, error) {
			s.Equal("owner@example.com", in.Email)
			s.Equal("Sunrise Inn", in.HotelName)
			return &commands.SignupResult{
				Tokens: commands.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900},
				User:   u,
			}, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/signup", validBody, "")

		var body resdto.SignupResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("access", body.Tokens.AccessToken)
		s.Equal("bearer", body.Tokens.TokenType)
		s.Equal("owner@example.com", body.User.Email)
	})

	s.Run("409 on duplicate email", func() {
		s.commands.signup = func(context.Context, commands.SignupInput) (*commands.SignupResult, error) {
			return nil, commands.ErrEmailAlreadyExists
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/signup", validBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Email already registered")
	})

	s.Run("400 on weak password", func() {
		s.commands.signup = func(context.Context, commands.SignupInput) (*commands.SignupResult, error) {
			return nil, commands.ErrWeakPassword
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/signup", validBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Password does not meet policy")
	})

	s.Run("400 on missing fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/signup",
			map[string]any{"email": "owner@example.com"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("400 on short password at binding", func() {
		body := map[string]any{
			"email":      "owner@example.com",
			"password":   "short",
			"name":       "Asha",
			"hotel_name": "Sunrise Inn",
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/signup", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	body := map[string]any{"email": "owner@example.com", "password": "Sup3rSecret"}

	s.Run("200 with tokens", func() {
		s.commands.login = func(_ context.Context, email, password string) (*commands.TokenPair, error) {
			s.Equal("owner@example.com", email)
			return &commands.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", body, "")

		var resp resdto.TokenResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("refresh", resp.RefreshToken)
	})

	s.Run("401 on bad credentials", func() {
		s.commands.login = func(context.Context, string, string) (*commands.TokenPair, error) {
			return nil, commands.ErrInvalidCredentials
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Incorrect email or password")
	})

	s.Run("403 for deactivated users", func() {
		s.commands.login = func(context.Context, string, string) (*commands.TokenPair, error) {
			return nil, commands.ErrUserInactive
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "User is deactivated")
	})
}

func (s *AuthHandlerTestSuite) TestForgotPassword() {
	s.Run("200 regardless of whether the email exists", func() {
		s.commands.forgotPassword = func(context.Context, string) (string, error) {
			return "", nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/forgot-password",
			map[string]any{"email": "ghost@example.com"}, "")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Contains(body["message"], "reset link")
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("200 with the profile", func() {
		u := testUser(s.T())
		s.queries.me = func(context.Context, uuid.UUID) (*user.User, error) {
			return u, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/me", nil, "token")

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(u.ID(), body.ID)
		s.Equal("owner", body.Role)
	})

	s.Run("401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("404 when the user vanished", func() {
		s.queries.me = func(context.Context, uuid.UUID) (*user.User, error) {
			return nil, queries.ErrUserNotFound
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/me", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}
