//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"hotelier-hub/internal/handler/dto/request"
	"hotelier-hub/internal/handler/dto/response"
	"hotelier-hub/tests/common/httptest"
	"hotelier-hub/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	signupURL         = "/api/v1/auth/signup"
	loginURL          = "/api/v1/auth/login"
	refreshURL        = "/api/v1/auth/refresh"
	forgotPasswordURL = "/api/v1/auth/forgot-password"
	changePasswordURL = "/api/v1/auth/change-password"
	meURL             = "/api/v1/users/me"
	myHotelURL        = "/api/v1/hotels/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) signup(email, password, hotelName string) response.SignupResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, signupURL, request.SignupRequest{
		Email:     email,
		Password:  password,
		Name:      "Test Owner",
		HotelName: hotelName,
	}, "")

	var body response.SignupResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &body)
	return body
}

func (s *authSuite) TestSignup() {
	body := s.signup("owner@sunrise.test", "Sup3rSecret", "Sunrise Inn")

	s.Equal("bearer", body.Tokens.TokenType)
	s.NotEmpty(body.Tokens.AccessToken)
	s.NotEmpty(body.Tokens.RefreshToken)
	s.Require().NotNil(body.User)
	s.Equal("owner@sunrise.test", body.User.Email)
	s.Equal("owner", body.User.Role)
	s.Require().NotNil(body.User.HotelID)

	// The signup provisions a hotel with a slug derived from its name.
	var hotel response.HotelResponse
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, myHotelURL, nil, body.Tokens.AccessToken)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &hotel)
	s.Equal(*body.User.HotelID, hotel.ID)
	s.Equal("Sunrise Inn", hotel.Name)
	s.Equal("sunrise-inn", hotel.Slug)

	s.Run("duplicate email is rejected", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, signupURL, request.SignupRequest{
			Email:     "owner@sunrise.test",
			Password:  "Sup3rSecret",
			Name:      "Someone Else",
			HotelName: "Other Hotel",
		}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Email already registered")
	})

	s.Run("weak password is rejected", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, signupURL, request.SignupRequest{
			Email:     "weak@sunrise.test",
			Password:  "alllowercase1",
			Name:      "Weak Password",
			HotelName: "Weak Hotel",
		}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Password does not meet policy")
	})
}

func (s *authSuite) TestLogin() {
	s.signup("login@sunrise.test", "Sup3rSecret", "Login Hotel")

	tests := []struct {
		name       string
		email      string
		password   string
		wantStatus int
		wantError  string
	}{
		{
			name:       "valid credentials",
			email:      "login@sunrise.test",
			password:   "Sup3rSecret",
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong password",
			email:      "login@sunrise.test",
			password:   "WrongPassw0rd",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Incorrect email or password",
		},
		{
			name:       "unknown email",
			email:      "nobody@sunrise.test",
			password:   "Sup3rSecret",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Incorrect email or password",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}, "")

			if tt.wantError != "" {
				httptest.AssertErrorResponse(s.T(), w, tt.wantStatus, tt.wantError)
				return
			}

			var tokens response.TokenResponse
			httptest.AssertSuccessResponse(s.T(), w, tt.wantStatus, &tokens)
			s.NotEmpty(tokens.AccessToken)
		})
	}
}

func (s *authSuite) TestRefresh() {
	body := s.signup("refresh@sunrise.test", "Sup3rSecret", "Refresh Hotel")

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, request.RefreshRequest{
		RefreshToken: body.Tokens.RefreshToken,
	}, "")

	var tokens response.TokenResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &tokens)
	s.NotEmpty(tokens.AccessToken)

	s.Run("access token is not accepted as refresh token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, request.RefreshRequest{
			RefreshToken: body.Tokens.AccessToken,
		}, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	body := s.signup("me@sunrise.test", "Sup3rSecret", "Me Hotel")

	var me response.UserResponse
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, body.Tokens.AccessToken)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &me)
	s.Equal(body.User.ID, me.ID)
	s.Equal("me@sunrise.test", me.Email)
	s.True(me.IsActive)

	s.Run("missing token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})
}

func (s *authSuite) TestChangePassword() {
	body := s.signup("change@sunrise.test", "Sup3rSecret", "Change Hotel")
	token := body.Tokens.AccessToken

	s.Run("wrong current password", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, changePasswordURL, request.ChangePasswordRequest{
			CurrentPassword: "WrongPassw0rd",
			NewPassword:     "N3wPassword",
		}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Current password is incorrect")
	})

	s.Run("successful change allows login with the new password", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, changePasswordURL, request.ChangePasswordRequest{
			CurrentPassword: "Sup3rSecret",
			NewPassword:     "N3wPassword",
		}, token)
		s.Equal(http.StatusOK, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, request.LoginRequest{
			Email:    "change@sunrise.test",
			Password: "N3wPassword",
		}, "")
		var tokens response.TokenResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &tokens)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, request.LoginRequest{
			Email:    "change@sunrise.test",
			Password: "Sup3rSecret",
		}, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestForgotPassword() {
	// Always the same response, whether or not the account exists.
	for _, email := range []string{"me@sunrise.test", "ghost@sunrise.test"} {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, forgotPasswordURL, request.ForgotPasswordRequest{
			Email: email,
		}, "")
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "reset link")
	}
}
