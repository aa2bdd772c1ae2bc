package api

import (
	"net/http"

	reqdto "hotelier-hub/internal/handler/dto/request"
	resdto "hotelier-hub/internal/handler/dto/response"
	"hotelier-hub/internal/handler/httperr"
	"hotelier-hub/internal/handler/middleware"
	"hotelier-hub/internal/pkg/errs"
	"hotelier-hub/internal/usecase/commands"
	"hotelier-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
	}
}

// @Summary Register a hotel and its owner
// @Description Create a hotel with a unique slug and the owner account in one step
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignupRequest true "Signup request"
// @Success 201 {object} resdto.SignupResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req reqdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.authCommands.Signup(c.Request.Context(), commands.SignupInput{
		Email:     req.Email,
		Password:  req.Password,
		Name:      req.Name,
		HotelName: req.HotelName,
	})
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrEmailAlreadyExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		case errs.Is(err, commands.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password does not meet policy"})
		case errs.Is(err, commands.ErrAuthenticationFailed):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		default:
			httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.SignupResponse{
		Tokens: resdto.FromTokenPair(&result.Tokens),
		User:   resdto.FromUser(result.User),
	})
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.TokenResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	tokens, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
		case errs.Is(err, commands.ErrUserInactive):
			c.JSON(http.StatusForbidden, gin.H{"error": "User is deactivated"})
		default:
			httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTokenPair(tokens))
}

// @Summary Refresh tokens
// @Description Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest true "Refresh request"
// @Success 200 {object} resdto.TokenResponse
// @Failure 401 {object} map[string]string
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req reqdto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	tokens, err := h.authCommands.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrUserInactive):
			c.JSON(http.StatusForbidden, gin.H{"error": "User is deactivated"})
		default:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTokenPair(tokens))
}

// @Summary Request a password reset
// @Description Always returns 200 so account existence is never revealed
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.ForgotPasswordRequest true "Forgot password request"
// @Success 200 {object} map[string]string
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req reqdto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if _, err := h.authCommands.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "If the email exists, a reset link has been sent"})
}

// @Summary Reset password with a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.ResetPasswordRequest true "Reset password request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req reqdto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	err := h.authCommands.ResetPassword(c.Request.Context(), req.Token, req.NewPassword)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidResetToken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired reset token"})
		case errs.Is(err, commands.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password does not meet policy"})
		default:
			httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset"})
}

// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ChangePasswordRequest true "Change password request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	err := h.authCommands.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect"})
		case errs.Is(err, commands.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password does not meet policy"})
		default:
			httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}

// @Summary Get current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	u, err := h.userQueries.Me(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromUser(u))
}
