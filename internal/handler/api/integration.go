package api

import (
	"net/http"

	domintegration "hotelier-hub/internal/domain/integration"
	reqdto "hotelier-hub/internal/handler/dto/request"
	resdto "hotelier-hub/internal/handler/dto/response"
	"hotelier-hub/internal/handler/httperr"
	"hotelier-hub/internal/handler/middleware"
	"hotelier-hub/internal/pkg/errs"
	"hotelier-hub/internal/usecase/commands"
	"hotelier-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type IntegrationHandler struct {
	integrationCommands commands.IntegrationCommands
	integrationQueries  queries.IntegrationQueries
}

func NewIntegrationHandler(integrationCommands commands.IntegrationCommands, integrationQueries queries.IntegrationQueries) *IntegrationHandler {
	return &IntegrationHandler{
		integrationCommands: integrationCommands,
		integrationQueries:  integrationQueries,
	}
}

// @Summary Get integration settings
// @Description Creates the settings row with defaults on first access
// @Tags integration
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.IntegrationSettingsResponse
// @Router /integration/settings [get]
func (h *IntegrationHandler) GetSettings(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	s, err := h.integrationQueries.Settings(c.Request.Context(), hotelID)
	if err != nil {
		httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromIntegrationSettings(s))
}

// @Summary Update integration settings
// @Tags integration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateIntegrationSettingsRequest true "Settings update"
// @Success 200 {object} resdto.IntegrationSettingsResponse
// @Failure 400 {object} map[string]string
// @Router /integration/settings [put]
func (h *IntegrationHandler) UpdateSettings(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	var req reqdto.UpdateIntegrationSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	s, err := h.integrationCommands.UpdateSettings(c.Request.Context(), hotelID, req.ToPatch())
	if err != nil {
		httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromIntegrationSettings(s))
}

// @Summary List API keys
// @Tags integration
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.APIKeyResponse
// @Router /integration/api-keys [get]
func (h *IntegrationHandler) ListAPIKeys(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	keys, err := h.integrationQueries.ListAPIKeys(c.Request.Context(), hotelID)
	if err != nil {
		httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromAPIKeys(keys))
}

// @Summary Create API key
// @Description The plaintext secret is returned once and never stored
// @Tags integration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAPIKeyRequest true "API key"
// @Success 201 {object} resdto.CreatedAPIKeyResponse
// @Failure 400 {object} map[string]string
// @Router /integration/api-keys [post]
func (h *IntegrationHandler) CreateAPIKey(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	var req reqdto.CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	created, err := h.integrationCommands.CreateAPIKey(c.Request.Context(), hotelID, req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, domintegration.ErrEmptyKeyName):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreatedAPIKey(created))
}

// @Summary Toggle API key
// @Tags integration
// @Produce json
// @Security BearerAuth
// @Param id path string true "API key ID"
// @Success 200 {object} resdto.APIKeyResponse
// @Failure 404 {object} map[string]string
// @Router /integration/api-keys/{id}/toggle [put]
func (h *IntegrationHandler) ToggleAPIKey(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	keyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "API key not found"})
		return
	}

	k, err := h.integrationCommands.ToggleAPIKey(c.Request.Context(), hotelID, keyID)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrAPIKeyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "API key not found"})
		default:
			httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAPIKey(k))
}

// @Summary Delete API key
// @Tags integration
// @Produce json
// @Security BearerAuth
// @Param id path string true "API key ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /integration/api-keys/{id} [delete]
func (h *IntegrationHandler) DeleteAPIKey(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	keyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "API key not found"})
		return
	}

	if err := h.integrationCommands.DeleteAPIKey(c.Request.Context(), hotelID, keyID); err != nil {
		switch {
		case errs.Is(err, commands.ErrAPIKeyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "API key not found"})
		default:
			httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "API key deleted"})
}

// @Summary Embeddable widget code
// @Description HTML, JS and CSS snippets plus integration instructions
// @Tags integration
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.WidgetCode
// @Failure 404 {object} map[string]string
// @Router /integration/widget-code [get]
func (h *IntegrationHandler) WidgetCode(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	code, err := h.integrationQueries.WidgetCode(c.Request.Context(), hotelID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
		default:
			httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, code)
}

// @Summary Test webhook configuration
// @Tags integration
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /integration/webhook-test [get]
func (h *IntegrationHandler) TestWebhook(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	url, err := h.integrationCommands.TestWebhook(c.Request.Context(), hotelID)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrWebhookNotConfigured):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Webhook URL not configured"})
		default:
			httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Webhook test queued",
		"webhook_url": url,
	})
}
