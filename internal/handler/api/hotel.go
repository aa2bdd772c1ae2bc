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

type HotelHandler struct {
	hotelCommands commands.HotelCommands
	userQueries   queries.UserQueries
}

func NewHotelHandler(hotelCommands commands.HotelCommands, userQueries queries.UserQueries) *HotelHandler {
	return &HotelHandler{
		hotelCommands: hotelCommands,
		userQueries:   userQueries,
	}
}

// @Summary Get my hotel
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.HotelResponse
// @Failure 404 {object} map[string]string
// @Router /hotels/me [get]
func (h *HotelHandler) GetMyHotel(c *gin.Context) {
	hotelID, ok := middleware.GetHotelID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No hotel found for this user"})
		return
	}

	hotel, err := h.userQueries.MyHotel(c.Request.Context(), hotelID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
		default:
			httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotel(hotel))
}

// @Summary Update my hotel
// @Description Partial update; JSON blob fields merge key-wise
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateHotelRequest true "Hotel update"
// @Success 200 {object} resdto.HotelResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/me [patch]
func (h *HotelHandler) UpdateMyHotel(c *gin.Context) {
	hotelID, ok := middleware.GetHotelID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No hotel found for this user"})
		return
	}

	var req reqdto.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	hotel, err := h.hotelCommands.UpdateProfile(c.Request.Context(), hotelID, req.ToPatch())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
		default:
			httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotel(hotel))
}
