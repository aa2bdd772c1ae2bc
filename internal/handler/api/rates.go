package api

import (
	"net/http"

	domrates "hotelier-hub/internal/domain/rates"
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

type RateHandler struct {
	rateCommands commands.RateCommands
	roomQueries  queries.RoomQueries
}

func NewRateHandler(rateCommands commands.RateCommands, roomQueries queries.RoomQueries) *RateHandler {
	return &RateHandler{
		rateCommands: rateCommands,
		roomQueries:  roomQueries,
	}
}

// @Summary List rate plans
// @Tags rates
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RatePlanResponse
// @Router /rates/plans [get]
func (h *RateHandler) ListPlans(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	plans, err := h.roomQueries.ListRatePlans(c.Request.Context(), hotelID)
	if err != nil {
		httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromRatePlans(plans))
}

// @Summary Create rate plan
// @Tags rates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRatePlanRequest true "Rate plan"
// @Success 201 {object} resdto.RatePlanResponse
// @Failure 400 {object} map[string]string
// @Router /rates/plans [post]
func (h *RateHandler) CreatePlan(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	var req reqdto.CreateRatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	p, err := h.rateCommands.CreatePlan(c.Request.Context(), hotelID, req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, domrates.ErrEmptyName):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRatePlan(p))
}

// @Summary Delete rate plan
// @Tags rates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rate plan ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rates/plans/{id} [delete]
func (h *RateHandler) DeletePlan(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rate plan not found"})
		return
	}

	if err := h.rateCommands.DeletePlan(c.Request.Context(), hotelID, planID); err != nil {
		switch {
		case errs.Is(err, commands.ErrRatePlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Rate plan not found"})
		default:
			httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rate plan deleted"})
}

// @Summary List room rates
// @Tags rates
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RoomRateResponse
// @Router /rates/room-rates [get]
func (h *RateHandler) ListRoomRates(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	rates, err := h.roomQueries.ListRoomRates(c.Request.Context(), hotelID)
	if err != nil {
		httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomRates(rates))
}

// @Summary Create room rate
// @Description Date-span price override; informational catalog only
// @Tags rates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRateRequest true "Room rate"
// @Success 201 {object} resdto.RoomRateResponse
// @Failure 400 {object} map[string]string
// @Router /rates/room-rates [post]
func (h *RateHandler) CreateRoomRate(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	var req reqdto.CreateRoomRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	in, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	rr, err := h.rateCommands.CreateRoomRate(c.Request.Context(), hotelID, in)
	if err != nil {
		switch {
		case errs.Is(err, domrates.ErrNegativePrice), errs.Is(err, domrates.ErrInvalidDateSpan):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoomRate(rr))
}
