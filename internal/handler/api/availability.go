package api

import (
	"net/http"
	"time"

	"hotelier-hub/internal/handler/httperr"
	"hotelier-hub/internal/handler/middleware"
	"hotelier-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityQueries: availabilityQueries}
}

// @Summary Availability calendar
// @Description Day-by-day availability per room type over an inclusive date range
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param start_date query string true "Range start (YYYY-MM-DD)"
// @Param end_date query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} availability.RoomTypeAvailability
// @Failure 400 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	start, err := time.Parse(dateLayout, c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date is required (YYYY-MM-DD)"})
		return
	}
	end, err := time.Parse(dateLayout, c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date is required (YYYY-MM-DD)"})
		return
	}

	result, err := h.availabilityQueries.Get(c.Request.Context(), hotelID, start, end)
	if err != nil {
		httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, result)
}
