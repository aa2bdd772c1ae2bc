package api

import (
	"net/http"
	"strconv"
	"time"

	resdto "hotelier-hub/internal/handler/dto/response"
	"hotelier-hub/internal/handler/httperr"
	"hotelier-hub/internal/pkg/errs"
	"hotelier-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PublicHandler serves the unauthenticated booking-page endpoints.
type PublicHandler struct {
	publicQueries queries.PublicQueries
}

func NewPublicHandler(publicQueries queries.PublicQueries) *PublicHandler {
	return &PublicHandler{publicQueries: publicQueries}
}

// @Summary Public hotel by slug
// @Tags public
// @Produce json
// @Param slug path string true "Hotel slug"
// @Success 200 {object} resdto.HotelResponse
// @Failure 404 {object} map[string]string
// @Router /public/hotels/slug/{slug} [get]
func (h *PublicHandler) HotelBySlug(c *gin.Context) {
	hotel, err := h.publicQueries.HotelBySlug(c.Request.Context(), c.Param("slug"))
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

// @Summary Public hotel by ID
// @Tags public
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.HotelResponse
// @Failure 404 {object} map[string]string
// @Router /public/hotels/{id} [get]
func (h *PublicHandler) HotelByID(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
		return
	}

	hotel, err := h.publicQueries.HotelByID(c.Request.Context(), hotelID)
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

// @Summary Search available rooms
// @Description Active room types with stock left for the stay and capacity for the party
// @Tags public
// @Produce json
// @Param id path string true "Hotel ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param guests query int false "Party size, default 2"
// @Success 200 {array} resdto.RoomTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /public/hotels/{id}/rooms [get]
func (h *PublicHandler) SearchRooms(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
		return
	}

	checkIn, err := time.Parse(dateLayout, c.Query("check_in"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "check_in is required (YYYY-MM-DD)"})
		return
	}
	checkOut, err := time.Parse(dateLayout, c.Query("check_out"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "check_out is required (YYYY-MM-DD)"})
		return
	}

	guests := 2
	if v := c.Query("guests"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			guests = n
		}
	}

	rooms, err := h.publicQueries.SearchRooms(c.Request.Context(), hotelID, checkIn, checkOut, guests)
	if err != nil {
		httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomTypes(rooms))
}
