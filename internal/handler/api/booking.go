package api

import (
	"net/http"
	"strconv"

	dombooking "hotelier-hub/internal/domain/booking"
	reqdto "hotelier-hub/internal/handler/dto/request"
	resdto "hotelier-hub/internal/handler/dto/response"
	"hotelier-hub/internal/handler/httperr"
	"hotelier-hub/internal/handler/middleware"
	"hotelier-hub/internal/pkg/errs"
	"hotelier-hub/internal/infra/repository"
	"hotelier-hub/internal/usecase/commands"
	"hotelier-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary List bookings
// @Description Newest first, optional status filter
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param limit query int false "Page size, max 100"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	filter := repository.ListFilter{}
	if s := c.Query("status"); s != "" {
		status := dombooking.Status(s)
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
			return
		}
		filter.Status = status
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filter.Offset = n
		}
	}

	views, err := h.bookingQueries.List(c.Request.Context(), hotelID, filter)
	if err != nil {
		httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Create booking
// @Description Creates the guest alongside when the email is new to the hotel
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	in, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	result, err := h.bookingCommands.Create(c.Request.Context(), hotelID, in)
	if err != nil {
		switch {
		case errs.Is(err, dombooking.ErrNoRooms), errs.Is(err, dombooking.ErrNegativePrice):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBooking(result.Booking, result.Guest))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	view, err := h.bookingQueries.Get(c.Request.Context(), hotelID, bookingID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		default:
			httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Update booking
// @Description Partial update of status, paid amount and special requests
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Booking update"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Update(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	in, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking status"})
		return
	}

	result, err := h.bookingCommands.Update(c.Request.Context(), hotelID, bookingID, in)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errs.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status transition"})
		default:
			httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(result.Booking, result.Guest))
}

// @Summary List guests
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.GuestResponse
// @Router /bookings/guests [get]
func (h *BookingHandler) ListGuests(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	guests, err := h.bookingQueries.ListGuests(c.Request.Context(), hotelID)
	if err != nil {
		httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuests(guests))
}
