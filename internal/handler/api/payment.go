package api

import (
	"net/http"

	dompayment "hotelier-hub/internal/domain/payment"
	reqdto "hotelier-hub/internal/handler/dto/request"
	resdto "hotelier-hub/internal/handler/dto/response"
	"hotelier-hub/internal/handler/httperr"
	"hotelier-hub/internal/handler/middleware"
	"hotelier-hub/internal/pkg/errs"
	"hotelier-hub/internal/usecase/commands"
	"hotelier-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
	paymentQueries  queries.PaymentQueries
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands, paymentQueries queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
		paymentQueries:  paymentQueries,
	}
}

// @Summary List payments
// @Description Payments with booking number and guest name attached
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PaymentResponse
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	rows, err := h.paymentQueries.List(c.Request.Context(), hotelID)
	if err != nil {
		httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentRows(rows))
}

// @Summary Record payment
// @Description Inserts the payment and accrues its amount onto the booking in one transaction
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RecordPaymentRequest true "Payment"
// @Success 201 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	var req reqdto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.paymentCommands.Record(c.Request.Context(), hotelID, req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errs.Is(err, dompayment.ErrEmptyMethod):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPaymentResult(result))
}
