package api

import (
	"net/http"
	"strconv"
	"time"

	resdto "hotelier-hub/internal/handler/dto/response"
	"hotelier-hub/internal/handler/httperr"
	"hotelier-hub/internal/handler/middleware"
	"hotelier-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardQueries queries.DashboardQueries
	reportQueries    queries.ReportQueries
}

func NewDashboardHandler(dashboardQueries queries.DashboardQueries, reportQueries queries.ReportQueries) *DashboardHandler {
	return &DashboardHandler{
		dashboardQueries: dashboardQueries,
		reportQueries:    reportQueries,
	}
}

// @Summary Dashboard stats
// @Description Today's arrivals, departures, occupancy, revenue and pending bookings
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} readstore.Stats
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	stats, err := h.dashboardQueries.Stats(c.Request.Context(), hotelID)
	if err != nil {
		httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// @Summary Recent bookings
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Router /dashboard/recent-bookings [get]
func (h *DashboardHandler) RecentBookings(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	views, err := h.dashboardQueries.RecentBookings(c.Request.Context(), hotelID)
	if err != nil {
		httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Revenue and booking trends
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param days query int false "Window size in days, default 30"
// @Success 200 {object} queries.DashboardReport
// @Router /reports/dashboard [get]
func (h *DashboardHandler) ReportDashboard(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	days := 0
	if v := c.Query("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			days = n
		}
	}

	report, err := h.reportQueries.Dashboard(c.Request.Context(), hotelID, days)
	if err != nil {
		httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, report)
}

// @Summary Occupancy report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Range start (YYYY-MM-DD), default 30 days ago"
// @Param end_date query string false "Range end (YYYY-MM-DD), default today"
// @Success 200 {object} queries.OccupancyReport
// @Failure 400 {object} map[string]string
// @Router /reports/occupancy [get]
func (h *DashboardHandler) ReportOccupancy(c *gin.Context) {
	hotelID, _ := middleware.GetHotelID(c)

	var start, end *time.Time
	if v := c.Query("start_date"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date, expected YYYY-MM-DD"})
			return
		}
		start = &t
	}
	if v := c.Query("end_date"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date, expected YYYY-MM-DD"})
			return
		}
		end = &t
	}

	report, err := h.reportQueries.Occupancy(c.Request.Context(), hotelID, start, end)
	if err != nil {
		httperr.Attach(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, report)
}
