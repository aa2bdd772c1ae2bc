package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotelier-hub/internal/handler/api"
	"hotelier-hub/internal/handler/middleware"
	"hotelier-hub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Hotel        *api.HotelHandler
	Room         *api.RoomHandler
	Rate         *api.RateHandler
	Booking      *api.BookingHandler
	Availability *api.AvailabilityHandler
	Payment      *api.PaymentHandler
	Dashboard    *api.DashboardHandler
	Integration  *api.IntegrationHandler
	Public       *api.PublicHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMw *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMw, rateLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMw *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
				{Method: http.MethodPost, Path: "/forgot-password", Handler: h.Auth.ForgotPassword},
				{Method: http.MethodPost, Path: "/reset-password", Handler: h.Auth.ResetPassword},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMw.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/change-password", Handler: h.Auth.ChangePassword},
			})
		}

		users := v1.Group("/users")
		users.Use(authMw.RequireAuth())
		addRoutes(users, []route{
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
		})

		hotels := v1.Group("/hotels")
		hotels.Use(authMw.RequireAuth())
		addRoutes(hotels, []route{
			{Method: http.MethodGet, Path: "/me", Handler: h.Hotel.GetMyHotel},
			{Method: http.MethodPatch, Path: "/me", Handler: h.Hotel.UpdateMyHotel},
		})

		// Everything below operates on the caller's hotel.
		tenant := v1.Group("")
		tenant.Use(authMw.RequireAuth(), authMw.RequireHotel())
		{
			rooms := tenant.Group("/rooms")
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Room.List},
				{Method: http.MethodPost, Path: "", Handler: h.Room.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Room.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Room.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Room.Delete},
			})

			rates := tenant.Group("/rates")
			addRoutes(rates, []route{
				{Method: http.MethodGet, Path: "/plans", Handler: h.Rate.ListPlans},
				{Method: http.MethodPost, Path: "/plans", Handler: h.Rate.CreatePlan},
				{Method: http.MethodDelete, Path: "/plans/:id", Handler: h.Rate.DeletePlan},
				{Method: http.MethodGet, Path: "/room-rates", Handler: h.Rate.ListRoomRates},
				{Method: http.MethodPost, Path: "/room-rates", Handler: h.Rate.CreateRoomRate},
			})

			// /bookings/guests must precede /bookings/:id
			bookings := tenant.Group("/bookings")
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "/guests", Handler: h.Booking.ListGuests},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Booking.Update},
			})

			addRoutes(tenant, []route{
				{Method: http.MethodGet, Path: "/availability", Handler: h.Availability.Get},
				{Method: http.MethodGet, Path: "/payments", Handler: h.Payment.List},
				{Method: http.MethodPost, Path: "/payments", Handler: h.Payment.Create},
				{Method: http.MethodGet, Path: "/dashboard/stats", Handler: h.Dashboard.Stats},
				{Method: http.MethodGet, Path: "/dashboard/recent-bookings", Handler: h.Dashboard.RecentBookings},
				{Method: http.MethodGet, Path: "/reports/dashboard", Handler: h.Dashboard.ReportDashboard},
				{Method: http.MethodGet, Path: "/reports/occupancy", Handler: h.Dashboard.ReportOccupancy},
			})

			integration := tenant.Group("/integration")
			addRoutes(integration, []route{
				{Method: http.MethodGet, Path: "/settings", Handler: h.Integration.GetSettings},
				{Method: http.MethodPut, Path: "/settings", Handler: h.Integration.UpdateSettings},
				{Method: http.MethodGet, Path: "/api-keys", Handler: h.Integration.ListAPIKeys},
				{Method: http.MethodPost, Path: "/api-keys", Handler: h.Integration.CreateAPIKey},
				{Method: http.MethodPut, Path: "/api-keys/:id/toggle", Handler: h.Integration.ToggleAPIKey},
				{Method: http.MethodDelete, Path: "/api-keys/:id", Handler: h.Integration.DeleteAPIKey},
				{Method: http.MethodGet, Path: "/widget-code", Handler: h.Integration.WidgetCode},
				{Method: http.MethodGet, Path: "/webhook-test", Handler: h.Integration.TestWebhook},
			})
		}

		public := v1.Group("/public")
		public.Use(rateLimiter.Limit())
		addRoutes(public, []route{
			{Method: http.MethodGet, Path: "/hotels/slug/:slug", Handler: h.Public.HotelBySlug},
			{Method: http.MethodGet, Path: "/hotels/:id", Handler: h.Public.HotelByID},
			{Method: http.MethodGet, Path: "/hotels/:id/rooms", Handler: h.Public.SearchRooms},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
