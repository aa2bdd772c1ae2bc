package components

import (
	"context"

	"hotelier-hub/internal/handler"
	"hotelier-hub/internal/handler/api"
	"hotelier-hub/internal/handler/middleware"
	"hotelier-hub/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewHotelHandler,
		api.NewRoomHandler,
		api.NewRateHandler,
		api.NewBookingHandler,
		api.NewAvailabilityHandler,
		api.NewPaymentHandler,
		api.NewDashboardHandler,
		api.NewIntegrationHandler,
		api.NewPublicHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config, lc fx.Lifecycle) *middleware.RateLimiter {
			rl := middleware.NewRateLimiter(cfg.RateLimit)
			lc.Append(fx.Hook{
				OnStop: func(context.Context) error {
					rl.Close()
					return nil
				},
			})
			return rl
		},
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	hotel *api.HotelHandler,
	room *api.RoomHandler,
	rate *api.RateHandler,
	booking *api.BookingHandler,
	availability *api.AvailabilityHandler,
	payment *api.PaymentHandler,
	dashboard *api.DashboardHandler,
	integration *api.IntegrationHandler,
	public *api.PublicHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Hotel:        hotel,
		Room:         room,
		Rate:         rate,
		Booking:      booking,
		Availability: availability,
		Payment:      payment,
		Dashboard:    dashboard,
		Integration:  integration,
		Public:       public,
	}
}
