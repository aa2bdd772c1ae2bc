//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"

	"hotelier-hub/internal/domain/availability"
	"hotelier-hub/internal/handler/dto/request"
	"hotelier-hub/internal/handler/dto/response"
	"hotelier-hub/tests/common/httptest"
	"hotelier-hub/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	signupURL     = "/api/v1/auth/signup"
	roomsURL      = "/api/v1/rooms"
	ratePlansURL  = "/api/v1/rates/plans"
	bookingsURL   = "/api/v1/bookings"
	paymentsURL   = "/api/v1/payments"
	apiKeysURL    = "/api/v1/integration/api-keys"
	settingsURL   = "/api/v1/integration/settings"
	widgetCodeURL = "/api/v1/integration/widget-code"
	checkInDate   = "2027-03-10"
	checkOutDate  = "2027-03-12"
)

// bookingFlowSuite walks the full operator journey over HTTP: provision an
// account, set up inventory, take a booking, collect a payment and read the
// derived views.
type bookingFlowSuite struct {
	e2e.SharedSuite

	token     string
	hotelID   uuid.UUID
	hotelSlug string
}

func TestBookingFlowSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingFlowSuite))
}

func (s *bookingFlowSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, signupURL, request.SignupRequest{
		Email:     "frontdesk@grandpalace.test",
		Password:  "Sup3rSecret",
		Name:      "Front Desk",
		HotelName: "Grand Palace",
	}, "")

	var body response.SignupResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &body)
	s.Require().NotNil(body.User.HotelID)

	s.token = body.Tokens.AccessToken
	s.hotelID = *body.User.HotelID
	s.hotelSlug = "grand-palace"
}

func (s *bookingFlowSuite) TestFullBookingFlow() {
	// Inventory setup.
	var room response.RoomTypeResponse
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, roomsURL, request.CreateRoomTypeRequest{
		Name:           "Deluxe King",
		MaxOccupancy:   3,
		BasePrice:      150,
		TotalInventory: 2,
	}, s.token)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &room)
	s.Equal(s.hotelID, room.HotelID)
	s.True(room.IsActive)

	var plan response.RatePlanResponse
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, ratePlansURL, request.CreateRatePlanRequest{
		Name:     "Breakfast Included",
		MealPlan: "breakfast",
	}, s.token)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &plan)

	// Take a booking.
	var created response.BookingResponse
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, request.CreateBookingRequest{
		CheckIn:  checkInDate,
		CheckOut: checkOutDate,
		Guest: request.GuestRequest{
			FirstName: "Ravi",
			LastName:  "Nair",
			Email:     "ravi.nair@example.com",
		},
		Rooms: []request.BookingRoomRequest{
			{
				RoomTypeID:    room.ID,
				RoomTypeName:  room.Name,
				RatePlanID:    plan.ID,
				RatePlanName:  plan.Name,
				Guests:        2,
				PricePerNight: 150,
				TotalPrice:    300,
			},
		},
	}, s.token)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)

	s.Regexp(`^BK\d{8}[0-9a-f]{6}$`, created.BookingNumber)
	s.Equal("pending", created.Status)
	s.Equal(300.0, created.TotalAmount)
	s.Equal(0.0, created.PaidAmount)
	s.Require().NotNil(created.Guest)
	s.Equal("ravi.nair@example.com", created.Guest.Email)

	bookingURL := bookingsURL + "/" + created.ID.String()

	// Confirm it.
	var confirmed response.BookingResponse
	status := "confirmed"
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, bookingURL, request.UpdateBookingRequest{
		Status: &status,
	}, s.token)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &confirmed)
	s.Equal("confirmed", confirmed.Status)

	// Collect a payment; it must accrue onto the booking.
	var payment response.PaymentResponse
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, paymentsURL, request.RecordPaymentRequest{
		BookingID: created.ID,
		Amount:    100,
		Method:    "card",
	}, s.token)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &payment)
	s.Equal("completed", payment.Status)
	s.Equal("INR", payment.Currency)
	s.Equal(created.BookingNumber, payment.BookingNumber)
	s.Equal("Ravi Nair", payment.GuestName)

	var afterPayment response.BookingResponse
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingURL, nil, s.token)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &afterPayment)
	s.Equal(100.0, afterPayment.PaidAmount)

	// The availability calendar shows the occupied nights.
	var calendar []availability.RoomTypeAvailability
	availabilityURL := fmt.Sprintf("/api/v1/availability?start_date=%s&end_date=%s", "2027-03-09", checkOutDate)
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, availabilityURL, nil, s.token)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &calendar)
	s.Require().Len(calendar, 1)
	s.Equal(room.ID, calendar[0].RoomTypeID)
	s.Require().Len(calendar[0].Days, 4)

	booked := make([]int, 0, 4)
	for _, day := range calendar[0].Days {
		booked = append(booked, day.Booked)
	}
	// Nights of Mar 10 and 11 are occupied; checkout day is free.
	s.Equal([]int{0, 1, 1, 0}, booked)
	s.Equal(2, calendar[0].Days[1].Total)
	s.Equal(1, calendar[0].Days[1].Available)

	// The stay is visible in the booking list.
	var listed []response.BookingResponse
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"?status=confirmed", nil, s.token)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &listed)
	s.Require().Len(listed, 1)
	s.Equal(created.ID, listed[0].ID)
}

func (s *bookingFlowSuite) TestPublicEndpoints() {
	s.Run("hotel lookup by slug", func() {
		var hotel response.HotelResponse
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/v1/public/hotels/slug/"+s.hotelSlug, nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &hotel)
		s.Equal(s.hotelID, hotel.ID)
		s.Equal("Grand Palace", hotel.Name)
	})

	s.Run("unknown slug", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/v1/public/hotels/slug/no-such-hotel", nil, "")
		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("room search respects remaining stock", func() {
		searchURL := fmt.Sprintf("/api/v1/public/hotels/%s/rooms?check_in=%s&check_out=%s&guests=2",
			s.hotelID, checkInDate, checkOutDate)

		var rooms []response.RoomTypeResponse
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, searchURL, nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &rooms)

		// TestFullBookingFlow holds one of the two Deluxe King units over
		// these dates; one remains sellable.
		if s.Len(rooms, 1) {
			s.Equal("Deluxe King", rooms[0].Name)
		}

		// A larger party than max_occupancy finds nothing.
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(
			"/api/v1/public/hotels/%s/rooms?check_in=%s&check_out=%s&guests=5",
			s.hotelID, checkInDate, checkOutDate), nil, "")
		rooms = nil
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &rooms)
		s.Empty(rooms)
	})
}

func (s *bookingFlowSuite) TestIntegrationSurface() {
	s.Run("settings are created on demand with defaults", func() {
		var settings response.IntegrationSettingsResponse
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, settingsURL, nil, s.token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &settings)
		s.Equal(s.hotelID, settings.HotelID)
		s.True(settings.WidgetEnabled)
		s.Equal("light", settings.WidgetTheme)
		s.Equal(1000, settings.RateLimitPerHour)
	})

	s.Run("api key secret is returned once", func() {
		var created response.CreatedAPIKeyResponse
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, apiKeysURL, request.CreateAPIKeyRequest{
			Name: "channel manager",
		}, s.token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
		s.Regexp(`^sk_live_`, created.SecretKey)
		s.Regexp(`\.\.\.$`, created.KeyPrefix)

		// Listing never exposes the secret again.
		var keys []response.APIKeyResponse
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, apiKeysURL, nil, s.token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &keys)
		s.Require().Len(keys, 1)
		s.Equal(created.KeyPrefix, keys[0].KeyPrefix)
		s.NotContains(w.Body.String(), created.SecretKey)
	})

	s.Run("widget code embeds the hotel slug", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, widgetCodeURL, nil, s.token)
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), s.hotelSlug)
		s.Contains(w.Body.String(), "widget.js")
	})
}
