//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"bluehaven/internal/domain/calendar"
	"bluehaven/internal/domain/reservation"
	reqdto "bluehaven/internal/handler/dto/request"
	resdto "bluehaven/internal/handler/dto/response"
	"bluehaven/tests/common/authtest"
	"bluehaven/tests/common/builder"
	"bluehaven/tests/common/dbtest"
	"bluehaven/tests/common/httptest"
	"bluehaven/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL     = "/api/bookings"
	availabilityURL = "/api/availability"
	adminEmail      = "owner@bluehaven.co.za"
	superEmail      = "admin@bluehaven.co.za"
)

type bookingSuite struct {
	e2e.SharedSuite
	today calendar.Date
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.today = calendar.DateOf(time.Now().In(s.Config.Property.Location()))
}

func (s *bookingSuite) stay(fromToday, nights int) (string, string) {
	checkIn := s.today.AddDays(fromToday)
	return checkIn.String(), checkIn.AddDays(nights).String()
}

func (s *bookingSuite) createBooking(checkIn, checkOut, email string) resdto.BookingResponse {
	t := s.T()
	req := builder.NewReservationBuilder().WithDates(checkIn, checkOut).WithEmail(email).BuildCreateRequestDTO()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")
	var res resdto.BookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return res
}

func (s *bookingSuite) TestCreate() {
	s.Run("stores a pending booking with the quoted total", func() {
		t := s.T()
		checkIn, checkOut := s.stay(40, 3)

		res := s.createBooking(checkIn, checkOut, "thandi@example.com")

		assert.NotEmpty(t, res.ID)
		assert.Len(t, res.ConfirmationCode, 8)
		assert.Equal(t, 3, res.Nights)
		assert.Equal(t, int64(1650_00), res.TotalCents)
		assert.Equal(t, reservation.StatusPending.String(), res.Status)
		assert.Equal(t, reservation.PaymentPending.String(), res.PaymentStatus)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations"))
	})

	s.Run("rejects an overlapping stay", func() {
		t := s.T()
		checkIn, checkOut := s.stay(40, 3)
		s.createBooking(checkIn, checkOut, "thandi@example.com")

		overlapIn, overlapOut := s.stay(41, 3)
		req := builder.NewReservationBuilder().WithDates(overlapIn, overlapOut).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")

		httptest.AssertErrorResponse(t, w, http.StatusConflict, "no longer available")
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations"))
	})

	s.Run("accepts a stay starting on the previous check-out day", func() {
		t := s.T()
		checkIn, checkOut := s.stay(40, 3)
		s.createBooking(checkIn, checkOut, "thandi@example.com")

		s.createBooking(checkOut, s.today.AddDays(45).String(), "sipho@example.com")
		assert.Equal(t, 2, dbtest.CountRows(t, s.DB, "reservations"))
	})

	s.Run("rejects a check-in in the past", func() {
		t := s.T()
		checkIn, checkOut := s.stay(-2, 3)
		req := builder.NewReservationBuilder().WithDates(checkIn, checkOut).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid booking")
	})

	s.Run("rejects a missing email", func() {
		t := s.T()
		checkIn, checkOut := s.stay(40, 3)
		req := builder.NewReservationBuilder().WithDates(checkIn, checkOut).WithEmail("").BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request format")
		var detail []map[string]string
		httptest.DecodeErrorDetail(t, w, &detail)
		require.NotEmpty(t, detail)
		assert.Equal(t, "email", detail[0]["field"])
	})
}

func (s *bookingSuite) TestReadBack() {
	s.Run("get and list return the stored booking", func() {
		t := s.T()
		checkIn, checkOut := s.stay(50, 2)
		created := s.createBooking(checkIn, checkOut, "thandi@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID, nil, "")
		var got resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, created.ConfirmationCode, got.ConfirmationCode)
		assert.Equal(t, "R1150.00", got.Total)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, "")
		var list []resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list, 1)
		assert.Equal(t, created.ID, list[0].ID)
	})

	s.Run("unknown booking is not found", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"/BHMISSING", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})
}

func (s *bookingSuite) TestAvailability() {
	s.Run("pending and confirmed stays block their nights", func() {
		t := s.T()
		checkIn, checkOut := s.stay(60, 2)
		s.createBooking(checkIn, checkOut, "thandi@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL, nil, "")
		var res resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)

		assert.Equal(t, []string{checkIn, s.today.AddDays(61).String()}, res.BlockedDates)
		assert.NotContains(t, res.BlockedDates, checkOut)
	})

	s.Run("cancelled stays free their nights", func() {
		t := s.T()
		checkIn, checkOut := s.stay(60, 2)
		created := s.createBooking(checkIn, checkOut, "thandi@example.com")
		token := authtest.LoginAdmin(t, s.Router, adminEmail, e2e.AdminPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, "/api/admin/bookings/"+created.ID+"/status",
			reqdto.UpdateStatusRequest{Status: "cancelled"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL, nil, "")
		var res resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Empty(t, res.BlockedDates)
	})

	s.Run("quote applies the weekly discount", func() {
		t := s.T()
		checkIn, checkOut := s.stay(70, 7)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/quote?checkIn=%s&checkOut=%s", availabilityURL, checkIn, checkOut), nil, "")
		var q resdto.QuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &q)

		assert.Equal(t, 7, q.Nights)
		assert.True(t, q.DiscountApplied)
		assert.Equal(t, int64(3300_00), q.TotalCents)
	})

	s.Run("picking a booked day is rejected with the selection unchanged", func() {
		t := s.T()
		checkIn, checkOut := s.stay(80, 2)
		s.createBooking(checkIn, checkOut, "thandi@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, availabilityURL+"/selection",
			reqdto.PickRequest{Day: checkIn}, "")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})
}

func (s *bookingSuite) TestPayments() {
	s.Run("card payment confirms the booking", func() {
		t := s.T()
		checkIn, checkOut := s.stay(90, 3)
		created := s.createBooking(checkIn, checkOut, "thandi@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+created.ID+"/payments",
			reqdto.ProcessPaymentRequest{Method: "yoco"}, "")
		var res resdto.PaymentResultResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)

		assert.True(t, res.Success)
		assert.Equal(t, reservation.StatusConfirmed.String(), res.Booking.Status)
		assert.Equal(t, reservation.PaymentPaid.String(), res.Booking.PaymentStatus)
		assert.Equal(t, int64(1650_00), res.Payment.AmountCents)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "payments"))
	})

	s.Run("eft leaves the booking pending with instructions", func() {
		t := s.T()
		checkIn, checkOut := s.stay(90, 3)
		created := s.createBooking(checkIn, checkOut, "thandi@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+created.ID+"/payments",
			reqdto.ProcessPaymentRequest{Method: "eft"}, "")
		var res resdto.PaymentResultResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)

		assert.Equal(t, reservation.StatusPending.String(), res.Booking.Status)
		assert.Contains(t, res.Payment.Instructions, res.Payment.Reference)
	})

	s.Run("unknown method is rejected by binding", func() {
		t := s.T()
		checkIn, checkOut := s.stay(90, 3)
		created := s.createBooking(checkIn, checkOut, "thandi@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+created.ID+"/payments",
			reqdto.ProcessPaymentRequest{Method: "bitcoin"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("methods are listed in rand", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/payments/methods", nil, "")
		var res resdto.PaymentMethodsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)

		assert.Equal(t, "ZAR", res.Currency)
		assert.Len(t, res.Methods, 4)
	})
}

func (s *bookingSuite) TestGuestPortal() {
	s.Run("dashboard splits upcoming and past stays", func() {
		t := s.T()
		checkIn, checkOut := s.stay(30, 3)
		s.createBooking(checkIn, checkOut, "thandi@example.com")
		past := builder.NewReservationBuilder().
			WithID("BHPAST0001").
			WithDates(s.today.AddDays(-10).String(), s.today.AddDays(-7).String()).
			WithStatus(reservation.StatusCompleted).
			WithPaymentStatus(reservation.PaymentPaid)
		past.ConfirmationCode = "PAST0001"
		dbtest.InsertReservation(t, s.DB, past.Record())

		token := authtest.LoginGuest(t, s.Router, "THANDI@example.com", "")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/guest/dashboard", nil, token)
		var res resdto.DashboardResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)

		assert.Equal(t, 2, res.Stats.TotalBookings)
		assert.Len(t, res.Upcoming, 1)
		assert.Len(t, res.Past, 1)
		assert.Equal(t, int64(3300_00), res.Stats.TotalSpentCents)
	})

	s.Run("completed stay can be reviewed once", func() {
		t := s.T()
		past := builder.NewReservationBuilder().
			WithID("BHPAST0002").
			WithDates(s.today.AddDays(-10).String(), s.today.AddDays(-7).String()).
			WithStatus(reservation.StatusCompleted)
		dbtest.InsertReservation(t, s.DB, past.Record())
		token := authtest.LoginGuest(t, s.Router, past.Email, past.ConfirmationCode)

		review := reqdto.CreateReviewRequest{ReservationID: past.ID, Rating: 5, Title: "Lovely", Comment: "Woke up to the sea every day."}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/guest/reviews", review, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/guest/reviews", review, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already been reviewed")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/reviews", nil, "")
		var list resdto.ReviewListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		assert.Equal(t, 1, list.Count)
		assert.InDelta(t, 5.0, list.AverageRating, 0.001)
	})

	s.Run("unknown guest email is not found", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/guest/login",
			reqdto.GuestLoginRequest{Email: "nobody@example.com"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "No bookings found")
	})
}

func (s *bookingSuite) TestAdmin() {
	s.Run("status transitions follow the lifecycle", func() {
		t := s.T()
		checkIn, checkOut := s.stay(100, 2)
		created := s.createBooking(checkIn, checkOut, "thandi@example.com")
		token := authtest.LoginAdmin(t, s.Router, adminEmail, e2e.AdminPassword)
		statusURL := "/api/admin/bookings/" + created.ID + "/status"

		paid := "paid"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL,
			reqdto.UpdateStatusRequest{Status: "confirmed", PaymentStatus: &paid}, token)
		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, "confirmed", res.Status)
		assert.Equal(t, "paid", res.PaymentStatus)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL,
			reqdto.UpdateStatusRequest{Status: "pending"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Status change not allowed")
	})

	s.Run("guest token cannot reach admin routes", func() {
		t := s.T()
		checkIn, checkOut := s.stay(100, 2)
		created := s.createBooking(checkIn, checkOut, "thandi@example.com")
		token := authtest.LoginGuest(t, s.Router, created.GuestEmail, created.ConfirmationCode)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/reminders/upcoming", nil, token)
		assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("only a super admin clears every booking", func() {
		t := s.T()
		checkIn, checkOut := s.stay(100, 2)
		s.createBooking(checkIn, checkOut, "thandi@example.com")

		ownerToken := authtest.LoginAdmin(t, s.Router, adminEmail, e2e.AdminPassword)
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/admin/bookings", nil, ownerToken)
		assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations"))

		superToken := authtest.LoginAdmin(t, s.Router, superEmail, e2e.AdminPassword)
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/admin/bookings", nil, superToken)
		var res resdto.ClearBookingsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, 1, res.Deleted)
		assert.Zero(t, dbtest.CountRows(t, s.DB, "reservations"))
	})

	s.Run("missing token is unauthorized", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/reminders/upcoming", nil, "")
		assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}
