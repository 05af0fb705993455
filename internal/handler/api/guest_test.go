//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"bluehaven/internal/domain/user"
	"bluehaven/internal/handler/api"
	reqdto "bluehaven/internal/handler/dto/request"
	resdto "bluehaven/internal/handler/dto/response"
	"bluehaven/internal/handler/middleware"
	"bluehaven/internal/pkg/errs"
	"bluehaven/internal/usecase/commands"
	"bluehaven/internal/usecase/queries"
	"bluehaven/tests/common/builder"
	"bluehaven/tests/common/httptest"
	"bluehaven/tests/common/testutil"
	commandsmock "bluehaven/tests/mock/commands"
	queriesmock "bluehaven/tests/mock/queries"
	usecasemock "bluehaven/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	guestToken = "guest-token"
	guestEmail = "thandi@example.com"
)

type GuestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockGuestQueries
	mockCommands *commandsmock.MockReviewCommands
}

func (s *GuestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	reqdto.RegisterValidators()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockGuestQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	handler := api.NewGuestHandler(s.mockQueries, s.mockCommands)

	validator := usecasemock.NewMockTokenValidator(s.mockCtrl)
	validator.EXPECT().ValidateToken(guestToken).
		Return(user.Principal{Subject: guestEmail, Role: user.RoleGuest}, nil).AnyTimes()
	auth := middleware.NewAuthMiddleware(validator)

	guest := s.router.Group("/guest", auth.RequireAuth(), auth.RequireRole(user.RoleGuest))
	guest.GET("/bookings", handler.Bookings)
	guest.GET("/dashboard", handler.Dashboard)
	guest.POST("/reviews", handler.CreateReview)
}

func (s *GuestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGuestHandlerSuite(t *testing.T) {
	suite.Run(t, new(GuestHandlerTestSuite))
}

func (s *GuestHandlerTestSuite) TestBookings() {
	s.Run("success: scoped to the token subject", func() {
		views := []*queries.ReservationView{builder.NewReservationBuilder().BuildView()}
		s.mockQueries.EXPECT().Bookings(gomock.Any(), guestEmail).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guest/bookings", nil, guestToken)

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("error: 500 on store failure", func() {
		s.mockQueries.EXPECT().Bookings(gomock.Any(), guestEmail).Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guest/bookings", nil, guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load bookings")
	})
}

func (s *GuestHandlerTestSuite) TestDashboard() {
	s.Run("success: stats and split lists", func() {
		upcoming := builder.NewReservationBuilder().WithID("BHUP").BuildView()
		past := builder.NewReservationBuilder().WithID("BHPAST").WithDates("2026-05-01", "2026-05-03").BuildView()
		s.mockQueries.EXPECT().Dashboard(gomock.Any(), guestEmail).Return(&queries.DashboardView{
			Email:    guestEmail,
			Stats:    queries.GuestStats{TotalBookings: 2, UpcomingBookings: 1, PastBookings: 1, TotalSpentCents: 2800_00, ReviewsGiven: 1},
			Upcoming: []*queries.ReservationView{upcoming},
			Past:     []*queries.ReservationView{past},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guest/dashboard", nil, guestToken)

		var body resdto.DashboardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(guestEmail, body.Email)
		s.Equal(resdto.GuestStatsResponse{TotalBookings: 2, UpcomingBookings: 1, PastBookings: 1, TotalSpentCents: 2800_00, ReviewsGiven: 1}, body.Stats)
		s.Require().Len(body.Upcoming, 1)
		s.Equal("BHUP", body.Upcoming[0].ID)
		s.Require().Len(body.Past, 1)
		s.Equal("BHPAST", body.Past[0].ID)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guest/dashboard", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

func (s *GuestHandlerTestSuite) TestCreateReview() {
	url := "/guest/reviews"
	rb := builder.NewReviewBuilder()
	reqBody := rb.BuildCreateRequestDTO()
	view := rb.BuildView()

	s.Run("success: 201 with the stored review", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), guestEmail, commands.CreateReviewInput{
			ReservationID: reqBody.ReservationID,
			Rating:        reqBody.Rating,
			Title:         reqBody.Title,
			Comment:       reqBody.Comment,
		}).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, guestToken)

		var body resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.Rating, body.Rating)
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "rating below range", mutate: testutil.Field("rating", 0)},
			{name: "rating above range", mutate: testutil.Field("rating", 6)},
			{name: "missing comment", mutate: testutil.Field("comment", nil)},
			{name: "missing reservation", mutate: testutil.Field("reservationId", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), guestToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "unknown stay", commandsError: commands.ErrReservationNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Booking not found"},
			{name: "someone else's stay", commandsError: commands.ErrReviewNotYourStay, expectedStatus: http.StatusForbidden, expectedMsg: "your own stays"},
			{name: "already reviewed", commandsError: commands.ErrDuplicateReview, expectedStatus: http.StatusConflict, expectedMsg: "already been reviewed"},
			{name: "stay not finished", commandsError: errs.Mark(errors.New("not eligible"), commands.ErrReviewNotAllowed), expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "cannot be reviewed yet"},
			{name: "domain rejects content", commandsError: commands.ErrInvalidReview, expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid review"},
			{name: "store failure", commandsError: errors.New("disk"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Failed to save review"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), guestEmail, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, guestToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
