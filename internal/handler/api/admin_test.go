//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"bluehaven/internal/domain/reservation"
	"bluehaven/internal/domain/user"
	"bluehaven/internal/handler/api"
	reqdto "bluehaven/internal/handler/dto/request"
	resdto "bluehaven/internal/handler/dto/response"
	"bluehaven/internal/handler/middleware"
	"bluehaven/internal/pkg/errs"
	"bluehaven/internal/usecase/commands"
	"bluehaven/internal/usecase/queries"
	"bluehaven/internal/usecase/shared"
	"bluehaven/tests/common/builder"
	"bluehaven/tests/common/httptest"
	commandsmock "bluehaven/tests/mock/commands"
	queriesmock "bluehaven/tests/mock/queries"
	usecasemock "bluehaven/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	ownerToken = "owner-token"
	superToken = "super-token"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	bookingCommands *commandsmock.MockBookingCommands
	bookingQueries  *queriesmock.MockBookingQueries
	reminderCmds    *commandsmock.MockReminderCommands
	reminderQueries *queriesmock.MockReminderQueries
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	reqdto.RegisterValidators()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.bookingCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.bookingQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.reminderCmds = commandsmock.NewMockReminderCommands(s.mockCtrl)
	s.reminderQueries = queriesmock.NewMockReminderQueries(s.mockCtrl)
	handler := api.NewAdminHandler(s.bookingCommands, s.bookingQueries, s.reminderCmds, s.reminderQueries)

	validator := usecasemock.NewMockTokenValidator(s.mockCtrl)
	validator.EXPECT().ValidateToken(ownerToken).
		Return(user.Principal{Subject: "owner@bluehaven.co.za", Role: user.RoleAdmin}, nil).AnyTimes()
	validator.EXPECT().ValidateToken(superToken).
		Return(user.Principal{Subject: "admin@bluehaven.co.za", Role: user.RoleSuperAdmin}, nil).AnyTimes()
	validator.EXPECT().ValidateToken(guestToken).
		Return(user.Principal{Subject: guestEmail, Role: user.RoleGuest}, nil).AnyTimes()
	auth := middleware.NewAuthMiddleware(validator)

	admin := s.router.Group("/admin", auth.RequireAuth(), auth.RequireRoleAtLeast(user.RoleAdmin))
	admin.PATCH("/bookings/:id/status", handler.UpdateStatus)
	admin.GET("/bookings/:id/payments", handler.Payments)
	admin.DELETE("/bookings", auth.RequireRoleAtLeast(user.RoleSuperAdmin), handler.ClearAll)
	admin.GET("/reminders/upcoming", handler.UpcomingReminders)
	admin.POST("/reminders/:id/:kind", handler.SendReminder)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestUpdateStatus() {
	url := "/admin/bookings/BHTEST0001/status"

	s.Run("success: status with payment status", func() {
		paid := reservation.PaymentPaid
		view := builder.NewReservationBuilder().AsPaid().BuildView()
		s.bookingCommands.EXPECT().UpdateStatus(gomock.Any(), "BHTEST0001", reservation.StatusConfirmed, &paid).
			Return(view, nil).Times(1)

		ps := "paid"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			reqdto.UpdateStatusRequest{Status: "confirmed", PaymentStatus: &ps}, ownerToken)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("confirmed", body.Status)
		s.Equal("paid", body.PaymentStatus)
	})

	s.Run("success: payment status left untouched", func() {
		view := builder.NewReservationBuilder().AsCancelled().BuildView()
		s.bookingCommands.EXPECT().UpdateStatus(gomock.Any(), "BHTEST0001", reservation.StatusCancelled, gomock.Nil()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			reqdto.UpdateStatusRequest{Status: "cancelled"}, ownerToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: unknown status value", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "archived"}, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "missing booking", commandsError: commands.ErrReservationNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Booking not found"},
			{name: "illegal transition", commandsError: errs.Mark(errors.New("completed to pending"), commands.ErrInvalidStatusChange), expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "Status change not allowed"},
			{name: "reactivation overlaps", commandsError: commands.ErrDatesUnavailable, expectedStatus: http.StatusConflict, expectedMsg: "overlap"},
			{name: "store failure", commandsError: commands.ErrDatabaseOperationFailed, expectedStatus: http.StatusInternalServerError, expectedMsg: "Failed to update booking"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.bookingCommands.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
					reqdto.UpdateStatusRequest{Status: "pending"}, ownerToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: guests are forbidden", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			reqdto.UpdateStatusRequest{Status: "confirmed"}, guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *AdminHandlerTestSuite) TestPayments() {
	views := []*queries.PaymentView{{
		ID: uuid.New(), ReservationID: "BHTEST0001", Method: "yoco",
		AmountCents: 1650_00, FeeCents: 4785, TotalPaidCents: 1697_85, Status: "completed",
	}}
	s.bookingQueries.EXPECT().Payments(gomock.Any(), "BHTEST0001").Return(views, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings/BHTEST0001/payments", nil, ownerToken)

	var body []resdto.PaymentResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 1)
	s.Equal("yoco", body[0].Method)
	s.Equal(int64(1697_85), body[0].TotalPaidCents)
}

func (s *AdminHandlerTestSuite) TestClearAll() {
	s.Run("success: super admin clears", func() {
		s.bookingCommands.EXPECT().ClearAll(gomock.Any()).Return(3, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/bookings", nil, superToken)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"deleted":3}`, rec.Body.String())
	})

	s.Run("error: owner is forbidden", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/bookings", nil, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: store failure", func() {
		s.bookingCommands.EXPECT().ClearAll(gomock.Any()).Return(0, errors.New("disk")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/bookings", nil, superToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to clear bookings")
	})
}

func (s *AdminHandlerTestSuite) TestUpcomingReminders() {
	s.Run("success: defaults to one day", func() {
		s.reminderQueries.EXPECT().Upcoming(gomock.Any(), 1).Return(&queries.UpcomingReminders{
			CheckIns:  []*queries.ReservationView{builder.NewReservationBuilder().AsConfirmed().BuildView()},
			CheckOuts: []*queries.ReservationView{},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reminders/upcoming", nil, ownerToken)

		var body resdto.UpcomingRemindersResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.CheckIns, 1)
		s.Empty(body.CheckOuts)
	})

	s.Run("success: explicit look-ahead", func() {
		s.reminderQueries.EXPECT().Upcoming(gomock.Any(), 7).Return(&queries.UpcomingReminders{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reminders/upcoming?days=7", nil, ownerToken)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: days out of range", func() {
		for _, days := range []string{"0", "366", "soon"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reminders/upcoming?days="+days, nil, ownerToken)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "days must be between 1 and 365")
		}
	})
}

func (s *AdminHandlerTestSuite) TestSendReminder() {
	s.Run("success: 204", func() {
		s.reminderCmds.EXPECT().Send(gomock.Any(), "BHTEST0001", shared.ReminderCheckIn).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/reminders/BHTEST0001/checkin", nil, ownerToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "unknown kind", commandsError: commands.ErrInvalidReminderKind, expectedStatus: http.StatusBadRequest, expectedMsg: "Unknown reminder kind"},
			{name: "missing booking", commandsError: commands.ErrReservationNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Booking not found"},
			{name: "relay rejected", commandsError: errs.Mark(errors.New("400"), commands.ErrReminderFailed), expectedStatus: http.StatusBadGateway, expectedMsg: "Mail relay rejected"},
			{name: "store failure", commandsError: errors.New("disk"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Failed to send reminder"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.reminderCmds.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/reminders/BHTEST0001/checkin", nil, ownerToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
