//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"bluehaven/internal/domain/user"
	"bluehaven/internal/handler/api"
	reqdto "bluehaven/internal/handler/dto/request"
	resdto "bluehaven/internal/handler/dto/response"
	"bluehaven/internal/pkg/config"
	"bluehaven/internal/pkg/cookie"
	"bluehaven/internal/usecase/commands"
	"bluehaven/tests/common/builder"
	"bluehaven/tests/common/httptest"
	"bluehaven/tests/common/testutil"
	commandsmock "bluehaven/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	reqdto.RegisterValidators()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	cfg := config.NewTestConfig()
	handler := api.NewAuthHandler(s.mockCommands, cfg)

	s.router.POST("/auth/admin/login", handler.AdminLogin)
	s.router.POST("/auth/guest/login", handler.GuestLogin)
	s.router.POST("/auth/logout", handler.Logout)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func loginResult(subject string, role user.Role, ttl time.Duration) *commands.LoginResult {
	return &commands.LoginResult{
		Token:     "signed.jwt.token",
		ExpiresAt: time.Date(2026, 7, 2, 8, 0, 0, 0, time.UTC),
		TTL:       ttl,
		Principal: user.Principal{Subject: subject, Role: role},
	}
}

func (s *AuthHandlerTestSuite) TestAdminLogin() {
	url := "/auth/admin/login"
	reqBody := builder.NewAuthBuilder().BuildAdminDTO()

	s.Run("success: token in body and session cookie", func() {
		s.mockCommands.EXPECT().AdminLogin(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(loginResult(reqBody.Email, user.RoleAdmin, 24*time.Hour), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("signed.jwt.token", body.Token)
		s.Equal("admin", body.Role)
		s.Equal(reqBody.Email, body.Email)

		c := httptest.ExtractCookie(rec, cookie.AdminTokenCookieName)
		s.Require().NotNil(c)
		s.Equal("signed.jwt.token", c.Value)
		s.True(c.HttpOnly)
		s.Equal(int((24 * time.Hour).Seconds()), c.MaxAge)
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "owner")},
			{name: "short password", mutate: testutil.Field("password", "1234567")},
			{name: "missing password", mutate: testutil.Field("password", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
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
			{name: "wrong password", commandsError: commands.ErrInvalidCredentials, expectedStatus: http.StatusUnauthorized, expectedMsg: "Invalid email or password"},
			{name: "unknown staff", commandsError: commands.ErrAuthenticationFailed, expectedStatus: http.StatusUnauthorized, expectedMsg: "Invalid email or password"},
			{name: "token signing failed", commandsError: commands.ErrTokenGeneration, expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().AdminLogin(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				s.Nil(httptest.ExtractCookie(rec, cookie.AdminTokenCookieName))
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestGuestLogin() {
	url := "/auth/guest/login"
	guest := builder.NewAuthBuilder()
	guest.Email = "thandi@example.com"
	reqBody := guest.BuildGuestDTO()

	s.Run("success: guest cookie is set", func() {
		s.mockCommands.EXPECT().GuestLogin(gomock.Any(), reqBody.Email, reqBody.ConfirmationCode).
			Return(loginResult(reqBody.Email, user.RoleGuest, 7*24*time.Hour), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("guest", body.Role)
		s.NotNil(httptest.ExtractCookie(rec, cookie.GuestTokenCookieName))
		s.Nil(httptest.ExtractCookie(rec, cookie.AdminTokenCookieName))
	})

	s.Run("success: confirmation code is optional", func() {
		noCode := testutil.DtoMap(s.T(), reqBody, testutil.Field("confirmationCode", nil))
		s.mockCommands.EXPECT().GuestLogin(gomock.Any(), reqBody.Email, "").
			Return(loginResult(reqBody.Email, user.RoleGuest, time.Hour), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, noCode, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "no bookings for email", commandsError: commands.ErrGuestNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "No bookings found"},
			{name: "code does not match", commandsError: commands.ErrInvalidCredentials, expectedStatus: http.StatusUnauthorized, expectedMsg: "Invalid email or confirmation code"},
			{name: "store failure", commandsError: errors.New("disk"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().GuestLogin(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")

	s.Equal(http.StatusNoContent, rec.Code)
	for _, name := range []string{cookie.AdminTokenCookieName, cookie.GuestTokenCookieName} {
		c := httptest.ExtractCookie(rec, name)
		s.Require().NotNil(c, name)
		s.Empty(c.Value)
		s.Negative(c.MaxAge)
	}
}
