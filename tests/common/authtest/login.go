//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"bluehaven/internal/handler/dto/request"
	"bluehaven/internal/pkg/cookie"
	"bluehaven/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginAdmin(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/admin/login",
		request.AdminLoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	sessionCookie := httptest.ExtractCookie(w, cookie.AdminTokenCookieName)
	require.NotNil(t, sessionCookie, "admin session cookie not set")
	require.NotEmpty(t, sessionCookie.Value, "admin session cookie is empty")

	return sessionCookie.Value
}

func LoginGuest(t *testing.T, router *gin.Engine, email, confirmationCode string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/guest/login",
		request.GuestLoginRequest{Email: email, ConfirmationCode: confirmationCode}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	sessionCookie := httptest.ExtractCookie(w, cookie.GuestTokenCookieName)
	require.NotNil(t, sessionCookie, "guest session cookie not set")

	return sessionCookie.Value
}

func Logout(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
