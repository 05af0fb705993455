package cookie

import (
	"net/http"
	"time"

	"bluehaven/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AdminTokenCookieName = "bh_admin_session"
	GuestTokenCookieName = "bh_guest_session"
)

func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, name, token string, ttl time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(name, token, int(ttl.Seconds()), "/", cfg.Domain, cfg.Secure, true)
}

func ClearSessionCookie(c *gin.Context, cfg config.CookieConfig, name string) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(name, "", -1, "/", cfg.Domain, cfg.Secure, true)
}

// GetSessionToken returns the first non-empty session cookie among names.
func GetSessionToken(c *gin.Context, names ...string) string {
	for _, name := range names {
		if token, err := c.Cookie(name); err == nil && token != "" {
			return token
		}
	}
	return ""
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
