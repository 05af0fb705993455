package api

import (
	"net/http"

	reqdto "bluehaven/internal/handler/dto/request"
	resdto "bluehaven/internal/handler/dto/response"
	"bluehaven/internal/handler/httperr"
	"bluehaven/internal/pkg/config"
	"bluehaven/internal/pkg/cookie"
	"bluehaven/internal/pkg/errs"
	"bluehaven/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	cookieCfg    config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		cookieCfg:    cfg.Cookie,
	}
}

// @Summary Admin login
// @Description Login with a configured staff email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.AdminLoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/admin/login [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", httperr.ValidationDetail(err))
		return
	}

	result, err := h.authCommands.AdminLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials), errs.Is(err, commands.ErrAuthenticationFailed):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	h.respond(c, cookie.AdminTokenCookieName, result)
}

// @Summary Guest portal login
// @Description Login with the email used for a booking, optionally narrowed by confirmation code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.GuestLoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/guest/login [post]
func (h *AuthHandler) GuestLogin(c *gin.Context) {
	var req reqdto.GuestLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", httperr.ValidationDetail(err))
		return
	}

	result, err := h.authCommands.GuestLogin(c.Request.Context(), req.Email, req.ConfirmationCode)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrGuestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No bookings found for this email", nil)
		case errs.Is(err, commands.ErrInvalidCredentials), errs.Is(err, commands.ErrAuthenticationFailed):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or confirmation code", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	h.respond(c, cookie.GuestTokenCookieName, result)
}

// @Summary Logout
// @Description Clears the session cookies; bearer tokens simply expire
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.cookieCfg, cookie.AdminTokenCookieName)
	cookie.ClearSessionCookie(c, h.cookieCfg, cookie.GuestTokenCookieName)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) respond(c *gin.Context, cookieName string, result *commands.LoginResult) {
	cookie.SetSessionCookie(c, h.cookieCfg, cookieName, result.Token, result.TTL)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		Email:     result.Principal.Subject,
		Role:      result.Principal.Role.String(),
	})
}
