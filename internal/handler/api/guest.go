package api

import (
	"net/http"

	reqdto "bluehaven/internal/handler/dto/request"
	resdto "bluehaven/internal/handler/dto/response"
	"bluehaven/internal/handler/httperr"
	"bluehaven/internal/handler/middleware"
	"bluehaven/internal/pkg/errs"
	"bluehaven/internal/usecase/commands"
	"bluehaven/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GuestHandler struct {
	guestQueries   queries.GuestQueries
	reviewCommands commands.ReviewCommands
}

func NewGuestHandler(guestQueries queries.GuestQueries, reviewCommands commands.ReviewCommands) *GuestHandler {
	return &GuestHandler{
		guestQueries:   guestQueries,
		reviewCommands: reviewCommands,
	}
}

// @Summary Guest bookings
// @Tags guest
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Router /guest/bookings [get]
func (h *GuestHandler) Bookings(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated", nil)
		return
	}

	views, err := h.guestQueries.Bookings(c.Request.Context(), p.Subject)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load bookings", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Guest dashboard
// @Description Upcoming and past stays with booking stats
// @Tags guest
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Failure 401 {object} httperr.Response
// @Router /guest/dashboard [get]
func (h *GuestHandler) Dashboard(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated", nil)
		return
	}

	view, err := h.guestQueries.Dashboard(c.Request.Context(), p.Subject)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load dashboard", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboardView(view))
}

// @Summary Review a stay
// @Tags guest
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Review"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /guest/reviews [post]
func (h *GuestHandler) CreateReview(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated", nil)
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", httperr.ValidationDetail(err))
		return
	}

	view, err := h.reviewCommands.Create(c.Request.Context(), p.Subject, req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errs.Is(err, commands.ErrReviewNotYourStay):
			httperr.AbortWithError(c, http.StatusForbidden, err, "You can only review your own stays", nil)
		case errs.Is(err, commands.ErrDuplicateReview):
			httperr.AbortWithError(c, http.StatusConflict, err, "This stay has already been reviewed", nil)
		case errs.Is(err, commands.ErrReviewNotAllowed):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "This stay cannot be reviewed yet", gin.H{"reason": err.Error()})
		case errs.Is(err, commands.ErrInvalidReview):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid review", gin.H{"reason": err.Error()})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to save review", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReviewView(view))
}
