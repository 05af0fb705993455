package api

import (
	"log/slog"
	"net/http"
	"strconv"

	reqdto "bluehaven/internal/handler/dto/request"
	resdto "bluehaven/internal/handler/dto/response"
	"bluehaven/internal/handler/httperr"
	"bluehaven/internal/handler/middleware"
	"bluehaven/internal/pkg/errs"
	"bluehaven/internal/usecase/commands"
	"bluehaven/internal/usecase/queries"
	"bluehaven/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	bookingCommands  commands.BookingCommands
	bookingQueries   queries.BookingQueries
	reminderCommands commands.ReminderCommands
	reminderQueries  queries.ReminderQueries
}

func NewAdminHandler(
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
	reminderCommands commands.ReminderCommands,
	reminderQueries queries.ReminderQueries,
) *AdminHandler {
	return &AdminHandler{
		bookingCommands:  bookingCommands,
		bookingQueries:   bookingQueries,
		reminderCommands: reminderCommands,
		reminderQueries:  reminderQueries,
	}
}

// @Summary Update booking status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateStatusRequest true "New status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/bookings/{id}/status [patch]
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", httperr.ValidationDetail(err))
		return
	}
	status, paymentStatus, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
		return
	}

	view, err := h.bookingCommands.UpdateStatus(c.Request.Context(), c.Param("id"), status, paymentStatus)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errs.Is(err, commands.ErrInvalidStatusChange):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Status change not allowed", gin.H{"reason": err.Error()})
		case errs.Is(err, commands.ErrDatesUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Dates overlap another active booking", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update booking", nil)
		}
		return
	}

	if p, ok := middleware.GetPrincipal(c); ok {
		slog.Info("booking status changed by staff", "reservation_id", view.ID, "subject", p.Subject, "status", view.Status)
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Booking payments
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.PaymentResponse
// @Router /admin/bookings/{id}/payments [get]
func (h *AdminHandler) Payments(c *gin.Context) {
	views, err := h.bookingQueries.Payments(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load payments", nil)
		return
	}
	out := make([]*resdto.PaymentResponse, len(views))
	for i, v := range views {
		out[i] = resdto.FromPaymentView(v)
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Clear all bookings
// @Description Deletes every booking with its payments and reviews. Super-admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ClearBookingsResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/bookings [delete]
func (h *AdminHandler) ClearAll(c *gin.Context) {
	n, err := h.bookingCommands.ClearAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to clear bookings", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.ClearBookingsResponse{Deleted: n})
}

// @Summary Upcoming reminders
// @Description Confirmed stays whose check-in or check-out falls within the next days
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param days query int false "Look-ahead in days (default 1)"
// @Success 200 {object} resdto.UpcomingRemindersResponse
// @Router /admin/reminders/upcoming [get]
func (h *AdminHandler) UpcomingReminders(c *gin.Context) {
	days := 1
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 365 {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "days must be between 1 and 365", nil)
			return
		}
		days = n
	}

	upcoming, err := h.reminderQueries.Upcoming(c.Request.Context(), days)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reminders", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUpcomingReminders(upcoming))
}

// @Summary Send a reminder now
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param kind path string true "checkin or checkout"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /admin/reminders/{id}/{kind} [post]
func (h *AdminHandler) SendReminder(c *gin.Context) {
	err := h.reminderCommands.Send(c.Request.Context(), c.Param("id"), shared.ReminderKind(c.Param("kind")))
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidReminderKind):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown reminder kind", nil)
		case errs.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errs.Is(err, commands.ErrReminderFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Mail relay rejected the reminder", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to send reminder", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
