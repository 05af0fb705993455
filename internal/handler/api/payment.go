package api

import (
	"net/http"

	"bluehaven/internal/domain/payment"
	reqdto "bluehaven/internal/handler/dto/request"
	resdto "bluehaven/internal/handler/dto/response"
	"bluehaven/internal/handler/httperr"
	"bluehaven/internal/pkg/errs"
	"bluehaven/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{paymentCommands: paymentCommands}
}

// @Summary Payment methods
// @Tags payments
// @Produce json
// @Success 200 {object} resdto.PaymentMethodsResponse
// @Router /payments/methods [get]
func (h *PaymentHandler) Methods(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromMethods(payment.Methods()))
}

// @Summary Pay for a booking
// @Description Charges the booking total through the simulated provider. A declined charge returns 200 with success=false.
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.ProcessPaymentRequest true "Payment method"
// @Success 200 {object} resdto.PaymentResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /bookings/{id}/payments [post]
func (h *PaymentHandler) Process(c *gin.Context) {
	var req reqdto.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", httperr.ValidationDetail(err))
		return
	}

	result, err := h.paymentCommands.Process(c.Request.Context(), c.Param("id"), req.Method)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidPaymentMethod):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown payment method", nil)
		case errs.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errs.Is(err, commands.ErrPaymentNotAllowed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking cannot accept a payment", gin.H{"reason": err.Error()})
		case errs.Is(err, commands.ErrPaymentGateway):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Payment provider unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Payment processing failed", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentResult(result))
}
