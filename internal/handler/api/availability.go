package api

import (
	"net/http"

	reqdto "bluehaven/internal/handler/dto/request"
	resdto "bluehaven/internal/handler/dto/response"
	"bluehaven/internal/handler/httperr"
	"bluehaven/internal/pkg/errs"
	"bluehaven/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityQueries: availabilityQueries}
}

// @Summary Blocked dates
// @Description Days occupied by existing bookings, ascending
// @Tags availability
// @Produce json
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 500 {object} httperr.Response
// @Router /availability [get]
func (h *AvailabilityHandler) BlockedDates(c *gin.Context) {
	blocked, err := h.availabilityQueries.BlockedDates(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load availability", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBlockedDates(blocked))
}

// @Summary Price quote
// @Description Zero quote unless both dates are present and ordered
// @Tags availability
// @Produce json
// @Param checkIn query string false "Check-in day (YYYY-MM-DD)"
// @Param checkOut query string false "Check-out day (YYYY-MM-DD)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Router /availability/quote [get]
func (h *AvailabilityHandler) Quote(c *gin.Context) {
	var q reqdto.QuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", httperr.ValidationDetail(err))
		return
	}
	checkIn, checkOut := q.Dates()
	c.JSON(http.StatusOK, resdto.FromQuote(h.availabilityQueries.Quote(checkIn, checkOut)))
}

// @Summary Month calendar
// @Description Every day of the month classified for the given selection
// @Tags availability
// @Produce json
// @Param month query string false "Month (YYYY-MM), defaults to the current month"
// @Param checkIn query string false "Selected check-in"
// @Param checkOut query string false "Selected check-out"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Router /availability/calendar [get]
func (h *AvailabilityHandler) Calendar(c *gin.Context) {
	var q reqdto.CalendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", httperr.ValidationDetail(err))
		return
	}
	sel, err := q.Selection()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid selection", gin.H{"reason": err.Error()})
		return
	}

	year, month := q.YearMonth(h.availabilityQueries.Today())
	view, err := h.availabilityQueries.Month(c.Request.Context(), year, month, sel)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load availability", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMonthView(view))
}

// @Summary Pick a day
// @Description Applies one calendar click to the current selection
// @Tags availability
// @Accept json
// @Produce json
// @Param request body reqdto.PickRequest true "Current selection and clicked day"
// @Success 200 {object} resdto.PickResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response "Rejected pick; detail carries the unchanged selection"
// @Router /availability/selection [post]
func (h *AvailabilityHandler) Pick(c *gin.Context) {
	var req reqdto.PickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", httperr.ValidationDetail(err))
		return
	}
	sel, day, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid selection", gin.H{"reason": err.Error()})
		return
	}

	view, err := h.availabilityQueries.Pick(c.Request.Context(), sel, day)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrRejectedPick):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), resdto.FromSelectionView(view))
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load availability", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.PickResponse{
		Selection: resdto.FromSelectionView(view),
		Quote:     resdto.FromQuote(h.availabilityQueries.Quote(view.CheckIn, view.CheckOut)),
	})
}
