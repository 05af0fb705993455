package api

import (
	"net/http"

	resdto "bluehaven/internal/handler/dto/response"
	"bluehaven/internal/handler/httperr"
	"bluehaven/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewQueries queries.ReviewQueries
}

func NewReviewHandler(reviewQueries queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{reviewQueries: reviewQueries}
}

// @Summary Published reviews
// @Tags reviews
// @Produce json
// @Success 200 {object} resdto.ReviewListResponse
// @Router /reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	summary, err := h.reviewQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reviews", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewSummary(summary))
}
