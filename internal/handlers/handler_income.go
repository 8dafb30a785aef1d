package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/driveyield/backend/internal/core/ports/services"
	"github.com/driveyield/backend/internal/dto"
	"github.com/driveyield/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// incomeHandler triggers daily income collection.
type incomeHandler struct {
	incomeService portssvc.IncomeSvcFacade
}

func newIncomeHandler(is portssvc.IncomeSvcFacade) *incomeHandler {
	return &incomeHandler{incomeService: is}
}

// registerIncomeRoutes registers income collection routes.
func registerIncomeRoutes(rg *gin.RouterGroup, incomeService portssvc.IncomeSvcFacade) {
	h := newIncomeHandler(incomeService)

	rg.POST("/income/collect", h.collectIncome)
}

// collectIncome godoc
// @Summary Collect daily income
// @Description Credits all daily income owed since the last collection. Collecting twice on the same day returns zero.
// @Tags income
// @Produce json
// @Success 200 {object} dto.CollectIncomeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /income/collect [post]
func (h *incomeHandler) collectIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	collected, err := h.incomeService.CollectIncome(c.Request.Context(), accountID, time.Now().UTC())
	if err != nil {
		logger.Error("Failed to collect income", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to collect income"})
		return
	}

	c.JSON(http.StatusOK, dto.CollectIncomeResponse{CollectedAmount: collected})
}
