package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/driveyield/backend/internal/apperrors"
	portssvc "github.com/driveyield/backend/internal/core/ports/services"
	"github.com/driveyield/backend/internal/dto"
	"github.com/driveyield/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// withdrawalHandler executes withdrawals from earnings.
type withdrawalHandler struct {
	withdrawalService portssvc.WithdrawalSvcFacade
}

func newWithdrawalHandler(ws portssvc.WithdrawalSvcFacade) *withdrawalHandler {
	return &withdrawalHandler{withdrawalService: ws}
}

// registerWithdrawalRoutes registers withdrawal routes.
func registerWithdrawalRoutes(rg *gin.RouterGroup, withdrawalService portssvc.WithdrawalSvcFacade) {
	h := newWithdrawalHandler(withdrawalService)

	rg.POST("/withdrawals", h.withdraw)
}

// withdraw godoc
// @Summary Withdraw earnings
// @Description Moves funds out of earnings to the account's bank, after validating the withdrawal secret, the amount and the configured minimum.
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param withdrawal body dto.WithdrawalRequest true "Amount and withdrawal secret"
// @Success 200 {object} dto.WithdrawalResponse
// @Failure 400 {object} ErrorResponse "Invalid amount, below minimum, or insufficient earnings"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Withdrawal secret missing or incorrect"
// @Security BearerAuth
// @Router /withdrawals [post]
func (h *withdrawalHandler) withdraw(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.withdrawalService.Withdraw(c.Request.Context(), accountID, req.Amount, req.WithdrawalSecret, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNoWithdrawalSecret):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Withdrawal secret not set"})
		case errors.Is(err, apperrors.ErrInvalidWithdrawalSecret):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Incorrect withdrawal secret"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrInsufficientEarnings):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Insufficient earnings"})
		case errors.Is(err, apperrors.ErrBelowMinimumWithdrawal):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Amount below minimum withdrawal"})
		default:
			logger.Error("Failed to withdraw", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to withdraw"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.WithdrawalResponse{
		NewBalance:  account.Balance,
		NewEarnings: account.Earnings,
	})
}
