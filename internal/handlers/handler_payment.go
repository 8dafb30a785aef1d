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

// paymentHandler consumes verified deposit instructions. The payment-gateway
// handshake happens out of band; this endpoint only credits the ledger.
type paymentHandler struct {
	fundingService portssvc.FundingSvcFacade
}

func newPaymentHandler(fs portssvc.FundingSvcFacade) *paymentHandler {
	return &paymentHandler{fundingService: fs}
}

// registerPaymentRoutes registers deposit routes.
func registerPaymentRoutes(rg *gin.RouterGroup, fundingService portssvc.FundingSvcFacade) {
	h := newPaymentHandler(fundingService)

	rg.POST("/deposits", h.deposit)
}

// deposit godoc
// @Summary Record a verified deposit
// @Description Credits a verified deposit to the account and pays the referrer's bonus when applicable.
// @Tags payments
// @Accept json
// @Produce json
// @Param deposit body dto.DepositRequest true "Verified deposit"
// @Success 200 {object} dto.DepositResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /deposits [post]
func (h *paymentHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.fundingService.Deposit(c.Request.Context(), accountID, req.Amount, req.PaymentRef, time.Now().UTC())
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to record deposit", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record deposit"})
		return
	}

	c.JSON(http.StatusOK, dto.DepositResponse{NewBalance: account.Balance})
}
