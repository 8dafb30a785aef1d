package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/driveyield/backend/internal/apperrors"
	portssvc "github.com/driveyield/backend/internal/core/ports/services"
	"github.com/driveyield/backend/internal/dto"
	"github.com/driveyield/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles profile, dashboard, team and settings requests.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: as}
}

// registerAccountRoutes registers routes related to the caller's own account.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	rg.GET("/me", h.getOwnAccount)
	rg.GET("/dashboard", h.getDashboard)
	rg.GET("/team", h.listTeam)

	settings := rg.Group("/settings")
	{
		settings.PUT("/bank-details", h.updateBankDetails)
		settings.PUT("/password", h.changePassword)
		settings.PUT("/withdrawal-secret", h.setWithdrawalSecret)
	}
}

// getOwnAccount godoc
// @Summary Get own account
// @Description Retrieves the authenticated member's account details.
// @Tags accounts
// @Produce json
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *accountHandler) getOwnAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Account not found"})
			return
		}
		logger.Error("Failed to get account", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve account"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// getDashboard godoc
// @Summary Get account dashboard
// @Description Retrieves the account profile with holdings and a page of transaction history.
// @Tags accounts
// @Produce json
// @Param limit query int false "Page size for transaction history" default(20)
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *accountHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	dashboard, err := h.accountService.GetDashboard(c.Request.Context(), accountID, params.Limit, params.NextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Account not found"})
			return
		}
		logger.Error("Failed to build dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve dashboard"})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// listTeam godoc
// @Summary List referred members
// @Description Retrieves the members who registered with the caller's referral code.
// @Tags accounts
// @Produce json
// @Success 200 {array} dto.TeamMemberResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /team [get]
func (h *accountHandler) listTeam(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	team, err := h.accountService.ListTeam(c.Request.Context(), accountID)
	if err != nil {
		logger.Error("Failed to list team", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve team"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamMemberResponses(team))
}

// updateBankDetails godoc
// @Summary Update bank details
// @Description Replaces the caller's bank-transfer coordinates used for withdrawals.
// @Tags settings
// @Accept json
// @Produce json
// @Param details body dto.UpdateBankDetailsRequest true "Bank details"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings/bank-details [put]
func (h *accountHandler) updateBankDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateBankDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.accountService.UpdateBankDetails(c.Request.Context(), accountID, req); err != nil {
		logger.Error("Failed to update bank details", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update bank details"})
		return
	}

	c.Status(http.StatusNoContent)
}

// changePassword godoc
// @Summary Change login password
// @Description Replaces the login password after verifying the current one.
// @Tags settings
// @Accept json
// @Produce json
// @Param passwords body dto.ChangePasswordRequest true "Current and new password"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Current password incorrect"
// @Security BearerAuth
// @Router /settings/password [put]
func (h *accountHandler) changePassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	err := h.accountService.ChangeLoginPassword(c.Request.Context(), accountID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Current password is incorrect"})
			return
		}
		logger.Error("Failed to change password", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to change password"})
		return
	}

	c.Status(http.StatusNoContent)
}

// setWithdrawalSecret godoc
// @Summary Set withdrawal secret
// @Description Sets or replaces the withdrawal secret after re-authenticating with the login password.
// @Tags settings
// @Accept json
// @Produce json
// @Param secret body dto.SetWithdrawalSecretRequest true "Login password and new withdrawal secret"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Login password incorrect"
// @Security BearerAuth
// @Router /settings/withdrawal-secret [put]
func (h *accountHandler) setWithdrawalSecret(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SetWithdrawalSecretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	err := h.accountService.SetWithdrawalSecret(c.Request.Context(), accountID, req.LoginPassword, req.WithdrawalSecret)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Login password is incorrect"})
			return
		}
		logger.Error("Failed to set withdrawal secret", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to set withdrawal secret"})
		return
	}

	c.Status(http.StatusNoContent)
}
