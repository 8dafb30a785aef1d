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

// assetHandler serves the purchase catalog and executes purchases.
type assetHandler struct {
	catalogService  portssvc.AssetCatalogSvcFacade
	purchaseService portssvc.PurchaseSvcFacade
}

func newAssetHandler(cs portssvc.AssetCatalogSvcFacade, ps portssvc.PurchaseSvcFacade) *assetHandler {
	return &assetHandler{catalogService: cs, purchaseService: ps}
}

// registerAssetRoutes registers catalog and purchase routes.
func registerAssetRoutes(rg *gin.RouterGroup, catalogService portssvc.AssetCatalogSvcFacade, purchaseService portssvc.PurchaseSvcFacade) {
	h := newAssetHandler(catalogService, purchaseService)

	assets := rg.Group("/assets")
	{
		assets.GET("", h.listAssets)
		assets.POST("/purchase", h.purchaseAsset)
	}
	rg.GET("/holdings", h.listHoldings)
}

// listAssets godoc
// @Summary List purchasable assets
// @Description Retrieves the static purchase catalog.
// @Tags assets
// @Produce json
// @Success 200 {array} dto.AssetResponse
// @Security BearerAuth
// @Router /assets [get]
func (h *assetHandler) listAssets(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToAssetResponses(h.catalogService.ListAssets()))
}

// purchaseAsset godoc
// @Summary Purchase an asset
// @Description Buys one unit of a catalog asset, debiting the account balance.
// @Tags assets
// @Accept json
// @Produce json
// @Param purchase body dto.PurchaseRequest true "Asset to purchase"
// @Success 201 {object} dto.HoldingResponse
// @Failure 400 {object} ErrorResponse "Unknown asset or insufficient balance"
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Asset already purchased"
// @Security BearerAuth
// @Router /assets/purchase [post]
func (h *assetHandler) purchaseAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	now := time.Now().UTC()
	holding, err := h.purchaseService.PurchaseAsset(c.Request.Context(), accountID, req.AssetName, now)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnknownAsset):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown asset"})
		case errors.Is(err, apperrors.ErrDuplicateHolding):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Asset already purchased"})
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Insufficient balance"})
		default:
			logger.Error("Failed to purchase asset", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to purchase asset"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToHoldingResponse(holding, now))
}

// listHoldings godoc
// @Summary List holdings
// @Description Retrieves the caller's purchased assets, newest first.
// @Tags assets
// @Produce json
// @Success 200 {array} dto.HoldingResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /holdings [get]
func (h *assetHandler) listHoldings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	holdings, err := h.purchaseService.ListHoldings(c.Request.Context(), accountID)
	if err != nil {
		logger.Error("Failed to list holdings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve holdings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToHoldingResponses(holdings, time.Now().UTC()))
}
