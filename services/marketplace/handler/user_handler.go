package handler

import (
	"context"
	"net/http"

	"stakex/internal/models"
	"stakex/services/marketplace/helpers"
	"stakex/utils"

	"github.com/gin-gonic/gin"
)

type UserServiceInterface interface {
	Get(ctx context.Context, userID string) (models.User, error)
	AddToCart(ctx context.Context, userID, productID string) (models.User, error)
	RemoveFromCart(ctx context.Context, userID, productID string) (models.User, error)
	ClearCart(ctx context.Context, userID string) (models.User, error)
	AddOrder(ctx context.Context, userID string, order models.OrderEntry) (models.User, error)
	AddOrders(ctx context.Context, userID string, orders []models.OrderEntry) (models.User, error)
	TrackBid(ctx context.Context, userID, productID string, amount float64) (models.User, error)
	UntrackBid(ctx context.Context, userID, productID string) (models.User, error)
	ListForSale(ctx context.Context, userID, productID string, askingPrice float64) (models.User, error)
	UpdateAskingPrice(ctx context.Context, userID, productID string, askingPrice float64) (models.User, error)
	Delist(ctx context.Context, userID, productID string) (models.User, error)
}

type UserHandler struct {
	service UserServiceInterface
}

func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// requireUser resolves the caller or writes the 401 itself.
func requireUser(c *gin.Context) (string, bool) {
	userID, ok := helpers.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, helpers.ErrMissingIdentity, "authentication required")
		return "", false
	}
	return userID, true
}

// GetCartHandler handles GET /api/user/cart
func (h *UserHandler) GetCartHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	u, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, "GetCartHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, u.Cart, "cart retrieved successfully")
}

// AddToCartHandler handles POST /api/user/cart
func (h *UserHandler) AddToCartHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req helpers.CartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddToCartHandler", err)
		return
	}

	u, err := h.service.AddToCart(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		helpers.RespondError(c, "AddToCartHandler", err, map[string]any{"user_id": userID, "product_id": req.ProductID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, u.Cart, "product added to cart")
}

// RemoveFromCartHandler handles DELETE /api/user/cart/:productId
func (h *UserHandler) RemoveFromCartHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	productID, ok := helpers.RequireValidID(c, "RemoveFromCartHandler", "productId")
	if !ok {
		return
	}

	u, err := h.service.RemoveFromCart(c.Request.Context(), userID, productID)
	if err != nil {
		helpers.RespondError(c, "RemoveFromCartHandler", err, map[string]any{"user_id": userID, "product_id": productID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, u.Cart, "product removed from cart")
}

// ClearCartHandler handles DELETE /api/user/cart
func (h *UserHandler) ClearCartHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	u, err := h.service.ClearCart(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, "ClearCartHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, u.Cart, "cart cleared")
}

// GetHistoryHandler handles GET /api/user/history
func (h *UserHandler) GetHistoryHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	u, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, "GetHistoryHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, u.HistoryOrders, "order history retrieved successfully")
}

// AddOrderHandler handles POST /api/user/history
func (h *UserHandler) AddOrderHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req helpers.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddOrderHandler", err)
		return
	}

	u, err := h.service.AddOrder(c.Request.Context(), userID, models.OrderEntry{
		ProductID:       req.ProductID,
		PriceAtPurchase: req.PriceAtPurchase,
	})
	if err != nil {
		helpers.RespondError(c, "AddOrderHandler", err, map[string]any{"user_id": userID, "product_id": req.ProductID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, u.HistoryOrders, "order recorded successfully")
}

// AddOrderBatchHandler handles POST /api/user/history/batch
func (h *UserHandler) AddOrderBatchHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req helpers.OrderBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddOrderBatchHandler", err)
		return
	}

	orders := make([]models.OrderEntry, 0, len(req.Orders))
	for _, o := range req.Orders {
		orders = append(orders, models.OrderEntry{
			ProductID:       o.ProductID,
			PriceAtPurchase: o.PriceAtPurchase,
		})
	}

	u, err := h.service.AddOrders(c.Request.Context(), userID, orders)
	if err != nil {
		helpers.RespondError(c, "AddOrderBatchHandler", err, map[string]any{"user_id": userID, "count": len(orders)})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, u.HistoryOrders, "orders recorded successfully")
}

// GetTrackedBidsHandler handles GET /api/user/bids
func (h *UserHandler) GetTrackedBidsHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	u, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, "GetTrackedBidsHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, u.OngoingBids, "ongoing bids retrieved successfully")
}

// TrackBidHandler handles POST /api/user/bids
func (h *UserHandler) TrackBidHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req helpers.TrackBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "TrackBidHandler", err)
		return
	}

	u, err := h.service.TrackBid(c.Request.Context(), userID, req.ProductID, req.Amount)
	if err != nil {
		helpers.RespondError(c, "TrackBidHandler", err, map[string]any{"user_id": userID, "product_id": req.ProductID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, u.OngoingBids, "bid tracked successfully")
}

// UntrackBidHandler handles DELETE /api/user/bids/:productId
func (h *UserHandler) UntrackBidHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	productID, ok := helpers.RequireValidID(c, "UntrackBidHandler", "productId")
	if !ok {
		return
	}

	u, err := h.service.UntrackBid(c.Request.Context(), userID, productID)
	if err != nil {
		helpers.RespondError(c, "UntrackBidHandler", err, map[string]any{"user_id": userID, "product_id": productID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, u.OngoingBids, "bid untracked successfully")
}

// GetSellListingsHandler handles GET /api/user/sell
func (h *UserHandler) GetSellListingsHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	u, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, "GetSellListingsHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, u.ItemsToSell, "sale listings retrieved successfully")
}

// ListForSaleHandler handles POST /api/user/sell
func (h *UserHandler) ListForSaleHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req helpers.SellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ListForSaleHandler", err)
		return
	}

	u, err := h.service.ListForSale(c.Request.Context(), userID, req.ProductID, req.AskingPrice)
	if err != nil {
		helpers.RespondError(c, "ListForSaleHandler", err, map[string]any{"user_id": userID, "product_id": req.ProductID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, u.ItemsToSell, "product listed for sale")
}

// UpdateAskingPriceHandler handles PATCH /api/user/sell/:productId
func (h *UserHandler) UpdateAskingPriceHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	productID, ok := helpers.RequireValidID(c, "UpdateAskingPriceHandler", "productId")
	if !ok {
		return
	}

	var req helpers.AskingPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateAskingPriceHandler", err)
		return
	}

	u, err := h.service.UpdateAskingPrice(c.Request.Context(), userID, productID, req.AskingPrice)
	if err != nil {
		helpers.RespondError(c, "UpdateAskingPriceHandler", err, map[string]any{"user_id": userID, "product_id": productID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, u.ItemsToSell, "asking price updated")
}

// DelistHandler handles DELETE /api/user/sell/:productId
func (h *UserHandler) DelistHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	productID, ok := helpers.RequireValidID(c, "DelistHandler", "productId")
	if !ok {
		return
	}

	u, err := h.service.Delist(c.Request.Context(), userID, productID)
	if err != nil {
		helpers.RespondError(c, "DelistHandler", err, map[string]any{"user_id": userID, "product_id": productID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, u.ItemsToSell, "product delisted")
}
