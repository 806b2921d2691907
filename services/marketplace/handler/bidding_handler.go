package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	bidding "stakex/internal/biddingService"
	"stakex/internal/models"
	"stakex/internal/repository"
	"stakex/services/marketplace/helpers"
	"stakex/utils"

	"github.com/gin-gonic/gin"
)

type BiddingServiceInterface interface {
	GetBidSummary(ctx context.Context, productID string) (bidding.BidSummary, error)
	AddBid(ctx context.Context, productID, actorID string, amount float64) (bidding.BidSummary, error)
	RemoveBid(ctx context.Context, productID, actorID string, index int) (float64, bidding.BidSummary, error)
	ReplaceBids(ctx context.Context, productID, actorID string, bids []float64) (bidding.BidSummary, error)
	PlaceOffer(ctx context.Context, productID, userID string, amount float64, message string) (models.Offer, error)
	ListOffers(ctx context.Context, f repository.OfferFilter) ([]models.Offer, error)
	ResolveOffer(ctx context.Context, offerID, actorID string, status models.OfferStatus) (models.Offer, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

func toSummaryResponse(sum bidding.BidSummary) helpers.BidSummaryResponse {
	return helpers.BidSummaryResponse{
		ProductID:   sum.ProductID,
		Bids:        sum.Bids,
		TotalBids:   sum.TotalBids,
		TotalAmount: sum.TotalAmount,
		AverageBid:  sum.AverageBid,
		HighestBid:  sum.HighestBid,
		DemandValue: sum.DemandValue,
	}
}

// GetBidsHandler handles GET /api/product-bids/:id
func (h *BiddingHandler) GetBidsHandler(c *gin.Context) {
	id, ok := helpers.RequireValidID(c, "GetBidsHandler", "id")
	if !ok {
		return
	}

	sum, err := h.service.GetBidSummary(c.Request.Context(), id)
	if err != nil {
		helpers.RespondError(c, "GetBidsHandler", err, map[string]any{"product_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, toSummaryResponse(sum), "bids retrieved successfully")
}

// AddBidHandler handles POST /api/product-bids/:id
func (h *BiddingHandler) AddBidHandler(c *gin.Context) {
	userID, ok := helpers.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, helpers.ErrMissingIdentity, "authentication required")
		return
	}
	id, ok := helpers.RequireValidID(c, "AddBidHandler", "id")
	if !ok {
		return
	}

	var req helpers.AddBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddBidHandler", err)
		return
	}

	sum, err := h.service.AddBid(c.Request.Context(), id, userID, req.Amount)
	if err != nil {
		helpers.RespondError(c, "AddBidHandler", err, map[string]any{"product_id": id, "actor": userID})
		return
	}

	resp := helpers.AddBidResponse{
		ProductID:   sum.ProductID,
		NewBid:      req.Amount,
		TotalBids:   sum.TotalBids,
		TotalAmount: sum.TotalAmount,
		DemandValue: sum.DemandValue,
	}
	utils.JSONResponse(c, http.StatusOK, resp, "bid recorded successfully")
	helpers.LogSuccess("AddBidHandler", "bid recorded successfully", map[string]any{
		"product_id":   id,
		"actor":        userID,
		"amount":       req.Amount,
		"demand_value": sum.DemandValue,
	})
}

// RemoveBidHandler handles DELETE /api/product-bids/:id/:index
func (h *BiddingHandler) RemoveBidHandler(c *gin.Context) {
	userID, ok := helpers.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, helpers.ErrMissingIdentity, "authentication required")
		return
	}
	id, ok := helpers.RequireValidID(c, "RemoveBidHandler", "id")
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "bid index must be a number")
		return
	}

	removed, sum, err := h.service.RemoveBid(c.Request.Context(), id, userID, index)
	if err != nil {
		helpers.RespondError(c, "RemoveBidHandler", err, map[string]any{"product_id": id, "index": index})
		return
	}

	resp := helpers.RemovedBidResponse{
		ProductID:   sum.ProductID,
		RemovedBid:  removed,
		TotalBids:   sum.TotalBids,
		TotalAmount: sum.TotalAmount,
		DemandValue: sum.DemandValue,
	}
	utils.JSONResponse(c, http.StatusOK, resp, "bid removed successfully")
}

// ReplaceBidsHandler handles PUT /api/product-bids/:id
func (h *BiddingHandler) ReplaceBidsHandler(c *gin.Context) {
	userID, ok := helpers.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, helpers.ErrMissingIdentity, "authentication required")
		return
	}
	id, ok := helpers.RequireValidID(c, "ReplaceBidsHandler", "id")
	if !ok {
		return
	}

	var req helpers.ReplaceBidsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ReplaceBidsHandler", err)
		return
	}

	sum, err := h.service.ReplaceBids(c.Request.Context(), id, userID, req.Bids)
	if err != nil {
		helpers.RespondError(c, "ReplaceBidsHandler", err, map[string]any{"product_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, toSummaryResponse(sum), "bids replaced successfully")
}

// PlaceOfferHandler handles POST /api/bids
func (h *BiddingHandler) PlaceOfferHandler(c *gin.Context) {
	userID, ok := helpers.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, helpers.ErrMissingIdentity, "authentication required")
		return
	}

	var req helpers.PlaceOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceOfferHandler", err)
		return
	}

	offer, err := h.service.PlaceOffer(c.Request.Context(), req.ProductID, userID, req.Amount, req.Message)
	if err != nil {
		helpers.RespondError(c, "PlaceOfferHandler", err, map[string]any{"product_id": req.ProductID, "actor": userID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, offer, "offer placed successfully")
	helpers.LogSuccess("PlaceOfferHandler", "offer placed successfully", map[string]any{
		"offer_id":   offer.OfferID,
		"product_id": offer.ProductID,
		"actor":      userID,
	})
}

// ListOffersHandler handles GET /api/bids
func (h *BiddingHandler) ListOffersHandler(c *gin.Context) {
	filter := repository.OfferFilter{
		ProductID: c.Query("productId"),
		UserID:    c.Query("userId"),
	}
	if status := c.Query("status"); status != "" {
		s := models.OfferStatus(status)
		if !s.Valid() {
			utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("unknown offer status: %s", status), "unknown offer status")
			return
		}
		filter.Status = s
	}

	offers, err := h.service.ListOffers(c.Request.Context(), filter)
	if err != nil {
		helpers.RespondError(c, "ListOffersHandler", err, nil)
		return
	}
	if offers == nil {
		offers = []models.Offer{}
	}

	utils.JSONResponse(c, http.StatusOK, offers, "offers retrieved successfully")
}

// ResolveOfferHandler handles PUT /api/bids/:id
func (h *BiddingHandler) ResolveOfferHandler(c *gin.Context) {
	userID, ok := helpers.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, helpers.ErrMissingIdentity, "authentication required")
		return
	}
	id, ok := helpers.RequireValidID(c, "ResolveOfferHandler", "id")
	if !ok {
		return
	}

	var req helpers.ResolveOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ResolveOfferHandler", err)
		return
	}

	offer, err := h.service.ResolveOffer(c.Request.Context(), id, userID, models.OfferStatus(req.Status))
	if err != nil {
		helpers.RespondError(c, "ResolveOfferHandler", err, map[string]any{"offer_id": id, "actor": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, offer, "offer resolved successfully")
	helpers.LogSuccess("ResolveOfferHandler", "offer resolved successfully", map[string]any{
		"offer_id": id,
		"status":   string(offer.Status),
	})
}
