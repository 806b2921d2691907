package helpers

import (
	"time"

	"stakex/internal/models"
)

// Request DTOs

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Age      int    `json:"age" binding:"required"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateProductRequest binds from JSON or from a multipart form when an
// image file rides along.
type CreateProductRequest struct {
	Name                    string  `json:"name" form:"name" binding:"required"`
	Description             string  `json:"description" form:"description" binding:"required"`
	ImageURL                string  `json:"imageUrl" form:"imageUrl"`
	Price                   float64 `json:"price" form:"price" binding:"required,gt=0"`
	DaoID                   string  `json:"daoId" form:"daoId"`
	OnMarket                bool    `json:"onMarket" form:"onMarket"`
	PersonalItem            bool    `json:"personalItem" form:"personalItem"`
	YearsOfUse              int     `json:"yearsOfUse" form:"yearsOfUse"`
	AuthenticityCertificate string  `json:"authenticityCertificate" form:"authenticityCertificate"`
	IsMarketItem            bool    `json:"isMarketItem" form:"isMarketItem"`
	InitialBid              float64 `json:"initialBid" form:"initialBid"`
	DemandPrice             float64 `json:"demandPrice" form:"demandPrice"`
	IsRentable              bool    `json:"isRentable" form:"isRentable"`
}

type UpdateProductRequest struct {
	Name                    *string  `json:"name"`
	Description             *string  `json:"description"`
	ImageURL                *string  `json:"imageUrl"`
	Price                   *float64 `json:"price"`
	DaoID                   *string  `json:"daoId"`
	OnMarket                *bool    `json:"onMarket"`
	PersonalItem            *bool    `json:"personalItem"`
	YearsOfUse              *int     `json:"yearsOfUse"`
	AuthenticityCertificate *string  `json:"authenticityCertificate"`
	IsMarketItem            *bool    `json:"isMarketItem"`
	InitialBid              *float64 `json:"initialBid"`
	DemandPrice             *float64 `json:"demandPrice"`
	DemandValue             *float64 `json:"demandValue"`
	IsRentable              *bool    `json:"isRentable"`
}

type AddBidRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type ReplaceBidsRequest struct {
	Bids []float64 `json:"bids" binding:"required"`
}

type PlaceOfferRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Message   string  `json:"message"`
}

type ResolveOfferRequest struct {
	Status string `json:"status" binding:"required"`
}

type CartRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type OrderRequest struct {
	ProductID       string  `json:"productId" binding:"required"`
	PriceAtPurchase float64 `json:"priceAtPurchase"`
}

type OrderBatchRequest struct {
	Orders []OrderRequest `json:"orders" binding:"required"`
}

type TrackBidRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

type SellRequest struct {
	ProductID   string  `json:"productId" binding:"required"`
	AskingPrice float64 `json:"askingPrice"`
}

type AskingPriceRequest struct {
	AskingPrice float64 `json:"askingPrice" binding:"gte=0"`
}

// Response DTOs

type AuthResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

type ProductResponse struct {
	ProductID               string    `json:"productId"`
	Name                    string    `json:"name"`
	Description             string    `json:"description"`
	ImageURL                string    `json:"imageUrl,omitempty"`
	HasImage                bool      `json:"hasImage"`
	Price                   float64   `json:"price"`
	DemandValue             float64   `json:"demandValue"`
	Owner                   string    `json:"owner"`
	DaoID                   string    `json:"daoId,omitempty"`
	OnMarket                bool      `json:"onMarket"`
	PersonalItem            bool      `json:"personalItem"`
	YearsOfUse              int       `json:"yearsOfUse"`
	AuthenticityCertificate string    `json:"authenticityCertificate,omitempty"`
	IsMarketItem            bool      `json:"isMarketItem"`
	InitialBid              float64   `json:"initialBid"`
	DemandPrice             float64   `json:"demandPrice"`
	IsRentable              bool      `json:"isRentable"`
	Bids                    []float64 `json:"bids"`
	CreatedAt               string    `json:"createdAt"`
	UpdatedAt               string    `json:"updatedAt"`
}

type BidSummaryResponse struct {
	ProductID   string    `json:"productId"`
	Bids        []float64 `json:"bids"`
	TotalBids   int       `json:"totalBids"`
	TotalAmount float64   `json:"totalAmount"`
	AverageBid  float64   `json:"averageBid"`
	HighestBid  float64   `json:"highestBid"`
	DemandValue float64   `json:"demandValue"`
}

type AddBidResponse struct {
	ProductID   string  `json:"productId"`
	NewBid      float64 `json:"newBid"`
	TotalBids   int     `json:"totalBids"`
	TotalAmount float64 `json:"totalAmount"`
	DemandValue float64 `json:"demandValue"`
}

type RemovedBidResponse struct {
	ProductID   string  `json:"productId"`
	RemovedBid  float64 `json:"removedBid"`
	TotalBids   int     `json:"totalBids"`
	TotalAmount float64 `json:"totalAmount"`
	DemandValue float64 `json:"demandValue"`
}

// ToProductResponse flattens a product for the wire. Stored image bytes
// never ride along; clients fetch them from the image endpoint.
func ToProductResponse(p models.Product) ProductResponse {
	bids := p.Bids
	if bids == nil {
		bids = []float64{}
	}
	imageURL := p.ImageURL
	if imageURL == "" && p.Image.External != nil {
		imageURL = p.Image.External.URL
	}
	return ProductResponse{
		ProductID:               p.ID,
		Name:                    p.Name,
		Description:             p.Description,
		ImageURL:                imageURL,
		HasImage:                p.Image.Stored != nil,
		Price:                   p.Price,
		DemandValue:             p.DemandValue,
		Owner:                   p.Owner,
		DaoID:                   p.DaoID,
		OnMarket:                p.OnMarket,
		PersonalItem:            p.PersonalItem,
		YearsOfUse:              p.YearsOfUse,
		AuthenticityCertificate: p.AuthenticityCertificate,
		IsMarketItem:            p.IsMarketItem,
		InitialBid:              p.InitialBid,
		DemandPrice:             p.DemandPrice,
		IsRentable:              p.IsRentable,
		Bids:                    bids,
		CreatedAt:               p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:               p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ToProductResponses maps a slice, keeping an empty slice over nil.
func ToProductResponses(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out
}
