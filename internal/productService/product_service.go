// Package product implements the listing lifecycle: create, read,
// update, delete. Every write path recomputes the product's demand
// value before it is persisted.
package product

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"stakex/internal/cache"
	"stakex/internal/demand"
	"stakex/internal/marketerrors"
	"stakex/internal/models"
	"stakex/internal/repository"
	"stakex/utils"
)

const maxMutateAttempts = 3

// CreateInput carries the fields a seller supplies when listing a product.
type CreateInput struct {
	Name                    string
	Description             string
	Image                   models.ImageRef
	Price                   float64
	DaoID                   string
	OnMarket                bool
	PersonalItem            bool
	YearsOfUse              int
	AuthenticityCertificate string
	IsMarketItem            bool
	InitialBid              float64
	DemandPrice             float64
	IsRentable              bool
}

// UpdateInput is the allow-list for partial updates. Nil fields are left
// untouched. A non-nil DemandValue overrides the computed value for this
// write only.
type UpdateInput struct {
	Name                    *string
	Description             *string
	Image                   *models.ImageRef
	Price                   *float64
	DaoID                   *string
	OnMarket                *bool
	PersonalItem            *bool
	YearsOfUse              *int
	AuthenticityCertificate *string
	IsMarketItem            *bool
	InitialBid              *float64
	DemandPrice             *float64
	DemandValue             *float64
	IsRentable              *bool
}

// ProductService manages product documents.
type ProductService struct {
	repo  repository.MarketDB
	cache cache.Store
}

// NewProductService creates a new ProductService instance. The cache may
// be nil when caching is disabled.
func NewProductService(repo repository.MarketDB, cacheStore cache.Store) *ProductService {
	return &ProductService{
		repo:  repo,
		cache: cacheStore,
	}
}

func productKey(id string) string { return "product:" + id }

func (s *ProductService) invalidate(ctx context.Context, productID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, productKey(productID)); err != nil {
		utils.Warn("failed to invalidate product cache", map[string]any{
			"productId": productID,
			"error":     err.Error(),
		})
	}
}

func validateCreate(in CreateInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("service: %w - product name is required", marketerrors.ErrValidation)
	}
	if strings.TrimSpace(in.Description) == "" {
		return fmt.Errorf("service: %w - product description is required", marketerrors.ErrValidation)
	}
	if in.Price <= 0 {
		return fmt.Errorf("service: %w - price must be positive", marketerrors.ErrValidation)
	}
	if in.Image.IsZero() {
		return fmt.Errorf("service: %w - product image is required", marketerrors.ErrValidation)
	}
	if in.IsMarketItem {
		if in.InitialBid <= 0 {
			return fmt.Errorf("service: %w - market items require a positive initial bid", marketerrors.ErrValidation)
		}
		if in.InitialBid >= in.Price {
			return fmt.Errorf("service: %w - initial bid must be below the price", marketerrors.ErrValidation)
		}
	}
	return nil
}

// Create validates the input, materializes the demand value and inserts
// the listing.
func (s *ProductService) Create(ctx context.Context, ownerID string, in CreateInput) (models.Product, error) {
	if ownerID == "" {
		return models.Product{}, fmt.Errorf("service: %w - missing owner", marketerrors.ErrValidation)
	}
	if err := validateCreate(in); err != nil {
		return models.Product{}, err
	}

	now := time.Now().UTC()
	p := models.Product{
		ID:                      utils.GenerateID(),
		Name:                    strings.TrimSpace(in.Name),
		Description:             strings.TrimSpace(in.Description),
		Image:                   in.Image,
		Price:                   in.Price,
		Owner:                   ownerID,
		DaoID:                   in.DaoID,
		OnMarket:                in.OnMarket,
		PersonalItem:            in.PersonalItem,
		YearsOfUse:              in.YearsOfUse,
		AuthenticityCertificate: in.AuthenticityCertificate,
		IsMarketItem:            in.IsMarketItem,
		InitialBid:              in.InitialBid,
		DemandPrice:             in.DemandPrice,
		IsRentable:              in.IsRentable,
		Bids:                    []float64{},
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	p.DemandValue = demand.Value(p.Price, p.IsMarketItem, p.InitialBid, p.Bids)

	if err := s.repo.InsertProduct(ctx, &p); err != nil {
		return models.Product{}, fmt.Errorf("service: failed to create product: %w", err)
	}
	utils.Info("product created", map[string]any{
		"product_id": p.ID,
		"owner":      ownerID,
		"price":      p.Price,
	})
	return p, nil
}

// Get returns a single product, serving from the cache when possible.
func (s *ProductService) Get(ctx context.Context, productID string) (models.Product, error) {
	if s.cache != nil {
		var cached models.Product
		hit, err := s.cache.Get(ctx, productKey(productID), &cached)
		if err != nil {
			utils.Warn("product cache read failed", map[string]any{
				"productId": productID,
				"error":     err.Error(),
			})
		} else if hit {
			return cached, nil
		}
	}

	p, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return models.Product{}, fmt.Errorf("service: failed to get product %s: %w", productID, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, productKey(productID), p); err != nil {
			utils.Warn("product cache write failed", map[string]any{
				"productId": productID,
				"error":     err.Error(),
			})
		}
	}
	return p, nil
}

// List returns products newest first, optionally restricted to an owner.
func (s *ProductService) List(ctx context.Context, ownerID string) ([]models.Product, error) {
	products, err := s.repo.ListProducts(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list products: %w", err)
	}
	return products, nil
}

// GetImage returns the stored image payload for a product. Products
// with only an external image reference have no payload to serve.
// Image bytes never enter the cache, so this reads storage directly.
func (s *ProductService) GetImage(ctx context.Context, productID string) (models.StoredImage, error) {
	p, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return models.StoredImage{}, fmt.Errorf("service: failed to get product %s: %w", productID, err)
	}
	if p.Image.Stored == nil || len(p.Image.Stored.Data) == 0 {
		return models.StoredImage{}, fmt.Errorf("service: product %s has no stored image: %w", productID, marketerrors.ErrNotFound)
	}
	return *p.Image.Stored, nil
}

func applyUpdate(p *models.Product, in UpdateInput) {
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.DaoID != nil {
		p.DaoID = *in.DaoID
	}
	if in.OnMarket != nil {
		p.OnMarket = *in.OnMarket
	}
	if in.PersonalItem != nil {
		p.PersonalItem = *in.PersonalItem
	}
	if in.YearsOfUse != nil {
		p.YearsOfUse = *in.YearsOfUse
	}
	if in.AuthenticityCertificate != nil {
		p.AuthenticityCertificate = *in.AuthenticityCertificate
	}
	if in.IsMarketItem != nil {
		p.IsMarketItem = *in.IsMarketItem
	}
	if in.InitialBid != nil {
		p.InitialBid = *in.InitialBid
	}
	if in.DemandPrice != nil {
		p.DemandPrice = *in.DemandPrice
	}
	if in.IsRentable != nil {
		p.IsRentable = *in.IsRentable
	}
}

func validateMerged(p *models.Product) error {
	if p.Name == "" {
		return fmt.Errorf("service: %w - product name cannot be empty", marketerrors.ErrValidation)
	}
	if p.Price <= 0 {
		return fmt.Errorf("service: %w - price must be positive", marketerrors.ErrValidation)
	}
	if p.IsMarketItem && p.InitialBid > 0 && p.InitialBid >= p.Price {
		return fmt.Errorf("service: %w - initial bid must be below the price", marketerrors.ErrValidation)
	}
	return nil
}

// Update applies a partial update. Only the product owner may update.
// When the pricing inputs change the demand value is recomputed from
// the merged state; an explicit DemandValue in the input wins over the
// recomputation.
func (s *ProductService) Update(ctx context.Context, productID, actorID string, in UpdateInput) (models.Product, error) {
	var lastErr error
	for attempt := 0; attempt < maxMutateAttempts; attempt++ {
		p, err := s.repo.GetProduct(ctx, productID)
		if err != nil {
			return models.Product{}, fmt.Errorf("service: failed to get product %s: %w", productID, err)
		}
		if p.Owner != actorID {
			return models.Product{}, fmt.Errorf("service: only the product owner can update it: %w", marketerrors.ErrForbidden)
		}

		applyUpdate(&p, in)
		if err := validateMerged(&p); err != nil {
			return models.Product{}, err
		}

		switch {
		case in.DemandValue != nil:
			p.DemandValue = *in.DemandValue
		case in.Price != nil || in.InitialBid != nil || in.IsMarketItem != nil:
			p.DemandValue = demand.Value(p.Price, p.IsMarketItem, p.InitialBid, p.Bids)
		}
		p.UpdatedAt = time.Now().UTC()

		lastErr = s.repo.ReplaceProduct(ctx, &p)
		if lastErr == nil {
			s.invalidate(ctx, productID)
			return p, nil
		}
		if !errors.Is(lastErr, marketerrors.ErrVersionConflict) {
			return models.Product{}, fmt.Errorf("service: failed to update product %s: %w", productID, lastErr)
		}
	}
	return models.Product{}, fmt.Errorf("service: product %s kept changing under us: %w", productID, lastErr)
}

// Delete removes a product and cascades to its offers. Owner only.
func (s *ProductService) Delete(ctx context.Context, productID, actorID string) error {
	p, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("service: failed to get product %s: %w", productID, err)
	}
	if p.Owner != actorID {
		return fmt.Errorf("service: only the product owner can delete it: %w", marketerrors.ErrForbidden)
	}

	if err := s.repo.DeleteProduct(ctx, productID); err != nil {
		return fmt.Errorf("service: failed to delete product %s: %w", productID, err)
	}
	s.invalidate(ctx, productID)

	removed, err := s.repo.DeleteOffersByProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("service: failed to delete offers for product %s: %w", productID, err)
	}
	utils.Info("product deleted", map[string]any{
		"product_id":     productID,
		"offers_removed": removed,
	})
	return nil
}
