package bidding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stakex/internal/cache"
	"stakex/internal/demand"
	"stakex/internal/marketerrors"
	"stakex/internal/models"
	"stakex/internal/repository"
	"stakex/utils"
)

// maxMutateAttempts bounds the redo loop on versioned-write conflicts.
const maxMutateAttempts = 3

// BidSummary is the aggregate view of a product's bid ledger.
type BidSummary struct {
	ProductID   string
	Bids        []float64
	TotalBids   int
	TotalAmount float64
	AverageBid  float64
	HighestBid  float64
	DemandValue float64
}

// BiddingService implements the bid ledger operations and the offer
// workflow. Every ledger mutation recomputes the product's demand value
// before persisting.
type BiddingService struct {
	repo  repository.MarketDB
	cache cache.Store
}

// NewBiddingService creates a new BiddingService instance. The cache
// may be nil when caching is disabled.
func NewBiddingService(repo repository.MarketDB, cacheStore cache.Store) *BiddingService {
	return &BiddingService{
		repo:  repo,
		cache: cacheStore,
	}
}

// invalidate drops a stale cached product after a ledger write. Cache
// failures are logged, not propagated.
func (s *BiddingService) invalidate(ctx context.Context, productID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, "product:"+productID); err != nil {
		utils.Warn("failed to invalidate product cache", map[string]any{
			"productId": productID,
			"error":     err.Error(),
		})
	}
}

func summarize(p models.Product) BidSummary {
	s := BidSummary{
		ProductID:   p.ID,
		Bids:        p.Bids,
		TotalBids:   len(p.Bids),
		DemandValue: p.DemandValue,
	}
	if s.Bids == nil {
		s.Bids = []float64{}
	}
	for _, b := range p.Bids {
		s.TotalAmount += b
		if b > s.HighestBid {
			s.HighestBid = b
		}
	}
	if len(p.Bids) > 0 {
		s.AverageBid = s.TotalAmount / float64(len(p.Bids))
	}
	return s
}

// mutateProduct runs a read-modify-write cycle on a product, retrying a
// bounded number of times when a concurrent writer wins the version race.
// The mutate callback is re-applied to the freshly read state each attempt.
func (s *BiddingService) mutateProduct(ctx context.Context, productID string, mutate func(p *models.Product) error) (models.Product, error) {
	var lastErr error
	for attempt := 0; attempt < maxMutateAttempts; attempt++ {
		p, err := s.repo.GetProduct(ctx, productID)
		if err != nil {
			return models.Product{}, err
		}
		if err := mutate(&p); err != nil {
			return models.Product{}, err
		}
		p.DemandValue = demand.Value(p.Price, p.IsMarketItem, p.InitialBid, p.Bids)
		p.UpdatedAt = time.Now().UTC()

		lastErr = s.repo.ReplaceProduct(ctx, &p)
		if lastErr == nil {
			s.invalidate(ctx, p.ID)
			return p, nil
		}
		if !errors.Is(lastErr, marketerrors.ErrVersionConflict) {
			return models.Product{}, lastErr
		}
	}
	return models.Product{}, fmt.Errorf("service: product %s kept changing under us: %w", productID, lastErr)
}

// GetBidSummary returns the ledger aggregate for a product
func (s *BiddingService) GetBidSummary(ctx context.Context, productID string) (BidSummary, error) {
	p, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return BidSummary{}, fmt.Errorf("service: failed to get bids for product %s: %w", productID, err)
	}
	return summarize(p), nil
}

// AddBid appends an amount to the product's ledger. The product owner
// may not bid on their own product.
func (s *BiddingService) AddBid(ctx context.Context, productID, actorID string, amount float64) (BidSummary, error) {
	if amount <= 0 {
		return BidSummary{}, fmt.Errorf("service: %w - bid amount must be positive", marketerrors.ErrValidation)
	}

	p, err := s.mutateProduct(ctx, productID, func(p *models.Product) error {
		if p.Owner == actorID {
			return fmt.Errorf("service: %w", marketerrors.ErrSelfBid)
		}
		p.Bids = append(p.Bids, amount)
		return nil
	})
	if err != nil {
		return BidSummary{}, err
	}
	return summarize(p), nil
}

// RemoveBid deletes the ledger entry at index. Owner only.
func (s *BiddingService) RemoveBid(ctx context.Context, productID, actorID string, index int) (removed float64, sum BidSummary, err error) {
	if index < 0 {
		return 0, BidSummary{}, fmt.Errorf("service: %w - invalid bid index", marketerrors.ErrValidation)
	}

	p, err := s.mutateProduct(ctx, productID, func(p *models.Product) error {
		if p.Owner != actorID {
			return fmt.Errorf("service: only the product owner can remove bids: %w", marketerrors.ErrForbidden)
		}
		if index >= len(p.Bids) {
			return fmt.Errorf("service: %w", marketerrors.ErrIndexOutOfRange)
		}
		removed = p.Bids[index]
		p.Bids = append(p.Bids[:index], p.Bids[index+1:]...)
		return nil
	})
	if err != nil {
		return 0, BidSummary{}, err
	}
	return removed, summarize(p), nil
}

// ReplaceBids swaps the whole ledger. Owner only. Non-positive entries are
// dropped silently rather than failing the request; this leniency on bulk
// replace is deliberate.
func (s *BiddingService) ReplaceBids(ctx context.Context, productID, actorID string, bids []float64) (BidSummary, error) {
	valid := make([]float64, 0, len(bids))
	for _, b := range bids {
		if b > 0 {
			valid = append(valid, b)
		}
	}

	p, err := s.mutateProduct(ctx, productID, func(p *models.Product) error {
		if p.Owner != actorID {
			return fmt.Errorf("service: only the product owner can replace bids: %w", marketerrors.ErrForbidden)
		}
		p.Bids = valid
		return nil
	})
	if err != nil {
		return BidSummary{}, err
	}
	return summarize(p), nil
}

// PlaceOffer records an identity-carrying offer on a product.
func (s *BiddingService) PlaceOffer(ctx context.Context, productID, userID string, amount float64, message string) (models.Offer, error) {
	if productID == "" || userID == "" {
		return models.Offer{}, fmt.Errorf("service: %w - missing productID or userID", marketerrors.ErrValidation)
	}
	if amount <= 0 {
		return models.Offer{}, fmt.Errorf("service: %w - offer amount must be positive", marketerrors.ErrValidation)
	}

	p, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return models.Offer{}, fmt.Errorf("service: failed to load product %s: %w", productID, err)
	}
	if p.Owner == userID {
		return models.Offer{}, fmt.Errorf("service: %w", marketerrors.ErrSelfBid)
	}

	now := time.Now().UTC()
	offer := models.Offer{
		OfferID:   utils.GenerateID(),
		ProductID: productID,
		UserID:    userID,
		Amount:    amount,
		Message:   message,
		Status:    models.OfferPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.InsertOffer(ctx, &offer); err != nil {
		return models.Offer{}, fmt.Errorf("service: failed to record offer for product %s by user %s: %w", productID, userID, err)
	}
	return offer, nil
}

// ListOffers returns offer records matching the filter.
func (s *BiddingService) ListOffers(ctx context.Context, f repository.OfferFilter) ([]models.Offer, error) {
	offers, err := s.repo.ListOffers(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list offers: %w", err)
	}
	return offers, nil
}

// ResolveOffer moves a pending offer to accepted or rejected. Only the
// product owner may resolve, both target states are terminal, and
// accepting one offer rejects every other pending offer on the product.
func (s *BiddingService) ResolveOffer(ctx context.Context, offerID, actorID string, status models.OfferStatus) (models.Offer, error) {
	if status != models.OfferAccepted && status != models.OfferRejected {
		return models.Offer{}, fmt.Errorf("service: %w - status must be accepted or rejected", marketerrors.ErrValidation)
	}

	offer, err := s.repo.GetOffer(ctx, offerID)
	if err != nil {
		return models.Offer{}, fmt.Errorf("service: failed to load offer %s: %w", offerID, err)
	}

	p, err := s.repo.GetProduct(ctx, offer.ProductID)
	if err != nil {
		return models.Offer{}, fmt.Errorf("service: failed to load product %s: %w", offer.ProductID, err)
	}
	if p.Owner != actorID {
		return models.Offer{}, fmt.Errorf("service: only the product owner can resolve offers: %w", marketerrors.ErrForbidden)
	}
	if offer.Status != models.OfferPending {
		return models.Offer{}, fmt.Errorf("service: %w", marketerrors.ErrAlreadyResolved)
	}

	// Conditional write: a racing resolver that won in between surfaces
	// here as ErrAlreadyResolved rather than double-accepting.
	if err := s.repo.ResolvePendingOffer(ctx, offerID, status); err != nil {
		if errors.Is(err, marketerrors.ErrAlreadyResolved) {
			return models.Offer{}, fmt.Errorf("service: %w", marketerrors.ErrAlreadyResolved)
		}
		return models.Offer{}, fmt.Errorf("service: failed to update offer %s: %w", offerID, err)
	}
	offer.Status = status
	offer.UpdatedAt = time.Now().UTC()

	if status == models.OfferAccepted {
		rejected, err := s.repo.RejectPendingSiblings(ctx, offer.ProductID, offerID)
		if err != nil {
			return models.Offer{}, fmt.Errorf("service: failed to reject sibling offers for product %s: %w", offer.ProductID, err)
		}
		utils.Info("offer accepted, sibling offers rejected", map[string]any{
			"offer_id":   offerID,
			"product_id": offer.ProductID,
			"rejected":   rejected,
		})
	}
	return offer, nil
}
