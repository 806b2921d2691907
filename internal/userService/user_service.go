// Package user manages the per-account lists: cart, order history,
// ongoing bids and sale listings. Writes go through the versioned
// replace protocol, retried a bounded number of times.
package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stakex/internal/marketerrors"
	"stakex/internal/models"
	"stakex/internal/repository"
	"stakex/utils"
)

const maxMutateAttempts = 3

// UserService implements account list operations.
type UserService struct {
	repo repository.MarketDB
}

// NewUserService creates a new UserService instance
func NewUserService(repo repository.MarketDB) *UserService {
	return &UserService{
		repo: repo,
	}
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, userID string) (models.User, error) {
	u, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}
	return u, nil
}

// mutateUser runs a read-modify-write cycle on a user document,
// retrying when a concurrent writer wins the version race.
func (s *UserService) mutateUser(ctx context.Context, userID string, mutate func(u *models.User) error) (models.User, error) {
	var lastErr error
	for attempt := 0; attempt < maxMutateAttempts; attempt++ {
		u, err := s.repo.GetUser(ctx, userID)
		if err != nil {
			return models.User{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
		}
		if err := mutate(&u); err != nil {
			return models.User{}, err
		}
		u.UpdatedAt = time.Now().UTC()

		lastErr = s.repo.ReplaceUser(ctx, &u)
		if lastErr == nil {
			return u, nil
		}
		if !errors.Is(lastErr, marketerrors.ErrVersionConflict) {
			return models.User{}, fmt.Errorf("service: failed to update user %s: %w", userID, lastErr)
		}
	}
	return models.User{}, fmt.Errorf("service: user %s kept changing under us: %w", userID, lastErr)
}

// AddToCart puts a product reference in the cart. Duplicates are refused.
func (s *UserService) AddToCart(ctx context.Context, userID, productID string) (models.User, error) {
	if _, err := s.repo.GetProduct(ctx, productID); err != nil {
		return models.User{}, fmt.Errorf("service: failed to get product %s: %w", productID, err)
	}

	return s.mutateUser(ctx, userID, func(u *models.User) error {
		for _, e := range u.Cart {
			if e.ProductID == productID {
				return fmt.Errorf("service: %w", marketerrors.ErrAlreadyInCart)
			}
		}
		u.Cart = append(u.Cart, models.CartEntry{
			ProductID: productID,
			AddedAt:   time.Now().UTC(),
		})
		return nil
	})
}

// RemoveFromCart drops a product reference from the cart.
func (s *UserService) RemoveFromCart(ctx context.Context, userID, productID string) (models.User, error) {
	return s.mutateUser(ctx, userID, func(u *models.User) error {
		for i, e := range u.Cart {
			if e.ProductID == productID {
				u.Cart = append(u.Cart[:i], u.Cart[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("service: product %s is not in the cart: %w", productID, marketerrors.ErrNotInList)
	})
}

// ClearCart empties the cart.
func (s *UserService) ClearCart(ctx context.Context, userID string) (models.User, error) {
	return s.mutateUser(ctx, userID, func(u *models.User) error {
		u.Cart = []models.CartEntry{}
		return nil
	})
}

// AddOrder appends a completed purchase to the history.
func (s *UserService) AddOrder(ctx context.Context, userID string, order models.OrderEntry) (models.User, error) {
	if order.ProductID == "" {
		return models.User{}, fmt.Errorf("service: %w - order needs a product id", marketerrors.ErrValidation)
	}
	return s.AddOrders(ctx, userID, []models.OrderEntry{order})
}

// AddOrders appends a batch of purchases to the history in one write.
func (s *UserService) AddOrders(ctx context.Context, userID string, orders []models.OrderEntry) (models.User, error) {
	if len(orders) == 0 {
		return models.User{}, fmt.Errorf("service: %w - empty order batch", marketerrors.ErrValidation)
	}
	now := time.Now().UTC()
	for i := range orders {
		if orders[i].ProductID == "" {
			return models.User{}, fmt.Errorf("service: %w - order needs a product id", marketerrors.ErrValidation)
		}
		if orders[i].PurchasedAt.IsZero() {
			orders[i].PurchasedAt = now
		}
	}

	u, err := s.mutateUser(ctx, userID, func(u *models.User) error {
		u.HistoryOrders = append(u.HistoryOrders, orders...)
		return nil
	})
	if err != nil {
		return models.User{}, err
	}
	utils.Info("orders recorded", map[string]any{
		"user_id": userID,
		"count":   len(orders),
	})
	return u, nil
}

// TrackBid upserts an ongoing-bid entry for a product. A later call for
// the same product replaces the tracked amount. Users cannot track bids
// on their own products.
func (s *UserService) TrackBid(ctx context.Context, userID, productID string, amount float64) (models.User, error) {
	if amount <= 0 {
		return models.User{}, fmt.Errorf("service: %w - bid amount must be positive", marketerrors.ErrValidation)
	}
	p, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get product %s: %w", productID, err)
	}
	if p.Owner == userID {
		return models.User{}, fmt.Errorf("service: %w", marketerrors.ErrSelfBid)
	}

	return s.mutateUser(ctx, userID, func(u *models.User) error {
		entry := models.OngoingBid{
			ProductID: productID,
			Amount:    amount,
			PlacedAt:  time.Now().UTC(),
		}
		for i, b := range u.OngoingBids {
			if b.ProductID == productID {
				u.OngoingBids[i] = entry
				return nil
			}
		}
		u.OngoingBids = append(u.OngoingBids, entry)
		return nil
	})
}

// UntrackBid removes the ongoing-bid entry for a product.
func (s *UserService) UntrackBid(ctx context.Context, userID, productID string) (models.User, error) {
	return s.mutateUser(ctx, userID, func(u *models.User) error {
		for i, b := range u.OngoingBids {
			if b.ProductID == productID {
				u.OngoingBids = append(u.OngoingBids[:i], u.OngoingBids[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("service: no tracked bid for product %s: %w", productID, marketerrors.ErrNotInList)
	})
}

// ListForSale upserts a sale listing. The product must exist and belong
// to the user.
func (s *UserService) ListForSale(ctx context.Context, userID, productID string, askingPrice float64) (models.User, error) {
	if askingPrice < 0 {
		return models.User{}, fmt.Errorf("service: %w - asking price cannot be negative", marketerrors.ErrValidation)
	}
	p, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get product %s: %w", productID, err)
	}
	if p.Owner != userID {
		return models.User{}, fmt.Errorf("service: only the product owner can list it for sale: %w", marketerrors.ErrForbidden)
	}

	return s.mutateUser(ctx, userID, func(u *models.User) error {
		entry := models.SaleListing{
			ProductID:   productID,
			AskingPrice: askingPrice,
			ListedAt:    time.Now().UTC(),
		}
		for i, l := range u.ItemsToSell {
			if l.ProductID == productID {
				entry.ListedAt = l.ListedAt
				u.ItemsToSell[i] = entry
				return nil
			}
		}
		u.ItemsToSell = append(u.ItemsToSell, entry)
		return nil
	})
}

// UpdateAskingPrice patches the asking price of an existing sale listing.
func (s *UserService) UpdateAskingPrice(ctx context.Context, userID, productID string, askingPrice float64) (models.User, error) {
	if askingPrice < 0 {
		return models.User{}, fmt.Errorf("service: %w - asking price cannot be negative", marketerrors.ErrValidation)
	}
	return s.mutateUser(ctx, userID, func(u *models.User) error {
		for i, l := range u.ItemsToSell {
			if l.ProductID == productID {
				u.ItemsToSell[i].AskingPrice = askingPrice
				return nil
			}
		}
		return fmt.Errorf("service: product %s is not listed for sale: %w", productID, marketerrors.ErrNotInList)
	})
}

// Delist removes a sale listing.
func (s *UserService) Delist(ctx context.Context, userID, productID string) (models.User, error) {
	return s.mutateUser(ctx, userID, func(u *models.User) error {
		for i, l := range u.ItemsToSell {
			if l.ProductID == productID {
				u.ItemsToSell = append(u.ItemsToSell[:i], u.ItemsToSell[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("service: product %s is not listed for sale: %w", productID, marketerrors.ErrNotInList)
	})
}
