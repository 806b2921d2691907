package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"stakex/internal/marketerrors"
	model "stakex/internal/models"
)

// MemoryRepo is a concurrency-safe in-memory implementation of MarketDB.
// It enforces the same versioned-write protocol as the Mongo backend so
// the services behave identically against either.
type MemoryRepo struct {
	mu       sync.RWMutex
	products map[string]model.Product // key: productID
	offers   map[string]model.Offer   // key: offerID
	users    map[string]model.User    // key: userID
	emails   map[string]string        // key: lowercased email -> userID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		products: make(map[string]model.Product),
		offers:   make(map[string]model.Offer),
		users:    make(map[string]model.User),
		emails:   make(map[string]string),
	}
}

// cloneProduct deep-copies the mutable fields so callers never alias the
// stored ledger.
func cloneProduct(p model.Product) model.Product {
	out := p
	out.Bids = append([]float64(nil), p.Bids...)
	if p.Image.Stored != nil {
		img := *p.Image.Stored
		img.Data = append([]byte(nil), p.Image.Stored.Data...)
		out.Image.Stored = &img
	}
	if p.Image.External != nil {
		ext := *p.Image.External
		out.Image.External = &ext
	}
	return out
}

func cloneUser(u model.User) model.User {
	out := u
	out.Cart = append([]model.CartEntry(nil), u.Cart...)
	out.HistoryOrders = append([]model.OrderEntry(nil), u.HistoryOrders...)
	out.OngoingBids = append([]model.OngoingBid(nil), u.OngoingBids...)
	out.ItemsToSell = append([]model.SaleListing(nil), u.ItemsToSell...)
	return out
}

// InsertProduct stores a new product document
func (r *MemoryRepo) InsertProduct(_ context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[p.ID]; ok {
		return fmt.Errorf("insert product %s: already exists", p.ID)
	}
	p.Version = 1
	r.products[p.ID] = cloneProduct(*p)
	return nil
}

// GetProduct returns a product by ID
func (r *MemoryRepo) GetProduct(_ context.Context, productID string) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[productID]
	if !ok {
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, marketerrors.ErrNotFound)
	}
	return cloneProduct(p), nil
}

// ListProducts returns products, newest first, optionally filtered by owner
func (r *MemoryRepo) ListProducts(_ context.Context, owner string) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if owner != "" && p.Owner != owner {
			continue
		}
		out = append(out, cloneProduct(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ReplaceProduct writes a full product document iff the version matches
func (r *MemoryRepo) ReplaceProduct(_ context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.products[p.ID]
	if !ok {
		return fmt.Errorf("replace product %s: %w", p.ID, marketerrors.ErrNotFound)
	}
	if stored.Version != p.Version {
		return fmt.Errorf("replace product %s: %w", p.ID, marketerrors.ErrVersionConflict)
	}
	p.Version++
	r.products[p.ID] = cloneProduct(*p)
	return nil
}

// DeleteProduct removes a product by ID
func (r *MemoryRepo) DeleteProduct(_ context.Context, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[productID]; !ok {
		return fmt.Errorf("delete product %s: %w", productID, marketerrors.ErrNotFound)
	}
	delete(r.products, productID)
	return nil
}

// InsertOffer stores a new offer record
func (r *MemoryRepo) InsertOffer(_ context.Context, o *model.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.offers[o.OfferID] = *o
	return nil
}

// GetOffer returns an offer by ID
func (r *MemoryRepo) GetOffer(_ context.Context, offerID string) (model.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.offers[offerID]
	if !ok {
		return model.Offer{}, fmt.Errorf("get offer %s: %w", offerID, marketerrors.ErrNotFound)
	}
	return o, nil
}

// ListOffers returns offers matching the filter, newest first
func (r *MemoryRepo) ListOffers(_ context.Context, f OfferFilter) ([]model.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Offer, 0)
	for _, o := range r.offers {
		if f.ProductID != "" && o.ProductID != f.ProductID {
			continue
		}
		if f.UserID != "" && o.UserID != f.UserID {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ResolvePendingOffer moves an offer from pending to a terminal status
func (r *MemoryRepo) ResolvePendingOffer(_ context.Context, offerID string, status model.OfferStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.offers[offerID]
	if !ok {
		return fmt.Errorf("resolve offer %s: %w", offerID, marketerrors.ErrNotFound)
	}
	if o.Status != model.OfferPending {
		return fmt.Errorf("resolve offer %s: %w", offerID, marketerrors.ErrAlreadyResolved)
	}
	o.Status = status
	r.offers[offerID] = o
	return nil
}

// RejectPendingSiblings rejects all pending offers on a product except one
func (r *MemoryRepo) RejectPendingSiblings(_ context.Context, productID, exceptOfferID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, o := range r.offers {
		if o.ProductID == productID && id != exceptOfferID && o.Status == model.OfferPending {
			o.Status = model.OfferRejected
			r.offers[id] = o
			n++
		}
	}
	return n, nil
}

// DeleteOffersByProduct removes every offer referencing the product
func (r *MemoryRepo) DeleteOffersByProduct(_ context.Context, productID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, o := range r.offers {
		if o.ProductID == productID {
			delete(r.offers, id)
			n++
		}
	}
	return n, nil
}

// InsertUser stores a new user, enforcing email uniqueness
func (r *MemoryRepo) InsertUser(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(u.Email)
	if _, ok := r.emails[key]; ok {
		return fmt.Errorf("insert user: %w", marketerrors.ErrDuplicateEmail)
	}
	u.Version = 1
	r.users[u.UserID] = cloneUser(*u)
	r.emails[key] = u.UserID
	return nil
}

// GetUser returns a user by ID
func (r *MemoryRepo) GetUser(_ context.Context, userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, marketerrors.ErrNotFound)
	}
	return cloneUser(u), nil
}

// GetUserByEmail returns a user by email, case-insensitive
func (r *MemoryRepo) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.emails[strings.ToLower(email)]
	if !ok {
		return model.User{}, fmt.Errorf("get user by email: %w", marketerrors.ErrNotFound)
	}
	return cloneUser(r.users[id]), nil
}

// ReplaceUser writes a full user document iff the version matches
func (r *MemoryRepo) ReplaceUser(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[u.UserID]
	if !ok {
		return fmt.Errorf("replace user %s: %w", u.UserID, marketerrors.ErrNotFound)
	}
	if stored.Version != u.Version {
		return fmt.Errorf("replace user %s: %w", u.UserID, marketerrors.ErrVersionConflict)
	}
	u.Version++
	r.users[u.UserID] = cloneUser(*u)
	return nil
}
