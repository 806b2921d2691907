package repository

import (
	"context"

	model "stakex/internal/models"
)

// ProductStore persists marketplace products. ReplaceProduct performs an
// optimistic-concurrency write: it only succeeds when the in-memory
// Version matches the stored one, and increments it on success. Compound
// mutations (ledger edits, allow-list updates) go through it.
type ProductStore interface {
	InsertProduct(ctx context.Context, p *model.Product) error
	GetProduct(ctx context.Context, productID string) (model.Product, error)
	ListProducts(ctx context.Context, owner string) ([]model.Product, error)
	ReplaceProduct(ctx context.Context, p *model.Product) error
	DeleteProduct(ctx context.Context, productID string) error
}

// OfferFilter narrows ListOffers. Zero values mean "any".
type OfferFilter struct {
	ProductID string
	UserID    string
	Status    model.OfferStatus
}

// OfferStore persists standalone offer records.
type OfferStore interface {
	InsertOffer(ctx context.Context, o *model.Offer) error
	GetOffer(ctx context.Context, offerID string) (model.Offer, error)
	ListOffers(ctx context.Context, f OfferFilter) ([]model.Offer, error)
	// ResolvePendingOffer moves an offer out of pending in a single
	// conditional write. A concurrent resolver loses with
	// ErrAlreadyResolved instead of overwriting a terminal status.
	ResolvePendingOffer(ctx context.Context, offerID string, status model.OfferStatus) error
	// RejectPendingSiblings moves every pending offer on the product,
	// except the named one, to rejected. Returns how many were moved.
	RejectPendingSiblings(ctx context.Context, productID, exceptOfferID string) (int64, error)
	DeleteOffersByProduct(ctx context.Context, productID string) (int64, error)
}

// UserStore persists user accounts and their embedded lists. ReplaceUser
// follows the same versioned write protocol as ReplaceProduct.
type UserStore interface {
	InsertUser(ctx context.Context, u *model.User) error
	GetUser(ctx context.Context, userID string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	ReplaceUser(ctx context.Context, u *model.User) error
}

// MarketDB is the full storage surface the services are wired against.
type MarketDB interface {
	ProductStore
	OfferStore
	UserStore
}
