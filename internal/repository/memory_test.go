package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stakex/internal/marketerrors"
	model "stakex/internal/models"
)

// Helper to create a new Product
func newProduct(id, owner string, price float64) model.Product {
	return model.Product{
		ID:          id,
		Name:        fmt.Sprintf("product %s", id),
		Description: fmt.Sprintf("%s description", id),
		Price:       price,
		Owner:       owner,
		DemandValue: price,
		Bids:        []float64{},
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}

// Helper to create a new Offer
func newOffer(offerID, productID, userID string, amount float64, status model.OfferStatus) model.Offer {
	return model.Offer{
		OfferID:   offerID,
		ProductID: productID,
		UserID:    userID,
		Amount:    amount,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
}

func TestMemoryRepo_ProductCRUD(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewMemoryRepo()

	p := newProduct("p1", "owner1", 100)
	require.NoError(t, repo.InsertProduct(ctx, &p))
	require.Equal(t, int64(1), p.Version)

	got, err := repo.GetProduct(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "p1", got.ID)
	require.Equal(t, 100.0, got.Price)

	_, err = repo.GetProduct(ctx, "missing")
	require.ErrorIs(t, err, marketerrors.ErrNotFound)

	// Stored copy must not alias the caller's ledger slice.
	got.Bids = append(got.Bids, 999)
	again, err := repo.GetProduct(ctx, "p1")
	require.NoError(t, err)
	require.Empty(t, again.Bids)

	require.NoError(t, repo.DeleteProduct(ctx, "p1"))
	require.ErrorIs(t, repo.DeleteProduct(ctx, "p1"), marketerrors.ErrNotFound)
}

func TestMemoryRepo_ListProducts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewMemoryRepo()

	older := newProduct("p1", "owner1", 100)
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	newer := newProduct("p2", "owner1", 200)
	other := newProduct("p3", "owner2", 300)
	require.NoError(t, repo.InsertProduct(ctx, &older))
	require.NoError(t, repo.InsertProduct(ctx, &newer))
	require.NoError(t, repo.InsertProduct(ctx, &other))

	tests := []struct {
		name    string
		owner   string
		wantIDs []string
	}{
		{name: "all_newest_first", owner: "", wantIDs: []string{"p2", "p3", "p1"}},
		{name: "owner_filter", owner: "owner1", wantIDs: []string{"p2", "p1"}},
		{name: "unknown_owner", owner: "nobody", wantIDs: []string{}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := repo.ListProducts(ctx, tc.owner)
			require.NoError(t, err)
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			if tc.name == "all_newest_first" {
				// p2 and p3 share a timestamp window; only p1 is strictly oldest.
				require.Len(t, ids, 3)
				require.Equal(t, "p1", ids[2])
			} else {
				require.Equal(t, tc.wantIDs, ids)
			}
		})
	}
}

func TestMemoryRepo_ReplaceProduct_VersionProtocol(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewMemoryRepo()

	p := newProduct("p1", "owner1", 100)
	require.NoError(t, repo.InsertProduct(ctx, &p))

	p.Price = 120
	require.NoError(t, repo.ReplaceProduct(ctx, &p))
	require.Equal(t, int64(2), p.Version)

	// A writer holding the old version must get a conflict.
	stale := p
	stale.Version = 1
	err := repo.ReplaceProduct(ctx, &stale)
	require.ErrorIs(t, err, marketerrors.ErrVersionConflict)

	missing := newProduct("ghost", "owner1", 10)
	missing.Version = 1
	require.ErrorIs(t, repo.ReplaceProduct(ctx, &missing), marketerrors.ErrNotFound)
}

// Concurrent versioned appends: every successful replace lands exactly one
// bid; losers retry. The final ledger length equals the number of writers.
func TestMemoryRepo_ReplaceProduct_ConcurrentWriters(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewMemoryRepo()

	p := newProduct("p1", "owner1", 1000)
	require.NoError(t, repo.InsertProduct(ctx, &p))

	var wg sync.WaitGroup
	writers := 50

	for i := 0; i < writers; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			for {
				cur, err := repo.GetProduct(ctx, "p1")
				require.NoError(t, err)
				cur.Bids = append(cur.Bids, float64(i+1))
				err = repo.ReplaceProduct(ctx, &cur)
				if err == nil {
					return
				}
				require.ErrorIs(t, err, marketerrors.ErrVersionConflict)
			}
		}()
	}
	wg.Wait()

	final, err := repo.GetProduct(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, final.Bids, writers)
	require.Equal(t, int64(writers+1), final.Version)
}

func TestMemoryRepo_Offers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewMemoryRepo()

	o1 := newOffer("o1", "p1", "u1", 50, model.OfferPending)
	o2 := newOffer("o2", "p1", "u2", 60, model.OfferPending)
	o3 := newOffer("o3", "p1", "u3", 70, model.OfferPending)
	o4 := newOffer("o4", "p2", "u1", 80, model.OfferPending)
	for _, o := range []model.Offer{o1, o2, o3, o4} {
		o := o
		require.NoError(t, repo.InsertOffer(ctx, &o))
	}

	t.Run("filters", func(t *testing.T) {
		byProduct, err := repo.ListOffers(ctx, OfferFilter{ProductID: "p1"})
		require.NoError(t, err)
		require.Len(t, byProduct, 3)

		byUser, err := repo.ListOffers(ctx, OfferFilter{UserID: "u1"})
		require.NoError(t, err)
		require.Len(t, byUser, 2)

		pending, err := repo.ListOffers(ctx, OfferFilter{ProductID: "p2", Status: model.OfferPending})
		require.NoError(t, err)
		require.Len(t, pending, 1)
	})

	t.Run("resolve_is_conditional_on_pending", func(t *testing.T) {
		require.ErrorIs(t, repo.ResolvePendingOffer(ctx, "missing", model.OfferAccepted), marketerrors.ErrNotFound)

		o5 := newOffer("o5", "p3", "u5", 90, model.OfferPending)
		require.NoError(t, repo.InsertOffer(ctx, &o5))

		require.NoError(t, repo.ResolvePendingOffer(ctx, "o5", model.OfferRejected))
		// A second resolver cannot flip a terminal status.
		err := repo.ResolvePendingOffer(ctx, "o5", model.OfferAccepted)
		require.ErrorIs(t, err, marketerrors.ErrAlreadyResolved)

		got, err := repo.GetOffer(ctx, "o5")
		require.NoError(t, err)
		require.Equal(t, model.OfferRejected, got.Status)
	})

	t.Run("accept_cascade_scoped_to_product", func(t *testing.T) {
		require.NoError(t, repo.ResolvePendingOffer(ctx, "o2", model.OfferAccepted))
		n, err := repo.RejectPendingSiblings(ctx, "p1", "o2")
		require.NoError(t, err)
		require.Equal(t, int64(2), n)

		accepted, err := repo.GetOffer(ctx, "o2")
		require.NoError(t, err)
		require.Equal(t, model.OfferAccepted, accepted.Status)

		for _, id := range []string{"o1", "o3"} {
			o, err := repo.GetOffer(ctx, id)
			require.NoError(t, err)
			require.Equal(t, model.OfferRejected, o.Status)
		}

		// Offers on other products are untouched.
		other, err := repo.GetOffer(ctx, "o4")
		require.NoError(t, err)
		require.Equal(t, model.OfferPending, other.Status)
	})

	t.Run("cascade_delete", func(t *testing.T) {
		n, err := repo.DeleteOffersByProduct(ctx, "p1")
		require.NoError(t, err)
		require.Equal(t, int64(3), n)

		_, err = repo.GetOffer(ctx, "o1")
		require.ErrorIs(t, err, marketerrors.ErrNotFound)
	})
}

func TestMemoryRepo_Users(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewMemoryRepo()

	u := model.User{UserID: "u1", Name: "Alice", Email: "Alice@Example.com", IsActive: true}
	require.NoError(t, repo.InsertUser(ctx, &u))

	dup := model.User{UserID: "u2", Name: "Mallory", Email: "alice@example.com"}
	require.ErrorIs(t, repo.InsertUser(ctx, &dup), marketerrors.ErrDuplicateEmail)

	byEmail, err := repo.GetUserByEmail(ctx, "ALICE@example.com")
	require.NoError(t, err)
	require.Equal(t, "u1", byEmail.UserID)

	byEmail.Cart = append(byEmail.Cart, model.CartEntry{ProductID: "p1", AddedAt: time.Now()})
	require.NoError(t, repo.ReplaceUser(ctx, &byEmail))

	got, err := repo.GetUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got.Cart, 1)

	stale := got
	stale.Version = 1
	require.True(t, errors.Is(repo.ReplaceUser(ctx, &stale), marketerrors.ErrVersionConflict))
}
