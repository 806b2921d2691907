package user

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"stakex/internal/marketerrors"
	"stakex/internal/models"
	"stakex/internal/repository"
)

func account() models.User {
	return models.User{
		UserID:        "u1",
		Name:          "Dana",
		Email:         "dana@example.com",
		Cart:          []models.CartEntry{},
		HistoryOrders: []models.OrderEntry{},
		OngoingBids:   []models.OngoingBid{},
		ItemsToSell:   []models.SaleListing{},
		IsActive:      true,
		Version:       1,
	}
}

func listing(owner string) models.Product {
	return models.Product{ID: "p1", Name: "Road Bike", Price: 400, Owner: owner, Version: 1}
}

func TestAddToCart(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository.NewMockMarketDB(ctrl)
	svc := NewUserService(repo)

	repo.EXPECT().GetProduct(gomock.Any(), "p1").Return(listing("seller"), nil)
	repo.EXPECT().GetUser(gomock.Any(), "u1").Return(account(), nil)
	repo.EXPECT().ReplaceUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *models.User) error {
			require.Len(t, u.Cart, 1)
			require.Equal(t, "p1", u.Cart[0].ProductID)
			return nil
		})

	u, err := svc.AddToCart(context.Background(), "u1", "p1")
	require.NoError(t, err)
	require.Len(t, u.Cart, 1)
}

func TestAddToCart_Duplicate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository.NewMockMarketDB(ctrl)
	svc := NewUserService(repo)

	u := account()
	u.Cart = []models.CartEntry{{ProductID: "p1", AddedAt: time.Now()}}

	repo.EXPECT().GetProduct(gomock.Any(), "p1").Return(listing("seller"), nil)
	repo.EXPECT().GetUser(gomock.Any(), "u1").Return(u, nil)

	_, err := svc.AddToCart(context.Background(), "u1", "p1")
	require.ErrorIs(t, err, marketerrors.ErrAlreadyInCart)
}

func TestAddToCart_ProductMissing(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository.NewMockMarketDB(ctrl)
	svc := NewUserService(repo)

	repo.EXPECT().GetProduct(gomock.Any(), "ghost").Return(models.Product{}, marketerrors.ErrNotFound)

	_, err := svc.AddToCart(context.Background(), "u1", "ghost")
	require.ErrorIs(t, err, marketerrors.ErrNotFound)
}

func TestRemoveFromCart(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository.NewMockMarketDB(ctrl)
	svc := NewUserService(repo)

	u := account()
	u.Cart = []models.CartEntry{{ProductID: "p1"}, {ProductID: "p2"}}

	repo.EXPECT().GetUser(gomock.Any(), "u1").Return(u, nil)
	repo.EXPECT().ReplaceUser(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.RemoveFromCart(context.Background(), "u1", "p1")
	require.NoError(t, err)
	require.Len(t, got.Cart, 1)
	require.Equal(t, "p2", got.Cart[0].ProductID)
}

func TestRemoveFromCart_NotPresent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository.NewMockMarketDB(ctrl)
	svc := NewUserService(repo)

	repo.EXPECT().GetUser(gomock.Any(), "u1").Return(account(), nil)

	_, err := svc.RemoveFromCart(context.Background(), "u1", "p9")
	require.ErrorIs(t, err, marketerrors.ErrNotInList)
}

func TestClearCart(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository.NewMockMarketDB(ctrl)
	svc := NewUserService(repo)

	u := account()
	u.Cart = []models.CartEntry{{ProductID: "p1"}, {ProductID: "p2"}}

	repo.EXPECT().GetUser(gomock.Any(), "u1").Return(u, nil)
	repo.EXPECT().ReplaceUser(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.ClearCart(context.Background(), "u1")
	require.NoError(t, err)
	require.Empty(t, got.Cart)
}

func TestAddOrders(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository.NewMockMarketDB(ctrl)
	svc := NewUserService(repo)

	repo.EXPECT().GetUser(gomock.Any(), "u1").Return(account(), nil)
	repo.EXPECT().ReplaceUser(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.AddOrders(context.Background(), "u1", []models.OrderEntry{
		{ProductID: "p1", PriceAtPurchase: 400},
		{ProductID: "p2", PriceAtPurchase: 80},
	})
	require.NoError(t, err)
	require.Len(t, got.HistoryOrders, 2)
	require.False(t, got.HistoryOrders[0].PurchasedAt.IsZero())
}

func TestAddOrders_Invalid(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository.NewMockMarketDB(ctrl)
	svc := NewUserService(repo)

	_, err := svc.AddOrders(context.Background(), "u1", nil)
	require.ErrorIs(t, err, marketerrors.ErrValidation)

	_, err = svc.AddOrders(context.Background(), "u1", []models.OrderEntry{{PriceAtPurchase: 10}})
	require.ErrorIs(t, err, marketerrors.ErrValidation)
}

func TestTrackBid_Upserts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository.NewMockMarketDB(ctrl)
	svc := NewUserService(repo)

	u := account()
	u.OngoingBids = []models.OngoingBid{{ProductID: "p1", Amount: 50}}

	repo.EXPECT().GetProduct(gomock.Any(), "p1").Return(listing("seller"), nil)
	repo.EXPECT().GetUser(gomock.Any(), "u1").Return(u, nil)
	repo.EXPECT().ReplaceUser(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.TrackBid(context.Background(), "u1", "p1", 75)
	require.NoError(t, err)
	require.Len(t, got.OngoingBids, 1)
	require.Equal(t, 75.0, got.OngoingBids[0].Amount)
}

func TestTrackBid_OwnProduct(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository.NewMockMarketDB(ctrl)
	svc := NewUserService(repo)

	repo.EXPECT().GetProduct(gomock.Any(), "p1").Return(listing("u1"), nil)

	_, err := svc.TrackBid(context.Background(), "u1", "p1", 75)
	require.ErrorIs(t, err, marketerrors.ErrSelfBid)
}

func TestUntrackBid(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository.NewMockMarketDB(ctrl)
	svc := NewUserService(repo)

	u := account()
	u.OngoingBids = []models.OngoingBid{{ProductID: "p1", Amount: 50}}

	repo.EXPECT().GetUser(gomock.Any(), "u1").Return(u, nil)
	repo.EXPECT().ReplaceUser(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.UntrackBid(context.Background(), "u1", "p1")
	require.NoError(t, err)
	require.Empty(t, got.OngoingBids)
}

func TestListForSale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		owner   string
		price   float64
		wantErr error
	}{
		{name: "owner lists own product", owner: "u1", price: 350},
		{name: "cannot list someone else's product", owner: "seller", price: 350, wantErr: marketerrors.ErrForbidden},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repository.NewMockMarketDB(ctrl)
			svc := NewUserService(repo)

			repo.EXPECT().GetProduct(gomock.Any(), "p1").Return(listing(tt.owner), nil)
			if tt.wantErr == nil {
				repo.EXPECT().GetUser(gomock.Any(), "u1").Return(account(), nil)
				repo.EXPECT().ReplaceUser(gomock.Any(), gomock.Any()).Return(nil)
			}

			got, err := svc.ListForSale(context.Background(), "u1", "p1", tt.price)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, got.ItemsToSell, 1)
			require.Equal(t, tt.price, got.ItemsToSell[0].AskingPrice)
		})
	}
}

func TestUpdateAskingPrice(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository.NewMockMarketDB(ctrl)
	svc := NewUserService(repo)

	u := account()
	u.ItemsToSell = []models.SaleListing{{ProductID: "p1", AskingPrice: 350}}

	repo.EXPECT().GetUser(gomock.Any(), "u1").Return(u, nil)
	repo.EXPECT().ReplaceUser(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.UpdateAskingPrice(context.Background(), "u1", "p1", 300)
	require.NoError(t, err)
	require.Equal(t, 300.0, got.ItemsToSell[0].AskingPrice)
}

func TestDelist_NotListed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository.NewMockMarketDB(ctrl)
	svc := NewUserService(repo)

	repo.EXPECT().GetUser(gomock.Any(), "u1").Return(account(), nil)

	_, err := svc.Delist(context.Background(), "u1", "p1")
	require.ErrorIs(t, err, marketerrors.ErrNotInList)
}

func TestMutate_RetriesOnVersionConflict(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository.NewMockMarketDB(ctrl)
	svc := NewUserService(repo)

	gomock.InOrder(
		repo.EXPECT().GetUser(gomock.Any(), "u1").Return(account(), nil),
		repo.EXPECT().ReplaceUser(gomock.Any(), gomock.Any()).Return(marketerrors.ErrVersionConflict),
		repo.EXPECT().GetUser(gomock.Any(), "u1").Return(account(), nil),
		repo.EXPECT().ReplaceUser(gomock.Any(), gomock.Any()).Return(nil),
	)

	_, err := svc.ClearCart(context.Background(), "u1")
	require.NoError(t, err)
}
