package models

import "time"

// CartEntry is a product reference in a user's cart.
type CartEntry struct {
	ProductID string    `json:"productId" bson:"productId"`
	AddedAt   time.Time `json:"addedAt" bson:"addedAt"`
}

// OrderEntry records a completed purchase.
type OrderEntry struct {
	ProductID       string    `json:"productId" bson:"productId"`
	PriceAtPurchase float64   `json:"priceAtPurchase" bson:"priceAtPurchase"`
	PurchasedAt     time.Time `json:"purchasedAt" bson:"purchasedAt"`
}

// OngoingBid tracks a bid a user has outstanding on someone else's product.
type OngoingBid struct {
	ProductID string    `json:"productId" bson:"productId"`
	Amount    float64   `json:"amount" bson:"amount"`
	PlacedAt  time.Time `json:"placedAt" bson:"placedAt"`
}

// SaleListing marks one of the user's own products as up for sale.
type SaleListing struct {
	ProductID   string    `json:"productId" bson:"productId"`
	AskingPrice float64   `json:"askingPrice,omitempty" bson:"askingPrice,omitempty"`
	ListedAt    time.Time `json:"listedAt" bson:"listedAt"`
}

// User is a marketplace account. PasswordHash never leaves the server.
type User struct {
	UserID         string        `json:"id" bson:"_id"`
	Name           string        `json:"name" bson:"name"`
	Email          string        `json:"email" bson:"email"`
	PasswordHash   string        `json:"-" bson:"passwordHash"`
	Age            int           `json:"age" bson:"age"`
	Address        string        `json:"address" bson:"address"`
	MemberSince    string        `json:"memberSince" bson:"memberSince"`
	ProfilePicture string        `json:"profilePicture,omitempty" bson:"profilePicture,omitempty"`
	Cart           []CartEntry   `json:"cart" bson:"cart"`
	HistoryOrders  []OrderEntry  `json:"historyOrders" bson:"historyOrders"`
	OngoingBids    []OngoingBid  `json:"ongoingBids" bson:"ongoingBids"`
	ItemsToSell    []SaleListing `json:"itemsToSell" bson:"itemsToSell"`
	IsActive       bool          `json:"isActive" bson:"isActive"`
	Version        int64         `json:"-" bson:"version"`
	CreatedAt      time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt" bson:"updatedAt"`
}
