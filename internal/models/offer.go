package models

import "time"

// OfferStatus tracks the lifecycle of an offer. Pending offers may move to
// accepted or rejected; both are terminal.
type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferRejected OfferStatus = "rejected"
)

// Valid reports whether s is a known offer status.
func (s OfferStatus) Valid() bool {
	switch s {
	case OfferPending, OfferAccepted, OfferRejected:
		return true
	}
	return false
}

// Offer is a standalone bid record carrying the bidder's identity, unlike
// the anonymous amounts on the product's bid ledger. At most one offer per
// product ever reaches accepted.
type Offer struct {
	OfferID   string      `json:"id" bson:"_id"`
	ProductID string      `json:"productId" bson:"productId"`
	UserID    string      `json:"userId" bson:"userId"`
	Amount    float64     `json:"amount" bson:"amount"`
	Message   string      `json:"message,omitempty" bson:"message,omitempty"`
	Status    OfferStatus `json:"status" bson:"status"`
	CreatedAt time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt" bson:"updatedAt"`
}
