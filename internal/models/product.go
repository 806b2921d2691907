package models

import "time"

// StoredImage is an image blob persisted alongside the product document.
type StoredImage struct {
	Data        []byte `json:"-" bson:"data"`
	ContentType string `json:"contentType" bson:"contentType"`
	Filename    string `json:"filename" bson:"filename"`
	Size        int64  `json:"size" bson:"size"`
}

// ExternalImage points at an image hosted elsewhere.
type ExternalImage struct {
	URL string `json:"url" bson:"url"`
}

// ImageRef is a tagged variant: exactly one of Stored or External is set.
type ImageRef struct {
	Stored   *StoredImage   `json:"stored,omitempty" bson:"stored,omitempty"`
	External *ExternalImage `json:"external,omitempty" bson:"external,omitempty"`
}

// IsZero reports whether no image reference is present.
func (r ImageRef) IsZero() bool {
	return r.Stored == nil && r.External == nil
}

// Product is a marketplace listing. DemandValue is derived from price,
// initialBid and the bid ledger; it is materialized on every write, never
// computed at read time. Version guards compound read-modify-write updates.
type Product struct {
	ID                      string    `json:"id" bson:"_id"`
	Name                    string    `json:"name" bson:"name"`
	Description             string    `json:"description" bson:"description"`
	Image                   ImageRef  `json:"image" bson:"image"`
	ImageURL                string    `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Price                   float64   `json:"price" bson:"price"`
	DemandValue             float64   `json:"demandValue" bson:"demandValue"`
	Owner                   string    `json:"owner" bson:"owner"`
	DaoID                   string    `json:"daoId,omitempty" bson:"daoId,omitempty"`
	OnMarket                bool      `json:"onMarket" bson:"onMarket"`
	PersonalItem            bool      `json:"personalItem" bson:"personalItem"`
	YearsOfUse              int       `json:"yearsOfUse,omitempty" bson:"yearsOfUse,omitempty"`
	AuthenticityCertificate string    `json:"authenticityCertificate,omitempty" bson:"authenticityCertificate,omitempty"`
	IsMarketItem            bool      `json:"isMarketItem" bson:"isMarketItem"`
	InitialBid              float64   `json:"initialBid,omitempty" bson:"initialBid,omitempty"`
	DemandPrice             float64   `json:"demandPrice,omitempty" bson:"demandPrice,omitempty"`
	IsRentable              bool      `json:"isRentable" bson:"isRentable"`
	Bids                    []float64 `json:"bids" bson:"bids"`
	Version                 int64     `json:"-" bson:"version"`
	CreatedAt               time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt" bson:"updatedAt"`
}
