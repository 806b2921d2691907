package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"stakex/internal/marketerrors"
	model "stakex/internal/models"
)

// MongoRepo is the document-database implementation of MarketDB. Versioned
// replaces filter on both _id and version, so the conflict check and the
// write are one atomic document operation.
type MongoRepo struct {
	products *mongo.Collection
	offers   *mongo.Collection
	users    *mongo.Collection
}

// NewMongoRepo wires the repository onto an open database handle.
func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		products: db.Collection("products"),
		offers:   db.Collection("offers"),
		users:    db.Collection("users"),
	}
}

// ConnectMongo opens a client with a bounded dial timeout and pings it.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the query and uniqueness indexes the services rely on.
func (r *MongoRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.products.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "daoId", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create product indexes: %w", err)
	}

	_, err = r.offers.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "productId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create offer indexes: %w", err)
	}

	_, err = r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create user index: %w", err)
	}
	return nil
}

// InsertProduct stores a new product document
func (r *MongoRepo) InsertProduct(ctx context.Context, p *model.Product) error {
	p.Version = 1
	if _, err := r.products.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert product %s: %w", p.ID, err)
	}
	return nil
}

// GetProduct returns a product by ID
func (r *MongoRepo) GetProduct(ctx context.Context, productID string) (model.Product, error) {
	var p model.Product
	err := r.products.FindOne(ctx, bson.M{"_id": productID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, marketerrors.ErrNotFound)
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, err)
	}
	return p, nil
}

// ListProducts returns products, newest first, optionally filtered by owner
func (r *MongoRepo) ListProducts(ctx context.Context, owner string) ([]model.Product, error) {
	filter := bson.M{}
	if owner != "" {
		filter["owner"] = owner
	}

	cur, err := r.products.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cur.Close(ctx)

	out := []model.Product{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

// ReplaceProduct writes a full product document iff the version matches
func (r *MongoRepo) ReplaceProduct(ctx context.Context, p *model.Product) error {
	replacement := *p
	replacement.Version = p.Version + 1

	res, err := r.products.ReplaceOne(ctx, bson.M{"_id": p.ID, "version": p.Version}, &replacement)
	if err != nil {
		return fmt.Errorf("replace product %s: %w", p.ID, err)
	}
	if res.MatchedCount == 0 {
		// Either the document is gone or someone else won the write.
		if n, countErr := r.products.CountDocuments(ctx, bson.M{"_id": p.ID}); countErr == nil && n == 0 {
			return fmt.Errorf("replace product %s: %w", p.ID, marketerrors.ErrNotFound)
		}
		return fmt.Errorf("replace product %s: %w", p.ID, marketerrors.ErrVersionConflict)
	}
	p.Version++
	return nil
}

// DeleteProduct removes a product by ID
func (r *MongoRepo) DeleteProduct(ctx context.Context, productID string) error {
	res, err := r.products.DeleteOne(ctx, bson.M{"_id": productID})
	if err != nil {
		return fmt.Errorf("delete product %s: %w", productID, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("delete product %s: %w", productID, marketerrors.ErrNotFound)
	}
	return nil
}

// InsertOffer stores a new offer record
func (r *MongoRepo) InsertOffer(ctx context.Context, o *model.Offer) error {
	if _, err := r.offers.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("insert offer %s: %w", o.OfferID, err)
	}
	return nil
}

// GetOffer returns an offer by ID
func (r *MongoRepo) GetOffer(ctx context.Context, offerID string) (model.Offer, error) {
	var o model.Offer
	err := r.offers.FindOne(ctx, bson.M{"_id": offerID}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Offer{}, fmt.Errorf("get offer %s: %w", offerID, marketerrors.ErrNotFound)
	}
	if err != nil {
		return model.Offer{}, fmt.Errorf("get offer %s: %w", offerID, err)
	}
	return o, nil
}

// ListOffers returns offers matching the filter, newest first
func (r *MongoRepo) ListOffers(ctx context.Context, f OfferFilter) ([]model.Offer, error) {
	filter := bson.M{}
	if f.ProductID != "" {
		filter["productId"] = f.ProductID
	}
	if f.UserID != "" {
		filter["userId"] = f.UserID
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}

	cur, err := r.offers.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer cur.Close(ctx)

	out := []model.Offer{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	return out, nil
}

// ResolvePendingOffer moves an offer from pending to a terminal status.
// The status is part of the update filter so racing resolvers cannot
// both win.
func (r *MongoRepo) ResolvePendingOffer(ctx context.Context, offerID string, status model.OfferStatus) error {
	res, err := r.offers.UpdateOne(ctx,
		bson.M{"_id": offerID, "status": model.OfferPending},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("resolve offer %s: %w", offerID, err)
	}
	if res.MatchedCount == 0 {
		n, err := r.offers.CountDocuments(ctx, bson.M{"_id": offerID})
		if err != nil {
			return fmt.Errorf("resolve offer %s: %w", offerID, err)
		}
		if n == 0 {
			return fmt.Errorf("resolve offer %s: %w", offerID, marketerrors.ErrNotFound)
		}
		return fmt.Errorf("resolve offer %s: %w", offerID, marketerrors.ErrAlreadyResolved)
	}
	return nil
}

// RejectPendingSiblings rejects all pending offers on a product except one
func (r *MongoRepo) RejectPendingSiblings(ctx context.Context, productID, exceptOfferID string) (int64, error) {
	res, err := r.offers.UpdateMany(ctx,
		bson.M{
			"productId": productID,
			"_id":       bson.M{"$ne": exceptOfferID},
			"status":    model.OfferPending,
		},
		bson.M{"$set": bson.M{"status": model.OfferRejected, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return 0, fmt.Errorf("reject pending offers for product %s: %w", productID, err)
	}
	return res.ModifiedCount, nil
}

// DeleteOffersByProduct removes every offer referencing the product
func (r *MongoRepo) DeleteOffersByProduct(ctx context.Context, productID string) (int64, error) {
	res, err := r.offers.DeleteMany(ctx, bson.M{"productId": productID})
	if err != nil {
		return 0, fmt.Errorf("delete offers for product %s: %w", productID, err)
	}
	return res.DeletedCount, nil
}

// InsertUser stores a new user, enforcing email uniqueness
func (r *MongoRepo) InsertUser(ctx context.Context, u *model.User) error {
	u.Version = 1
	if _, err := r.users.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert user: %w", marketerrors.ErrDuplicateEmail)
		}
		return fmt.Errorf("insert user %s: %w", u.UserID, err)
	}
	return nil
}

// GetUser returns a user by ID
func (r *MongoRepo) GetUser(ctx context.Context, userID string) (model.User, error) {
	var u model.User
	err := r.users.FindOne(ctx, bson.M{"_id": userID}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, marketerrors.ErrNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, err)
	}
	return u, nil
}

// GetUserByEmail returns a user by email
func (r *MongoRepo) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, fmt.Errorf("get user by email: %w", marketerrors.ErrNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// ReplaceUser writes a full user document iff the version matches
func (r *MongoRepo) ReplaceUser(ctx context.Context, u *model.User) error {
	replacement := *u
	replacement.Version = u.Version + 1

	res, err := r.users.ReplaceOne(ctx, bson.M{"_id": u.UserID, "version": u.Version}, &replacement)
	if err != nil {
		return fmt.Errorf("replace user %s: %w", u.UserID, err)
	}
	if res.MatchedCount == 0 {
		if n, countErr := r.users.CountDocuments(ctx, bson.M{"_id": u.UserID}); countErr == nil && n == 0 {
			return fmt.Errorf("replace user %s: %w", u.UserID, marketerrors.ErrNotFound)
		}
		return fmt.Errorf("replace user %s: %w", u.UserID, marketerrors.ErrVersionConflict)
	}
	u.Version++
	return nil
}
