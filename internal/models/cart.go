package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CartColName = "carts"

// CartItem snapshots the product at the time it was added, plus the add-ons
// the customer selected. Presence implies quantity one.
type CartItem struct {
	ProductID   string       `bson:"product_id" json:"product_id"`
	Title       string       `bson:"title" json:"title"`
	Category    string       `bson:"category" json:"category"`
	Price       float64      `bson:"price" json:"price"`
	Image       string       `bson:"image,omitempty" json:"image,omitempty"`
	SupplierID  string       `bson:"supplier_id,omitempty" json:"supplier_id,omitempty"`
	CompanyName string       `bson:"company_name,omitempty" json:"company_name,omitempty"`
	Additionals []Additional `bson:"additionals,omitempty" json:"additionals,omitempty"`
	AddedAt     time.Time    `bson:"added_at" json:"added_at"`
}

// Cart is the single cart document per user email.
type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail string             `bson:"user_email" json:"user_email" validate:"required,email"`
	Items     []CartItem         `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// HasItemTitled reports whether the cart already holds an item with the
// given title. Titles identify products within a cart.
func (c *Cart) HasItemTitled(title string) bool {
	for _, item := range c.Items {
		if item.Title == title {
			return true
		}
	}
	return false
}

type CartRepo interface {
	AddCartItem(ctx context.Context, userEmail string, item CartItem) (*Cart, error)
	GetCartByEmail(ctx context.Context, userEmail string) (*Cart, error)
	RemoveCartItem(ctx context.Context, userEmail, productID string) error
	ClearCart(ctx context.Context, userEmail string) error
}

func (mdb *MongodbRepo) EnsureCartIndexes(ctx context.Context) error {
	col, err := mdb.GetCollection(ctx, DbName, CartColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	_, err = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("cart_user_unique"),
	})
	if err != nil {
		return fmt.Errorf("error creating cart indexes: %v", err)
	}
	return nil
}

// AddCartItem upserts the user's cart and appends the item. The filter
// excludes carts that already hold an item with the same title, so duplicate
// additions fail with ErrConflict instead of producing two entries.
func (mdb *MongodbRepo) AddCartItem(ctx context.Context, userEmail string, item CartItem) (*Cart, error) {
	col, err := mdb.GetCollection(ctx, DbName, CartColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	now := time.Now()
	item.AddedAt = now

	filter := bson.M{
		"user_email":  userEmail,
		"items.title": bson.M{"$ne": item.Title},
	}
	update := bson.M{
		"$push": bson.M{"items": item},
		"$set":  bson.M{"updated_at": now},
		"$setOnInsert": bson.M{
			"user_email": userEmail,
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var cart Cart
	err = col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&cart)
	if err != nil {
		// The upsert collides with the unique user_email index when the cart
		// exists but already contains the title.
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("product %q already in cart: %w", item.Title, ErrConflict)
		}
		return nil, fmt.Errorf("error adding cart item: %v", err)
	}
	return &cart, nil
}

func (mdb *MongodbRepo) GetCartByEmail(ctx context.Context, userEmail string) (*Cart, error) {
	col, err := mdb.GetCollection(ctx, DbName, CartColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var cart Cart
	err = col.FindOne(ctx, bson.M{"user_email": userEmail}).Decode(&cart)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// An absent cart document reads as an empty cart.
			return &Cart{UserEmail: userEmail, Items: []CartItem{}}, nil
		}
		return nil, fmt.Errorf("error finding cart: %v", err)
	}
	return &cart, nil
}

func (mdb *MongodbRepo) RemoveCartItem(ctx context.Context, userEmail, productID string) error {
	col, err := mdb.GetCollection(ctx, DbName, CartColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.UpdateOne(ctx,
		bson.M{"user_email": userEmail},
		bson.M{
			"$pull": bson.M{"items": bson.M{"product_id": productID}},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("error removing cart item: %v", err)
	}
	if res.ModifiedCount == 0 {
		return fmt.Errorf("cart item %s: %w", productID, ErrNotFound)
	}
	return nil
}

func (mdb *MongodbRepo) ClearCart(ctx context.Context, userEmail string) error {
	col, err := mdb.GetCollection(ctx, DbName, CartColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	_, err = col.UpdateOne(ctx,
		bson.M{"user_email": userEmail},
		bson.M{
			"$set": bson.M{"items": []CartItem{}, "updated_at": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("error clearing cart: %v", err)
	}
	return nil
}
