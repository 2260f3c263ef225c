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

type CatalogRepo interface {
	CreateProduct(ctx context.Context, product *Product) (*Product, error)
	GetProductByID(ctx context.Context, id primitive.ObjectID) (*Product, error)
	ListProducts(ctx context.Context, filter map[string]interface{}, offset, limit int) ([]*Product, int, error)
	UpdateProduct(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*Product, error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) error

	CreateCategory(ctx context.Context, category *Category) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	CreateEventType(ctx context.Context, eventType *EventType) (*EventType, error)
	ListEventTypes(ctx context.Context) ([]*EventType, error)

	CreatePromo(ctx context.Context, promo *Promo) (*Promo, error)
	GetPromoByID(ctx context.Context, id primitive.ObjectID) (*Promo, error)
	ListPromos(ctx context.Context) ([]*Promo, error)
	DeletePromo(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongodbRepo) CreateProduct(ctx context.Context, product *Product) (*Product, error) {
	col, err := mdb.GetCollection(ctx, DbName, ProductColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if err := product.BeforeCreate(); err != nil {
		return nil, err
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	if _, err := col.InsertOne(ctx, product); err != nil {
		return nil, fmt.Errorf("error inserting product: %v", err)
	}
	return product, nil
}

func (mdb *MongodbRepo) GetProductByID(ctx context.Context, id primitive.ObjectID) (*Product, error) {
	col, err := mdb.GetCollection(ctx, DbName, ProductColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var product Product
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("product %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("error finding product: %v", err)
	}
	return &product, nil
}

func (mdb *MongodbRepo) ListProducts(ctx context.Context, filter map[string]interface{}, offset, limit int) ([]*Product, int, error) {
	col, err := mdb.GetCollection(ctx, DbName, ProductColName)
	if err != nil {
		return nil, 0, fmt.Errorf("error getting collection: %v", err)
	}

	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}

	total, err := col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting products: %v", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error finding products: %v", err)
	}
	defer cursor.Close(ctx)

	var products []*Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, fmt.Errorf("error decoding products: %v", err)
	}
	return products, int(total), nil
}

func (mdb *MongodbRepo) UpdateProduct(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*Product, error) {
	col, err := mdb.GetCollection(ctx, DbName, ProductColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	update["updated_at"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var product Product
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, opts).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("product %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("error updating product: %v", err)
	}
	return &product, nil
}

func (mdb *MongodbRepo) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, DbName, ProductColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting product: %v", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("product %s: %w", id.Hex(), ErrNotFound)
	}
	return nil
}

func (mdb *MongodbRepo) CreateCategory(ctx context.Context, category *Category) (*Category, error) {
	col, err := mdb.GetCollection(ctx, DbName, CategoryColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	if _, err := col.InsertOne(ctx, category); err != nil {
		return nil, fmt.Errorf("error inserting category: %v", err)
	}
	return category, nil
}

func (mdb *MongodbRepo) ListCategories(ctx context.Context) ([]*Category, error) {
	col, err := mdb.GetCollection(ctx, DbName, CategoryColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error finding categories: %v", err)
	}
	defer cursor.Close(ctx)

	var categories []*Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("error decoding categories: %v", err)
	}
	return categories, nil
}

func (mdb *MongodbRepo) CreateEventType(ctx context.Context, eventType *EventType) (*EventType, error) {
	col, err := mdb.GetCollection(ctx, DbName, EventTypeColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}
	if eventType.ID.IsZero() {
		eventType.ID = primitive.NewObjectID()
	}
	if _, err := col.InsertOne(ctx, eventType); err != nil {
		return nil, fmt.Errorf("error inserting event type: %v", err)
	}
	return eventType, nil
}

func (mdb *MongodbRepo) ListEventTypes(ctx context.Context) ([]*EventType, error) {
	col, err := mdb.GetCollection(ctx, DbName, EventTypeColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error finding event types: %v", err)
	}
	defer cursor.Close(ctx)

	var eventTypes []*EventType
	if err := cursor.All(ctx, &eventTypes); err != nil {
		return nil, fmt.Errorf("error decoding event types: %v", err)
	}
	return eventTypes, nil
}

func (mdb *MongodbRepo) CreatePromo(ctx context.Context, promo *Promo) (*Promo, error) {
	col, err := mdb.GetCollection(ctx, DbName, PromoColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if err := promo.BeforeCreate(); err != nil {
		return nil, err
	}
	now := time.Now()
	promo.CreatedAt = now
	promo.UpdatedAt = now

	if _, err := col.InsertOne(ctx, promo); err != nil {
		return nil, fmt.Errorf("error inserting promo: %v", err)
	}
	return promo, nil
}

func (mdb *MongodbRepo) GetPromoByID(ctx context.Context, id primitive.ObjectID) (*Promo, error) {
	col, err := mdb.GetCollection(ctx, DbName, PromoColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var promo Promo
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&promo)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("promo %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("error finding promo: %v", err)
	}
	return &promo, nil
}

func (mdb *MongodbRepo) ListPromos(ctx context.Context) ([]*Promo, error) {
	col, err := mdb.GetCollection(ctx, DbName, PromoColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "valid_until", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("error finding promos: %v", err)
	}
	defer cursor.Close(ctx)

	var promos []*Promo
	if err := cursor.All(ctx, &promos); err != nil {
		return nil, fmt.Errorf("error decoding promos: %v", err)
	}
	return promos, nil
}

func (mdb *MongodbRepo) DeletePromo(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, DbName, PromoColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting promo: %v", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("promo %s: %w", id.Hex(), ErrNotFound)
	}
	return nil
}
