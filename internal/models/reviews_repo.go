package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewsRepo interface {
	CreateReview(ctx context.Context, review *Review) (*Review, error)
	ListReviews(ctx context.Context, offset, limit int) ([]*Review, int, error)
	ListReviewsByProduct(ctx context.Context, productID string) ([]*Review, error)
	ReviewExistsForBooking(ctx context.Context, bookingID string) (bool, error)
}

func (mdb *MongodbRepo) EnsureReviewIndexes(ctx context.Context) error {
	col, err := mdb.GetCollection(ctx, DbName, ReviewColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	indexes := []mongo.IndexModel{
		// One review per booking. Partial so reviews without a booking
		// (external sources) stay unconstrained.
		{
			Keys: bson.D{{Key: "booking_id", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"booking_id": bson.M{"$gt": ""}}).
				SetName("booking_review_unique"),
		},
		{
			Keys:    bson.D{{Key: "product_id", Value: 1}},
			Options: options.Index().SetName("product_id_idx"),
		},
	}

	_, err = col.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("error creating review indexes: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) CreateReview(ctx context.Context, review *Review) (*Review, error) {
	if err := review.ValidateReview(); err != nil {
		return nil, fmt.Errorf("invalid review data: %w", err)
	}
	if err := review.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare review for creation: %w", err)
	}

	col, err := mdb.GetCollection(ctx, DbName, ReviewColName)
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	review.CreatedAt = time.Now()
	if review.Date.IsZero() {
		review.Date = review.CreatedAt
	}

	_, err = col.InsertOne(ctx, review)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("booking %s already reviewed: %w", review.BookingID, ErrConflict)
		}
		return nil, fmt.Errorf("failed to insert review into database: %w", err)
	}
	return review, nil
}

func (mdb *MongodbRepo) ListReviews(ctx context.Context, offset, limit int) ([]*Review, int, error) {
	col, err := mdb.GetCollection(ctx, DbName, ReviewColName)
	if err != nil {
		return nil, 0, fmt.Errorf("error getting collection: %v", err)
	}

	total, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("error counting reviews: %v", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error finding reviews: %v", err)
	}
	defer cursor.Close(ctx)

	var reviews []*Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, 0, fmt.Errorf("error decoding reviews: %v", err)
	}
	return reviews, int(total), nil
}

func (mdb *MongodbRepo) ListReviewsByProduct(ctx context.Context, productID string) ([]*Review, error) {
	col, err := mdb.GetCollection(ctx, DbName, ReviewColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{"product_id": productID},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("error finding reviews: %v", err)
	}
	defer cursor.Close(ctx)

	var reviews []*Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("error decoding reviews: %v", err)
	}
	return reviews, nil
}

func (mdb *MongodbRepo) ReviewExistsForBooking(ctx context.Context, bookingID string) (bool, error) {
	col, err := mdb.GetCollection(ctx, DbName, ReviewColName)
	if err != nil {
		return false, fmt.Errorf("error getting collection: %v", err)
	}

	count, err := col.CountDocuments(ctx, bson.M{"booking_id": bookingID})
	if err != nil {
		return false, fmt.Errorf("error counting reviews: %v", err)
	}
	return count > 0, nil
}
