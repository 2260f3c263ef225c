package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

var Validate = validator.New()

// Sentinel errors so handlers can map repo failures to proper status codes.
var (
	ErrNotFound          = errors.New("document not found")
	ErrConflict          = errors.New("document already exists")
	ErrInvalidTransition = errors.New("invalid status transition")
)

const DbName = "venuevista"

type MongodbRepo struct {
	mongodbClient *mongo.Client
}

func MongodbNewRepo(mongodbClient *mongo.Client) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
	}
}

func (mdb *MongodbRepo) GetCollection(ctx context.Context, dbName, colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	col := mdb.mongodbClient.Database(dbName).Collection(colName)
	return col, nil
}

// EnsureIndexes creates the indexes every collection relies on. Called once at startup.
func (mdb *MongodbRepo) EnsureIndexes(ctx context.Context) error {
	if err := mdb.EnsureAccountIndexes(ctx); err != nil {
		return err
	}
	if err := mdb.EnsureBookingIndexes(ctx); err != nil {
		return err
	}
	if err := mdb.EnsureCartIndexes(ctx); err != nil {
		return err
	}
	return mdb.EnsureReviewIndexes(ctx)
}
