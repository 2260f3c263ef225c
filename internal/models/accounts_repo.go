package models

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AccountRepo interface {
	CreateAccount(ctx context.Context, account *Account) (*Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
	GetAccountByID(ctx context.Context, id primitive.ObjectID) (*Account, error)
	UpdateAccount(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*Account, error)
	ListSuppliers(ctx context.Context, onlyAvailable bool) ([]*Account, error)
}

func (mdb *MongodbRepo) EnsureAccountIndexes(ctx context.Context) error {
	col, err := mdb.GetCollection(ctx, DbName, AccountColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("email_unique"),
		},
		{
			Keys:    bson.D{{Key: "role", Value: 1}},
			Options: options.Index().SetName("role_idx"),
		},
	}

	_, err = col.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("error creating account indexes: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) CreateAccount(ctx context.Context, account *Account) (*Account, error) {
	col, err := mdb.GetCollection(ctx, DbName, AccountColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if err := account.BeforeCreate(); err != nil {
		return nil, err
	}
	account.Email = strings.ToLower(strings.TrimSpace(account.Email))
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	_, err = col.InsertOne(ctx, account)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("account with email %s: %w", account.Email, ErrConflict)
		}
		return nil, fmt.Errorf("error inserting account: %v", err)
	}

	return account, nil
}

func (mdb *MongodbRepo) GetAccountByEmail(ctx context.Context, email string) (*Account, error) {
	col, err := mdb.GetCollection(ctx, DbName, AccountColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var account Account
	err = col.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))}).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("account %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("error finding account: %v", err)
	}
	return &account, nil
}

func (mdb *MongodbRepo) GetAccountByID(ctx context.Context, id primitive.ObjectID) (*Account, error) {
	col, err := mdb.GetCollection(ctx, DbName, AccountColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var account Account
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("account %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("error finding account: %v", err)
	}
	return &account, nil
}

func (mdb *MongodbRepo) UpdateAccount(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*Account, error) {
	col, err := mdb.GetCollection(ctx, DbName, AccountColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	update["updated_at"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var account Account
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, opts).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("account %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("error updating account: %v", err)
	}
	return &account, nil
}

func (mdb *MongodbRepo) ListSuppliers(ctx context.Context, onlyAvailable bool) ([]*Account, error) {
	col, err := mdb.GetCollection(ctx, DbName, AccountColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"role": RoleSupplier}
	if onlyAvailable {
		filter["is_available"] = true
	}

	cursor, err := col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding suppliers: %v", err)
	}
	defer cursor.Close(ctx)

	var suppliers []*Account
	if err := cursor.All(ctx, &suppliers); err != nil {
		return nil, fmt.Errorf("error decoding suppliers: %v", err)
	}
	for _, s := range suppliers {
		s.Password = ""
	}
	return suppliers, nil
}
