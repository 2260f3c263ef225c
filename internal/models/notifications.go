package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const NotificationColName = "notifications"

// Notification is a stored notification written by the booking event consumer.
type Notification struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RecipientEmail string             `bson:"recipient_email" json:"recipient_email"`
	Title          string             `bson:"title" json:"title"`
	Message        string             `bson:"message" json:"message"`
	Type           string             `bson:"type" json:"type"`
	Date           time.Time          `bson:"date" json:"date"`
	IsRead         bool               `bson:"is_read" json:"is_read"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}

type NotificationsRepo interface {
	CreateNotification(ctx context.Context, notification *Notification) (*Notification, error)
	ListNotificationsByRecipient(ctx context.Context, email string) ([]*Notification, error)
	MarkNotificationRead(ctx context.Context, id primitive.ObjectID, email string) error
}

func (mdb *MongodbRepo) CreateNotification(ctx context.Context, notification *Notification) (*Notification, error) {
	col, err := mdb.GetCollection(ctx, DbName, NotificationColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if notification.ID.IsZero() {
		notification.ID = primitive.NewObjectID()
	}
	notification.CreatedAt = time.Now()
	if notification.Date.IsZero() {
		notification.Date = notification.CreatedAt
	}

	if _, err := col.InsertOne(ctx, notification); err != nil {
		return nil, fmt.Errorf("error inserting notification: %v", err)
	}
	return notification, nil
}

func (mdb *MongodbRepo) ListNotificationsByRecipient(ctx context.Context, email string) ([]*Notification, error) {
	col, err := mdb.GetCollection(ctx, DbName, NotificationColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{"recipient_email": email},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("error finding notifications: %v", err)
	}
	defer cursor.Close(ctx)

	var notifications []*Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("error decoding notifications: %v", err)
	}
	return notifications, nil
}

func (mdb *MongodbRepo) MarkNotificationRead(ctx context.Context, id primitive.ObjectID, email string) error {
	col, err := mdb.GetCollection(ctx, DbName, NotificationColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.UpdateOne(ctx,
		bson.M{"_id": id, "recipient_email": email},
		bson.M{"$set": bson.M{"is_read": true}},
	)
	if err != nil {
		return fmt.Errorf("error marking notification read: %v", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("notification %s: %w", id.Hex(), ErrNotFound)
	}
	return nil
}
