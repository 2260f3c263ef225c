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

const ScheduleColName = "schedules"

type RecipientType string

const (
	RecipientCustomer RecipientType = "Customer"
	RecipientSupplier RecipientType = "Supplier"
)

type ScheduleStatus string

const (
	SchedulePending  ScheduleStatus = "pending"
	ScheduleAccepted ScheduleStatus = "accepted"
	ScheduleDeclined ScheduleStatus = "declined"
)

// Schedule is an admin-assigned calendar item routed to one customer or
// supplier, subject to accept/decline by a supplier.
type Schedule struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RecipientType RecipientType      `bson:"recipient_type" json:"recipient_type" validate:"required,oneof=Customer Supplier"`
	PersonName    string             `bson:"person_name" json:"person_name"`
	PersonEmail   string             `bson:"person_email" json:"person_email" validate:"required,email"`
	SupplierID    string             `bson:"supplier_id,omitempty" json:"supplier_id,omitempty"`
	CompanyName   string             `bson:"company_name,omitempty" json:"company_name,omitempty"`
	Title         string             `bson:"title" json:"title" validate:"required"`
	Date          time.Time          `bson:"date" json:"date" validate:"required"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Status        ScheduleStatus     `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

func (s *Schedule) BeforeCreate() error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	return nil
}

type SchedulesRepo interface {
	CreateSchedule(ctx context.Context, schedule *Schedule) (*Schedule, error)
	GetScheduleByID(ctx context.Context, id primitive.ObjectID) (*Schedule, error)
	ListSchedules(ctx context.Context) ([]*Schedule, error)
	ListSchedulesByStatus(ctx context.Context, status ScheduleStatus) ([]*Schedule, error)
	SetScheduleStatus(ctx context.Context, id primitive.ObjectID, supplierID string, status ScheduleStatus) (*Schedule, error)
}

func (mdb *MongodbRepo) CreateSchedule(ctx context.Context, schedule *Schedule) (*Schedule, error) {
	col, err := mdb.GetCollection(ctx, DbName, ScheduleColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if err := schedule.BeforeCreate(); err != nil {
		return nil, err
	}
	now := time.Now()
	schedule.Status = SchedulePending
	schedule.CreatedAt = now
	schedule.UpdatedAt = now

	if _, err := col.InsertOne(ctx, schedule); err != nil {
		return nil, fmt.Errorf("error inserting schedule: %v", err)
	}
	return schedule, nil
}

func (mdb *MongodbRepo) GetScheduleByID(ctx context.Context, id primitive.ObjectID) (*Schedule, error) {
	col, err := mdb.GetCollection(ctx, DbName, ScheduleColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var schedule Schedule
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&schedule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("schedule %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("error finding schedule: %v", err)
	}
	return &schedule, nil
}

func (mdb *MongodbRepo) ListSchedules(ctx context.Context) ([]*Schedule, error) {
	return mdb.findSchedules(ctx, bson.M{})
}

func (mdb *MongodbRepo) ListSchedulesByStatus(ctx context.Context, status ScheduleStatus) ([]*Schedule, error) {
	return mdb.findSchedules(ctx, bson.M{"status": status})
}

func (mdb *MongodbRepo) findSchedules(ctx context.Context, filter bson.M) ([]*Schedule, error) {
	col, err := mdb.GetCollection(ctx, DbName, ScheduleColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error finding schedules: %v", err)
	}
	defer cursor.Close(ctx)

	var schedules []*Schedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, fmt.Errorf("error decoding schedules: %v", err)
	}
	return schedules, nil
}

// SetScheduleStatus flips a pending Supplier item to accepted or declined.
// The filter pins the owner and the pending status, so the flip happens at
// most once even under concurrent clicks.
func (mdb *MongodbRepo) SetScheduleStatus(ctx context.Context, id primitive.ObjectID, supplierID string, status ScheduleStatus) (*Schedule, error) {
	col, err := mdb.GetCollection(ctx, DbName, ScheduleColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{
		"_id":            id,
		"recipient_type": RecipientSupplier,
		"supplier_id":    supplierID,
		"status":         SchedulePending,
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var schedule Schedule
	err = col.FindOneAndUpdate(ctx, filter,
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
		opts,
	).Decode(&schedule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("schedule %s is not pending for this supplier: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("error updating schedule status: %v", err)
	}
	return &schedule, nil
}
