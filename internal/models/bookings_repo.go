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

type BookingsRepo interface {
	CreateBooking(ctx context.Context, booking *Booking) (*Booking, error)
	GetBookingByID(ctx context.Context, id primitive.ObjectID) (*Booking, error)
	ListBookingsByStatus(ctx context.Context, status BookingStatus, offset, limit int) ([]*Booking, int, error)
	ListBookingsByCustomer(ctx context.Context, email string) ([]*Booking, error)
	ListBookingsBySupplier(ctx context.Context, supplierID string) ([]*Booking, error)
	UpdateBookingStatus(ctx context.Context, id primitive.ObjectID, from, to BookingStatus) (*Booking, error)
	SubmitCancellationRequest(ctx context.Context, id primitive.ObjectID, req *CancellationRequest) (*Booking, error)
	ResolveCancellationRequest(ctx context.Context, id primitive.ObjectID, approve bool, adminNotes string) (*Booking, error)
	SubmitRescheduleRequest(ctx context.Context, id primitive.ObjectID, req *RescheduleRequest) (*Booking, error)
	ResolveRescheduleRequest(ctx context.Context, id primitive.ObjectID, approve bool, adminNotes string) (*Booking, error)
	SetPaymentDetails(ctx context.Context, id primitive.ObjectID, details *PaymentDetails) (*Booking, error)
	CountBookingsByStatus(ctx context.Context) (map[BookingStatus]int64, error)
}

func (mdb *MongodbRepo) EnsureBookingIndexes(ctx context.Context) error {
	col, err := mdb.GetCollection(ctx, DbName, BookingColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("status_created_idx"),
		},
		{
			Keys:    bson.D{{Key: "customer_email", Value: 1}},
			Options: options.Index().SetName("customer_email_idx"),
		},
		{
			Keys:    bson.D{{Key: "products.supplier_id", Value: 1}},
			Options: options.Index().SetName("product_supplier_idx"),
		},
		{
			Keys:    bson.D{{Key: "event_date", Value: 1}},
			Options: options.Index().SetName("event_date_idx"),
		},
	}

	_, err = col.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("error creating booking indexes: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) CreateBooking(ctx context.Context, booking *Booking) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if err := booking.BeforeCreate(); err != nil {
		return nil, err
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	booking.Status = BookingPending

	if _, err := col.InsertOne(ctx, booking); err != nil {
		return nil, fmt.Errorf("error inserting booking: %v", err)
	}
	return booking, nil
}

func (mdb *MongodbRepo) GetBookingByID(ctx context.Context, id primitive.ObjectID) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var booking Booking
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("error finding booking: %v", err)
	}
	return &booking, nil
}

func (mdb *MongodbRepo) ListBookingsByStatus(ctx context.Context, status BookingStatus, offset, limit int) ([]*Booking, int, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingColName)
	if err != nil {
		return nil, 0, fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"status": status}
	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting bookings: %v", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error finding bookings: %v", err)
	}
	defer cursor.Close(ctx)

	var bookings []*Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, 0, fmt.Errorf("error decoding bookings: %v", err)
	}
	return bookings, int(total), nil
}

func (mdb *MongodbRepo) ListBookingsByCustomer(ctx context.Context, email string) ([]*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{"customer_email": email},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %v", err)
	}
	defer cursor.Close(ctx)

	var bookings []*Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %v", err)
	}
	return bookings, nil
}

func (mdb *MongodbRepo) ListBookingsBySupplier(ctx context.Context, supplierID string) ([]*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{"products.supplier_id": supplierID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %v", err)
	}
	defer cursor.Close(ctx)

	var bookings []*Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %v", err)
	}
	return bookings, nil
}

// UpdateBookingStatus moves a booking between status partitions. The expected
// current status is part of the filter, so a concurrent admin action makes the
// update miss instead of clobbering it. Last write does not win here.
func (mdb *MongodbRepo) UpdateBookingStatus(ctx context.Context, id primitive.ObjectID, from, to BookingStatus) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if !CanTransition(from, to) {
		return nil, fmt.Errorf("booking cannot move from %s to %s: %w", from, to, ErrInvalidTransition)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var booking Booking
	err = col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": bson.M{"status": to, "updated_at": time.Now()}},
		opts,
	).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking %s not in status %s: %w", id.Hex(), from, ErrInvalidTransition)
		}
		return nil, fmt.Errorf("error updating booking status: %v", err)
	}
	return &booking, nil
}

// SubmitCancellationRequest attaches a pending cancellation request. The
// filter enforces the guards in one round trip: the booking must be Pending or
// Approved and must not carry an open (pending/approved) request already.
func (mdb *MongodbRepo) SubmitCancellationRequest(ctx context.Context, id primitive.ObjectID, req *CancellationRequest) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	now := time.Now()
	req.Status = RequestPending
	req.RequestedAt = now

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var booking Booking
	err = col.FindOneAndUpdate(ctx,
		openRequestGuard(id),
		bson.M{"$set": bson.M{"cancellation_request": req, "updated_at": now}},
		opts,
	).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking %s is not open for a cancellation request: %w", id.Hex(), ErrConflict)
		}
		return nil, fmt.Errorf("error submitting cancellation request: %v", err)
	}
	return &booking, nil
}

// ResolveCancellationRequest approves or rejects a pending request. Approval
// sets the booking status to Cancelled in the same update, so an approved
// cancellation can never leave the booking behind in an active partition.
func (mdb *MongodbRepo) ResolveCancellationRequest(ctx context.Context, id primitive.ObjectID, approve bool, adminNotes string) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	now := time.Now()
	set := bson.M{
		"cancellation_request.status":      RequestRejected,
		"cancellation_request.admin_notes": adminNotes,
		"cancellation_request.resolved_at": now,
		"updated_at":                       now,
	}
	if approve {
		set["cancellation_request.status"] = RequestApproved
		set["status"] = BookingCancelled
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var booking Booking
	err = col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "cancellation_request.status": RequestPending},
		bson.M{"$set": set},
		opts,
	).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking %s has no pending cancellation request: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("error resolving cancellation request: %v", err)
	}
	return &booking, nil
}

func (mdb *MongodbRepo) SubmitRescheduleRequest(ctx context.Context, id primitive.ObjectID, req *RescheduleRequest) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	now := time.Now()
	req.Status = RequestPending
	req.RequestedAt = now

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var booking Booking
	err = col.FindOneAndUpdate(ctx,
		openRequestGuard(id),
		bson.M{"$set": bson.M{"reschedule_request": req, "updated_at": now}},
		opts,
	).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking %s is not open for a reschedule request: %w", id.Hex(), ErrConflict)
		}
		return nil, fmt.Errorf("error submitting reschedule request: %v", err)
	}
	return &booking, nil
}

// ResolveRescheduleRequest approves or rejects a pending reschedule. Approval
// moves event_date to the proposed date atomically.
func (mdb *MongodbRepo) ResolveRescheduleRequest(ctx context.Context, id primitive.ObjectID, approve bool, adminNotes string) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	current, err := mdb.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.RescheduleRequest == nil || current.RescheduleRequest.Status != RequestPending {
		return nil, fmt.Errorf("booking %s has no pending reschedule request: %w", id.Hex(), ErrNotFound)
	}

	now := time.Now()
	set := bson.M{
		"reschedule_request.status":      RequestRejected,
		"reschedule_request.admin_notes": adminNotes,
		"reschedule_request.resolved_at": now,
		"updated_at":                     now,
	}
	if approve {
		set["reschedule_request.status"] = RequestApproved
		set["reschedule_request.original_date"] = current.EventDate
		set["event_date"] = current.RescheduleRequest.ProposedDate
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var booking Booking
	err = col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "reschedule_request.status": RequestPending},
		bson.M{"$set": set},
		opts,
	).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking %s has no pending reschedule request: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("error resolving reschedule request: %v", err)
	}
	return &booking, nil
}

// SetPaymentDetails replaces the payment sub-record in place.
func (mdb *MongodbRepo) SetPaymentDetails(ctx context.Context, id primitive.ObjectID, details *PaymentDetails) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var booking Booking
	err = col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"payment_details": details, "updated_at": time.Now()}},
		opts,
	).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("error setting payment details: %v", err)
	}
	return &booking, nil
}

// CountBookingsByStatus aggregates the partition sizes for the admin dashboard.
func (mdb *MongodbRepo) CountBookingsByStatus(ctx context.Context) (map[BookingStatus]int64, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating booking counts: %v", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status BookingStatus `bson:"_id"`
		Count  int64         `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding booking counts: %v", err)
	}

	counts := make(map[BookingStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func openRequestGuard(id primitive.ObjectID) bson.M {
	return bson.M{
		"_id":    id,
		"status": bson.M{"$in": []BookingStatus{BookingPending, BookingApproved}},
		"cancellation_request.status": bson.M{
			"$nin": []RequestStatus{RequestPending, RequestApproved},
		},
		"reschedule_request.status": bson.M{
			"$nin": []RequestStatus{RequestPending, RequestApproved},
		},
	}
}
