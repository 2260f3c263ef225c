package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const BookingColName = "bookings"

type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingApproved  BookingStatus = "Approved"
	BookingFinished  BookingStatus = "Finished"
	BookingCancelled BookingStatus = "Cancelled"
)

type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "Pending"
	PaymentPartiallyPaid PaymentStatus = "Partially Paid"
	PaymentFullyPaid     PaymentStatus = "Fully Paid"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// CancellationRequest is a side-channel proposal attached to a booking.
// It never changes the booking status by itself; only admin approval does.
type CancellationRequest struct {
	Reason      string        `bson:"reason" json:"reason" validate:"required"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	Status      RequestStatus `bson:"status" json:"status"`
	AdminNotes  string        `bson:"admin_notes,omitempty" json:"admin_notes,omitempty"`
	RequestedAt time.Time     `bson:"requested_at" json:"requested_at"`
	ResolvedAt  *time.Time    `bson:"resolved_at,omitempty" json:"resolved_at,omitempty"`
}

type RescheduleRequest struct {
	Reason       string        `bson:"reason" json:"reason" validate:"required"`
	ProposedDate time.Time     `bson:"proposed_date" json:"proposed_date" validate:"required"`
	OriginalDate time.Time     `bson:"original_date" json:"original_date"`
	Description  string        `bson:"description,omitempty" json:"description,omitempty"`
	Status       RequestStatus `bson:"status" json:"status"`
	AdminNotes   string        `bson:"admin_notes,omitempty" json:"admin_notes,omitempty"`
	RequestedAt  time.Time     `bson:"requested_at" json:"requested_at"`
	ResolvedAt   *time.Time    `bson:"resolved_at,omitempty" json:"resolved_at,omitempty"`
}

// PaymentDetails is overwritten in place on every submission; no payment
// history is kept. PaymentStatus is always recomputed from AmountPaid vs the
// booking's TotalPrice and never accepted from a client.
type PaymentDetails struct {
	PaymentMode          string        `bson:"payment_mode" json:"payment_mode" validate:"required"`
	AmountPaid           float64       `bson:"amount_paid" json:"amount_paid" validate:"gte=0"`
	PaymentDate          time.Time     `bson:"payment_date" json:"payment_date" validate:"required"`
	TransactionReference string        `bson:"transaction_reference,omitempty" json:"transaction_reference,omitempty"`
	ProofImage           string        `bson:"proof_image,omitempty" json:"proof_image,omitempty"`
	Notes                string        `bson:"notes,omitempty" json:"notes,omitempty"`
	PaymentStatus        PaymentStatus `bson:"payment_status" json:"payment_status"`
}

// PromoSnapshot records the promo as it applied at submission time.
type PromoSnapshot struct {
	PromoID       string  `bson:"promo_id" json:"promo_id"`
	Name          string  `bson:"name" json:"name"`
	DiscountValue float64 `bson:"discount_value" json:"discount_value"`
}

type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerName  string             `bson:"customer_name" json:"customer_name" validate:"required"`
	CustomerEmail string             `bson:"customer_email" json:"customer_email" validate:"required,email"`
	ContactNo     string             `bson:"contact_no" json:"contact_no"`

	EventType  string    `bson:"event_type" json:"event_type" validate:"required"`
	EventDate  time.Time `bson:"event_date" json:"event_date" validate:"required"`
	Venue      string    `bson:"venue" json:"venue"`
	GuestCount int       `bson:"guest_count" json:"guest_count" validate:"gte=0"`

	Products   []CartItem     `bson:"products" json:"products"`
	TotalPrice float64        `bson:"total_price" json:"total_price"`
	Promo      *PromoSnapshot `bson:"promo,omitempty" json:"promo,omitempty"`

	Status              BookingStatus        `bson:"status" json:"status"`
	CancellationRequest *CancellationRequest `bson:"cancellation_request,omitempty" json:"cancellation_request,omitempty"`
	RescheduleRequest   *RescheduleRequest   `bson:"reschedule_request,omitempty" json:"reschedule_request,omitempty"`
	PaymentDetails      *PaymentDetails      `bson:"payment_details,omitempty" json:"payment_details,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func (b *Booking) BeforeCreate() error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	return nil
}

// DerivePaymentStatus is the single source of truth for payment status.
// Over-payment clamps to Fully Paid.
func DerivePaymentStatus(amountPaid, totalPrice float64) PaymentStatus {
	switch {
	case amountPaid <= 0:
		return PaymentPending
	case amountPaid >= totalPrice:
		return PaymentFullyPaid
	default:
		return PaymentPartiallyPaid
	}
}

// CanTransition reports whether an admin may move a booking between statuses.
func CanTransition(from, to BookingStatus) bool {
	switch from {
	case BookingPending:
		return to == BookingApproved || to == BookingCancelled
	case BookingApproved:
		return to == BookingFinished || to == BookingCancelled
	default:
		return false
	}
}

// HasOpenRequest reports whether a pending or approved cancellation or
// reschedule request blocks filing a new one. A rejected request does not.
func (b Booking) HasOpenRequest() bool {
	if b.CancellationRequest != nil {
		if s := b.CancellationRequest.Status; s == RequestPending || s == RequestApproved {
			return true
		}
	}
	if b.RescheduleRequest != nil {
		if s := b.RescheduleRequest.Status; s == RequestPending || s == RequestApproved {
			return true
		}
	}
	return false
}

// SupplierIDs collects the distinct supplier ids referenced by the booked products.
func (b Booking) SupplierIDs() []string {
	seen := make(map[string]bool, len(b.Products))
	var ids []string
	for _, p := range b.Products {
		if p.SupplierID == "" || seen[p.SupplierID] {
			continue
		}
		seen[p.SupplierID] = true
		ids = append(ids, p.SupplierID)
	}
	return ids
}
