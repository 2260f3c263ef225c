package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/D4RKPR1NC366/venuevista-sub001/internal/connect"
	"github.com/D4RKPR1NC366/venuevista-sub001/internal/helpers"
	"github.com/D4RKPR1NC366/venuevista-sub001/internal/models"
	"github.com/D4RKPR1NC366/venuevista-sub001/internal/queue"
)

// EventPublisher pushes a booking status event to the broker. Failures are
// absorbed by the implementation; a lost event only delays a notification.
type EventPublisher func(ctx context.Context, event queue.BookingStatusEvent)

type BookingService struct {
	bookingsRepo models.BookingsRepo
	cartRepo     models.CartRepo
	catalogRepo  models.CatalogRepo
	publish      EventPublisher
	logger       *slog.Logger
}

func NewBookingService(bookingsRepo models.BookingsRepo, cartRepo models.CartRepo, catalogRepo models.CatalogRepo, publish EventPublisher, logger *slog.Logger) *BookingService {
	return &BookingService{
		bookingsRepo: bookingsRepo,
		cartRepo:     cartRepo,
		catalogRepo:  catalogRepo,
		publish:      publish,
		logger:       logger,
	}
}

// BookingSubmission is the customer-facing booking form. Products are never
// part of it; they are snapshotted from the caller's cart at submission time.
type BookingSubmission struct {
	CustomerName  string    `json:"customer_name" validate:"required"`
	CustomerEmail string    `json:"customer_email" validate:"required,email"`
	ContactNo     string    `json:"contact_no"`
	EventType     string    `json:"event_type" validate:"required"`
	EventDate     time.Time `json:"event_date" validate:"required"`
	GuestCount    int       `json:"guest_count" validate:"gte=0"`
	Barangay      string    `json:"barangay"`
	City          string    `json:"city"`
	Province      string    `json:"province"`
	PromoID       string    `json:"promo_id"`
}

// CreateBooking snapshots the cart into a new Pending booking, computes the
// total (products plus selected additionals, promo discount applied when the
// promo is active), and clears the cart on success.
func (bs *BookingService) CreateBooking(ctx context.Context, submission *BookingSubmission) (*models.Booking, error) {
	if err := models.Validate.Struct(submission); err != nil {
		return nil, fmt.Errorf("invalid booking data: %v", err)
	}

	cart, err := bs.cartRepo.GetCartByEmail(ctx, submission.CustomerEmail)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	total := 0.0
	for _, item := range cart.Items {
		total += item.Price
		for _, a := range item.Additionals {
			total += a.Price
		}
	}

	var promoSnapshot *models.PromoSnapshot
	if submission.PromoID != "" {
		promoID, err := primitive.ObjectIDFromHex(submission.PromoID)
		if err != nil {
			return nil, fmt.Errorf("invalid promo ID format")
		}
		promo, err := bs.catalogRepo.GetPromoByID(ctx, promoID)
		if err != nil {
			return nil, err
		}
		if !promo.ActiveAt(time.Now()) {
			return nil, fmt.Errorf("promo %q is not active", promo.Name)
		}
		total = promo.ApplyDiscount(total)
		promoSnapshot = &models.PromoSnapshot{
			PromoID:       promo.ID.Hex(),
			Name:          promo.Name,
			DiscountValue: promo.DiscountValue,
		}
	}

	booking := &models.Booking{
		CustomerName:  strings.TrimSpace(submission.CustomerName),
		CustomerEmail: strings.ToLower(strings.TrimSpace(submission.CustomerEmail)),
		ContactNo:     submission.ContactNo,
		EventType:     submission.EventType,
		EventDate:     submission.EventDate,
		Venue:         helpers.VenueDisplayName(submission.Barangay, submission.City, submission.Province),
		GuestCount:    submission.GuestCount,
		Products:      cart.Items,
		TotalPrice:    total,
		Promo:         promoSnapshot,
	}

	created, err := bs.bookingsRepo.CreateBooking(ctx, booking)
	if err != nil {
		return nil, err
	}

	if err := bs.cartRepo.ClearCart(ctx, created.CustomerEmail); err != nil {
		// The booking exists; an uncleared cart is recoverable by the user.
		bs.logger.Warn("failed to clear cart after booking", "email", created.CustomerEmail, "error", err)
	}

	return created, nil
}

func (bs *BookingService) GetBooking(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	return bs.bookingsRepo.GetBookingByID(ctx, id)
}

func (bs *BookingService) ListByStatus(ctx context.Context, status models.BookingStatus, offset, limit int) ([]*models.Booking, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}
	return bs.bookingsRepo.ListBookingsByStatus(ctx, status, offset, limit)
}

func (bs *BookingService) ListByCustomer(ctx context.Context, email string) ([]*models.Booking, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("customer email is required")
	}
	return bs.bookingsRepo.ListBookingsByCustomer(ctx, email)
}

func (bs *BookingService) ListBySupplier(ctx context.Context, supplierID string) ([]*models.Booking, error) {
	if strings.TrimSpace(supplierID) == "" {
		return nil, fmt.Errorf("supplier ID is required")
	}
	return bs.bookingsRepo.ListBookingsBySupplier(ctx, supplierID)
}

func (bs *BookingService) CountByStatus(ctx context.Context) (map[models.BookingStatus]int64, error) {
	return bs.bookingsRepo.CountBookingsByStatus(ctx)
}

// Transition moves a booking between status partitions (admin action).
func (bs *BookingService) Transition(ctx context.Context, id primitive.ObjectID, to models.BookingStatus) (*models.Booking, error) {
	current, err := bs.bookingsRepo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := bs.bookingsRepo.UpdateBookingStatus(ctx, id, current.Status, to)
	if err != nil {
		return nil, err
	}

	bs.publishStatusChange(ctx, updated, current.Status)
	return updated, nil
}

// RequestCancellation files a cancellation proposal on the customer's own
// booking. The booking status is untouched until an admin approves it.
func (bs *BookingService) RequestCancellation(ctx context.Context, id primitive.ObjectID, userEmail string, req *models.CancellationRequest) (*models.Booking, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid cancellation request: %v", err)
	}
	if err := bs.assertOwnership(ctx, id, userEmail); err != nil {
		return nil, err
	}
	return bs.bookingsRepo.SubmitCancellationRequest(ctx, id, req)
}

// ResolveCancellation approves or rejects a pending cancellation request.
// Approval cancels the booking in the same write, so it disappears from every
// active-status view deterministically.
func (bs *BookingService) ResolveCancellation(ctx context.Context, id primitive.ObjectID, approve bool, adminNotes string) (*models.Booking, error) {
	current, err := bs.bookingsRepo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := bs.bookingsRepo.ResolveCancellationRequest(ctx, id, approve, adminNotes)
	if err != nil {
		return nil, err
	}

	if approve {
		bs.publishStatusChange(ctx, updated, current.Status)
	}
	return updated, nil
}

// RequestReschedule files a reschedule proposal. The proposed date may not be
// in the past.
func (bs *BookingService) RequestReschedule(ctx context.Context, id primitive.ObjectID, userEmail string, req *models.RescheduleRequest) (*models.Booking, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid reschedule request: %v", err)
	}
	today := time.Now().Truncate(24 * time.Hour)
	if req.ProposedDate.Before(today) {
		return nil, fmt.Errorf("proposed date cannot be in the past")
	}
	if err := bs.assertOwnership(ctx, id, userEmail); err != nil {
		return nil, err
	}
	return bs.bookingsRepo.SubmitRescheduleRequest(ctx, id, req)
}

func (bs *BookingService) ResolveReschedule(ctx context.Context, id primitive.ObjectID, approve bool, adminNotes string) (*models.Booking, error) {
	return bs.bookingsRepo.ResolveRescheduleRequest(ctx, id, approve, adminNotes)
}

// PaymentForm carries a payment submission. PaymentStatus is intentionally
// absent: it is derived, never supplied.
type PaymentForm struct {
	PaymentMode          string    `json:"payment_mode" validate:"required"`
	AmountPaid           float64   `json:"amount_paid" validate:"gte=0"`
	PaymentDate          time.Time `json:"payment_date" validate:"required"`
	TransactionReference string    `json:"transaction_reference"`
	ProofImage           string    `json:"proof_image"`
	Notes                string    `json:"notes"`
}

// SubmitPayment overwrites the booking's payment sub-record and recomputes
// the payment status from the amount paid against the booking total.
func (bs *BookingService) SubmitPayment(ctx context.Context, id primitive.ObjectID, userEmail string, form *PaymentForm) (*models.Booking, error) {
	if err := models.Validate.Struct(form); err != nil {
		return nil, fmt.Errorf("invalid payment data: %v", err)
	}

	booking, err := bs.bookingsRepo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if userEmail != "" && booking.CustomerEmail != strings.ToLower(strings.TrimSpace(userEmail)) {
		return nil, fmt.Errorf("booking does not belong to this customer")
	}
	if booking.Status == models.BookingCancelled {
		return nil, fmt.Errorf("cannot record a payment on a cancelled booking")
	}

	proofImage := form.ProofImage
	if proofImage != "" && connect.Cld != nil {
		urls, err := helpers.UploadImages(ctx, connect.Cld, []string{proofImage}, helpers.ProofFolder)
		if err != nil {
			return nil, fmt.Errorf("failed to upload payment proof: %v", err)
		}
		proofImage = urls[0]
	}

	details := &models.PaymentDetails{
		PaymentMode:          form.PaymentMode,
		AmountPaid:           form.AmountPaid,
		PaymentDate:          form.PaymentDate,
		TransactionReference: form.TransactionReference,
		ProofImage:           proofImage,
		Notes:                form.Notes,
		PaymentStatus:        models.DerivePaymentStatus(form.AmountPaid, booking.TotalPrice),
	}

	return bs.bookingsRepo.SetPaymentDetails(ctx, id, details)
}

func (bs *BookingService) assertOwnership(ctx context.Context, id primitive.ObjectID, userEmail string) error {
	booking, err := bs.bookingsRepo.GetBookingByID(ctx, id)
	if err != nil {
		return err
	}
	if booking.CustomerEmail != strings.ToLower(strings.TrimSpace(userEmail)) {
		return fmt.Errorf("booking does not belong to this customer")
	}
	return nil
}

func (bs *BookingService) publishStatusChange(ctx context.Context, booking *models.Booking, from models.BookingStatus) {
	if bs.publish == nil {
		return
	}
	bs.publish(ctx, queue.BookingStatusEvent{
		BookingID:     booking.ID.Hex(),
		CustomerName:  booking.CustomerName,
		CustomerEmail: booking.CustomerEmail,
		EventType:     booking.EventType,
		EventDate:     booking.EventDate.Format("2006-01-02"),
		Venue:         booking.Venue,
		TotalPrice:    booking.TotalPrice,
		FromStatus:    string(from),
		ToStatus:      string(booking.Status),
		SupplierIDs:   booking.SupplierIDs(),
		ChangedAt:     time.Now().UTC().Format(time.RFC3339),
	})
}
