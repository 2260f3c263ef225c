package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/D4RKPR1NC366/venuevista-sub001/internal/models"
	"github.com/D4RKPR1NC366/venuevista-sub001/internal/queue"
)

func newTestBookingService(bookings *mockBookingsRepo, carts *mockCartRepo, catalog *mockCatalogRepo, publish EventPublisher) *BookingService {
	return NewBookingService(bookings, carts, catalog, publish, slog.Default())
}

func validSubmission() *BookingSubmission {
	return &BookingSubmission{
		CustomerName:  "Ana Cruz",
		CustomerEmail: "ana@example.com",
		EventType:     "Wedding",
		EventDate:     time.Now().AddDate(0, 1, 0),
		GuestCount:    150,
		Barangay:      "San Isidro",
		City:          "Davao City",
		Province:      "Davao del Sur",
	}
}

func TestCreateBookingComputesTotalFromCart(t *testing.T) {
	bookings := new(mockBookingsRepo)
	carts := new(mockCartRepo)
	catalog := new(mockCatalogRepo)
	svc := newTestBookingService(bookings, carts, catalog, nil)

	cart := &models.Cart{
		UserEmail: "ana@example.com",
		Items: []models.CartItem{
			{ProductID: "p1", Title: "Catering", Price: 3000, Additionals: []models.Additional{{Title: "Lechon", Price: 500}}},
			{ProductID: "p2", Title: "Photography", Price: 1500},
		},
	}
	carts.On("GetCartByEmail", mock.Anything, "ana@example.com").Return(cart, nil)
	carts.On("ClearCart", mock.Anything, "ana@example.com").Return(nil)

	var created *models.Booking
	bookings.On("CreateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*models.Booking) }).
		Return(&models.Booking{ID: primitive.NewObjectID()}, nil)

	_, err := svc.CreateBooking(context.Background(), validSubmission())
	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, 5000.0, created.TotalPrice)
	assert.Equal(t, "San Isidro, Davao City, Davao del Sur", created.Venue)
	assert.Len(t, created.Products, 2)
	assert.Nil(t, created.Promo)
	carts.AssertCalled(t, "ClearCart", mock.Anything, "ana@example.com")
}

func TestCreateBookingAppliesActivePromo(t *testing.T) {
	bookings := new(mockBookingsRepo)
	carts := new(mockCartRepo)
	catalog := new(mockCatalogRepo)
	svc := newTestBookingService(bookings, carts, catalog, nil)

	cart := &models.Cart{
		UserEmail: "ana@example.com",
		Items:     []models.CartItem{{ProductID: "p1", Title: "Catering", Price: 5000}},
	}
	carts.On("GetCartByEmail", mock.Anything, "ana@example.com").Return(cart, nil)
	carts.On("ClearCart", mock.Anything, "ana@example.com").Return(nil)

	promoID := primitive.NewObjectID()
	promo := &models.Promo{
		ID:            promoID,
		Name:          "Summer Promo",
		DiscountValue: 10,
		ValidFrom:     time.Now().AddDate(0, 0, -1),
		ValidUntil:    time.Now().AddDate(0, 0, 7),
	}
	catalog.On("GetPromoByID", mock.Anything, promoID).Return(promo, nil)

	var created *models.Booking
	bookings.On("CreateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*models.Booking) }).
		Return(&models.Booking{ID: primitive.NewObjectID()}, nil)

	submission := validSubmission()
	submission.PromoID = promoID.Hex()

	_, err := svc.CreateBooking(context.Background(), submission)
	assert.NoError(t, err)
	assert.Equal(t, 4500.0, created.TotalPrice)
	if assert.NotNil(t, created.Promo) {
		assert.Equal(t, "Summer Promo", created.Promo.Name)
		assert.Equal(t, 10.0, created.Promo.DiscountValue)
	}
}

func TestCreateBookingRejectsInactivePromo(t *testing.T) {
	bookings := new(mockBookingsRepo)
	carts := new(mockCartRepo)
	catalog := new(mockCatalogRepo)
	svc := newTestBookingService(bookings, carts, catalog, nil)

	cart := &models.Cart{
		UserEmail: "ana@example.com",
		Items:     []models.CartItem{{ProductID: "p1", Title: "Catering", Price: 5000}},
	}
	carts.On("GetCartByEmail", mock.Anything, "ana@example.com").Return(cart, nil)

	promoID := primitive.NewObjectID()
	expired := &models.Promo{
		ID:            promoID,
		Name:          "Old Promo",
		DiscountValue: 10,
		ValidFrom:     time.Now().AddDate(0, -2, 0),
		ValidUntil:    time.Now().AddDate(0, -1, 0),
	}
	catalog.On("GetPromoByID", mock.Anything, promoID).Return(expired, nil)

	submission := validSubmission()
	submission.PromoID = promoID.Hex()

	_, err := svc.CreateBooking(context.Background(), submission)
	assert.ErrorContains(t, err, "not active")
	bookings.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestCreateBookingRejectsEmptyCart(t *testing.T) {
	bookings := new(mockBookingsRepo)
	carts := new(mockCartRepo)
	catalog := new(mockCatalogRepo)
	svc := newTestBookingService(bookings, carts, catalog, nil)

	carts.On("GetCartByEmail", mock.Anything, "ana@example.com").
		Return(&models.Cart{UserEmail: "ana@example.com"}, nil)

	_, err := svc.CreateBooking(context.Background(), validSubmission())
	assert.ErrorContains(t, err, "cart is empty")
}

func TestTransitionPublishesStatusEvent(t *testing.T) {
	bookings := new(mockBookingsRepo)
	var published []queue.BookingStatusEvent
	publish := func(ctx context.Context, event queue.BookingStatusEvent) {
		published = append(published, event)
	}
	svc := newTestBookingService(bookings, new(mockCartRepo), new(mockCatalogRepo), publish)

	id := primitive.NewObjectID()
	bookings.On("GetBookingByID", mock.Anything, id).
		Return(&models.Booking{ID: id, Status: models.BookingPending}, nil)
	bookings.On("UpdateBookingStatus", mock.Anything, id, models.BookingPending, models.BookingApproved).
		Return(&models.Booking{ID: id, Status: models.BookingApproved, EventDate: time.Now()}, nil)

	_, err := svc.Transition(context.Background(), id, models.BookingApproved)
	assert.NoError(t, err)
	if assert.Len(t, published, 1) {
		assert.Equal(t, string(models.BookingPending), published[0].FromStatus)
		assert.Equal(t, string(models.BookingApproved), published[0].ToStatus)
	}
}

func TestResolveCancellationApprovedCancelsBooking(t *testing.T) {
	bookings := new(mockBookingsRepo)
	var published []queue.BookingStatusEvent
	publish := func(ctx context.Context, event queue.BookingStatusEvent) {
		published = append(published, event)
	}
	svc := newTestBookingService(bookings, new(mockCartRepo), new(mockCatalogRepo), publish)

	id := primitive.NewObjectID()
	bookings.On("GetBookingByID", mock.Anything, id).
		Return(&models.Booking{ID: id, Status: models.BookingApproved}, nil)
	bookings.On("ResolveCancellationRequest", mock.Anything, id, true, "ok").
		Return(&models.Booking{ID: id, Status: models.BookingCancelled, EventDate: time.Now()}, nil)

	updated, err := svc.ResolveCancellation(context.Background(), id, true, "ok")
	assert.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, updated.Status)
	if assert.Len(t, published, 1) {
		assert.Equal(t, string(models.BookingCancelled), published[0].ToStatus)
	}
}

func TestResolveCancellationRejectedDoesNotPublish(t *testing.T) {
	bookings := new(mockBookingsRepo)
	var published []queue.BookingStatusEvent
	publish := func(ctx context.Context, event queue.BookingStatusEvent) {
		published = append(published, event)
	}
	svc := newTestBookingService(bookings, new(mockCartRepo), new(mockCatalogRepo), publish)

	id := primitive.NewObjectID()
	bookings.On("GetBookingByID", mock.Anything, id).
		Return(&models.Booking{ID: id, Status: models.BookingApproved}, nil)
	rejected := &models.Booking{
		ID:                  id,
		Status:              models.BookingApproved,
		CancellationRequest: &models.CancellationRequest{Status: models.RequestRejected},
	}
	bookings.On("ResolveCancellationRequest", mock.Anything, id, false, "no").Return(rejected, nil)

	updated, err := svc.ResolveCancellation(context.Background(), id, false, "no")
	assert.NoError(t, err)
	assert.Equal(t, models.BookingApproved, updated.Status)
	assert.Empty(t, published)
}

func TestRequestRescheduleRejectsPastDate(t *testing.T) {
	bookings := new(mockBookingsRepo)
	svc := newTestBookingService(bookings, new(mockCartRepo), new(mockCatalogRepo), nil)

	req := &models.RescheduleRequest{
		Reason:       "venue conflict",
		ProposedDate: time.Now().AddDate(0, 0, -3),
	}
	_, err := svc.RequestReschedule(context.Background(), primitive.NewObjectID(), "ana@example.com", req)
	assert.ErrorContains(t, err, "past")
	bookings.AssertNotCalled(t, "SubmitRescheduleRequest", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestCancellationChecksOwnership(t *testing.T) {
	bookings := new(mockBookingsRepo)
	svc := newTestBookingService(bookings, new(mockCartRepo), new(mockCatalogRepo), nil)

	id := primitive.NewObjectID()
	bookings.On("GetBookingByID", mock.Anything, id).
		Return(&models.Booking{ID: id, CustomerEmail: "owner@example.com"}, nil)

	req := &models.CancellationRequest{Reason: "change of plans"}
	_, err := svc.RequestCancellation(context.Background(), id, "intruder@example.com", req)
	assert.ErrorContains(t, err, "does not belong")
	bookings.AssertNotCalled(t, "SubmitCancellationRequest", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitPaymentDerivesStatusServerSide(t *testing.T) {
	bookings := new(mockBookingsRepo)
	svc := newTestBookingService(bookings, new(mockCartRepo), new(mockCatalogRepo), nil)

	id := primitive.NewObjectID()
	bookings.On("GetBookingByID", mock.Anything, id).
		Return(&models.Booking{ID: id, CustomerEmail: "ana@example.com", Status: models.BookingApproved, TotalPrice: 5000}, nil)

	var saved *models.PaymentDetails
	bookings.On("SetPaymentDetails", mock.Anything, id, mock.AnythingOfType("*models.PaymentDetails")).
		Run(func(args mock.Arguments) { saved = args.Get(2).(*models.PaymentDetails) }).
		Return(&models.Booking{ID: id}, nil)

	form := &PaymentForm{
		PaymentMode: "gcash",
		AmountPaid:  2500,
		PaymentDate: time.Now(),
	}
	_, err := svc.SubmitPayment(context.Background(), id, "ana@example.com", form)
	assert.NoError(t, err)
	if assert.NotNil(t, saved) {
		assert.Equal(t, models.PaymentPartiallyPaid, saved.PaymentStatus)
	}
}

func TestSubmitPaymentRejectsCancelledBooking(t *testing.T) {
	bookings := new(mockBookingsRepo)
	svc := newTestBookingService(bookings, new(mockCartRepo), new(mockCatalogRepo), nil)

	id := primitive.NewObjectID()
	bookings.On("GetBookingByID", mock.Anything, id).
		Return(&models.Booking{ID: id, CustomerEmail: "ana@example.com", Status: models.BookingCancelled, TotalPrice: 5000}, nil)

	form := &PaymentForm{PaymentMode: "gcash", AmountPaid: 5000, PaymentDate: time.Now()}
	_, err := svc.SubmitPayment(context.Background(), id, "ana@example.com", form)
	assert.ErrorContains(t, err, "cancelled")
}
