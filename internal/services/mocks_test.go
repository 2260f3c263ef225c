package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/D4RKPR1NC366/venuevista-sub001/internal/models"
)

type mockBookingsRepo struct{ mock.Mock }

func (m *mockBookingsRepo) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockBookingsRepo) GetBookingByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockBookingsRepo) ListBookingsByStatus(ctx context.Context, status models.BookingStatus, offset, limit int) ([]*models.Booking, int, error) {
	args := m.Called(ctx, status, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*models.Booking), args.Int(1), args.Error(2)
}

func (m *mockBookingsRepo) ListBookingsByCustomer(ctx context.Context, email string) ([]*models.Booking, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Booking), args.Error(1)
}

func (m *mockBookingsRepo) ListBookingsBySupplier(ctx context.Context, supplierID string) ([]*models.Booking, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Booking), args.Error(1)
}

func (m *mockBookingsRepo) UpdateBookingStatus(ctx context.Context, id primitive.ObjectID, from, to models.BookingStatus) (*models.Booking, error) {
	args := m.Called(ctx, id, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockBookingsRepo) SubmitCancellationRequest(ctx context.Context, id primitive.ObjectID, req *models.CancellationRequest) (*models.Booking, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockBookingsRepo) ResolveCancellationRequest(ctx context.Context, id primitive.ObjectID, approve bool, adminNotes string) (*models.Booking, error) {
	args := m.Called(ctx, id, approve, adminNotes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockBookingsRepo) SubmitRescheduleRequest(ctx context.Context, id primitive.ObjectID, req *models.RescheduleRequest) (*models.Booking, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockBookingsRepo) ResolveRescheduleRequest(ctx context.Context, id primitive.ObjectID, approve bool, adminNotes string) (*models.Booking, error) {
	args := m.Called(ctx, id, approve, adminNotes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockBookingsRepo) SetPaymentDetails(ctx context.Context, id primitive.ObjectID, details *models.PaymentDetails) (*models.Booking, error) {
	args := m.Called(ctx, id, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockBookingsRepo) CountBookingsByStatus(ctx context.Context) (map[models.BookingStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[models.BookingStatus]int64), args.Error(1)
}

type mockCartRepo struct{ mock.Mock }

func (m *mockCartRepo) AddCartItem(ctx context.Context, userEmail string, item models.CartItem) (*models.Cart, error) {
	args := m.Called(ctx, userEmail, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *mockCartRepo) GetCartByEmail(ctx context.Context, userEmail string) (*models.Cart, error) {
	args := m.Called(ctx, userEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *mockCartRepo) RemoveCartItem(ctx context.Context, userEmail, productID string) error {
	return m.Called(ctx, userEmail, productID).Error(0)
}

func (m *mockCartRepo) ClearCart(ctx context.Context, userEmail string) error {
	return m.Called(ctx, userEmail).Error(0)
}

type mockCatalogRepo struct{ mock.Mock }

func (m *mockCatalogRepo) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *mockCatalogRepo) GetProductByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *mockCatalogRepo) ListProducts(ctx context.Context, filter map[string]interface{}, offset, limit int) ([]*models.Product, int, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*models.Product), args.Int(1), args.Error(2)
}

func (m *mockCatalogRepo) UpdateProduct(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*models.Product, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *mockCatalogRepo) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCatalogRepo) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *mockCatalogRepo) ListCategories(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Category), args.Error(1)
}

func (m *mockCatalogRepo) CreateEventType(ctx context.Context, eventType *models.EventType) (*models.EventType, error) {
	args := m.Called(ctx, eventType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EventType), args.Error(1)
}

func (m *mockCatalogRepo) ListEventTypes(ctx context.Context) ([]*models.EventType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.EventType), args.Error(1)
}

func (m *mockCatalogRepo) CreatePromo(ctx context.Context, promo *models.Promo) (*models.Promo, error) {
	args := m.Called(ctx, promo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Promo), args.Error(1)
}

func (m *mockCatalogRepo) GetPromoByID(ctx context.Context, id primitive.ObjectID) (*models.Promo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Promo), args.Error(1)
}

func (m *mockCatalogRepo) ListPromos(ctx context.Context) ([]*models.Promo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Promo), args.Error(1)
}

func (m *mockCatalogRepo) DeletePromo(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type mockSchedulesRepo struct{ mock.Mock }

func (m *mockSchedulesRepo) CreateSchedule(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error) {
	args := m.Called(ctx, schedule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Schedule), args.Error(1)
}

func (m *mockSchedulesRepo) GetScheduleByID(ctx context.Context, id primitive.ObjectID) (*models.Schedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Schedule), args.Error(1)
}

func (m *mockSchedulesRepo) ListSchedules(ctx context.Context) ([]*models.Schedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Schedule), args.Error(1)
}

func (m *mockSchedulesRepo) ListSchedulesByStatus(ctx context.Context, status models.ScheduleStatus) ([]*models.Schedule, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Schedule), args.Error(1)
}

func (m *mockSchedulesRepo) SetScheduleStatus(ctx context.Context, id primitive.ObjectID, supplierID string, status models.ScheduleStatus) (*models.Schedule, error) {
	args := m.Called(ctx, id, supplierID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Schedule), args.Error(1)
}

type mockNotificationsRepo struct{ mock.Mock }

func (m *mockNotificationsRepo) CreateNotification(ctx context.Context, notification *models.Notification) (*models.Notification, error) {
	args := m.Called(ctx, notification)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func (m *mockNotificationsRepo) ListNotificationsByRecipient(ctx context.Context, email string) ([]*models.Notification, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Notification), args.Error(1)
}

func (m *mockNotificationsRepo) MarkNotificationRead(ctx context.Context, id primitive.ObjectID, email string) error {
	return m.Called(ctx, id, email).Error(0)
}

type mockReviewsRepo struct{ mock.Mock }

func (m *mockReviewsRepo) CreateReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *mockReviewsRepo) ListReviews(ctx context.Context, offset, limit int) ([]*models.Review, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*models.Review), args.Int(1), args.Error(2)
}

func (m *mockReviewsRepo) ListReviewsByProduct(ctx context.Context, productID string) ([]*models.Review, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Review), args.Error(1)
}

func (m *mockReviewsRepo) ReviewExistsForBooking(ctx context.Context, bookingID string) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

type mockAccountRepo struct{ mock.Mock }

func (m *mockAccountRepo) CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *mockAccountRepo) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *mockAccountRepo) GetAccountByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *mockAccountRepo) UpdateAccount(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*models.Account, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *mockAccountRepo) ListSuppliers(ctx context.Context, onlyAvailable bool) ([]*models.Account, error) {
	args := m.Called(ctx, onlyAvailable)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Account), args.Error(1)
}
