package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/D4RKPR1NC366/venuevista-sub001/internal/models"
)

func newTestNotificationService(notes *mockNotificationsRepo, schedules *mockSchedulesRepo, bookings *mockBookingsRepo, today time.Time) *NotificationService {
	svc := NewNotificationService(notes, schedules, bookings)
	svc.now = func() time.Time { return today }
	return svc
}

func TestFeedWindowFilter(t *testing.T) {
	notes := new(mockNotificationsRepo)
	schedules := new(mockSchedulesRepo)
	bookings := new(mockBookingsRepo)
	today := time.Date(2025, 6, 8, 9, 0, 0, 0, time.UTC)
	svc := newTestNotificationService(notes, schedules, bookings, today)

	inWindow := &models.Schedule{
		ID:            primitive.NewObjectID(),
		RecipientType: models.RecipientCustomer,
		PersonEmail:   "ana@example.com",
		Title:         "Final food tasting",
		Date:          time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Status:        models.SchedulePending,
	}
	farOut := &models.Schedule{
		ID:            primitive.NewObjectID(),
		RecipientType: models.RecipientCustomer,
		PersonEmail:   "ana@example.com",
		Title:         "Venue walkthrough",
		Date:          time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		Status:        models.SchedulePending,
	}
	schedules.On("ListSchedulesByStatus", mock.Anything, models.SchedulePending).
		Return([]*models.Schedule{inWindow, farOut}, nil)
	schedules.On("ListSchedulesByStatus", mock.Anything, models.ScheduleAccepted).
		Return([]*models.Schedule{}, nil)
	bookings.On("ListBookingsByCustomer", mock.Anything, "ana@example.com").
		Return([]*models.Booking{}, nil)
	notes.On("ListNotificationsByRecipient", mock.Anything, "ana@example.com").
		Return([]*models.Notification{}, nil)

	feed, err := svc.Feed(context.Background(), FeedQuery{
		Email:  "ana@example.com",
		Role:   models.RoleCustomer,
		Window: "1week",
	})
	assert.NoError(t, err)
	if assert.Len(t, feed, 1) {
		assert.Equal(t, "Final food tasting", feed[0].Title)
		assert.Equal(t, FeedPendingSchedule, feed[0].Type)
	}
}

func TestFeedSupplierPendingBypassesWindow(t *testing.T) {
	notes := new(mockNotificationsRepo)
	schedules := new(mockSchedulesRepo)
	bookings := new(mockBookingsRepo)
	today := time.Date(2025, 6, 8, 9, 0, 0, 0, time.UTC)
	svc := newTestNotificationService(notes, schedules, bookings, today)

	farOut := &models.Schedule{
		ID:            primitive.NewObjectID(),
		RecipientType: models.RecipientSupplier,
		SupplierID:    "sup-1",
		PersonEmail:   "chef@fiestafoods.ph",
		Title:         "Ocular visit",
		Date:          time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC),
		Status:        models.SchedulePending,
	}
	schedules.On("ListSchedulesByStatus", mock.Anything, models.SchedulePending).
		Return([]*models.Schedule{farOut}, nil)
	schedules.On("ListSchedulesByStatus", mock.Anything, models.ScheduleAccepted).
		Return([]*models.Schedule{}, nil)
	bookings.On("ListBookingsBySupplier", mock.Anything, "sup-1").
		Return([]*models.Booking{}, nil)
	notes.On("ListNotificationsByRecipient", mock.Anything, "chef@fiestafoods.ph").
		Return([]*models.Notification{}, nil)

	feed, err := svc.Feed(context.Background(), FeedQuery{
		Email:      "chef@fiestafoods.ph",
		Role:       models.RoleSupplier,
		SupplierID: "sup-1",
		Window:     "1week",
	})
	assert.NoError(t, err)
	if assert.Len(t, feed, 1) {
		assert.Equal(t, "Ocular visit", feed[0].Title)
	}
}

func TestFeedConcatenationOrder(t *testing.T) {
	notes := new(mockNotificationsRepo)
	schedules := new(mockSchedulesRepo)
	bookings := new(mockBookingsRepo)
	today := time.Date(2025, 6, 8, 9, 0, 0, 0, time.UTC)
	svc := newTestNotificationService(notes, schedules, bookings, today)

	pending := &models.Schedule{
		ID:            primitive.NewObjectID(),
		RecipientType: models.RecipientCustomer,
		PersonEmail:   "ana@example.com",
		Title:         "Pending item",
		Date:          time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
		Status:        models.SchedulePending,
	}
	accepted := &models.Schedule{
		ID:            primitive.NewObjectID(),
		RecipientType: models.RecipientCustomer,
		PersonEmail:   "ana@example.com",
		Title:         "Accepted item",
		Date:          time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Status:        models.ScheduleAccepted,
	}
	booking := &models.Booking{
		ID:            primitive.NewObjectID(),
		CustomerName:  "Ana Cruz",
		CustomerEmail: "ana@example.com",
		EventType:     "Wedding",
		EventDate:     time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		Status:        models.BookingApproved,
	}
	stored := &models.Notification{
		ID:             primitive.NewObjectID(),
		RecipientEmail: "ana@example.com",
		Title:          "Stored note",
		Date:           time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
	}

	schedules.On("ListSchedulesByStatus", mock.Anything, models.SchedulePending).
		Return([]*models.Schedule{pending}, nil)
	schedules.On("ListSchedulesByStatus", mock.Anything, models.ScheduleAccepted).
		Return([]*models.Schedule{accepted}, nil)
	bookings.On("ListBookingsByCustomer", mock.Anything, "ana@example.com").
		Return([]*models.Booking{booking}, nil)
	notes.On("ListNotificationsByRecipient", mock.Anything, "ana@example.com").
		Return([]*models.Notification{stored}, nil)

	feed, err := svc.Feed(context.Background(), FeedQuery{
		Email:  "ana@example.com",
		Role:   models.RoleCustomer,
		Window: "1week",
	})
	assert.NoError(t, err)
	if assert.Len(t, feed, 4) {
		// Source order is fixed, never re-sorted by date.
		assert.Equal(t, FeedPendingSchedule, feed[0].Type)
		assert.Equal(t, FeedAcceptedSchedule, feed[1].Type)
		assert.Equal(t, FeedBooking, feed[2].Type)
		assert.Equal(t, FeedNotification, feed[3].Type)
	}
}

func TestFeedExcludesCancelledBookings(t *testing.T) {
	notes := new(mockNotificationsRepo)
	schedules := new(mockSchedulesRepo)
	bookings := new(mockBookingsRepo)
	today := time.Date(2025, 6, 8, 9, 0, 0, 0, time.UTC)
	svc := newTestNotificationService(notes, schedules, bookings, today)

	cancelled := &models.Booking{
		ID:            primitive.NewObjectID(),
		CustomerName:  "Ana Cruz",
		CustomerEmail: "ana@example.com",
		EventType:     "Birthday",
		EventDate:     time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		Status:        models.BookingCancelled,
	}
	schedules.On("ListSchedulesByStatus", mock.Anything, models.SchedulePending).
		Return([]*models.Schedule{}, nil)
	schedules.On("ListSchedulesByStatus", mock.Anything, models.ScheduleAccepted).
		Return([]*models.Schedule{}, nil)
	bookings.On("ListBookingsByCustomer", mock.Anything, "ana@example.com").
		Return([]*models.Booking{cancelled}, nil)
	notes.On("ListNotificationsByRecipient", mock.Anything, "ana@example.com").
		Return([]*models.Notification{}, nil)

	feed, err := svc.Feed(context.Background(), FeedQuery{
		Email:  "ana@example.com",
		Role:   models.RoleCustomer,
		Window: "1week",
	})
	assert.NoError(t, err)
	assert.Empty(t, feed)
}

func TestFeedRejectsUnknownWindow(t *testing.T) {
	svc := NewNotificationService(new(mockNotificationsRepo), new(mockSchedulesRepo), new(mockBookingsRepo))

	_, err := svc.Feed(context.Background(), FeedQuery{Email: "ana@example.com", Window: "1year"})
	assert.ErrorContains(t, err, "unknown window")
}
