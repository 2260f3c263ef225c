package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/D4RKPR1NC366/venuevista-sub001/internal/models"
)

func TestCreateReviewRequiresFinishedBooking(t *testing.T) {
	reviews := new(mockReviewsRepo)
	bookings := new(mockBookingsRepo)
	svc := NewReviewService(reviews, bookings)

	bookingID := primitive.NewObjectID()
	bookings.On("GetBookingByID", mock.Anything, bookingID).
		Return(&models.Booking{ID: bookingID, CustomerEmail: "ana@example.com", Status: models.BookingApproved}, nil)

	review := &models.Review{Name: "Ana", Rating: 5, Comment: "great", BookingID: bookingID.Hex()}
	_, err := svc.CreateReview(context.Background(), "ana@example.com", review)
	assert.ErrorContains(t, err, "finished")
	reviews.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything)
}

func TestCreateReviewRejectsSecondReview(t *testing.T) {
	reviews := new(mockReviewsRepo)
	bookings := new(mockBookingsRepo)
	svc := NewReviewService(reviews, bookings)

	bookingID := primitive.NewObjectID()
	bookings.On("GetBookingByID", mock.Anything, bookingID).
		Return(&models.Booking{ID: bookingID, CustomerEmail: "ana@example.com", Status: models.BookingFinished}, nil)
	reviews.On("ReviewExistsForBooking", mock.Anything, bookingID.Hex()).Return(true, nil)

	review := &models.Review{Name: "Ana", Rating: 4, BookingID: bookingID.Hex()}
	_, err := svc.CreateReview(context.Background(), "ana@example.com", review)
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestCreateReviewChecksBookingOwnership(t *testing.T) {
	reviews := new(mockReviewsRepo)
	bookings := new(mockBookingsRepo)
	svc := NewReviewService(reviews, bookings)

	bookingID := primitive.NewObjectID()
	bookings.On("GetBookingByID", mock.Anything, bookingID).
		Return(&models.Booking{ID: bookingID, CustomerEmail: "owner@example.com", Status: models.BookingFinished}, nil)

	review := &models.Review{Name: "Mallory", Rating: 1, BookingID: bookingID.Hex()}
	_, err := svc.CreateReview(context.Background(), "intruder@example.com", review)
	assert.ErrorContains(t, err, "does not belong")
}

func TestCreateReviewWithoutBookingSkipsGuards(t *testing.T) {
	reviews := new(mockReviewsRepo)
	bookings := new(mockBookingsRepo)
	svc := NewReviewService(reviews, bookings)

	reviews.On("CreateReview", mock.Anything, mock.AnythingOfType("*models.Review")).
		Return(&models.Review{Name: "Ana", Rating: 5}, nil)

	review := &models.Review{Name: "  Ana  ", Rating: 5, Comment: "walk-in visit"}
	created, err := svc.CreateReview(context.Background(), "ana@example.com", review)
	assert.NoError(t, err)
	assert.NotNil(t, created)
	bookings.AssertNotCalled(t, "GetBookingByID", mock.Anything, mock.Anything)
}
