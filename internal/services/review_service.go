package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/D4RKPR1NC366/venuevista-sub001/internal/connect"
	"github.com/D4RKPR1NC366/venuevista-sub001/internal/helpers"
	"github.com/D4RKPR1NC366/venuevista-sub001/internal/models"
)

type ReviewService struct {
	reviewsRepo  models.ReviewsRepo
	bookingsRepo models.BookingsRepo
}

func NewReviewService(reviewsRepo models.ReviewsRepo, bookingsRepo models.BookingsRepo) *ReviewService {
	return &ReviewService{reviewsRepo: reviewsRepo, bookingsRepo: bookingsRepo}
}

// CreateReview stores a customer review. When the review is tied to a booking
// the booking must be finished, belong to the caller, and not be reviewed yet.
func (rs *ReviewService) CreateReview(ctx context.Context, userEmail string, review *models.Review) (*models.Review, error) {
	review.Sanitize()
	if err := models.Validate.Struct(review); err != nil {
		return nil, fmt.Errorf("invalid review data: %v", err)
	}

	if review.BookingID != "" {
		bookingID, err := primitive.ObjectIDFromHex(review.BookingID)
		if err != nil {
			return nil, fmt.Errorf("invalid booking ID format")
		}
		booking, err := rs.bookingsRepo.GetBookingByID(ctx, bookingID)
		if err != nil {
			return nil, err
		}
		if booking.CustomerEmail != strings.ToLower(strings.TrimSpace(userEmail)) {
			return nil, fmt.Errorf("booking does not belong to this customer")
		}
		if booking.Status != models.BookingFinished {
			return nil, fmt.Errorf("only finished bookings can be reviewed")
		}
		exists, err := rs.reviewsRepo.ReviewExistsForBooking(ctx, review.BookingID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("booking already has a review: %w", models.ErrConflict)
		}
	}

	if len(review.Images) > 0 && connect.Cld != nil {
		urls, err := helpers.UploadImages(ctx, connect.Cld, review.Images, helpers.ReviewFolder)
		if err != nil {
			return nil, fmt.Errorf("failed to upload review images: %v", err)
		}
		review.Images = urls
	}

	if review.Date.IsZero() {
		review.Date = time.Now()
	}
	return rs.reviewsRepo.CreateReview(ctx, review)
}

func (rs *ReviewService) ListReviews(ctx context.Context, offset, limit int) ([]*models.Review, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}
	return rs.reviewsRepo.ListReviews(ctx, offset, limit)
}

func (rs *ReviewService) ListReviewsByProduct(ctx context.Context, productID string) ([]*models.Review, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, fmt.Errorf("product ID is required")
	}
	return rs.reviewsRepo.ListReviewsByProduct(ctx, productID)
}
