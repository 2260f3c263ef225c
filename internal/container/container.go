package container

import (
	"context"
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/D4RKPR1NC366/venuevista-sub001/internal/models"
	"github.com/D4RKPR1NC366/venuevista-sub001/internal/queue"
	"github.com/D4RKPR1NC366/venuevista-sub001/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Logger     *slog.Logger
	Cloudinary *cloudinary.Cloudinary

	MongoDBClient *mongo.Client
	RedisClient   *redis.Client

	Repo *models.MongodbRepo

	AccountService      *services.AccountService
	CatalogService      *services.CatalogService
	CartService         *services.CartService
	BookingService      *services.BookingService
	ReviewService       *services.ReviewService
	ScheduleService     *services.ScheduleService
	NotificationService *services.NotificationService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cloudinary *cloudinary.Cloudinary,
	mongoDBClient *mongo.Client,
	redisClient *redis.Client,
) *Container {
	repo := models.MongodbNewRepo(mongoDBClient)

	publish := func(ctx context.Context, event queue.BookingStatusEvent) {
		// Failures are already logged by the publisher; a lost event only
		// delays a notification.
		_ = queue.PublishBookingStatus(ctx, logger, event)
	}

	accountService := services.NewAccountService(repo, redisClient, logger)
	catalogService := services.NewCatalogService(repo)
	cartService := services.NewCartService(repo)
	bookingService := services.NewBookingService(repo, repo, repo, publish, logger)
	reviewService := services.NewReviewService(repo, repo)
	scheduleService := services.NewScheduleService(repo, repo)
	notificationService := services.NewNotificationService(repo, repo, repo)

	return &Container{
		Logger:              logger,
		Cloudinary:          cloudinary,
		MongoDBClient:       mongoDBClient,
		RedisClient:         redisClient,
		Repo:                repo,
		AccountService:      accountService,
		CatalogService:      catalogService,
		CartService:         cartService,
		BookingService:      bookingService,
		ReviewService:       reviewService,
		ScheduleService:     scheduleService,
		NotificationService: notificationService,
	}
}
