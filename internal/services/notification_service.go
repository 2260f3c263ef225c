package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/D4RKPR1NC366/venuevista-sub001/internal/models"
)

// Feed item type tags. These are synthetic: they mark which source a feed
// entry came from, not a stored field.
const (
	FeedPendingSchedule  = "pending_schedule"
	FeedAcceptedSchedule = "accepted_schedule"
	FeedBooking          = "booking"
	FeedNotification     = "notification"
)

// FeedItem is one entry of the aggregated notification feed.
type FeedItem struct {
	Type    string    `json:"type"`
	RefID   string    `json:"ref_id"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status,omitempty"`
	IsRead  bool      `json:"is_read,omitempty"`
}

// FeedQuery identifies the requesting user and the rolling window.
type FeedQuery struct {
	Email       string
	FullName    string
	Role        models.Role
	SupplierID  string
	CompanyName string
	Window      string // "1week" | "2weeks" | "1month"
}

type NotificationService struct {
	notificationsRepo models.NotificationsRepo
	schedulesRepo     models.SchedulesRepo
	bookingsRepo      models.BookingsRepo
	now               func() time.Time
}

func NewNotificationService(notificationsRepo models.NotificationsRepo, schedulesRepo models.SchedulesRepo, bookingsRepo models.BookingsRepo) *NotificationService {
	return &NotificationService{
		notificationsRepo: notificationsRepo,
		schedulesRepo:     schedulesRepo,
		bookingsRepo:      bookingsRepo,
		now:               time.Now,
	}
}

func windowDuration(window string) (time.Duration, error) {
	switch window {
	case "", "1week":
		return 7 * 24 * time.Hour, nil
	case "2weeks":
		return 14 * 24 * time.Hour, nil
	case "1month":
		return 30 * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("unknown window %q", window)
	}
}

// Feed builds the aggregated notification feed for one user. Sources are
// concatenated in a fixed order (pending schedules, accepted schedules, the
// user's bookings, stored notifications) and never re-sorted afterwards.
// Items outside the rolling window are dropped, except pending schedule
// items shown to their supplier, which always surface.
func (ns *NotificationService) Feed(ctx context.Context, query FeedQuery) ([]FeedItem, error) {
	window, err := windowDuration(query.Window)
	if err != nil {
		return nil, err
	}

	now := ns.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	cutoff := today.Add(window)
	inWindow := func(date time.Time) bool {
		return !date.Before(today) && date.Before(cutoff)
	}

	email := strings.ToLower(strings.TrimSpace(query.Email))
	isSupplier := query.Role == models.RoleSupplier

	feed := []FeedItem{}

	pending, err := ns.schedulesRepo.ListSchedulesByStatus(ctx, models.SchedulePending)
	if err != nil {
		return nil, err
	}
	for _, s := range pending {
		if !ns.scheduleMatches(s, query, email) {
			continue
		}
		// A supplier must see its own pending items regardless of date,
		// otherwise a far-out request could never be accepted.
		bypass := isSupplier && s.RecipientType == models.RecipientSupplier && s.SupplierID == query.SupplierID
		if !bypass && !inWindow(s.Date) {
			continue
		}
		feed = append(feed, FeedItem{
			Type:    FeedPendingSchedule,
			RefID:   s.ID.Hex(),
			Title:   s.Title,
			Message: scheduleMessage(s),
			Date:    s.Date,
			Status:  string(s.Status),
		})
	}

	accepted, err := ns.schedulesRepo.ListSchedulesByStatus(ctx, models.ScheduleAccepted)
	if err != nil {
		return nil, err
	}
	for _, s := range accepted {
		if !ns.scheduleMatches(s, query, email) || !inWindow(s.Date) {
			continue
		}
		feed = append(feed, FeedItem{
			Type:    FeedAcceptedSchedule,
			RefID:   s.ID.Hex(),
			Title:   s.Title,
			Message: scheduleMessage(s),
			Date:    s.Date,
			Status:  string(s.Status),
		})
	}

	bookings, err := ns.listBookingsFor(ctx, query, email, isSupplier)
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		if b.Status == models.BookingCancelled || !inWindow(b.EventDate) {
			continue
		}
		feed = append(feed, FeedItem{
			Type:    FeedBooking,
			RefID:   b.ID.Hex(),
			Title:   fmt.Sprintf("%s on %s", b.EventType, b.EventDate.Format("Jan 2, 2006")),
			Message: fmt.Sprintf("Booking for %s at %s", b.CustomerName, b.Venue),
			Date:    b.EventDate,
			Status:  string(b.Status),
		})
	}

	stored, err := ns.notificationsRepo.ListNotificationsByRecipient(ctx, email)
	if err != nil {
		return nil, err
	}
	for _, n := range stored {
		if !inWindow(n.Date) {
			continue
		}
		feed = append(feed, FeedItem{
			Type:    FeedNotification,
			RefID:   n.ID.Hex(),
			Title:   n.Title,
			Message: n.Message,
			Date:    n.Date,
			IsRead:  n.IsRead,
		})
	}

	return feed, nil
}

func (ns *NotificationService) scheduleMatches(s *models.Schedule, query FeedQuery, email string) bool {
	if query.Role == models.RoleSupplier && s.RecipientType == models.RecipientSupplier {
		if query.SupplierID != "" && s.SupplierID == query.SupplierID {
			return true
		}
		if query.CompanyName != "" && s.CompanyName == query.CompanyName {
			return true
		}
	}
	if strings.ToLower(s.PersonEmail) == email {
		return true
	}
	return query.FullName != "" && s.PersonName == query.FullName
}

func (ns *NotificationService) listBookingsFor(ctx context.Context, query FeedQuery, email string, isSupplier bool) ([]*models.Booking, error) {
	if isSupplier && query.SupplierID != "" {
		return ns.bookingsRepo.ListBookingsBySupplier(ctx, query.SupplierID)
	}
	return ns.bookingsRepo.ListBookingsByCustomer(ctx, email)
}

func scheduleMessage(s *models.Schedule) string {
	if s.Description != "" {
		return s.Description
	}
	if s.Location != "" {
		return fmt.Sprintf("Scheduled at %s", s.Location)
	}
	return "Scheduled appointment"
}

func (ns *NotificationService) ListStored(ctx context.Context, email string) ([]*models.Notification, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("recipient email is required")
	}
	return ns.notificationsRepo.ListNotificationsByRecipient(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (ns *NotificationService) MarkRead(ctx context.Context, id primitive.ObjectID, email string) error {
	return ns.notificationsRepo.MarkNotificationRead(ctx, id, strings.ToLower(strings.TrimSpace(email)))
}
