package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/D4RKPR1NC366/venuevista-sub001/internal/models"
)

// StartBookingConsumer connects to RabbitMQ, declares the durable
// booking.status queue and consumes events, materializing one stored
// notification for the customer and one per referenced supplier. It runs a
// reconnect loop with backoff and never stops the server: bad payloads are
// rejected without requeue, broker outages are retried.
func StartBookingConsumer(logger *slog.Logger, notifications models.NotificationsRepo, accounts models.AccountRepo) {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(brokerURL())
		if err != nil {
			logger.Warn("booking consumer dial failed", "error", err, "retry_in", backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := consumeLoop(conn, logger, notifications, accounts); err != nil {
			logger.Warn("booking consumer loop ended", "error", err)
			time.Sleep(2 * time.Second)
		}
	}
}

func consumeLoop(conn *amqp.Connection, logger *slog.Logger, notifications models.NotificationsRepo, accounts models.AccountRepo) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		logger.Warn("booking consumer set QoS failed", "error", err)
	}

	if _, err := ch.QueueDeclare(bookingQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(bookingQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleMessage(d.Body, notifications, accounts); err != nil {
			logger.Error("booking consumer handle message failed", "error", err)
			_ = d.Nack(false, false) // reject, no requeue, avoids tight loops
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func handleMessage(body []byte, notifications models.NotificationsRepo, accounts models.AccountRepo) error {
	var ev BookingStatusEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	title := fmt.Sprintf("Booking %s", ev.ToStatus)
	message := fmt.Sprintf("Your %s booking on %s at %s is now %s.",
		ev.EventType, ev.EventDate, ev.Venue, ev.ToStatus)

	if _, err := notifications.CreateNotification(ctx, &models.Notification{
		RecipientEmail: ev.CustomerEmail,
		Title:          title,
		Message:        message,
		Type:           "booking_update",
	}); err != nil {
		return err
	}

	for _, supplierID := range ev.SupplierIDs {
		email, err := supplierEmail(ctx, accounts, supplierID)
		if err != nil || email == "" {
			continue
		}
		supplierMsg := fmt.Sprintf("The %s booking for %s on %s is now %s.",
			ev.EventType, ev.CustomerName, ev.EventDate, ev.ToStatus)
		if _, err := notifications.CreateNotification(ctx, &models.Notification{
			RecipientEmail: email,
			Title:          title,
			Message:        supplierMsg,
			Type:           "booking_update",
		}); err != nil {
			return err
		}
	}
	return nil
}

func supplierEmail(ctx context.Context, accounts models.AccountRepo, supplierID string) (string, error) {
	id, err := primitive.ObjectIDFromHex(supplierID)
	if err != nil {
		return "", err
	}
	account, err := accounts.GetAccountByID(ctx, id)
	if err != nil {
		return "", err
	}
	return account.Email, nil
}
