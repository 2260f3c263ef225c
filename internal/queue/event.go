// Package queue defines the message payloads exchanged over the broker and
// the background consumer that turns them into stored notifications.
package queue

// BookingStatusEvent is published whenever a booking moves between status
// partitions. It carries enough for downstream consumers to notify the
// customer and the referenced suppliers without querying the database.
type BookingStatusEvent struct {
	BookingID     string   `json:"booking_id"`
	CustomerName  string   `json:"customer_name"`
	CustomerEmail string   `json:"customer_email"`
	EventType     string   `json:"event_type"`
	EventDate     string   `json:"event_date"`
	Venue         string   `json:"venue"`
	TotalPrice    float64  `json:"total_price"`
	FromStatus    string   `json:"from_status"`
	ToStatus      string   `json:"to_status"`
	SupplierIDs   []string `json:"supplier_ids,omitempty"`
	ChangedAt     string   `json:"changed_at"`
}
