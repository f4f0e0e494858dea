// Package queue defines the booking event payload exchanged over the
// message broker, plus the publisher and the background consumer.
package queue

// Event types carried in BookingEvent.Type.
const (
    EventBookingCreated  = "booking.created"
    EventBookingAccepted = "booking.accepted"
    EventBookingRejected = "booking.rejected"
)

// BookingEvent is published when a booking is created or decided.  It
// carries enough denormalized detail for downstream consumers to log or
// notify without querying the primary database.
type BookingEvent struct {
    Type       string `json:"type"`
    BookingID  uint64 `json:"booking_id"`
    Reference  string `json:"reference"`
    UserID     uint64 `json:"user_id"`
    CarID      uint64 `json:"car_id"`
    CarTitle   string `json:"car_title"`
    DateFrom   string `json:"date_from"`
    DateTo     string `json:"date_to"`
    TotalDays  int    `json:"total_days"`
    TotalCents uint32 `json:"total_cents"`
    OccurredAt string `json:"occurred_at"`
}
