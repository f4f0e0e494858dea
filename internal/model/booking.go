package model

import "time"

// Booking statuses.  A booking starts Pending and is decided exactly once
// by an admin or manager; decided bookings are immutable.
const (
    BookingPending  = "Pending"
    BookingAccepted = "Accepted"
    BookingRejected = "Rejected"
)

// Booking records a client's rental request for a car over a date range.
//
// Fields:
//  ID         – primary key identifier.
//  Reference  – opaque reference code handed to the client.
//  UserID     – client who placed the booking.
//  CarID      – car being booked.
//  DateFrom   – first rental day (inclusive).
//  DateTo     – last rental day (inclusive).
//  TotalDays  – number of billable days, computed server-side.
//  TotalCents – total price in cents, computed server-side.
//  Status     – Pending, Accepted or Rejected.
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp.
type Booking struct {
    ID         uint64    `json:"id"`
    Reference  string    `json:"reference"`
    UserID     uint64    `json:"user_id"`
    CarID      uint64    `json:"car_id"`
    DateFrom   time.Time `json:"date_from"`
    DateTo     time.Time `json:"date_to"`
    TotalDays  int       `json:"total_days"`
    TotalCents uint32    `json:"total_cents"`
    Status     string    `json:"status"`
    CreatedAt  time.Time `json:"created_at"`
    UpdatedAt  time.Time `json:"updated_at"`
}

// ValidBookingTransition reports whether a booking may move from one status
// to another.  Only Pending bookings can be decided, and a decision is final.
func ValidBookingTransition(from, to string) bool {
    if from != BookingPending {
        return false
    }
    return to == BookingAccepted || to == BookingRejected
}

// RentalDays returns the inclusive day count between from and to, or 0 when
// the range is inverted.  Both bounds are treated as whole days.  The count
// is derived from Unix seconds at UTC midnight rather than a time.Duration,
// which would saturate on ranges past roughly 292 years.
func RentalDays(from, to time.Time) int {
    f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
    t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
    if t.Before(f) {
        return 0
    }
    return int((t.Unix()-f.Unix())/86400) + 1
}
