package repository

// Booking repository.  Bookings are created Pending by clients and decided
// exactly once by staff; the status guard lives in the UPDATE's WHERE
// clause so two concurrent decisions cannot both win.

import (
	"context"
	"database/sql"
	"errors"

	"github.com/luxedrive/rental-api/internal/model"
)

// ErrBookingNotFound is returned when a booking cannot be found.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepo encapsulates queries against the `bookings` table.
type BookingRepo struct {
	db *sql.DB
}

func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

const bookingColumns = "id, reference, user_id, car_id, date_from, date_to, total_days, total_cents, status, created_at, updated_at"

func scanBooking(row interface{ Scan(...any) error }, b *model.Booking) error {
	return row.Scan(&b.ID, &b.Reference, &b.UserID, &b.CarID, &b.DateFrom, &b.DateTo,
		&b.TotalDays, &b.TotalCents, &b.Status, &b.CreatedAt, &b.UpdatedAt)
}

// Create inserts a Pending booking and populates ID and timestamps.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	const q = `INSERT INTO bookings (reference, user_id, car_id, date_from, date_to, total_days, total_cents, status)
		VALUES (?,?,?,?,?,?,?,?)`
	res, err := r.db.ExecContext(ctx, q, b.Reference, b.UserID, b.CarID,
		b.DateFrom, b.DateTo, b.TotalDays, b.TotalCents, model.BookingPending)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	b.Status = model.BookingPending
	return r.db.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM bookings WHERE id=?", b.ID).
		Scan(&b.CreatedAt, &b.UpdatedAt)
}

// GetByID fetches a booking, or ErrBookingNotFound.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
	var b model.Booking
	if err := scanBooking(r.db.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE id=?", id), &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// ListByUser returns a user's bookings, newest first (the "My Garage" view).
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	return r.list(ctx, "SELECT "+bookingColumns+" FROM bookings WHERE user_id=? ORDER BY id DESC", userID)
}

// ListAll returns every booking, newest first, optionally filtered by status.
func (r *BookingRepo) ListAll(ctx context.Context, status string) ([]model.Booking, error) {
	if status != "" {
		return r.list(ctx, "SELECT "+bookingColumns+" FROM bookings WHERE status=? ORDER BY id DESC", status)
	}
	return r.list(ctx, "SELECT "+bookingColumns+" FROM bookings ORDER BY id DESC")
}

func (r *BookingRepo) list(ctx context.Context, q string, args ...any) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Booking{}
	for rows.Next() {
		var b model.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Decide moves a Pending booking to Accepted or Rejected.  ErrConflict is
// returned when the booking exists but has already been decided;
// ErrBookingNotFound when it does not exist.  The WHERE status='Pending'
// guard makes the decision race-safe without locking.
func (r *BookingRepo) Decide(ctx context.Context, id uint64, to string) error {
	if !model.ValidBookingTransition(model.BookingPending, to) {
		return ErrConflict
	}
	res, err := r.db.ExecContext(ctx,
		"UPDATE bookings SET status=? WHERE id=? AND status=?",
		to, id, model.BookingPending)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	var status string
	if err := r.db.QueryRowContext(ctx, "SELECT status FROM bookings WHERE id=?", id).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBookingNotFound
		}
		return err
	}
	return ErrConflict
}
