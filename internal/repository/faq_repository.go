package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/luxedrive/rental-api/internal/model"
)

// ErrFAQNotFound is returned when an FAQ entry cannot be found.
var ErrFAQNotFound = errors.New("faq not found")

// FAQRepo encapsulates queries against the site-wide `faqs` table.
type FAQRepo struct {
	db *sql.DB
}

func NewFAQRepo(db *sql.DB) *FAQRepo {
	return &FAQRepo{db: db}
}

const faqColumns = "id, question, answer, is_visible, position, created_at, updated_at"

// Create inserts an FAQ at the end of the ordering and populates ID and
// timestamps on success.
func (r *FAQRepo) Create(ctx context.Context, f *model.FAQ) error {
	const q = `INSERT INTO faqs (question, answer, is_visible, position)
		VALUES (?, ?, ?, (SELECT COALESCE(MAX(t.position),-1)+1 FROM (SELECT position FROM faqs) t))`
	res, err := r.db.ExecContext(ctx, q, f.Question, f.Answer, f.IsVisible)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		"SELECT position, created_at, updated_at FROM faqs WHERE id=?", f.ID).
		Scan(&f.Position, &f.CreatedAt, &f.UpdatedAt)
}

// ListAll returns every FAQ in position order for the admin panel.
func (r *FAQRepo) ListAll(ctx context.Context) ([]model.FAQ, error) {
	return r.list(ctx, "SELECT "+faqColumns+" FROM faqs ORDER BY position, id")
}

// ListVisible returns only publicly visible FAQs in position order.
func (r *FAQRepo) ListVisible(ctx context.Context) ([]model.FAQ, error) {
	return r.list(ctx, "SELECT "+faqColumns+" FROM faqs WHERE is_visible = 1 ORDER BY position, id")
}

func (r *FAQRepo) list(ctx context.Context, q string) ([]model.FAQ, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.FAQ{}
	for rows.Next() {
		var f model.FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.IsVisible, &f.Position, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Update replaces question, answer and visibility of an entry.
func (r *FAQRepo) Update(ctx context.Context, id uint64, question, answer string, visible bool) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE faqs SET question=?, answer=?, is_visible=? WHERE id=?",
		question, answer, visible, id)
	if err != nil {
		return err
	}
	return faqRows(ctx, r.db, res, id)
}

// SetVisibility flips only the is_visible flag.
func (r *FAQRepo) SetVisibility(ctx context.Context, id uint64, visible bool) error {
	res, err := r.db.ExecContext(ctx, "UPDATE faqs SET is_visible=? WHERE id=?", visible, id)
	if err != nil {
		return err
	}
	return faqRows(ctx, r.db, res, id)
}

// Delete removes an FAQ entry.
func (r *FAQRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM faqs WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrFAQNotFound
	}
	return nil
}

func faqRows(ctx context.Context, db *sql.DB, res sql.Result, id uint64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	var one int
	if err := db.QueryRowContext(ctx, "SELECT 1 FROM faqs WHERE id=?", id).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrFAQNotFound
		}
		return err
	}
	return nil
}
