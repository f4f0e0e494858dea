package repository

// Brand repository.  Brands carry an is_active flag that gates public
// visibility; admin reads see every row, public reads filter to active ones.

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/luxedrive/rental-api/internal/model"
)

// ErrBrandNotFound is returned when a brand cannot be found.
var ErrBrandNotFound = errors.New("brand not found")

// BrandRepo encapsulates all database queries related to brands.
type BrandRepo struct {
	db *sql.DB
}

// NewBrandRepo constructs a BrandRepo with the provided DB handle.
func NewBrandRepo(db *sql.DB) *BrandRepo {
	return &BrandRepo{db: db}
}

const brandColumns = "id, name, logo, description, is_active, created_at, updated_at"

// Create inserts a new brand.  On success the ID and timestamp fields are
// populated so callers receive a fully hydrated record.
func (r *BrandRepo) Create(ctx context.Context, b *model.Brand) error {
	const qInsert = "INSERT INTO brands (name, logo, description, is_active) VALUES (?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, qInsert, b.Name, b.Logo, b.Description, b.IsActive)
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			return ErrConflict
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)

	const qSelect = "SELECT created_at, updated_at FROM brands WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, b.ID).Scan(&b.CreatedAt, &b.UpdatedAt)
}

// GetByID fetches a brand by its ID, returning ErrBrandNotFound when absent.
func (r *BrandRepo) GetByID(ctx context.Context, id uint64) (*model.Brand, error) {
	const q = "SELECT " + brandColumns + " FROM brands WHERE id = ?"
	var b model.Brand
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&b.ID, &b.Name, &b.Logo, &b.Description, &b.IsActive, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}
	return &b, nil
}

// ListAll returns every brand ordered by id, active or not.
func (r *BrandRepo) ListAll(ctx context.Context) ([]model.Brand, error) {
	return r.list(ctx, "SELECT "+brandColumns+" FROM brands ORDER BY id")
}

// ListVisible returns only active brands, preserving id order.
func (r *BrandRepo) ListVisible(ctx context.Context) ([]model.Brand, error) {
	return r.list(ctx, "SELECT "+brandColumns+" FROM brands WHERE is_active = 1 ORDER BY id")
}

func (r *BrandRepo) list(ctx context.Context, q string) ([]model.Brand, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Brand{}
	for rows.Next() {
		var b model.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Logo, &b.Description, &b.IsActive, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Update replaces the mutable fields of a brand.  sql.ErrNoRows signals a
// missing row so handlers can answer 404.
func (r *BrandRepo) Update(ctx context.Context, id uint64, name, logo, description string, isActive bool) error {
	const q = "UPDATE brands SET name=?, logo=?, description=?, is_active=? WHERE id=?"
	res, err := r.db.ExecContext(ctx, q, name, logo, description, isActive, id)
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			return ErrConflict
		}
		return err
	}
	return rowsOr404(res, ctx, r.db, "brands", id)
}

// SetVisibility flips only the is_active flag.  This is the storage side of
// the admin visibility toggle.
func (r *BrandRepo) SetVisibility(ctx context.Context, id uint64, active bool) error {
	res, err := r.db.ExecContext(ctx, "UPDATE brands SET is_active=? WHERE id=?", active, id)
	if err != nil {
		return err
	}
	return rowsOr404(res, ctx, r.db, "brands", id)
}

// Delete removes a brand permanently.
func (r *BrandRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM brands WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// rowsOr404 maps a zero-row UPDATE to sql.ErrNoRows only when the target
// row truly does not exist (an unchanged UPDATE also affects zero rows).
func rowsOr404(res sql.Result, ctx context.Context, db *sql.DB, table string, id uint64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	var one int
	if err := db.QueryRowContext(ctx, "SELECT 1 FROM "+table+" WHERE id=?", id).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sql.ErrNoRows
		}
		return err
	}
	return nil
}
