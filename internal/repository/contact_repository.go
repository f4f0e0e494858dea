package repository

// Contact repository.  Contact info is a singleton row where every field
// carries its own updated-at column; social links are an ordinary list.

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/luxedrive/rental-api/internal/model"
)

// ErrSocialNotFound is returned when a social link cannot be found.
var ErrSocialNotFound = errors.New("social link not found")

// ContactRepo encapsulates queries for contact info and social links.
type ContactRepo struct {
	db *sql.DB
}

func NewContactRepo(db *sql.DB) *ContactRepo {
	return &ContactRepo{db: db}
}

// contactFields maps API field names onto their column pairs.  Patching an
// unknown field is a caller bug surfaced as an error.
var contactFields = map[string]struct{ value, stamp string }{
	"phone":   {"phone", "phone_updated_at"},
	"email":   {"email", "email_updated_at"},
	"hours":   {"hours", "hours_updated_at"},
	"address": {"address", "address_updated_at"},
}

// GetInfo loads the contact singleton.  A missing row yields zero values.
func (r *ContactRepo) GetInfo(ctx context.Context) (*model.ContactInfo, error) {
	var ci model.ContactInfo
	err := r.db.QueryRowContext(ctx,
		`SELECT phone, phone_updated_at, email, email_updated_at,
		        hours, hours_updated_at, address, address_updated_at
		 FROM contact_info WHERE id=1`).
		Scan(&ci.Phone, &ci.PhoneUpdatedAt, &ci.Email, &ci.EmailUpdatedAt,
			&ci.Hours, &ci.HoursUpdatedAt, &ci.Address, &ci.AddressUpdatedAt)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	return &ci, nil
}

// PatchInfo updates only the provided fields, bumping each field's own
// timestamp.  fields maps API names (phone, email, hours, address) to new
// values.
func (r *ContactRepo) PatchInfo(ctx context.Context, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	set := ""
	args := []any{}
	for name, value := range fields {
		cols, ok := contactFields[name]
		if !ok {
			return fmt.Errorf("unknown contact field %q", name)
		}
		if set != "" {
			set += ", "
		}
		set += cols.value + "=?, " + cols.stamp + "=NOW()"
		args = append(args, value)
	}
	// The singleton row is created on first write.
	if _, err := r.db.ExecContext(ctx, "INSERT IGNORE INTO contact_info (id) VALUES (1)"); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, "UPDATE contact_info SET "+set+" WHERE id=1", args...)
	return err
}

// ListSocial returns every social link, active or not, ordered by id.
func (r *ContactRepo) ListSocial(ctx context.Context) ([]model.SocialLink, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, platform, link, active FROM social_links ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.SocialLink{}
	for rows.Next() {
		var s model.SocialLink
		if err := rows.Scan(&s.ID, &s.Platform, &s.Link, &s.Active); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// AddSocial inserts a social link and populates its ID.
func (r *ContactRepo) AddSocial(ctx context.Context, s *model.SocialLink) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO social_links (platform, link, active) VALUES (?,?,?)",
		s.Platform, s.Link, s.Active)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// DeleteSocial removes a social link.
func (r *ContactRepo) DeleteSocial(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM social_links WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSocialNotFound
	}
	return nil
}
