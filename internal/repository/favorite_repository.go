package repository

// Favorites repository.  A favorite is a (user_id, car_id) pair with a
// unique constraint; Toggle inserts when absent and deletes when present,
// returning the resulting state.

import (
	"context"
	"database/sql"
	"strings"
)

// FavoriteRepo encapsulates queries against the `favorites` table.
type FavoriteRepo struct {
	db *sql.DB
}

func NewFavoriteRepo(db *sql.DB) *FavoriteRepo {
	return &FavoriteRepo{db: db}
}

// ListCarIDs returns the ids of a user's favorite cars in the order they
// were starred.
func (r *FavoriteRepo) ListCarIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT car_id FROM favorites WHERE user_id=? ORDER BY created_at, car_id", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []uint64{}
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// Toggle flips the favorite state for a car and reports whether the car is
// a favorite after the call.
func (r *FavoriteRepo) Toggle(ctx context.Context, userID, carID uint64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM favorites WHERE user_id=? AND car_id=?", userID, carID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil // removed
	}
	if _, err := r.db.ExecContext(ctx,
		"INSERT INTO favorites (user_id, car_id) VALUES (?,?)", userID, carID); err != nil {
		// A concurrent toggle can insert first; treat the duplicate as set.
		if strings.Contains(err.Error(), "1062") {
			return true, nil
		}
		return false, err
	}
	return true, nil
}
