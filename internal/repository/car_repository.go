package repository

// Car repository.  The flat columns live in `cars`; gallery media,
// categories, spec items, features, rental requirements and per-car FAQs
// live in child tables keyed by car_id and ordered by position.  Writes
// touching child tables run inside a transaction so a car is never
// persisted half-updated.

import (
	"context"
	"database/sql"
	"errors"

	"github.com/luxedrive/rental-api/internal/model"
)

// ErrCarNotFound is returned when a car cannot be found.
var ErrCarNotFound = errors.New("car not found")

// CarRepo encapsulates all database queries related to cars.
type CarRepo struct {
	db *sql.DB
}

// NewCarRepo constructs a CarRepo with the provided DB handle.
func NewCarRepo(db *sql.DB) *CarRepo {
	return &CarRepo{db: db}
}

const carColumns = `id, brand, model, title, main_image, logo, year, transmission,
	top_speed, seats, drive, fuel_type, state, price_daily_cents, price_weekly_cents,
	price_monthly_cents, mileage_limit, mileage_extra_cents, description, created_at, updated_at`

func scanCar(row interface{ Scan(...any) error }, c *model.Car) error {
	return row.Scan(&c.ID, &c.Brand, &c.Model, &c.Title, &c.MainImage, &c.Logo,
		&c.Year, &c.Transmission, &c.TopSpeed, &c.Seats, &c.Drive, &c.FuelType,
		&c.State, &c.Pricing.DailyCents, &c.Pricing.WeeklyCents, &c.Pricing.MonthlyCents,
		&c.Mileage.Limit, &c.Mileage.AdditionalCharge, &c.Description,
		&c.CreatedAt, &c.UpdatedAt)
}

// Create inserts a car and all of its child rows in one transaction.  On
// success the ID field is populated.
func (r *CarRepo) Create(ctx context.Context, c *model.Car) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const q = `INSERT INTO cars (brand, model, title, main_image, logo, year, transmission,
		top_speed, seats, drive, fuel_type, state, price_daily_cents, price_weekly_cents,
		price_monthly_cents, mileage_limit, mileage_extra_cents, description)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`
	res, err := tx.ExecContext(ctx, q, c.Brand, c.Model, c.Title, c.MainImage, c.Logo,
		c.Year, c.Transmission, c.TopSpeed, c.Seats, c.Drive, c.FuelType, c.State,
		c.Pricing.DailyCents, c.Pricing.WeeklyCents, c.Pricing.MonthlyCents,
		c.Mileage.Limit, c.Mileage.AdditionalCharge, c.Description)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)

	if err := insertChildren(ctx, tx, c); err != nil {
		return err
	}
	return tx.Commit()
}

// Update replaces the car row and rewrites every child table.  It returns
// ErrCarNotFound when no car with that id exists.
func (r *CarRepo) Update(ctx context.Context, c *model.Car) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var one int
	if err := tx.QueryRowContext(ctx, "SELECT 1 FROM cars WHERE id=?", c.ID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCarNotFound
		}
		return err
	}

	const q = `UPDATE cars SET brand=?, model=?, title=?, main_image=?, logo=?, year=?,
		transmission=?, top_speed=?, seats=?, drive=?, fuel_type=?, state=?,
		price_daily_cents=?, price_weekly_cents=?, price_monthly_cents=?,
		mileage_limit=?, mileage_extra_cents=?, description=? WHERE id=?`
	if _, err := tx.ExecContext(ctx, q, c.Brand, c.Model, c.Title, c.MainImage, c.Logo,
		c.Year, c.Transmission, c.TopSpeed, c.Seats, c.Drive, c.FuelType, c.State,
		c.Pricing.DailyCents, c.Pricing.WeeklyCents, c.Pricing.MonthlyCents,
		c.Mileage.Limit, c.Mileage.AdditionalCharge, c.Description, c.ID); err != nil {
		return err
	}

	for _, table := range []string{"car_images", "car_categories", "car_specs", "car_features", "car_requirements", "car_faqs"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE car_id=?", c.ID); err != nil {
			return err
		}
	}
	if err := insertChildren(ctx, tx, c); err != nil {
		return err
	}
	return tx.Commit()
}

func insertChildren(ctx context.Context, tx *sql.Tx, c *model.Car) error {
	for i, url := range c.GalleryImages {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO car_images (car_id, url, kind, position) VALUES (?,?,?,?)",
			c.ID, url, "image", i); err != nil {
			return err
		}
	}
	for i, url := range c.GalleryVideos {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO car_images (car_id, url, kind, position) VALUES (?,?,?,?)",
			c.ID, url, "video", i); err != nil {
			return err
		}
	}
	for _, cat := range c.Categories {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO car_categories (car_id, category) VALUES (?,?)", c.ID, cat); err != nil {
			return err
		}
	}
	for i, s := range c.Specs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO car_specs (car_id, icon, label, position) VALUES (?,?,?,?)",
			c.ID, s.Icon, s.Label, i); err != nil {
			return err
		}
	}
	for i, f := range c.Features {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO car_features (car_id, feature, position) VALUES (?,?,?)",
			c.ID, f, i); err != nil {
			return err
		}
	}
	for i, req := range c.RentalRequirements {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO car_requirements (car_id, requirement, position) VALUES (?,?,?)",
			c.ID, req, i); err != nil {
			return err
		}
	}
	for i, f := range c.FAQs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO car_faqs (car_id, question, answer, position) VALUES (?,?,?,?)",
			c.ID, f.Question, f.Answer, i); err != nil {
			return err
		}
	}
	return nil
}

// GetByID loads a car with all child rows, or ErrCarNotFound.
func (r *CarRepo) GetByID(ctx context.Context, id uint64) (*model.Car, error) {
	var c model.Car
	if err := scanCar(r.db.QueryRowContext(ctx, "SELECT "+carColumns+" FROM cars WHERE id=?", id), &c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}
	cars := []*model.Car{&c}
	if err := r.loadChildren(ctx, cars); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListAll returns the full catalog with children, ordered by id.  The
// storefront filters this list in memory; the expected catalog size is
// small enough that a single fetch is the right trade.
func (r *CarRepo) ListAll(ctx context.Context) ([]model.Car, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+carColumns+" FROM cars ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Car{}
	for rows.Next() {
		var c model.Car
		if err := scanCar(rows, &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*model.Car, len(out))
	for i := range out {
		refs[i] = &out[i]
	}
	if err := r.loadChildren(ctx, refs); err != nil {
		return nil, err
	}
	return out, nil
}

// loadChildren bulk-loads every child table and distributes rows onto the
// given cars, avoiding a query-per-car fan-out.
func (r *CarRepo) loadChildren(ctx context.Context, cars []*model.Car) error {
	if len(cars) == 0 {
		return nil
	}
	byID := make(map[uint64]*model.Car, len(cars))
	for _, c := range cars {
		byID[c.ID] = c
		c.GalleryImages = []string{}
		c.GalleryVideos = []string{}
		c.Categories = []string{}
		c.Specs = []model.SpecItem{}
		c.Features = []string{}
		c.RentalRequirements = []string{}
		c.FAQs = []model.CarFAQ{}
	}

	if err := forEachRow(ctx, r.db, "SELECT car_id, url, kind FROM car_images ORDER BY car_id, position",
		func(rows *sql.Rows) error {
			var id uint64
			var url, kind string
			if err := rows.Scan(&id, &url, &kind); err != nil {
				return err
			}
			if c, ok := byID[id]; ok {
				if kind == "video" {
					c.GalleryVideos = append(c.GalleryVideos, url)
				} else {
					c.GalleryImages = append(c.GalleryImages, url)
				}
			}
			return nil
		}); err != nil {
		return err
	}

	if err := forEachRow(ctx, r.db, "SELECT car_id, category FROM car_categories ORDER BY car_id",
		func(rows *sql.Rows) error {
			var id uint64
			var cat string
			if err := rows.Scan(&id, &cat); err != nil {
				return err
			}
			if c, ok := byID[id]; ok {
				c.Categories = append(c.Categories, cat)
			}
			return nil
		}); err != nil {
		return err
	}

	if err := forEachRow(ctx, r.db, "SELECT car_id, icon, label FROM car_specs ORDER BY car_id, position",
		func(rows *sql.Rows) error {
			var id uint64
			var s model.SpecItem
			if err := rows.Scan(&id, &s.Icon, &s.Label); err != nil {
				return err
			}
			if c, ok := byID[id]; ok {
				c.Specs = append(c.Specs, s)
			}
			return nil
		}); err != nil {
		return err
	}

	if err := forEachRow(ctx, r.db, "SELECT car_id, feature FROM car_features ORDER BY car_id, position",
		func(rows *sql.Rows) error {
			var id uint64
			var f string
			if err := rows.Scan(&id, &f); err != nil {
				return err
			}
			if c, ok := byID[id]; ok {
				c.Features = append(c.Features, f)
			}
			return nil
		}); err != nil {
		return err
	}

	if err := forEachRow(ctx, r.db, "SELECT car_id, requirement FROM car_requirements ORDER BY car_id, position",
		func(rows *sql.Rows) error {
			var id uint64
			var req string
			if err := rows.Scan(&id, &req); err != nil {
				return err
			}
			if c, ok := byID[id]; ok {
				c.RentalRequirements = append(c.RentalRequirements, req)
			}
			return nil
		}); err != nil {
		return err
	}

	return forEachRow(ctx, r.db, "SELECT car_id, question, answer FROM car_faqs ORDER BY car_id, position",
		func(rows *sql.Rows) error {
			var id uint64
			var f model.CarFAQ
			if err := rows.Scan(&id, &f.Question, &f.Answer); err != nil {
				return err
			}
			if c, ok := byID[id]; ok {
				c.FAQs = append(c.FAQs, f)
			}
			return nil
		})
}

func forEachRow(ctx context.Context, db *sql.DB, q string, fn func(*sql.Rows) error) error {
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// Delete removes a car and its child rows.  ErrConflict is returned when
// undecided bookings still reference the car.
func (r *CarRepo) Delete(ctx context.Context, id uint64) error {
	var pending int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM bookings WHERE car_id=? AND status='Pending'", id).Scan(&pending); err != nil {
		return err
	}
	if pending > 0 {
		return ErrConflict
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"car_images", "car_categories", "car_specs", "car_features", "car_requirements", "car_faqs"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE car_id=?", id); err != nil {
			return err
		}
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM cars WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCarNotFound
	}
	return tx.Commit()
}
