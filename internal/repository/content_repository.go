package repository

// Content repository for the singleton documents: hero, logo and gallery.
// Singletons are stored as a single row with id=1 and replaced in place via
// upserts; there is no versioning.

import (
	"context"
	"database/sql"
	"errors"

	"github.com/luxedrive/rental-api/internal/model"
)

// ErrSlotOutOfRange is returned when a gallery write addresses a slot
// beyond the configured slot count for its variant.
var ErrSlotOutOfRange = errors.New("gallery slot out of range")

// ContentRepo encapsulates queries for hero, logo and gallery content.
type ContentRepo struct {
	db           *sql.DB
	desktopSlots int
	mobileSlots  int
}

// NewContentRepo constructs a ContentRepo.  Slot counts come from
// configuration rather than being baked in.
func NewContentRepo(db *sql.DB, desktopSlots, mobileSlots int) *ContentRepo {
	return &ContentRepo{db: db, desktopSlots: desktopSlots, mobileSlots: mobileSlots}
}

// GetHero loads the hero singleton.  A missing row yields a zero-valued
// HeroContent rather than an error so a fresh database still serves.
func (r *ContentRepo) GetHero(ctx context.Context) (*model.HeroContent, error) {
	var h model.HeroContent
	err := r.db.QueryRowContext(ctx,
		"SELECT background_image, card_title, card_logo, card_image FROM hero_content WHERE id=1").
		Scan(&h.BackgroundImage, &h.CarCard.Title, &h.CarCard.Logo, &h.CarCard.Image)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	h.CarCard.Specs = []model.SpecItem{}
	rows, err := r.db.QueryContext(ctx,
		"SELECT icon, label FROM hero_card_specs ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var s model.SpecItem
		if err := rows.Scan(&s.Icon, &s.Label); err != nil {
			return nil, err
		}
		h.CarCard.Specs = append(h.CarCard.Specs, s)
	}
	return &h, rows.Err()
}

// UpdateHeroBackground replaces only the background image.
func (r *ContentRepo) UpdateHeroBackground(ctx context.Context, image string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO hero_content (id, background_image) VALUES (1, ?)
		 ON DUPLICATE KEY UPDATE background_image=VALUES(background_image)`, image)
	return err
}

// UpdateHeroCard replaces the featured car card and its spec list.
func (r *ContentRepo) UpdateHeroCard(ctx context.Context, card model.HeroCard) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO hero_content (id, card_title, card_logo, card_image) VALUES (1, ?, ?, ?)
		 ON DUPLICATE KEY UPDATE card_title=VALUES(card_title), card_logo=VALUES(card_logo), card_image=VALUES(card_image)`,
		card.Title, card.Logo, card.Image); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM hero_card_specs"); err != nil {
		return err
	}
	for i, s := range card.Specs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO hero_card_specs (position, icon, label) VALUES (?,?,?)",
			i, s.Icon, s.Label); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// GetLogo loads the navbar branding singleton.
func (r *ContentRepo) GetLogo(ctx context.Context) (*model.LogoContent, error) {
	var l model.LogoContent
	err := r.db.QueryRowContext(ctx,
		"SELECT navbar_logo, company_name FROM logo_content WHERE id=1").
		Scan(&l.NavbarLogo, &l.CompanyName)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	return &l, nil
}

// UpdateLogo replaces the navbar branding singleton.
func (r *ContentRepo) UpdateLogo(ctx context.Context, l model.LogoContent) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO logo_content (id, navbar_logo, company_name) VALUES (1, ?, ?)
		 ON DUPLICATE KEY UPDATE navbar_logo=VALUES(navbar_logo), company_name=VALUES(company_name)`,
		l.NavbarLogo, l.CompanyName)
	return err
}

// SlotCount returns the configured slot count for a gallery variant, or 0
// for an unknown variant.
func (r *ContentRepo) SlotCount(variant string) int {
	switch variant {
	case model.GalleryDesktop:
		return r.desktopSlots
	case model.GalleryMobile:
		return r.mobileSlots
	}
	return 0
}

// GetGallery loads both gallery variants grouped for the API response.
func (r *ContentRepo) GetGallery(ctx context.Context) (*model.GalleryContent, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT variant, slot, image_url, alt FROM gallery_photos ORDER BY variant, slot")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	g := model.GalleryContent{DesktopPhotos: []model.GalleryPhoto{}, MobilePhotos: []model.GalleryPhoto{}}
	for rows.Next() {
		var p model.GalleryPhoto
		if err := rows.Scan(&p.Variant, &p.Slot, &p.ImageURL, &p.Alt); err != nil {
			return nil, err
		}
		switch p.Variant {
		case model.GalleryDesktop:
			g.DesktopPhotos = append(g.DesktopPhotos, p)
		case model.GalleryMobile:
			g.MobilePhotos = append(g.MobilePhotos, p)
		}
	}
	return &g, rows.Err()
}

// PutGallerySlot writes one slot of a variant, validating slot bounds
// against the configured counts.
func (r *ContentRepo) PutGallerySlot(ctx context.Context, p model.GalleryPhoto) error {
	max := r.SlotCount(p.Variant)
	if max == 0 || p.Slot < 0 || p.Slot >= max {
		return ErrSlotOutOfRange
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO gallery_photos (variant, slot, image_url, alt) VALUES (?,?,?,?)
		 ON DUPLICATE KEY UPDATE image_url=VALUES(image_url), alt=VALUES(alt)`,
		p.Variant, p.Slot, p.ImageURL, p.Alt)
	return err
}
