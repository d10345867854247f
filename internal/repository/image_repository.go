package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/saint-mantis/truster/internal/model"
)

// ImageRepo manages property gallery images.  The single-primary-per-
// property invariant is enforced here: any write that flags an image as
// primary clears the previous flag for that property inside the same
// transaction, so two images are never flagged at once even under
// concurrent writers.
type ImageRepo struct {
	db *sql.DB
}

// NewImageRepo constructs an ImageRepo with the provided DB handle.
func NewImageRepo(db *sql.DB) *ImageRepo {
	return &ImageRepo{db: db}
}

// Add inserts a gallery image for a property.  When img.IsPrimary is set
// the prior primary flag is cleared first, within one transaction.
func (r *ImageRepo) Add(ctx context.Context, img *model.PropertyImage) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var exists bool
	if err := tx.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM properties WHERE id = ?)", img.PropertyID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrPropertyNotFound
	}
	if img.IsPrimary {
		if _, err := tx.ExecContext(ctx,
			"UPDATE property_images SET is_primary = 0 WHERE property_id = ? AND is_primary = 1",
			img.PropertyID); err != nil {
			return err
		}
	}
	res, err := tx.ExecContext(ctx,
		"INSERT INTO property_images (property_id, image, alt_text, is_primary, sort_order) VALUES (?,?,?,?,?)",
		img.PropertyID, img.Image, img.AltText, img.IsPrimary, img.Order)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	img.ID = uint64(id)
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// SetPrimary flags one existing image of a property as primary and clears
// every other flag for that property.  Clear and set run in a single
// transaction; the image must belong to the property or ErrImageNotFound
// is returned and nothing changes.
func (r *ImageRepo) SetPrimary(ctx context.Context, propertyID, imageID uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var owner uint64
	err = tx.QueryRowContext(ctx,
		"SELECT property_id FROM property_images WHERE id = ? FOR UPDATE", imageID).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrImageNotFound
		}
		return err
	}
	if owner != propertyID {
		return ErrImageNotFound
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE property_images SET is_primary = 0 WHERE property_id = ? AND is_primary = 1",
		propertyID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE property_images SET is_primary = 1 WHERE id = ?", imageID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// ListByProperty returns the gallery of a property ordered by sort_order
// ascending.
func (r *ImageRepo) ListByProperty(ctx context.Context, propertyID uint64) ([]*model.PropertyImage, error) {
	const q = `SELECT id, property_id, image, alt_text, is_primary, sort_order
		FROM property_images WHERE property_id = ? ORDER BY sort_order, id`
	rows, err := r.db.QueryContext(ctx, q, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.PropertyImage
	for rows.Next() {
		img := new(model.PropertyImage)
		if err := rows.Scan(&img.ID, &img.PropertyID, &img.Image, &img.AltText, &img.IsPrimary, &img.Order); err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

// GetPrimary returns the image flagged primary for a property, or
// (nil, nil) when none is flagged.  There is no fallback to first-by-order.
func (r *ImageRepo) GetPrimary(ctx context.Context, propertyID uint64) (*model.PropertyImage, error) {
	var img model.PropertyImage
	err := r.db.QueryRowContext(ctx,
		`SELECT id, property_id, image, alt_text, is_primary, sort_order
		 FROM property_images WHERE property_id = ? AND is_primary = 1`, propertyID).
		Scan(&img.ID, &img.PropertyID, &img.Image, &img.AltText, &img.IsPrimary, &img.Order)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &img, nil
}

// Delete removes a single image row.
func (r *ImageRepo) Delete(ctx context.Context, propertyID, imageID uint64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM property_images WHERE id = ? AND property_id = ?", imageID, propertyID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrImageNotFound
	}
	return nil
}
