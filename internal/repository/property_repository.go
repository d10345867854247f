// Package repository contains data access logic separated from HTTP handlers.
// This file holds the repository for the properties table, including the
// manual cascade used whenever a property (or one of its owners: type,
// location, agent) is removed.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/saint-mantis/truster/internal/model"
)

// PropertyRepo encapsulates all database queries related to properties.
type PropertyRepo struct {
	db *sql.DB
}

// NewPropertyRepo constructs a PropertyRepo with the provided DB handle.
func NewPropertyRepo(db *sql.DB) *PropertyRepo {
	return &PropertyRepo{db: db}
}

// DB exposes the underlying pool so handlers can open transactions that
// span multiple repositories.
func (r *PropertyRepo) DB() *sql.DB { return r.db }

const propertyColumns = `id, title, slug, description, type_id, location_id, agent_id,
	listing_type, status, price, price_per_sqft, address, latitude, longitude,
	bedrooms, bathrooms, area_sqft, lot_size, year_built, parking_spaces,
	meta_title, meta_description, is_featured, is_published, created_at, updated_at`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(s rowScanner, p *model.Property) error {
	var (
		pricePerSqft sql.NullFloat64
		lat, lng     sql.NullFloat64
		lotSize      sql.NullInt64
		yearBuilt    sql.NullInt64
	)
	err := s.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Description, &p.TypeID, &p.LocationID, &p.AgentID,
		&p.ListingType, &p.Status, &p.Price, &pricePerSqft, &p.Address, &lat, &lng,
		&p.Bedrooms, &p.Bathrooms, &p.AreaSqft, &lotSize, &yearBuilt, &p.ParkingSpaces,
		&p.MetaTitle, &p.MetaDescription, &p.IsFeatured, &p.IsPublished, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if pricePerSqft.Valid {
		v := pricePerSqft.Float64
		p.PricePerSqft = &v
	}
	if lat.Valid {
		v := lat.Float64
		p.Latitude = &v
	}
	if lng.Valid {
		v := lng.Float64
		p.Longitude = &v
	}
	if lotSize.Valid {
		v := uint32(lotSize.Int64)
		p.LotSize = &v
	}
	if yearBuilt.Valid {
		v := uint32(yearBuilt.Int64)
		p.YearBuilt = &v
	}
	return nil
}

// Create inserts a new property.  On success the ID, CreatedAt and
// UpdatedAt fields are populated.  A slug collision is reported as
// ErrDuplicateSlug; a dangling type/location/agent reference surfaces as
// the matching not-found sentinel.
func (r *PropertyRepo) Create(ctx context.Context, p *model.Property) error {
	const q = `INSERT INTO properties
		(title, slug, description, type_id, location_id, agent_id, listing_type, status,
		 price, price_per_sqft, address, latitude, longitude, bedrooms, bathrooms,
		 area_sqft, lot_size, year_built, parking_spaces, meta_title, meta_description,
		 is_featured, is_published)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`
	res, err := r.db.ExecContext(ctx, q,
		p.Title, p.Slug, p.Description, p.TypeID, p.LocationID, p.AgentID,
		p.ListingType, p.Status, p.Price, p.PricePerSqft, p.Address,
		p.Latitude, p.Longitude, p.Bedrooms, p.Bathrooms, p.AreaSqft,
		p.LotSize, p.YearBuilt, p.ParkingSpaces, p.MetaTitle, p.MetaDescription,
		p.IsFeatured, p.IsPublished)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateSlug
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM properties WHERE id = ?", p.ID).
		Scan(&p.CreatedAt, &p.UpdatedAt)
}

// GetByID fetches a property by primary key.  Publication status is not
// filtered here; callers serving public traffic must check IsPublished.
func (r *PropertyRepo) GetByID(ctx context.Context, id uint64) (*model.Property, error) {
	var p model.Property
	err := scanProperty(r.db.QueryRowContext(ctx,
		"SELECT "+propertyColumns+" FROM properties WHERE id = ?", id), &p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetBySlug fetches a property by its unique slug.
func (r *PropertyRepo) GetBySlug(ctx context.Context, slug string) (*model.Property, error) {
	var p model.Property
	err := scanProperty(r.db.QueryRowContext(ctx,
		"SELECT "+propertyColumns+" FROM properties WHERE slug = ?", slug), &p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Update rewrites all mutable columns of an existing property.
func (r *PropertyRepo) Update(ctx context.Context, p *model.Property) error {
	const q = `UPDATE properties SET
		title=?, slug=?, description=?, type_id=?, location_id=?, agent_id=?,
		listing_type=?, status=?, price=?, price_per_sqft=?, address=?, latitude=?,
		longitude=?, bedrooms=?, bathrooms=?, area_sqft=?, lot_size=?, year_built=?,
		parking_spaces=?, meta_title=?, meta_description=?, is_featured=?, is_published=?,
		updated_at=CURRENT_TIMESTAMP
		WHERE id=?`
	res, err := r.db.ExecContext(ctx, q,
		p.Title, p.Slug, p.Description, p.TypeID, p.LocationID, p.AgentID,
		p.ListingType, p.Status, p.Price, p.PricePerSqft, p.Address,
		p.Latitude, p.Longitude, p.Bedrooms, p.Bathrooms, p.AreaSqft,
		p.LotSize, p.YearBuilt, p.ParkingSpaces, p.MetaTitle, p.MetaDescription,
		p.IsFeatured, p.IsPublished, p.ID)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateSlug
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is also 0 when nothing changed, so confirm existence.
		var exists bool
		if err := r.db.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM properties WHERE id = ?)", p.ID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrPropertyNotFound
		}
	}
	return nil
}

// ListFeatured returns up to limit featured, published properties ordered
// newest first.  Used by the home page.
func (r *PropertyRepo) ListFeatured(ctx context.Context, limit int) ([]*model.Property, error) {
	const q = "SELECT " + propertyColumns + ` FROM properties
		WHERE is_featured = 1 AND is_published = 1
		ORDER BY created_at DESC LIMIT ?`
	return r.queryProperties(ctx, q, limit)
}

// ListSimilar returns published properties sharing the same type and
// location, excluding the subject property, truncated to limit.
func (r *PropertyRepo) ListSimilar(ctx context.Context, typeID, locationID, excludeID uint64, limit int) ([]*model.Property, error) {
	const q = "SELECT " + propertyColumns + ` FROM properties
		WHERE type_id = ? AND location_id = ? AND id <> ? AND is_published = 1
		ORDER BY created_at DESC LIMIT ?`
	return r.queryProperties(ctx, q, typeID, locationID, excludeID, limit)
}

// AdminList returns a page of all properties, published or not, newest
// first, along with the total row count.
func (r *PropertyRepo) AdminList(ctx context.Context, page, pageSize int) ([]*model.Property, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM properties").Scan(&total); err != nil {
		return nil, 0, err
	}
	const q = "SELECT " + propertyColumns + ` FROM properties
		ORDER BY created_at DESC LIMIT ? OFFSET ?`
	out, err := r.queryProperties(ctx, q, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PropertyRepo) queryProperties(ctx context.Context, q string, args ...any) ([]*model.Property, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Property
	for rows.Next() {
		p := new(model.Property)
		if err := scanProperty(rows, p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the total number of properties, published or not.
func (r *PropertyRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM properties").Scan(&n)
	return n, err
}

// CountFeatured returns the number of featured properties.
func (r *PropertyRepo) CountFeatured(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM properties WHERE is_featured = 1").Scan(&n)
	return n, err
}

// SetFeatures replaces the feature set of a property.  The link table is
// rewritten inside one transaction so readers never observe a partial set.
func (r *PropertyRepo) SetFeatures(ctx context.Context, propertyID uint64, featureIDs []uint64) error {
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
		"SELECT EXISTS(SELECT 1 FROM properties WHERE id = ?)", propertyID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrPropertyNotFound
	}
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM property_feature_links WHERE property_id = ?", propertyID); err != nil {
		return err
	}
	if len(featureIDs) > 0 {
		var n int64
		q := "SELECT COUNT(*) FROM property_features WHERE id IN (" + placeholders(len(featureIDs)) + ")"
		if err := tx.QueryRowContext(ctx, q, idArgs(featureIDs)...).Scan(&n); err != nil {
			return err
		}
		if n != int64(len(featureIDs)) {
			return ErrFeatureNotFound
		}
		ins := "INSERT INTO property_feature_links (property_id, feature_id) VALUES "
		args := make([]any, 0, len(featureIDs)*2)
		for i, fid := range featureIDs {
			if i > 0 {
				ins += ","
			}
			ins += "(?, ?)"
			args = append(args, propertyID, fid)
		}
		if _, err := tx.ExecContext(ctx, ins, args...); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// ListFeatures returns the features linked to a property ordered by name.
func (r *PropertyRepo) ListFeatures(ctx context.Context, propertyID uint64) ([]*model.PropertyFeature, error) {
	const q = `SELECT f.id, f.name, f.icon
		FROM property_features f
		JOIN property_feature_links l ON l.feature_id = f.id
		WHERE l.property_id = ?
		ORDER BY f.name`
	rows, err := r.db.QueryContext(ctx, q, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.PropertyFeature
	for rows.Next() {
		f := new(model.PropertyFeature)
		if err := rows.Scan(&f.ID, &f.Name, &f.Icon); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Delete removes a property together with its images, inquiries, favorites
// and feature links.  Testimonials referencing the property keep their row
// but have the reference cleared.  Everything runs in one transaction.
func (r *PropertyRepo) Delete(ctx context.Context, id uint64) error {
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
		"SELECT EXISTS(SELECT 1 FROM properties WHERE id = ?)", id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrPropertyNotFound
	}
	if err := deletePropertiesTx(ctx, tx, []uint64{id}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// deletePropertiesTx removes the given property rows and all records they
// own.  It is shared by the property, property-type, location and agent
// delete paths so the cascade rules live in one place.
func deletePropertiesTx(ctx context.Context, tx *sql.Tx, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	in := placeholders(len(ids))
	args := idArgs(ids)
	steps := []string{
		"DELETE FROM property_images WHERE property_id IN (" + in + ")",
		"DELETE FROM inquiries WHERE property_id IN (" + in + ")",
		"DELETE FROM favorites WHERE property_id IN (" + in + ")",
		"DELETE FROM property_feature_links WHERE property_id IN (" + in + ")",
		"UPDATE testimonials SET property_id = NULL WHERE property_id IN (" + in + ")",
		"DELETE FROM properties WHERE id IN (" + in + ")",
	}
	for _, q := range steps {
		if _, err := tx.ExecContext(ctx, q, args...); err != nil {
			return err
		}
	}
	return nil
}

// propertyIDsTx collects property ids matching an arbitrary condition, for
// use by owner-entity cascades.
func propertyIDsTx(ctx context.Context, tx *sql.Tx, cond string, args ...any) ([]uint64, error) {
	rows, err := tx.QueryContext(ctx, "SELECT id FROM properties WHERE "+cond, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []uint64
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// placeholders returns "?,?,..." with n markers.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?,", n-1) + "?"
}

func idArgs(ids []uint64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
