package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/saint-mantis/truster/internal/model"
)

// LocationRepo encapsulates queries over the self-referential locations
// tree.  Roots are cities, children are neighbourhoods.  The pair
// (name, parent_id) is unique.
type LocationRepo struct {
	db *sql.DB
}

// NewLocationRepo constructs a LocationRepo with the provided DB handle.
func NewLocationRepo(db *sql.DB) *LocationRepo {
	return &LocationRepo{db: db}
}

const locationColumns = `l.id, l.name, l.slug, l.parent_id,
	COALESCE(pl.name, '') AS parent_name, l.latitude, l.longitude`

const locationFrom = ` FROM locations l LEFT JOIN locations pl ON pl.id = l.parent_id`

func scanLocation(s rowScanner, l *model.Location) error {
	var (
		parentID sql.NullInt64
		lat, lng sql.NullFloat64
	)
	if err := s.Scan(&l.ID, &l.Name, &l.Slug, &parentID, &l.ParentName, &lat, &lng); err != nil {
		return err
	}
	if parentID.Valid {
		v := uint64(parentID.Int64)
		l.ParentID = &v
	}
	if lat.Valid {
		v := lat.Float64
		l.Latitude = &v
	}
	if lng.Valid {
		v := lng.Float64
		l.Longitude = &v
	}
	return nil
}

// Create inserts a new location.  A non-nil ParentID must reference an
// existing location; assigning parents only to pre-existing rows is what
// keeps the tree acyclic.  A (name, parent) collision is reported as
// ErrDuplicateLocation.
func (r *LocationRepo) Create(ctx context.Context, l *model.Location) error {
	if l.ParentID != nil {
		var exists bool
		if err := r.db.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM locations WHERE id = ?)", *l.ParentID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrLocationNotFound
		}
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO locations (name, slug, parent_id, latitude, longitude) VALUES (?,?,?,?,?)",
		l.Name, l.Slug, l.ParentID, l.Latitude, l.Longitude)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateLocation
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	l.ID = uint64(id)
	return nil
}

// GetByID fetches a single location with its parent name resolved.
func (r *LocationRepo) GetByID(ctx context.Context, id uint64) (*model.Location, error) {
	var l model.Location
	err := scanLocation(r.db.QueryRowContext(ctx,
		"SELECT "+locationColumns+locationFrom+" WHERE l.id = ?", id), &l)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}
	return &l, nil
}

// List returns every location ordered by parent then name, suitable for
// filter dropdowns.
func (r *LocationRepo) List(ctx context.Context) ([]*model.Location, error) {
	const q = "SELECT " + locationColumns + locationFrom + " ORDER BY COALESCE(pl.name, l.name), l.name"
	return r.queryLocations(ctx, q)
}

// ListRoots returns up to limit locations without a parent, ordered by
// name.  Used by the home page city strip.
func (r *LocationRepo) ListRoots(ctx context.Context, limit int) ([]*model.Location, error) {
	const q = "SELECT " + locationColumns + locationFrom + " WHERE l.parent_id IS NULL ORDER BY l.name LIMIT ?"
	return r.queryLocations(ctx, q, limit)
}

func (r *LocationRepo) queryLocations(ctx context.Context, q string, args ...any) ([]*model.Location, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Location
	for rows.Next() {
		l := new(model.Location)
		if err := scanLocation(rows, l); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Delete removes a location subtree.  Properties attached to the location
// or any of its descendants are deleted with their dependent records via
// deletePropertiesTx, then the descendant locations and finally the
// location itself are removed.  The whole cascade is one transaction.
func (r *LocationRepo) Delete(ctx context.Context, id uint64) error {
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
		"SELECT EXISTS(SELECT 1 FROM locations WHERE id = ?)", id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrLocationNotFound
	}

	// Collect the subtree rooted at id.
	const subtree = `WITH RECURSIVE tree AS (
			SELECT id FROM locations WHERE id = ?
			UNION ALL
			SELECT loc.id FROM locations loc JOIN tree ON loc.parent_id = tree.id
		) SELECT id FROM tree`
	rows, err := tx.QueryContext(ctx, subtree, id)
	if err != nil {
		return err
	}
	var locIDs []uint64
	for rows.Next() {
		var lid uint64
		if err := rows.Scan(&lid); err != nil {
			rows.Close()
			return err
		}
		locIDs = append(locIDs, lid)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	in := placeholders(len(locIDs))
	propIDs, err := propertyIDsTx(ctx, tx, "location_id IN ("+in+")", idArgs(locIDs)...)
	if err != nil {
		return err
	}
	if err := deletePropertiesTx(ctx, tx, propIDs); err != nil {
		return err
	}
	// Children first so the parent_id references never dangle mid-delete.
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM locations WHERE id IN ("+in+") AND id <> ?",
		append(idArgs(locIDs), id)...); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM locations WHERE id = ?", id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
