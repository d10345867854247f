package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/saint-mantis/truster/internal/model"
)

// PropertyTypeRepo encapsulates queries for the property_types lookup
// table.  Name and slug are both unique.
type PropertyTypeRepo struct {
	db *sql.DB
}

// NewPropertyTypeRepo constructs a PropertyTypeRepo with the provided DB handle.
func NewPropertyTypeRepo(db *sql.DB) *PropertyTypeRepo {
	return &PropertyTypeRepo{db: db}
}

// Create inserts a new property type.  A name or slug collision is
// reported as ErrDuplicateSlug.
func (r *PropertyTypeRepo) Create(ctx context.Context, t *model.PropertyType) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO property_types (name, slug, description, icon) VALUES (?,?,?,?)",
		t.Name, t.Slug, t.Description, t.Icon)
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
	t.ID = uint64(id)
	return nil
}

// GetByID fetches a property type by primary key.
func (r *PropertyTypeRepo) GetByID(ctx context.Context, id uint64) (*model.PropertyType, error) {
	var t model.PropertyType
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, slug, description, icon FROM property_types WHERE id = ?", id).
		Scan(&t.ID, &t.Name, &t.Slug, &t.Description, &t.Icon)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPropertyTypeNotFound
		}
		return nil, err
	}
	return &t, nil
}

// List returns all property types ordered by name.
func (r *PropertyTypeRepo) List(ctx context.Context) ([]*model.PropertyType, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, slug, description, icon FROM property_types ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.PropertyType
	for rows.Next() {
		t := new(model.PropertyType)
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.Description, &t.Icon); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Update rewrites a property type's columns.
func (r *PropertyTypeRepo) Update(ctx context.Context, t *model.PropertyType) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE property_types SET name=?, slug=?, description=?, icon=? WHERE id=?",
		t.Name, t.Slug, t.Description, t.Icon, t.ID)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateSlug
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM property_types WHERE id = ?)", t.ID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrPropertyTypeNotFound
		}
	}
	return nil
}

// Delete removes a property type and cascades to every property of that
// type, inside one transaction.
func (r *PropertyTypeRepo) Delete(ctx context.Context, id uint64) error {
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
		"SELECT EXISTS(SELECT 1 FROM property_types WHERE id = ?)", id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrPropertyTypeNotFound
	}
	propIDs, err := propertyIDsTx(ctx, tx, "type_id = ?", id)
	if err != nil {
		return err
	}
	if err := deletePropertiesTx(ctx, tx, propIDs); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM property_types WHERE id = ?", id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
