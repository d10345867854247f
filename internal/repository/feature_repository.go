package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/saint-mantis/truster/internal/model"
)

// FeatureRepo manages the property_features amenity catalog.  Names are
// unique.
type FeatureRepo struct {
	db *sql.DB
}

// NewFeatureRepo constructs a FeatureRepo with the provided DB handle.
func NewFeatureRepo(db *sql.DB) *FeatureRepo {
	return &FeatureRepo{db: db}
}

// Create inserts a feature, mapping a name collision to ErrDuplicateName.
func (r *FeatureRepo) Create(ctx context.Context, f *model.PropertyFeature) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO property_features (name, icon) VALUES (?, ?)", f.Name, f.Icon)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateName
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)
	return nil
}

// GetByID fetches a feature by primary key.
func (r *FeatureRepo) GetByID(ctx context.Context, id uint64) (*model.PropertyFeature, error) {
	var f model.PropertyFeature
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, icon FROM property_features WHERE id = ?", id).
		Scan(&f.ID, &f.Name, &f.Icon)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFeatureNotFound
		}
		return nil, err
	}
	return &f, nil
}

// List returns all features ordered by name.
func (r *FeatureRepo) List(ctx context.Context) ([]*model.PropertyFeature, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, icon FROM property_features ORDER BY name")
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

// Delete removes a feature and its property links.
func (r *FeatureRepo) Delete(ctx context.Context, id uint64) error {
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
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM property_feature_links WHERE feature_id = ?", id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM property_features WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrFeatureNotFound
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
