package repository

import (
	"context"
	"database/sql"

	"github.com/saint-mantis/truster/internal/model"
)

// FavoriteRepo manages the favorites table.  The (user_id, property_id)
// unique key makes Add a get-or-create: the insert is attempted and a
// duplicate-key failure is treated as the existing-record case rather
// than an error.
type FavoriteRepo struct {
	db *sql.DB
}

// NewFavoriteRepo constructs a FavoriteRepo with the provided DB handle.
func NewFavoriteRepo(db *sql.DB) *FavoriteRepo {
	return &FavoriteRepo{db: db}
}

// Add records a favorite.  It returns created=false without error when
// the pair already exists.
func (r *FavoriteRepo) Add(ctx context.Context, userID, propertyID uint64) (created bool, err error) {
	_, err = r.db.ExecContext(ctx,
		"INSERT INTO favorites (user_id, property_id) VALUES (?, ?)", userID, propertyID)
	if err != nil {
		if isDuplicateKey(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Remove deletes a favorite.  It returns removed=false without error when
// no such pair exists.
func (r *FavoriteRepo) Remove(ctx context.Context, userID, propertyID uint64) (removed bool, err error) {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM favorites WHERE user_id = ? AND property_id = ?", userID, propertyID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListByUser returns the user's favorites newest first.
func (r *FavoriteRepo) ListByUser(ctx context.Context, userID uint64) ([]*model.Favorite, error) {
	const q = `SELECT id, user_id, property_id, created_at
		FROM favorites WHERE user_id = ? ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Favorite
	for rows.Next() {
		f := new(model.Favorite)
		if err := rows.Scan(&f.ID, &f.UserID, &f.PropertyID, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
