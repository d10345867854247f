package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/saint-mantis/truster/internal/model"
)

// TestimonialRepo manages customer testimonials.  A testimonial belongs
// to an agent and may reference a property; the reference is cleared, not
// cascaded, when that property is deleted.
type TestimonialRepo struct {
	db *sql.DB
}

// NewTestimonialRepo constructs a TestimonialRepo with the provided DB handle.
func NewTestimonialRepo(db *sql.DB) *TestimonialRepo {
	return &TestimonialRepo{db: db}
}

// Create inserts a testimonial, enforcing the [1,5] rating bound and the
// existence of the referenced agent and optional property.
func (r *TestimonialRepo) Create(ctx context.Context, t *model.Testimonial) error {
	if t.Rating < 1 || t.Rating > 5 {
		return ErrTestimonialRatingOutOfRange
	}
	var exists bool
	if err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM agents WHERE id = ?)", t.AgentID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrAgentNotFound
	}
	if t.PropertyID != nil {
		if err := r.db.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM properties WHERE id = ?)", *t.PropertyID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrPropertyNotFound
		}
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO testimonials (name, role, image, content, rating, property_id, agent_id, is_featured)
		 VALUES (?,?,?,?,?,?,?,?)`,
		t.Name, t.Role, t.Image, t.Content, t.Rating, t.PropertyID, t.AgentID, t.IsFeatured)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		"SELECT created_at FROM testimonials WHERE id = ?", t.ID).Scan(&t.CreatedAt)
}

// ListFeatured returns up to limit featured testimonials newest first,
// for the home page.
func (r *TestimonialRepo) ListFeatured(ctx context.Context, limit int) ([]*model.Testimonial, error) {
	const q = `SELECT id, name, role, image, content, rating, property_id, agent_id, is_featured, created_at
		FROM testimonials WHERE is_featured = 1 ORDER BY created_at DESC, id DESC LIMIT ?`
	return r.queryTestimonials(ctx, q, limit)
}

// List returns all testimonials newest first.
func (r *TestimonialRepo) List(ctx context.Context) ([]*model.Testimonial, error) {
	const q = `SELECT id, name, role, image, content, rating, property_id, agent_id, is_featured, created_at
		FROM testimonials ORDER BY created_at DESC, id DESC`
	return r.queryTestimonials(ctx, q)
}

func (r *TestimonialRepo) queryTestimonials(ctx context.Context, q string, args ...any) ([]*model.Testimonial, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Testimonial
	for rows.Next() {
		t := new(model.Testimonial)
		var propID sql.NullInt64
		if err := rows.Scan(&t.ID, &t.Name, &t.Role, &t.Image, &t.Content, &t.Rating,
			&propID, &t.AgentID, &t.IsFeatured, &t.CreatedAt); err != nil {
			return nil, err
		}
		if propID.Valid {
			v := uint64(propID.Int64)
			t.PropertyID = &v
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetByID fetches a testimonial by primary key.
func (r *TestimonialRepo) GetByID(ctx context.Context, id uint64) (*model.Testimonial, error) {
	const q = `SELECT id, name, role, image, content, rating, property_id, agent_id, is_featured, created_at
		FROM testimonials WHERE id = ?`
	var t model.Testimonial
	var propID sql.NullInt64
	err := r.db.QueryRowContext(ctx, q, id).Scan(&t.ID, &t.Name, &t.Role, &t.Image,
		&t.Content, &t.Rating, &propID, &t.AgentID, &t.IsFeatured, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTestimonialNotFound
		}
		return nil, err
	}
	if propID.Valid {
		v := uint64(propID.Int64)
		t.PropertyID = &v
	}
	return &t, nil
}

// Delete removes a testimonial.
func (r *TestimonialRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM testimonials WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTestimonialNotFound
	}
	return nil
}
