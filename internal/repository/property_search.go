package repository

import (
	"context"
	"strings"
)

// PropertyFilter defines the optional criteria and pagination for the
// public listing and search views.  All criteria combine with AND on top
// of the baseline is_published predicate; the free-text Query alone
// expands to an OR across title, description, address and location name.
type PropertyFilter struct {
	TypeSlug     string
	LocationSlug string
	MinPrice     *float64
	MaxPrice     *float64
	Query        string
	FeaturedOnly bool
	Page         int
	PageSize     int
}

// clause builds the WHERE condition and its arguments for the filter.
// Table aliases: p = properties, l = locations.
func (f PropertyFilter) clause() (string, []any) {
	where := []string{"p.is_published = 1"}
	args := []any{}

	if f.FeaturedOnly {
		where = append(where, "p.is_featured = 1")
	}
	if f.TypeSlug != "" {
		where = append(where, "p.type_id = (SELECT id FROM property_types WHERE slug = ?)")
		args = append(args, f.TypeSlug)
	}
	if f.LocationSlug != "" {
		where = append(where, "l.slug = ?")
		args = append(args, f.LocationSlug)
	}
	if f.MinPrice != nil {
		where = append(where, "p.price >= ?")
		args = append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		where = append(where, "p.price <= ?")
		args = append(args, *f.MaxPrice)
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		where = append(where,
			"(LOWER(p.title) LIKE ? OR LOWER(p.description) LIKE ? OR LOWER(p.address) LIKE ? OR LOWER(l.name) LIKE ?)")
		needle := "%" + strings.ToLower(q) + "%"
		args = append(args, needle, needle, needle, needle)
	}
	return strings.Join(where, " AND "), args
}

// PropertyCard is the row shape returned by listing and search queries.
// It carries enough to render a result card: headline figures, location
// display name and the primary image reference (empty when none is
// flagged).
type PropertyCard struct {
	ID           uint64  `json:"id"`
	Title        string  `json:"title"`
	Slug         string  `json:"slug"`
	Price        float64 `json:"price"`
	Bedrooms     uint32  `json:"bedrooms"`
	Bathrooms    float64 `json:"bathrooms"`
	AreaSqft     uint32  `json:"area_sqft"`
	Status       string  `json:"status"`
	ListingType  string  `json:"listing_type"`
	IsFeatured   bool    `json:"is_featured"`
	TypeName     string  `json:"type_name"`
	LocationName string  `json:"location_name"`
	PrimaryImage string  `json:"primary_image,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// Search evaluates the filter and returns one page of published
// properties ordered newest first, plus the total match count for
// pagination.
func (r *PropertyRepo) Search(ctx context.Context, f PropertyFilter) ([]PropertyCard, int64, error) {
	cond, args := f.clause()

	var total int64
	countSQL := `SELECT COUNT(*)
		FROM properties p
		JOIN locations l ON l.id = p.location_id
		WHERE ` + cond
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := f.PageSize
	offset := (f.Page - 1) * f.PageSize

	dataSQL := `SELECT
			p.id,
			p.title,
			p.slug,
			p.price,
			p.bedrooms,
			p.bathrooms,
			p.area_sqft,
			p.status,
			p.listing_type,
			p.is_featured,
			t.name AS type_name,
			l.name AS location_name,
			COALESCE(pi.image, '') AS primary_image,
			DATE_FORMAT(p.created_at, '%Y-%m-%d %T') AS created_at
		FROM properties p
		JOIN property_types t ON t.id = p.type_id
		JOIN locations l      ON l.id = p.location_id
		LEFT JOIN property_images pi ON pi.property_id = p.id AND pi.is_primary = 1
		WHERE ` + cond + `
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT ? OFFSET ?`

	argsData := append(append([]any{}, args...), limit, offset)

	rows, err := r.db.QueryContext(ctx, dataSQL, argsData...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]PropertyCard, 0, limit)
	for rows.Next() {
		var d PropertyCard
		if err := rows.Scan(
			&d.ID,
			&d.Title,
			&d.Slug,
			&d.Price,
			&d.Bedrooms,
			&d.Bathrooms,
			&d.AreaSqft,
			&d.Status,
			&d.ListingType,
			&d.IsFeatured,
			&d.TypeName,
			&d.LocationName,
			&d.PrimaryImage,
			&d.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
