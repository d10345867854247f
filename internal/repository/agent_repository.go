package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/saint-mantis/truster/internal/model"
)

// AgentRepo encapsulates queries for listing agents.  Every agent is
// backed by exactly one user account; name and email are read from the
// joined users row.
type AgentRepo struct {
	db *sql.DB
}

// NewAgentRepo constructs an AgentRepo with the provided DB handle.
func NewAgentRepo(db *sql.DB) *AgentRepo {
	return &AgentRepo{db: db}
}

const agentColumns = `a.id, a.user_id, u.full_name, u.email, a.phone, a.bio,
	a.profile_image, a.experience_years, a.license_number, a.rating,
	a.total_sales, a.is_active, a.joined_at`

const agentFrom = ` FROM agents a JOIN users u ON u.id = a.user_id`

func scanAgent(s rowScanner, a *model.Agent) error {
	return s.Scan(&a.ID, &a.UserID, &a.Name, &a.Email, &a.Phone, &a.Bio,
		&a.ProfileImage, &a.ExperienceYears, &a.LicenseNumber, &a.Rating,
		&a.TotalSales, &a.IsActive, &a.JoinedAt)
}

// Create inserts a new agent profile.  The rating bound [0,5] is checked
// at write time; a second profile for the same user is rejected with
// ErrAgentExists.
func (r *AgentRepo) Create(ctx context.Context, a *model.Agent) error {
	if a.Rating < 0 || a.Rating > 5 {
		return ErrAgentRatingOutOfRange
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO agents (user_id, phone, bio, profile_image, experience_years,
		 license_number, rating, total_sales, is_active) VALUES (?,?,?,?,?,?,?,?,?)`,
		a.UserID, a.Phone, a.Bio, a.ProfileImage, a.ExperienceYears,
		a.LicenseNumber, a.Rating, a.TotalSales, a.IsActive)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrAgentExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// GetByID fetches an agent with the joined account name and email.
func (r *AgentRepo) GetByID(ctx context.Context, id uint64) (*model.Agent, error) {
	var a model.Agent
	err := scanAgent(r.db.QueryRowContext(ctx,
		"SELECT "+agentColumns+agentFrom+" WHERE a.id = ?", id), &a)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAgentNotFound
		}
		return nil, err
	}
	return &a, nil
}

// List returns all active agents ordered by rating, best first.
func (r *AgentRepo) List(ctx context.Context) ([]*model.Agent, error) {
	const q = "SELECT " + agentColumns + agentFrom + " WHERE a.is_active = 1 ORDER BY a.rating DESC, a.id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Agent
	for rows.Next() {
		a := new(model.Agent)
		if err := scanAgent(rows, a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Update rewrites the mutable profile columns, re-checking the rating
// bound.
func (r *AgentRepo) Update(ctx context.Context, a *model.Agent) error {
	if a.Rating < 0 || a.Rating > 5 {
		return ErrAgentRatingOutOfRange
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE agents SET phone=?, bio=?, profile_image=?, experience_years=?,
		 license_number=?, rating=?, total_sales=?, is_active=? WHERE id=?`,
		a.Phone, a.Bio, a.ProfileImage, a.ExperienceYears,
		a.LicenseNumber, a.Rating, a.TotalSales, a.IsActive, a.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM agents WHERE id = ?)", a.ID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrAgentNotFound
		}
	}
	return nil
}

// Delete removes an agent, cascading to the agent's properties (with
// their dependent records) and testimonials, inside one transaction.
func (r *AgentRepo) Delete(ctx context.Context, id uint64) error {
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
		"SELECT EXISTS(SELECT 1 FROM agents WHERE id = ?)", id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrAgentNotFound
	}
	propIDs, err := propertyIDsTx(ctx, tx, "agent_id = ?", id)
	if err != nil {
		return err
	}
	if err := deletePropertiesTx(ctx, tx, propIDs); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM testimonials WHERE agent_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM agents WHERE id = ?", id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
