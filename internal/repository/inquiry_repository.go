package repository

import (
	"context"
	"database/sql"

	"github.com/saint-mantis/truster/internal/model"
)

// InquiryRepo manages property inquiries submitted by visitors.
type InquiryRepo struct {
	db *sql.DB
}

// NewInquiryRepo constructs an InquiryRepo with the provided DB handle.
func NewInquiryRepo(db *sql.DB) *InquiryRepo {
	return &InquiryRepo{db: db}
}

// Create inserts a new inquiry.  Field validation and the property
// existence check belong to the service layer; this method only persists.
func (r *InquiryRepo) Create(ctx context.Context, in *model.Inquiry) error {
	const q = `INSERT INTO inquiries
		(property_id, inquiry_type, name, email, phone, message,
		 preferred_contact_time, budget_range, status)
		VALUES (?,?,?,?,?,?,?,?,?)`
	res, err := r.db.ExecContext(ctx, q,
		in.PropertyID, in.InquiryType, in.Name, in.Email, in.Phone,
		in.Message, in.PreferredContactTime, in.BudgetRange, in.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	in.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM inquiries WHERE id = ?", in.ID).
		Scan(&in.CreatedAt, &in.UpdatedAt)
}

// List returns one page of inquiries newest first plus the total count.
func (r *InquiryRepo) List(ctx context.Context, page, pageSize int) ([]*model.Inquiry, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM inquiries").Scan(&total); err != nil {
		return nil, 0, err
	}
	const q = `SELECT id, property_id, inquiry_type, name, email, phone, message,
			preferred_contact_time, budget_range, status, agent_notes, created_at, updated_at
		FROM inquiries ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, q, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var out []*model.Inquiry
	for rows.Next() {
		in := new(model.Inquiry)
		var propID sql.NullInt64
		if err := rows.Scan(&in.ID, &propID, &in.InquiryType, &in.Name, &in.Email,
			&in.Phone, &in.Message, &in.PreferredContactTime, &in.BudgetRange,
			&in.Status, &in.AgentNotes, &in.CreatedAt, &in.UpdatedAt); err != nil {
			return nil, 0, err
		}
		if propID.Valid {
			v := uint64(propID.Int64)
			in.PropertyID = &v
		}
		out = append(out, in)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// UpdateStatus moves an inquiry through its workflow states and lets the
// agent attach notes.
func (r *InquiryRepo) UpdateStatus(ctx context.Context, id uint64, status, agentNotes string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE inquiries SET status=?, agent_notes=?, updated_at=CURRENT_TIMESTAMP WHERE id=?",
		status, agentNotes, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM inquiries WHERE id = ?)", id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrInquiryNotFound
		}
	}
	return nil
}

// CountNew returns the number of inquiries still in status "new", shown
// on the admin dashboard.
func (r *InquiryRepo) CountNew(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM inquiries WHERE status = ?", model.StatusNew).Scan(&n)
	return n, err
}
