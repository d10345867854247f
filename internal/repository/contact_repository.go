package repository

import (
	"context"
	"database/sql"

	"github.com/saint-mantis/truster/internal/model"
)

// ContactRepo manages standalone contact-form messages.
type ContactRepo struct {
	db *sql.DB
}

// NewContactRepo constructs a ContactRepo with the provided DB handle.
func NewContactRepo(db *sql.DB) *ContactRepo {
	return &ContactRepo{db: db}
}

// Create inserts a contact message.  Validation happens in the service
// layer.
func (r *ContactRepo) Create(ctx context.Context, ct *model.Contact) error {
	const q = `INSERT INTO contacts (name, email, phone, inquiry_type, subject, message, status)
		VALUES (?,?,?,?,?,?,?)`
	res, err := r.db.ExecContext(ctx, q,
		ct.Name, ct.Email, ct.Phone, ct.InquiryType, ct.Subject, ct.Message, ct.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	ct.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM contacts WHERE id = ?", ct.ID).
		Scan(&ct.CreatedAt, &ct.UpdatedAt)
}

// List returns one page of contact messages newest first plus the total
// count.
func (r *ContactRepo) List(ctx context.Context, page, pageSize int) ([]*model.Contact, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM contacts").Scan(&total); err != nil {
		return nil, 0, err
	}
	const q = `SELECT id, name, email, phone, inquiry_type, subject, message, status, admin_notes, created_at, updated_at
		FROM contacts ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, q, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var out []*model.Contact
	for rows.Next() {
		ct := new(model.Contact)
		if err := rows.Scan(&ct.ID, &ct.Name, &ct.Email, &ct.Phone, &ct.InquiryType,
			&ct.Subject, &ct.Message, &ct.Status, &ct.AdminNotes, &ct.CreatedAt, &ct.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// UpdateStatus moves a contact message through its workflow states.
func (r *ContactRepo) UpdateStatus(ctx context.Context, id uint64, status, adminNotes string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE contacts SET status=?, admin_notes=?, updated_at=CURRENT_TIMESTAMP WHERE id=?",
		status, adminNotes, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM contacts WHERE id = ?)", id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrContactNotFound
		}
	}
	return nil
}
