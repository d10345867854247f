package model

import "time"

// User roles.
const (
	RoleCustomer = "CUSTOMER"
	RoleAdmin    = "ADMIN"
)

// User mirrors the 'users' table.  The account is the opaque principal the
// favorites and admin surfaces authenticate against.
type User struct {
	ID           uint64    // users.id
	Username     string    // users.username, unique
	Email        string    // users.email, unique
	FullName     string    // users.full_name
	PasswordHash string    // users.password_hash
	Role         string    // users.role
	IsActive     bool      // users.is_active
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
