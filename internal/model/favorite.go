package model

import "time"

// Favorite marks a property saved by a user.  The (UserID, PropertyID)
// pair is unique; adds are idempotent get-or-create operations.
type Favorite struct {
	ID         uint64    // favorites.id
	UserID     uint64    // favorites.user_id
	PropertyID uint64    // favorites.property_id
	CreatedAt  time.Time // favorites.created_at
}
