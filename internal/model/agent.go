package model

import "time"

// Agent is the listing agent profile attached to exactly one user account.
// Rating is bounded to [0,5] at write time.  ProfileImage holds an opaque
// asset reference; upload and delivery belong to the asset provider.
type Agent struct {
	ID              uint64    // agents.id
	UserID          uint64    // agents.user_id, unique
	Name            string    // joined users.full_name
	Email           string    // joined users.email
	Phone           string    // agents.phone
	Bio             string    // agents.bio
	ProfileImage    string    // agents.profile_image
	ExperienceYears uint32    // agents.experience_years
	LicenseNumber   string    // agents.license_number
	Rating          float64   // agents.rating, 0..5
	TotalSales      uint32    // agents.total_sales
	IsActive        bool      // agents.is_active
	JoinedAt        time.Time // agents.joined_at
}
