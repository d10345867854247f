package model

import "time"

// Testimonial is a customer quote attributed to an agent and optionally to
// a property.  Rating is bounded to [1,5].  When the referenced property is
// deleted the reference is cleared, the testimonial itself survives.
type Testimonial struct {
	ID         uint64    // testimonials.id
	Name       string    // testimonials.name
	Role       string    // testimonials.role
	Image      string    // testimonials.image (opaque asset reference)
	Content    string    // testimonials.content
	Rating     uint32    // testimonials.rating, 1..5
	PropertyID *uint64   // testimonials.property_id, cleared on property delete
	AgentID    uint64    // testimonials.agent_id
	IsFeatured bool      // testimonials.is_featured
	CreatedAt  time.Time // testimonials.created_at
}
