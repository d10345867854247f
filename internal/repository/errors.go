// Package repository contains the data access layer.  This file defines
// sentinel errors shared across repositories so that services and handlers
// can map failure scenarios to structured outcomes: not-found sentinels
// become 404 responses, duplicate sentinels become 409, and validation
// sentinels become 400.
package repository

import (
	"errors"
	"strings"
)

// Not-found sentinels, one per entity that callers look up directly.
var (
	ErrPropertyNotFound     = errors.New("property not found")
	ErrPropertyTypeNotFound = errors.New("property type not found")
	ErrLocationNotFound     = errors.New("location not found")
	ErrAgentNotFound        = errors.New("agent not found")
	ErrFeatureNotFound      = errors.New("feature not found")
	ErrImageNotFound        = errors.New("image not found")
	ErrInquiryNotFound      = errors.New("inquiry not found")
	ErrTestimonialNotFound  = errors.New("testimonial not found")
	ErrContactNotFound      = errors.New("contact not found")
)

// Duplicate-key sentinels raised when a write violates a uniqueness
// constraint.
var (
	ErrDuplicateSlug     = errors.New("slug already exists")
	ErrDuplicateName     = errors.New("name already exists")
	ErrDuplicateLocation = errors.New("location name already exists under this parent")
	ErrEmailExists       = errors.New("email already exists")
	ErrUsernameExists    = errors.New("username already exists")
	ErrAgentExists       = errors.New("agent already exists for this user")
)

// Validation sentinels for numeric bounds enforced at write time.
var (
	ErrAgentRatingOutOfRange       = errors.New("agent rating must be between 0 and 5")
	ErrTestimonialRatingOutOfRange = errors.New("testimonial rating must be between 1 and 5")
)

// isDuplicateKey reports whether err is a MySQL duplicate-entry error
// (error code 1062).  Repositories use it to translate driver errors into
// the sentinels above, which also powers the get-or-create favorite path.
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
