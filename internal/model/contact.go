package model

import "time"

// Contact inquiry type values.
const (
	ContactGeneral    = "general"
	ContactBuying     = "buying"
	ContactSelling    = "selling"
	ContactRenting    = "renting"
	ContactInvestment = "investment"
)

// Contact is a standalone message submitted through the site contact form.
// Unlike Inquiry it references no property.
type Contact struct {
	ID          uint64    // contacts.id
	Name        string    // contacts.name
	Email       string    // contacts.email
	Phone       string    // contacts.phone
	InquiryType string    // contacts.inquiry_type
	Subject     string    // contacts.subject
	Message     string    // contacts.message
	Status      string    // contacts.status
	AdminNotes  string    // contacts.admin_notes
	CreatedAt   time.Time // contacts.created_at
	UpdatedAt   time.Time // contacts.updated_at
}
