package model

import "time"

// Inquiry type values.
const (
	InquiryViewing  = "viewing"
	InquiryInfo     = "info"
	InquiryCallback = "callback"
	InquiryOffer    = "offer"
)

// Shared status values for inquiries and contact messages.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusFollowUp  = "follow_up"
	StatusClosed    = "closed"
)

// Inquiry is a visitor message about a specific property (or a general one
// when PropertyID is nil).  New inquiries start in status "new" and are
// listed newest first.
type Inquiry struct {
	ID                   uint64    // inquiries.id
	PropertyID           *uint64   // inquiries.property_id
	InquiryType          string    // inquiries.inquiry_type
	Name                 string    // inquiries.name
	Email                string    // inquiries.email
	Phone                string    // inquiries.phone
	Message              string    // inquiries.message
	PreferredContactTime string    // inquiries.preferred_contact_time
	BudgetRange          string    // inquiries.budget_range
	Status               string    // inquiries.status
	AgentNotes           string    // inquiries.agent_notes
	CreatedAt            time.Time // inquiries.created_at
	UpdatedAt            time.Time // inquiries.updated_at
}
