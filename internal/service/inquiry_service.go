package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/saint-mantis/truster/internal/model"
	"github.com/saint-mantis/truster/internal/queue"
)

// InquiryService validates and persists property inquiries, then
// dispatches best-effort notifications to the responsible agent and the
// submitter.
type InquiryService struct {
	Inquiries  InquiryStore
	Properties PropertyGetter
	Agents     AgentGetter
	Notifier   Notifier
	AdminEmail string
}

// NewInquiryService wires an InquiryService.
func NewInquiryService(inquiries InquiryStore, properties PropertyGetter, agents AgentGetter, n Notifier, adminEmail string) *InquiryService {
	return &InquiryService{Inquiries: inquiries, Properties: properties, Agents: agents, Notifier: n, AdminEmail: adminEmail}
}

// InquiryInput carries the user-supplied fields of a new inquiry.
type InquiryInput struct {
	PropertyID           *uint64
	InquiryType          string
	Name                 string
	Email                string
	Phone                string
	Message              string
	PreferredContactTime string
	BudgetRange          string
}

// Create validates the input, resolves the optional property reference
// and persists the inquiry with status "new".  A property id that does
// not resolve fails with ErrPropertyNotFound before anything is written.
// Notification dispatch failures are logged by the notifier and never
// affect the returned outcome.
func (s *InquiryService) Create(ctx context.Context, input InquiryInput) (*model.Inquiry, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	message := strings.TrimSpace(input.Message)
	if name == "" || email == "" || message == "" {
		return nil, ErrMissingFields
	}
	inquiryType := strings.TrimSpace(input.InquiryType)
	if inquiryType == "" {
		inquiryType = model.InquiryInfo
	}

	var prop *model.Property
	if input.PropertyID != nil {
		p, err := s.Properties.GetByID(ctx, *input.PropertyID)
		if err != nil {
			return nil, err
		}
		prop = p
	}

	in := &model.Inquiry{
		InquiryType:          inquiryType,
		Name:                 name,
		Email:                email,
		Phone:                strings.TrimSpace(input.Phone),
		Message:              message,
		PreferredContactTime: strings.TrimSpace(input.PreferredContactTime),
		BudgetRange:          strings.TrimSpace(input.BudgetRange),
		Status:               model.StatusNew,
	}
	if prop != nil {
		in.PropertyID = &prop.ID
	}
	if err := s.Inquiries.Create(ctx, in); err != nil {
		return nil, err
	}

	s.notify(ctx, in, prop)
	return in, nil
}

// notify sends the agent alert and the submitter acknowledgment.  Both
// publishes are best-effort.
func (s *InquiryService) notify(ctx context.Context, in *model.Inquiry, prop *model.Property) {
	subject := "New inquiry"
	propTitle := "General Inquiry"
	recipient := s.AdminEmail
	kind := queue.KindAdminAlert
	if prop != nil {
		subject = fmt.Sprintf("New Inquiry for %s", prop.Title)
		propTitle = prop.Title
		if agent, err := s.Agents.GetByID(ctx, prop.AgentID); err == nil {
			recipient = agent.Email
			kind = queue.KindAgentAlert
		}
	}

	_ = s.Notifier.Publish(ctx, queue.NotificationMessage{
		Kind:      kind,
		Recipient: recipient,
		Subject:   subject,
		Body: fmt.Sprintf(
			"New property inquiry received.\n\nProperty: %s\nInquiry type: %s\n\nName: %s\nEmail: %s\nPhone: %s\n\nMessage:\n%s\n",
			propTitle, in.InquiryType, in.Name, in.Email, in.Phone, in.Message),
	})
	_ = s.Notifier.Publish(ctx, queue.NotificationMessage{
		Kind:      queue.KindAcknowledgment,
		Recipient: in.Email,
		Subject:   "Thank you for your inquiry - TRUSTER",
		Body: fmt.Sprintf(
			"Dear %s,\n\nThank you for your inquiry about %s. We have received your message and our agent will reach out within 24 hours.\n\nBest regards,\nTRUSTER Team\n",
			in.Name, propTitle),
	})
}
