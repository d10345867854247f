package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/saint-mantis/truster/internal/model"
	"github.com/saint-mantis/truster/internal/queue"
)

// ContactService validates and persists contact-form messages and
// dispatches best-effort notifications to the site operator and the
// submitter.
type ContactService struct {
	Contacts   ContactStore
	Notifier   Notifier
	AdminEmail string
}

// NewContactService wires a ContactService.
func NewContactService(contacts ContactStore, n Notifier, adminEmail string) *ContactService {
	return &ContactService{Contacts: contacts, Notifier: n, AdminEmail: adminEmail}
}

// ContactInput carries the user-supplied fields of a contact message.
type ContactInput struct {
	Name        string
	Email       string
	Phone       string
	InquiryType string
	Subject     string
	Message     string
}

// Create validates the input and persists the message with status "new".
// Name, email, subject and message are required.
func (s *ContactService) Create(ctx context.Context, input ContactInput) (*model.Contact, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	subject := strings.TrimSpace(input.Subject)
	message := strings.TrimSpace(input.Message)
	if name == "" || email == "" || subject == "" || message == "" {
		return nil, ErrMissingFields
	}
	inquiryType := strings.TrimSpace(input.InquiryType)
	if inquiryType == "" {
		inquiryType = model.ContactGeneral
	}

	ct := &model.Contact{
		Name:        name,
		Email:       email,
		Phone:       strings.TrimSpace(input.Phone),
		InquiryType: inquiryType,
		Subject:     subject,
		Message:     message,
		Status:      model.StatusNew,
	}
	if err := s.Contacts.Create(ctx, ct); err != nil {
		return nil, err
	}

	_ = s.Notifier.Publish(ctx, queue.NotificationMessage{
		Kind:      queue.KindAdminAlert,
		Recipient: s.AdminEmail,
		Subject:   fmt.Sprintf("New Contact Inquiry - %s", ct.Subject),
		Body: fmt.Sprintf(
			"New contact inquiry received.\n\nName: %s\nEmail: %s\nPhone: %s\nInquiry type: %s\n\nSubject: %s\n\nMessage:\n%s\n",
			ct.Name, ct.Email, ct.Phone, ct.InquiryType, ct.Subject, ct.Message),
	})
	_ = s.Notifier.Publish(ctx, queue.NotificationMessage{
		Kind:      queue.KindAcknowledgment,
		Recipient: ct.Email,
		Subject:   "Thank you for contacting us - TRUSTER",
		Body: fmt.Sprintf(
			"Dear %s,\n\nThank you for contacting TRUSTER. We have received your inquiry and aim to respond within 24 hours.\n\nSubject: %s\n\nBest regards,\nTRUSTER Team\n",
			ct.Name, ct.Subject),
	})
	return ct, nil
}
