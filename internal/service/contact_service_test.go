package service

import (
	"context"
	"errors"
	"testing"

	"github.com/saint-mantis/truster/internal/model"
	"github.com/saint-mantis/truster/internal/queue"
)

func TestContactCreate_PersistsAndNotifies(t *testing.T) {
	contacts := &fakeContactStore{}
	notifier := &fakeNotifier{}
	svc := NewContactService(contacts, notifier, "admin@example.com")

	ct, err := svc.Create(context.Background(), ContactInput{
		Name:    "Carol",
		Email:   "carol@example.com",
		Subject: "Selling my flat",
		Message: "What would you list it for?",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if ct.Status != model.StatusNew {
		t.Errorf("status = %q, want %q", ct.Status, model.StatusNew)
	}
	if ct.InquiryType != model.ContactGeneral {
		t.Errorf("inquiry type = %q, want default %q", ct.InquiryType, model.ContactGeneral)
	}
	if len(contacts.created) != 1 {
		t.Fatalf("persisted %d contacts, want 1", len(contacts.created))
	}
	if len(notifier.published) != 2 {
		t.Fatalf("published %d messages, want admin alert + acknowledgment", len(notifier.published))
	}
	if notifier.published[0].Kind != queue.KindAdminAlert || notifier.published[0].Recipient != "admin@example.com" {
		t.Errorf("admin alert wrong: %+v", notifier.published[0])
	}
	if notifier.published[1].Recipient != "carol@example.com" {
		t.Errorf("acknowledgment sent to %q", notifier.published[1].Recipient)
	}
}

func TestContactCreate_MissingSubject(t *testing.T) {
	contacts := &fakeContactStore{}
	svc := NewContactService(contacts, &fakeNotifier{}, "admin@example.com")

	_, err := svc.Create(context.Background(), ContactInput{
		Name:    "Carol",
		Email:   "carol@example.com",
		Message: "no subject",
	})
	if !errors.Is(err, ErrMissingFields) {
		t.Fatalf("err = %v, want ErrMissingFields", err)
	}
	if len(contacts.created) != 0 {
		t.Errorf("invalid input must not persist")
	}
}
