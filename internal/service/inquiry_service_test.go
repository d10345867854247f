package service

import (
	"context"
	"errors"
	"testing"

	"github.com/saint-mantis/truster/internal/model"
	"github.com/saint-mantis/truster/internal/queue"
	"github.com/saint-mantis/truster/internal/repository"
)

func newInquiryFixture(props ...*model.Property) (*InquiryService, *fakeInquiryStore, *fakeNotifier) {
	inquiries := &fakeInquiryStore{}
	notifier := &fakeNotifier{}
	agents := &fakeAgentStore{agents: map[uint64]*model.Agent{
		7: {ID: 7, Name: "Jane Seller", Email: "jane@example.com"},
	}}
	svc := NewInquiryService(inquiries, newFakePropertyStore(props...), agents, notifier, "admin@example.com")
	return svc, inquiries, notifier
}

func TestInquiryCreate_PersistsWithNewStatus(t *testing.T) {
	prop := &model.Property{ID: 1, Title: "Sea View Villa", AgentID: 7}
	svc, inquiries, notifier := newInquiryFixture(prop)

	id := prop.ID
	in, err := svc.Create(context.Background(), InquiryInput{
		PropertyID: &id,
		Name:       "Alice",
		Email:      "alice@example.com",
		Message:    "Is it still available?",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if in.Status != model.StatusNew {
		t.Errorf("status = %q, want %q", in.Status, model.StatusNew)
	}
	if in.InquiryType != model.InquiryInfo {
		t.Errorf("inquiry type = %q, want default %q", in.InquiryType, model.InquiryInfo)
	}
	if len(inquiries.created) != 1 {
		t.Fatalf("persisted %d inquiries, want 1", len(inquiries.created))
	}
	if in.PropertyID == nil || *in.PropertyID != prop.ID {
		t.Errorf("property id not carried through")
	}
	if len(notifier.published) != 2 {
		t.Fatalf("published %d messages, want agent alert + acknowledgment", len(notifier.published))
	}
	if notifier.published[0].Recipient != "jane@example.com" {
		t.Errorf("agent alert sent to %q", notifier.published[0].Recipient)
	}
	if notifier.published[1].Kind != queue.KindAcknowledgment || notifier.published[1].Recipient != "alice@example.com" {
		t.Errorf("acknowledgment not sent to submitter: %+v", notifier.published[1])
	}
}

func TestInquiryCreate_MissingFields(t *testing.T) {
	svc, inquiries, _ := newInquiryFixture()

	_, err := svc.Create(context.Background(), InquiryInput{
		Name:  "  ",
		Email: "alice@example.com",
	})
	if !errors.Is(err, ErrMissingFields) {
		t.Fatalf("err = %v, want ErrMissingFields", err)
	}
	if len(inquiries.created) != 0 {
		t.Errorf("invalid input must not persist")
	}
}

func TestInquiryCreate_UnknownPropertyWritesNothing(t *testing.T) {
	svc, inquiries, notifier := newInquiryFixture()

	missing := uint64(99)
	_, err := svc.Create(context.Background(), InquiryInput{
		PropertyID: &missing,
		Name:       "Alice",
		Email:      "alice@example.com",
		Message:    "hello",
	})
	if !errors.Is(err, repository.ErrPropertyNotFound) {
		t.Fatalf("err = %v, want ErrPropertyNotFound", err)
	}
	if len(inquiries.created) != 0 || len(notifier.published) != 0 {
		t.Errorf("failed reference resolution must not write or notify")
	}
}

func TestInquiryCreate_GeneralInquiryGoesToAdmin(t *testing.T) {
	svc, _, notifier := newInquiryFixture()

	_, err := svc.Create(context.Background(), InquiryInput{
		Name:    "Bob",
		Email:   "bob@example.com",
		Message: "Do you handle commercial lots?",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if notifier.published[0].Recipient != "admin@example.com" {
		t.Errorf("general inquiry alert sent to %q, want operator address", notifier.published[0].Recipient)
	}
}

func TestInquiryCreate_NotifierFailureIsSwallowed(t *testing.T) {
	prop := &model.Property{ID: 1, Title: "Loft", AgentID: 7}
	svc, inquiries, notifier := newInquiryFixture(prop)
	notifier.err = errors.New("broker down")

	id := prop.ID
	in, err := svc.Create(context.Background(), InquiryInput{
		PropertyID: &id,
		Name:       "Alice",
		Email:      "alice@example.com",
		Message:    "hi",
	})
	if err != nil {
		t.Fatalf("notification failure must not fail the mutation: %v", err)
	}
	if in.ID == 0 || len(inquiries.created) != 1 {
		t.Errorf("inquiry not persisted despite notifier failure")
	}
}
