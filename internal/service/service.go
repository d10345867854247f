// Package service holds the mutation orchestration between handlers and
// repositories: input validation, existence checks, outcome mapping and
// best-effort notification dispatch.  Services depend on narrow store
// interfaces so they can be exercised against fakes in tests.
package service

import (
	"context"
	"errors"

	"github.com/saint-mantis/truster/internal/model"
	"github.com/saint-mantis/truster/internal/queue"
)

// ErrMissingFields is returned when a mutation input lacks one of its
// required fields.  Handlers translate it into a 400 response.
var ErrMissingFields = errors.New("missing required fields")

// PropertyGetter resolves properties referenced by mutations.
type PropertyGetter interface {
	GetByID(ctx context.Context, id uint64) (*model.Property, error)
}

// AgentGetter resolves the agent responsible for a property, used to
// address notification messages.
type AgentGetter interface {
	GetByID(ctx context.Context, id uint64) (*model.Agent, error)
}

// InquiryStore persists inquiries.
type InquiryStore interface {
	Create(ctx context.Context, in *model.Inquiry) error
}

// ContactStore persists contact messages.
type ContactStore interface {
	Create(ctx context.Context, ct *model.Contact) error
}

// FavoriteStore persists favorites with get-or-create semantics.
type FavoriteStore interface {
	Add(ctx context.Context, userID, propertyID uint64) (created bool, err error)
	Remove(ctx context.Context, userID, propertyID uint64) (removed bool, err error)
}

// ImageStore persists gallery images and owns the single-primary
// invariant: SetPrimary must clear every other primary flag of the
// property in the same atomic unit that sets the new one.
type ImageStore interface {
	Add(ctx context.Context, img *model.PropertyImage) error
	SetPrimary(ctx context.Context, propertyID, imageID uint64) error
}

// Notifier dispatches a notification message.  Implementations log their
// own failures; services ignore the returned error on the mutation path.
type Notifier interface {
	Publish(ctx context.Context, msg queue.NotificationMessage) error
}
