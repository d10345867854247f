package service

import (
	"context"
	"sync"

	"github.com/saint-mantis/truster/internal/model"
	"github.com/saint-mantis/truster/internal/queue"
	"github.com/saint-mantis/truster/internal/repository"
)

// In-memory fakes for the store interfaces.

type fakePropertyStore struct {
	props map[uint64]*model.Property
}

func newFakePropertyStore(props ...*model.Property) *fakePropertyStore {
	m := make(map[uint64]*model.Property, len(props))
	for _, p := range props {
		m[p.ID] = p
	}
	return &fakePropertyStore{props: m}
}

func (f *fakePropertyStore) GetByID(_ context.Context, id uint64) (*model.Property, error) {
	p, ok := f.props[id]
	if !ok {
		return nil, repository.ErrPropertyNotFound
	}
	return p, nil
}

type fakeAgentStore struct {
	agents map[uint64]*model.Agent
}

func (f *fakeAgentStore) GetByID(_ context.Context, id uint64) (*model.Agent, error) {
	a, ok := f.agents[id]
	if !ok {
		return nil, repository.ErrAgentNotFound
	}
	return a, nil
}

type fakeInquiryStore struct {
	created []*model.Inquiry
	err     error
}

func (f *fakeInquiryStore) Create(_ context.Context, in *model.Inquiry) error {
	if f.err != nil {
		return f.err
	}
	in.ID = uint64(len(f.created) + 1)
	f.created = append(f.created, in)
	return nil
}

type fakeContactStore struct {
	created []*model.Contact
}

func (f *fakeContactStore) Create(_ context.Context, ct *model.Contact) error {
	ct.ID = uint64(len(f.created) + 1)
	f.created = append(f.created, ct)
	return nil
}

type pair struct{ userID, propertyID uint64 }

type fakeFavoriteStore struct {
	mu    sync.Mutex
	pairs map[pair]bool
}

func newFakeFavoriteStore() *fakeFavoriteStore {
	return &fakeFavoriteStore{pairs: make(map[pair]bool)}
}

func (f *fakeFavoriteStore) Add(_ context.Context, userID, propertyID uint64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := pair{userID, propertyID}
	if f.pairs[k] {
		return false, nil
	}
	f.pairs[k] = true
	return true, nil
}

func (f *fakeFavoriteStore) Remove(_ context.Context, userID, propertyID uint64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := pair{userID, propertyID}
	if !f.pairs[k] {
		return false, nil
	}
	delete(f.pairs, k)
	return true, nil
}

func (f *fakeFavoriteStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pairs)
}

// fakeImageStore mirrors the repository's clear-then-set semantics for the
// primary flag under a mutex, so concurrent SetPrimary calls serialize the
// same way competing transactions do.
type fakeImageStore struct {
	mu     sync.Mutex
	nextID uint64
	images []*model.PropertyImage
}

func (f *fakeImageStore) Add(_ context.Context, img *model.PropertyImage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	img.ID = f.nextID
	if img.IsPrimary {
		for _, other := range f.images {
			if other.PropertyID == img.PropertyID {
				other.IsPrimary = false
			}
		}
	}
	cp := *img
	f.images = append(f.images, &cp)
	return nil
}

func (f *fakeImageStore) SetPrimary(_ context.Context, propertyID, imageID uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var target *model.PropertyImage
	for _, img := range f.images {
		if img.ID == imageID && img.PropertyID == propertyID {
			target = img
			break
		}
	}
	if target == nil {
		return repository.ErrImageNotFound
	}
	for _, img := range f.images {
		if img.PropertyID == propertyID {
			img.IsPrimary = false
		}
	}
	target.IsPrimary = true
	return nil
}

func (f *fakeImageStore) primaryCount(propertyID uint64) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, img := range f.images {
		if img.PropertyID == propertyID && img.IsPrimary {
			n++
		}
	}
	return n
}

type fakeNotifier struct {
	mu        sync.Mutex
	published []queue.NotificationMessage
	err       error
}

func (f *fakeNotifier) Publish(_ context.Context, msg queue.NotificationMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	return nil
}
