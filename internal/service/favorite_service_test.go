package service

import (
	"context"
	"errors"
	"testing"

	"github.com/saint-mantis/truster/internal/model"
	"github.com/saint-mantis/truster/internal/repository"
)

func TestFavoriteAdd_Idempotent(t *testing.T) {
	store := newFakeFavoriteStore()
	svc := NewFavoriteService(store, newFakePropertyStore(&model.Property{ID: 5}))
	ctx := context.Background()

	out, err := svc.Add(ctx, 1, 5)
	if err != nil || out != FavoriteAdded {
		t.Fatalf("first add = (%v, %v), want (added, nil)", out, err)
	}
	out, err = svc.Add(ctx, 1, 5)
	if err != nil {
		t.Fatalf("second add must not error: %v", err)
	}
	if out != FavoriteExists {
		t.Errorf("second add = %v, want exists", out)
	}
	if store.count() != 1 {
		t.Errorf("store holds %d pairs, want 1", store.count())
	}
}

func TestFavoriteAdd_UnknownProperty(t *testing.T) {
	store := newFakeFavoriteStore()
	svc := NewFavoriteService(store, newFakePropertyStore())

	_, err := svc.Add(context.Background(), 1, 42)
	if !errors.Is(err, repository.ErrPropertyNotFound) {
		t.Fatalf("err = %v, want ErrPropertyNotFound", err)
	}
	if store.count() != 0 {
		t.Errorf("nothing may be written for an unknown property")
	}
}

func TestFavoriteRemove_MissingPairIsNeutral(t *testing.T) {
	store := newFakeFavoriteStore()
	svc := NewFavoriteService(store, newFakePropertyStore(&model.Property{ID: 5}))
	ctx := context.Background()

	out, err := svc.Remove(ctx, 1, 5)
	if err != nil {
		t.Fatalf("remove of absent pair must not error: %v", err)
	}
	if out != FavoriteNotFound {
		t.Errorf("remove of absent pair = %v, want not_found", out)
	}

	if _, err := svc.Add(ctx, 1, 5); err != nil {
		t.Fatalf("add: %v", err)
	}
	out, err = svc.Remove(ctx, 1, 5)
	if err != nil || out != FavoriteRemoved {
		t.Fatalf("remove = (%v, %v), want (removed, nil)", out, err)
	}
	if store.count() != 0 {
		t.Errorf("pair not removed")
	}
}
