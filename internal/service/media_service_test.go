package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/saint-mantis/truster/internal/model"
	"github.com/saint-mantis/truster/internal/repository"
)

func TestAddImage_Validation(t *testing.T) {
	images := &fakeImageStore{}
	svc := NewMediaService(images, newFakePropertyStore(&model.Property{ID: 1}))
	ctx := context.Background()

	err := svc.AddImage(ctx, &model.PropertyImage{PropertyID: 1, Image: "  "})
	if !errors.Is(err, ErrMissingFields) {
		t.Fatalf("blank image ref: err = %v, want ErrMissingFields", err)
	}

	err = svc.AddImage(ctx, &model.PropertyImage{PropertyID: 9, Image: "villa.jpg"})
	if !errors.Is(err, repository.ErrPropertyNotFound) {
		t.Fatalf("unknown property: err = %v, want ErrPropertyNotFound", err)
	}

	img := &model.PropertyImage{PropertyID: 1, Image: "villa.jpg", IsPrimary: true}
	if err := svc.AddImage(ctx, img); err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	if img.ID == 0 {
		t.Errorf("image id not assigned")
	}
}

func TestAddImage_NewPrimaryDemotesOld(t *testing.T) {
	images := &fakeImageStore{}
	svc := NewMediaService(images, newFakePropertyStore(&model.Property{ID: 1}))
	ctx := context.Background()

	first := &model.PropertyImage{PropertyID: 1, Image: "a.jpg", IsPrimary: true}
	second := &model.PropertyImage{PropertyID: 1, Image: "b.jpg", IsPrimary: true}
	if err := svc.AddImage(ctx, first); err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	if err := svc.AddImage(ctx, second); err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	if n := images.primaryCount(1); n != 1 {
		t.Errorf("primary count = %d, want 1", n)
	}
}

func TestSetPrimaryImage_SingleWinnerUnderConcurrency(t *testing.T) {
	images := &fakeImageStore{}
	svc := NewMediaService(images, newFakePropertyStore(&model.Property{ID: 1}))
	ctx := context.Background()

	ids := make([]uint64, 8)
	for i := range ids {
		img := &model.PropertyImage{PropertyID: 1, Image: "g.jpg"}
		if err := svc.AddImage(ctx, img); err != nil {
			t.Fatalf("AddImage: %v", err)
		}
		ids[i] = img.ID
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(imageID uint64) {
			defer wg.Done()
			if err := svc.SetPrimaryImage(ctx, 1, imageID); err != nil {
				t.Errorf("SetPrimaryImage(%d): %v", imageID, err)
			}
		}(id)
	}
	wg.Wait()

	if n := images.primaryCount(1); n != 1 {
		t.Errorf("after concurrent flips primary count = %d, want exactly 1", n)
	}
}

func TestSetPrimaryImage_WrongProperty(t *testing.T) {
	images := &fakeImageStore{}
	svc := NewMediaService(images, newFakePropertyStore(&model.Property{ID: 1}, &model.Property{ID: 2}))
	ctx := context.Background()

	img := &model.PropertyImage{PropertyID: 1, Image: "a.jpg"}
	if err := svc.AddImage(ctx, img); err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	// Image belongs to property 1; flipping it through property 2 must fail.
	err := svc.SetPrimaryImage(ctx, 2, img.ID)
	if !errors.Is(err, repository.ErrImageNotFound) {
		t.Fatalf("err = %v, want ErrImageNotFound", err)
	}
}
