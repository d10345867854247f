package service

import (
	"context"
	"strings"

	"github.com/saint-mantis/truster/internal/model"
)

// MediaService manages gallery writes.  The store guarantees that setting
// a primary flag clears every other flag of the same property atomically.
type MediaService struct {
	Images     ImageStore
	Properties PropertyGetter
}

// NewMediaService wires a MediaService.
func NewMediaService(images ImageStore, properties PropertyGetter) *MediaService {
	return &MediaService{Images: images, Properties: properties}
}

// AddImage validates and stores a gallery image.  The image reference is
// an opaque asset identifier and must be non-empty.
func (s *MediaService) AddImage(ctx context.Context, img *model.PropertyImage) error {
	if strings.TrimSpace(img.Image) == "" {
		return ErrMissingFields
	}
	if _, err := s.Properties.GetByID(ctx, img.PropertyID); err != nil {
		return err
	}
	return s.Images.Add(ctx, img)
}

// SetPrimaryImage designates one image of a property as its cover image.
func (s *MediaService) SetPrimaryImage(ctx context.Context, propertyID, imageID uint64) error {
	if _, err := s.Properties.GetByID(ctx, propertyID); err != nil {
		return err
	}
	return s.Images.SetPrimary(ctx, propertyID, imageID)
}
