package service

import "context"

// FavoriteOutcome is the structured result of an idempotent favorite
// mutation.  The non-mutating outcomes (Exists, NotFound) are
// informational, not errors.
type FavoriteOutcome string

const (
	FavoriteAdded    FavoriteOutcome = "added"
	FavoriteExists   FavoriteOutcome = "exists"
	FavoriteRemoved  FavoriteOutcome = "removed"
	FavoriteNotFound FavoriteOutcome = "not_found"
)

// FavoriteService implements the idempotent add/remove operations over
// the (user, property) unique pair.
type FavoriteService struct {
	Favorites  FavoriteStore
	Properties PropertyGetter
}

// NewFavoriteService wires a FavoriteService.
func NewFavoriteService(favorites FavoriteStore, properties PropertyGetter) *FavoriteService {
	return &FavoriteService{Favorites: favorites, Properties: properties}
}

// Add records a favorite for the user.  The property must exist
// (repository.ErrPropertyNotFound passes through otherwise).  Adding an
// already-favorited property reports FavoriteExists without error.
func (s *FavoriteService) Add(ctx context.Context, userID, propertyID uint64) (FavoriteOutcome, error) {
	if _, err := s.Properties.GetByID(ctx, propertyID); err != nil {
		return "", err
	}
	created, err := s.Favorites.Add(ctx, userID, propertyID)
	if err != nil {
		return "", err
	}
	if !created {
		return FavoriteExists, nil
	}
	return FavoriteAdded, nil
}

// Remove deletes a favorite.  Removing a pair that does not exist reports
// FavoriteNotFound without error and deletes nothing.
func (s *FavoriteService) Remove(ctx context.Context, userID, propertyID uint64) (FavoriteOutcome, error) {
	removed, err := s.Favorites.Remove(ctx, userID, propertyID)
	if err != nil {
		return "", err
	}
	if !removed {
		return FavoriteNotFound, nil
	}
	return FavoriteRemoved, nil
}
