package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saint-mantis/truster/internal/repository"
	"github.com/saint-mantis/truster/internal/service"
)

// FavoriteHandler exposes the saved-properties endpoints for
// authenticated customers.  Add and Remove are idempotent; repeating
// either reports an informational status instead of an error.
type FavoriteHandler struct {
	Service   *service.FavoriteService
	Favorites *repository.FavoriteRepo
	Images    *repository.ImageRepo
	Props     *repository.PropertyRepo
}

func NewFavoriteHandler(svc *service.FavoriteService, favorites *repository.FavoriteRepo, images *repository.ImageRepo, props *repository.PropertyRepo) *FavoriteHandler {
	return &FavoriteHandler{Service: svc, Favorites: favorites, Images: images, Props: props}
}

// Add saves a property to the user's favorites.
// POST /v1/favorites/:propertyID
func (h *FavoriteHandler) Add(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	propertyID, ok := pathID(c, "propertyID")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid property id"})
	}

	outcome, err := h.Service.Add(c.Request().Context(), uid, propertyID)
	if err != nil {
		return writeRepoError(c, err)
	}
	if outcome == service.FavoriteExists {
		return c.JSON(http.StatusOK, echo.Map{"status": "info", "message": "Property already in favorites"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"status": "success", "message": "Property added to favorites"})
}

// Remove drops a property from the user's favorites.
// DELETE /v1/favorites/:propertyID
func (h *FavoriteHandler) Remove(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	propertyID, ok := pathID(c, "propertyID")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid property id"})
	}

	outcome, err := h.Service.Remove(c.Request().Context(), uid, propertyID)
	if err != nil {
		return writeRepoError(c, err)
	}
	if outcome == service.FavoriteNotFound {
		return c.JSON(http.StatusOK, echo.Map{"status": "info", "message": "Property not in favorites"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "success", "message": "Property removed from favorites"})
}

type favoriteOut struct {
	PropertyID   uint64  `json:"property_id"`
	Title        string  `json:"title"`
	Slug         string  `json:"slug"`
	Price        float64 `json:"price"`
	Status       string  `json:"status"`
	ListingType  string  `json:"listing_type"`
	PrimaryImage string  `json:"primary_image,omitempty"`
	SavedAt      string  `json:"saved_at"`
}

// List returns the user's saved properties, newest first.  Unpublished
// properties stay in the list but render from their stored fields only.
// GET /v1/favorites
func (h *FavoriteHandler) List(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx := c.Request().Context()
	favs, err := h.Favorites.ListByUser(ctx, uid)
	if err != nil {
		return writeRepoError(c, err)
	}

	out := make([]favoriteOut, 0, len(favs))
	for _, f := range favs {
		p, err := h.Props.GetByID(ctx, f.PropertyID)
		if err != nil {
			continue
		}
		item := favoriteOut{
			PropertyID: p.ID, Title: p.Title, Slug: p.Slug, Price: p.Price,
			Status: p.Status, ListingType: p.ListingType,
			SavedAt: f.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		if pi, err := h.Images.GetPrimary(ctx, p.ID); err == nil && pi != nil {
			item.PrimaryImage = pi.Image
		}
		out = append(out, item)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}
