package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/saint-mantis/truster/internal/model"
	"github.com/saint-mantis/truster/internal/utils"
)

// This file covers the catalog entities behind listings: property types,
// the location tree and the amenity features.

// ----- property types -----

type propertyTypeReq struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CreatePropertyType adds a category.  Name and slug are both unique.
// POST /v1/admin/property-types
func (h *AdminHandler) CreatePropertyType(c echo.Context) error {
	var req propertyTypeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}
	t := model.PropertyType{
		Name:        req.Name,
		Slug:        strings.TrimSpace(req.Slug),
		Description: req.Description,
		Icon:        req.Icon,
	}
	if t.Slug == "" {
		t.Slug = utils.Slugify(t.Name)
	}
	if err := h.Types.Create(c.Request().Context(), &t); err != nil {
		return writeRepoError(c, err)
	}
	return c.JSON(http.StatusCreated, typeOut{ID: t.ID, Name: t.Name, Slug: t.Slug, Description: t.Description, Icon: t.Icon})
}

// UpdatePropertyType rewrites a category.
// PUT /v1/admin/property-types/:id
func (h *AdminHandler) UpdatePropertyType(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req propertyTypeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	ctx := c.Request().Context()
	t, err := h.Types.GetByID(ctx, id)
	if err != nil {
		return writeRepoError(c, err)
	}
	t.Name = req.Name
	if s := strings.TrimSpace(req.Slug); s != "" {
		t.Slug = s
	}
	t.Description = req.Description
	t.Icon = req.Icon
	if err := h.Types.Update(ctx, t); err != nil {
		return writeRepoError(c, err)
	}
	return c.JSON(http.StatusOK, typeOut{ID: t.ID, Name: t.Name, Slug: t.Slug, Description: t.Description, Icon: t.Icon})
}

// DeletePropertyType removes a category and every property filed under
// it, including those properties' dependents.
// DELETE /v1/admin/property-types/:id
func (h *AdminHandler) DeletePropertyType(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Types.Delete(c.Request().Context(), id); err != nil {
		return writeRepoError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ----- locations -----

type locationReq struct {
	Name      string   `json:"name"`
	Slug      string   `json:"slug"`
	ParentID  *uint64  `json:"parent_id"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// CreateLocation adds a node to the area tree.  The parent, when given,
// must already exist, which keeps the tree acyclic.
// POST /v1/admin/locations
func (h *AdminHandler) CreateLocation(c echo.Context) error {
	var req locationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}
	l := model.Location{
		Name:      req.Name,
		Slug:      strings.TrimSpace(req.Slug),
		ParentID:  req.ParentID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if l.Slug == "" {
		l.Slug = utils.Slugify(l.Name)
	}
	if err := h.Locations.Create(c.Request().Context(), &l); err != nil {
		return writeRepoError(c, err)
	}
	return c.JSON(http.StatusCreated, toLocationOut(&l))
}

// DeleteLocation removes a location, its entire subtree and every
// property in any of those locations.
// DELETE /v1/admin/locations/:id
func (h *AdminHandler) DeleteLocation(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Locations.Delete(c.Request().Context(), id); err != nil {
		return writeRepoError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ----- features -----

type featureReq struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// CreateFeature adds an amenity tag.  Name is unique.
// POST /v1/admin/features
func (h *AdminHandler) CreateFeature(c echo.Context) error {
	var req featureReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}
	f := model.PropertyFeature{Name: req.Name, Icon: req.Icon}
	if err := h.Features.Create(c.Request().Context(), &f); err != nil {
		return writeRepoError(c, err)
	}
	return c.JSON(http.StatusCreated, featureOut{ID: f.ID, Name: f.Name, Icon: f.Icon})
}

// ListFeatures returns all amenity tags.
// GET /v1/admin/features
func (h *AdminHandler) ListFeatures(c echo.Context) error {
	feats, err := h.Features.List(c.Request().Context())
	if err != nil {
		return writeRepoError(c, err)
	}
	out := make([]featureOut, 0, len(feats))
	for _, f := range feats {
		out = append(out, featureOut{ID: f.ID, Name: f.Name, Icon: f.Icon})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// DeleteFeature removes an amenity tag and its property links.
// DELETE /v1/admin/features/:id
func (h *AdminHandler) DeleteFeature(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Features.Delete(c.Request().Context(), id); err != nil {
		return writeRepoError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
