package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/saint-mantis/truster/internal/model"
	"github.com/saint-mantis/truster/internal/utils"
)

// propertyReq carries the writable fields of a listing.  The same body
// serves create and update; an empty slug is derived from the title.
type propertyReq struct {
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	Description     string   `json:"description"`
	TypeID          uint64   `json:"type_id"`
	LocationID      uint64   `json:"location_id"`
	AgentID         uint64   `json:"agent_id"`
	ListingType     string   `json:"listing_type"`
	Status          string   `json:"status"`
	Price           float64  `json:"price"`
	PricePerSqft    *float64 `json:"price_per_sqft"`
	Address         string   `json:"address"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Bedrooms        uint32   `json:"bedrooms"`
	Bathrooms       float64  `json:"bathrooms"`
	AreaSqft        uint32   `json:"area_sqft"`
	LotSize         *uint32  `json:"lot_size"`
	YearBuilt       *uint32  `json:"year_built"`
	ParkingSpaces   uint32   `json:"parking_spaces"`
	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
	IsFeatured      bool     `json:"is_featured"`
	IsPublished     bool     `json:"is_published"`
	FeatureIDs      []uint64 `json:"feature_ids"`
}

func (req *propertyReq) validate() (string, bool) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return "title required", false
	}
	if req.Price <= 0 {
		return "price must be positive", false
	}
	if req.TypeID == 0 || req.LocationID == 0 || req.AgentID == 0 {
		return "type_id, location_id and agent_id are required", false
	}
	switch req.ListingType {
	case "":
		req.ListingType = model.ListingSale
	case model.ListingSale, model.ListingRent:
	default:
		return "invalid listing_type", false
	}
	switch req.Status {
	case "":
		req.Status = model.PropertyAvailable
	case model.PropertyAvailable, model.PropertySold, model.PropertyPending, model.PropertyRented:
	default:
		return "invalid status", false
	}
	return "", true
}

func (req *propertyReq) apply(p *model.Property) {
	p.Title = req.Title
	p.Slug = strings.TrimSpace(req.Slug)
	if p.Slug == "" {
		p.Slug = utils.Slugify(req.Title)
	}
	p.Description = req.Description
	p.TypeID = req.TypeID
	p.LocationID = req.LocationID
	p.AgentID = req.AgentID
	p.ListingType = req.ListingType
	p.Status = req.Status
	p.Price = req.Price
	p.PricePerSqft = req.PricePerSqft
	p.Address = req.Address
	p.Latitude = req.Latitude
	p.Longitude = req.Longitude
	p.Bedrooms = req.Bedrooms
	p.Bathrooms = req.Bathrooms
	p.AreaSqft = req.AreaSqft
	p.LotSize = req.LotSize
	p.YearBuilt = req.YearBuilt
	p.ParkingSpaces = req.ParkingSpaces
	p.MetaTitle = req.MetaTitle
	p.MetaDescription = req.MetaDescription
	p.IsFeatured = req.IsFeatured
	p.IsPublished = req.IsPublished
}

// checkRefs verifies the type, location and agent references before a
// write so a dangling id fails cleanly instead of as a constraint error.
func (h *AdminHandler) checkRefs(c echo.Context, req *propertyReq) error {
	ctx := c.Request().Context()
	if _, err := h.Types.GetByID(ctx, req.TypeID); err != nil {
		return err
	}
	if _, err := h.Locations.GetByID(ctx, req.LocationID); err != nil {
		return err
	}
	if _, err := h.Agents.GetByID(ctx, req.AgentID); err != nil {
		return err
	}
	return nil
}

// adminPropertyOut is the full row shape for management views, including
// the publication and featured flags hidden from public responses.
type adminPropertyOut struct {
	ID              uint64    `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description"`
	TypeID          uint64    `json:"type_id"`
	LocationID      uint64    `json:"location_id"`
	AgentID         uint64    `json:"agent_id"`
	ListingType     string    `json:"listing_type"`
	Status          string    `json:"status"`
	Price           float64   `json:"price"`
	PricePerSqft    *float64  `json:"price_per_sqft,omitempty"`
	Address         string    `json:"address"`
	Latitude        *float64  `json:"latitude,omitempty"`
	Longitude       *float64  `json:"longitude,omitempty"`
	Bedrooms        uint32    `json:"bedrooms"`
	Bathrooms       float64   `json:"bathrooms"`
	AreaSqft        uint32    `json:"area_sqft"`
	LotSize         *uint32   `json:"lot_size,omitempty"`
	YearBuilt       *uint32   `json:"year_built,omitempty"`
	ParkingSpaces   uint32    `json:"parking_spaces"`
	MetaTitle       string    `json:"meta_title,omitempty"`
	MetaDescription string    `json:"meta_description,omitempty"`
	IsFeatured      bool      `json:"is_featured"`
	IsPublished     bool      `json:"is_published"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toAdminPropertyOut(p *model.Property) adminPropertyOut {
	return adminPropertyOut{
		ID: p.ID, Title: p.Title, Slug: p.Slug, Description: p.Description,
		TypeID: p.TypeID, LocationID: p.LocationID, AgentID: p.AgentID,
		ListingType: p.ListingType, Status: p.Status,
		Price: p.Price, PricePerSqft: p.PricePerSqft,
		Address: p.Address, Latitude: p.Latitude, Longitude: p.Longitude,
		Bedrooms: p.Bedrooms, Bathrooms: p.Bathrooms, AreaSqft: p.AreaSqft,
		LotSize: p.LotSize, YearBuilt: p.YearBuilt, ParkingSpaces: p.ParkingSpaces,
		MetaTitle: p.MetaTitle, MetaDescription: p.MetaDescription,
		IsFeatured: p.IsFeatured, IsPublished: p.IsPublished,
		CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
	}
}

// CreateProperty creates a listing and optionally links its features.
// POST /v1/admin/properties
func (h *AdminHandler) CreateProperty(c echo.Context) error {
	var req propertyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg, ok := req.validate(); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if err := h.checkRefs(c, &req); err != nil {
		return writeRepoError(c, err)
	}

	var p model.Property
	req.apply(&p)

	ctx := c.Request().Context()
	if err := h.Properties.Create(ctx, &p); err != nil {
		return writeRepoError(c, err)
	}
	if len(req.FeatureIDs) > 0 {
		if err := h.Properties.SetFeatures(ctx, p.ID, req.FeatureIDs); err != nil {
			return writeRepoError(c, err)
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": p.ID, "slug": p.Slug})
}

// UpdateProperty rewrites a listing and replaces its feature links when
// feature_ids is present.
// PUT /v1/admin/properties/:id
func (h *AdminHandler) UpdateProperty(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req propertyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg, ok := req.validate(); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if err := h.checkRefs(c, &req); err != nil {
		return writeRepoError(c, err)
	}

	ctx := c.Request().Context()
	p, err := h.Properties.GetByID(ctx, id)
	if err != nil {
		return writeRepoError(c, err)
	}
	req.apply(p)
	if err := h.Properties.Update(ctx, p); err != nil {
		return writeRepoError(c, err)
	}
	if req.FeatureIDs != nil {
		if err := h.Properties.SetFeatures(ctx, p.ID, req.FeatureIDs); err != nil {
			return writeRepoError(c, err)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"id": p.ID, "slug": p.Slug})
}

// DeleteProperty removes a listing and all of its dependents (images,
// inquiries, favorites, feature links); testimonials keep their text and
// lose only the property reference.
// DELETE /v1/admin/properties/:id
func (h *AdminHandler) DeleteProperty(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Properties.Delete(c.Request().Context(), id); err != nil {
		return writeRepoError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListProperties pages through all listings including unpublished ones.
// GET /v1/admin/properties
func (h *AdminHandler) ListProperties(c echo.Context) error {
	page, pageSize := pageParams(c, adminPageSize)
	props, total, err := h.Properties.AdminList(c.Request().Context(), page, pageSize)
	if err != nil {
		return writeRepoError(c, err)
	}
	items := make([]adminPropertyOut, 0, len(props))
	for _, p := range props {
		items = append(items, toAdminPropertyOut(p))
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items":     items,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetProperty returns one listing by id regardless of publication state.
// GET /v1/admin/properties/:id
func (h *AdminHandler) GetProperty(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	p, err := h.Properties.GetByID(ctx, id)
	if err != nil {
		return writeRepoError(c, err)
	}
	feats, err := h.Properties.ListFeatures(ctx, id)
	if err != nil {
		return writeRepoError(c, err)
	}
	imgs, err := h.Images.ListByProperty(ctx, id)
	if err != nil {
		return writeRepoError(c, err)
	}
	gallery := make([]imageOut, 0, len(imgs))
	for _, img := range imgs {
		gallery = append(gallery, imageOut{
			ID: img.ID, Image: img.Image, AltText: img.AltText, IsPrimary: img.IsPrimary, Order: img.Order,
		})
	}
	featsOut := make([]featureOut, 0, len(feats))
	for _, f := range feats {
		featsOut = append(featsOut, featureOut{ID: f.ID, Name: f.Name, Icon: f.Icon})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"property": toAdminPropertyOut(p),
		"features": featsOut,
		"images":   gallery,
	})
}
