// This file defines the unauthenticated browse API: home page aggregate,
// listing and search, property detail, and the catalog lookups (types,
// locations, agents, testimonials).  Only published properties are ever
// returned here.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/saint-mantis/truster/internal/model"
	"github.com/saint-mantis/truster/internal/repository"
)

// Page sizes for public listing and search views.
const publicPageSize = 12

// Home page section limits.
const (
	homeFeaturedLimit    = 6
	homeLocationLimit    = 6
	homeTestimonialLimit = 3
	similarPropertyLimit = 4
)

// PublicHandler aggregates the repositories needed for guest browsing.
type PublicHandler struct {
	Properties   *repository.PropertyRepo
	Types        *repository.PropertyTypeRepo
	Locations    *repository.LocationRepo
	Agents       *repository.AgentRepo
	Images       *repository.ImageRepo
	Testimonials *repository.TestimonialRepo
}

// ----- response DTOs -----

type typeOut struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

type locationOut struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Slug        string   `json:"slug"`
	ParentID    *uint64  `json:"parent_id,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

type agentOut struct {
	ID              uint64  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone,omitempty"`
	Bio             string  `json:"bio,omitempty"`
	ProfileImage    string  `json:"profile_image,omitempty"`
	ExperienceYears uint32  `json:"experience_years"`
	Rating          float64 `json:"rating"`
	TotalSales      uint32  `json:"total_sales"`
}

type testimonialOut struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role,omitempty"`
	Image   string `json:"image,omitempty"`
	Content string `json:"content"`
	Rating  uint32 `json:"rating"`
}

type imageOut struct {
	ID        uint64 `json:"id"`
	Image     string `json:"image"`
	AltText   string `json:"alt_text,omitempty"`
	IsPrimary bool   `json:"is_primary"`
	Order     uint32 `json:"order"`
}

type featureOut struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// similarOut is the compact card used in the similar-properties strip.
type similarOut struct {
	ID           uint64  `json:"id"`
	Title        string  `json:"title"`
	Slug         string  `json:"slug"`
	Price        float64 `json:"price"`
	Bedrooms     uint32  `json:"bedrooms"`
	Bathrooms    float64 `json:"bathrooms"`
	AreaSqft     uint32  `json:"area_sqft"`
	ListingType  string  `json:"listing_type"`
	PrimaryImage string  `json:"primary_image,omitempty"`
}

type propertyDetailOut struct {
	ID              uint64       `json:"id"`
	Title           string       `json:"title"`
	Slug            string       `json:"slug"`
	Description     string       `json:"description"`
	ListingType     string       `json:"listing_type"`
	Status          string       `json:"status"`
	Price           float64      `json:"price"`
	PricePerSqft    *float64     `json:"price_per_sqft,omitempty"`
	Address         string       `json:"address"`
	Latitude        *float64     `json:"latitude,omitempty"`
	Longitude       *float64     `json:"longitude,omitempty"`
	Bedrooms        uint32       `json:"bedrooms"`
	Bathrooms       float64      `json:"bathrooms"`
	AreaSqft        uint32       `json:"area_sqft"`
	LotSize         *uint32      `json:"lot_size,omitempty"`
	YearBuilt       *uint32      `json:"year_built,omitempty"`
	ParkingSpaces   uint32       `json:"parking_spaces"`
	MetaTitle       string       `json:"meta_title,omitempty"`
	MetaDescription string       `json:"meta_description,omitempty"`
	IsFeatured      bool         `json:"is_featured"`
	CreatedAt       time.Time    `json:"created_at"`
	Type            *typeOut     `json:"type,omitempty"`
	Location        *locationOut `json:"location,omitempty"`
	Agent           *agentOut    `json:"agent,omitempty"`
	Features        []featureOut `json:"features"`
	Images          []imageOut   `json:"images"`
	PrimaryImage    string       `json:"primary_image,omitempty"`
	Similar         []similarOut `json:"similar_properties"`
}

// parseFilter reads the shared listing/search query parameters.
func parseFilter(c echo.Context) repository.PropertyFilter {
	f := repository.PropertyFilter{
		TypeSlug:     c.QueryParam("type"),
		LocationSlug: c.QueryParam("location"),
		Query:        c.QueryParam("q"),
	}
	if v := c.QueryParam("min_price"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n >= 0 {
			f.MinPrice = &n
		}
	}
	if v := c.QueryParam("max_price"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n >= 0 {
			f.MaxPrice = &n
		}
	}
	f.Page, f.PageSize = pageParams(c, publicPageSize)
	return f
}

// Home returns the landing page aggregate: the featured strip, the type
// catalog, the root locations and the featured testimonials.
func (h *PublicHandler) Home(c echo.Context) error {
	ctx := c.Request().Context()

	featured, _, err := h.Properties.Search(ctx, repository.PropertyFilter{
		FeaturedOnly: true, Page: 1, PageSize: homeFeaturedLimit,
	})
	if err != nil {
		return writeRepoError(c, err)
	}
	types, err := h.Types.List(ctx)
	if err != nil {
		return writeRepoError(c, err)
	}
	roots, err := h.Locations.ListRoots(ctx, homeLocationLimit)
	if err != nil {
		return writeRepoError(c, err)
	}
	quotes, err := h.Testimonials.ListFeatured(ctx, homeTestimonialLimit)
	if err != nil {
		return writeRepoError(c, err)
	}

	outTypes := make([]typeOut, 0, len(types))
	for _, t := range types {
		outTypes = append(outTypes, typeOut{ID: t.ID, Name: t.Name, Slug: t.Slug, Description: t.Description, Icon: t.Icon})
	}
	locs := make([]locationOut, 0, len(roots))
	for _, l := range roots {
		locs = append(locs, toLocationOut(l))
	}
	outQuotes := make([]testimonialOut, 0, len(quotes))
	for _, t := range quotes {
		outQuotes = append(outQuotes, testimonialOut{
			ID: t.ID, Name: t.Name, Role: t.Role, Image: t.Image, Content: t.Content, Rating: t.Rating,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"featured_properties": featured,
		"property_types":      outTypes,
		"locations":           locs,
		"testimonials":        outQuotes,
	})
}

// ListProperties serves both the listing and search views: all filters
// are optional and combine with AND over published rows.
func (h *PublicHandler) ListProperties(c echo.Context) error {
	f := parseFilter(c)
	items, total, err := h.Properties.Search(c.Request().Context(), f)
	if err != nil {
		return writeRepoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items":     items,
		"total":     total,
		"page":      f.Page,
		"page_size": f.PageSize,
	})
}

// PropertyDetail returns one published property by slug together with its
// gallery, features, agent, and up to four similar properties (same type
// and location, excluding itself).
func (h *PublicHandler) PropertyDetail(c echo.Context) error {
	ctx := c.Request().Context()

	p, err := h.Properties.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		return writeRepoError(c, err)
	}
	if !p.IsPublished {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
	}

	out := propertyDetailOut{
		ID: p.ID, Title: p.Title, Slug: p.Slug, Description: p.Description,
		ListingType: p.ListingType, Status: p.Status,
		Price: p.Price, PricePerSqft: p.PricePerSqft,
		Address: p.Address, Latitude: p.Latitude, Longitude: p.Longitude,
		Bedrooms: p.Bedrooms, Bathrooms: p.Bathrooms, AreaSqft: p.AreaSqft,
		LotSize: p.LotSize, YearBuilt: p.YearBuilt, ParkingSpaces: p.ParkingSpaces,
		MetaTitle: p.MetaTitle, MetaDescription: p.MetaDescription,
		IsFeatured: p.IsFeatured, CreatedAt: p.CreatedAt,
		Features: []featureOut{}, Images: []imageOut{}, Similar: []similarOut{},
	}

	if t, err := h.Types.GetByID(ctx, p.TypeID); err == nil {
		out.Type = &typeOut{ID: t.ID, Name: t.Name, Slug: t.Slug, Description: t.Description, Icon: t.Icon}
	}
	if l, err := h.Locations.GetByID(ctx, p.LocationID); err == nil {
		lo := toLocationOut(l)
		out.Location = &lo
	}
	if a, err := h.Agents.GetByID(ctx, p.AgentID); err == nil {
		out.Agent = &agentOut{
			ID: a.ID, Name: a.Name, Email: a.Email, Phone: a.Phone, Bio: a.Bio,
			ProfileImage: a.ProfileImage, ExperienceYears: a.ExperienceYears,
			Rating: a.Rating, TotalSales: a.TotalSales,
		}
	}

	feats, err := h.Properties.ListFeatures(ctx, p.ID)
	if err != nil {
		return writeRepoError(c, err)
	}
	for _, f := range feats {
		out.Features = append(out.Features, featureOut{ID: f.ID, Name: f.Name, Icon: f.Icon})
	}

	gallery, err := h.Images.ListByProperty(ctx, p.ID)
	if err != nil {
		return writeRepoError(c, err)
	}
	for _, img := range gallery {
		out.Images = append(out.Images, imageOut{
			ID: img.ID, Image: img.Image, AltText: img.AltText, IsPrimary: img.IsPrimary, Order: img.Order,
		})
		if img.IsPrimary {
			out.PrimaryImage = img.Image
		}
	}

	similar, err := h.Properties.ListSimilar(ctx, p.TypeID, p.LocationID, p.ID, similarPropertyLimit)
	if err != nil {
		return writeRepoError(c, err)
	}
	for _, sp := range similar {
		card := similarOut{
			ID: sp.ID, Title: sp.Title, Slug: sp.Slug, Price: sp.Price,
			Bedrooms: sp.Bedrooms, Bathrooms: sp.Bathrooms, AreaSqft: sp.AreaSqft,
			ListingType: sp.ListingType,
		}
		if pi, err := h.Images.GetPrimary(ctx, sp.ID); err == nil && pi != nil {
			card.PrimaryImage = pi.Image
		}
		out.Similar = append(out.Similar, card)
	}

	return c.JSON(http.StatusOK, out)
}

// ListPropertyTypes returns the full type catalog.
func (h *PublicHandler) ListPropertyTypes(c echo.Context) error {
	types, err := h.Types.List(c.Request().Context())
	if err != nil {
		return writeRepoError(c, err)
	}
	out := make([]typeOut, 0, len(types))
	for _, t := range types {
		out = append(out, typeOut{ID: t.ID, Name: t.Name, Slug: t.Slug, Description: t.Description, Icon: t.Icon})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// ListLocations returns the full location tree as a flat list; clients
// rebuild the hierarchy from parent_id.
func (h *PublicHandler) ListLocations(c echo.Context) error {
	locs, err := h.Locations.List(c.Request().Context())
	if err != nil {
		return writeRepoError(c, err)
	}
	out := make([]locationOut, 0, len(locs))
	for _, l := range locs {
		out = append(out, toLocationOut(l))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// ListAgents returns all listing agents.
func (h *PublicHandler) ListAgents(c echo.Context) error {
	agents, err := h.Agents.List(c.Request().Context())
	if err != nil {
		return writeRepoError(c, err)
	}
	out := make([]agentOut, 0, len(agents))
	for _, a := range agents {
		if !a.IsActive {
			continue
		}
		out = append(out, agentOut{
			ID: a.ID, Name: a.Name, Email: a.Email, Phone: a.Phone, Bio: a.Bio,
			ProfileImage: a.ProfileImage, ExperienceYears: a.ExperienceYears,
			Rating: a.Rating, TotalSales: a.TotalSales,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// ListTestimonials returns all testimonials, newest first.
func (h *PublicHandler) ListTestimonials(c echo.Context) error {
	quotes, err := h.Testimonials.List(c.Request().Context())
	if err != nil {
		return writeRepoError(c, err)
	}
	out := make([]testimonialOut, 0, len(quotes))
	for _, t := range quotes {
		out = append(out, testimonialOut{
			ID: t.ID, Name: t.Name, Role: t.Role, Image: t.Image, Content: t.Content, Rating: t.Rating,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

func toLocationOut(l *model.Location) locationOut {
	return locationOut{
		ID: l.ID, Name: l.Name, DisplayName: l.DisplayName(), Slug: l.Slug,
		ParentID: l.ParentID, Latitude: l.Latitude, Longitude: l.Longitude,
	}
}
