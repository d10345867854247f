package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saint-mantis/truster/internal/repository"
	"github.com/saint-mantis/truster/internal/service"
)

// Admin list views page at 20 rows.
const adminPageSize = 20

// AdminHandler bundles every repository the management surface touches.
// All routes using it sit behind JWTAuth plus RequireRole(ADMIN).
type AdminHandler struct {
	Properties   *repository.PropertyRepo
	Types        *repository.PropertyTypeRepo
	Locations    *repository.LocationRepo
	Agents       *repository.AgentRepo
	Features     *repository.FeatureRepo
	Images       *repository.ImageRepo
	Inquiries    *repository.InquiryRepo
	Contacts     *repository.ContactRepo
	Testimonials *repository.TestimonialRepo
	Users        *repository.UserRepo
	Media        *service.MediaService
}

// Dashboard returns the headline counters and the most recent listings.
// GET /v1/admin/dashboard
func (h *AdminHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	total, err := h.Properties.Count(ctx)
	if err != nil {
		return writeRepoError(c, err)
	}
	featured, err := h.Properties.CountFeatured(ctx)
	if err != nil {
		return writeRepoError(c, err)
	}
	newInquiries, err := h.Inquiries.CountNew(ctx)
	if err != nil {
		return writeRepoError(c, err)
	}
	recent, _, err := h.Properties.AdminList(ctx, 1, 5)
	if err != nil {
		return writeRepoError(c, err)
	}

	type recentOut struct {
		ID          uint64  `json:"id"`
		Title       string  `json:"title"`
		Slug        string  `json:"slug"`
		Price       float64 `json:"price"`
		Status      string  `json:"status"`
		IsPublished bool    `json:"is_published"`
	}
	items := make([]recentOut, 0, len(recent))
	for _, p := range recent {
		items = append(items, recentOut{
			ID: p.ID, Title: p.Title, Slug: p.Slug, Price: p.Price,
			Status: p.Status, IsPublished: p.IsPublished,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"total_properties":    total,
		"featured_properties": featured,
		"new_inquiries":       newInquiries,
		"recent_properties":   items,
	})
}
