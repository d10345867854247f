package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/saint-mantis/truster/internal/model"
)

type testimonialReq struct {
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Image      string  `json:"image"`
	Content    string  `json:"content"`
	Rating     uint32  `json:"rating"`
	PropertyID *uint64 `json:"property_id"`
	AgentID    uint64  `json:"agent_id"`
	IsFeatured bool    `json:"is_featured"`
}

// CreateTestimonial records a customer quote for an agent, optionally
// tied to a property.  Rating is bounded to [1,5].
// POST /v1/admin/testimonials
func (h *AdminHandler) CreateTestimonial(c echo.Context) error {
	var req testimonialReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Content = strings.TrimSpace(req.Content)
	if req.Name == "" || req.Content == "" || req.AgentID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, content and agent_id are required"})
	}

	t := model.Testimonial{
		Name:       req.Name,
		Role:       req.Role,
		Image:      req.Image,
		Content:    req.Content,
		Rating:     req.Rating,
		PropertyID: req.PropertyID,
		AgentID:    req.AgentID,
		IsFeatured: req.IsFeatured,
	}
	if err := h.Testimonials.Create(c.Request().Context(), &t); err != nil {
		return writeRepoError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": t.ID})
}

// DeleteTestimonial removes a quote.
// DELETE /v1/admin/testimonials/:id
func (h *AdminHandler) DeleteTestimonial(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Testimonials.Delete(c.Request().Context(), id); err != nil {
		return writeRepoError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
