package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saint-mantis/truster/internal/model"
)

type agentReq struct {
	UserID          uint64  `json:"user_id"`
	Phone           string  `json:"phone"`
	Bio             string  `json:"bio"`
	ProfileImage    string  `json:"profile_image"`
	ExperienceYears uint32  `json:"experience_years"`
	LicenseNumber   string  `json:"license_number"`
	Rating          float64 `json:"rating"`
	TotalSales      uint32  `json:"total_sales"`
	IsActive        bool    `json:"is_active"`
}

// CreateAgent attaches an agent profile to an existing user account.  A
// user can hold at most one profile; the rating is bounded to [0,5].
// POST /v1/admin/agents
func (h *AdminHandler) CreateAgent(c echo.Context) error {
	var req agentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.UserID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id required"})
	}

	a := model.Agent{
		UserID:          req.UserID,
		Phone:           req.Phone,
		Bio:             req.Bio,
		ProfileImage:    req.ProfileImage,
		ExperienceYears: req.ExperienceYears,
		LicenseNumber:   req.LicenseNumber,
		Rating:          req.Rating,
		TotalSales:      req.TotalSales,
		IsActive:        req.IsActive,
	}
	if err := h.Agents.Create(c.Request().Context(), &a); err != nil {
		return writeRepoError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": a.ID})
}

// UpdateAgent rewrites an agent profile.
// PUT /v1/admin/agents/:id
func (h *AdminHandler) UpdateAgent(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req agentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx := c.Request().Context()
	a, err := h.Agents.GetByID(ctx, id)
	if err != nil {
		return writeRepoError(c, err)
	}
	a.Phone = req.Phone
	a.Bio = req.Bio
	a.ProfileImage = req.ProfileImage
	a.ExperienceYears = req.ExperienceYears
	a.LicenseNumber = req.LicenseNumber
	a.Rating = req.Rating
	a.TotalSales = req.TotalSales
	a.IsActive = req.IsActive
	if err := h.Agents.Update(ctx, a); err != nil {
		return writeRepoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"id": a.ID})
}

// DeleteAgent removes an agent profile together with the agent's
// listings and testimonials.
// DELETE /v1/admin/agents/:id
func (h *AdminHandler) DeleteAgent(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Agents.Delete(c.Request().Context(), id); err != nil {
		return writeRepoError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
