package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saint-mantis/truster/internal/model"
	"github.com/saint-mantis/truster/internal/service"
)

type imageReq struct {
	Image     string `json:"image"`
	AltText   string `json:"alt_text"`
	IsPrimary bool   `json:"is_primary"`
	Order     uint32 `json:"order"`
}

// AddImage attaches a gallery image to a property.  Marking it primary
// demotes the previous primary in the same transaction.
// POST /v1/admin/properties/:id/images
func (h *AdminHandler) AddImage(c echo.Context) error {
	propertyID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req imageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	img := model.PropertyImage{
		PropertyID: propertyID,
		Image:      req.Image,
		AltText:    req.AltText,
		IsPrimary:  req.IsPrimary,
		Order:      req.Order,
	}
	if err := h.Media.AddImage(c.Request().Context(), &img); err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "image required"})
		}
		return writeRepoError(c, err)
	}
	return c.JSON(http.StatusCreated, imageOut{
		ID: img.ID, Image: img.Image, AltText: img.AltText, IsPrimary: img.IsPrimary, Order: img.Order,
	})
}

// SetPrimaryImage flags one gallery image as the property's cover.  The
// repository clears every other flag of the property atomically, so the
// single-primary invariant holds even under concurrent calls.
// PUT /v1/admin/properties/:id/images/:imageID/primary
func (h *AdminHandler) SetPrimaryImage(c echo.Context) error {
	propertyID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	imageID, ok := pathID(c, "imageID")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid image id"})
	}

	if err := h.Media.SetPrimaryImage(c.Request().Context(), propertyID, imageID); err != nil {
		return writeRepoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "success", "message": "Primary image updated"})
}

// DeleteImage removes one gallery image.
// DELETE /v1/admin/properties/:id/images/:imageID
func (h *AdminHandler) DeleteImage(c echo.Context) error {
	propertyID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	imageID, ok := pathID(c, "imageID")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid image id"})
	}
	if err := h.Images.Delete(c.Request().Context(), propertyID, imageID); err != nil {
		return writeRepoError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
