// Package handler exposes the HTTP layer: public browsing, favorites,
// inquiry submission and the admin surface.  Handlers bind and validate
// request bodies, call repositories or services, and translate the
// sentinel errors into JSON responses.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/saint-mantis/truster/internal/repository"
)

// getUserID extracts the authenticated user's ID stored in context by the
// JWT middleware.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// pathID parses the named path parameter as an unsigned integer.
func pathID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	return id, err == nil
}

// page query parameters with defaults and clamping.
func pageParams(c echo.Context, defaultSize int) (page, pageSize int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(c.QueryParam("page_size"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = defaultSize
	}
	return page, pageSize
}

var notFoundSentinels = []error{
	repository.ErrPropertyNotFound,
	repository.ErrPropertyTypeNotFound,
	repository.ErrLocationNotFound,
	repository.ErrAgentNotFound,
	repository.ErrFeatureNotFound,
	repository.ErrImageNotFound,
	repository.ErrInquiryNotFound,
	repository.ErrTestimonialNotFound,
	repository.ErrContactNotFound,
}

var conflictSentinels = []error{
	repository.ErrDuplicateSlug,
	repository.ErrDuplicateName,
	repository.ErrDuplicateLocation,
	repository.ErrEmailExists,
	repository.ErrUsernameExists,
	repository.ErrAgentExists,
}

var validationSentinels = []error{
	repository.ErrAgentRatingOutOfRange,
	repository.ErrTestimonialRatingOutOfRange,
}

// writeRepoError maps a repository error onto the HTTP status it
// represents: 404 for missing rows, 409 for uniqueness violations, 400
// for bound violations and 500 for everything else.
func writeRepoError(c echo.Context, err error) error {
	for _, s := range notFoundSentinels {
		if errors.Is(err, s) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": s.Error()})
		}
	}
	for _, s := range conflictSentinels {
		if errors.Is(err, s) {
			return c.JSON(http.StatusConflict, echo.Map{"error": s.Error()})
		}
	}
	for _, s := range validationSentinels {
		if errors.Is(err, s) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": s.Error()})
		}
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
}
