package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "lexfeed/internal/errors"
)

// respondError maps any service error onto its HTTP shape.
func respondError(c echo.Context, err error) error {
	he := apperrors.MapErrorToHTTP(err)
	return c.JSON(he.StatusCode, he.ToErrorResponse())
}

// idParam parses the numeric :id path parameter. A non-numeric id behaves
// like an unknown record.
func idParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.ErrNotFound
	}
	return uint(id), nil
}
