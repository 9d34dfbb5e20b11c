package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lexfeed/internal/auth"
	apperrors "lexfeed/internal/errors"
	"lexfeed/internal/model"
	"lexfeed/internal/pagination"
	"lexfeed/internal/service"
	"lexfeed/internal/upload"
)

// UserHandler handles profile, listing and search endpoints.
type UserHandler struct {
	userService service.UserService
	authService service.AuthService
	photos      *upload.Saver
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService, authService service.AuthService, photos *upload.Saver) *UserHandler {
	return &UserHandler{userService: userService, authService: authService, photos: photos}
}

// SearchRequest represents a free-text lawyer search.
type SearchRequest struct {
	Query string `json:"query" validate:"required"`
}

// Profile godoc
// @Summary Current user's own payload
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	user := auth.CurrentUser(c)
	return c.JSON(http.StatusOK, h.userService.Export(user))
}

// GetUser godoc
// @Summary Fetch a user by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}
	user, err := h.userService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, h.userService.Export(user))
}

// ListUsers godoc
// @Summary Paginated users holding the User role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	body, err := h.userService.ListByRole(c.Request().Context(), model.RoleNameUser, "users", "/api/users", pagination.PageParam(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, body)
}

// ListLawyers godoc
// @Summary Paginated users holding the Lawyer role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /lawyers [get]
func (h *UserHandler) ListLawyers(c echo.Context) error {
	body, err := h.userService.ListByRole(c.Request().Context(), model.RoleNameLawyer, "lawyers", "/api/lawyers", pagination.PageParam(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, body)
}

// EditUser godoc
// @Summary Update user fields
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body model.UserImport true "Profile data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /edit-user/{id} [post]
func (h *UserHandler) EditUser(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}

	var in model.UserImport
	if err := c.Bind(&in); err != nil {
		return respondError(c, apperrors.NewValidation("email"))
	}

	user, err := h.userService.Update(c.Request().Context(), id, &in)
	if err != nil {
		return respondError(c, err)
	}

	token, err := h.authService.TokenFor(user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user":  h.userService.Export(user),
	})
}

// UploadPhoto godoc
// @Summary Multipart image upload for the current user
// @Tags users
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /upload_user_photo [post]
func (h *UserHandler) UploadPhoto(c echo.Context) error {
	user := auth.CurrentUser(c)

	// a missing or disallowed file leaves the image untouched
	file, _ := c.FormFile("image")
	name, err := h.photos.Save(file)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.userService.SetImage(c.Request().Context(), user, name); err != nil {
		return respondError(c, err)
	}

	token, err := h.authService.TokenFor(user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user":  h.userService.Export(user),
	})
}

// Search godoc
// @Summary Free-text lawyer search
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SearchRequest true "Query"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /search [post]
func (h *UserHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.NewValidation("query"))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperrors.NewValidation("query"))
	}

	results, err := h.userService.Search(c.Request().Context(), req.Query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"result": results})
}
