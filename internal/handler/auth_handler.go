package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "lexfeed/internal/errors"
	"lexfeed/internal/model"
	"lexfeed/internal/service"
)

// AuthHandler handles registration and login endpoints.
type AuthHandler struct {
	authService service.AuthService
	userService service.UserService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, userService service.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterUser godoc
// @Summary Register a new user under the User role
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.UserImport true "Profile data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /user [post]
func (h *AuthHandler) RegisterUser(c echo.Context) error {
	return h.register(c, model.RoleNameUser)
}

// RegisterLawyer godoc
// @Summary Register a new user under the Lawyer role
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.UserImport true "Profile data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /lawyer [post]
func (h *AuthHandler) RegisterLawyer(c echo.Context) error {
	return h.register(c, model.RoleNameLawyer)
}

func (h *AuthHandler) register(c echo.Context, roleName string) error {
	var in model.UserImport
	if err := c.Bind(&in); err != nil {
		return respondError(c, apperrors.NewValidation("email"))
	}

	token, user, err := h.authService.Register(c.Request().Context(), &in, roleName)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user":  h.userService.Export(user),
	})
}

// Login godoc
// @Summary Authenticate and receive a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, echo.Map{"failed": true})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			// wrong credentials are not an HTTP error here; the client
			// keys off the failed flag
			return c.JSON(http.StatusOK, echo.Map{"failed": true})
		}
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"token":  token,
		"user":   h.userService.Export(user),
		"failed": false,
	})
}
