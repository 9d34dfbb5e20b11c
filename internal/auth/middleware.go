package auth

import (
	"context"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "lexfeed/internal/errors"
	"lexfeed/internal/model"
)

// userContextKey is where the resolved user lands in the echo context.
const userContextKey = "currentUser"

// bypassUserID is the identity pinned to every request when the gate is
// disabled via IGNORE_AUTH. Test environments only.
const bypassUserID uint = 1

// UserResolver resolves a user id to a stored user with its role loaded.
type UserResolver interface {
	FindByIDWithRole(ctx context.Context, id uint) (*model.User, error)
}

// CurrentUser returns the authenticated user set by the gate, or nil.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}

// SetCurrentUser stores the authenticated user on the context. Exposed for
// handler tests.
func SetCurrentUser(c echo.Context, user *model.User) {
	c.Set(userContextKey, user)
}

// Gate returns the middleware protecting every authenticated route: bearer
// token extraction, signature verification, then a store lookup of the id
// claim. Unsigned, malformed, expired and unknown-id tokens all fail with
// the same 401 body. When ignoreAuth is set the whole chain is replaced by a
// fixed identity lookup.
func Gate(jwtService *JWTService, users UserResolver, ignoreAuth bool) echo.MiddlewareFunc {
	if ignoreAuth {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				user, err := users.FindByIDWithRole(c.Request().Context(), bypassUserID)
				if err != nil {
					return unauthorized(c)
				}
				SetCurrentUser(c, user)
				return next(c)
			}
		}
	}

	verify := echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.ValidateToken(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return unauthorized(c)
		},
	})

	resolve := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*Claims)
			if !ok {
				return unauthorized(c)
			}
			user, err := users.FindByIDWithRole(c.Request().Context(), claims.UserID)
			if err != nil {
				return unauthorized(c)
			}
			SetCurrentUser(c, user)
			return next(c)
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verify(resolve(next))
	}
}

func unauthorized(c echo.Context) error {
	he := apperrors.MapErrorToHTTP(apperrors.ErrUnauthorized)
	return c.JSON(http.StatusUnauthorized, he.ToErrorResponse())
}
