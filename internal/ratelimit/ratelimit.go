package ratelimit

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"lexfeed/internal/cache"
	apperrors "lexfeed/internal/errors"
)

const keyPrefix = "ratelimit:"

// Middleware enforces a fixed-window request limit per client IP, counted in
// redis. A limit of zero disables it; a redis outage fails open.
func Middleware(client *cache.Client, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limit <= 0 {
				return next(c)
			}
			key := keyPrefix + c.RealIP()
			n, err := client.Incr(c.Request().Context(), key, window)
			if err == nil && n > int64(limit) {
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				return c.JSON(http.StatusTooManyRequests, apperrors.ErrorResponse{
					Error: "rate limit exceeded",
					Code:  "RATE_LIMITED",
				})
			}
			return next(c)
		}
	}
}
