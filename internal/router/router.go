package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"lexfeed/internal/handler"
)

// Register wires routes and middleware. The auth gate runs before any
// business logic on every protected route; the rate limiter covers the whole
// API group, public endpoints included.
func Register(
	e *echo.Echo,
	gate echo.MiddlewareFunc,
	limiter echo.MiddlewareFunc,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	feedHandler *handler.FeedHandler,
	messageHandler *handler.MessageHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	// the browser client is served from a different origin
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static("/static", "static")

	api := e.Group("/api", limiter)

	// Public routes
	api.POST("/user", authHandler.RegisterUser)
	api.POST("/lawyer", authHandler.RegisterLawyer)
	api.POST("/login", authHandler.Login)

	// Secured routes
	secured := api.Group("", gate)

	secured.GET("/profile", userHandler.Profile)
	secured.GET("/user/:id", userHandler.GetUser)
	secured.GET("/users", userHandler.ListUsers)
	secured.GET("/lawyers", userHandler.ListLawyers)
	secured.POST("/edit-user/:id", userHandler.EditUser)
	secured.POST("/upload_user_photo", userHandler.UploadPhoto)
	secured.POST("/search", userHandler.Search)

	secured.GET("/feeds", feedHandler.List)
	secured.GET("/feed/:id", feedHandler.Get)
	secured.POST("/feed", feedHandler.Create)
	secured.PUT("/feed/:id", feedHandler.Edit)
	secured.GET("/like/:id", feedHandler.Like)
	secured.GET("/comments/:id", feedHandler.Comments)
	secured.POST("/comment/:id", feedHandler.CreateComment)

	secured.GET("/inbox", messageHandler.Inbox)
	secured.GET("/outbox", messageHandler.Outbox)
	secured.GET("/total", messageHandler.Total)
	secured.GET("/message/:id", messageHandler.Get)
	secured.GET("/get_replies/:id", messageHandler.Replies)
	secured.POST("/message", messageHandler.Send)
	secured.DELETE("/message/:id", messageHandler.Delete)
	secured.POST("/reply/:id", messageHandler.Reply)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
