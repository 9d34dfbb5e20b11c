package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"lexfeed/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"lexfeed/internal/auth"
	"lexfeed/internal/cache"
	"lexfeed/internal/config"
	"lexfeed/internal/db"
	"lexfeed/internal/handler"
	"lexfeed/internal/model"
	"lexfeed/internal/ratelimit"
	"lexfeed/internal/repository"
	"lexfeed/internal/router"
	"lexfeed/internal/search"
	"lexfeed/internal/service"
	"lexfeed/internal/upload"
)

// @title Lexfeed API
// @version 1.0
// @description Social feed backend with lawyer search, private messages, and token authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Feed{},
		&model.Comment{},
		&model.Like{},
		&model.Message{},
		&model.Reply{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// Initialize repositories
	roleRepo := repository.NewRoleRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	feedRepo := repository.NewFeedRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	likeRepo := repository.NewLikeRepository(gormDB)
	messageRepo := repository.NewMessageRepository(gormDB)
	replyRepo := repository.NewReplyRepository(gormDB)

	// Seed the canonical roles; exactly one carries the default flag
	if err := roleRepo.EnsureDefaults(context.Background()); err != nil {
		log.Fatalf("seed roles: %v", err)
	}

	index, err := search.Open(cfg.SearchIndexPath)
	if err != nil {
		log.Fatalf("search index init: %v", err)
	}
	defer index.Close()

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.SecretKey)
	if cfg.IgnoreAuth {
		log.Println("WARNING: IGNORE_AUTH=true, the auth gate is DISABLED; test environments only")
	}
	gate := auth.Gate(jwtService, userRepo, cfg.IgnoreAuth)
	limiter := ratelimit.Middleware(cacheClient, cfg.RateLimit, time.Duration(cfg.RateLimitWindow)*time.Second)

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, jwtService, index)
	userService := service.NewUserService(userRepo, roleRepo, index, cfg.BaseURL, cfg.PageSize)
	feedService := service.NewFeedService(feedRepo, commentRepo, likeRepo, userRepo, cfg.BaseURL, cfg.PageSize)
	messageService := service.NewMessageService(messageRepo, replyRepo, userRepo, cfg.BaseURL, cfg.PageSize)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService, authService, upload.NewSaver(cfg.UserUploadDir))
	feedHandler := handler.NewFeedHandler(feedService, upload.NewSaver(cfg.FeedUploadDir))
	messageHandler := handler.NewMessageHandler(messageService)

	// Register routes
	router.Register(e, gate, limiter, authHandler, userHandler, feedHandler, messageHandler)

	// A stalled client or store call should not pin a worker forever.
	e.Server.ReadTimeout = 30 * time.Second
	e.Server.WriteTimeout = 30 * time.Second

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
