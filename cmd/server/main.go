package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nexivatech/nexivatech-website-backend/internal/config"
	"github.com/nexivatech/nexivatech-website-backend/internal/handler"
	"github.com/nexivatech/nexivatech-website-backend/internal/mailer"
	"github.com/nexivatech/nexivatech-website-backend/internal/middleware"
	"github.com/nexivatech/nexivatech-website-backend/internal/render"
	"github.com/nexivatech/nexivatech-website-backend/internal/service"
	"github.com/nexivatech/nexivatech-website-backend/internal/storage"
	redisclient "github.com/nexivatech/nexivatech-website-backend/pkg/redis"
)

func main() {
	cfg := config.Load()

	// The staging directory must exist before the career endpoint is hit.
	staging, err := storage.NewStaging(cfg.UploadDir)
	if err != nil {
		log.Fatal("Failed to prepare upload directory:", err)
	}

	renderer, err := render.New()
	if err != nil {
		log.Fatal("Failed to load email templates:", err)
	}

	sender, err := mailer.NewSMTPSender(mailer.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.EmailUser,
		Password: cfg.EmailPass,
	})
	if err != nil {
		log.Fatal("Failed to configure mail transport:", err)
	}

	submissionService := service.NewSubmissionService(sender, renderer, cfg.MailFrom, cfg.Recipient, cfg.SendTimeout)
	submissionHandler := handler.NewSubmissionHandler(submissionService, staging)

	var rateLimiter *middleware.RateLimiter
	if cfg.RedisURL != "" {
		redisClient, err := redisclient.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
		defer redisClient.Close()
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimitPerMinute, time.Minute)
	}

	router := setupRouter(cfg, submissionHandler, rateLimiter)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server startup failed: %s\n", err)
		}
	}()

	log.Printf("Server started on port %s", cfg.Port)
	log.Printf("Form notifications go to %s", cfg.Recipient)
	if rateLimiter != nil {
		log.Printf("Rate limiting: %d requests per minute", cfg.RateLimitPerMinute)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

func setupRouter(cfg *config.Config, submissions *handler.SubmissionHandler, rateLimiter *middleware.RateLimiter) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	if rateLimiter != nil {
		router.Use(rateLimiter.GinMiddleware())
	}

	api := router.Group("/api")
	{
		api.GET("/health", handler.Health)
		api.POST("/contact", submissions.Contact)
		api.POST("/career", submissions.Career)
	}

	return router
}
