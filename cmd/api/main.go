package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jobsterhq/jobster-api/internal/auth"
	"github.com/jobsterhq/jobster-api/internal/config"
	"github.com/jobsterhq/jobster-api/internal/database"
	"github.com/jobsterhq/jobster-api/internal/handlers"
	"github.com/jobsterhq/jobster-api/internal/middleware"
	"github.com/jobsterhq/jobster-api/internal/services"
)

func main() {
	cfg := config.Load()

	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	db := database.Connect(cfg.DatabaseURL)

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTLifetime)
	jobService := services.NewJobService(db)
	authService := services.NewAuthService(db, tokens)

	jobHandler := handlers.NewJobHandler(jobService)
	authHandler := handlers.NewAuthHandler(authService)

	router := setupRouter(cfg, tokens, jobHandler, authHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server startup failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

func setupRouter(
	cfg *config.Config,
	tokens *auth.TokenIssuer,
	jobHandler *handlers.JobHandler,
	authHandler *handlers.AuthHandler,
) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.Use(middleware.ErrorHandler())

	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.PATCH("/updateUser",
				middleware.Authenticate(tokens), middleware.RequireWritable(), authHandler.UpdateUser)
		}

		jobs := api.Group("/jobs", middleware.Authenticate(tokens))
		{
			// /stats is registered before /:id so it never parses as an id
			jobs.GET("/stats", jobHandler.Stats)

			jobs.GET("", jobHandler.ListJobs)
			jobs.POST("", middleware.RequireWritable(), jobHandler.CreateJob)

			jobs.GET("/:id", jobHandler.GetJob)
			jobs.PATCH("/:id", middleware.RequireWritable(), jobHandler.UpdateJob)
			jobs.DELETE("/:id", middleware.RequireWritable(), jobHandler.DeleteJob)
		}
	}

	return r
}
