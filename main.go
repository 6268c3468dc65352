// main.go - Entry point for the product catalog API server

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"product-catalog/config"
	"product-catalog/database"
	"product-catalog/handlers"
	"product-catalog/logger"
	"product-catalog/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"golang.org/x/time/rate"
)

func main() {
	cfg := config.Load()
	log := logger.InitLogger()

	if err := database.Connect(cfg.DBPath); err != nil {
		log.Fatal().Err(err).Msg("DB connection error")
	}
	if cfg.Seed {
		if err := database.Seed(30); err != nil {
			log.Fatal().Err(err).Msg("Seeding error")
		}
		log.Info().Msg("Sample products seeded")
	}

	r := gin.Default()

	// Uploaded images are publicly servable.
	r.Static("/storage", cfg.StoragePath)

	// Public routes. The auth endpoints are rate limited.
	authLimiter := middleware.NewRateLimiter(rate.Every(time.Second), 10)
	r.POST("/api/register", authLimiter.Middleware(), handlers.Register)
	r.POST("/api/login", authLimiter.Middleware(), handlers.Login)
	r.GET("/api/products", handlers.ListProducts)

	// Protected routes require a valid bearer token.
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.POST("/logout", handlers.Logout)
		api.GET("/user", handlers.CurrentUser)
		api.POST("/products", handlers.CreateProduct)
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           corsHandler.Handler(r),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Msgf("HTTP server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
	log.Info().Msg("Server stopped")
}
