package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/epeers/gradecalc/config"
	"github.com/epeers/gradecalc/docs"
	"github.com/epeers/gradecalc/internal/handlers"
	"github.com/epeers/gradecalc/internal/middleware"
	"github.com/epeers/gradecalc/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title gradecalc API
// @version 1.0
// @description Percentage and CGPA calculators.
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.SetLevel(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)
	docs.SwaggerInfo.Host = "localhost:" + cfg.Port

	// Initialize services
	calculatorSvc := services.NewCalculatorService(cfg.MaxSubjects, cfg.MaxSemesters)

	// Initialize handlers
	calculatorHandler := handlers.NewCalculatorHandler(calculatorSvc)

	// Setup Gin router
	router := gin.New()

	// Apply global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Calculator routes
	calculators := router.Group("/calculators")
	calculators.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	calculators.GET("", calculatorHandler.List)
	calculators.POST("/percentage", calculatorHandler.Percentage)
	calculators.POST("/cgpa", calculatorHandler.CGPA)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 5 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	fmt.Println("Server exited")
}
