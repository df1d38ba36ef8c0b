package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggofiles "github.com/swaggo/files"
	ginswagger "github.com/swaggo/gin-swagger"

	"github.com/pensionunlock/policypilot/config"
	"github.com/pensionunlock/policypilot/internal/cache"
	"github.com/pensionunlock/policypilot/internal/database"
	"github.com/pensionunlock/policypilot/internal/factsheet"
	"github.com/pensionunlock/policypilot/internal/handlers"
	"github.com/pensionunlock/policypilot/internal/metrics"
	"github.com/pensionunlock/policypilot/internal/middleware"
	"github.com/pensionunlock/policypilot/internal/repository"
	"github.com/pensionunlock/policypilot/internal/research"
	"github.com/pensionunlock/policypilot/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Build the researcher chain: memory cache → Postgres cache → fact-sheet
	// API. Without FACTS_URL the service runs on the demo dataset; without
	// PG_URL the Postgres layer is skipped.
	var researcher research.FundResearcher
	if cfg.FactsURL != "" {
		researcher = factsheet.NewClient(cfg.FactsKey, cfg.FactsURL)
	} else {
		log.Info("FACTS_URL not set, serving the demo fund dataset")
		researcher = research.NewStaticResearcher(research.DemoDataset())
	}

	if cfg.PGURL != "" {
		db, err := database.New(ctx, cfg.PGURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		metricsRepo := repository.NewFundMetricsRepository(db.Pool)
		researcher = research.NewCachedResearcher(metricsRepo, researcher)
	}

	memCache := cache.NewMemoryCache(15 * time.Minute)
	researcher = research.NewCachedResearcher(memCache, researcher)

	// Initialize metrics
	collector, err := metrics.NewPipelineCollector()
	if err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}

	// Initialize services
	advisorSvc := services.NewAdvisorService(researcher, collector)

	// Initialize handlers
	recommendHandler := handlers.NewRecommendHandler(advisorSvc)
	fundHandler := handlers.NewFundHandler(researcher)

	// Setup Gin router
	router := gin.Default()

	// Apply global middleware
	router.Use(middleware.TrackSession())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Observability and docs
	router.GET("/metrics", gin.WrapH(collector.Handler()))
	router.GET("/swagger/*any", ginswagger.WrapHandler(swaggofiles.Handler))

	// Recommendation routes
	router.POST("/recommendations", recommendHandler.Recommend)
	router.GET("/funds/:isin", fundHandler.Get)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Give outstanding requests 5 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	fmt.Println("Server exited")
}
