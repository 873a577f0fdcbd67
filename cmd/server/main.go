package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"orgrealign/internal/cache"
	"orgrealign/internal/config"
	"orgrealign/internal/realign"
	"orgrealign/internal/repository"
	"orgrealign/internal/scoring"
	"orgrealign/internal/service"
	"orgrealign/internal/transport/rest"
	"orgrealign/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDBName)

	// Redis connection
	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories and caches
	assessmentRepo := repository.NewAssessmentRepo(db)
	resultCache := cache.NewResultCache(rdb)

	// Initialize engines
	scoringEngine := scoring.NewEngine(config.DefaultScoringConfig())
	realignEngine := realign.NewEngine(config.DefaultRealignConfig())

	// Initialize services
	authSvc := service.NewAuthService(cfg.JWTSecret)
	assessmentSvc := service.NewAssessmentService(assessmentRepo, resultCache, scoringEngine)
	analysisSvc := service.NewAnalysisService(assessmentRepo, resultCache, realignEngine)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	assessmentSvc.SetBroadcaster(wsHub)
	analysisSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:       authSvc,
		AssessmentService: assessmentSvc,
		AnalysisService:   analysisSvc,
		WSHub:             wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST/GET /v1/assessments")
		log.Println("  GET/DELETE /v1/assessments/{id}")
		log.Println("  POST/GET /v1/assessments/{id}/score")
		log.Println("  GET  /v1/assessments/{id}/score/legacy")
		log.Println("  POST/GET /v1/assessments/{id}/analysis")
		log.Println("  WS  /v1/ws/assessments/{id}/dashboard")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
