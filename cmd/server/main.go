package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"wordquest/internal/config"
	"wordquest/internal/database"
	"wordquest/internal/handlers"
	"wordquest/internal/quiz"
	"wordquest/internal/repository"
	"wordquest/internal/security"
	"wordquest/internal/service"
)

func main() {
	// Load .env if present; real environments set variables directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Initialize database (sqlite by default, postgres/mysql via config)
	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	if err := database.RunMigrations(db, cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatalf("Failed to seed content: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	worldRepo := repository.NewWorldRepository(db)
	vocabRepo := repository.NewVocabularyRepository(db)
	gameRepo := repository.NewGameRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	shopRepo := repository.NewShopRepository(db)

	// Services
	tokens := security.NewTokenIssuer(cfg.JWTSecret, cfg.TokenDuration)
	stateSigner := security.NewStateSigner(stateSecret(cfg))

	emailService, err := service.NewEmailService(cfg.SESRegion, cfg.SESFromAddress)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	generator := quiz.NewGenerator(vocabRepo)
	questionStore := quiz.NewMemoryQuestionStore(cfg.QuestionTTL)

	authService := service.NewAuthService(userRepo, progressRepo, tokens)
	worldService := service.NewWorldService(worldRepo, progressRepo)
	gameService := service.NewGameService(gameRepo, worldRepo, vocabRepo, progressRepo, userRepo,
		generator, questionStore, emailService)
	statsService := service.NewStatsService(progressRepo, worldRepo, gameRepo)
	shopService := service.NewShopService(shopRepo, progressRepo)

	// Handlers
	authLimiter := security.NewRateLimiter(10, time.Minute)
	middleware := handlers.NewMiddleware(tokens, authLimiter, cfg.AllowedOrigin)

	authHandler := handlers.NewAuthHandler(authService, stateSigner,
		cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.OAuthRedirectBaseURL)
	worldHandler := handlers.NewWorldHandler(worldService)
	gameHandler := handlers.NewGameHandler(gameService)
	statsHandler := handlers.NewStatsHandler(statsService)
	shopHandler := handlers.NewShopHandler(shopService)

	mux := http.NewServeMux()

	// Auth routes
	mux.HandleFunc("POST /api/auth/register", middleware.RateLimit(authHandler.Register))
	mux.HandleFunc("POST /api/auth/login", middleware.RateLimit(authHandler.Login))
	mux.HandleFunc("GET /api/auth/me", middleware.RequireAuth(authHandler.Me))
	mux.HandleFunc("GET /api/auth/google/start", middleware.RateLimit(authHandler.StartGoogleOAuth))
	mux.HandleFunc("GET /api/auth/google/callback", middleware.RateLimit(authHandler.GoogleOAuthCallback))

	// World routes
	mux.HandleFunc("GET /api/worlds", middleware.RequireAuth(worldHandler.List))
	mux.HandleFunc("GET /api/worlds/{id}/levels", middleware.RequireAuth(worldHandler.Levels))

	// Game routes
	mux.HandleFunc("POST /api/game/start", middleware.RequireAuth(gameHandler.Start))
	mux.HandleFunc("POST /api/game/answer", middleware.RequireAuth(gameHandler.Answer))
	mux.HandleFunc("POST /api/game/complete", middleware.RequireAuth(gameHandler.Complete))
	mux.HandleFunc("GET /api/game/session/{id}", middleware.RequireAuth(gameHandler.Session))

	// Stats routes
	mux.HandleFunc("GET /api/stats/overview", middleware.RequireAuth(statsHandler.Overview))
	mux.HandleFunc("GET /api/stats/mastery", middleware.RequireAuth(statsHandler.Mastery))

	// Shop routes
	mux.HandleFunc("GET /api/shop/items", middleware.RequireAuth(shopHandler.Items))
	mux.HandleFunc("POST /api/shop/purchase", middleware.RequireAuth(shopHandler.Purchase))
	mux.HandleFunc("POST /api/shop/equip", middleware.RequireAuth(shopHandler.Equip))
	mux.HandleFunc("GET /api/shop/character", middleware.RequireAuth(shopHandler.Character))

	handler := middleware.Logging(middleware.CORS(mux))

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// stateSecret falls back to the JWT secret so Google sign-in works
// without a second configured secret.
func stateSecret(cfg *config.Config) string {
	if cfg.OAuthStateSecret != "" {
		return cfg.OAuthStateSecret
	}
	return cfg.JWTSecret
}
