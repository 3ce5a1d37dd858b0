package service

import (
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"wordquest/internal/config"
	"wordquest/internal/database"
	"wordquest/internal/quiz"
	"wordquest/internal/repository"
	"wordquest/internal/security"
)

// testEnv wires the full service stack against a throwaway SQLite
// database seeded with the starter content.
type testEnv struct {
	db       *database.DB
	users    *repository.UserRepository
	worlds   *repository.WorldRepository
	vocab    *repository.VocabularyRepository
	games    *repository.GameRepository
	progress *repository.ProgressRepository
	shop     *repository.ShopRepository

	auth      *AuthService
	game      *GameService
	shopSvc   *ShopService
	worldSvc  *WorldService
	statsSvc  *StatsService
	questions quiz.QuestionStore
}

func newTestEnv(t *testing.T, seed int64) *testEnv {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	cfg := &config.Config{
		DatabaseType: "sqlite",
		DatabasePath: filepath.Join(t.TempDir(), "test.db"),
	}
	db, err := database.Initialize(cfg)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.RunMigrations(db, "../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}

	env := &testEnv{
		db:       db,
		users:    repository.NewUserRepository(db),
		worlds:   repository.NewWorldRepository(db),
		vocab:    repository.NewVocabularyRepository(db),
		games:    repository.NewGameRepository(db),
		progress: repository.NewProgressRepository(db),
		shop:     repository.NewShopRepository(db),
	}

	tokens := security.NewTokenIssuer("test-secret", time.Hour)
	email, err := NewEmailService("", "")
	if err != nil {
		t.Fatalf("Failed to create email service: %v", err)
	}

	generator := quiz.NewGeneratorWithRand(env.vocab, rand.New(rand.NewSource(seed)))
	env.questions = quiz.NewMemoryQuestionStore(time.Hour)

	env.auth = NewAuthService(env.users, env.progress, tokens)
	env.game = NewGameService(env.games, env.worlds, env.vocab, env.progress, env.users,
		generator, env.questions, email)
	env.shopSvc = NewShopService(env.shop, env.progress)
	env.worldSvc = NewWorldService(env.worlds, env.progress)
	env.statsSvc = NewStatsService(env.progress, env.worlds, env.games)
	return env
}

func (env *testEnv) registerPlayer(t *testing.T, username string) string {
	t.Helper()
	user, token, err := env.auth.Register(username, "secret123", "", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if token == "" {
		t.Fatal("Register returned an empty token")
	}
	return user.ID
}
