package service

import (
	"errors"
	"fmt"

	"wordquest/internal/models"
	"wordquest/internal/repository"
)

var ErrWorldNotFound = errors.New("world not found")

// WorldView is a world decorated with the player's stars and unlock state
type WorldView struct {
	models.World
	StarsEarned int
	Unlocked    bool
}

// LevelView is a level decorated with the player's best results
type LevelView struct {
	models.Level
	BestStars   int
	BestScore   int
	TimesPlayed int
}

// WorldService handles world and level listings with per-player state
type WorldService struct {
	worlds   *repository.WorldRepository
	progress *repository.ProgressRepository
}

// NewWorldService creates a new world service
func NewWorldService(worlds *repository.WorldRepository, progress *repository.ProgressRepository) *WorldService {
	return &WorldService{worlds: worlds, progress: progress}
}

// ListWorlds returns all worlds with the player's per-world stars. A
// world is unlocked when the player's overall star total meets its
// requirement.
func (s *WorldService) ListWorlds(userID string) ([]WorldView, error) {
	worlds, err := s.worlds.ListWorlds()
	if err != nil {
		return nil, fmt.Errorf("failed to list worlds: %w", err)
	}

	starsByWorld, err := s.progress.StarsByWorld(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stars: %w", err)
	}

	playerProgress, err := s.progress.GetProgress(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	totalStars := 0
	if playerProgress != nil {
		totalStars = playerProgress.TotalStars
	}

	views := make([]WorldView, len(worlds))
	for i, w := range worlds {
		views[i] = WorldView{
			World:       w,
			StarsEarned: starsByWorld[w.ID],
			Unlocked:    totalStars >= w.UnlockStarsRequired,
		}
	}
	return views, nil
}

// ListLevels returns a world's levels with the player's best results
func (s *WorldService) ListLevels(userID, worldID string) ([]LevelView, error) {
	world, err := s.worlds.GetWorld(worldID)
	if err != nil {
		return nil, fmt.Errorf("failed to load world: %w", err)
	}
	if world == nil {
		return nil, ErrWorldNotFound
	}

	levels, err := s.worlds.ListLevels(worldID)
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}

	completions, err := s.progress.ListLevelCompletions(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load completions: %w", err)
	}
	byLevel := make(map[string]models.LevelCompletion, len(completions))
	for _, c := range completions {
		byLevel[c.LevelID] = c
	}

	views := make([]LevelView, len(levels))
	for i, l := range levels {
		view := LevelView{Level: l}
		if c, ok := byLevel[l.ID]; ok {
			view.BestStars = c.BestStars
			view.BestScore = c.BestScore
			view.TimesPlayed = c.TimesPlayed
		}
		views[i] = view
	}
	return views, nil
}
