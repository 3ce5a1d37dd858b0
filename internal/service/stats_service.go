package service

import (
	"fmt"

	"wordquest/internal/models"
	"wordquest/internal/quiz"
	"wordquest/internal/repository"
)

// Overview summarises a player's standing across the whole game
type Overview struct {
	TotalCoins      int
	TotalStars      int
	CurrentTitle    string
	WordsMastered   int
	WordsLearning   int
	LevelsCompleted int
	TotalLevels     int
	AverageAccuracy float64
	StarsByWorld    map[string]int
}

// CategoryMastery groups a player's word mastery rows by category
type CategoryMastery struct {
	Total      int
	Mastered   int
	Proficient int
	Learning   int
	New        int
	Words      []repository.MasteryDetail
}

// StatsService assembles player statistics views
type StatsService struct {
	progress *repository.ProgressRepository
	worlds   *repository.WorldRepository
	games    *repository.GameRepository
}

// NewStatsService creates a new stats service
func NewStatsService(progress *repository.ProgressRepository, worlds *repository.WorldRepository, games *repository.GameRepository) *StatsService {
	return &StatsService{progress: progress, worlds: worlds, games: games}
}

// Overview returns the player's headline numbers
func (s *StatsService) Overview(userID string) (*Overview, error) {
	progress, err := s.progress.GetProgress(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	overview := &Overview{CurrentTitle: quiz.DefaultTitle}
	if progress != nil {
		overview.TotalCoins = progress.TotalCoins
		overview.TotalStars = progress.TotalStars
		overview.CurrentTitle = progress.CurrentTitle
		overview.WordsMastered = progress.WordsMastered
	}

	breakdown, err := s.progress.MasteryBreakdown(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mastery breakdown: %w", err)
	}
	overview.WordsLearning = breakdown[models.MasteryLearning] + breakdown[models.MasteryProficient]

	completed, err := s.progress.CountLevelCompletions(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count completions: %w", err)
	}
	overview.LevelsCompleted = completed

	total, err := s.worlds.CountLevels()
	if err != nil {
		return nil, fmt.Errorf("failed to count levels: %w", err)
	}
	overview.TotalLevels = total

	accuracy, err := s.games.AverageAccuracy(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute accuracy: %w", err)
	}
	overview.AverageAccuracy = accuracy

	starsByWorld, err := s.progress.StarsByWorld(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load world stars: %w", err)
	}
	overview.StarsByWorld = starsByWorld

	return overview, nil
}

// Mastery returns the player's word mastery grouped by category
func (s *StatsService) Mastery(userID string) (map[string]*CategoryMastery, error) {
	details, err := s.progress.MasteryDetail(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mastery detail: %w", err)
	}

	byCategory := make(map[string]*CategoryMastery)
	for _, d := range details {
		cat := byCategory[d.Category]
		if cat == nil {
			cat = &CategoryMastery{}
			byCategory[d.Category] = cat
		}
		cat.Total++
		switch d.MasteryLevel {
		case models.MasteryMastered:
			cat.Mastered++
		case models.MasteryProficient:
			cat.Proficient++
		case models.MasteryLearning:
			cat.Learning++
		default:
			cat.New++
		}
		cat.Words = append(cat.Words, d)
	}
	return byCategory, nil
}
