package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"wordquest/internal/models"
	"wordquest/internal/quiz"
	"wordquest/internal/repository"
)

var (
	ErrLevelNotFound    = errors.New("level not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionNotActive = errors.New("session is not active")
	ErrWordNotFound     = errors.New("word not found")
	ErrNoVocabulary     = errors.New("level has no vocabulary")
	ErrAlreadyAnswered  = errors.New("word already answered in this session")
)

// GameService orchestrates play sessions: question generation, answer
// validation, scoring and end-of-level bookkeeping.
type GameService struct {
	games     *repository.GameRepository
	worlds    *repository.WorldRepository
	vocab     *repository.VocabularyRepository
	progress  *repository.ProgressRepository
	users     *repository.UserRepository
	generator *quiz.Generator
	store     quiz.QuestionStore
	email     *EmailService
}

// NewGameService creates a new game service
func NewGameService(
	games *repository.GameRepository,
	worlds *repository.WorldRepository,
	vocab *repository.VocabularyRepository,
	progress *repository.ProgressRepository,
	users *repository.UserRepository,
	generator *quiz.Generator,
	store quiz.QuestionStore,
	email *EmailService,
) *GameService {
	return &GameService{
		games:     games,
		worlds:    worlds,
		vocab:     vocab,
		progress:  progress,
		users:     users,
		generator: generator,
		store:     store,
		email:     email,
	}
}

// StartSession creates an active session for a level and generates its
// questions. The generated questions are stashed so answers can be
// validated against exactly what the player was shown.
func (s *GameService) StartSession(userID, levelID string) (*models.GameSession, []quiz.Question, error) {
	level, err := s.worlds.GetLevel(levelID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load level: %w", err)
	}
	if level == nil {
		return nil, nil, ErrLevelNotFound
	}

	vocabulary, err := s.vocab.ListByWorld(level.WorldID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}

	questions, err := s.generator.GenerateQuestions(vocabulary, level.DifficultyTier, level.TargetWordCount)
	if err != nil {
		if errors.Is(err, quiz.ErrEmptyVocabulary) {
			return nil, nil, ErrNoVocabulary
		}
		return nil, nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	session := &models.GameSession{
		ID:        uuid.New().String(),
		UserID:    userID,
		LevelID:   levelID,
		StartedAt: time.Now().UnixMilli(),
		Status:    models.SessionActive,
	}
	if err := s.games.CreateSession(session); err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}

	for _, q := range questions {
		s.store.Put(session.ID, q)
	}

	return session, questions, nil
}

// SubmitAnswer validates an answer, computes its points and records it
func (s *GameService) SubmitAnswer(userID, sessionID, wordID string, questionType quiz.QuestionType, answer string) (*quiz.AnswerOutcome, error) {
	session, err := s.ownedSession(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != models.SessionActive {
		return nil, ErrSessionNotActive
	}

	word, err := s.vocab.GetByID(wordID)
	if err != nil {
		return nil, fmt.Errorf("failed to load word: %w", err)
	}
	if word == nil {
		return nil, ErrWordNotFound
	}

	answered, err := s.games.HasAnswer(sessionID, wordID)
	if err != nil {
		return nil, fmt.Errorf("failed to check prior answers: %w", err)
	}
	if answered {
		return nil, ErrAlreadyAnswered
	}

	level, err := s.worlds.GetLevel(session.LevelID)
	if err != nil {
		return nil, fmt.Errorf("failed to load level: %w", err)
	}
	tier := 1
	if level != nil {
		tier = level.DifficultyTier
	}

	var stored *quiz.Question
	if q, ok := s.store.Get(sessionID, wordID); ok {
		stored = &q
	} else {
		log.Printf("No stored question for session=%s word=%s", sessionID, wordID)
	}

	isCorrect, correctAnswer := quiz.Validate(questionType, *word, s.vocab, stored, answer)

	prior, err := s.games.ListAnswers(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load prior answers: %w", err)
	}
	priorCorrect := make([]bool, len(prior))
	for i, a := range prior {
		priorCorrect[i] = a.IsCorrect
	}
	streak := quiz.StreakAfter(priorCorrect, isCorrect)

	now := time.Now().UnixMilli()
	responseTimeMs := int(now - session.StartedAt)
	points := quiz.PointsFor(isCorrect, responseTimeMs, tier, streak)

	record := &models.SessionAnswer{
		ID:             uuid.New().String(),
		SessionID:      sessionID,
		WordID:         wordID,
		QuestionType:   string(questionType),
		CorrectAnswer:  correctAnswer,
		UserAnswer:     answer,
		IsCorrect:      isCorrect,
		ResponseTimeMs: responseTimeMs,
		PointsEarned:   points,
		AnsweredAt:     now,
	}
	if err := s.games.InsertAnswer(record); err != nil {
		return nil, fmt.Errorf("failed to record answer: %w", err)
	}

	return &quiz.AnswerOutcome{
		Correct:       isCorrect,
		CorrectAnswer: correctAnswer,
		PointsEarned:  points,
		StreakCount:   streak,
	}, nil
}

// CompleteSession closes an active session, aggregates its results and
// applies them to the player's progress, level records and word mastery.
func (s *GameService) CompleteSession(ctx context.Context, userID, sessionID string) (*quiz.Summary, *models.PlayerProgress, error) {
	session, err := s.ownedSession(userID, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session.Status != models.SessionActive {
		return nil, nil, ErrSessionNotActive
	}

	answers, err := s.games.ListAnswers(sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load answers: %w", err)
	}

	level, err := s.worlds.GetLevel(session.LevelID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load level: %w", err)
	}
	baseCoins := 100
	if level != nil {
		baseCoins = level.BaseCoins
	}

	progress, err := s.progress.GetProgress(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load progress: %w", err)
	}
	if progress == nil {
		progress = &models.PlayerProgress{UserID: userID, CurrentTitle: quiz.DefaultTitle}
	}

	outcomes := make([]quiz.SessionOutcome, len(answers))
	for i, a := range answers {
		outcomes[i] = quiz.SessionOutcome{Correct: a.IsCorrect, Points: a.PointsEarned}
	}
	summary := quiz.Summarize(outcomes, baseCoins, progress.TotalStars, progress.CurrentTitle)

	now := time.Now().UnixMilli()
	session.EndedAt = &now
	session.Status = models.SessionCompleted
	session.Score = summary.Score
	session.CoinsEarned = summary.CoinsEarned
	session.Accuracy = summary.Accuracy
	session.StarsEarned = summary.StarsEarned
	if err := s.games.CompleteSession(session); err != nil {
		return nil, nil, fmt.Errorf("failed to complete session: %w", err)
	}

	if err := s.recordLevelCompletion(userID, session.LevelID, summary); err != nil {
		return nil, nil, err
	}
	if err := s.recordWordMastery(userID, answers); err != nil {
		return nil, nil, err
	}

	mastered, err := s.progress.CountMastered(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count mastered words: %w", err)
	}

	progress.TotalCoins += summary.CoinsEarned
	progress.TotalStars = summary.TotalStars
	progress.CurrentTitle = summary.NewTitle
	progress.WordsMastered = mastered
	if err := s.progress.UpdateProgress(progress); err != nil {
		return nil, nil, fmt.Errorf("failed to update progress: %w", err)
	}

	s.store.DeleteSession(sessionID)

	if summary.TitleChanged {
		s.notifyTitleEarned(ctx, userID, summary.NewTitle)
	}

	return &summary, progress, nil
}

// GetSession returns a session with its recorded answers
func (s *GameService) GetSession(userID, sessionID string) (*models.GameSession, []models.SessionAnswer, error) {
	session, err := s.ownedSession(userID, sessionID)
	if err != nil {
		return nil, nil, err
	}
	answers, err := s.games.ListAnswers(sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load answers: %w", err)
	}
	return session, answers, nil
}

func (s *GameService) ownedSession(userID, sessionID string) (*models.GameSession, error) {
	session, err := s.games.GetSession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil || session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *GameService) recordLevelCompletion(userID, levelID string, summary quiz.Summary) error {
	existing, err := s.progress.GetLevelCompletion(userID, levelID)
	if err != nil {
		return fmt.Errorf("failed to load level completion: %w", err)
	}

	if existing == nil {
		completion := &models.LevelCompletion{
			ID:          uuid.New().String(),
			UserID:      userID,
			LevelID:     levelID,
			BestStars:   summary.StarsEarned,
			BestScore:   summary.Score,
			TimesPlayed: 1,
		}
		if err := s.progress.CreateLevelCompletion(completion); err != nil {
			return fmt.Errorf("failed to create level completion: %w", err)
		}
		return nil
	}

	if summary.StarsEarned > existing.BestStars {
		existing.BestStars = summary.StarsEarned
	}
	if summary.Score > existing.BestScore {
		existing.BestScore = summary.Score
	}
	existing.TimesPlayed++
	if err := s.progress.UpdateLevelCompletion(existing); err != nil {
		return fmt.Errorf("failed to update level completion: %w", err)
	}
	return nil
}

func (s *GameService) recordWordMastery(userID string, answers []models.SessionAnswer) error {
	for _, answer := range answers {
		existing, err := s.progress.GetWordMastery(userID, answer.WordID)
		if err != nil {
			return fmt.Errorf("failed to load word mastery: %w", err)
		}

		if existing == nil {
			mastery := &models.WordMastery{
				ID:             uuid.New().String(),
				UserID:         userID,
				WordID:         answer.WordID,
				TimesAttempted: 1,
			}
			if answer.IsCorrect {
				mastery.TimesCorrect = 1
				mastery.MasteryLevel = models.MasteryLearning
			} else {
				mastery.MasteryLevel = models.MasteryNew
			}
			if err := s.progress.CreateWordMastery(mastery); err != nil {
				return fmt.Errorf("failed to create word mastery: %w", err)
			}
			continue
		}

		if answer.IsCorrect {
			existing.TimesCorrect++
		}
		existing.TimesAttempted++
		existing.MasteryLevel = masteryLevelFor(existing.TimesCorrect, existing.TimesAttempted)
		if err := s.progress.UpdateWordMastery(existing); err != nil {
			return fmt.Errorf("failed to update word mastery: %w", err)
		}
	}
	return nil
}

// masteryLevelFor classifies a word by cumulative correct ratio
func masteryLevelFor(timesCorrect, timesAttempted int) models.MasteryLevel {
	correct := float64(timesCorrect)
	attempted := float64(timesAttempted)
	switch {
	case correct >= attempted*0.8:
		return models.MasteryMastered
	case correct >= attempted*0.5:
		return models.MasteryProficient
	case timesCorrect > 0:
		return models.MasteryLearning
	}
	return models.MasteryNew
}

// notifyTitleEarned sends the congratulations email in the background
// of the request; failures are logged, never surfaced to the player.
func (s *GameService) notifyTitleEarned(ctx context.Context, userID, title string) {
	user, err := s.users.GetByID(userID)
	if err != nil || user == nil || user.Email == "" {
		return
	}
	if err := s.email.SendTitleEarnedEmail(ctx, user.Email, user.DisplayName, title); err != nil {
		log.Printf("Failed to send title email to user %s: %v", userID, err)
	}
}
