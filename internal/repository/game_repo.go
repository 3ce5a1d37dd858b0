package repository

import (
	"database/sql"

	"wordquest/internal/database"
	"wordquest/internal/models"
)

// GameRepository handles game session and answer database operations
type GameRepository struct {
	db *database.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *database.DB) *GameRepository {
	return &GameRepository{db: db}
}

// CreateSession inserts a new active game session
func (r *GameRepository) CreateSession(session *models.GameSession) error {
	query := `
		INSERT INTO game_sessions (id, user_id, level_id, started_at, status)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		session.ID, session.UserID, session.LevelID, session.StartedAt, string(session.Status))
	return err
}

// GetSession retrieves a session by ID, or nil when not found
func (r *GameRepository) GetSession(id string) (*models.GameSession, error) {
	query := `
		SELECT id, user_id, level_id, started_at, ended_at, status,
		       score, coins_earned, accuracy, stars_earned
		FROM game_sessions
		WHERE id = ?
	`
	s := &models.GameSession{}
	var endedAt sql.NullInt64
	var status string

	err := r.db.QueryRow(query, id).Scan(
		&s.ID, &s.UserID, &s.LevelID, &s.StartedAt, &endedAt, &status,
		&s.Score, &s.CoinsEarned, &s.Accuracy, &s.StarsEarned)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if endedAt.Valid {
		s.EndedAt = &endedAt.Int64
	}
	s.Status = models.SessionStatus(status)
	return s, nil
}

// AverageAccuracy returns the mean accuracy across a player's completed
// sessions, or 0 when they have none
func (r *GameRepository) AverageAccuracy(userID string) (float64, error) {
	query := `
		SELECT COALESCE(AVG(accuracy), 0)
		FROM game_sessions
		WHERE user_id = ? AND status = ?
	`
	var avg float64
	err := r.db.QueryRow(query, userID, string(models.SessionCompleted)).Scan(&avg)
	return avg, err
}

// CompleteSession records a session's final results
func (r *GameRepository) CompleteSession(session *models.GameSession) error {
	query := `
		UPDATE game_sessions
		SET ended_at = ?, status = ?, score = ?, coins_earned = ?, accuracy = ?, stars_earned = ?
		WHERE id = ?
	`
	_, err := r.db.Exec(query,
		session.EndedAt, string(session.Status), session.Score, session.CoinsEarned,
		session.Accuracy, session.StarsEarned, session.ID)
	return err
}

// InsertAnswer records an answered question
func (r *GameRepository) InsertAnswer(answer *models.SessionAnswer) error {
	query := `
		INSERT INTO session_answers
			(id, session_id, word_id, question_type, correct_answer, user_answer,
			 is_correct, response_time_ms, points_earned, answered_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		answer.ID, answer.SessionID, answer.WordID, answer.QuestionType,
		answer.CorrectAnswer, answer.UserAnswer, answer.IsCorrect,
		answer.ResponseTimeMs, answer.PointsEarned, answer.AnsweredAt)
	return err
}

// ListAnswers returns a session's answers in the order they were given
func (r *GameRepository) ListAnswers(sessionID string) ([]models.SessionAnswer, error) {
	query := `
		SELECT id, session_id, word_id, question_type, correct_answer, user_answer,
		       is_correct, response_time_ms, points_earned, answered_at
		FROM session_answers
		WHERE session_id = ?
		ORDER BY answered_at
	`
	rows, err := r.db.Query(query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []models.SessionAnswer
	for rows.Next() {
		var a models.SessionAnswer
		if err := rows.Scan(&a.ID, &a.SessionID, &a.WordID, &a.QuestionType,
			&a.CorrectAnswer, &a.UserAnswer, &a.IsCorrect,
			&a.ResponseTimeMs, &a.PointsEarned, &a.AnsweredAt); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

// HasAnswer reports whether a word was already answered in a session
func (r *GameRepository) HasAnswer(sessionID, wordID string) (bool, error) {
	var count int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM session_answers WHERE session_id = ? AND word_id = ?",
		sessionID, wordID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
