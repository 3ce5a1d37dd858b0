package repository

import (
	"database/sql"

	"wordquest/internal/database"
	"wordquest/internal/models"
)

// ProgressRepository handles player progress, level completion and
// word mastery database operations.
type ProgressRepository struct {
	db *database.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *database.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// CreateProgress seeds the progress row for a new player
func (r *ProgressRepository) CreateProgress(userID, title string) error {
	query := `
		INSERT INTO player_progress (user_id, total_coins, total_stars, current_title, words_mastered)
		VALUES (?, 0, 0, ?, 0)
	`
	_, err := r.db.Exec(query, userID, title)
	return err
}

// GetProgress retrieves a player's progress row, or nil when not found
func (r *ProgressRepository) GetProgress(userID string) (*models.PlayerProgress, error) {
	query := `
		SELECT user_id, total_coins, total_stars, current_title, words_mastered
		FROM player_progress
		WHERE user_id = ?
	`
	p := &models.PlayerProgress{}
	err := r.db.QueryRow(query, userID).Scan(
		&p.UserID, &p.TotalCoins, &p.TotalStars, &p.CurrentTitle, &p.WordsMastered)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProgress writes a player's running totals
func (r *ProgressRepository) UpdateProgress(p *models.PlayerProgress) error {
	query := `
		UPDATE player_progress
		SET total_coins = ?, total_stars = ?, current_title = ?, words_mastered = ?
		WHERE user_id = ?
	`
	_, err := r.db.Exec(query, p.TotalCoins, p.TotalStars, p.CurrentTitle, p.WordsMastered, p.UserID)
	return err
}

// SpendCoins deducts coins, failing when the balance is insufficient
func (r *ProgressRepository) SpendCoins(userID string, amount int) (bool, error) {
	result, err := r.db.Exec(
		"UPDATE player_progress SET total_coins = total_coins - ? WHERE user_id = ? AND total_coins >= ?",
		amount, userID, amount)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// GetLevelCompletion retrieves a player's record for a level, or nil
func (r *ProgressRepository) GetLevelCompletion(userID, levelID string) (*models.LevelCompletion, error) {
	query := `
		SELECT id, user_id, level_id, best_stars, best_score, times_played
		FROM level_completion
		WHERE user_id = ? AND level_id = ?
	`
	c := &models.LevelCompletion{}
	err := r.db.QueryRow(query, userID, levelID).Scan(
		&c.ID, &c.UserID, &c.LevelID, &c.BestStars, &c.BestScore, &c.TimesPlayed)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// CreateLevelCompletion inserts a first completion record
func (r *ProgressRepository) CreateLevelCompletion(c *models.LevelCompletion) error {
	query := `
		INSERT INTO level_completion (id, user_id, level_id, best_stars, best_score, times_played)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, c.ID, c.UserID, c.LevelID, c.BestStars, c.BestScore, c.TimesPlayed)
	return err
}

// UpdateLevelCompletion writes an existing completion record
func (r *ProgressRepository) UpdateLevelCompletion(c *models.LevelCompletion) error {
	query := `
		UPDATE level_completion
		SET best_stars = ?, best_score = ?, times_played = ?
		WHERE id = ?
	`
	_, err := r.db.Exec(query, c.BestStars, c.BestScore, c.TimesPlayed, c.ID)
	return err
}

// ListLevelCompletions returns all of a player's level records
func (r *ProgressRepository) ListLevelCompletions(userID string) ([]models.LevelCompletion, error) {
	query := `
		SELECT id, user_id, level_id, best_stars, best_score, times_played
		FROM level_completion
		WHERE user_id = ?
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completions []models.LevelCompletion
	for rows.Next() {
		var c models.LevelCompletion
		if err := rows.Scan(&c.ID, &c.UserID, &c.LevelID, &c.BestStars, &c.BestScore, &c.TimesPlayed); err != nil {
			return nil, err
		}
		completions = append(completions, c)
	}
	return completions, rows.Err()
}

// GetWordMastery retrieves a player's mastery row for a word, or nil
func (r *ProgressRepository) GetWordMastery(userID, wordID string) (*models.WordMastery, error) {
	query := `
		SELECT id, user_id, word_id, times_correct, times_attempted, mastery_level
		FROM word_mastery
		WHERE user_id = ? AND word_id = ?
	`
	m := &models.WordMastery{}
	var level string
	err := r.db.QueryRow(query, userID, wordID).Scan(
		&m.ID, &m.UserID, &m.WordID, &m.TimesCorrect, &m.TimesAttempted, &level)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	m.MasteryLevel = models.MasteryLevel(level)
	return m, nil
}

// CreateWordMastery inserts a first mastery row
func (r *ProgressRepository) CreateWordMastery(m *models.WordMastery) error {
	query := `
		INSERT INTO word_mastery (id, user_id, word_id, times_correct, times_attempted, mastery_level)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, m.ID, m.UserID, m.WordID, m.TimesCorrect, m.TimesAttempted, string(m.MasteryLevel))
	return err
}

// UpdateWordMastery writes an existing mastery row
func (r *ProgressRepository) UpdateWordMastery(m *models.WordMastery) error {
	query := `
		UPDATE word_mastery
		SET times_correct = ?, times_attempted = ?, mastery_level = ?
		WHERE id = ?
	`
	_, err := r.db.Exec(query, m.TimesCorrect, m.TimesAttempted, string(m.MasteryLevel), m.ID)
	return err
}

// CountMastered returns how many words a player has fully mastered
func (r *ProgressRepository) CountMastered(userID string) (int, error) {
	var count int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM word_mastery WHERE user_id = ? AND mastery_level = ?",
		userID, string(models.MasteryMastered)).Scan(&count)
	return count, err
}

// MasteryBreakdown returns the count of words at each mastery level
func (r *ProgressRepository) MasteryBreakdown(userID string) (map[models.MasteryLevel]int, error) {
	rows, err := r.db.Query(
		"SELECT mastery_level, COUNT(*) FROM word_mastery WHERE user_id = ? GROUP BY mastery_level",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	breakdown := make(map[models.MasteryLevel]int)
	for rows.Next() {
		var level string
		var count int
		if err := rows.Scan(&level, &count); err != nil {
			return nil, err
		}
		breakdown[models.MasteryLevel(level)] = count
	}
	return breakdown, rows.Err()
}

// StarsByWorld returns a player's best-star totals grouped by world
func (r *ProgressRepository) StarsByWorld(userID string) (map[string]int, error) {
	query := `
		SELECT l.world_id, COALESCE(SUM(lc.best_stars), 0)
		FROM level_completion lc
		JOIN levels l ON l.id = lc.level_id
		WHERE lc.user_id = ?
		GROUP BY l.world_id
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stars := make(map[string]int)
	for rows.Next() {
		var worldID string
		var total int
		if err := rows.Scan(&worldID, &total); err != nil {
			return nil, err
		}
		stars[worldID] = total
	}
	return stars, rows.Err()
}

// CountLevelCompletions returns how many distinct levels a player has completed
func (r *ProgressRepository) CountLevelCompletions(userID string) (int, error) {
	var count int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM level_completion WHERE user_id = ?", userID).Scan(&count)
	return count, err
}

// MasteryDetail is a word mastery row joined with its vocabulary entry
type MasteryDetail struct {
	WordID         string
	Word           string
	Definition     string
	Category       string
	TimesCorrect   int
	TimesAttempted int
	MasteryLevel   models.MasteryLevel
}

// MasteryDetail returns a player's mastery rows with word details,
// ordered by category.
func (r *ProgressRepository) MasteryDetail(userID string) ([]MasteryDetail, error) {
	query := `
		SELECT v.id, v.word, v.definition, v.category,
		       wm.times_correct, wm.times_attempted, wm.mastery_level
		FROM word_mastery wm
		JOIN vocabulary v ON v.id = wm.word_id
		WHERE wm.user_id = ?
		ORDER BY v.category, wm.mastery_level DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []MasteryDetail
	for rows.Next() {
		var d MasteryDetail
		var level string
		if err := rows.Scan(&d.WordID, &d.Word, &d.Definition, &d.Category,
			&d.TimesCorrect, &d.TimesAttempted, &level); err != nil {
			return nil, err
		}
		d.MasteryLevel = models.MasteryLevel(level)
		details = append(details, d)
	}
	return details, rows.Err()
}
