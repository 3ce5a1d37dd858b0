package repository

import (
	"database/sql"

	"wordquest/internal/database"
	"wordquest/internal/models"
)

// WorldRepository handles world and level database operations
type WorldRepository struct {
	db *database.DB
}

// NewWorldRepository creates a new world repository
func NewWorldRepository(db *database.DB) *WorldRepository {
	return &WorldRepository{db: db}
}

// ListWorlds returns all worlds in display order
func (r *WorldRepository) ListWorlds() ([]models.World, error) {
	query := `
		SELECT id, name, description, theme, display_order, icon_emoji,
		       color_primary, color_secondary, unlock_stars_required
		FROM worlds
		ORDER BY display_order
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var worlds []models.World
	for rows.Next() {
		var w models.World
		if err := rows.Scan(&w.ID, &w.Name, &w.Description, &w.Theme, &w.DisplayOrder,
			&w.IconEmoji, &w.ColorPrimary, &w.ColorSecondary, &w.UnlockStarsRequired); err != nil {
			return nil, err
		}
		worlds = append(worlds, w)
	}
	return worlds, rows.Err()
}

// GetWorld retrieves a world by ID, or nil when not found
func (r *WorldRepository) GetWorld(id string) (*models.World, error) {
	query := `
		SELECT id, name, description, theme, display_order, icon_emoji,
		       color_primary, color_secondary, unlock_stars_required
		FROM worlds
		WHERE id = ?
	`
	w := &models.World{}
	err := r.db.QueryRow(query, id).Scan(&w.ID, &w.Name, &w.Description, &w.Theme,
		&w.DisplayOrder, &w.IconEmoji, &w.ColorPrimary, &w.ColorSecondary, &w.UnlockStarsRequired)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

// ListLevels returns a world's levels ordered by level number
func (r *WorldRepository) ListLevels(worldID string) ([]models.Level, error) {
	query := `
		SELECT id, world_id, level_number, name, difficulty_tier,
		       target_word_count, time_limit_seconds, base_coins
		FROM levels
		WHERE world_id = ?
		ORDER BY level_number
	`
	rows, err := r.db.Query(query, worldID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var levels []models.Level
	for rows.Next() {
		var l models.Level
		if err := rows.Scan(&l.ID, &l.WorldID, &l.LevelNumber, &l.Name, &l.DifficultyTier,
			&l.TargetWordCount, &l.TimeLimitSeconds, &l.BaseCoins); err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}
	return levels, rows.Err()
}

// GetLevel retrieves a level by ID, or nil when not found
func (r *WorldRepository) GetLevel(id string) (*models.Level, error) {
	query := `
		SELECT id, world_id, level_number, name, difficulty_tier,
		       target_word_count, time_limit_seconds, base_coins
		FROM levels
		WHERE id = ?
	`
	l := &models.Level{}
	err := r.db.QueryRow(query, id).Scan(&l.ID, &l.WorldID, &l.LevelNumber, &l.Name,
		&l.DifficultyTier, &l.TargetWordCount, &l.TimeLimitSeconds, &l.BaseCoins)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

// CountLevels returns the total number of levels across all worlds
func (r *WorldRepository) CountLevels() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM levels").Scan(&count)
	return count, err
}
