package repository

import (
	"database/sql"

	"wordquest/internal/database"
	"wordquest/internal/models"
)

// VocabularyRepository handles vocabulary and relationship lookups.
// It satisfies the question generator's RelationshipLookup interface.
type VocabularyRepository struct {
	db *database.DB
}

// NewVocabularyRepository creates a new vocabulary repository
func NewVocabularyRepository(db *database.DB) *VocabularyRepository {
	return &VocabularyRepository{db: db}
}

const vocabularyColumns = `id, word, definition, part_of_speech, difficulty_tier, example_sentence, category, world_id`

// ListByWorld returns all vocabulary belonging to a world
func (r *VocabularyRepository) ListByWorld(worldID string) ([]models.Vocabulary, error) {
	rows, err := r.db.Query(
		"SELECT "+vocabularyColumns+" FROM vocabulary WHERE world_id = ?", worldID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVocabulary(rows)
}

// GetByID retrieves a vocabulary entry, or nil when not found
func (r *VocabularyRepository) GetByID(id string) (*models.Vocabulary, error) {
	var v models.Vocabulary
	var pos string
	err := r.db.QueryRow(
		"SELECT "+vocabularyColumns+" FROM vocabulary WHERE id = ?", id).Scan(
		&v.ID, &v.Word, &v.Definition, &pos, &v.DifficultyTier,
		&v.ExampleSentence, &v.Category, &v.WorldID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	v.PartOfSpeech = models.PartOfSpeech(pos)
	return &v, nil
}

// RelatedWords returns the vocabulary entries linked to wordID by
// relationship edges of the given type.
func (r *VocabularyRepository) RelatedWords(wordID string, relType models.RelationshipType) ([]models.Vocabulary, error) {
	query := `
		SELECT v.id, v.word, v.definition, v.part_of_speech, v.difficulty_tier,
		       v.example_sentence, v.category, v.world_id
		FROM word_relationships wr
		JOIN vocabulary v ON v.id = wr.related_word_id
		WHERE wr.word_id = ? AND wr.relationship_type = ?
	`
	rows, err := r.db.Query(query, wordID, string(relType))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVocabulary(rows)
}

func scanVocabulary(rows *sql.Rows) ([]models.Vocabulary, error) {
	var words []models.Vocabulary
	for rows.Next() {
		var v models.Vocabulary
		var pos string
		if err := rows.Scan(&v.ID, &v.Word, &v.Definition, &pos, &v.DifficultyTier,
			&v.ExampleSentence, &v.Category, &v.WorldID); err != nil {
			return nil, err
		}
		v.PartOfSpeech = models.PartOfSpeech(pos)
		words = append(words, v)
	}
	return words, rows.Err()
}
