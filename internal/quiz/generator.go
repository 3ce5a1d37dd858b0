package quiz

import (
	"errors"
	"math/rand"
	"time"

	"wordquest/internal/models"
)

// ErrEmptyVocabulary is returned when a level has no vocabulary to draw
// from. Generation cannot proceed and the level must not start.
var ErrEmptyVocabulary = errors.New("quiz: no vocabulary available")

// RelationshipLookup resolves synonym/antonym edges for a word. The
// entries come back in a stable order; builders and the validator both
// use the first edge of the requested type.
type RelationshipLookup interface {
	RelatedWords(wordID string, relType models.RelationshipType) ([]models.Vocabulary, error)
}

// Generator produces question sequences for game sessions. All
// randomness flows through the injected rand source so tests can be
// deterministic.
type Generator struct {
	rels RelationshipLookup
	rng  *rand.Rand
}

// NewGenerator creates a generator with a time-seeded random source
func NewGenerator(rels RelationshipLookup) *Generator {
	return NewGeneratorWithRand(rels, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewGeneratorWithRand creates a generator with the given random source
func NewGeneratorWithRand(rels RelationshipLookup, rng *rand.Rand) *Generator {
	return &Generator{rels: rels, rng: rng}
}

// GenerateQuestions builds an ordered question sequence for a level.
// Target words are drawn from tiers [max(1, tier-1), tier]; the full
// vocabulary slice remains the distractor pool. The result holds at most
// targetCount questions and no two adjacent questions share a type.
func (g *Generator) GenerateQuestions(vocabulary []models.Vocabulary, tier, targetCount int) ([]Question, error) {
	if len(vocabulary) == 0 {
		return nil, ErrEmptyVocabulary
	}

	targets := g.selectTargetWords(vocabulary, tier, targetCount)

	questions := make([]Question, 0, len(targets))
	var lastType QuestionType

	for _, word := range targets {
		q := g.generateForWord(word, vocabulary, lastType, tier)
		if q != nil {
			questions = append(questions, *q)
			lastType = q.Type
		}
	}

	if len(questions) > targetCount {
		questions = questions[:targetCount]
	}
	return questions, nil
}

// selectTargetWords filters the pool to the level's tier window,
// shuffles, and takes the first targetCount. A short pool returns a
// short list rather than an error.
func (g *Generator) selectTargetWords(vocabulary []models.Vocabulary, tier, targetCount int) []models.Vocabulary {
	minTier := tier - 1
	if minTier < 1 {
		minTier = 1
	}

	var eligible []models.Vocabulary
	for _, w := range vocabulary {
		if w.DifficultyTier >= minTier && w.DifficultyTier <= tier {
			eligible = append(eligible, w)
		}
	}

	shuffled := g.shuffleWords(eligible)
	if len(shuffled) > targetCount {
		shuffled = shuffled[:targetCount]
	}
	return shuffled
}

// generateForWord picks a weighted type and walks the fallback chain
// until a builder succeeds. Types equal to lastType are skipped unless
// the selector itself chose them, and the terminal definition build
// cannot fail for a non-empty pool.
func (g *Generator) generateForWord(word models.Vocabulary, pool []models.Vocabulary, lastType QuestionType, tier int) *Question {
	chosen := pickType(g.rng, lastType, tier)

	fallbackOrder := []QuestionType{
		chosen,
		TypeDefinition,
		TypeReverseDefinition,
		TypeFillBlank,
		TypeSpelling,
		TypeTrueFalse,
		TypeExampleSentence,
		TypeSynonym,
		TypeAntonym,
	}

	for _, qtype := range fallbackOrder {
		if qtype == lastType && qtype != chosen {
			continue
		}
		if q := g.tryBuild(qtype, word, pool); q != nil {
			return q
		}
	}

	return g.buildDefinition(word, pool)
}
