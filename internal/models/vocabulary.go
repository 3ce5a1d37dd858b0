package models

// PartOfSpeech for a vocabulary entry
type PartOfSpeech string

const (
	Noun      PartOfSpeech = "noun"
	Verb      PartOfSpeech = "verb"
	Adjective PartOfSpeech = "adjective"
	Adverb    PartOfSpeech = "adverb"
)

// Vocabulary is an immutable word record owned by a world.
// Seeded by content loading and never mutated by game logic.
type Vocabulary struct {
	ID              string
	Word            string
	Definition      string
	PartOfSpeech    PartOfSpeech
	DifficultyTier  int // 1-5 scale
	ExampleSentence string
	Category        string
	WorldID         string
}

// RelationshipType classifies a word relationship edge
type RelationshipType string

const (
	Synonym RelationshipType = "synonym"
	Antonym RelationshipType = "antonym"
)

// WordRelationship is a directed edge between two vocabulary entries
type WordRelationship struct {
	ID               string
	WordID           string
	RelatedWordID    string
	RelationshipType RelationshipType
}
