package quiz

import (
	"log"
	"strings"

	"wordquest/internal/models"
)

// Validate checks a submitted answer against the canonical correct value
// for the question type. The stored question is required only for
// true_false, whose correct answer depends on the random pairing made at
// generation time.
//
// A missing relationship or missing stored question yields an empty
// canonical answer and an incorrect result. Both indicate generation and
// validation disagree about the underlying data, so they are logged as
// anomalies rather than treated as expected cases.
func Validate(qtype QuestionType, word models.Vocabulary, rels RelationshipLookup, stored *Question, answer string) (bool, string) {
	switch qtype {
	case TypeDefinition:
		return answer == word.Definition, word.Definition

	case TypeFillBlank:
		return strings.EqualFold(answer, word.Word), word.Word

	case TypeSynonym:
		return validateRelated(word, models.Synonym, rels, answer)

	case TypeReverseDefinition:
		return strings.EqualFold(answer, word.Word), word.Word

	case TypeTrueFalse:
		if stored == nil {
			log.Printf("quiz: no stored question for true_false validation of word %s", word.ID)
			return false, ""
		}
		correct := stored.Options[stored.CorrectIndex]
		return answer == correct, correct

	case TypeExampleSentence:
		return answer == word.ExampleSentence, word.ExampleSentence

	case TypeAntonym:
		return validateRelated(word, models.Antonym, rels, answer)

	case TypeSpelling:
		// Spelling must match exactly, including case
		return answer == word.Word, word.Word

	default:
		log.Printf("quiz: unknown question type %q for word %s", qtype, word.ID)
		return false, ""
	}
}

func validateRelated(word models.Vocabulary, relType models.RelationshipType, rels RelationshipLookup, answer string) (bool, string) {
	related, err := rels.RelatedWords(word.ID, relType)
	if err != nil {
		log.Printf("quiz: %s lookup failed during validation of word %s: %v", relType, word.ID, err)
		return false, ""
	}
	if len(related) == 0 {
		log.Printf("quiz: %s question validated for word %s but no %s edge exists", relType, word.ID, relType)
		return false, ""
	}
	canonical := related[0].Word
	return strings.EqualFold(answer, canonical), canonical
}
