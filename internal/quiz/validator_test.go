package quiz

import (
	"testing"

	"wordquest/internal/models"
)

func TestValidateSpellingIsCaseSensitive(t *testing.T) {
	word := models.Vocabulary{ID: "v-1", Word: "vivid", Definition: "bright and strong"}

	correct, canonical := Validate(TypeSpelling, word, emptyRels(), nil, "vivid")
	if !correct || canonical != "vivid" {
		t.Errorf("exact spelling: correct=%v canonical=%q", correct, canonical)
	}

	correct, _ = Validate(TypeSpelling, word, emptyRels(), nil, "VIVID")
	if correct {
		t.Error("uppercase spelling accepted for a lowercase word")
	}
}

func TestValidateCaseInsensitiveTypes(t *testing.T) {
	word := models.Vocabulary{ID: "v-1", Word: "Vivid", Definition: "bright and strong"}
	synonym := models.Vocabulary{ID: "v-2", Word: "Bright"}
	antonym := models.Vocabulary{ID: "v-3", Word: "Dull"}

	rels := emptyRels()
	rels.add(word.ID, models.Synonym, synonym)
	rels.add(word.ID, models.Antonym, antonym)

	tests := []struct {
		qtype  QuestionType
		answer string
		want   string
	}{
		{TypeFillBlank, "vIvId", "Vivid"},
		{TypeReverseDefinition, "VIVID", "Vivid"},
		{TypeSynonym, "bright", "Bright"},
		{TypeAntonym, "DULL", "Dull"},
	}

	for _, tt := range tests {
		t.Run(string(tt.qtype), func(t *testing.T) {
			correct, canonical := Validate(tt.qtype, word, rels, nil, tt.answer)
			if !correct {
				t.Errorf("answer %q rejected", tt.answer)
			}
			if canonical != tt.want {
				t.Errorf("canonical = %q, want %q", canonical, tt.want)
			}
		})
	}
}

func TestValidateExactStringTypes(t *testing.T) {
	word := models.Vocabulary{
		ID:              "v-1",
		Word:            "vivid",
		Definition:      "bright and strong",
		ExampleSentence: "The vivid sunset amazed us.",
	}

	correct, _ := Validate(TypeDefinition, word, emptyRels(), nil, "bright and strong")
	if !correct {
		t.Error("exact definition rejected")
	}
	correct, _ = Validate(TypeDefinition, word, emptyRels(), nil, "Bright and strong")
	if correct {
		t.Error("definition comparison should be exact")
	}

	correct, _ = Validate(TypeExampleSentence, word, emptyRels(), nil, "The vivid sunset amazed us.")
	if !correct {
		t.Error("exact sentence rejected")
	}
}

func TestValidateTrueFalseUsesStoredQuestion(t *testing.T) {
	word := models.Vocabulary{ID: "v-1", Word: "vivid", Definition: "bright and strong"}

	stored := &Question{
		WordID:       word.ID,
		Word:         word.Word,
		Type:         TypeTrueFalse,
		Options:      []string{"True", "False"},
		CorrectIndex: 1,
	}

	correct, canonical := Validate(TypeTrueFalse, word, emptyRels(), stored, "False")
	if !correct || canonical != "False" {
		t.Errorf("stored false pairing: correct=%v canonical=%q", correct, canonical)
	}

	correct, _ = Validate(TypeTrueFalse, word, emptyRels(), stored, "True")
	if correct {
		t.Error("wrong true_false answer accepted")
	}
}

func TestValidateTrueFalseWithoutStoredQuestion(t *testing.T) {
	word := models.Vocabulary{ID: "v-1", Word: "vivid", Definition: "bright and strong"}

	// A stale session lookup cannot validate; it must fail closed
	correct, canonical := Validate(TypeTrueFalse, word, emptyRels(), nil, "True")
	if correct {
		t.Error("true_false validated without a stored question")
	}
	if canonical != "" {
		t.Errorf("canonical = %q, want empty", canonical)
	}
}

func TestValidateMissingRelationship(t *testing.T) {
	word := models.Vocabulary{ID: "v-1", Word: "vivid"}

	correct, canonical := Validate(TypeSynonym, word, emptyRels(), nil, "anything")
	if correct || canonical != "" {
		t.Errorf("missing synonym edge: correct=%v canonical=%q, want false and empty", correct, canonical)
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	word := models.Vocabulary{ID: "v-1", Word: "vivid", Definition: "bright and strong"}
	rels := emptyRels()
	rels.add(word.ID, models.Synonym, models.Vocabulary{ID: "v-2", Word: "bright"})

	for i := 0; i < 3; i++ {
		correct, canonical := Validate(TypeSynonym, word, rels, nil, "bright")
		if !correct || canonical != "bright" {
			t.Errorf("call %d: correct=%v canonical=%q", i, correct, canonical)
		}
	}
}
