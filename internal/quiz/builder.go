package quiz

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"wordquest/internal/models"
)

// tryBuild attempts to construct a question of the given type. A nil
// result means the type has no viable candidate for this word (missing
// relationship, too few usable distractors, word too short) and the
// caller should advance to the next fallback type.
func (g *Generator) tryBuild(qtype QuestionType, word models.Vocabulary, pool []models.Vocabulary) *Question {
	switch qtype {
	case TypeDefinition:
		return g.buildDefinition(word, pool)
	case TypeFillBlank:
		return g.buildFillBlank(word, pool)
	case TypeSynonym:
		return g.buildSynonym(word, pool)
	case TypeReverseDefinition:
		return g.buildReverseDefinition(word, pool)
	case TypeTrueFalse:
		return g.buildTrueFalse(word, pool)
	case TypeExampleSentence:
		return g.buildExampleSentence(word, pool)
	case TypeAntonym:
		return g.buildAntonym(word, pool)
	case TypeSpelling:
		return g.buildSpelling(word)
	default:
		return nil
	}
}

// buildDefinition never returns nil: with zero distractors it still
// produces a (degenerate) single-option question, which keeps the
// unconditional fallback guarantee intact.
func (g *Generator) buildDefinition(word models.Vocabulary, pool []models.Vocabulary) *Question {
	var wrong []models.Vocabulary
	for _, w := range pool {
		if w.ID == word.ID {
			continue
		}
		sameCategory := w.Category == word.Category && absInt(w.DifficultyTier-word.DifficultyTier) <= 1
		if sameCategory || w.DifficultyTier == word.DifficultyTier {
			wrong = append(wrong, w)
		}
	}

	distractors := g.pickDistinct(definitions(wrong), word.Definition, 3)

	return g.assemble(word, TypeDefinition,
		fmt.Sprintf("What does %q mean?", word.Word),
		word.Definition, distractors)
}

func (g *Generator) buildFillBlank(word models.Vocabulary, pool []models.Vocabulary) *Question {
	sentence := strings.Replace(word.ExampleSentence, word.Word, "___", 1)

	var samePOS, others []models.Vocabulary
	for _, w := range pool {
		if w.ID == word.ID {
			continue
		}
		if w.PartOfSpeech == word.PartOfSpeech {
			samePOS = append(samePOS, w)
		} else {
			others = append(others, w)
		}
	}

	distractors := g.pickDistinct(wordTexts(samePOS), word.Word, 3)
	// Pool floor: top up from any remaining words when the same
	// part-of-speech pool can't supply three distractors.
	if len(distractors) < 3 {
		extra := g.pickDistinct(wordTexts(others), word.Word, 3-len(distractors))
		distractors = append(distractors, extra...)
	}

	return g.assemble(word, TypeFillBlank,
		fmt.Sprintf("Fill in the blank: %q", sentence),
		word.Word, distractors)
}

func (g *Generator) buildSynonym(word models.Vocabulary, pool []models.Vocabulary) *Question {
	related, err := g.rels.RelatedWords(word.ID, models.Synonym)
	if err != nil {
		log.Printf("quiz: synonym lookup failed for word %s: %v", word.ID, err)
		return nil
	}
	if len(related) == 0 {
		return nil
	}

	synonym := related[0]

	var wrong []models.Vocabulary
	for _, w := range pool {
		if w.ID != word.ID && w.ID != synonym.ID {
			wrong = append(wrong, w)
		}
	}

	distractors := g.pickDistinct(wordTexts(wrong), synonym.Word, 3)

	return g.assemble(word, TypeSynonym,
		fmt.Sprintf("Which word is closest in meaning to %q?", word.Word),
		synonym.Word, distractors)
}

func (g *Generator) buildReverseDefinition(word models.Vocabulary, pool []models.Vocabulary) *Question {
	var wrong []models.Vocabulary
	for _, w := range pool {
		if w.ID != word.ID && absInt(w.DifficultyTier-word.DifficultyTier) <= 1 {
			wrong = append(wrong, w)
		}
	}

	distractors := g.pickDistinct(wordTexts(wrong), word.Word, 3)

	return g.assemble(word, TypeReverseDefinition,
		fmt.Sprintf("Which word means %q?", word.Definition),
		word.Word, distractors)
}

func (g *Generator) buildTrueFalse(word models.Vocabulary, pool []models.Vocabulary) *Question {
	correctPairing := g.rng.Float64() < 0.5

	displayed := word.Definition
	if !correctPairing {
		var others []models.Vocabulary
		for _, w := range pool {
			if w.ID != word.ID {
				others = append(others, w)
			}
		}
		if len(others) == 0 {
			return nil
		}
		displayed = others[g.rng.Intn(len(others))].Definition
	}

	correctIndex := 0
	if !correctPairing {
		correctIndex = 1
	}

	return &Question{
		WordID:       word.ID,
		Word:         word.Word,
		Type:         TypeTrueFalse,
		Prompt:       fmt.Sprintf("%q means %q — True or False?", word.Word, displayed),
		Options:      []string{"True", "False"},
		CorrectIndex: correctIndex,
	}
}

func (g *Generator) buildExampleSentence(word models.Vocabulary, pool []models.Vocabulary) *Question {
	if word.ExampleSentence == "" {
		return nil
	}

	var others []models.Vocabulary
	for _, w := range pool {
		if w.ID != word.ID && w.ExampleSentence != "" {
			others = append(others, w)
		}
	}
	if len(others) < 3 {
		return nil
	}

	shuffled := g.shuffleWords(others)[:3]

	// Wrong sentences substitute the target word into other words'
	// sentences, so every option reads as a sentence about the word.
	distractors := make([]string, 0, 3)
	for _, w := range shuffled {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(w.Word) + `\b`)
		if err != nil {
			continue
		}
		distractors = append(distractors, re.ReplaceAllString(w.ExampleSentence, word.Word))
	}
	if len(distractors) < 3 {
		return nil
	}

	return g.assemble(word, TypeExampleSentence,
		fmt.Sprintf("Which sentence uses %q correctly?", word.Word),
		word.ExampleSentence, distractors)
}

func (g *Generator) buildAntonym(word models.Vocabulary, pool []models.Vocabulary) *Question {
	related, err := g.rels.RelatedWords(word.ID, models.Antonym)
	if err != nil {
		log.Printf("quiz: antonym lookup failed for word %s: %v", word.ID, err)
		return nil
	}
	if len(related) == 0 {
		return nil
	}

	antonym := related[0]
	relatedIDs := make(map[string]bool, len(related))
	for _, r := range related {
		relatedIDs[r.ID] = true
	}

	// Distractors must not themselves be antonyms of the word
	var wrong []models.Vocabulary
	for _, w := range pool {
		if w.ID != word.ID && !relatedIDs[w.ID] {
			wrong = append(wrong, w)
		}
	}

	distractors := g.pickDistinct(wordTexts(wrong), antonym.Word, 3)

	return g.assemble(word, TypeAntonym,
		fmt.Sprintf("Which word means the OPPOSITE of %q?", word.Word),
		antonym.Word, distractors)
}

func (g *Generator) buildSpelling(word models.Vocabulary) *Question {
	if len(word.Word) < 3 {
		return nil
	}

	misspellings := misspell(g.rng, word.Word, 3)
	if len(misspellings) < 3 {
		return nil
	}

	return g.assemble(word, TypeSpelling,
		fmt.Sprintf("Which is the correct spelling of the word that means %q?", word.Definition),
		word.Word, misspellings)
}

// assemble shuffles correct+distractors and records where the correct
// value landed
func (g *Generator) assemble(word models.Vocabulary, qtype QuestionType, prompt, correct string, distractors []string) *Question {
	options := make([]string, 0, len(distractors)+1)
	options = append(options, correct)
	options = append(options, distractors...)

	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correctIndex := 0
	for i, opt := range options {
		if opt == correct {
			correctIndex = i
			break
		}
	}

	return &Question{
		WordID:       word.ID,
		Word:         word.Word,
		Type:         qtype,
		Prompt:       prompt,
		Options:      options,
		CorrectIndex: correctIndex,
	}
}

// pickDistinct shuffles candidates and takes up to n values that differ
// from the correct answer and from each other. Option uniqueness is
// best-effort: a small pool may yield fewer than n distractors.
func (g *Generator) pickDistinct(candidates []string, correct string, n int) []string {
	shuffled := make([]string, len(candidates))
	copy(shuffled, candidates)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	seen := map[string]bool{correct: true}
	var picked []string
	for _, c := range shuffled {
		if len(picked) >= n {
			break
		}
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		picked = append(picked, c)
	}
	return picked
}

func (g *Generator) shuffleWords(words []models.Vocabulary) []models.Vocabulary {
	shuffled := make([]models.Vocabulary, len(words))
	copy(shuffled, words)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

func wordTexts(words []models.Vocabulary) []string {
	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Word
	}
	return texts
}

func definitions(words []models.Vocabulary) []string {
	defs := make([]string, len(words))
	for i, w := range words {
		defs[i] = w.Definition
	}
	return defs
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
