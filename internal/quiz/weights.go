package quiz

import (
	"fmt"
	"math"
)

// typeWeight pairs a question type with its selection probability
type typeWeight struct {
	qtype  QuestionType
	weight float64
}

// Question type weights scaled by difficulty tier:
//
//	Tier 1: Easy — mostly true_false, definition, fill_blank
//	Tier 2: Introduce reverse_definition and a little spelling
//	Tier 3: Add example_sentence and synonym
//	Tier 4: Add antonym, more spelling
//	Tier 5: All types, heaviest on spelling and antonym
var weightsByTier = map[int][]typeWeight{
	1: {
		{TypeTrueFalse, 0.30},
		{TypeDefinition, 0.35},
		{TypeFillBlank, 0.35},
	},
	2: {
		{TypeTrueFalse, 0.20},
		{TypeDefinition, 0.25},
		{TypeFillBlank, 0.25},
		{TypeReverseDefinition, 0.20},
		{TypeSpelling, 0.10},
	},
	3: {
		{TypeTrueFalse, 0.12},
		{TypeDefinition, 0.18},
		{TypeFillBlank, 0.18},
		{TypeReverseDefinition, 0.18},
		{TypeSpelling, 0.15},
		{TypeExampleSentence, 0.14},
		{TypeSynonym, 0.05},
	},
	4: {
		{TypeTrueFalse, 0.08},
		{TypeDefinition, 0.14},
		{TypeFillBlank, 0.14},
		{TypeReverseDefinition, 0.16},
		{TypeSpelling, 0.16},
		{TypeExampleSentence, 0.14},
		{TypeSynonym, 0.10},
		{TypeAntonym, 0.08},
	},
	5: {
		{TypeTrueFalse, 0.05},
		{TypeDefinition, 0.10},
		{TypeFillBlank, 0.12},
		{TypeReverseDefinition, 0.15},
		{TypeSpelling, 0.18},
		{TypeExampleSentence, 0.15},
		{TypeSynonym, 0.13},
		{TypeAntonym, 0.12},
	},
}

func init() {
	if err := validateWeights(); err != nil {
		panic(err)
	}
}

// validateWeights ensures every tier's table sums to 1.0
func validateWeights() error {
	for tier, weights := range weightsByTier {
		sum := 0.0
		for _, w := range weights {
			sum += w.weight
		}
		if math.Abs(sum-1.0) > 1e-9 {
			return fmt.Errorf("quiz: tier %d weights sum to %f, want 1.0", tier, sum)
		}
	}
	return nil
}

// weightsForTier returns the weight table for a tier, clamped to 1-5
func weightsForTier(tier int) []typeWeight {
	if tier < 1 {
		tier = 1
	}
	if tier > 5 {
		tier = 5
	}
	return weightsByTier[tier]
}
