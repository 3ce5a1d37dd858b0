package quiz

import "math/rand"

// maxPickAttempts bounds the re-roll loop when the weighted draw keeps
// landing on the previous question's type
const maxPickAttempts = 20

// pickType draws a question type from the tier's weight table, guaranteeing
// the result differs from lastType unless the table has a single entry.
func pickType(rng *rand.Rand, lastType QuestionType, tier int) QuestionType {
	weights := weightsForTier(tier)

	for attempt := 0; attempt < maxPickAttempts; attempt++ {
		r := rng.Float64()
		cumulative := 0.0
		for _, entry := range weights {
			cumulative += entry.weight
			if r < cumulative {
				if entry.qtype != lastType {
					return entry.qtype
				}
				break // re-roll
			}
		}
	}

	// Attempt budget exhausted: take any table entry that isn't lastType
	for _, entry := range weights {
		if entry.qtype != lastType {
			return entry.qtype
		}
	}
	return TypeDefinition
}
