package quiz

// Title thresholds, highest first. The title is the first entry whose
// threshold does not exceed the player's cumulative star total.
var titleThresholds = []struct {
	threshold int
	title     string
}{
	{301, "Vocabulary Genius"},
	{201, "Word Wizard"},
	{101, "Language Master"},
	{51, "Vocabulary Champion"},
	{11, "Word Scholar"},
	{0, "Word Apprentice"},
}

// DefaultTitle is every new player's starting title
const DefaultTitle = "Word Apprentice"

// PointsFor computes the points earned by a single answer: base points
// scale with tier, fast answers earn a speed bonus, and every third
// consecutive correct answer adds to the streak bonus. Incorrect answers
// earn nothing.
func PointsFor(isCorrect bool, responseTimeMs, tier, streak int) int {
	if !isCorrect {
		return 0
	}

	points := 10 * tier

	switch {
	case responseTimeMs < 3000:
		points += 20
	case responseTimeMs < 8000:
		points += 10
	case responseTimeMs < 15000:
		points += 5
	}

	if streak >= 3 {
		points += 5 * (streak / 3)
	}

	return points
}

// StreakAfter computes the consecutive-correct run ending at and
// including the current answer, scanning prior outcomes backward until
// the first wrong answer. An incorrect current answer resets to zero.
func StreakAfter(priorCorrect []bool, isCorrect bool) int {
	if !isCorrect {
		return 0
	}
	streak := 1
	for i := len(priorCorrect) - 1; i >= 0; i-- {
		if !priorCorrect[i] {
			break
		}
		streak++
	}
	return streak
}

// StarsFor converts end-of-level accuracy into a star rating
func StarsFor(accuracy float64) int {
	switch {
	case accuracy >= 0.95:
		return 3
	case accuracy >= 0.8:
		return 2
	case accuracy >= 0.6:
		return 1
	}
	return 0
}

// TitleFor returns the title for a cumulative star total
func TitleFor(totalStars int) string {
	for _, t := range titleThresholds {
		if totalStars >= t.threshold {
			return t.title
		}
	}
	return DefaultTitle
}

// SessionOutcome is the per-answer input to Summarize
type SessionOutcome struct {
	Correct bool
	Points  int
}

// Summarize aggregates a completed session: total score, accuracy,
// stars, coins scaled by accuracy, and the player's possibly-changed
// title given their new cumulative star total.
func Summarize(outcomes []SessionOutcome, levelBaseCoins, priorTotalStars int, priorTitle string) Summary {
	correctCount := 0
	score := 0
	for _, o := range outcomes {
		if o.Correct {
			correctCount++
		}
		score += o.Points
	}

	accuracy := 0.0
	if len(outcomes) > 0 {
		accuracy = float64(correctCount) / float64(len(outcomes))
	}

	stars := StarsFor(accuracy)
	coins := int(float64(levelBaseCoins) * (0.5 + accuracy*0.5))

	totalStars := priorTotalStars + stars
	if priorTitle == "" {
		priorTitle = DefaultTitle
	}
	newTitle := TitleFor(totalStars)

	return Summary{
		Score:        score,
		CorrectCount: correctCount,
		TotalCount:   len(outcomes),
		Accuracy:     accuracy,
		StarsEarned:  stars,
		CoinsEarned:  coins,
		TotalStars:   totalStars,
		NewTitle:     newTitle,
		TitleChanged: newTitle != priorTitle,
	}
}
