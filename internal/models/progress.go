package models

// MasteryLevel describes how well a player knows a word
type MasteryLevel string

const (
	MasteryNew        MasteryLevel = "new"
	MasteryLearning   MasteryLevel = "learning"
	MasteryProficient MasteryLevel = "proficient"
	MasteryMastered   MasteryLevel = "mastered"
)

// PlayerProgress is the per-user running total of coins, stars and title
type PlayerProgress struct {
	UserID        string
	TotalCoins    int
	TotalStars    int
	CurrentTitle  string
	WordsMastered int
}

// LevelCompletion records a player's best results on a level
type LevelCompletion struct {
	ID          string
	UserID      string
	LevelID     string
	BestStars   int
	BestScore   int
	TimesPlayed int
}

// WordMastery tracks per-word answer history for a player
type WordMastery struct {
	ID             string
	UserID         string
	WordID         string
	TimesCorrect   int
	TimesAttempted int
	MasteryLevel   MasteryLevel
}
