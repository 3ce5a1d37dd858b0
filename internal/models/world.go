package models

// World is a themed grouping of vocabulary and levels
type World struct {
	ID                  string
	Name                string
	Description         string
	Theme               string
	DisplayOrder        int
	IconEmoji           string
	ColorPrimary        string
	ColorSecondary      string
	UnlockStarsRequired int
}

// Level is a playable stage within a world
type Level struct {
	ID               string
	WorldID          string
	LevelNumber      int
	Name             string
	DifficultyTier   int // 1-5 scale
	TargetWordCount  int
	TimeLimitSeconds int
	BaseCoins        int
}
