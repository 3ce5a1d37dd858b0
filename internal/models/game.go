package models

// SessionStatus tracks the lifecycle of a game session
type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	SessionAbandoned SessionStatus = "abandoned"
)

// GameSession represents a single play-through of a level
type GameSession struct {
	ID          string
	UserID      string
	LevelID     string
	StartedAt   int64 // unix milliseconds
	EndedAt     *int64
	Status      SessionStatus
	Score       int
	CoinsEarned int
	Accuracy    float64
	StarsEarned int
}

// SessionAnswer is one recorded answer within a game session
type SessionAnswer struct {
	ID             string
	SessionID      string
	WordID         string
	QuestionType   string
	CorrectAnswer  string
	UserAnswer     string
	IsCorrect      bool
	ResponseTimeMs int
	PointsEarned   int
	AnsweredAt     int64 // unix milliseconds
}
