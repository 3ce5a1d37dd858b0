// Package quiz generates vocabulary quiz questions, validates submitted
// answers and computes point, star and coin rewards. It owns no storage
// and no transport: vocabulary and relationship records come in as
// read-only input, questions and scoring results go out as values.
package quiz

// QuestionType tags one of the eight supported question formats
type QuestionType string

const (
	TypeDefinition        QuestionType = "definition"
	TypeFillBlank         QuestionType = "fill_blank"
	TypeSynonym           QuestionType = "synonym"
	TypeReverseDefinition QuestionType = "reverse_definition"
	TypeTrueFalse         QuestionType = "true_false"
	TypeExampleSentence   QuestionType = "example_sentence"
	TypeAntonym           QuestionType = "antonym"
	TypeSpelling          QuestionType = "spelling"
)

// Question is a fully-formed quiz question. CorrectIndex is always a
// valid index into Options and Options[CorrectIndex] is the canonical
// correct value for the question type.
type Question struct {
	WordID       string
	Word         string
	Type         QuestionType
	Prompt       string
	Options      []string
	CorrectIndex int
}

// AnswerOutcome is the result of validating and scoring one submission
type AnswerOutcome struct {
	Correct       bool
	CorrectAnswer string
	PointsEarned  int
	StreakCount   int
}

// Summary aggregates a completed session
type Summary struct {
	Score        int
	CorrectCount int
	TotalCount   int
	Accuracy     float64
	StarsEarned  int
	CoinsEarned  int
	TotalStars   int
	NewTitle     string
	TitleChanged bool
}
