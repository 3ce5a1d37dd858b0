package handlers

import (
	"errors"
	"net/http"

	"wordquest/internal/models"
	"wordquest/internal/quiz"
	"wordquest/internal/service"
)

// GameHandler handles the play-session endpoints
type GameHandler struct {
	games *service.GameService
}

// NewGameHandler creates a new game handler
func NewGameHandler(games *service.GameService) *GameHandler {
	return &GameHandler{games: games}
}

// questionResponse is a question as sent to the player. The correct
// index never leaves the server.
type questionResponse struct {
	WordID  string   `json:"wordId"`
	Word    string   `json:"word"`
	Type    string   `json:"type"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

func toQuestionResponses(questions []quiz.Question) []questionResponse {
	out := make([]questionResponse, len(questions))
	for i, q := range questions {
		out[i] = questionResponse{
			WordID:  q.WordID,
			Word:    q.Word,
			Type:    string(q.Type),
			Prompt:  q.Prompt,
			Options: q.Options,
		}
	}
	return out
}

// Start handles POST /api/game/start
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req struct {
		LevelID string `json:"levelId"`
	}
	if err := decodeJSON(r, &req); err != nil || req.LevelID == "" {
		respondError(w, http.StatusBadRequest, "levelId is required", nil)
		return
	}

	session, questions, err := h.games.StartSession(UserID(r), req.LevelID)
	switch {
	case errors.Is(err, service.ErrLevelNotFound):
		respondError(w, http.StatusNotFound, "Level not found", nil)
		return
	case errors.Is(err, service.ErrNoVocabulary):
		respondError(w, http.StatusConflict, "Level has no vocabulary to quiz", nil)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "Failed to start game", err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"sessionId": session.ID,
		"levelId":   session.LevelID,
		"startedAt": session.StartedAt,
		"questions": toQuestionResponses(questions),
	})
}

// Answer handles POST /api/game/answer
func (h *GameHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID    string `json:"sessionId"`
		WordID       string `json:"wordId"`
		QuestionType string `json:"questionType"`
		Answer       string `json:"answer"`
	}
	if err := decodeJSON(r, &req); err != nil ||
		req.SessionID == "" || req.WordID == "" || req.QuestionType == "" {
		respondError(w, http.StatusBadRequest, "sessionId, wordId, questionType and answer are required", nil)
		return
	}

	outcome, err := h.games.SubmitAnswer(UserID(r), req.SessionID, req.WordID,
		quiz.QuestionType(req.QuestionType), req.Answer)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, "Session not found", nil)
		return
	case errors.Is(err, service.ErrSessionNotActive):
		respondError(w, http.StatusBadRequest, "Session is not active", nil)
		return
	case errors.Is(err, service.ErrWordNotFound):
		respondError(w, http.StatusNotFound, "Word not found", nil)
		return
	case errors.Is(err, service.ErrAlreadyAnswered):
		respondError(w, http.StatusConflict, "Word already answered in this session", nil)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "Failed to process answer", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"correct":       outcome.Correct,
		"correctAnswer": outcome.CorrectAnswer,
		"pointsEarned":  outcome.PointsEarned,
		"streakCount":   outcome.StreakCount,
	})
}

// Complete handles POST /api/game/complete
func (h *GameHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"sessionId"`
	}
	if err := decodeJSON(r, &req); err != nil || req.SessionID == "" {
		respondError(w, http.StatusBadRequest, "sessionId is required", nil)
		return
	}

	summary, progress, err := h.games.CompleteSession(r.Context(), UserID(r), req.SessionID)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, "Session not found", nil)
		return
	case errors.Is(err, service.ErrSessionNotActive):
		respondError(w, http.StatusBadRequest, "Session is not active", nil)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "Failed to complete game", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"summary": map[string]interface{}{
			"score":            summary.Score,
			"questionsCorrect": summary.CorrectCount,
			"totalQuestions":   summary.TotalCount,
			"accuracy":         summary.Accuracy,
			"starsEarned":      summary.StarsEarned,
			"coinsEarned":      summary.CoinsEarned,
			"totalCoins":       progress.TotalCoins,
			"totalStars":       progress.TotalStars,
			"newTitle":         summary.NewTitle,
			"titleChanged":     summary.TitleChanged,
		},
	})
}

// Session handles GET /api/game/session/{id}
func (h *GameHandler) Session(w http.ResponseWriter, r *http.Request) {
	session, answers, err := h.games.GetSession(UserID(r), r.PathValue("id"))
	if errors.Is(err, service.ErrSessionNotFound) {
		respondError(w, http.StatusNotFound, "Session not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load session", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"session": toSessionResponse(session),
		"answers": toAnswerResponses(answers),
	})
}

func toSessionResponse(s *models.GameSession) map[string]interface{} {
	return map[string]interface{}{
		"id":          s.ID,
		"levelId":     s.LevelID,
		"startedAt":   s.StartedAt,
		"endedAt":     s.EndedAt,
		"status":      string(s.Status),
		"score":       s.Score,
		"coinsEarned": s.CoinsEarned,
		"accuracy":    s.Accuracy,
		"starsEarned": s.StarsEarned,
	}
}

func toAnswerResponses(answers []models.SessionAnswer) []map[string]interface{} {
	out := make([]map[string]interface{}, len(answers))
	for i, a := range answers {
		out[i] = map[string]interface{}{
			"wordId":        a.WordID,
			"questionType":  a.QuestionType,
			"correctAnswer": a.CorrectAnswer,
			"userAnswer":    a.UserAnswer,
			"isCorrect":     a.IsCorrect,
			"pointsEarned":  a.PointsEarned,
		}
	}
	return out
}
