package handlers

import (
	"net/http"

	"wordquest/internal/service"
)

// StatsHandler handles player statistics endpoints
type StatsHandler struct {
	stats *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Overview handles GET /api/stats/overview
func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.stats.Overview(UserID(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load stats", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"overview": map[string]interface{}{
			"totalCoins":      overview.TotalCoins,
			"totalStars":      overview.TotalStars,
			"currentTitle":    overview.CurrentTitle,
			"wordsMastered":   overview.WordsMastered,
			"wordsLearning":   overview.WordsLearning,
			"levelsCompleted": overview.LevelsCompleted,
			"totalLevels":     overview.TotalLevels,
			"averageAccuracy": overview.AverageAccuracy,
			"starsByWorld":    overview.StarsByWorld,
		},
	})
}

// Mastery handles GET /api/stats/mastery
func (h *StatsHandler) Mastery(w http.ResponseWriter, r *http.Request) {
	byCategory, err := h.stats.Mastery(UserID(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load mastery", err)
		return
	}

	out := make(map[string]interface{}, len(byCategory))
	for category, stats := range byCategory {
		words := make([]map[string]interface{}, len(stats.Words))
		for i, word := range stats.Words {
			words[i] = map[string]interface{}{
				"wordId":         word.WordID,
				"word":           word.Word,
				"definition":     word.Definition,
				"timesCorrect":   word.TimesCorrect,
				"timesAttempted": word.TimesAttempted,
				"masteryLevel":   string(word.MasteryLevel),
			}
		}
		out[category] = map[string]interface{}{
			"total":      stats.Total,
			"mastered":   stats.Mastered,
			"proficient": stats.Proficient,
			"learning":   stats.Learning,
			"new":        stats.New,
			"words":      words,
		}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"mastery": out})
}
