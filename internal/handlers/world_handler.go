package handlers

import (
	"errors"
	"net/http"

	"wordquest/internal/service"
)

// WorldHandler handles world and level listings
type WorldHandler struct {
	worlds *service.WorldService
}

// NewWorldHandler creates a new world handler
func NewWorldHandler(worlds *service.WorldService) *WorldHandler {
	return &WorldHandler{worlds: worlds}
}

// List handles GET /api/worlds
func (h *WorldHandler) List(w http.ResponseWriter, r *http.Request) {
	worlds, err := h.worlds.ListWorlds(UserID(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list worlds", err)
		return
	}

	out := make([]map[string]interface{}, len(worlds))
	for i, world := range worlds {
		out[i] = map[string]interface{}{
			"id":                  world.ID,
			"name":                world.Name,
			"description":         world.Description,
			"theme":               world.Theme,
			"displayOrder":        world.DisplayOrder,
			"iconEmoji":           world.IconEmoji,
			"colorPrimary":        world.ColorPrimary,
			"colorSecondary":      world.ColorSecondary,
			"unlockStarsRequired": world.UnlockStarsRequired,
			"starsEarned":         world.StarsEarned,
			"unlocked":            world.Unlocked,
		}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"worlds": out})
}

// Levels handles GET /api/worlds/{id}/levels
func (h *WorldHandler) Levels(w http.ResponseWriter, r *http.Request) {
	levels, err := h.worlds.ListLevels(UserID(r), r.PathValue("id"))
	if errors.Is(err, service.ErrWorldNotFound) {
		respondError(w, http.StatusNotFound, "World not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list levels", err)
		return
	}

	out := make([]map[string]interface{}, len(levels))
	for i, level := range levels {
		out[i] = map[string]interface{}{
			"id":               level.ID,
			"levelNumber":      level.LevelNumber,
			"name":             level.Name,
			"difficultyTier":   level.DifficultyTier,
			"targetWordCount":  level.TargetWordCount,
			"timeLimitSeconds": level.TimeLimitSeconds,
			"baseCoins":        level.BaseCoins,
			"bestStars":        level.BestStars,
			"bestScore":        level.BestScore,
			"timesPlayed":      level.TimesPlayed,
		}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"levels": out})
}
