package service

import (
	"context"
	"testing"
)

func TestListWorldsUnlockState(t *testing.T) {
	env := newTestEnv(t, 40)
	userID := env.registerPlayer(t, "rosa")

	worlds, err := env.worldSvc.ListWorlds(userID)
	if err != nil {
		t.Fatalf("ListWorlds: %v", err)
	}
	if len(worlds) != 2 {
		t.Fatalf("got %d worlds, want 2", len(worlds))
	}

	// Meadow is open from the start, the caverns need stars
	if !worlds[0].Unlocked {
		t.Errorf("%s locked for a new player", worlds[0].Name)
	}
	if worlds[1].Unlocked {
		t.Errorf("%s unlocked for a new player", worlds[1].Name)
	}
}

func TestListLevelsCarriesBests(t *testing.T) {
	env := newTestEnv(t, 41)
	userID := env.registerPlayer(t, "rosa")

	session, questions, err := env.game.StartSession(userID, meadowFirstLevel)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	for _, q := range questions {
		if _, err := env.game.SubmitAnswer(userID, session.ID, q.WordID, q.Type, q.Options[q.CorrectIndex]); err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
	}
	if _, _, err := env.game.CompleteSession(context.Background(), userID, session.ID); err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}

	levels, err := env.worldSvc.ListLevels(userID, "world-meadow")
	if err != nil {
		t.Fatalf("ListLevels: %v", err)
	}
	if len(levels) != 3 {
		t.Fatalf("got %d levels, want 3", len(levels))
	}
	for _, level := range levels {
		if level.ID == meadowFirstLevel {
			if level.BestStars != 3 || level.TimesPlayed != 1 {
				t.Errorf("level bests = %+v", level)
			}
		} else if level.TimesPlayed != 0 {
			t.Errorf("unplayed level %s has timesPlayed %d", level.ID, level.TimesPlayed)
		}
	}
}

func TestListLevelsUnknownWorld(t *testing.T) {
	env := newTestEnv(t, 42)
	userID := env.registerPlayer(t, "rosa")

	if _, err := env.worldSvc.ListLevels(userID, "no-such-world"); err != ErrWorldNotFound {
		t.Errorf("err = %v, want ErrWorldNotFound", err)
	}
}

func TestStatsOverview(t *testing.T) {
	env := newTestEnv(t, 43)
	userID := env.registerPlayer(t, "rosa")

	overview, err := env.statsSvc.Overview(userID)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if overview.TotalLevels != 6 {
		t.Errorf("totalLevels = %d, want 6", overview.TotalLevels)
	}
	if overview.LevelsCompleted != 0 || overview.TotalCoins != 0 {
		t.Errorf("fresh overview = %+v", overview)
	}

	session, questions, err := env.game.StartSession(userID, meadowFirstLevel)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	for _, q := range questions {
		if _, err := env.game.SubmitAnswer(userID, session.ID, q.WordID, q.Type, q.Options[q.CorrectIndex]); err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
	}
	if _, _, err := env.game.CompleteSession(context.Background(), userID, session.ID); err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}

	overview, err = env.statsSvc.Overview(userID)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if overview.LevelsCompleted != 1 {
		t.Errorf("levelsCompleted = %d, want 1", overview.LevelsCompleted)
	}
	if overview.WordsLearning == 0 {
		t.Error("no words counted as learning after a perfect run")
	}
	if overview.AverageAccuracy != 1.0 {
		t.Errorf("averageAccuracy = %v, want 1.0 after a perfect run", overview.AverageAccuracy)
	}
	if overview.StarsByWorld["world-meadow"] != 3 {
		t.Errorf("meadow stars = %d, want 3", overview.StarsByWorld["world-meadow"])
	}

	mastery, err := env.statsSvc.Mastery(userID)
	if err != nil {
		t.Fatalf("Mastery: %v", err)
	}
	if len(mastery) == 0 {
		t.Error("empty mastery breakdown after a completed session")
	}
}
