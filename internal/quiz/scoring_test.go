package quiz

import "testing"

func TestPointsFor(t *testing.T) {
	tests := []struct {
		name           string
		isCorrect      bool
		responseTimeMs int
		tier           int
		streak         int
		want           int
	}{
		{
			name:      "incorrect earns nothing",
			isCorrect: false, responseTimeMs: 1000, tier: 5, streak: 10,
			want: 0,
		},
		{
			name:      "fast answer tier 1",
			isCorrect: true, responseTimeMs: 2000, tier: 1, streak: 1,
			want: 30, // 10 base + 20 speed
		},
		{
			name:      "streak of three adds bonus",
			isCorrect: true, responseTimeMs: 2000, tier: 1, streak: 3,
			want: 35, // 10 + 20 + 5
		},
		{
			name:      "streak of two adds nothing",
			isCorrect: true, responseTimeMs: 2000, tier: 1, streak: 2,
			want: 30,
		},
		{
			name:      "streak of six doubles streak bonus",
			isCorrect: true, responseTimeMs: 2000, tier: 1, streak: 6,
			want: 40, // 10 + 20 + 10
		},
		{
			name:      "medium speed bonus",
			isCorrect: true, responseTimeMs: 7999, tier: 2, streak: 0,
			want: 30, // 20 + 10
		},
		{
			name:      "slow speed bonus",
			isCorrect: true, responseTimeMs: 14999, tier: 2, streak: 0,
			want: 25, // 20 + 5
		},
		{
			name:      "no speed bonus at 15s",
			isCorrect: true, responseTimeMs: 15000, tier: 3, streak: 0,
			want: 30,
		},
		{
			name:      "speed boundary at 3000 is not fast",
			isCorrect: true, responseTimeMs: 3000, tier: 1, streak: 0,
			want: 20, // 10 + 10
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointsFor(tt.isCorrect, tt.responseTimeMs, tt.tier, tt.streak)
			if got != tt.want {
				t.Errorf("PointsFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStreakAfter(t *testing.T) {
	tests := []struct {
		name      string
		prior     []bool
		isCorrect bool
		want      int
	}{
		{"incorrect resets", []bool{true, true, true}, false, 0},
		{"first correct answer", nil, true, 1},
		{"continues run", []bool{true, true}, true, 3},
		{"run broken by earlier wrong", []bool{true, false, true, true}, true, 3},
		{"all prior wrong", []bool{false, false}, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StreakAfter(tt.prior, tt.isCorrect)
			if got != tt.want {
				t.Errorf("StreakAfter() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStarsFor(t *testing.T) {
	tests := []struct {
		accuracy float64
		want     int
	}{
		{1.0, 3},
		{0.95, 3},
		{0.94999, 2},
		{0.8, 2},
		{0.79, 1},
		{0.6, 1},
		{0.59, 0},
		{0.0, 0},
	}

	for _, tt := range tests {
		got := StarsFor(tt.accuracy)
		if got != tt.want {
			t.Errorf("StarsFor(%v) = %d, want %d", tt.accuracy, got, tt.want)
		}
	}
}

func TestTitleFor(t *testing.T) {
	tests := []struct {
		stars int
		want  string
	}{
		{0, "Word Apprentice"},
		{10, "Word Apprentice"},
		{11, "Word Scholar"},
		{51, "Vocabulary Champion"},
		{101, "Language Master"},
		{201, "Word Wizard"},
		{301, "Vocabulary Genius"},
		{999, "Vocabulary Genius"},
	}

	for _, tt := range tests {
		got := TitleFor(tt.stars)
		if got != tt.want {
			t.Errorf("TitleFor(%d) = %q, want %q", tt.stars, got, tt.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	// Eight correct answers at tier 1, all under 3s. Streak bonus kicks
	// in from the third answer: streaks 3-5 add 5 each, 6-8 add 10 each.
	outcomes := make([]SessionOutcome, 8)
	for i := range outcomes {
		outcomes[i] = SessionOutcome{
			Correct: true,
			Points:  PointsFor(true, 2000, 1, i+1),
		}
	}

	summary := Summarize(outcomes, 100, 0, "Word Apprentice")

	wantScore := 8*30 + 3*5 + 3*10 // 285
	if summary.Score != wantScore {
		t.Errorf("Score = %d, want %d", summary.Score, wantScore)
	}
	if summary.Accuracy != 1.0 {
		t.Errorf("Accuracy = %v, want 1.0", summary.Accuracy)
	}
	if summary.StarsEarned != 3 {
		t.Errorf("StarsEarned = %d, want 3", summary.StarsEarned)
	}
	if summary.CoinsEarned != 100 {
		t.Errorf("CoinsEarned = %d, want 100", summary.CoinsEarned)
	}
	if summary.TitleChanged {
		t.Error("TitleChanged = true for 3 total stars, want false")
	}
}

func TestSummarizePartial(t *testing.T) {
	outcomes := []SessionOutcome{
		{Correct: true, Points: 30},
		{Correct: false, Points: 0},
		{Correct: true, Points: 30},
		{Correct: true, Points: 30},
	}

	summary := Summarize(outcomes, 100, 48, "Word Scholar")

	if summary.CorrectCount != 3 || summary.TotalCount != 4 {
		t.Errorf("counts = %d/%d, want 3/4", summary.CorrectCount, summary.TotalCount)
	}
	if summary.Accuracy != 0.75 {
		t.Errorf("Accuracy = %v, want 0.75", summary.Accuracy)
	}
	if summary.StarsEarned != 1 {
		t.Errorf("StarsEarned = %d, want 1", summary.StarsEarned)
	}
	// floor(100 * (0.5 + 0.75*0.5)) = floor(87.5)
	if summary.CoinsEarned != 87 {
		t.Errorf("CoinsEarned = %d, want 87", summary.CoinsEarned)
	}
	// 48 + 1 = 49 stars keeps Word Scholar
	if summary.TitleChanged {
		t.Error("TitleChanged = true, want false")
	}

	// Two more stars would cross the Vocabulary Champion threshold
	summary = Summarize(outcomes, 100, 50, "Word Scholar")
	if !summary.TitleChanged || summary.NewTitle != "Vocabulary Champion" {
		t.Errorf("title = %q changed=%v, want Vocabulary Champion changed=true",
			summary.NewTitle, summary.TitleChanged)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil, 100, 0, "")
	if summary.Accuracy != 0 {
		t.Errorf("Accuracy = %v, want 0", summary.Accuracy)
	}
	if summary.StarsEarned != 0 {
		t.Errorf("StarsEarned = %d, want 0", summary.StarsEarned)
	}
	if summary.CoinsEarned != 50 {
		t.Errorf("CoinsEarned = %d, want 50", summary.CoinsEarned)
	}
	if summary.NewTitle != "Word Apprentice" {
		t.Errorf("NewTitle = %q, want Word Apprentice", summary.NewTitle)
	}
}
