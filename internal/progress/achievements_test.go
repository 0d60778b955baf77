package progress

import (
	"testing"
)

func TestAchievementCatalogComplete(t *testing.T) {
	if len(AchievementCatalog) != 8 {
		t.Fatalf("catalog has %d achievements, want 8", len(AchievementCatalog))
	}

	seen := map[string]bool{}
	for _, def := range AchievementCatalog {
		if def.Kind == "" || def.Title == "" || def.Description == "" || def.Icon == "" {
			t.Fatalf("incomplete achievement definition: %+v", def)
		}
		if seen[def.Kind] {
			t.Fatalf("duplicate achievement kind %q", def.Kind)
		}
		seen[def.Kind] = true
	}
}

func TestKnownAchievementKind(t *testing.T) {
	for _, def := range AchievementCatalog {
		if !KnownAchievementKind(def.Kind) {
			t.Fatalf("catalog kind %q not recognized", def.Kind)
		}
	}
	if KnownAchievementKind("grand_master") {
		t.Fatal("unknown kind should not be recognized")
	}
	if KnownAchievementKind("") {
		t.Fatal("empty kind should not be recognized")
	}
}

func TestSavingsMilestoneReached(t *testing.T) {
	tests := []struct {
		name      string
		current   float64
		streak    int
		milestone float64
		want      bool
	}{
		// 1000 + 6*25 = 1150 → 23% : pas encore le palier de 25%
		{"streak 6 just under quarter", 1000, 6, 0.25, false},
		// 1100 + 6*25 = 1250 → exactement 25%
		{"exactly on the quarter", 1100, 6, 0.25, true},
		{"half reached", 2500, 0, 0.50, true},
		{"half not reached", 2400, 0, 0.50, false},
		// Le bonus seul peut franchir le palier
		{"bonus crosses the line", 1200, 2, 0.25, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SavingsMilestoneReached(tt.current, 5000, tt.streak, tt.milestone)
			if got != tt.want {
				t.Fatalf("SavingsMilestoneReached(%v, 5000, %d, %v)=%v, want %v",
					tt.current, tt.streak, tt.milestone, got, tt.want)
			}
		})
	}

	if SavingsMilestoneReached(1000, 0, 5, 0.25) {
		t.Fatal("zero goal should never reach a milestone")
	}
}

func TestThresholdPredicates(t *testing.T) {
	if TaskMasterReached(9) || !TaskMasterReached(10) {
		t.Fatal("task_master should unlock at exactly 10 completed tasks")
	}
	if TerminalNinjaReached(49) || !TerminalNinjaReached(50) {
		t.Fatal("terminal_ninja should unlock at exactly 50 commands")
	}
	if PongChampionReached(199) || !PongChampionReached(200) {
		t.Fatal("pong_champion should unlock at exactly 200 points")
	}
	if EasterHunterReached(4) || !EasterHunterReached(5) {
		t.Fatal("easter_hunter should unlock at exactly 5 eggs")
	}
	if StreakWeekReached(6) || !StreakWeekReached(7) {
		t.Fatal("streak_week should unlock at exactly 7 days")
	}
}
