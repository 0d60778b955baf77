package terminal

import (
	"strings"
	"testing"
	"time"

	model "github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/models"
)

func testUser() *model.UserState {
	return &model.UserState{
		ID:                "test_user",
		Name:              "test_user",
		CreatedAt:         time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		DailyStreak:       6,
		ProductivityScore: 120,
		SavingsGoal:       5000,
		CurrentSavings:    1000,
		PongHighScore:     42,
	}
}

func TestParseKnownCommands(t *testing.T) {
	tests := []struct {
		raw  string
		want Command
	}{
		{"help", CommandHelp},
		{"jobs", CommandJobs},
		{"savings", CommandSavings},
		{"tasks", CommandTasks},
		{"stats", CommandStats},
		{"profile", CommandProfile},
		{"pong", CommandPong},
		{"matrix", CommandMatrix},
		{"konami", CommandKonami},
		{"coffee", CommandCoffee},
		{"motivate", CommandMotivate},
		{"surprise", CommandSurprise},
		{"time", CommandTime},
		{"version", CommandVersion},
		{"whoami", CommandWhoami},
		{"clear", CommandClear},
	}

	for _, tt := range tests {
		if got := Parse(tt.raw); got != tt.want {
			t.Fatalf("Parse(%q)=%v, want %v", tt.raw, got, tt.want)
		}
		// Parse doit être insensible à la casse et aux espaces
		if got := Parse("  " + strings.ToUpper(tt.raw) + "  "); got != tt.want {
			t.Fatalf("Parse with noise around %q=%v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParseUnknownCommand(t *testing.T) {
	for _, raw := range []string{"", "ls", "sudo rm -rf /", "helpme", "kona mi"} {
		if got := Parse(raw); got != CommandUnknown {
			t.Fatalf("Parse(%q)=%v, want CommandUnknown", raw, got)
		}
	}
}

func TestEasterEggPoints(t *testing.T) {
	if got := CommandKonami.EasterEggPoints(); got != 50 {
		t.Fatalf("konami egg=%d, want 50", got)
	}
	if got := CommandMatrix.EasterEggPoints(); got != 10 {
		t.Fatalf("matrix egg=%d, want 10", got)
	}
	if got := CommandSurprise.EasterEggPoints(); got != 10 {
		t.Fatalf("surprise egg=%d, want 10", got)
	}
	for _, cmd := range []Command{CommandHelp, CommandJobs, CommandClear, CommandUnknown} {
		if cmd.IsEasterEgg() {
			t.Fatalf("%s should not be an easter egg", cmd.Name())
		}
	}
}

func TestRespondPersonalization(t *testing.T) {
	user := testUser()
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	lines := Respond(CommandSavings, user, now)
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "$1000.00") {
		t.Fatalf("savings output should show current amount, got:\n%s", joined)
	}
	if !strings.Contains(joined, "$150.00") {
		t.Fatalf("savings output should show streak bonus of 6*25, got:\n%s", joined)
	}
	if !strings.Contains(joined, "23.0%") {
		t.Fatalf("savings output should show 23%% progress, got:\n%s", joined)
	}

	lines = Respond(CommandWhoami, user, now)
	if len(lines) != 1 || lines[0] != "test_user" {
		t.Fatalf("whoami=%v, want the user id", lines)
	}

	lines = Respond(CommandPong, user, now)
	if !strings.Contains(strings.Join(lines, "\n"), "42") {
		t.Fatalf("pong output should show the high score, got %v", lines)
	}
}

func TestRespondDeterministic(t *testing.T) {
	user := testUser()
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	for _, cmd := range []Command{CommandHelp, CommandStats, CommandKonami, CommandUnknown} {
		first := Respond(cmd, user, now)
		second := Respond(cmd, user, now)
		if strings.Join(first, "\n") != strings.Join(second, "\n") {
			t.Fatalf("Respond(%s) not deterministic", cmd.Name())
		}
	}
}

func TestRespondClearAndUnknown(t *testing.T) {
	user := testUser()
	now := time.Now()

	if lines := Respond(CommandClear, user, now); len(lines) != 0 {
		t.Fatalf("clear should return no lines, got %v", lines)
	}

	lines := Respond(CommandUnknown, user, now)
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "not found") || !strings.Contains(joined, "help") {
		t.Fatalf("unknown command should hint at help, got:\n%s", joined)
	}
}
