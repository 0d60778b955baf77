package progress

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveStreak(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)

	yesterday := date(2025, time.March, 14)
	today := date(2025, time.March, 15)
	lastWeek := date(2025, time.March, 8)
	tomorrow := date(2025, time.March, 16)

	tests := []struct {
		name string
		last *time.Time
		want StreakOutcome
	}{
		{"no previous date", nil, StreakReset},
		{"same day", &today, StreakHold},
		{"exactly one day ago", &yesterday, StreakAdvance},
		{"gap of a week", &lastWeek, StreakReset},
		{"date in the future", &tomorrow, StreakReset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveStreak(tt.last, now); got != tt.want {
				t.Fatalf("ResolveStreak(%v)=%s, want %s", tt.last, got, tt.want)
			}
		})
	}
}

func TestResolveStreakIgnoresTimeOfDay(t *testing.T) {
	// La règle est calendaire : hier 23h59 suivi d'aujourd'hui 00h01
	// doit compter comme un écart d'exactement un jour
	last := time.Date(2025, time.March, 14, 23, 59, 0, 0, time.UTC)
	now := time.Date(2025, time.March, 15, 0, 1, 0, 0, time.UTC)

	if got := ResolveStreak(&last, now); got != StreakAdvance {
		t.Fatalf("ResolveStreak across midnight=%s, want advance", got)
	}
}

func TestResolveStreakIdempotentWithinDay(t *testing.T) {
	// N résolutions le même jour donnent toujours hold après la première
	now := time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC)
	today := DateOnly(now)

	for i := 0; i < 5; i++ {
		if got := ResolveStreak(&today, now.Add(time.Duration(i)*time.Hour)); got != StreakHold {
			t.Fatalf("resolution %d gave %s, want hold", i, got)
		}
	}
}
