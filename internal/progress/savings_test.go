package progress

import (
	"math"
	"testing"
)

func TestSavingsProgress(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		goal    float64
		streak  int
		want    float64
	}{
		{"empty savings no streak", 0, 5000, 0, 0},
		{"scenario from the dashboard", 1000, 5000, 6, 23},  // 1000 + 6*25 = 1150 → 23%
		{"halfway", 2500, 5000, 0, 50},
		{"bonus pushes past goal, clamped", 4950, 5000, 10, 100},
		{"way past goal, clamped", 99999, 5000, 0, 100},
		{"zero goal", 1000, 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SavingsProgress(tt.current, tt.goal, tt.streak)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("SavingsProgress(%v, %v, %d)=%v, want %v",
					tt.current, tt.goal, tt.streak, got, tt.want)
			}
		})
	}
}

func TestSavingsProgressClamped(t *testing.T) {
	for _, current := range []float64{0, 100, 2500, 5000, 50000} {
		for _, streak := range []int{0, 1, 7, 365} {
			got := SavingsProgress(current, 5000, streak)
			if got < 0 || got > 100 {
				t.Fatalf("SavingsProgress(%v, 5000, %d)=%v out of [0,100]", current, streak, got)
			}
		}
	}
}

func TestStreakBonus(t *testing.T) {
	if got := StreakBonus(6); got != 150 {
		t.Fatalf("StreakBonus(6)=%v, want 150", got)
	}
	if got := StreakBonus(0); got != 0 {
		t.Fatalf("StreakBonus(0)=%v, want 0", got)
	}
	if got := StreakBonus(-3); got != 0 {
		t.Fatalf("StreakBonus(-3)=%v, want 0", got)
	}
}

func TestMonthsToGoal(t *testing.T) {
	tests := []struct {
		current float64
		goal    float64
		want    int
	}{
		{0, 5000, 10},
		{2750, 5000, 4},  // 2250 / 500 = 4.5 → floor 4
		{4900, 5000, 1},  // jamais moins de 1
		{5000, 5000, 1},
		{6000, 5000, 1},
	}

	for _, tt := range tests {
		if got := MonthsToGoal(tt.current, tt.goal); got != tt.want {
			t.Fatalf("MonthsToGoal(%v, %v)=%d, want %d", tt.current, tt.goal, got, tt.want)
		}
	}
}
