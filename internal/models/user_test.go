package model

import (
	"encoding/json"
	"testing"
	"time"
)

// Le profil expose les mêmes clés snake_case que le reste de l'API
func TestUserStateJSONKeys(t *testing.T) {
	payload, err := json.Marshal(UserState{
		ID: "u1", Name: "u1", CreatedAt: time.Now(), LastActive: time.Now(),
		DailyStreak: 3, ProductivityScore: 120, SavingsGoal: 5000,
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var keys map[string]interface{}
	if err := json.Unmarshal(payload, &keys); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{
		"created_at", "last_active", "total_sessions", "productivity_score",
		"daily_streak", "savings_goal", "current_savings", "commands_executed",
		"easter_eggs_found", "pong_high_score", "achievements_unlocked",
	} {
		if _, ok := keys[key]; !ok {
			t.Fatalf("missing key %q in profile JSON: %s", key, payload)
		}
	}
	for _, stale := range []string{"createdAt", "dailyStreak", "productivityScore"} {
		if _, ok := keys[stale]; ok {
			t.Fatalf("camelCase key %q leaked into profile JSON", stale)
		}
	}
}
