package model

// SavingsOverview est la vue dérivée de l'épargne, recalculée à chaque lecture
type SavingsOverview struct {
	CurrentAmount      float64 `json:"current_amount"`
	TargetAmount       float64 `json:"target_amount"`
	MonthlyTarget      float64 `json:"monthly_target"`
	StreakBonus        float64 `json:"streak_bonus"`
	TotalWithBonus     float64 `json:"total_with_bonus"`
	ProgressPercentage float64 `json:"progress_percentage"`
	MonthsToGoal       int     `json:"months_to_goal"`
	DailyStreak        int     `json:"daily_streak"`
	LastUpdated        string  `json:"last_updated"`
}

// UpdateSavingsRequest est le payload de mise à jour de l'épargne
type UpdateSavingsRequest struct {
	Amount float64 `json:"amount"`
}
