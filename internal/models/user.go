package model

import (
	"time"
)

// UserState regroupe le profil et l'état de progression d'un utilisateur.
// Créé paresseusement à la première référence à un identifiant inconnu.
type UserState struct {
	ID                   string                 `json:"id"`
	Name                 string                 `json:"name"`
	CreatedAt            time.Time              `json:"created_at"`
	LastActive           time.Time              `json:"last_active"`
	TotalSessions        int                    `json:"total_sessions"`
	ProductivityScore    int                    `json:"productivity_score"`
	DailyStreak          int                    `json:"daily_streak"`
	LastStreakDate       *time.Time             `json:"last_streak_date,omitempty"`
	SavingsGoal          float64                `json:"savings_goal"`
	CurrentSavings       float64                `json:"current_savings"`
	CommandsExecuted     int                    `json:"commands_executed"`
	EasterEggsFound      int                    `json:"easter_eggs_found"`
	PongHighScore        int                    `json:"pong_high_score"`
	AchievementsUnlocked int                    `json:"achievements_unlocked"`
	Settings             map[string]interface{} `json:"settings,omitempty"`
}

// DashboardStats agrège les valeurs dérivées affichées sur le dashboard
type DashboardStats struct {
	TotalApplications   int     `json:"total_applications"`
	InterviewsScheduled int     `json:"interviews_scheduled"`
	SavingsProgress     float64 `json:"savings_progress"`
	TasksCompleted      int     `json:"tasks_completed"`
	ActiveJobsWatching  int     `json:"active_jobs_watching"`
	ProductivityScore   int     `json:"productivity_score"`
	DailyStreak         int     `json:"daily_streak"`
	TotalSessions       int     `json:"total_sessions"`
	AchievementsEarned  int     `json:"achievements_earned"`
}
