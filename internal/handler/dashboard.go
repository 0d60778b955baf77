package handler

import (
	"net/http"

	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/database"
	model "github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/models"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/progress"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/utils"
)

// GetDashboardStats agrège les compteurs affichés sur le dashboard
func GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	user := resolveUser(w, r)
	if user == nil {
		return
	}

	ctx := r.Context()

	totalApplications, err := utils.CountUserApplications(ctx, user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de compter les candidatures", err)
		return
	}

	var interviews int
	err = database.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM applications WHERE user_id=$1 AND status='interviewing'`,
		user.ID).Scan(&interviews)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de compter les entretiens", err)
		return
	}

	tasksCompleted, err := utils.CountCompletedTasks(ctx, user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de compter les tasks", err)
		return
	}

	var jobsWatching int
	if err := database.DB.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&jobsWatching); err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de compter les offres", err)
		return
	}

	utils.Success(w, model.DashboardStats{
		TotalApplications:   totalApplications,
		InterviewsScheduled: interviews,
		SavingsProgress:     progress.SavingsProgress(user.CurrentSavings, user.SavingsGoal, user.DailyStreak),
		TasksCompleted:      tasksCompleted,
		ActiveJobsWatching:  jobsWatching,
		ProductivityScore:   user.ProductivityScore,
		DailyStreak:         user.DailyStreak,
		TotalSessions:       user.TotalSessions,
		AchievementsEarned:  user.AchievementsUnlocked,
	})
}

// GetUserProfile renvoie le profil et l'état de progression
func GetUserProfile(w http.ResponseWriter, r *http.Request) {
	user := resolveUser(w, r)
	if user == nil {
		return
	}

	utils.Success(w, user)
}
