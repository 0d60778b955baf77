package handler

import (
	"net/http"
	"time"

	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/database"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/logger"
	model "github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/models"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/progress"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/utils"
)

// buildSavingsOverview dérive la vue épargne depuis l'état utilisateur.
// Valeurs recalculées à chaque lecture, jamais persistées.
func buildSavingsOverview(user *model.UserState) model.SavingsOverview {
	bonus := progress.StreakBonus(user.DailyStreak)
	return model.SavingsOverview{
		CurrentAmount:      user.CurrentSavings,
		TargetAmount:       user.SavingsGoal,
		MonthlyTarget:      progress.MonthlyTarget(user.SavingsGoal),
		StreakBonus:        bonus,
		TotalWithBonus:     user.CurrentSavings + bonus,
		ProgressPercentage: progress.SavingsProgress(user.CurrentSavings, user.SavingsGoal, user.DailyStreak),
		MonthsToGoal:       progress.MonthsToGoal(user.CurrentSavings, user.SavingsGoal),
		DailyStreak:        user.DailyStreak,
		LastUpdated:        time.Now().Format(time.RFC3339),
	}
}

// GetSavings renvoie la progression de l'épargne, bonus de streak inclus
func GetSavings(w http.ResponseWriter, r *http.Request) {
	user := resolveUser(w, r)
	if user == nil {
		return
	}

	utils.Success(w, buildSavingsOverview(user))
}

// UpdateSavings fixe le montant épargné (+10 points) et évalue les
// paliers de 25% et 50% sur le ratio post-mise à jour
func UpdateSavings(w http.ResponseWriter, r *http.Request) {
	user := resolveUser(w, r)
	if user == nil {
		return
	}

	var req model.UpdateSavingsRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "JSON invalide", err)
		return
	}

	if req.Amount < 0 {
		utils.ErrorSimple(w, http.StatusBadRequest, "le montant ne peut pas être négatif")
		return
	}

	ctx := r.Context()

	_, err := database.DB.Exec(ctx,
		`UPDATE users SET current_savings=$1 WHERE id=$2`, req.Amount, user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de mettre à jour l'épargne", err)
		return
	}
	user.CurrentSavings = req.Amount

	if err := utils.AwardPoints(ctx, user.ID, progress.ActionSavingsUpdate,
		progress.PointsSavingsUpdate, map[string]interface{}{"amount": req.Amount}); err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de scorer la mise à jour", err)
		return
	}

	// Paliers évalués sur le ratio post-update, bonus de streak inclus
	unlocked := []string{}
	milestones := []struct {
		kind  string
		ratio float64
	}{
		{progress.AchSavingsMilestone25, 0.25},
		{progress.AchSavingsMilestone50, 0.50},
	}
	for _, m := range milestones {
		if !progress.SavingsMilestoneReached(user.CurrentSavings, user.SavingsGoal, user.DailyStreak, m.ratio) {
			continue
		}
		result, err := utils.TryUnlockAchievement(ctx, user.ID, m.kind)
		if err != nil {
			logger.Warning("savings milestone unlock failed: %v", err)
			continue
		}
		if result == utils.UnlockDone {
			unlocked = append(unlocked, m.kind)
		}
	}

	overview := buildSavingsOverview(user)
	utils.Success(w, map[string]interface{}{
		"message":               "Savings updated successfully",
		"savings":               overview,
		"points_awarded":        progress.PointsSavingsUpdate,
		"achievements_unlocked": unlocked,
	})
}
