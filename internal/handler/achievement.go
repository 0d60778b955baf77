package handler

import (
	"fmt"
	"net/http"

	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/database"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/logger"
	model "github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/models"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/progress"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/scanner"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/utils"
	"github.com/gorilla/mux"
)

// GetAchievements récupère les achievements et leur statut de déblocage
func GetAchievements(w http.ResponseWriter, r *http.Request) {
	user := resolveUser(w, r)
	if user == nil {
		return
	}

	achievements, err := loadUserAchievements(r, user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de charger les achievements", err)
		return
	}

	unlocked := 0
	for _, a := range achievements {
		if a.Unlocked {
			unlocked++
		}
	}

	utils.Success(w, map[string]interface{}{
		"achievements": achievements,
		"total":        len(achievements),
		"unlocked":     unlocked,
	})
}

// UnlockAchievement force le déblocage d'un achievement par kind.
// Déjà débloqué → 409, kind inconnu → 404 : deux échecs distincts.
func UnlockAchievement(w http.ResponseWriter, r *http.Request) {
	user := resolveUser(w, r)
	if user == nil {
		return
	}

	kind := mux.Vars(r)["kind"]

	result, err := utils.TryUnlockAchievement(r.Context(), user.ID, kind)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de débloquer l'achievement", err)
		return
	}

	switch result {
	case utils.UnlockAlready:
		utils.ErrorSimple(w, http.StatusConflict, "achievement déjà débloqué")
	case utils.UnlockNotFound:
		utils.ErrorSimple(w, http.StatusNotFound, "achievement introuvable")
	default:
		utils.Success(w, map[string]interface{}{
			"message":        "Achievement unlocked",
			"kind":           kind,
			"points_awarded": progress.PointsAchievementUnlock,
		})
	}
}

// GetNotifications construit les notifications de l'utilisateur. Le
// prédicat streak_week est réévalué à chaque appel : le déblocage
// lui-même reste idempotent.
func GetNotifications(w http.ResponseWriter, r *http.Request) {
	user := resolveUser(w, r)
	if user == nil {
		return
	}

	ctx := r.Context()

	if progress.StreakWeekReached(user.DailyStreak) {
		result, err := utils.TryUnlockAchievement(ctx, user.ID, progress.AchStreakWeek)
		if err != nil {
			logger.Warning("streak_week unlock failed: %v", err)
		} else if result == utils.UnlockDone {
			// Le score vient de bouger, relire l'état
			if fresh, err := utils.FindUserByID(ctx, user.ID); err == nil {
				user = fresh
			}
		}
	}

	notifications := []map[string]interface{}{}

	rows, err := database.DB.Query(ctx,
		`SELECT id, user_id, kind, title, description, icon, unlocked, unlocked_at
		 FROM achievements
		 WHERE user_id=$1 AND unlocked=TRUE
		 ORDER BY unlocked_at DESC LIMIT 5`,
		user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de charger les notifications", err)
		return
	}
	defer rows.Close()

	for rows.Next() {
		achievement, err := scanner.ScanAchievement(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "impossible de lire un achievement", err)
			return
		}
		notifications = append(notifications, map[string]interface{}{
			"type":    "achievement",
			"title":   fmt.Sprintf("%s %s", achievement.Icon, achievement.Title),
			"message": achievement.Description,
		})
	}

	if user.DailyStreak > 1 {
		notifications = append(notifications, map[string]interface{}{
			"type":    "streak",
			"title":   "🔥 Streak active",
			"message": fmt.Sprintf("You are on a %d day streak, keep it up!", user.DailyStreak),
		})
	}

	utils.Success(w, map[string]interface{}{
		"notifications": notifications,
		"total":         len(notifications),
	})
}

func loadUserAchievements(r *http.Request, userID string) ([]model.Achievement, error) {
	rows, err := database.DB.Query(r.Context(),
		`SELECT id, user_id, kind, title, description, icon, unlocked, unlocked_at
		 FROM achievements WHERE user_id=$1 ORDER BY kind`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	achievements := []model.Achievement{}
	for rows.Next() {
		achievement, err := scanner.ScanAchievement(rows)
		if err != nil {
			return nil, err
		}
		achievements = append(achievements, *achievement)
	}

	return achievements, rows.Err()
}
