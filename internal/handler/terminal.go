package handler

import (
	"net/http"
	"time"

	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/database"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/logger"
	model "github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/models"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/progress"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/terminal"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/utils"
)

// ExecuteTerminalCommand exécute une commande du terminal : +2 points,
// compteur incrémenté, et bonus d'easter egg pour konami/matrix/surprise
func ExecuteTerminalCommand(w http.ResponseWriter, r *http.Request) {
	user := resolveUser(w, r)
	if user == nil {
		return
	}

	var req model.TerminalCommandRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "JSON invalide", err)
		return
	}

	ctx := r.Context()
	cmd := terminal.Parse(req.Command)

	// Compteur incrémenté en une seule opération, valeur fraîche relue
	var commandsExecuted int
	err := database.DB.QueryRow(ctx,
		`UPDATE users SET commands_executed = commands_executed + 1
		 WHERE id=$1 RETURNING commands_executed`,
		user.ID).Scan(&commandsExecuted)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible d'incrémenter le compteur", err)
		return
	}
	user.CommandsExecuted = commandsExecuted

	if err := utils.AwardPoints(ctx, user.ID, progress.ActionTerminalCommand,
		progress.PointsTerminalCommand, map[string]interface{}{"command": cmd.Name()}); err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de scorer la commande", err)
		return
	}
	pointsAwarded := progress.PointsTerminalCommand

	if cmd.IsEasterEgg() {
		var easterEggs int
		err := database.DB.QueryRow(ctx,
			`UPDATE users SET easter_eggs_found = easter_eggs_found + 1
			 WHERE id=$1 RETURNING easter_eggs_found`,
			user.ID).Scan(&easterEggs)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "impossible de compter l'easter egg", err)
			return
		}
		user.EasterEggsFound = easterEggs

		if err := utils.AwardPoints(ctx, user.ID, progress.ActionEasterEgg,
			cmd.EasterEggPoints(), map[string]interface{}{"command": cmd.Name()}); err != nil {
			utils.Error(w, http.StatusInternalServerError, "impossible de scorer l'easter egg", err)
			return
		}
		pointsAwarded += cmd.EasterEggPoints()

		if progress.EasterHunterReached(easterEggs) {
			if _, err := utils.TryUnlockAchievement(ctx, user.ID, progress.AchEasterHunter); err != nil {
				logger.Warning("easter_hunter unlock failed: %v", err)
			}
		}
	}

	// 50 commandes → terminal_ninja
	if progress.TerminalNinjaReached(commandsExecuted) {
		if _, err := utils.TryUnlockAchievement(ctx, user.ID, progress.AchTerminalNinja); err != nil {
			logger.Warning("terminal_ninja unlock failed: %v", err)
		}
	}

	utils.Success(w, model.TerminalCommandResponse{
		Command:          cmd.Name(),
		Lines:            terminal.Respond(cmd, user, time.Now()),
		PointsAwarded:    pointsAwarded,
		EasterEggFound:   cmd.IsEasterEgg(),
		CommandsExecuted: commandsExecuted,
	})
}

// SubmitPongScore enregistre un score de pong ; 200 points débloquent
// pong_champion
func SubmitPongScore(w http.ResponseWriter, r *http.Request) {
	user := resolveUser(w, r)
	if user == nil {
		return
	}

	var req model.PongScoreRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "JSON invalide", err)
		return
	}
	if req.Score < 0 {
		utils.ErrorSimple(w, http.StatusBadRequest, "le score ne peut pas être négatif")
		return
	}

	ctx := r.Context()

	newRecord := req.Score > user.PongHighScore
	if newRecord {
		_, err := database.DB.Exec(ctx,
			`UPDATE users SET pong_high_score=$1 WHERE id=$2 AND pong_high_score < $1`,
			req.Score, user.ID)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "impossible d'enregistrer le record", err)
			return
		}
		user.PongHighScore = req.Score

		// Le record est journalisé mais ne rapporte aucun point : le
		// barème ne score pas les parties de pong
		if err := utils.AwardPoints(ctx, user.ID, progress.ActionPongScore, 0,
			map[string]interface{}{"score": req.Score}); err != nil {
			utils.Error(w, http.StatusInternalServerError, "impossible de journaliser le record", err)
			return
		}
	}

	achievementUnlocked := false
	if progress.PongChampionReached(req.Score) {
		result, err := utils.TryUnlockAchievement(ctx, user.ID, progress.AchPongChampion)
		if err != nil {
			logger.Warning("pong_champion unlock failed: %v", err)
		}
		achievementUnlocked = result == utils.UnlockDone
	}

	utils.Success(w, map[string]interface{}{
		"score":                req.Score,
		"high_score":           user.PongHighScore,
		"new_record":           newRecord,
		"achievement_unlocked": achievementUnlocked,
	})
}
