package handler

import (
	"net/http"

	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/middleware"
	model "github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/models"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/services"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/utils"
)

// JobFeed est le client du flux externe d'offres, injecté au démarrage
var JobFeed *services.FeedClient

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}

// resolveUser récupère l'identifiant depuis le contexte, crée
// l'utilisateur au premier accès et applique la transition de streak.
// Répond 500 et renvoie nil si la résolution échoue.
func resolveUser(w http.ResponseWriter, r *http.Request) *model.UserState {
	userID, err := middleware.GetUserIDFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "utilisateur non résolu", err)
		return nil
	}

	user, err := utils.GetOrCreateUser(r.Context(), userID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de charger l'utilisateur", err)
		return nil
	}

	return user
}
