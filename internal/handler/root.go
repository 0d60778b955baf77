package handler

import (
	"net/http"

	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "ThriveRemote API",
		"version": "3.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"jobs": []map[string]string{
				{"method": "GET", "path": "/api/jobs", "description": "Catalogue des offres d'emploi"},
				{"method": "GET", "path": "/api/jobs/{id}", "description": "Une offre par ID"},
				{"method": "POST", "path": "/api/jobs/{id}/apply", "description": "Candidater à une offre (+15 points)"},
				{"method": "POST", "path": "/api/jobs/refresh", "description": "Rafraîchir le catalogue depuis le flux externe"},
				{"method": "POST", "path": "/api/jobs/seed", "description": "Réinitialiser le catalogue statique"},
			},
			"applications": []map[string]string{
				{"method": "GET", "path": "/api/applications", "description": "Candidatures de l'utilisateur"},
			},
			"savings": []map[string]string{
				{"method": "GET", "path": "/api/savings", "description": "Progression de l'épargne (bonus de streak inclus)"},
				{"method": "POST", "path": "/api/savings/update", "description": "Mettre à jour le montant épargné (+10 points)"},
			},
			"tasks": []map[string]string{
				{"method": "GET", "path": "/api/tasks", "description": "Tasks de l'utilisateur"},
				{"method": "POST", "path": "/api/tasks", "description": "Créer une task (+5 points)"},
				{"method": "POST", "path": "/api/tasks/{id}/complete", "description": "Compléter une task (+20 points)"},
				{"method": "POST", "path": "/api/tasks/import", "description": "Import en masse (tableau JSON)"},
				{"method": "GET", "path": "/api/tasks/export", "description": "Export JSON des tasks"},
			},
			"achievements": []map[string]string{
				{"method": "GET", "path": "/api/achievements", "description": "Achievements et statut de déblocage"},
				{"method": "GET", "path": "/api/notifications", "description": "Notifications (vérifie le streak hebdomadaire)"},
			},
			"terminal": []map[string]string{
				{"method": "POST", "path": "/api/terminal/command", "description": "Exécuter une commande du terminal (+2 points)"},
				{"method": "POST", "path": "/api/pong/score", "description": "Reporter un score de pong"},
			},
			"dashboard": []map[string]string{
				{"method": "GET", "path": "/api/dashboard/stats", "description": "Statistiques agrégées du dashboard"},
				{"method": "GET", "path": "/api/users/profile", "description": "Profil et état de progression"},
				{"method": "GET", "path": "/api/productivity/log", "description": "Journal des actions scorées"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check de l'API"},
			},
		},
		"documentation": map[string]string{
			"description": "API REST pour ThriveRemote - Dashboard gamifié de travail à distance",
			"note":        "Toutes les routes /api acceptent ?user=<id> ; défaut : default_user",
		},
	}

	utils.Success(w, routes)
}
