package handler

import (
	"net/http"
	"strconv"

	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/database"
	model "github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/models"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/scanner"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/utils"
)

// GetProductivityLog renvoie l'historique des actions scorées. La somme
// des points de ces entrées égale le productivity_score de l'utilisateur.
func GetProductivityLog(w http.ResponseWriter, r *http.Request) {
	user := resolveUser(w, r)
	if user == nil {
		return
	}

	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	rows, err := database.DB.Query(r.Context(),
		`SELECT id, user_id, action, points, metadata, created_at
		 FROM productivity_log WHERE user_id=$1
		 ORDER BY created_at DESC LIMIT $2`,
		user.ID, limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de charger le journal", err)
		return
	}
	defer rows.Close()

	entries := []model.ProductivityLogEntry{}
	for rows.Next() {
		entry, err := scanner.ScanLogEntry(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "impossible de lire une entrée", err)
			return
		}
		entries = append(entries, *entry)
	}

	var totalPoints int
	err = database.DB.QueryRow(r.Context(),
		`SELECT COALESCE(SUM(points), 0) FROM productivity_log WHERE user_id=$1`,
		user.ID).Scan(&totalPoints)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de sommer les points", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"log":          entries,
		"total_points": totalPoints,
	})
}
