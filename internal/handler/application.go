package handler

import (
	"net/http"

	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/database"
	model "github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/models"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/scanner"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/utils"
)

// GetApplications récupère les candidatures de l'utilisateur
func GetApplications(w http.ResponseWriter, r *http.Request) {
	user := resolveUser(w, r)
	if user == nil {
		return
	}

	rows, err := database.DB.Query(r.Context(),
		`SELECT id, user_id, job_id, job_title, company, status, applied_date, follow_up_date, notes
		 FROM applications WHERE user_id=$1 ORDER BY applied_date DESC`,
		user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de charger les candidatures", err)
		return
	}
	defer rows.Close()

	applications := []model.Application{}
	for rows.Next() {
		application, err := scanner.ScanApplication(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "impossible de lire une candidature", err)
			return
		}
		applications = append(applications, *application)
	}

	utils.Success(w, map[string]interface{}{
		"applications": applications,
		"total":        len(applications),
	})
}
