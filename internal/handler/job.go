package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/database"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/logger"
	model "github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/models"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/progress"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/scanner"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/utils"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
)

const jobColumns = `id, title, company, location, salary, type,
	description, skills, posted_date, application_status, source, url, created_at`

// GetJobs récupère tout le catalogue d'offres
func GetJobs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := utils.SeedJobCatalogIfEmpty(ctx); err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible d'initialiser le catalogue", err)
		return
	}

	rows, err := database.DB.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs ORDER BY posted_date DESC, created_at DESC`)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de charger les offres", err)
		return
	}
	defer rows.Close()

	jobs := []model.Job{}
	for rows.Next() {
		job, err := scanner.ScanJob(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "impossible de lire une offre", err)
			return
		}
		jobs = append(jobs, *job)
	}

	utils.Success(w, map[string]interface{}{"jobs": jobs, "total": len(jobs)})
}

// GetJobByID récupère une offre par son identifiant
func GetJobByID(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["id"]

	job, err := loadJob(r.Context(), jobID)
	if errors.Is(err, pgx.ErrNoRows) {
		utils.ErrorSimple(w, http.StatusNotFound, "offre introuvable")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de charger l'offre", err)
		return
	}

	utils.Success(w, job)
}

// ApplyToJob crée une candidature : +15 points, et le premier apply
// débloque l'achievement first_job_apply (+50)
func ApplyToJob(w http.ResponseWriter, r *http.Request) {
	user := resolveUser(w, r)
	if user == nil {
		return
	}

	ctx := r.Context()
	jobID := mux.Vars(r)["id"]

	job, err := loadJob(ctx, jobID)
	if errors.Is(err, pgx.ErrNoRows) {
		utils.ErrorSimple(w, http.StatusNotFound, "offre introuvable")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de charger l'offre", err)
		return
	}

	_, err = database.DB.Exec(ctx,
		`UPDATE jobs SET application_status='applied' WHERE id=$1`, jobID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de marquer l'offre", err)
		return
	}

	row := database.DB.QueryRow(ctx,
		`INSERT INTO applications(id, user_id, job_id, job_title, company, status, applied_date, notes)
		 VALUES($1, $2, $3, $4, $5, 'applied', $6, '')
		 RETURNING id, user_id, job_id, job_title, company, status, applied_date, follow_up_date, notes`,
		uuid.NewString(), user.ID, job.ID, job.Title, job.Company, time.Now(),
	)

	application, err := scanner.ScanApplication(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de créer la candidature", err)
		return
	}

	if err := utils.AwardPoints(ctx, user.ID, progress.ActionJobApplication,
		progress.PointsJobApplication, map[string]interface{}{"job_id": job.ID, "company": job.Company}); err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de scorer la candidature", err)
		return
	}

	// Premier apply → achievement
	achievementUnlocked := false
	count, err := utils.CountUserApplications(ctx, user.ID)
	if err == nil && count == 1 {
		result, err := utils.TryUnlockAchievement(ctx, user.ID, progress.AchFirstJobApply)
		if err != nil {
			logger.Warning("first_job_apply unlock failed: %v", err)
		}
		achievementUnlocked = result == utils.UnlockDone
	}

	utils.Success(w, map[string]interface{}{
		"message":              "Application submitted successfully",
		"application":          application,
		"points_awarded":       progress.PointsJobApplication,
		"achievement_unlocked": achievementUnlocked,
	})
}

// RefreshJobs remplace le catalogue par le contenu du flux externe.
// Échec du flux → on garde l'ancien catalogue et on répond 0 offre,
// l'erreur ne remonte pas au client.
func RefreshJobs(w http.ResponseWriter, r *http.Request) {
	user := resolveUser(w, r)
	if user == nil {
		return
	}

	ctx := r.Context()

	jobs, err := JobFeed.FetchRemoteJobs(ctx)
	if err != nil {
		logger.Warning("Job feed unavailable, keeping previous catalog: %v", err)
		utils.Success(w, map[string]interface{}{
			"message":    "Job feed unavailable, catalog unchanged",
			"jobs_added": 0,
		})
		return
	}

	if err := utils.ReplaceJobCatalog(ctx, jobs); err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de remplacer le catalogue", err)
		return
	}

	if err := utils.AwardPoints(ctx, user.ID, progress.ActionJobsRefreshed,
		progress.PointsJobsRefreshed, map[string]interface{}{"jobs_added": len(jobs)}); err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de scorer le refresh", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"message":        "Job catalog refreshed",
		"jobs_added":     len(jobs),
		"points_awarded": progress.PointsJobsRefreshed,
	})
}

// SeedJobs réinitialise le catalogue statique
func SeedJobs(w http.ResponseWriter, r *http.Request) {
	if err := utils.ReplaceJobCatalog(r.Context(), utils.StaticJobCatalog); err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de réinitialiser le catalogue", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"message":    "Static job catalog restored",
		"jobs_added": len(utils.StaticJobCatalog),
	})
}

func loadJob(ctx context.Context, jobID string) (*model.Job, error) {
	row := database.DB.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id=$1`, jobID)
	return scanner.ScanJob(row)
}
