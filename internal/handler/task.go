package handler

import (
	"encoding/json"
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
)

const taskColumns = `id, user_id, title, description, status, priority,
	category, due_date, created_at, completed_at`

// GetTasks récupère les tasks de l'utilisateur
func GetTasks(w http.ResponseWriter, r *http.Request) {
	user := resolveUser(w, r)
	if user == nil {
		return
	}

	tasks, err := loadUserTasks(r, user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de charger les tasks", err)
		return
	}

	utils.Success(w, map[string]interface{}{"tasks": tasks, "total": len(tasks)})
}

// CreateTask crée une task (+5 points)
func CreateTask(w http.ResponseWriter, r *http.Request) {
	user := resolveUser(w, r)
	if user == nil {
		return
	}

	var req model.CreateTaskRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "JSON invalide", err)
		return
	}

	if req.Title == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "le titre est requis")
		return
	}
	if req.Priority == "" {
		req.Priority = model.TaskPriorityMedium
	}
	if req.Category == "" {
		req.Category = "general"
	}

	ctx := r.Context()

	row := database.DB.QueryRow(ctx,
		`INSERT INTO tasks(id, user_id, title, description, status, priority, category, due_date, created_at)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+taskColumns,
		uuid.NewString(), user.ID, req.Title, req.Description,
		model.TaskStatusTodo, req.Priority, req.Category,
		utils.StringToNullString(req.DueDate), time.Now(),
	)

	task, err := scanner.ScanTask(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de créer la task", err)
		return
	}

	if err := utils.AwardPoints(ctx, user.ID, progress.ActionTaskCreated,
		progress.PointsTaskCreated, map[string]interface{}{"task_id": task.ID}); err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de scorer la création", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"message":        "Task created",
		"task":           task,
		"points_awarded": progress.PointsTaskCreated,
	})
}

// CompleteTask passe une task à completed (+20 points). La transition
// n'arrive qu'une fois : une task déjà complétée répond 409, une task
// inconnue 404.
func CompleteTask(w http.ResponseWriter, r *http.Request) {
	user := resolveUser(w, r)
	if user == nil {
		return
	}

	ctx := r.Context()
	taskID := mux.Vars(r)["id"]

	tag, err := database.DB.Exec(ctx,
		`UPDATE tasks SET status=$1, completed_at=NOW()
		 WHERE id=$2 AND user_id=$3 AND status <> $1`,
		model.TaskStatusCompleted, taskID, user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de compléter la task", err)
		return
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		err := database.DB.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM tasks WHERE id=$1 AND user_id=$2)`,
			taskID, user.ID).Scan(&exists)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "impossible de vérifier la task", err)
			return
		}
		if exists {
			utils.ErrorSimple(w, http.StatusConflict, "task déjà complétée")
		} else {
			utils.ErrorSimple(w, http.StatusNotFound, "task introuvable")
		}
		return
	}

	if err := utils.AwardPoints(ctx, user.ID, progress.ActionTaskCompleted,
		progress.PointsTaskCompleted, map[string]interface{}{"task_id": taskID}); err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de scorer la complétion", err)
		return
	}

	// 10 tasks complétées → task_master
	achievementUnlocked := false
	completed, err := utils.CountCompletedTasks(ctx, user.ID)
	if err == nil && progress.TaskMasterReached(completed) {
		result, err := utils.TryUnlockAchievement(ctx, user.ID, progress.AchTaskMaster)
		if err != nil {
			logger.Warning("task_master unlock failed: %v", err)
		}
		achievementUnlocked = result == utils.UnlockDone
	}

	utils.Success(w, map[string]interface{}{
		"message":              "Task completed",
		"points_awarded":       progress.PointsTaskCompleted,
		"tasks_completed":      completed,
		"achievement_unlocked": achievementUnlocked,
	})
}

// ImportTasks importe un tableau JSON de tasks. Un payload qui n'est
// pas une liste est une erreur de validation.
func ImportTasks(w http.ResponseWriter, r *http.Request) {
	user := resolveUser(w, r)
	if user == nil {
		return
	}

	var items []model.TaskImportItem
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		utils.Error(w, http.StatusBadRequest, "payload invalide: un tableau JSON de tasks est attendu", err)
		return
	}

	ctx := r.Context()
	now := time.Now()
	imported := 0

	for _, item := range items {
		if item.Title == "" {
			continue
		}
		status := item.Status
		if status != model.TaskStatusTodo && status != model.TaskStatusInProgress && status != model.TaskStatusCompleted {
			status = model.TaskStatusTodo
		}
		priority := item.Priority
		if priority != model.TaskPriorityLow && priority != model.TaskPriorityMedium && priority != model.TaskPriorityHigh {
			priority = model.TaskPriorityMedium
		}
		category := item.Category
		if category == "" {
			category = "general"
		}

		_, err := database.DB.Exec(ctx,
			`INSERT INTO tasks(id, user_id, title, description, status, priority, category, due_date, created_at)
			 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			uuid.NewString(), user.ID, item.Title, item.Description,
			status, priority, category, utils.StringToNullString(item.DueDate), now,
		)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "impossible d'importer une task", err)
			return
		}

		if err := utils.AwardPoints(ctx, user.ID, progress.ActionTaskCreated,
			progress.PointsTaskCreated, map[string]interface{}{"imported": true}); err != nil {
			utils.Error(w, http.StatusInternalServerError, "impossible de scorer l'import", err)
			return
		}
		imported++
	}

	utils.Success(w, map[string]interface{}{
		"message":        "Tasks imported",
		"tasks_imported": imported,
		"points_awarded": imported * progress.PointsTaskCreated,
	})
}

// ExportTasks renvoie les tasks de l'utilisateur en tableau JSON brut,
// réimportable tel quel
func ExportTasks(w http.ResponseWriter, r *http.Request) {
	user := resolveUser(w, r)
	if user == nil {
		return
	}

	tasks, err := loadUserTasks(r, user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de charger les tasks", err)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="tasks.json"`)
	utils.JSON(w, http.StatusOK, tasks)
}

func loadUserTasks(r *http.Request, userID string) ([]model.Task, error) {
	rows, err := database.DB.Query(r.Context(),
		`SELECT `+taskColumns+` FROM tasks WHERE user_id=$1 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		task, err := scanner.ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}

	return tasks, rows.Err()
}
