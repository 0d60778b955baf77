package model

import (
	"time"
)

// Statuts et priorités autorisés pour une task
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"

	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

// Task est un élément de travail appartenant à un utilisateur.
// Les champs nullables sont des pointeurs pour que le JSON exporté
// reste réimportable tel quel (NULL → champ absent, jamais un objet).
type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category"`
	DueDate     *string    `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_date"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// CreateTaskRequest est le payload de création d'une task
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	DueDate     string `json:"due_date"`
}

// TaskImportItem est un élément du payload d'import en masse.
// Même forme qu'une Task exportée, les champs serveur en moins.
type TaskImportItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	DueDate     string `json:"due_date"`
}
