package model

import (
	"time"
)

// ProductivityLogEntry est une entrée immuable du journal des actions scorées.
// La somme des points d'un utilisateur doit égaler son productivity_score.
type ProductivityLogEntry struct {
	ID        string                 `json:"id"`
	UserID    string                 `json:"user_id"`
	Action    string                 `json:"action"`
	Points    int                    `json:"points"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"timestamp"`
}
