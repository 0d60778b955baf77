package model

import (
	"time"
)

// Job est une offre d'emploi du catalogue (statique ou importée du flux externe)
type Job struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Company           string    `json:"company"`
	Location          string    `json:"location"`
	Salary            string    `json:"salary"`
	Type              string    `json:"type"`
	Description       string    `json:"description"`
	Skills            []string  `json:"skills"`
	PostedDate        string    `json:"posted_date"`
	ApplicationStatus string    `json:"application_status"` // not_applied, applied
	Source            string    `json:"source"`             // static, remoteok
	URL               *string   `json:"url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// Application est une candidature d'un utilisateur à une offre
type Application struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	JobID        string    `json:"job_id"`
	JobTitle     string    `json:"job_title"`
	Company      string    `json:"company"`
	Status       string    `json:"status"`
	AppliedDate  time.Time `json:"applied_date"`
	FollowUpDate *string   `json:"follow_up_date,omitempty"`
	Notes        string    `json:"notes"`
}
