package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	model "github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/models"
	"github.com/google/uuid"
)

// Limites de normalisation des offres importées
const (
	maxDescriptionLen = 500
	maxSkills         = 5
	maxSalaryLen      = 50
)

// RawJobPosting est la forme brute d'une offre du flux externe
// (format RemoteOK : le premier élément du tableau est une notice
// légale sans position, elle est filtrée)
type RawJobPosting struct {
	Position    string   `json:"position"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Salary      string   `json:"salary"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	URL         string   `json:"url"`
}

// FeedClient interroge le flux externe d'offres d'emploi
type FeedClient struct {
	feedURL string
	client  *http.Client
}

// NewFeedClient construit un client avec un timeout borné
func NewFeedClient(feedURL string, timeout time.Duration) *FeedClient {
	return &FeedClient{
		feedURL: feedURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// FetchRemoteJobs récupère et normalise les offres du flux. En cas
// d'échec réseau ou de payload invalide, l'erreur remonte à l'appelant
// qui garde le catalogue précédent.
func (f *FeedClient) FetchRemoteJobs(ctx context.Context) ([]model.Job, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "ThriveRemote/3.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("job feed unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("job feed returned status %d", resp.StatusCode)
	}

	var raw []RawJobPosting
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid feed payload: %w", err)
	}

	jobs := make([]model.Job, 0, len(raw))
	for _, posting := range raw {
		if posting.Position == "" {
			continue
		}
		jobs = append(jobs, NormalizeJob(posting))
	}

	return jobs, nil
}

// NormalizeJob mappe une offre brute vers le modèle du catalogue :
// identifiant fraîchement généré, valeurs par défaut, description
// tronquée à 500 caractères, 5 skills maximum, salaire tronqué à 50
// caractères ou remplacé par "Competitive" s'il est absent.
func NormalizeJob(raw RawJobPosting) model.Job {
	job := model.Job{
		ID:                uuid.NewString(),
		Title:             raw.Position,
		Company:           orDefault(raw.Company, "Unknown Company"),
		Location:          orDefault(raw.Location, "Remote"),
		Salary:            normalizeSalary(raw.Salary),
		Type:              "Full-time",
		Description:       truncate(raw.Description, maxDescriptionLen),
		Skills:            raw.Tags,
		PostedDate:        orDefault(raw.Date, time.Now().Format("2006-01-02")),
		ApplicationStatus: "not_applied",
		Source:            "remoteok",
	}

	if len(job.Skills) > maxSkills {
		job.Skills = job.Skills[:maxSkills]
	}
	if job.Skills == nil {
		job.Skills = []string{}
	}
	if raw.URL != "" {
		url := raw.URL
		job.URL = &url
	}

	return job
}

func normalizeSalary(salary string) string {
	if salary == "" {
		return "Competitive"
	}
	return truncate(salary, maxSalaryLen)
}

// truncate coupe à max caractères, jamais au milieu d'une séquence
// UTF-8 (couper en octets laisserait un rune invalide en fin de chaîne)
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
