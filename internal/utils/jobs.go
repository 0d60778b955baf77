package utils

import (
	"context"
	"fmt"

	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/database"
	model "github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// StaticJobCatalog est le catalogue de départ, inséré quand la table
// est vide ou sur demande explicite
var StaticJobCatalog = []model.Job{
	{
		Title: "Senior Frontend Developer", Company: "TechFlow Inc",
		Location: "Remote (Arizona Preferred)", Salary: "$95,000 - $120,000", Type: "Full-time",
		Description: "Build cutting-edge React applications for fintech platform. Work with modern tech stack including React, TypeScript, and GraphQL.",
		Skills:      []string{"React", "TypeScript", "GraphQL", "Node.js"},
		PostedDate:  "2025-03-15", ApplicationStatus: "not_applied", Source: "static",
	},
	{
		Title: "Remote Python Developer", Company: "DataCorp Solutions",
		Location: "Remote - US", Salary: "$85,000 - $110,000", Type: "Full-time",
		Description: "Develop data processing pipelines and APIs using Python, FastAPI, and PostgreSQL. Experience with cloud platforms preferred.",
		Skills:      []string{"Python", "FastAPI", "PostgreSQL", "AWS"},
		PostedDate:  "2025-03-14", ApplicationStatus: "not_applied", Source: "static",
	},
	{
		Title: "DevOps Engineer (Remote)", Company: "CloudScale Technologies",
		Location: "Remote", Salary: "$100,000 - $130,000", Type: "Full-time",
		Description: "Manage CI/CD pipelines, Kubernetes clusters, and cloud infrastructure. Strong background in automation and monitoring required.",
		Skills:      []string{"Kubernetes", "Docker", "AWS", "Terraform"},
		PostedDate:  "2025-03-13", ApplicationStatus: "not_applied", Source: "static",
	},
	{
		Title: "Full Stack Developer", Company: "StartupForge",
		Location: "Remote (Arizona Welcome)", Salary: "$75,000 - $95,000", Type: "Full-time",
		Description: "Join our fast-growing startup building SaaS tools. Full stack development with React, Node.js, and MongoDB.",
		Skills:      []string{"React", "Node.js", "MongoDB", "Express"},
		PostedDate:  "2025-03-12", ApplicationStatus: "not_applied", Source: "static",
	},
	{
		Title: "Remote UX Designer", Company: "DesignMasters",
		Location: "Remote", Salary: "$70,000 - $90,000", Type: "Contract",
		Description: "Create user-centered designs for mobile and web applications. Collaborate with cross-functional teams remotely.",
		Skills:      []string{"Figma", "Adobe XD", "User Research", "Prototyping"},
		PostedDate:  "2025-03-11", ApplicationStatus: "not_applied", Source: "static",
	},
}

// ReplaceJobCatalog remplace tout le catalogue par les offres données,
// dans une seule transaction : si l'insert échoue, le DELETE est
// annulé et l'ancien catalogue reste en place. Jamais de fenêtre vide.
func ReplaceJobCatalog(ctx context.Context, jobs []model.Job) error {
	tx, err := database.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("impossible d'ouvrir la transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM jobs`); err != nil {
		return fmt.Errorf("impossible de vider le catalogue: %w", err)
	}

	for _, job := range jobs {
		if job.ID == "" {
			job.ID = uuid.NewString()
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO jobs(id, title, company, location, salary, type,
				description, skills, posted_date, application_status, source, url)
			 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			job.ID, job.Title, job.Company, job.Location, job.Salary, job.Type,
			job.Description, pq.Array(job.Skills), job.PostedDate,
			job.ApplicationStatus, job.Source, job.URL,
		)
		if err != nil {
			return fmt.Errorf("impossible d'insérer l'offre %q: %w", job.Title, err)
		}
	}

	return tx.Commit(ctx)
}

// SeedJobCatalogIfEmpty insère le catalogue statique si la table est vide
func SeedJobCatalogIfEmpty(ctx context.Context) error {
	var count int
	if err := database.DB.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return ReplaceJobCatalog(ctx, StaticJobCatalog)
}
