package scanner

import (
	model "github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/models"
	"github.com/lib/pq"
)

// ScanJob scanne une ligne SQL vers un Job avec pq.Array pour les skills
func ScanJob(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.Job, error) {
	var j model.Job

	err := scanner.Scan(
		&j.ID, &j.Title, &j.Company, &j.Location, &j.Salary, &j.Type,
		&j.Description, pq.Array(&j.Skills), &j.PostedDate,
		&j.ApplicationStatus, &j.Source, &j.URL, &j.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if j.Skills == nil {
		j.Skills = []string{}
	}

	return &j, nil
}

// ScanApplication scanne une ligne SQL vers une Application
func ScanApplication(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.Application, error) {
	var a model.Application

	err := scanner.Scan(
		&a.ID, &a.UserID, &a.JobID, &a.JobTitle, &a.Company,
		&a.Status, &a.AppliedDate, &a.FollowUpDate, &a.Notes,
	)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// ScanTask scanne une ligne SQL vers une Task
func ScanTask(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.Task, error) {
	var t model.Task

	err := scanner.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.Status,
		&t.Priority, &t.Category, &t.DueDate, &t.CreatedAt, &t.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// ScanAchievement scanne une ligne SQL vers un Achievement
func ScanAchievement(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.Achievement, error) {
	var a model.Achievement

	err := scanner.Scan(
		&a.ID, &a.UserID, &a.Kind, &a.Title, &a.Description,
		&a.Icon, &a.Unlocked, &a.UnlockedAt,
	)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// ScanLogEntry scanne une ligne SQL vers une ProductivityLogEntry
func ScanLogEntry(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.ProductivityLogEntry, error) {
	var e model.ProductivityLogEntry

	err := scanner.Scan(
		&e.ID, &e.UserID, &e.Action, &e.Points, &e.Metadata, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &e, nil
}
