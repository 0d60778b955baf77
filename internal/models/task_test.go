package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

// L'export des tasks doit se réimporter tel quel : les champs
// nullables sortent en chaînes ou sont absents, jamais en objets.
func TestTaskExportImportRoundTrip(t *testing.T) {
	due := "2025-04-01"
	done := time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC)

	exported := []Task{
		{
			ID: "t1", UserID: "u1", Title: "Préparer l'entretien",
			Description: "Relire l'offre", Status: TaskStatusCompleted,
			Priority: TaskPriorityHigh, Category: "career",
			DueDate: &due, CreatedAt: done.Add(-48 * time.Hour), CompletedAt: &done,
		},
		{
			ID: "t2", UserID: "u1", Title: "Mettre à jour le CV",
			Status: TaskStatusTodo, Priority: TaskPriorityMedium,
			Category: "career", CreatedAt: done,
		},
	}

	payload, err := json.Marshal(exported)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var imported []TaskImportItem
	if err := json.Unmarshal(payload, &imported); err != nil {
		t.Fatalf("exported payload should import back: %v", err)
	}

	if len(imported) != 2 {
		t.Fatalf("got %d items, want 2", len(imported))
	}
	if imported[0].DueDate != "2025-04-01" {
		t.Fatalf("due_date=%q, want 2025-04-01", imported[0].DueDate)
	}
	if imported[0].Status != TaskStatusCompleted || imported[1].Status != TaskStatusTodo {
		t.Fatalf("statuses not carried over: %+v", imported)
	}
	if imported[1].DueDate != "" {
		t.Fatalf("absent due_date should import as empty, got %q", imported[1].DueDate)
	}
}

func TestTaskJSONOmitsNullFields(t *testing.T) {
	payload, err := json.Marshal(Task{ID: "t1", Title: "Sans échéance", Status: TaskStatusTodo})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	body := string(payload)
	if strings.Contains(body, "due_date") || strings.Contains(body, "completed_at") {
		t.Fatalf("null fields should be omitted, got %s", body)
	}
	if strings.Contains(body, "Valid") {
		t.Fatalf("internal null wrappers leaked into JSON: %s", body)
	}
}
