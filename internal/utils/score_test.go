package utils

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

type recordingExecutor struct {
	statements []string
	failOn     int
}

func (r *recordingExecutor) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	r.statements = append(r.statements, sql)
	if r.failOn == len(r.statements) {
		return pgconn.CommandTag{}, errors.New("write failed")
	}
	return pgconn.CommandTag{}, nil
}

func TestAwardPointsWritesLogThenScore(t *testing.T) {
	exec := &recordingExecutor{}

	err := awardPointsTx(context.Background(), exec, "u1", "task_completed", 20, nil)
	if err != nil {
		t.Fatalf("awardPointsTx: %v", err)
	}

	if len(exec.statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(exec.statements))
	}
	if !strings.Contains(exec.statements[0], "INSERT INTO productivity_log") {
		t.Fatalf("first statement should append to the log: %s", exec.statements[0])
	}
	if !strings.Contains(exec.statements[1], "productivity_score = productivity_score +") {
		t.Fatalf("second statement should increment atomically: %s", exec.statements[1])
	}
}

// Si l'incrément du score échoue, l'erreur remonte et l'appelant
// n'atteint jamais le commit : le journal et le score bougent ensemble
// ou pas du tout
func TestAwardPointsScoreFailurePropagates(t *testing.T) {
	exec := &recordingExecutor{failOn: 2}

	err := awardPointsTx(context.Background(), exec, "u1", "task_completed", 20, nil)
	if err == nil {
		t.Fatal("expected error when the score update fails")
	}
	if !strings.Contains(err.Error(), "score") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAwardPointsLogFailureSkipsScore(t *testing.T) {
	exec := &recordingExecutor{failOn: 1}

	if err := awardPointsTx(context.Background(), exec, "u1", "easter_egg", 50, nil); err == nil {
		t.Fatal("expected error when the log insert fails")
	}
	if len(exec.statements) != 1 {
		t.Fatalf("score update should not run after a failed insert, got %d statements", len(exec.statements))
	}
}
