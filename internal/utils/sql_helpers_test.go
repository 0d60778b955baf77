package utils

import (
	"database/sql"
	"testing"
	"time"
)

func TestStringNullRoundTrip(t *testing.T) {
	if ns := StringToNullString(""); ns.Valid {
		t.Fatal("empty string should map to NULL")
	}
	ns := StringToNullString("2025-03-18")
	if !ns.Valid || ns.String != "2025-03-18" {
		t.Fatalf("unexpected NullString: %+v", ns)
	}
	if got := NullStringToString(ns); got != "2025-03-18" {
		t.Fatalf("round trip gave %q", got)
	}
	if got := NullStringToString(sql.NullString{}); got != "" {
		t.Fatalf("NULL should map to empty string, got %q", got)
	}
}

func TestNullTimeToPointer(t *testing.T) {
	if p := NullTimeToPointer(sql.NullTime{}); p != nil {
		t.Fatal("NULL time should map to nil pointer")
	}

	now := time.Now()
	p := NullTimeToPointer(sql.NullTime{Time: now, Valid: true})
	if p == nil || !p.Equal(now) {
		t.Fatalf("conversion gave %v", p)
	}
}
