package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestNormalizeJobDefaults(t *testing.T) {
	job := NormalizeJob(RawJobPosting{Position: "Go Developer"})

	if job.ID == "" {
		t.Fatal("normalized job should get a fresh id")
	}
	if job.Company != "Unknown Company" {
		t.Fatalf("company=%q, want default", job.Company)
	}
	if job.Location != "Remote" {
		t.Fatalf("location=%q, want Remote", job.Location)
	}
	if job.Salary != "Competitive" {
		t.Fatalf("empty salary should become Competitive, got %q", job.Salary)
	}
	if job.ApplicationStatus != "not_applied" {
		t.Fatalf("status=%q, want not_applied", job.ApplicationStatus)
	}
	if job.Source != "remoteok" {
		t.Fatalf("source=%q, want remoteok", job.Source)
	}
	if job.Skills == nil || len(job.Skills) != 0 {
		t.Fatalf("skills=%v, want empty slice", job.Skills)
	}
}

func TestNormalizeJobTruncation(t *testing.T) {
	raw := RawJobPosting{
		Position:    "Backend Engineer",
		Description: strings.Repeat("x", 1200),
		Salary:      strings.Repeat("$", 80),
		Tags:        []string{"go", "postgres", "docker", "k8s", "aws", "grpc", "redis"},
	}

	job := NormalizeJob(raw)

	if len(job.Description) != 500 {
		t.Fatalf("description length=%d, want 500", len(job.Description))
	}
	if len(job.Salary) != 50 {
		t.Fatalf("salary length=%d, want 50", len(job.Salary))
	}
	if len(job.Skills) != 5 {
		t.Fatalf("skills length=%d, want 5", len(job.Skills))
	}
}

func TestNormalizeJobTruncationMultibyte(t *testing.T) {
	// 600 runes de 3 octets chacun : une coupe en octets tomberait au
	// milieu d'une séquence
	raw := RawJobPosting{
		Position:    "国際エンジニア",
		Description: strings.Repeat("日", 600),
		Salary:      strings.Repeat("€", 80),
	}

	job := NormalizeJob(raw)

	if !utf8.ValidString(job.Description) {
		t.Fatal("truncated description is not valid UTF-8")
	}
	if got := utf8.RuneCountInString(job.Description); got != 500 {
		t.Fatalf("description rune count=%d, want 500", got)
	}
	if !utf8.ValidString(job.Salary) {
		t.Fatal("truncated salary is not valid UTF-8")
	}
	if got := utf8.RuneCountInString(job.Salary); got != 50 {
		t.Fatalf("salary rune count=%d, want 50", got)
	}
}

func TestNormalizeJobFreshIdentifiers(t *testing.T) {
	raw := RawJobPosting{Position: "Same Posting"}
	first := NormalizeJob(raw)
	second := NormalizeJob(raw)
	if first.ID == second.ID {
		t.Fatal("each normalization should generate a fresh id")
	}
}

func TestFetchRemoteJobs(t *testing.T) {
	payload := `[
		{"legal": "API terms of service"},
		{"position": "Senior Go Engineer", "company": "Acme", "location": "Remote EU",
		 "salary": "$120k", "tags": ["go", "grpc"], "description": "Build things.",
		 "date": "2025-03-10", "url": "https://example.com/job/1"},
		{"position": "SRE", "company": "Globex", "tags": []}
	]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer server.Close()

	client := NewFeedClient(server.URL, 2*time.Second)
	jobs, err := client.FetchRemoteJobs(context.Background())
	if err != nil {
		t.Fatalf("FetchRemoteJobs: %v", err)
	}

	// La notice légale sans position est filtrée
	if len(jobs) != 2 {
		t.Fatalf("got %d jobs, want 2", len(jobs))
	}
	if jobs[0].Title != "Senior Go Engineer" || jobs[0].Company != "Acme" {
		t.Fatalf("unexpected first job: %+v", jobs[0])
	}
	if jobs[0].URL == nil || *jobs[0].URL != "https://example.com/job/1" {
		t.Fatalf("url not carried over: %v", jobs[0].URL)
	}
	if jobs[1].Salary != "Competitive" {
		t.Fatalf("missing salary should default, got %q", jobs[1].Salary)
	}
}

func TestFetchRemoteJobsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewFeedClient(server.URL, 2*time.Second)
	if _, err := client.FetchRemoteJobs(context.Background()); err == nil {
		t.Fatal("expected error on upstream 502")
	}
}

func TestFetchRemoteJobsInvalidPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "a list"}`))
	}))
	defer server.Close()

	client := NewFeedClient(server.URL, 2*time.Second)
	if _, err := client.FetchRemoteJobs(context.Background()); err == nil {
		t.Fatal("expected error on non-array payload")
	}
}

func TestFetchRemoteJobsUnreachable(t *testing.T) {
	client := NewFeedClient("http://127.0.0.1:1", 200*time.Millisecond)
	if _, err := client.FetchRemoteJobs(context.Background()); err == nil {
		t.Fatal("expected error when feed is unreachable")
	}
}
