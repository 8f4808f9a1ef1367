package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/amishk599/jobdesk/internal/model"
	"github.com/amishk599/jobdesk/internal/store"
)

// writeActionConfig points the CLI at apiURL with a SQLite store in a temp dir
// and returns the store path.
func writeActionConfig(t *testing.T, apiURL string) string {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "jobdesk.db")
	cfgFile := filepath.Join(dir, "config.yaml")
	data := fmt.Sprintf("api:\n  base_url: %s\nstore:\n  path: %s\n", apiURL, dbPath)
	if err := os.WriteFile(cfgFile, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("JOBDESK_API_URL", "")
	prev := cfgPath
	cfgPath = cfgFile
	t.Cleanup(func() { cfgPath = prev })
	return dbPath
}

func history(t *testing.T, dbPath string) []model.ModerationEvent {
	t.Helper()
	s, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("reopening store: %v", err)
	}
	defer s.Close()
	events, err := s.History(10)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	return events
}

func TestRunAction_APIErrorIsReturned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()
	dbPath := writeActionConfig(t, srv.URL)

	err := runAction(context.Background(), model.ActionApprove, "12")
	var httpErr *model.HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusForbidden {
		t.Fatalf("expected wrapped 403 HTTPError, got %v", err)
	}
	if events := history(t, dbPath); len(events) != 0 {
		t.Errorf("failed action should not be recorded, got %d events", len(events))
	}
}

func TestRunAction_RecordsEvent(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	dbPath := writeActionConfig(t, srv.URL)

	if err := runAction(context.Background(), model.ActionMarkAsSpam, "7"); err != nil {
		t.Fatalf("runAction: %v", err)
	}
	if gotPath != "PUT /jobs/7/mark-as-spam" {
		t.Errorf("request = %q", gotPath)
	}
	events := history(t, dbPath)
	if len(events) != 1 || events[0].JobID != 7 || events[0].Source != "cli" {
		t.Errorf("events = %+v", events)
	}
}

func TestRunAction_InvalidID(t *testing.T) {
	if err := runAction(context.Background(), model.ActionApprove, "abc"); err == nil {
		t.Fatal("expected error for a non-numeric job id")
	}
}
