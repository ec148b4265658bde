package org

import (
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/polar/internal/cmdtest"
	"nathanbeddoewebdev/polar/internal/config"
	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"
)

const (
	orgID      = "0b4f8a2e-6a61-4d3c-9a9f-1c7f3c2d5e10"
	otherOrgID = "5a0c7e61-0d8f-4b52-8d7e-2f4b9c1a3e77"
)

func testOrg(id, name, slug string) map[string]any {
	return map[string]any{
		"id":         id,
		"name":       name,
		"slug":       slug,
		"created_at": "2024-01-01T00:00:00Z",
	}
}

// setupTestConfig points the config package at a temp file.
func setupTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	config.SetPath(path)
	t.Cleanup(config.ResetPath)
	return path
}

func TestList(t *testing.T) {
	srv := cmdtest.NewServer(t, map[string]cmdtest.Route{
		"GET /v1/organizations/": cmdtest.Page(1, 1, testOrg(orgID, "My Org", "my-org")),
	})

	res := cmdtest.Run(t, NewCommand(), cmdtest.Options{BaseURL: srv.URL}, "list")

	if res.Err != nil {
		t.Fatalf("unexpected error: %v (stderr: %s)", res.Err, res.Stderr)
	}
	for _, want := range []string{"My Org", "my-org", orgID, "2024-01-01", "Page 1 of 1 (1 total)"} {
		if !strings.Contains(res.Stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, res.Stdout)
		}
	}
	if got := srv.Requests()[0].Query; got != "limit=10&page=1" {
		t.Errorf("query = %q", got)
	}
}

func TestList_Empty(t *testing.T) {
	srv := cmdtest.NewServer(t, map[string]cmdtest.Route{
		"GET /v1/organizations/": cmdtest.Page(0, 1),
	})

	res := cmdtest.Run(t, NewCommand(), cmdtest.Options{BaseURL: srv.URL}, "list")

	if res.Stdout != "No organizations found.\n" {
		t.Errorf("unexpected output %q", res.Stdout)
	}
}

func TestList_InvalidLimit(t *testing.T) {
	srv := cmdtest.NewServer(t, nil)

	res := cmdtest.Run(t, NewCommand(), cmdtest.Options{BaseURL: srv.URL}, "list", "--limit", "0")

	if res.ExitCode() != 1 {
		t.Errorf("exit code = %d, want 1", res.ExitCode())
	}
	if res.Stderr != "Validation error:\n  query.limit: must be between 1 and 100\n" {
		t.Errorf("unexpected stderr %q", res.Stderr)
	}
	if len(srv.Requests()) != 0 {
		t.Errorf("expected no requests, got %d", len(srv.Requests()))
	}
}

func TestGet(t *testing.T) {
	srv := cmdtest.NewServer(t, map[string]cmdtest.Route{
		"GET /v1/organizations/" + orgID: cmdtest.JSON(200, testOrg(orgID, "My Org", "my-org")),
	})

	res := cmdtest.Run(t, NewCommand(), cmdtest.Options{BaseURL: srv.URL}, "get", orgID)

	if res.Err != nil {
		t.Fatalf("unexpected error: %v (stderr: %s)", res.Err, res.Stderr)
	}
	if !strings.Contains(res.Stdout, "  Name:") || !strings.Contains(res.Stdout, "My Org") {
		t.Errorf("expected detail view, got:\n%s", res.Stdout)
	}
}

func TestGet_Multiple(t *testing.T) {
	srv := cmdtest.NewServer(t, map[string]cmdtest.Route{
		"GET /v1/organizations/" + orgID:      cmdtest.JSON(200, testOrg(orgID, "My Org", "my-org")),
		"GET /v1/organizations/" + otherOrgID: cmdtest.JSON(200, testOrg(otherOrgID, "Other Org", "other")),
	})

	res := cmdtest.Run(t, NewCommand(), cmdtest.Options{BaseURL: srv.URL}, "get", otherOrgID, orgID)

	if res.Err != nil {
		t.Fatalf("unexpected error: %v (stderr: %s)", res.Err, res.Stderr)
	}
	other := strings.Index(res.Stdout, "Other Org")
	mine := strings.Index(res.Stdout, "My Org")
	if other < 0 || mine < 0 || other > mine {
		t.Errorf("expected both orgs in argument order, got:\n%s", res.Stdout)
	}
}

func TestGet_NotFound(t *testing.T) {
	srv := cmdtest.NewServer(t, nil)

	res := cmdtest.Run(t, NewCommand(), cmdtest.Options{BaseURL: srv.URL}, "get", orgID)

	if res.ExitCode() != 1 {
		t.Errorf("exit code = %d, want 1", res.ExitCode())
	}
	if res.Stderr != "API error (404): ResourceNotFound: Not found\n" {
		t.Errorf("unexpected stderr %q", res.Stderr)
	}
}

func TestGet_JSON(t *testing.T) {
	srv := cmdtest.NewServer(t, map[string]cmdtest.Route{
		"GET /v1/organizations/" + orgID: cmdtest.JSON(200, testOrg(orgID, "My Org", "my-org")),
	})

	res := cmdtest.Run(t, NewCommand(), cmdtest.Options{BaseURL: srv.URL, Output: output.JSON}, "get", orgID)

	if !strings.HasPrefix(res.Stdout, "{\n  \"id\": \""+orgID+"\"") {
		t.Errorf("expected JSON output, got:\n%s", res.Stdout)
	}
}

func TestGet_ConnectionFailed(t *testing.T) {
	res := cmdtest.Run(t, NewCommand(), cmdtest.Options{}, "get", orgID)

	if res.ExitCode() != 1 {
		t.Errorf("exit code = %d, want 1", res.ExitCode())
	}
	if res.Stderr != "Connection failed: Could not connect to API server\n" {
		t.Errorf("unexpected stderr %q", res.Stderr)
	}
}

func TestSetDefault(t *testing.T) {
	setupTestConfig(t)
	srv := cmdtest.NewServer(t, map[string]cmdtest.Route{
		"GET /v1/organizations/" + orgID: cmdtest.JSON(200, testOrg(orgID, "My Org", "my-org")),
	})

	res := cmdtest.Run(t, NewCommand(), cmdtest.Options{BaseURL: srv.URL, Environment: polar.Sandbox}, "set-default", orgID)

	if res.Err != nil {
		t.Fatalf("unexpected error: %v (stderr: %s)", res.Err, res.Stderr)
	}
	if !strings.Contains(res.Stdout, "Default organization set") {
		t.Errorf("expected confirmation, got: %s", res.Stdout)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.SandboxDefaultOrgID != orgID {
		t.Errorf("SandboxDefaultOrgID = %q, want %q", cfg.SandboxDefaultOrgID, orgID)
	}
	if cfg.DefaultOrgID != "" {
		t.Errorf("production default should be untouched, got %q", cfg.DefaultOrgID)
	}
}

func TestSetDefault_UnknownOrgNotSaved(t *testing.T) {
	setupTestConfig(t)
	srv := cmdtest.NewServer(t, nil)

	res := cmdtest.Run(t, NewCommand(), cmdtest.Options{BaseURL: srv.URL}, "set-default", orgID)

	if res.ExitCode() != 1 {
		t.Errorf("exit code = %d, want 1", res.ExitCode())
	}
	cfg, _ := config.Load()
	if cfg.DefaultOrgID != "" {
		t.Errorf("expected no default to be saved, got %q", cfg.DefaultOrgID)
	}
}
