package files

import (
	"strings"
	"testing"

	"nathanbeddoewebdev/polar/internal/cmdtest"
)

const orgID = "0b4f8a2e-6a61-4d3c-9a9f-1c7f3c2d5e10"

func TestList(t *testing.T) {
	srv := cmdtest.NewServer(t, map[string]cmdtest.Route{
		"GET /v1/files/": cmdtest.Page(1, 1, map[string]any{
			"id":              "4b5c6d7e-8f9a-4b0c-9d1e-2f3a4b5c6d7e",
			"name":            "ebook.pdf",
			"path":            "org/ebook.pdf",
			"mime_type":       "application/pdf",
			"size":            2621440,
			"service":         "downloadable",
			"is_uploaded":     true,
			"organization_id": orgID,
			"created_at":      "2024-06-01T09:00:00Z",
		}),
	})

	res := cmdtest.Run(t, NewCommand(), cmdtest.Options{BaseURL: srv.URL}, "list", "--org", orgID, "--page", "2", "--limit", "5")

	if res.Err != nil {
		t.Fatalf("unexpected error: %v (stderr: %s)", res.Err, res.Stderr)
	}
	for _, want := range []string{"SIZE", "ebook.pdf", "application/pdf", "2.5 MiB", "downloadable"} {
		if !strings.Contains(res.Stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, res.Stdout)
		}
	}
	want := "limit=5&organization_id=" + orgID + "&page=2"
	if got := srv.Requests()[0].Query; got != want {
		t.Errorf("query = %q, want %q", got, want)
	}
}

func TestList_LimitTooLarge(t *testing.T) {
	res := cmdtest.Run(t, NewCommand(), cmdtest.Options{}, "list", "--org", orgID, "--limit", "500")

	if res.Stderr != "Validation error:\n  query.limit: must be between 1 and 100\n" {
		t.Errorf("unexpected stderr %q", res.Stderr)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1536, "1.5 KiB"},
		{-1, "-"},
	}
	for _, tt := range tests {
		if got := formatSize(tt.in); got != tt.want {
			t.Errorf("formatSize(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
