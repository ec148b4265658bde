package customfields

import (
	"strings"
	"testing"

	"nathanbeddoewebdev/polar/internal/cmdtest"
)

const (
	orgID   = "0b4f8a2e-6a61-4d3c-9a9f-1c7f3c2d5e10"
	fieldID = "0d1e2f3a-4b5c-4d6e-9f7a-8b9c0d1e2f3a"
	otherID = "1e2f3a4b-5c6d-4e7f-8a9b-0c1d2e3f4a5b"
)

func testField(id, slug string) map[string]any {
	return map[string]any{
		"id":              id,
		"slug":            slug,
		"name":            "Company size",
		"type":            "select",
		"organization_id": orgID,
		"created_at":      "2024-06-01T09:00:00Z",
	}
}

func TestList_TypeFilter(t *testing.T) {
	srv := cmdtest.NewServer(t, map[string]cmdtest.Route{
		"GET /v1/custom-fields/": cmdtest.Page(1, 1, testField(fieldID, "company_size")),
	})

	res := cmdtest.Run(t, NewCommand(), cmdtest.Options{BaseURL: srv.URL}, "list", "--org", orgID, "--type", "select")

	if res.Err != nil {
		t.Fatalf("unexpected error: %v (stderr: %s)", res.Err, res.Stderr)
	}
	for _, want := range []string{"SLUG", "company_size", "Company size", "select"} {
		if !strings.Contains(res.Stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, res.Stdout)
		}
	}
	want := "limit=10&organization_id=" + orgID + "&page=1&type=select"
	if got := srv.Requests()[0].Query; got != want {
		t.Errorf("query = %q, want %q", got, want)
	}
}

func TestList_InvalidType(t *testing.T) {
	res := cmdtest.Run(t, NewCommand(), cmdtest.Options{}, "list", "--org", orgID, "--type", "dropdown")

	want := "Validation error:\n  query.type: must be one of text, number, date, checkbox, select\n"
	if res.Stderr != want {
		t.Errorf("unexpected stderr %q", res.Stderr)
	}
}

func TestGet_SeveralIDsUseTable(t *testing.T) {
	srv := cmdtest.NewServer(t, map[string]cmdtest.Route{
		"GET /v1/custom-fields/" + fieldID: cmdtest.JSON(200, testField(fieldID, "company_size")),
		"GET /v1/custom-fields/" + otherID: cmdtest.JSON(200, testField(otherID, "vat_number")),
	})

	res := cmdtest.Run(t, NewCommand(), cmdtest.Options{BaseURL: srv.URL}, "get", fieldID, otherID)

	if res.Err != nil {
		t.Fatalf("unexpected error: %v (stderr: %s)", res.Err, res.Stderr)
	}
	if !strings.Contains(res.Stdout, "SLUG") {
		t.Errorf("expected a table for several IDs, got:\n%s", res.Stdout)
	}
	first, second := strings.Index(res.Stdout, "company_size"), strings.Index(res.Stdout, "vat_number")
	if first < 0 || second < 0 || first > second {
		t.Errorf("expected fields in argument order, got:\n%s", res.Stdout)
	}
}
