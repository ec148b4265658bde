package licensekeys

import (
	"strings"
	"testing"

	"nathanbeddoewebdev/polar/internal/cmdtest"
	"nathanbeddoewebdev/polar/internal/output"
)

const (
	orgID     = "0b4f8a2e-6a61-4d3c-9a9f-1c7f3c2d5e10"
	keyID     = "5e6f7a8b-9c0d-4e1f-8a2b-3c4d5e6f7a8b"
	benefitID = "7d1e2f30-4a5b-4c6d-8e9f-0a1b2c3d4e5f"
)

func testKey() map[string]any {
	return map[string]any{
		"id":              keyID,
		"key":             "POLAR-1234-5678-ABCD",
		"display_key":     "****-ABCD",
		"status":          "granted",
		"customer_id":     "c2a4e6f8-1b3d-4f5a-8c7e-9d0b1a2c3e4f",
		"benefit_id":      benefitID,
		"usage":           3,
		"limit_usage":     10,
		"validations":     42,
		"organization_id": orgID,
		"created_at":      "2024-06-01T09:00:00Z",
	}
}

func TestList_BenefitFilter(t *testing.T) {
	srv := cmdtest.NewServer(t, map[string]cmdtest.Route{
		"GET /v1/license-keys/": cmdtest.Page(1, 1, testKey()),
	})

	res := cmdtest.Run(t, NewCommand(), cmdtest.Options{BaseURL: srv.URL}, "list", "--org", orgID, "--benefit", benefitID)

	if res.Err != nil {
		t.Fatalf("unexpected error: %v (stderr: %s)", res.Err, res.Stderr)
	}
	for _, want := range []string{"KEY", "****-ABCD", "granted", "3/10"} {
		if !strings.Contains(res.Stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, res.Stdout)
		}
	}
	want := "benefit_id=" + benefitID + "&limit=10&organization_id=" + orgID + "&page=1"
	if got := srv.Requests()[0].Query; got != want {
		t.Errorf("query = %q, want %q", got, want)
	}
}

func TestGet_NeverPrintsFullKey(t *testing.T) {
	srv := cmdtest.NewServer(t, map[string]cmdtest.Route{
		"GET /v1/license-keys/" + keyID: cmdtest.JSON(200, testKey()),
	})

	for _, format := range []output.Format{output.Table, output.JSON, output.YAML} {
		t.Run(string(format), func(t *testing.T) {
			res := cmdtest.Run(t, NewCommand(), cmdtest.Options{BaseURL: srv.URL, Output: format}, "get", keyID)

			if res.Err != nil {
				t.Fatalf("unexpected error: %v (stderr: %s)", res.Err, res.Stderr)
			}
			if strings.Contains(res.Stdout, "POLAR-1234-5678-ABCD") {
				t.Errorf("full key leaked into output:\n%s", res.Stdout)
			}
			if !strings.Contains(res.Stdout, "****-ABCD") {
				t.Errorf("expected the masked key in output:\n%s", res.Stdout)
			}
		})
	}
}

func TestGet_Detail(t *testing.T) {
	srv := cmdtest.NewServer(t, map[string]cmdtest.Route{
		"GET /v1/license-keys/" + keyID: cmdtest.JSON(200, testKey()),
	})

	res := cmdtest.Run(t, NewCommand(), cmdtest.Options{BaseURL: srv.URL}, "get", keyID)

	for _, want := range []string{"  Validations:", "42", "  Benefit:", benefitID} {
		if !strings.Contains(res.Stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, res.Stdout)
		}
	}
	if strings.Contains(res.Stdout, "Expires:") {
		t.Errorf("expected no expiry for a perpetual key, got:\n%s", res.Stdout)
	}
}
