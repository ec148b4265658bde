package benefitgrants

import (
	"strings"
	"testing"
	"time"

	"nathanbeddoewebdev/polar/internal/cmdtest"
	"nathanbeddoewebdev/polar/internal/polar"
)

const (
	benefitID  = "7d1e2f30-4a5b-4c6d-8e9f-0a1b2c3d4e5f"
	customerID = "c2a4e6f8-1b3d-4f5a-8c7e-9d0b1a2c3e4f"
)

func testGrant() map[string]any {
	return map[string]any{
		"id":          "8e9f0a1b-2c3d-4e5f-8a7b-6c5d4e3f2a1b",
		"benefit_id":  benefitID,
		"customer_id": customerID,
		"is_granted":  true,
		"is_revoked":  false,
		"granted_at":  "2024-06-02T09:00:00Z",
		"created_at":  "2024-06-01T09:00:00Z",
	}
}

func TestList(t *testing.T) {
	srv := cmdtest.NewServer(t, map[string]cmdtest.Route{
		"GET /v1/benefits/" + benefitID + "/grants": cmdtest.Page(1, 1, testGrant()),
	})

	res := cmdtest.Run(t, NewCommand(), cmdtest.Options{BaseURL: srv.URL}, "list", "--benefit", benefitID, "--granted")

	if res.Err != nil {
		t.Fatalf("unexpected error: %v (stderr: %s)", res.Err, res.Stderr)
	}
	for _, want := range []string{"STATUS", customerID, "granted", "2024-06-02"} {
		if !strings.Contains(res.Stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, res.Stdout)
		}
	}
	if got := srv.Requests()[0].Query; got != "is_granted=true&limit=10&page=1" {
		t.Errorf("query = %q", got)
	}
}

func TestList_NeedsNoOrganization(t *testing.T) {
	srv := cmdtest.NewServer(t, map[string]cmdtest.Route{
		"GET /v1/benefits/" + benefitID + "/grants": cmdtest.Page(0, 1),
	})

	res := cmdtest.Run(t, NewCommand(), cmdtest.Options{BaseURL: srv.URL}, "list", "--benefit", benefitID)

	if res.Err != nil {
		t.Fatalf("unexpected error: %v (stderr: %s)", res.Err, res.Stderr)
	}
	if !strings.Contains(res.Stdout, "No grants found.") {
		t.Errorf("expected empty message, got:\n%s", res.Stdout)
	}
}

func TestList_RequiresBenefit(t *testing.T) {
	res := cmdtest.Run(t, NewCommand(), cmdtest.Options{}, "list")

	if res.ExitCode() != 2 {
		t.Errorf("exit code = %d, want 2", res.ExitCode())
	}
}

func TestList_InvalidBenefit(t *testing.T) {
	res := cmdtest.Run(t, NewCommand(), cmdtest.Options{}, "list", "--benefit", "ben_1")

	if res.Stderr != "Validation error:\n  path.id: must be a valid UUID\n" {
		t.Errorf("unexpected stderr %q", res.Stderr)
	}
}

func TestGrantStatus(t *testing.T) {
	at := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		in     polar.BenefitGrant
		status string
		since  string
	}{
		{"granted", polar.BenefitGrant{IsGranted: true, GrantedAt: &at}, "granted", "2024-07-01"},
		{"revoked", polar.BenefitGrant{IsGranted: true, IsRevoked: true, RevokedAt: &at}, "revoked", "2024-07-01"},
		{"pending", polar.BenefitGrant{}, "pending", "-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := grantStatus(tt.in); got != tt.status {
				t.Errorf("grantStatus = %q, want %q", got, tt.status)
			}
			if got := grantSince(tt.in); got != tt.since {
				t.Errorf("grantSince = %q, want %q", got, tt.since)
			}
		})
	}
}
