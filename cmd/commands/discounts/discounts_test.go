package discounts

import (
	"strings"
	"testing"

	"nathanbeddoewebdev/polar/internal/cmdtest"
	"nathanbeddoewebdev/polar/internal/polar"
)

const (
	orgID      = "0b4f8a2e-6a61-4d3c-9a9f-1c7f3c2d5e10"
	discountID = "4c5d6e7f-8a9b-4c0d-9e1f-2a3b4c5d6e7f"
)

func testDiscount() map[string]any {
	return map[string]any{
		"id":                 discountID,
		"name":               "Launch week",
		"code":               "LAUNCH",
		"type":               "percentage",
		"basis_points":       1250,
		"duration":           "repeating",
		"duration_in_months": 3,
		"redemptions_count":  7,
		"max_redemptions":    100,
		"organization_id":    orgID,
		"created_at":         "2024-06-01T09:00:00Z",
	}
}

func TestList_Query(t *testing.T) {
	srv := cmdtest.NewServer(t, map[string]cmdtest.Route{
		"GET /v1/discounts/": cmdtest.Page(1, 1, testDiscount()),
	})

	res := cmdtest.Run(t, NewCommand(), cmdtest.Options{BaseURL: srv.URL}, "list", "--org", orgID, "--query", "launch")

	if res.Err != nil {
		t.Fatalf("unexpected error: %v (stderr: %s)", res.Err, res.Stderr)
	}
	for _, want := range []string{"CODE", "LAUNCH", "12.5%", "3 months", "7/100"} {
		if !strings.Contains(res.Stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, res.Stdout)
		}
	}
	want := "limit=10&organization_id=" + orgID + "&page=1&query=launch"
	if got := srv.Requests()[0].Query; got != want {
		t.Errorf("query = %q, want %q", got, want)
	}
}

func TestGet(t *testing.T) {
	srv := cmdtest.NewServer(t, map[string]cmdtest.Route{
		"GET /v1/discounts/" + discountID: cmdtest.JSON(200, testDiscount()),
	})

	res := cmdtest.Run(t, NewCommand(), cmdtest.Options{BaseURL: srv.URL}, "get", discountID)

	if res.Err != nil {
		t.Fatalf("unexpected error: %v (stderr: %s)", res.Err, res.Stderr)
	}
	for _, want := range []string{"  Code:", "LAUNCH", "  Off:", "12.5%"} {
		if !strings.Contains(res.Stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, res.Stdout)
		}
	}
	if strings.Contains(res.Stdout, "Starts:") {
		t.Errorf("expected no start date when unset, got:\n%s", res.Stdout)
	}
}

func TestGet_InvalidID(t *testing.T) {
	res := cmdtest.Run(t, NewCommand(), cmdtest.Options{}, "get", "LAUNCH")

	if res.Stderr != "Validation error:\n  path.id: must be a valid UUID\n" {
		t.Errorf("unexpected stderr %q", res.Stderr)
	}
}

func TestFormatOff(t *testing.T) {
	bp, amount := 1500, 500
	tests := []struct {
		name string
		in   polar.Discount
		want string
	}{
		{"percentage", polar.Discount{BasisPoints: &bp}, "15%"},
		{"fixed", polar.Discount{Amount: &amount, Currency: "usd"}, "5.00 USD"},
		{"neither", polar.Discount{}, "-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatOff(tt.in); got != tt.want {
				t.Errorf("formatOff = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	one := 1
	if got := formatDuration(polar.Discount{Duration: "repeating", DurationInMonths: &one}); got != "1 month" {
		t.Errorf("formatDuration = %q", got)
	}
	if got := formatDuration(polar.Discount{Duration: "forever"}); got != "forever" {
		t.Errorf("formatDuration = %q", got)
	}
}
