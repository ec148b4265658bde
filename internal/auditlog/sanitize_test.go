package auditlog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSanitizeArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"inline", []string{"--token=polar_oat_x", "--url=https://a"}, []string{"--token=<redacted>", "--url=https://a"}},
		{"separate", []string{"--secret", "whsec", "wh_1"}, []string{"--secret", "<redacted>", "wh_1"}},
		{"trailing flag", []string{"--token"}, []string{"--token"}},
		{"similar name", []string{"--tokens=3"}, []string{"--tokens=3"}},
		{"empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]string(nil), tt.args...)
			got := SanitizeArgs(tt.args)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SanitizeArgs mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(in, tt.args); diff != "" {
				t.Errorf("input modified (-before +after):\n%s", diff)
			}
		})
	}
}
