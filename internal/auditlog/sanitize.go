package auditlog

import (
	"slices"
	"strings"
)

// redactedFlags name the flags whose values never reach the history.
var redactedFlags = []string{"token", "secret"}

const redacted = "<redacted>"

// SanitizeArgs returns a copy of args with secret flag values replaced.
// Both "--flag value" and "--flag=value" spellings are recognized.
func SanitizeArgs(args []string) []string {
	out := slices.Clone(args)
	for i := 0; i < len(out); i++ {
		rest, ok := strings.CutPrefix(out[i], "--")
		if !ok {
			continue
		}
		name, _, inline := strings.Cut(rest, "=")
		if !slices.Contains(redactedFlags, name) {
			continue
		}
		if inline {
			out[i] = "--" + name + "=" + redacted
		} else if i+1 < len(out) {
			i++
			out[i] = redacted
		}
	}
	return out
}
