// Package auditlog keeps a local history of commands that change state,
// either in the Polar account (webhook endpoints) or on this machine
// (tokens, configuration).
package auditlog

import "time"

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Entry is one recorded command run.
type Entry struct {
	ID           int64     `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Command      string    `json:"command"`
	Args         string    `json:"args,omitempty"`
	Environment  string    `json:"environment"`
	ResourceType string    `json:"resource_type,omitempty"`
	ResourceID   string    `json:"resource_id,omitempty"`
	Outcome      string    `json:"outcome"`
	Detail       string    `json:"detail,omitempty"`
	DurationMs   int64     `json:"duration_ms"`
}

// Filter narrows a history listing. Zero fields match everything.
type Filter struct {
	Command     string
	Environment string
	Limit       int
}
