package config

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/util"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "default-org").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set validates and applies a value in memory. The caller saves.
	Set func(cfg *Config, value string) error
}

// Keys is the authoritative list of all supported configuration keys.
var Keys = []KeySpec{
	{
		Name:        "default-org",
		Description: "Organization used in production when --org is not specified",
		Get:         func(cfg *Config) string { return cfg.DefaultOrgID },
		Set: func(cfg *Config, v string) error {
			if err := checkOrgID(v); err != nil {
				return err
			}
			cfg.DefaultOrgID = v
			return nil
		},
	},
	{
		Name:        "sandbox-default-org",
		Description: "Organization used with --sandbox when --org is not specified",
		Get:         func(cfg *Config) string { return cfg.SandboxDefaultOrgID },
		Set: func(cfg *Config, v string) error {
			if err := checkOrgID(v); err != nil {
				return err
			}
			cfg.SandboxDefaultOrgID = v
			return nil
		},
	},
	{
		Name:        "output",
		Description: "Default output format (table, json, yaml)",
		Get:         func(cfg *Config) string { return cfg.Output },
		Set: func(cfg *Config, v string) error {
			if v == "" {
				cfg.Output = ""
				return nil
			}
			f, err := output.ParseFormat(v)
			if err != nil {
				return err
			}
			cfg.Output = string(f)
			return nil
		},
	},
}

// checkOrgID accepts an empty value, which clears the key.
func checkOrgID(v string) error {
	if v != "" && !util.IsUUID(v) {
		return fmt.Errorf("%q is not a valid organization ID", v)
	}
	return nil
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := util.NormalizeKey(name)
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	maxLen := 0
	for _, k := range Keys {
		maxLen = max(maxLen, len(k.Name))
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
