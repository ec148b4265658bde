// Package auth stores and resolves Polar organization access tokens.
package auth

import (
	"errors"
	"os"
	"strings"

	"nathanbeddoewebdev/polar/internal/polar"
)

const (
	ServiceName = "polar"

	// TokenEnvVar overrides any stored token when set.
	TokenEnvVar = "POLAR_ACCESS_TOKEN"
)

var ErrTokenNotFound = errors.New("auth token not found")

// Store persists one token per environment.
type Store interface {
	SetToken(env polar.Environment, token string) error
	GetToken(env polar.Environment) (string, error)
	DeleteToken(env polar.Environment) error
}

// DefaultStore returns the standard auth store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

// Source says where a resolved token came from.
type Source string

const (
	SourceEnv      Source = "environment"
	SourceKeychain Source = "keychain"
)

// ResolveToken returns the token for env, preferring TokenEnvVar over the
// store. ErrTokenNotFound is returned when neither has one.
func ResolveToken(store Store, env polar.Environment) (string, Source, error) {
	if tok := strings.TrimSpace(os.Getenv(TokenEnvVar)); tok != "" {
		return tok, SourceEnv, nil
	}
	tok, err := store.GetToken(env)
	if err != nil {
		return "", "", err
	}
	return tok, SourceKeychain, nil
}

// MaskToken hides all but the last four characters of a token.
func MaskToken(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", 8) + token[len(token)-4:]
}
