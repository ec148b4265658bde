package auth

import "nathanbeddoewebdev/polar/internal/polar"

// MockStore is an in-memory auth store for testing.
type MockStore struct {
	tokens map[polar.Environment]string
}

func NewMockStore() *MockStore {
	return &MockStore{tokens: make(map[polar.Environment]string)}
}

func (m *MockStore) SetToken(env polar.Environment, token string) error {
	m.tokens[env] = token
	return nil
}

func (m *MockStore) GetToken(env polar.Environment) (string, error) {
	token, ok := m.tokens[env]
	if !ok {
		return "", ErrTokenNotFound
	}
	return token, nil
}

func (m *MockStore) DeleteToken(env polar.Environment) error {
	if _, ok := m.tokens[env]; !ok {
		return ErrTokenNotFound
	}
	delete(m.tokens, env)
	return nil
}
