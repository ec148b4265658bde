package auth

import (
	"errors"

	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/zalando/go-keyring"
)

// KeyringStore keeps tokens in the OS keychain under one service, with the
// environment name as the account.
type KeyringStore struct {
	serviceName string
}

func NewKeyringStore(serviceName string) *KeyringStore {
	if serviceName == "" {
		serviceName = ServiceName
	}
	return &KeyringStore{serviceName: serviceName}
}

func (k *KeyringStore) SetToken(env polar.Environment, token string) error {
	return keyring.Set(k.serviceName, string(env), token)
}

func (k *KeyringStore) GetToken(env polar.Environment) (string, error) {
	token, err := keyring.Get(k.serviceName, string(env))
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrTokenNotFound
	}
	return token, err
}

func (k *KeyringStore) DeleteToken(env polar.Environment) error {
	err := keyring.Delete(k.serviceName, string(env))
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrTokenNotFound
	}
	return err
}
