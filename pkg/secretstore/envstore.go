package secretstore

import (
	"context"
	"fmt"
	"os"
)

// EnvStore resolves secrets from environment variables. Intended for local
// development and tests; the secret id is the variable name.
type EnvStore struct{}

// NewEnvStore creates an environment-backed store.
func NewEnvStore() EnvStore {
	return EnvStore{}
}

// GetSecret returns the value of the environment variable named id.
// Unset and empty variables both report ErrSecretNotFound.
func (EnvStore) GetSecret(_ context.Context, id string) (string, error) {
	value, ok := os.LookupEnv(id)
	if !ok || value == "" {
		return "", fmt.Errorf("%w: %s", ErrSecretNotFound, id)
	}
	return value, nil
}
