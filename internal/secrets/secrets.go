// Package secrets resolves credentials by name, so the image pipeline does
// not care whether a key comes from a mounted secrets directory or the
// environment.
package secrets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrNotFound = errors.New("secret not found")

type Source interface {
	Get(ctx context.Context, name string) (string, error)
}

// EnvSource looks a secret up in a docker-style secrets directory first,
// then falls back to the environment variable derived from the name
// ("openai-api-key" -> OPENAI_API_KEY).
type EnvSource struct {
	Dir string
}

func NewEnvSource(dir string) *EnvSource {
	return &EnvSource{Dir: dir}
}

func (s *EnvSource) Get(_ context.Context, name string) (string, error) {
	if s.Dir != "" {
		data, err := os.ReadFile(filepath.Join(s.Dir, name))
		if err == nil {
			value := strings.TrimSpace(string(data))
			if value == "" {
				return "", fmt.Errorf("secret %q is empty: %w", name, ErrNotFound)
			}
			return value, nil
		}
	}

	key := strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value, nil
	}

	return "", fmt.Errorf("secret %q (env %s): %w", name, key, ErrNotFound)
}
