package secrets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvSource_FromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-from-env")

	src := NewEnvSource("")
	got, err := src.Get(context.Background(), "openai-api-key")
	require.NoError(t, err)
	assert.Equal(t, "sk-from-env", got)
}

func TestEnvSource_DirTakesPrecedence(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-from-env")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "openai-api-key"), []byte("sk-from-file\n"), 0o600))

	src := NewEnvSource(dir)
	got, err := src.Get(context.Background(), "openai-api-key")
	require.NoError(t, err)
	assert.Equal(t, "sk-from-file", got)
}

func TestEnvSource_DirMissFallsBackToEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-from-env")

	src := NewEnvSource(t.TempDir())
	got, err := src.Get(context.Background(), "openai-api-key")
	require.NoError(t, err)
	assert.Equal(t, "sk-from-env", got)
}

func TestEnvSource_NotFound(t *testing.T) {
	src := NewEnvSource("")
	_, err := src.Get(context.Background(), "no-such-secret")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestEnvSource_EmptyFileIsNotFound(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "openai-api-key"), []byte("  \n"), 0o600))

	src := NewEnvSource(dir)
	_, err := src.Get(context.Background(), "openai-api-key")
	assert.True(t, errors.Is(err, ErrNotFound))
}
