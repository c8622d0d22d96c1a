package profile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twilight/weaver/internal/domain/entity"
)

func TestGenerateID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, err := GenerateID()
		require.NoError(t, err)
		assert.True(t, entity.IsGeneratedProfileID(id), "id %q", id)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestResolve_CreatesAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	root := filepath.Join(t.TempDir(), ".weaver")
	r := NewResolver(root)

	first, err := r.Resolve(ctx)
	require.NoError(t, err)
	assert.True(t, entity.IsGeneratedProfileID(first.ID))
	assert.Equal(t, filepath.Join(root, first.ID+".default"), first.Dir)

	data, err := os.ReadFile(r.ConfigFile())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[Settings]")
	assert.Contains(t, string(data), "profile_name = "+first.ID)

	for i := 0; i < 3; i++ {
		again, err := r.Resolve(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestResolve_ReadsExistingFile(t *testing.T) {
	root := t.TempDir()
	content := "[Settings]\nprofile_name = k3j9x0qa\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "config.ini"), []byte(content), 0o600))

	p, err := NewResolver(root).Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "k3j9x0qa", p.ID)
}

func TestResolve_MissingKeyPreservesOtherSections(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "config.ini")
	require.NoError(t, os.WriteFile(path, []byte("[Window]\nwidth = 1200\n"), 0o600))

	r := NewResolver(root)
	r.generate = func() (string, error) { return "fixed123", nil }

	p, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fixed123", p.ID)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[Window]")
	assert.Contains(t, string(data), "width")
	assert.Contains(t, string(data), "profile_name = fixed123")
}

func TestResolve_InvalidIDDegrades(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "config.ini"), []byte("[Settings]\nprofile_name = ../etc\n"), 0o600))

	p, err := NewResolver(root).Resolve(context.Background())
	assert.True(t, p.IsPlaceholder())

	var cfgErr *entity.ConfigIOError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "validate", cfgErr.Op)
}

func TestResolve_UnwritableRootDegrades(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	parent := t.TempDir()
	require.NoError(t, os.Chmod(parent, 0o500))
	t.Cleanup(func() { _ = os.Chmod(parent, 0o700) })

	p, err := NewResolver(filepath.Join(parent, ".weaver")).Resolve(context.Background())
	assert.True(t, p.IsPlaceholder())

	var cfgErr *entity.ConfigIOError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "write", cfgErr.Op)
}

func TestResolve_RootIsAFileDegrades(t *testing.T) {
	root := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0o600))

	p, err := NewResolver(root).Resolve(context.Background())
	assert.True(t, p.IsPlaceholder())

	var cfgErr *entity.ConfigIOError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestResolve_GeneratorFailure(t *testing.T) {
	r := NewResolver(t.TempDir())
	r.generate = func() (string, error) { return "", errors.New("no entropy") }

	p, err := r.Resolve(context.Background())
	assert.True(t, p.IsPlaceholder())

	var cfgErr *entity.ConfigIOError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "generate", cfgErr.Op)
}
