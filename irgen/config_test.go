package irgen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"kestrelc/irgen"
)

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "irgen.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
implicit-casts = false
max-resolve-rounds = 25
`), 0o644))

	cfg, err := irgen.LoadConfig(path)
	require.NoError(t, err)

	// Unset keys keep their defaults.
	require.False(t, cfg.InsertImplicitCasts)
	require.True(t, cfg.GenerateAnnotations)
	require.True(t, cfg.GenerateFacades)
	require.Equal(t, 25, cfg.MaxResolveRounds)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := irgen.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("implicit-casts = {"), 0o644))

	_, err = irgen.LoadConfig(bad)
	require.Error(t, err)
}
