package testutil

import (
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// TestEnvironment bundles the filesystem and directories a test runs against
type TestEnvironment struct {
	FS         afero.Fs
	ConfigHome string
	StateHome  string

	t *testing.T
}

// NewTestEnvironment creates an isolated environment: an empty in-memory
// filesystem, fresh XDG config and state directories and no color output.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		FS:         afero.NewMemMapFs(),
		ConfigHome: t.TempDir(),
		StateHome:  t.TempDir(),
		t:          t,
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("NO_COLOR", "1")
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	return env
}

// WithFiles writes every path -> content pair into the in-memory filesystem
func (e *TestEnvironment) WithFiles(files map[string]string) *TestEnvironment {
	e.t.Helper()
	for path, content := range files {
		e.WriteFile(path, content)
	}
	return e
}

// WriteFile writes content to path
func (e *TestEnvironment) WriteFile(path, content string) {
	e.t.Helper()
	require.NoError(e.t, afero.WriteFile(e.FS, path, []byte(content), 0644))
}

// ReadFile returns the content of path, failing the test if it is missing
func (e *TestEnvironment) ReadFile(path string) string {
	e.t.Helper()
	data, err := afero.ReadFile(e.FS, path)
	require.NoError(e.t, err)
	return string(data)
}

// Exists reports whether path exists
func (e *TestEnvironment) Exists(path string) bool {
	e.t.Helper()
	exists, err := afero.Exists(e.FS, path)
	require.NoError(e.t, err)
	return exists
}
