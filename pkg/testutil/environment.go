package testutil

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/eolmix/pkg/fixtures"
	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // in-memory afero filesystem
	EnvIsolated                  // real filesystem in a temp directory
)

// TestEnvironment is a filesystem with a fixture directory and private
// XDG config and state homes
type TestEnvironment struct {
	FS   afero.Fs
	Dir  string
	Type EnvType

	ConfigHome string
	StateHome  string

	t *testing.T
}

// NewTestEnvironment creates the environment and points XDG_CONFIG_HOME
// and XDG_STATE_HOME at fresh temp directories for the rest of the test.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		Type:       envType,
		ConfigHome: t.TempDir(),
		StateHome:  t.TempDir(),
		t:          t,
	}
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	xdg.Reload()

	switch envType {
	case EnvIsolated:
		env.FS = afero.NewOsFs()
		env.Dir = t.TempDir()
	default:
		env.FS = afero.NewMemMapFs()
		env.Dir = "/fixtures"
		if err := env.FS.MkdirAll(env.Dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", env.Dir, err)
		}
	}
	return env
}

// Path joins name onto the environment's fixture directory
func (env *TestEnvironment) Path(name string) string {
	return filepath.Join(env.Dir, name)
}

// GenerateFixtures writes f1..f9 into Dir
func (env *TestEnvironment) GenerateFixtures() *TestEnvironment {
	env.t.Helper()
	if err := fixtures.Generate(env.FS, env.Dir); err != nil {
		env.t.Fatalf("Failed to generate fixtures: %v", err)
	}
	return env
}

// WriteFile writes content to name under Dir and returns its path
func (env *TestEnvironment) WriteFile(name string, content []byte) string {
	env.t.Helper()
	path := env.Path(name)
	if err := afero.WriteFile(env.FS, path, content, 0644); err != nil {
		env.t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// ReadFile returns the raw content of name under Dir
func (env *TestEnvironment) ReadFile(name string) []byte {
	env.t.Helper()
	data, err := afero.ReadFile(env.FS, env.Path(name))
	if err != nil {
		env.t.Fatalf("Failed to read %s: %v", name, err)
	}
	return data
}
