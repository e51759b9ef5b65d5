package testutil

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/eolmix/pkg/eol"
	"github.com/spf13/afero"
)

// AssertRawContent checks that path holds exactly want. Failures show
// both sides with their line endings made visible.
func AssertRawContent(t *testing.T, fsys afero.Fs, path string, want []byte) bool {
	t.Helper()

	got, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Errorf("Failed to read %s: %v", path, err)
		return false
	}
	if !bytes.Equal(want, got) {
		t.Errorf("%s content differs\nExpected: %s\nActual:   %s",
			path, eol.Visualize(want, false), eol.Visualize(got, false))
		return false
	}
	return true
}

// AssertNoFile checks that nothing exists at path
func AssertNoFile(t *testing.T, fsys afero.Fs, path string) bool {
	t.Helper()

	exists, err := afero.Exists(fsys, path)
	if err != nil {
		t.Errorf("Failed to stat %s: %v", path, err)
		return false
	}
	if exists {
		t.Errorf("Expected %s not to exist", path)
		return false
	}
	return true
}
