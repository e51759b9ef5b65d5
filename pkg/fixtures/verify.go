package fixtures

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/eolmix/pkg/eol"
	"github.com/arthur-debert/eolmix/pkg/errors"
	"github.com/arthur-debert/eolmix/pkg/filesystem"
	"github.com/spf13/afero"
)

// Mismatch is a fixture file whose content differs from the table.
type Mismatch struct {
	Name     string
	Path     string
	Expected []byte
	Actual   []byte
}

// String renders both contents with separator glyphs.
func (m Mismatch) String() string {
	return fmt.Sprintf("%s: expected %q, got %q",
		m.Name, eol.Visualize(m.Expected, false), eol.Visualize(m.Actual, false))
}

// Offset is the index of the first differing byte.
func (m Mismatch) Offset() int {
	n := min(len(m.Expected), len(m.Actual))
	for i := 0; i < n; i++ {
		if m.Expected[i] != m.Actual[i] {
			return i
		}
	}
	return n
}

// Verify reads every fixture in dir raw and compares it with the table.
// A missing or unreadable file is an error; differing content is reported
// as a Mismatch.
func Verify(fsys afero.Fs, dir string) ([]Mismatch, error) {
	if dir == "" {
		dir = "."
	}
	var mismatches []Mismatch
	for _, f := range Table {
		path := filepath.Join(dir, f.Name)
		actual, err := filesystem.ReadRaw(fsys, path)
		if err != nil {
			return mismatches, err
		}
		expected := f.Bytes()
		if !bytes.Equal(expected, actual) {
			mismatches = append(mismatches, Mismatch{
				Name:     f.Name,
				Path:     path,
				Expected: expected,
				Actual:   actual,
			})
		}
	}
	return mismatches, nil
}

// MismatchError folds mismatches into one MISMATCH error, or nil if there
// are none.
func MismatchError(mismatches []Mismatch) error {
	if len(mismatches) == 0 {
		return nil
	}
	names := make([]string, len(mismatches))
	for i, m := range mismatches {
		names[i] = m.Name
	}
	return errors.Newf(errors.ErrMismatch, "%d fixture(s) differ: %s",
		len(mismatches), strings.Join(names, ", ")).
		WithDetail("files", names)
}
