package fixtures

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/eolmix/pkg/errors"
	"github.com/arthur-debert/eolmix/pkg/filesystem"
	"github.com/arthur-debert/eolmix/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Generator writes the fixture table into a directory.
type Generator struct {
	fs     afero.Fs
	dir    string
	mode   fs.FileMode
	logger zerolog.Logger
}

// Option configures a Generator
type Option func(*Generator)

// WithFileMode sets the permission bits of created files
func WithFileMode(mode fs.FileMode) Option {
	return func(g *Generator) {
		g.mode = mode
	}
}

// WithLogger replaces the default component logger
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// NewGenerator returns a generator writing into dir on fsys.
// An empty dir means the current working directory.
func NewGenerator(fsys afero.Fs, dir string, opts ...Option) *Generator {
	if dir == "" {
		dir = "."
	}
	g := &Generator{
		fs:     fsys,
		dir:    dir,
		mode:   filesystem.DefaultFileMode,
		logger: logging.GetLogger("fixtures"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Dir is the output directory
func (g *Generator) Dir() string {
	return g.dir
}

// Generate writes f1..f9, one at a time, and returns the written paths.
// Existing files are overwritten. The first filesystem error aborts the run
// and is returned as is; files written before it are left in place.
func (g *Generator) Generate(ctx context.Context) ([]string, error) {
	done := logging.LogOperationStart(g.logger, "generate")
	defer done()

	written := make([]string, 0, len(Table))
	for _, f := range Table {
		if err := ctx.Err(); err != nil {
			return written, errors.Wrap(err, errors.ErrCancelled, "generation cancelled")
		}

		path := filepath.Join(g.dir, f.Name)
		if err := filesystem.WriteExact(g.fs, path, g.mode, f.Chunks()...); err != nil {
			g.logger.Error().Err(err).Str("file", path).Msg("Failed to write fixture")
			return written, err
		}

		g.logger.Info().
			Str("file", path).
			Int("bytes", len(f.Bytes())).
			Str("style", f.Style().String()).
			Msg("Wrote fixture")
		written = append(written, path)
	}
	return written, nil
}

// Generate writes the fixture table into dir using default options.
func Generate(fsys afero.Fs, dir string) error {
	_, err := NewGenerator(fsys, dir).Generate(context.Background())
	return err
}
