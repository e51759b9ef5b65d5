package config

import (
	"io/fs"
	"strings"

	"github.com/arthur-debert/eolmix/pkg/eol"
	"github.com/arthur-debert/eolmix/pkg/errors"
	"github.com/arthur-debert/eolmix/pkg/manifest"
)

// Config is the resolved eolmix configuration
type Config struct {
	Output    OutputConfig    `koanf:"output"`
	Normalize NormalizeConfig `koanf:"normalize"`
	Manifest  ManifestConfig  `koanf:"manifest"`
	Logging   LoggingConfig   `koanf:"logging"`

	// Source is the user file that was merged, empty if none
	Source string `koanf:"-"`
}

type OutputConfig struct {
	Dir      string `koanf:"dir"`
	FileMode int    `koanf:"file_mode"`
}

type NormalizeConfig struct {
	Target string `koanf:"target"`
	Backup bool   `koanf:"backup"`
}

type ManifestConfig struct {
	Format string `koanf:"format"`
}

type LoggingConfig struct {
	File string `koanf:"file"`
}

// Mode returns the output file mode
func (c *Config) Mode() fs.FileMode {
	return fs.FileMode(c.Output.FileMode).Perm()
}

// Validate checks values that koanf cannot type-check
func (c *Config) Validate() error {
	if c.Output.Dir == "" {
		return errors.New(errors.ErrConfigParse, "output.dir must not be empty")
	}
	if c.Output.FileMode <= 0 || c.Output.FileMode > 0o777 {
		return errors.Newf(errors.ErrConfigParse, "output.file_mode %o is not a permission mode", c.Output.FileMode)
	}
	if !strings.EqualFold(c.Normalize.Target, eol.AutoTarget) {
		if _, err := eol.ParseEnding(c.Normalize.Target); err != nil {
			return errors.Wrap(err, errors.ErrConfigParse, "normalize.target")
		}
	}
	if _, err := manifest.ParseFormat(c.Manifest.Format); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "manifest.format")
	}
	return nil
}
