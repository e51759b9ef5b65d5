package config

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/eolmix/pkg/errors"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "EOLMIX_"

// LoadOptions controls where Load looks for a user file
type LoadOptions struct {
	// Path is an explicit config file. It must exist.
	Path string
	// Dir is searched for eolmix.toml, .eolmix.toml, eolmix.yaml and
	// .eolmix.yaml. Defaults to ".".
	Dir string
	// Overrides are dotted keys applied after everything else.
	Overrides map[string]interface{}
	// FS is where user files are looked up and read. Defaults to the OS
	// filesystem.
	FS afero.Fs
}

// Load builds the configuration from defaults, the user file, the
// environment and explicit overrides, then validates it.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")
	fsys := opts.FS
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	// 1. Load system defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Load user config if it exists
	source, err := userConfigPath(fsys, opts)
	if err != nil {
		return nil, err
	}
	if source != "" {
		if err := k.Load(fileProvider(fsys, source), parserFor(source)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", source)
		}
	}

	// 3. Load env vars
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Load command line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Source = source

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps EOLMIX_OUTPUT_FILE_MODE to output.file_mode: the first
// underscore separates section from key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

// ParseOverrides turns key=value pairs into Load overrides
func ParseOverrides(pairs []string) (map[string]interface{}, error) {
	overrides := make(map[string]interface{}, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "override %q is not key=value", pair)
		}
		overrides[key] = value
	}
	return overrides, nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// fileProvider reads path through fsys; the OS filesystem goes through
// koanf's own file provider.
func fileProvider(fsys afero.Fs, path string) koanf.Provider {
	if _, ok := fsys.(*afero.OsFs); ok {
		return file.Provider(path)
	}
	return &aferoProvider{fs: fsys, path: path}
}

func userConfigPath(fsys afero.Fs, opts LoadOptions) (string, error) {
	if opts.Path != "" {
		if _, err := fsys.Stat(opts.Path); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", opts.Path)
		}
		return opts.Path, nil
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	candidates := []string{
		filepath.Join(dir, "eolmix.toml"),
		filepath.Join(dir, ".eolmix.toml"),
		filepath.Join(dir, "eolmix.yaml"),
		filepath.Join(dir, ".eolmix.yaml"),
		userConfigFile(),
	}
	for _, path := range candidates {
		if _, err := fsys.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// userConfigFile is $XDG_CONFIG_HOME/eolmix/config.toml
func userConfigFile() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, "eolmix", "config.toml")
}
