package config

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/lootifier/pkg/errors"
	"github.com/arthur-debert/lootifier/pkg/filesystem"
	"github.com/arthur-debert/lootifier/pkg/logging"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"
)

const (
	// EnvPrefix prefixes every environment override
	EnvPrefix = "LOOTIFIER_"
	// ProjectFileName is looked up in the working directory
	ProjectFileName = "lootifier.toml"
	// UserFileName is looked up under $XDG_CONFIG_HOME/lootifier
	UserFileName = "config.toml"
)

// Config keys
const (
	KeyInput           = "input"
	KeyOutput          = "output"
	KeyMasterlist      = "masterlist"
	KeyClearMasterlist = "clear_masterlist"
	KeyPrint           = "print"
	KeyFormat          = "format"
)

// Config is the resolved lootifier configuration.
type Config struct {
	Input           string `koanf:"input" toml:"input"`
	Output          string `koanf:"output" toml:"output"`
	Masterlist      string `koanf:"masterlist" toml:"masterlist"`
	ClearMasterlist bool   `koanf:"clear_masterlist" toml:"clear_masterlist"`
	Print           bool   `koanf:"print" toml:"print"`
	Format          string `koanf:"format" toml:"format"`
}

// LoadOptions selects the sources Load reads.
type LoadOptions struct {
	// FS holds the config files. Nil means the host filesystem.
	FS afero.Fs
	// WorkDir is searched for lootifier.toml. Empty means the current directory.
	WorkDir string
	// ConfigFile replaces the lootifier.toml lookup and must exist.
	ConfigFile string
	// Overrides are applied last, keyed by config key.
	Overrides map[string]interface{}
}

// Load resolves the configuration from all layers.
func Load(opts LoadOptions) (*Config, error) {
	k, err := newKoanf(opts)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}
	return &cfg, nil
}

func newKoanf(opts LoadOptions) (*koanf.Koanf, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	// 1. Load system defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load user config if it exists
	userPath := UserConfigPath()
	if err := loadOptionalFile(k, fsys, userPath); err != nil {
		return nil, err
	}

	// 3. Load project config
	if opts.ConfigFile != "" {
		if _, err := fsys.Stat(opts.ConfigFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", opts.ConfigFile)
		}
		if err := loadFile(k, fsys, opts.ConfigFile); err != nil {
			return nil, err
		}
	} else {
		dir := opts.WorkDir
		if dir == "" {
			dir = "."
		}
		if err := loadOptionalFile(k, fsys, filepath.Join(dir, ProjectFileName)); err != nil {
			return nil, err
		}
	}

	// 4. Environment
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 5. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply flags")
		}
	}

	logger.Debug().Strs("keys", k.Keys()).Msg("Configuration loaded")
	return k, nil
}

func loadOptionalFile(k *koanf.Koanf, fsys afero.Fs, path string) error {
	if _, err := fsys.Stat(path); err != nil {
		return nil
	}
	return loadFile(k, fsys, path)
}

func loadFile(k *koanf.Koanf, fsys afero.Fs, path string) error {
	if err := k.Load(fileProvider(fsys, path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	logger := logging.GetLogger("config")
	logger.Debug().Str("path", path).Msg("Config file loaded")
	return nil
}

// fileProvider reads host files with koanf's own provider and anything else
// through afero.
func fileProvider(fsys afero.Fs, path string) koanf.Provider {
	if _, ok := fsys.(*afero.OsFs); ok {
		return file.Provider(path)
	}
	return &aferoProvider{fs: fsys, path: path}
}

// UserConfigPath returns the per-user config file location
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, logging.AppDirName, UserFileName)
}
