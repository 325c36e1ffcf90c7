package config

import (
	"github.com/arthur-debert/lootifier/pkg/errors"
	"github.com/arthur-debert/lootifier/pkg/filesystem"
	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// TOML renders the resolved configuration in config file syntax.
func (c *Config) TOML() ([]byte, error) {
	data, err := gotoml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return data, nil
}

// WriteDefault writes the commented default configuration to path. An
// existing file is only replaced when force is set.
func WriteDefault(fsys afero.Fs, path string, force bool) error {
	if !force {
		exists, err := afero.Exists(fsys, path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrDestinationUnwritable, "cannot stat %s", path)
		}
		if exists {
			return errors.Newf(errors.ErrInvalidInput, "%s already exists, use --force to overwrite", path).
				WithDetail("path", path)
		}
	}
	return filesystem.WriteSink(fsys, path, DefaultConfigContent())
}
