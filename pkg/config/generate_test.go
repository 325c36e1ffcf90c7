package config

import (
	"testing"

	"github.com/arthur-debert/lootifier/pkg/errors"
	"github.com/arthur-debert/lootifier/pkg/filesystem"
	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigTOML(t *testing.T) {
	cfg := &Config{
		Input:           "in.txt",
		Output:          "out.yaml",
		Masterlist:      "master.yaml",
		ClearMasterlist: true,
		Format:          "text",
	}

	data, err := cfg.TOML()
	require.NoError(t, err)

	var back Config
	require.NoError(t, gotoml.Unmarshal(data, &back))
	assert.Equal(t, *cfg, back)
	assert.Contains(t, string(data), "clear_masterlist = true")
}

func TestDefaultConfigContentParses(t *testing.T) {
	var cfg Config
	require.NoError(t, gotoml.Unmarshal([]byte(DefaultConfigContent()), &cfg))
	assert.Equal(t, "loadorder.txt", cfg.Input)
	assert.Equal(t, "userlist.yaml", cfg.Output)
	assert.Equal(t, "masterlist.yaml", cfg.Masterlist)
}

func TestWriteDefault(t *testing.T) {
	fsys := filesystem.NewMemory()

	require.NoError(t, WriteDefault(fsys, "lootifier.toml", false))
	data, err := afero.ReadFile(fsys, "lootifier.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfigContent(), string(data))

	err = WriteDefault(fsys, "lootifier.toml", false)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	require.NoError(t, afero.WriteFile(fsys, "lootifier.toml", []byte("old"), 0644))
	require.NoError(t, WriteDefault(fsys, "lootifier.toml", true))
	data, err = afero.ReadFile(fsys, "lootifier.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfigContent(), string(data))
}
