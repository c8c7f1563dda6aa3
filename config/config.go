package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kirsle/configdir"
	"github.com/pelletier/go-toml/v2"
)

const Name = "aquakit"

// Config holds the persisted per-user settings: the appearance override,
// saved column layouts per table, and saved store connections.
type Config struct {
	filepath string
	Settings Settings
}

type Settings struct {
	// Appearance overrides the detected appearance: "light", "dark" or
	// empty for automatic.
	Appearance string `toml:"appearance"`
	// Tables maps a table identifier to its saved column widths.
	Tables map[string][]int `toml:"tables"`
	// Stores are the saved object store connections.
	Stores []StoreConfig `toml:"stores"`
}

// New loads the settings from the per-user config directory, creating the
// directory if needed. A store configured through flags or environment is
// prepended to the saved ones.
func New() (*Config, error) {
	configPath := configdir.LocalConfig(Name)
	err := configdir.MakePath(configPath)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		filepath: filepath.Join(configPath, "settings.toml"),
		Settings: Settings{Tables: make(map[string][]int)},
	}

	storeCfg, err := NewStoreConfig()
	if err == nil && storeCfg.Name != "" {
		cfg.Settings.Stores = append(cfg.Settings.Stores, storeCfg)
	}

	err = cfg.load()
	if err != nil {
		return cfg, err
	}

	return cfg, nil
}

// NewAt loads settings from an explicit file path. Useful for portable
// installs and tests; New is the variant for the standard location.
func NewAt(path string) (*Config, error) {
	cfg := &Config{
		filepath: path,
		Settings: Settings{Tables: make(map[string][]int)},
	}
	err := cfg.load()
	if err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) load() error {
	data, err := os.ReadFile(c.filepath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	var settings Settings
	err = toml.Unmarshal(data, &settings)
	if err != nil {
		return err
	}

	if settings.Tables == nil {
		settings.Tables = make(map[string][]int)
	}
	settings.Stores = append(c.Settings.Stores, settings.Stores...)
	c.Settings = settings

	return nil
}

// Save writes the settings back to the config directory.
func (c *Config) Save() error {
	data, err := toml.Marshal(c.Settings)
	if err != nil {
		return err
	}
	return os.WriteFile(c.filepath, data, 0o644)
}

// ColumnWidths returns the saved column widths for a table, or nil.
func (c *Config) ColumnWidths(table string) []int {
	return c.Settings.Tables[table]
}

// SetColumnWidths records the column widths for a table.
func (c *Config) SetColumnWidths(table string, widths []int) {
	if c.Settings.Tables == nil {
		c.Settings.Tables = make(map[string][]int)
	}
	c.Settings.Tables[table] = widths
}
