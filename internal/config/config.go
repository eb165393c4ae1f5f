package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	defaultVolume = 70
	maxVolume     = 100
)

type Config struct {
	MusicFolder string `koanf:"music_folder"` // folder scanned at startup; empty means cwd
	Volume      int    `koanf:"volume"`       // initial volume, 0-100
	SortOnLoad  bool   `koanf:"sort_on_load"` // alphabetical sort when loading a folder

	// Last.fm scrobbling (enables scrobbling when configured)
	Lastfm LastfmConfig `koanf:"lastfm"`
}

// LastfmConfig holds Last.fm scrobbling configuration.
type LastfmConfig struct {
	APIKey     string `koanf:"api_key"`
	APISecret  string `koanf:"api_secret"`
	SessionKey string `koanf:"session_key"`
}

// Load reads configuration from the known config paths, later files winning.
// Missing files are fine; defaults apply to anything unset.
func Load() (*Config, error) {
	return load(getConfigPaths())
}

func load(configPaths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		Volume:     defaultVolume,
		SortOnLoad: true,
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.MusicFolder != "" {
		cfg.MusicFolder = expandPath(cfg.MusicFolder)
	}
	if cfg.Volume < 0 {
		cfg.Volume = 0
	}
	if cfg.Volume > maxVolume {
		cfg.Volume = maxVolume
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/resona/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "resona", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasLastfmConfig returns true if Last.fm scrobbling is configured.
func (c *Config) HasLastfmConfig() bool {
	return c.Lastfm.APIKey != "" && c.Lastfm.APISecret != ""
}
