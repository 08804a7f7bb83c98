package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = "balsub.toml"

// Config holds the settings read from balsub.toml. Command-line flags
// override these values.
type Config struct {
	Alphabet  string        `toml:"alphabet"`
	MaxSubset int           `toml:"max_subset"`
	Format    string        `toml:"format"`
	LogLevel  string        `toml:"log_level"`
	Inputs    []string      `toml:"inputs"`  // literal strings
	Sources   []string      `toml:"sources"` // source specs, see package source
	History   HistoryConfig `toml:"history"`
}

type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

func Default() *Config {
	return &Config{
		Alphabet: "lowercase",
		Format:   "plain",
		LogLevel: "warn",
		History: HistoryConfig{
			Path: defaultHistoryPath(),
		},
	}
}

func defaultHistoryPath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "balsub", "history.db")
	}
	return "balsub-history.db"
}

// Load reads the TOML file at path on top of the defaults. An empty path
// falls back to DefaultFile, which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys in config %s: %s", path, strings.Join(keys, ", "))
	}

	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
