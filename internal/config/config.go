package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// Source names where the process reads its portfolio snapshot from.
type Source string

const (
	SourceFixture Source = "fixture"
	SourceFile    Source = "file"
	SourceSQLite  Source = "sqlite"
)

func (s Source) Valid() bool {
	switch s {
	case SourceFixture, SourceFile, SourceSQLite:
		return true
	}
	return false
}

// ViewMode selects how much detail the overview shows.
type ViewMode string

const (
	ViewExecutive ViewMode = "executive"
	ViewDetailed  ViewMode = "detailed"
)

func (v ViewMode) Valid() bool {
	return v == ViewExecutive || v == ViewDetailed
}

// Config is the resolved runtime configuration.
type Config struct {
	Source      Source        `toml:"source"`
	DataPath    string        `toml:"data"`
	DBPath      string        `toml:"db"`
	TopN        int           `toml:"top_n"`
	View        ViewMode      `toml:"view"`
	LogUseCases bool          `toml:"log_use_cases"`
	Metrics     MetricsConfig `toml:"metrics"`

	// Path of the config file that was applied, empty when none.
	LoadedFrom string `toml:"-"`
}

type MetricsConfig struct {
	// Textfile is where `horizon metrics` writes by default; empty means stdout.
	Textfile string `toml:"textfile"`
}

// Env variable names read by Load.
const (
	EnvConfig      = "HORIZON_CONFIG"
	EnvSource      = "HORIZON_SOURCE"
	EnvData        = "HORIZON_DATA"
	EnvDB          = "HORIZON_DB"
	EnvTopN        = "HORIZON_TOP_N"
	EnvView        = "HORIZON_VIEW"
	EnvLogUseCases = "HORIZON_LOG_USE_CASES"
)

const defaultTopN = 3

// HomeDir is the per-user directory holding the default config and store.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".horizon"
	}
	return filepath.Join(home, ".horizon")
}

// DefaultConfig serves the bundled fixture with the executive view.
func DefaultConfig() Config {
	return Config{
		Source: SourceFixture,
		DBPath: filepath.Join(HomeDir(), "horizon.db"),
		TopN:   defaultTopN,
		View:   ViewExecutive,
	}
}

// Load resolves configuration from defaults, then a TOML file, then
// HORIZON_* environment variables. path is the explicit --config value; when
// empty, HORIZON_CONFIG is used, then ~/.horizon/config.toml if it exists.
// An explicitly named file that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := true
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		explicit = false
		path = filepath.Join(HomeDir(), "config.toml")
	}

	if err := cfg.applyFile(path, explicit); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyFile(path string, required bool) error {
	// #nosec G304 - path comes from the user
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if required {
				return goerr.Wrap(ErrConfigNotFound, "failed to read config file", goerr.V(ConfigPathKey, path))
			}
			return nil
		}
		return goerr.Wrap(err, "failed to read config file", goerr.V(ConfigPathKey, path))
	}

	if err := toml.Unmarshal(data, c); err != nil {
		return goerr.Wrap(err, "failed to parse TOML config", goerr.V(ConfigPathKey, path))
	}
	c.LoadedFrom = path
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvSource); v != "" {
		c.Source = Source(v)
	}
	if v := os.Getenv(EnvData); v != "" {
		c.DataPath = v
	}
	if v := os.Getenv(EnvDB); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv(EnvTopN); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return goerr.Wrap(err, "invalid integer in environment", goerr.V(EnvKey, EnvTopN), goerr.V(ValueKey, v))
		}
		c.TopN = n
	}
	if v := os.Getenv(EnvView); v != "" {
		c.View = ViewMode(v)
	}
	if v := os.Getenv(EnvLogUseCases); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return goerr.Wrap(err, "invalid boolean in environment", goerr.V(EnvKey, EnvLogUseCases), goerr.V(ValueKey, v))
		}
		c.LogUseCases = b
	}
	return nil
}

// Validate checks the fully resolved configuration, after flags.
func (c *Config) Validate() error {
	if !c.Source.Valid() {
		return goerr.Wrap(ErrInvalidConfig, "unknown snapshot source",
			goerr.V(FieldKey, "source"), goerr.V(ValueKey, string(c.Source)))
	}
	if c.Source == SourceFile && c.DataPath == "" {
		return goerr.Wrap(ErrInvalidConfig, "file source requires a data path",
			goerr.V(FieldKey, "data"))
	}
	if c.Source == SourceSQLite && c.DBPath == "" {
		return goerr.Wrap(ErrInvalidConfig, "sqlite source requires a db path",
			goerr.V(FieldKey, "db"))
	}
	if c.TopN <= 0 {
		return goerr.Wrap(ErrInvalidConfig, "top_n must be positive",
			goerr.V(FieldKey, "top_n"), goerr.V(ValueKey, c.TopN))
	}
	if !c.View.Valid() {
		return goerr.Wrap(ErrInvalidConfig, "unknown view mode",
			goerr.V(FieldKey, "view"), goerr.V(ValueKey, string(c.View)))
	}
	return nil
}
