package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backend identifiers.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// DefaultStorageKey is the fixed key the board snapshot is stored under.
const DefaultStorageKey = "kanban-storage"

// StorageConfig selects and configures the snapshot persistence backend.
type StorageConfig struct {
	// Backend is either "sqlite" or "redis".
	Backend string `mapstructure:"backend" yaml:"backend"`

	// Path is the SQLite database file.
	Path string `mapstructure:"path" yaml:"path"`

	// Key is the storage key for the board snapshot.
	Key string `mapstructure:"key" yaml:"key"`

	RedisAddr string `mapstructure:"redis_addr" yaml:"redis_addr"`
	RedisDB   int    `mapstructure:"redis_db" yaml:"redis_db"`
}

// BoardConfig holds board seeding preferences.
type BoardConfig struct {
	// SeedMembers are created when no prior snapshot can be loaded.
	SeedMembers []string `mapstructure:"seed_members" yaml:"seed_members"`
}

// LogConfig controls the log file and verbosity.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	// TickSec is how often open task timers refresh.
	TickSec int `mapstructure:"tick_sec" yaml:"tick_sec"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Board   BoardConfig   `mapstructure:"board" yaml:"board"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
}

// ConfigDir returns ~/.config/teamboard, or "." when the home directory
// cannot be resolved.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "teamboard")
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/teamboard/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	dir := ConfigDir()
	return &AppConfig{
		Storage: StorageConfig{
			Backend:   BackendSQLite,
			Path:      filepath.Join(dir, "board.db"),
			Key:       DefaultStorageKey,
			RedisAddr: "localhost:6379",
		},
		Board: BoardConfig{
			SeedMembers: []string{"Alice", "Bob"},
		},
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(dir, "teamboard.log"),
		},
		Display: DisplayConfig{
			TickSec: 1,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := defaultAppConfig()
	v.SetDefault("storage.backend", d.Storage.Backend)
	v.SetDefault("storage.path", d.Storage.Path)
	v.SetDefault("storage.key", d.Storage.Key)
	v.SetDefault("storage.redis_addr", d.Storage.RedisAddr)
	v.SetDefault("storage.redis_db", d.Storage.RedisDB)
	v.SetDefault("board.seed_members", d.Board.SeedMembers)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("display.tick_sec", d.Display.TickSec)
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// A .env file in the working directory is loaded first, and TEAMBOARD_*
// environment variables override file values (TEAMBOARD_STORAGE_BACKEND,
// TEAMBOARD_LOG_LEVEL, ...). If the file does not exist, defaults are used.
func LoadConfig(path string) (*AppConfig, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("teamboard")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the values that cannot be defaulted sensibly.
func (c *AppConfig) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendRedis:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if strings.TrimSpace(c.Storage.Key) == "" {
		return fmt.Errorf("storage key must not be empty")
	}
	if c.Display.TickSec <= 0 {
		c.Display.TickSec = 1
	}
	return nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("storage", cfg.Storage)
	v.Set("board", cfg.Board)
	v.Set("log", cfg.Log)
	v.Set("display", cfg.Display)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
