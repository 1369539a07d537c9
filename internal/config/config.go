package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/dori/homekeep/internal/store"
)

const (
	DefaultConfigFileName = "config.toml"

	// DefaultMonthlyAnchorDay is the day-of-month a monthly task is pinned
	// to when neither the task nor its previous due date provides one.
	DefaultMonthlyAnchorDay = 28

	// DefaultRestartDays is how long a seasonal checklist item stays done
	// before it automatically restarts.
	DefaultRestartDays = 30
)

// Config holds the on-disk application configuration
type Config struct {
	DataDir          string `toml:"data_dir"`
	Theme            string `toml:"theme"`
	MonthlyAnchorDay int    `toml:"monthly_anchor_day"`
	RestartDays      int    `toml:"checklist_restart_days"`
}

// DefaultPath returns the default config file path
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(base, "homekeep", DefaultConfigFileName)
}

// LoadOrCreate reads the config at path, writing a default one first if the
// file does not exist yet.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DataDir == "" {
		cfg.DataDir = store.DefaultDataDir()
	}
	if cfg.MonthlyAnchorDay < 1 || cfg.MonthlyAnchorDay > 31 {
		cfg.MonthlyAnchorDay = DefaultMonthlyAnchorDay
	}
	if cfg.RestartDays <= 0 {
		cfg.RestartDays = DefaultRestartDays
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		DataDir:          store.DefaultDataDir(),
		Theme:            "nord",
		MonthlyAnchorDay: DefaultMonthlyAnchorDay,
		RestartDays:      DefaultRestartDays,
	}
}
