package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/naveenspark/fitflow/pkg/domain"
)

type Config struct {
	UI      UIConfig      `yaml:"ui"`
	Goal    GoalConfig    `yaml:"goal"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
	Catalog CatalogConfig `yaml:"catalog"`
}

type UIConfig struct {
	Theme string `yaml:"theme"`
}

type GoalConfig struct {
	Start int `yaml:"start"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
	JSON  bool   `yaml:"json"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

type CatalogConfig struct {
	Path string `yaml:"path"`
}

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Dir returns ~/.fitflow.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".fitflow"), nil
}

// DefaultPath returns the config path: FITFLOW_CONFIG or ~/.fitflow/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv("FITFLOW_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{
		UI:   UIConfig{Theme: ThemeDark},
		Goal: GoalConfig{Start: 65},
		Log:  LogConfig{Level: "info"},
	}
	if dir, err := Dir(); err == nil {
		cfg.Log.File = filepath.Join(dir, "fitflow.log")
	}
	return cfg
}

// Load reads config from a YAML file on top of the defaults, then applies
// environment variable overrides. A missing file is not an error.
//
//	FITFLOW_THEME, FITFLOW_GOAL_START, FITFLOW_LOG_LEVEL, FITFLOW_LOG_FILE,
//	FITFLOW_METRICS_ADDR, FITFLOW_CATALOG
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)
	cfg.Log.File = expandHome(cfg.Log.File)
	cfg.Catalog.Path = expandHome(cfg.Catalog.Path)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FITFLOW_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("FITFLOW_GOAL_START"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Goal.Start = n
		}
	}
	if v := os.Getenv("FITFLOW_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("FITFLOW_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("FITFLOW_METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}
	if v := os.Getenv("FITFLOW_CATALOG"); v != "" {
		cfg.Catalog.Path = v
	}
}

func (c *Config) validate() error {
	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
	if c.UI.Theme != ThemeDark && c.UI.Theme != ThemeLight {
		return fmt.Errorf("ui.theme must be %q or %q, got %q", ThemeDark, ThemeLight, c.UI.Theme)
	}
	if c.Goal.Start < 0 || c.Goal.Start > 100 {
		return fmt.Errorf("goal.start must be within 0..100, got %d", c.Goal.Start)
	}
	return nil
}

// LoadCatalog returns the configured workout catalog: the YAML list at
// Catalog.Path when set, otherwise the built-in one.
func (c *Config) LoadCatalog() (*domain.Catalog, error) {
	if c.Catalog.Path == "" {
		return domain.DefaultCatalog(), nil
	}
	data, err := os.ReadFile(c.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	var workouts []domain.Workout
	if err := yaml.Unmarshal(data, &workouts); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	catalog, err := domain.NewCatalog(workouts)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", c.Catalog.Path, err)
	}
	return catalog, nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
