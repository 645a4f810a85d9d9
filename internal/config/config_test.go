package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/naveenspark/fitflow/pkg/domain"
)

const validYAML = `
ui:
  theme: light
goal:
  start: 40
log:
  level: debug
  file: /tmp/fitflow-test.log
  json: true
metrics:
  addr: "127.0.0.1:9464"
`

const catalogYAML = `
- id: hiit
  name: HIIT
  duration: 15
  calories: 200
  exercises: [Sprints, Burpees]
  icon: zap
  gradient: orange-red
- id: core
  name: Core
  duration: 10
  calories: 80
  exercises: [Plank]
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"FITFLOW_THEME", "FITFLOW_GOAL_START", "FITFLOW_LOG_LEVEL",
		"FITFLOW_LOG_FILE", "FITFLOW_METRICS_ADDR", "FITFLOW_CATALOG",
	} {
		t.Setenv(k, "")
	}
}

// TestLoadValid verifies that a well-formed YAML config loads with all fields populated.
func TestLoadValid(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(writeTemp(t, "config.yaml", validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UI.Theme != ThemeLight {
		t.Errorf("ui.theme = %q, want %q", cfg.UI.Theme, ThemeLight)
	}
	if cfg.Goal.Start != 40 {
		t.Errorf("goal.start = %d, want 40", cfg.Goal.Start)
	}
	if cfg.Log.Level != "debug" || !cfg.Log.JSON {
		t.Errorf("log = %+v, want level debug with json", cfg.Log)
	}
	if cfg.Log.File != "/tmp/fitflow-test.log" {
		t.Errorf("log.file = %q", cfg.Log.File)
	}
	if cfg.Metrics.Addr != "127.0.0.1:9464" {
		t.Errorf("metrics.addr = %q", cfg.Metrics.Addr)
	}
}

// TestLoadMissingFileUsesDefaults verifies that no config file is not an error.
func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UI.Theme != ThemeDark {
		t.Errorf("ui.theme = %q, want %q", cfg.UI.Theme, ThemeDark)
	}
	if cfg.Goal.Start != 65 {
		t.Errorf("goal.start = %d, want 65", cfg.Goal.Start)
	}
	if cfg.Metrics.Addr != "" {
		t.Errorf("metrics.addr = %q, want empty", cfg.Metrics.Addr)
	}
}

// TestEnvOverride verifies that FITFLOW_ env vars take precedence over YAML values.
func TestEnvOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("FITFLOW_THEME", "DARK")
	t.Setenv("FITFLOW_GOAL_START", "90")
	t.Setenv("FITFLOW_LOG_LEVEL", "warn")
	t.Setenv("FITFLOW_METRICS_ADDR", ":9999")

	cfg, err := Load(writeTemp(t, "config.yaml", validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UI.Theme != ThemeDark {
		t.Errorf("ui.theme = %q, want %q", cfg.UI.Theme, ThemeDark)
	}
	if cfg.Goal.Start != 90 {
		t.Errorf("goal.start = %d, want 90", cfg.Goal.Start)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want warn", cfg.Log.Level)
	}
	if cfg.Metrics.Addr != ":9999" {
		t.Errorf("metrics.addr = %q, want :9999", cfg.Metrics.Addr)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad theme", "ui:\n  theme: neon\n", "ui.theme"},
		{"goal too high", "goal:\n  start: 120\n", "goal.start"},
		{"goal negative", "goal:\n  start: -1\n", "goal.start"},
		{"malformed", "ui: [\n", "parsing config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			_, err := Load(writeTemp(t, "config.yaml", tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadCatalogDefault(t *testing.T) {
	cfg := Default()
	catalog, err := cfg.LoadCatalog()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog.Len() != len(domain.DefaultWorkouts) {
		t.Errorf("Len() = %d, want %d", catalog.Len(), len(domain.DefaultWorkouts))
	}
}

func TestLoadCatalogFromFile(t *testing.T) {
	cfg := Default()
	cfg.Catalog.Path = writeTemp(t, "catalog.yaml", catalogYAML)

	catalog, err := cfg.LoadCatalog()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", catalog.Len())
	}
	hiit, ok := catalog.Get("hiit")
	if !ok {
		t.Fatal("workout hiit missing")
	}
	if len(hiit.Exercises) != 2 || hiit.Exercises[1] != "Burpees" {
		t.Errorf("hiit.Exercises = %v", hiit.Exercises)
	}
	if hiit.Gradient != "orange-red" {
		t.Errorf("hiit.Gradient = %q", hiit.Gradient)
	}
}

func TestLoadCatalogRejectsEmptyExercises(t *testing.T) {
	cfg := Default()
	cfg.Catalog.Path = writeTemp(t, "catalog.yaml", "- id: bad\n  name: Bad\n  exercises: []\n")

	_, err := cfg.LoadCatalog()
	if err == nil {
		t.Fatal("expected error for empty exercise list")
	}
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	if got := expandHome("~/x.log"); got != filepath.Join(home, "x.log") {
		t.Errorf("expandHome(~/x.log) = %q", got)
	}
	if got := expandHome("/abs/x.log"); got != "/abs/x.log" {
		t.Errorf("expandHome(/abs/x.log) = %q", got)
	}
	if got := expandHome(""); got != "" {
		t.Errorf("expandHome(\"\") = %q", got)
	}
}
