package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/naveenspark/fitflow/internal/session"
	"github.com/naveenspark/fitflow/pkg/domain"
)

// isolate points HOME and the config path at a temp dir and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("FITFLOW_CONFIG", filepath.Join(dir, "config.yaml"))
	for _, k := range []string{"FITFLOW_THEME", "FITFLOW_GOAL_START", "FITFLOW_LOG_LEVEL", "FITFLOW_LOG_FILE", "FITFLOW_METRICS_ADDR", "FITFLOW_CATALOG"} {
		t.Setenv(k, "")
	}
	return dir
}

func TestRunVersion(t *testing.T) {
	for _, arg := range []string{"version", "--version", "-v"} {
		t.Run(arg, func(t *testing.T) {
			var out bytes.Buffer
			if err := run([]string{arg}, &out); err != nil {
				t.Fatalf("run(%s): %v", arg, err)
			}
			if got := out.String(); got != "fitflow dev\n" {
				t.Errorf("unexpected output %q", got)
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"help"}, &out); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"fitflow catalog", "fitflow stats", "Commands:"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("help missing %q", want)
		}
	}
}

func TestRunCatalog(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	if err := run([]string{"catalog"}, &out); err != nil {
		t.Fatal(err)
	}
	for _, w := range domain.DefaultWorkouts {
		if !strings.Contains(out.String(), w.Name) {
			t.Errorf("catalog output missing %q", w.Name)
		}
	}
	if !strings.Contains(out.String(), "1. Running in place") {
		t.Error("catalog output should number exercises")
	}
}

func TestRunCatalogFromFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "workouts.yaml")
	data := `
- id: hiit
  name: Lunch HIIT
  duration: 15
  calories: 200
  exercises: [Sprints, Burpees]
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FITFLOW_CATALOG", path)

	var out bytes.Buffer
	if err := run([]string{"catalog"}, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Lunch HIIT") {
		t.Errorf("expected custom workout, got %q", out.String())
	}
	if strings.Contains(out.String(), "Cardio Blast") {
		t.Error("custom catalog should replace the built-in one")
	}
}

func TestRunRejectsInvalidCatalog(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "workouts.yaml")
	if err := os.WriteFile(path, []byte("- id: x\n  name: Nothing\n  exercises: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FITFLOW_CATALOG", path)

	err := run([]string{"catalog"}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected an error for a workout without exercises")
	}
	if !domain.IsValidation(err) {
		t.Errorf("expected a validation error, got %v", err)
	}
}

func TestRunStats(t *testing.T) {
	isolate(t)
	t.Setenv("FITFLOW_GOAL_START", "40")

	var out bytes.Buffer
	if err := run([]string{"stats"}, &out); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"2850", "Achievements", "40%"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("stats output missing %q: %q", want, out.String())
		}
	}
}

func TestRunUnknownCommand(t *testing.T) {
	isolate(t)
	err := run([]string{"dance"}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), `"dance"`) {
		t.Errorf("expected unknown command error, got %v", err)
	}
}

func TestRunBadConfig(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("ui:\n  theme: neon\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := run([]string{"stats"}, &bytes.Buffer{}); err == nil {
		t.Error("expected config validation error")
	}
}

func TestPrintStatsGoal(t *testing.T) {
	var out bytes.Buffer
	printStats(&out, domain.MonthlyStats{CaloriesBurned: 1}, session.MaxWeeklyGoal)
	if !strings.Contains(out.String(), "100%") {
		t.Errorf("expected 100%% goal, got %q", out.String())
	}
}
