package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/fitflow/internal/session"
	"github.com/naveenspark/fitflow/internal/tui"
	"github.com/naveenspark/fitflow/pkg/domain"
)

var (
	accentColor = lipgloss.Color("#fb923c")
	mutedColor  = lipgloss.Color("245")

	titleStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	boldStyle  = lipgloss.NewStyle().Bold(true)
	descStyle  = lipgloss.NewStyle().Foreground(mutedColor)
)

func printHelp(w io.Writer) {
	title := titleStyle.Render("F I T F L O W")

	quote := lipgloss.NewStyle().
		Foreground(mutedColor).
		Italic(true).
		Render(`"One minute per exercise. Every minute counts."`)

	commands := []struct{ cmd, desc string }{
		{"fitflow", "Open the workout catalog (interactive TUI)"},
		{"fitflow catalog", "Print the workout catalog"},
		{"fitflow stats", "Print monthly statistics and the weekly goal"},
		{"fitflow --version", "Show version"},
		{"fitflow help", "You are here"},
	}

	fmt.Fprintf(w, "\n  %s\n\n  %s\n\n  Commands:\n", title, quote)
	for _, c := range commands {
		fmt.Fprintf(w, "    %s  %s\n", boldStyle.Render(fmt.Sprintf("%-20s", c.cmd)), descStyle.Render(c.desc))
	}
	fmt.Fprintf(w, "\n  %s\n\n", descStyle.Render("Config: ~/.fitflow/config.yaml (FITFLOW_CONFIG)"))
}

func printCatalog(w io.Writer, c *domain.Catalog) {
	fmt.Fprintf(w, "\n  %s\n\n", titleStyle.Render("Workouts"))
	for _, wk := range c.Workouts() {
		fmt.Fprintf(w, "  %s %s  %s\n",
			tui.WorkoutIcon(wk.Icon),
			boldStyle.Render(wk.Name),
			descStyle.Render(fmt.Sprintf("%d min · %d kcal", wk.Duration, wk.Calories)),
		)
		for i, ex := range wk.Exercises {
			fmt.Fprintf(w, "     %s %s\n", descStyle.Render(fmt.Sprintf("%d.", i+1)), ex)
		}
		fmt.Fprintln(w)
	}
}

func printStats(w io.Writer, s domain.MonthlyStats, goal session.WeeklyGoal) {
	rows := []struct {
		label string
		value int
	}{
		{"Calories burned", s.CaloriesBurned},
		{"Workouts", s.Workouts},
		{"Minutes", s.Minutes},
		{"Achievements", s.Achievements},
	}

	fmt.Fprintf(w, "\n  %s\n\n", titleStyle.Render("This month"))
	for _, r := range rows {
		fmt.Fprintf(w, "    %s  %s\n", descStyle.Render(fmt.Sprintf("%-16s", r.label)), boldStyle.Render(fmt.Sprintf("%d", r.value)))
	}
	fmt.Fprintf(w, "\n  %s  %s %s\n\n",
		titleStyle.Render("Weekly goal"),
		boldStyle.Render(goal.String()),
		descStyle.Render(fmt.Sprintf("of %d workouts", domain.WeeklyTarget)),
	)
}
