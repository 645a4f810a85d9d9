package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/fitflow/internal/session"
	"github.com/naveenspark/fitflow/pkg/domain"
)

type copyResultMsg struct{ err error }

// startWorkoutMsg asks the root model to start the selected workout.
type startWorkoutMsg struct {
	workout domain.Workout
}

// catalogModel is the workout picker shown while no session is active.
type catalogModel struct {
	catalog *domain.Catalog
	cursor  int
	width   int
	height  int
}

func newCatalogModel(c *domain.Catalog) catalogModel {
	return catalogModel{catalog: c}
}

// selected returns the workout under the cursor.
func (m catalogModel) selected() (domain.Workout, bool) {
	if m.catalog == nil || m.cursor < 0 || m.cursor >= m.catalog.Len() {
		return domain.Workout{}, false
	}
	return m.catalog.At(m.cursor), true
}

func (m catalogModel) Update(msg tea.Msg) (catalogModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Down):
			if m.catalog != nil && m.cursor < m.catalog.Len()-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Start):
			if w, ok := m.selected(); ok {
				return m, func() tea.Msg { return startWorkoutMsg{workout: w} }
			}
		case key.Matches(msg, keys.Copy):
			if w, ok := m.selected(); ok {
				plan := w.Plan()
				return m, func() tea.Msg {
					err := clipboard.WriteAll(plan)
					return copyResultMsg{err: err}
				}
			}
		}
	}
	return m, nil
}

func (m catalogModel) View(st styles, p palette, goal session.WeeklyGoal, stats domain.MonthlyStats) string {
	var b strings.Builder

	// Weekly goal card
	bar := newBar("", p, barWidth(m.width)-6)
	goalCard := st.card.Render(
		st.title.Render("Weekly progress") + "  " + st.accent.Bold(true).Render(goal.String()) + "\n" +
			bar.ViewAs(goal.Percent()/100) + "\n" +
			st.dim.Render(fmt.Sprintf("Goal: %d workouts a week", domain.WeeklyTarget)),
	)
	b.WriteString(center(goalCard, m.width))
	b.WriteString("\n\n")

	b.WriteString(" " + st.dim.Bold(true).Render("Choose a workout") + "\n")
	if m.catalog == nil || m.catalog.Len() == 0 {
		b.WriteString(" " + st.dim.Render("no workouts") + "\n")
	} else {
		nameWidth := 24
		for i, w := range m.catalog.Workouts() {
			cursor := "  "
			name := st.normal.Render(fmt.Sprintf("%-*s", nameWidth, truncStr(w.Name, nameWidth)))
			if i == m.cursor {
				cursor = st.cursor.Render("> ")
				name = st.selected.Render(fmt.Sprintf("%-*s", nameWidth, truncStr(w.Name, nameWidth)))
			}
			icon := gradientStyle(w.Gradient, p).Render(WorkoutIcon(w.Icon))
			meta := st.meta.Render(fmt.Sprintf("%3d min · %3d kcal · %d exercises", w.Duration, w.Calories, len(w.Exercises)))
			fmt.Fprintf(&b, " %s%s %s %s\n", cursor, icon, name, meta)
		}
	}
	b.WriteString("\n")

	b.WriteString(" " + st.dim.Bold(true).Render("This month") + "\n")
	cells := []struct {
		value string
		label string
	}{
		{thousands(stats.CaloriesBurned), "calories burned"},
		{thousands(stats.Workouts), "workouts"},
		{thousands(stats.Minutes), "minutes"},
		{thousands(stats.Achievements), "achievements"},
	}
	for i := 0; i < len(cells); i += 2 {
		left := st.title.Render(fmt.Sprintf("%6s", cells[i].value)) + " " + st.dim.Render(fmt.Sprintf("%-16s", cells[i].label))
		right := st.title.Render(fmt.Sprintf("%6s", cells[i+1].value)) + " " + st.dim.Render(cells[i+1].label)
		b.WriteString("  " + left + "  " + right + "\n")
	}

	return b.String()
}
