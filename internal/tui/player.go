package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/fitflow/internal/session"
)

// playerView renders the active session. It reads everything from the
// controller and keeps no state of its own.
func playerView(ctrl *session.Controller, st styles, p palette, width int) string {
	w, ok := ctrl.Workout()
	if !ok {
		return " " + st.dim.Render("no active workout")
	}

	var b strings.Builder

	b.WriteString(center(gradientStyle(w.Gradient, p).Render(WorkoutIcon(w.Icon))+" "+st.title.Render(w.Name), width))
	b.WriteString("\n\n")

	pct := ctrl.Progress()
	bar := newBar(w.Gradient, p, barWidth(width))
	b.WriteString(center(bar.ViewAs(pct/100)+" "+st.meta.Render(fmt.Sprintf("%3.0f%%", pct)), width))
	b.WriteString("\n\n")

	clock := st.clock.Padding(0, 1).Render(ctrl.Clock())
	b.WriteString(center(clock, width))
	b.WriteString("\n")

	idx := ctrl.ExerciseIndex()
	b.WriteString(center(st.dim.Render(fmt.Sprintf("Exercise %d of %d", idx+1, len(w.Exercises))), width))
	b.WriteString("\n")
	b.WriteString(center(st.selected.Render(ctrl.CurrentExercise()), width))
	b.WriteString("\n")

	if idx+1 < len(w.Exercises) {
		b.WriteString(center(st.meta.Render("next: "+w.Exercises[idx+1]), width))
	} else {
		b.WriteString(center(st.meta.Render("last exercise"), width))
	}
	b.WriteString("\n")

	if ctrl.State() == session.Paused {
		b.WriteString("\n" + center(st.paused.Render("⏸ paused"), width) + "\n")
	}
	b.WriteString("\n")

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		st.card.Render(st.title.Render(fmt.Sprintf("%d", w.Duration))+"\n"+st.dim.Render("minutes")),
		" ",
		st.card.Render(st.title.Render(fmt.Sprintf("%d", w.Calories))+"\n"+st.dim.Render("kcal")),
		" ",
		st.card.Render(st.title.Render(fmt.Sprintf("%d", len(w.Exercises)))+"\n"+st.dim.Render("exercises")),
	)
	b.WriteString(center(cards, width))
	b.WriteString("\n")

	return b.String()
}
