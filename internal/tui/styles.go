package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/fitflow/internal/config"
)

// Shimmer animation for the FITFLOW wordmark.
type shimmerTickMsg time.Time

func shimmerTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return shimmerTickMsg(t)
	})
}

// palette is one colour theme. The presentation layer owns it; session
// logic never sees it.
type palette struct {
	name     string
	text     lipgloss.Color
	normal   lipgloss.Color
	dim      lipgloss.Color
	meta     lipgloss.Color
	accent   lipgloss.Color
	warn     lipgloss.Color
	track    lipgloss.Color
	border   lipgloss.Color
	waveLow  [3]float64 // wordmark shimmer, darkest
	waveHigh [3]float64 // wordmark shimmer, brightest
}

var (
	darkPalette = palette{
		name:     config.ThemeDark,
		text:     lipgloss.Color("#e4e4ec"),
		normal:   lipgloss.Color("#c0c4d0"),
		dim:      lipgloss.Color("#8890a0"),
		meta:     lipgloss.Color("#505868"),
		accent:   lipgloss.Color("#fb923c"),
		warn:     lipgloss.Color("#facc15"),
		track:    lipgloss.Color("#1e1e2a"),
		border:   lipgloss.Color("#2a2a38"),
		waveLow:  [3]float64{74, 30, 16},   // #4a1e10
		waveHigh: [3]float64{251, 146, 60}, // #fb923c
	}

	lightPalette = palette{
		name:     config.ThemeLight,
		text:     lipgloss.Color("#111118"),
		normal:   lipgloss.Color("#2a2f3a"),
		dim:      lipgloss.Color("#5a6272"),
		meta:     lipgloss.Color("#8890a0"),
		accent:   lipgloss.Color("#ea580c"),
		warn:     lipgloss.Color("#b45309"),
		track:    lipgloss.Color("#e4e4ec"),
		border:   lipgloss.Color("#c0c4d0"),
		waveLow:  [3]float64{253, 186, 116}, // #fdba74
		waveHigh: [3]float64{194, 65, 12},   // #c2410c
	}
)

func paletteFor(name string) palette {
	if name == config.ThemeLight {
		return lightPalette
	}
	return darkPalette
}

func (p palette) toggled() palette {
	if p.name == config.ThemeLight {
		return darkPalette
	}
	return lightPalette
}

// styles are derived from a palette whenever the theme changes.
type styles struct {
	title     lipgloss.Style
	selected  lipgloss.Style
	normal    lipgloss.Style
	dim       lipgloss.Style
	meta      lipgloss.Style
	accent    lipgloss.Style
	clock     lipgloss.Style
	paused    lipgloss.Style
	helpKey   lipgloss.Style
	helpLabel lipgloss.Style
	card      lipgloss.Style
	cursor    lipgloss.Style
}

func newStyles(p palette) styles {
	return styles{
		title:     lipgloss.NewStyle().Foreground(p.text).Bold(true),
		selected:  lipgloss.NewStyle().Foreground(p.text).Bold(true),
		normal:    lipgloss.NewStyle().Foreground(p.normal),
		dim:       lipgloss.NewStyle().Foreground(p.dim),
		meta:      lipgloss.NewStyle().Foreground(p.meta),
		accent:    lipgloss.NewStyle().Foreground(p.accent),
		clock:     lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		paused:    lipgloss.NewStyle().Foreground(p.warn).Bold(true),
		helpKey:   lipgloss.NewStyle().Foreground(p.dim),
		helpLabel: lipgloss.NewStyle().Foreground(p.meta),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 2),
		cursor: lipgloss.NewStyle().Foreground(p.accent).Bold(true),
	}
}

// renderShimmerLogo renders "FITFLOW" as a flowing wave between the
// palette's low and high colours. Letters are spaced apart.
func renderShimmerLogo(frame int, p palette) string {
	const text = "FITFLOW"
	n := len(text)

	var out string

	t := float64(frame)

	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)

		// One smooth wave advancing through the text
		phase := t*0.1 - x*3.0
		phase += math.Sin(t*0.023) * 2.0

		b := math.Sin(phase)*0.5 + 0.5
		b = math.Pow(b, 1.3)

		// Slow breathing tide
		tide := math.Sin(t*0.035) * 0.12
		b = b*0.75 + tide + 0.18

		if b > 1.0 {
			b = 1.0
		} else if b < 0.05 {
			b = 0.05
		}

		lo, hi := p.waveLow, p.waveHigh
		r := clampByte(lo[0] + b*(hi[0]-lo[0]))
		g := clampByte(lo[1] + b*(hi[1]-lo[1]))
		bl := clampByte(lo[2] + b*(hi[2]-lo[2]))

		color := fmt.Sprintf("#%02X%02X%02X", r, g, bl)

		s := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(color))
		out += s.Render(string(text[i]))

		if i < n-1 {
			out += "  "
		}
	}

	return out
}

func clampByte(v float64) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

// Workout gradients: start and end colour of each catalog card.
var gradients = map[string][2]string{
	"orange-red":    {"#f97316", "#ef4444"},
	"blue-purple":   {"#3b82f6", "#a855f7"},
	"green-emerald": {"#22c55e", "#10b981"},
	"pink-rose":     {"#ec4899", "#f43f5e"},
}

// gradientColors returns the two colours for a gradient key, falling back
// to the palette accent.
func gradientColors(key string, p palette) (string, string) {
	if g, ok := gradients[key]; ok {
		return g[0], g[1]
	}
	return string(p.accent), string(p.accent)
}

// workoutIcons maps icon keys to terminal glyphs.
var workoutIcons = map[string]string{
	"zap":      "⚡",
	"dumbbell": "\U0001f3cb",
	"flower":   "✿",
	"wind":     "≋",
}

// WorkoutIcon returns the glyph for an icon key, or a bullet.
func WorkoutIcon(icon string) string {
	if g, ok := workoutIcons[icon]; ok {
		return g
	}
	return "•"
}

func gradientStyle(gradient string, p palette) lipgloss.Style {
	from, _ := gradientColors(gradient, p)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(from)).Bold(true)
}

// newBar builds a progress bar. Bars are rendered statically with ViewAs, so
// the model is never updated.
func newBar(gradient string, p palette, width int) progress.Model {
	from, to := gradientColors(gradient, p)
	bar := progress.New(
		progress.WithGradient(from, to),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(p.track)
	return bar
}

// helpEntry renders a single "key label" pair for help bars.
func (s styles) helpEntry(b key.Binding) string {
	h := b.Help()
	return s.helpKey.Render(h.Key) + " " + s.helpLabel.Render(h.Desc)
}

func (s styles) helpBar(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, s.helpEntry(b))
	}
	return " " + strings.Join(parts, "  ")
}

// helpView renders the key reference overlay.
func helpView(s styles, p palette) string {
	title := lipgloss.NewStyle().
		Foreground(p.accent).
		Bold(true).
		Render("F I T F L O W")

	quote := s.dim.Italic(true).Render(`"One minute per exercise. Every minute counts."`)

	cmdStyle := lipgloss.NewStyle().Foreground(p.text).Bold(true)
	sectionStyle := s.dim.Bold(true)

	sections := []struct {
		name     string
		bindings []key.Binding
	}{
		{"Catalog", []key.Binding{keys.Up, keys.Down, keys.Start, keys.Copy}},
		{"Session", []key.Binding{keys.Pause, keys.Stop}},
		{"Anywhere", []key.Binding{keys.Theme, keys.Help, keys.Quit}},
	}

	commands := []struct{ cmd, desc string }{
		{"fitflow", "Open the workout catalog"},
		{"fitflow catalog", "Print the workout catalog"},
		{"fitflow stats", "Print monthly statistics"},
		{"fitflow --version", "Show version"},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n\n  %s\n\n", title, quote)

	for _, sec := range sections {
		fmt.Fprintf(&b, "  %s\n", sectionStyle.Render(sec.name))
		for _, k := range sec.bindings {
			h := k.Help()
			fmt.Fprintf(&b, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-12s", h.Key)), s.dim.Render(h.Desc))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "  %s\n", sectionStyle.Render("Commands"))
	for _, c := range commands {
		fmt.Fprintf(&b, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-20s", c.cmd)), s.dim.Render(c.desc))
	}
	return b.String()
}
