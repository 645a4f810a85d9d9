package tui

import (
	"strings"
	"testing"

	"github.com/naveenspark/fitflow/internal/config"
)

func TestPaletteFor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{config.ThemeDark, config.ThemeDark},
		{config.ThemeLight, config.ThemeLight},
		{"", config.ThemeDark},
		{"sepia", config.ThemeDark},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := paletteFor(tc.in).name; got != tc.want {
				t.Errorf("paletteFor(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestPaletteToggled(t *testing.T) {
	if got := darkPalette.toggled().name; got != config.ThemeLight {
		t.Errorf("dark toggles to %s", got)
	}
	if got := lightPalette.toggled().name; got != config.ThemeDark {
		t.Errorf("light toggles to %s", got)
	}
}

func TestGradientColorsKnownGradients(t *testing.T) {
	for key, want := range gradients {
		t.Run(key, func(t *testing.T) {
			from, to := gradientColors(key, darkPalette)
			if from != want[0] || to != want[1] {
				t.Errorf("gradientColors(%q) = %s, %s", key, from, to)
			}
		})
	}
}

func TestGradientColorsFallback(t *testing.T) {
	from, to := gradientColors("plaid", lightPalette)
	if from != string(lightPalette.accent) || to != string(lightPalette.accent) {
		t.Errorf("unknown gradient should use the accent, got %s, %s", from, to)
	}
}

func TestWorkoutIcon(t *testing.T) {
	if got := WorkoutIcon("zap"); got != "⚡" {
		t.Errorf("WorkoutIcon(zap) = %q", got)
	}
	if got := WorkoutIcon("unknown"); got != "•" {
		t.Errorf("WorkoutIcon fallback = %q", got)
	}
}

func TestRenderShimmerLogo(t *testing.T) {
	for _, p := range []palette{darkPalette, lightPalette} {
		for _, frame := range []int{0, 17, 500} {
			out := renderShimmerLogo(frame, p)
			for _, r := range "FITFLOW" {
				if !strings.ContainsRune(out, r) {
					t.Errorf("%s frame %d: logo missing %q", p.name, frame, r)
				}
			}
		}
	}
}

func TestClampByte(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{-3, 0},
		{0, 0},
		{127.9, 127},
		{300, 255},
	}
	for _, tc := range tests {
		if got := clampByte(tc.in); got != tc.want {
			t.Errorf("clampByte(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestHelpBar(t *testing.T) {
	st := newStyles(darkPalette)
	out := st.helpBar(keys.Start, keys.Quit)
	for _, want := range []string{"enter", "start", "q", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("help bar missing %q: %q", want, out)
		}
	}
}

func TestBarViewAs(t *testing.T) {
	bar := newBar("orange-red", darkPalette, 20)
	if out := bar.ViewAs(0.5); out == "" {
		t.Error("expected a rendered bar")
	}
}
