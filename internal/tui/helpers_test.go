package tui

import (
	"strings"
	"testing"
)

func TestTruncStr(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"Cardio Blast", 20, "Cardio Blast"},
		{"Cardio Blast", 12, "Cardio Blast"},
		{"Cardio Blast", 7, "Cardio…"},
		{"Растяжка", 4, "Рас…"},
		{"abc", 0, ""},
	}
	for _, tc := range tests {
		if got := truncStr(tc.in, tc.maxLen); got != tc.want {
			t.Errorf("truncStr(%q, %d) = %q, want %q", tc.in, tc.maxLen, got, tc.want)
		}
	}
}

func TestTruncateToHeight(t *testing.T) {
	in := "a\nb\nc\nd\n"
	if got := truncateToHeight(in, 2); got != "a\nb\n" {
		t.Errorf("got %q", got)
	}
	if got := truncateToHeight(in, 0); got != in {
		t.Errorf("maxLines 0 should not truncate, got %q", got)
	}
	if got := truncateToHeight(in, 10); got != in {
		t.Errorf("short input should be unchanged, got %q", got)
	}
}

func TestCenter(t *testing.T) {
	got := center("ab\nabcd", 10)
	lines := strings.Split(got, "\n")
	if lines[0] != "    ab" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "   abcd" {
		t.Errorf("line 1 = %q", lines[1])
	}
	if got := center("too wide", 4); got != "too wide" {
		t.Errorf("wide line should not be padded, got %q", got)
	}
}

func TestThousands(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{12, "12"},
		{540, "540"},
		{2850, "2,850"},
		{1234567, "1,234,567"},
		{-2850, "-2,850"},
	}
	for _, tc := range tests {
		if got := thousands(tc.in); got != tc.want {
			t.Errorf("thousands(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBarWidth(t *testing.T) {
	tests := []struct{ term, want int }{
		{0, 20},
		{40, 28},
		{200, 60},
	}
	for _, tc := range tests {
		if got := barWidth(tc.term); got != tc.want {
			t.Errorf("barWidth(%d) = %d, want %d", tc.term, got, tc.want)
		}
	}
}
