package cmd

import (
	"testing"
	"time"
)

func TestHumanAge(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{12 * time.Second, "12s"},
		{5 * time.Minute, "5m"},
		{90 * time.Minute, "1h"},
		{3 * time.Hour, "3h"},
		{49 * time.Hour, "2d"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := humanAge(tt.d); got != tt.want {
				t.Errorf("humanAge(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestAllReady(t *testing.T) {
	tests := []struct {
		ready string
		want  bool
	}{
		{"2/2", true},
		{"1/2", false},
		{"0/1", false},
		{"weird", false},
	}
	for _, tt := range tests {
		if got := allReady(tt.ready); got != tt.want {
			t.Errorf("allReady(%q) = %v, want %v", tt.ready, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("abcde", 4); got != "abcde" {
		t.Errorf("padRight = %q, want untouched when longer", got)
	}
}
