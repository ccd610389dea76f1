package ui

import (
	"image/color"
	"testing"
	"time"

	"go-archery/internal/component"

	"golang.org/x/image/font/basicfont"
)

func TestScoreHUDLines(t *testing.T) {
	h := NewScoreHUD(20, 30, basicfont.Face7x13, color.White)

	tests := []struct {
		name  string
		score component.Score
		want  []string
	}{
		{"fresh session", component.Score{}, []string{"Score: 0"}},
		{"after shots", component.Score{Total: 75, Shots: 3, Hits: 2, Bullseyes: 1},
			[]string{"Score: 75", "Shots: 3  Hits: 2 (66%)  Bullseyes: 1"}},
		{"negative total", component.Score{Total: -100, Shots: 2},
			[]string{"Score: -100", "Shots: 2  Hits: 0 (0%)  Bullseyes: 0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := h.Lines(tt.score)
			if len(got) != len(tt.want) {
				t.Fatalf("lines = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestStateIndicatorPulseDecays(t *testing.T) {
	i := NewStateIndicator(970, 30, 10)
	i.LastChange = time.Now()

	start := i.CurrentRadius(i.LastChange)
	later := i.CurrentRadius(i.LastChange.Add(2 * time.Second))
	if start <= later {
		t.Errorf("radius did not shrink: %v -> %v", start, later)
	}
	if later-i.Radius > 0.01 {
		t.Errorf("radius after pulse = %v, want about %v", later, i.Radius)
	}
}
