// internal/ui/score_hud.go
package ui

import (
	"fmt"
	"image/color"

	"go-archery/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ScoreHUD показывает счёт и статистику сессии.
type ScoreHUD struct {
	X, Y      int
	fontFace  font.Face
	textColor color.Color
}

func NewScoreHUD(x, y int, fontFace font.Face, textColor color.Color) *ScoreHUD {
	return &ScoreHUD{X: x, Y: y, fontFace: fontFace, textColor: textColor}
}

// Lines — строки HUD для счёта.
func (h *ScoreHUD) Lines(score component.Score) []string {
	lines := []string{fmt.Sprintf("Score: %d", score.Total)}
	if score.Shots > 0 {
		accuracy := 100 * score.Hits / score.Shots
		lines = append(lines, fmt.Sprintf("Shots: %d  Hits: %d (%d%%)  Bullseyes: %d",
			score.Shots, score.Hits, accuracy, score.Bullseyes))
	}
	return lines
}

func (h *ScoreHUD) Draw(screen *ebiten.Image, score component.Score) {
	lineHeight := h.fontFace.Metrics().Height.Ceil() + 2
	for i, line := range h.Lines(score) {
		text.Draw(screen, line, h.fontFace, h.X, h.Y+i*lineHeight, h.textColor)
	}
}
