// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator — кружок фазы выстрела в углу экрана. Пульсирует при смене цвета.
type StateIndicator struct {
	X, Y       float32
	Radius     float32
	LastChange time.Time
	lastColor  color.RGBA
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// CurrentRadius — радиус с учётом затухающей пульсации.
func (i *StateIndicator) CurrentRadius(now time.Time) float32 {
	elapsed := now.Sub(i.LastChange).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	return i.Radius * float32(scale)
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, stateColor color.RGBA) {
	now := time.Now()
	if stateColor != i.lastColor {
		i.lastColor = stateColor
		i.LastChange = now
	}
	r := i.CurrentRadius(now)
	vector.DrawFilledCircle(screen, i.X, i.Y, r, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}
