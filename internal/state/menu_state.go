// internal/state/menu_state.go
package state

import (
	"go-archery/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState — заставка перед игрой
type MenuState struct {
	sm   *StateMachine
	opts Options
}

func NewMenuState(sm *StateMachine, opts Options) *MenuState {
	return &MenuState{sm: sm, opts: opts}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		m.sm.SetState(NewGameState(m.sm, m.opts))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	lines := []string{
		"ARCHERY",
		"",
		"Drag back from the bow and release to shoot.",
		"Bullseye +100, near +50, edge +25, miss -50.",
		"",
		"Click or press Space to start. P / Esc pauses.",
	}
	face := basicfont.Face7x13
	y := config.ScreenHeight/2 - len(lines)*10
	for _, line := range lines {
		bounds := text.BoundString(face, line)
		text.Draw(screen, line, face, (config.ScreenWidth-bounds.Dx())/2, y, config.TextLightColor)
		y += 20
	}
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
