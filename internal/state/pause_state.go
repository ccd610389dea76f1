// internal/state/pause_state.go
package state

import (
	"go-archery/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игру: время не идёт, ввод не доходит до сессии.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

// Enter бросает незаконченное натяжение: после паузы кнопка мыши уже отпущена.
func (s *PauseState) Enter() {
	s.previousState.Game().CancelDraw()
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.Resume(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, float32(config.ScreenWidth), float32(config.ScreenHeight), config.PauseOverlay, false)

	const pauseText = "PAUSED"
	bounds := text.BoundString(basicfont.Face7x13, pauseText)
	text.Draw(screen, pauseText, basicfont.Face7x13, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
