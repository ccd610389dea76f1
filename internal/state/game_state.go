// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"log"

	"go-archery/internal/app"
	"go-archery/internal/audio"
	"go-archery/internal/component"
	"go-archery/internal/config"
	"go-archery/internal/ui"
	"go-archery/pkg/geom"
	"go-archery/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
)

// Options — то, что состояние игры берёт из настроек запуска.
type Options struct {
	Seed           int64
	MaxSpentArrows int
	SampleStep     float64
	Sound          *audio.SoundManager // nil — без звука
}

// GameState — состояние игры
type GameState struct {
	sm        *StateMachine
	game      *app.Game
	renderer  *render.SceneRenderer
	hud       *ui.ScoreHUD
	indicator *ui.StateIndicator
	lastMouse geom.Point
	opts      Options
}

func NewGameState(sm *StateMachine, opts Options) *GameState {
	sceneColors := &render.SceneColors{
		BackgroundColor: config.BackgroundColor,
		GroundColor:     config.GroundColor,
		BowColor:        config.BowColor,
		StringColor:     config.StringColor,
		ArrowColor:      config.ArrowColor,
		ArcColor:        config.ArcColor,
		HitSegmentColor: config.HitSegmentColor,
		TextColor:       config.TextLightColor,
		GoodColor:       config.GoodColor,
		BadColor:        config.BadColor,
		RingColors:      config.TargetRingColors,
		StrokeWidth:     2,
	}
	target := component.Target{Center: config.TargetCenter, HitSegment: config.HitSegment}
	renderer := render.NewSceneRenderer(config.Pivot, target, config.TargetRadius, config.ArrowLength, config.BowHalfHeight,
		config.ScreenWidth, config.ScreenHeight, basicfont.Face7x13, sceneColors)

	gameLogic := app.NewGame(renderer,
		app.WithSeed(opts.Seed),
		app.WithMaxSpentArrows(opts.MaxSpentArrows),
		app.WithSampleStep(opts.SampleStep),
	)
	if opts.Sound != nil {
		opts.Sound.Attach(gameLogic.EventDispatcher)
	}
	log.Printf("Session started, seed %d", gameLogic.Rng.Seed())

	return &GameState{
		sm:       sm,
		game:     gameLogic,
		renderer: renderer,
		hud:      ui.NewScoreHUD(config.HUDOffsetX, config.HUDOffsetY, basicfont.Face7x13, config.TextLightColor),
		indicator: ui.NewStateIndicator(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius),
		),
		opts: opts,
	}
}

// Game возвращает игровую сессию.
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.Push(NewPauseState(g.sm, g))
		return
	}

	x, y := ebiten.CursorPosition()
	mouse := geom.Point{X: float64(x), Y: float64(y)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.game.PointerDown(mouse)
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && mouse != g.lastMouse {
		g.game.PointerMove(mouse)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.game.PointerUp()
	}
	g.lastMouse = mouse

	g.game.Update(deltaTime)
	g.renderer.Update(deltaTime)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.Arrows())
	g.hud.Draw(screen, g.game.Score())
	g.indicator.Draw(screen, PhaseColor(g.game.Phase()))

	// Debug text
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f", ebiten.ActualTPS()), config.HUDOffsetX, config.ScreenHeight-config.HUDOffsetY)
}

func (g *GameState) Exit() {
	// Недолетевшая стрела засчитывается промахом, чтобы счёт не зависел от выхода
	g.game.ForceResolve()
	if g.opts.Sound != nil {
		g.opts.Sound.Detach(g.game.EventDispatcher)
	}
}

// PhaseColor — цвет индикатора для фазы выстрела.
func PhaseColor(phase component.Phase) color.RGBA {
	switch phase {
	case component.PhaseDrawing:
		return config.DrawStateColor
	case component.PhaseFlying:
		return config.FlyStateColor
	}
	return config.IdleStateColor
}
