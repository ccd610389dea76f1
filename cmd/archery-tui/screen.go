// cmd/archery-tui/screen.go
package main

import (
	"fmt"
	"math"

	"go-archery/internal/app"
	"go-archery/internal/component"
	"go-archery/internal/config"
	"go-archery/pkg/geom"
	"go-archery/pkg/render"

	"github.com/gdamore/tcell/v2"
)

const arcSamples = 48

var (
	styleDefault = tcell.StyleDefault.Background(tcell.NewRGBColor(30, 34, 48))
	styleStatus  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(240, 240, 240)).Background(tcell.NewRGBColor(48, 56, 72))
	styleBow     = styleDefault.Foreground(tcell.NewRGBColor(205, 150, 90))
	styleArrow   = styleDefault.Foreground(tcell.ColorWhite)
	styleSpent   = styleDefault.Foreground(tcell.ColorGray)
	styleRingA   = styleDefault.Foreground(tcell.NewRGBColor(240, 240, 240))
	styleRingB   = styleDefault.Foreground(tcell.NewRGBColor(220, 60, 60))
	styleSegment = styleDefault.Foreground(tcell.ColorYellow)
	styleGood    = styleDefault.Foreground(tcell.NewRGBColor(80, 200, 80)).Bold(true)
	styleBad     = styleDefault.Foreground(tcell.NewRGBColor(220, 60, 60)).Bold(true)
)

// TerminalView рисует сессию в ячейках терминала и переводит мышь в координаты сцены.
// Последняя строка занята статусом.
type TerminalView struct {
	screen tcell.Screen
	game   *app.Game
	scene  *render.Scene
	width  int
	height int

	buttonDown bool // левая кнопка зажата
	drawing    bool // нажатие принято сессией, тянем лук
}

func NewTerminalView(screen tcell.Screen, game *app.Game, scene *render.Scene) *TerminalView {
	v := &TerminalView{screen: screen, game: game, scene: scene}
	v.width, v.height = screen.Size()
	return v
}

func (v *TerminalView) fieldHeight() int {
	if v.height < 2 {
		return 1
	}
	return v.height - 1
}

// CellToScene — центр ячейки в координатах сцены.
func (v *TerminalView) CellToScene(x, y int) geom.Point {
	return geom.Point{
		X: (float64(x) + 0.5) * config.ScreenWidth / float64(max(v.width, 1)),
		Y: (float64(y) + 0.5) * config.ScreenHeight / float64(v.fieldHeight()),
	}
}

// SceneToCell — ячейка, в которую попадает точка сцены.
func (v *TerminalView) SceneToCell(p geom.Point) (int, int) {
	x := int(math.Floor(p.X * float64(v.width) / config.ScreenWidth))
	y := int(math.Floor(p.Y * float64(v.fieldHeight()) / config.ScreenHeight))
	return x, y
}

// HandleEvent применяет событие терминала. false — пора выходить.
func (v *TerminalView) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuitKey(ev.Key(), ev.Rune()) {
			return false
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		p := v.CellToScene(x, y)
		down := ev.Buttons()&tcell.Button1 != 0
		// tcell шлёт состояние кнопок, а не нажатия: фронт ловим сами
		switch {
		case down && !v.buttonDown:
			v.buttonDown = true
			v.drawing = v.game.PointerDown(p)
		case down && v.drawing:
			v.game.PointerMove(p)
		case !down && v.buttonDown:
			v.buttonDown = false
			if v.drawing {
				v.drawing = false
				v.game.PointerUp()
			}
		}

	case *tcell.EventResize:
		v.width, v.height = v.screen.Size()
		v.screen.Sync()
	}
	return true
}

func (v *TerminalView) set(p geom.Point, r rune, style tcell.Style) {
	x, y := v.SceneToCell(p)
	if x < 0 || y < 0 || x >= v.width || y >= v.fieldHeight() {
		return
	}
	v.screen.SetContent(x, y, r, nil, style)
}

// Draw перерисовывает весь экран.
func (v *TerminalView) Draw() {
	v.screen.SetStyle(styleDefault)
	v.screen.Clear()

	v.drawTarget()

	for _, a := range v.game.Arrows() {
		v.drawArrow(a.Pose, styleSpent)
	}

	if alpha := v.scene.ArcAlpha(); alpha > 0 {
		c := int32(80 + 175*alpha)
		style := styleDefault.Foreground(tcell.NewRGBColor(c, c, c))
		for _, p := range v.scene.Arc().Sample(arcSamples) {
			v.set(p, '·', style)
		}
	}

	v.drawBow()

	if pose, ok := v.scene.Projectile(); ok {
		v.drawArrow(pose, styleArrow)
	}

	if msg, good, ok := v.scene.Message(); ok {
		style := styleBad
		if good {
			style = styleGood
		}
		v.drawText((v.width-len(msg))/2, v.fieldHeight()/4, msg, style)
	}

	v.drawStatus()
	v.screen.Show()
}

func (v *TerminalView) drawTarget() {
	c := config.TargetCenter
	for ring := 4; ring >= 1; ring-- {
		radius := config.TargetRadius * float64(ring) / 4
		style := styleRingA
		if ring%2 == 1 {
			style = styleRingB
		}
		for i := 0; i < 32; i++ {
			a := float64(i) * 2 * math.Pi / 32
			v.set(geom.Point{X: c.X + radius*math.Cos(a), Y: c.Y + radius*math.Sin(a)}, 'o', style)
		}
	}
	seg := config.HitSegment
	for i := 0; i <= 8; i++ {
		t := float64(i) / 8
		v.set(geom.Point{X: seg.P1.X + (seg.P2.X-seg.P1.X)*t, Y: seg.P1.Y + (seg.P2.Y-seg.P1.Y)*t}, '/', styleSegment)
	}
	v.set(c, '+', styleSegment)
}

func (v *TerminalView) drawBow() {
	pivot := config.Pivot
	angle := v.scene.BowAngle()
	sin, cos := math.Sincos(angle)
	local := func(x, y float64) geom.Point {
		return geom.Point{X: pivot.X + x*cos - y*sin, Y: pivot.Y + x*sin + y*cos}
	}
	for i := -4; i <= 4; i++ {
		y := config.BowHalfHeight * float64(i) / 4
		v.set(local(8-math.Abs(float64(i))*5, y), ')', styleBow)
	}
	v.set(local(v.scene.StringX()-pivot.X, 0), '<', styleBow)
}

func (v *TerminalView) drawArrow(pose component.Pose, style tcell.Style) {
	r := headingRune(pose.Heading)
	sin, cos := math.Sincos(pose.Heading)
	for d := 0.0; d <= config.ArrowLength; d += config.ArrowLength / 6 {
		v.set(geom.Point{X: pose.Position.X + cos*d, Y: pose.Position.Y + sin*d}, r, style)
	}
}

func (v *TerminalView) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		if x+i >= 0 && x+i < v.width {
			v.screen.SetContent(x+i, y, r, nil, style)
		}
	}
}

func (v *TerminalView) drawStatus() {
	y := v.height - 1
	for x := 0; x < v.width; x++ {
		v.screen.SetContent(x, y, ' ', nil, styleStatus)
	}
	score := v.game.Score()
	status := fmt.Sprintf(" Score: %d | Shots: %d | Phase: %s | drag with the mouse, q to quit", score.Total, score.Shots, v.game.Phase())
	v.drawText(0, y, status, styleStatus)
}

func isQuitKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyEscape || key == tcell.KeyCtrlC || (key == tcell.KeyRune && r == 'q')
}

// headingRune подбирает символ стрелы по направлению, y растёт вниз.
func headingRune(heading float64) rune {
	a := math.Mod(heading, math.Pi)
	if a < 0 {
		a += math.Pi
	}
	switch {
	case a < math.Pi/8 || a >= 7*math.Pi/8:
		return '-'
	case a < 3*math.Pi/8:
		return '\\'
	case a < 5*math.Pi/8:
		return '|'
	default:
		return '/'
	}
}
