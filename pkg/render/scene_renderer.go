// pkg/render/scene_renderer.go
package render

import (
	"image/color"
	"math"

	"go-archery/internal/component"
	"go-archery/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const arcSegments = 32

// SceneRenderer рисует сцену стрельбы средствами ebiten.
// Колбэки сессии принимает встроенная Scene.
type SceneRenderer struct {
	*Scene
	target       component.Target
	targetRadius float64
	arrowLength  float64
	bowHalf      float64
	width        int
	height       int
	colors       *SceneColors
	fontFace     font.Face
	background   *ebiten.Image // предрендеренные земля и мишень
}

func NewSceneRenderer(pivot geom.Point, target component.Target, targetRadius, arrowLength, bowHalf float64,
	screenWidth, screenHeight int, fontFace font.Face, colors *SceneColors) *SceneRenderer {
	r := &SceneRenderer{
		Scene:        NewScene(pivot),
		target:       target,
		targetRadius: targetRadius,
		arrowLength:  arrowLength,
		bowHalf:      bowHalf,
		width:        screenWidth,
		height:       screenHeight,
		colors:       colors,
		fontFace:     fontFace,
	}
	return r
}

// renderBackground рисует неподвижную часть сцены один раз.
func (r *SceneRenderer) renderBackground() {
	r.background = ebiten.NewImage(r.width, r.height)
	r.background.Fill(r.colors.BackgroundColor)

	groundY := float32(r.pivot.Y + r.bowHalf + 20)
	vector.DrawFilledRect(r.background, 0, groundY, float32(r.width), float32(r.height)-groundY, r.colors.GroundColor, false)

	c := r.target.Center
	n := len(r.colors.RingColors)
	for i, ringColor := range r.colors.RingColors {
		radius := r.targetRadius * float64(n-i) / float64(n)
		vector.DrawFilledCircle(r.background, float32(c.X), float32(c.Y), float32(radius), ringColor, true)
		vector.StrokeCircle(r.background, float32(c.X), float32(c.Y), float32(radius), 1, DarkenColor(ringColor), true)
	}
	seg := r.target.HitSegment
	vector.StrokeLine(r.background, float32(seg.P1.X), float32(seg.P1.Y), float32(seg.P2.X), float32(seg.P2.Y),
		r.colors.StrokeWidth, r.colors.HitSegmentColor, true)
}

// Draw рисует сцену и оставшиеся стрелы.
func (r *SceneRenderer) Draw(screen *ebiten.Image, arrows []component.Arrow) {
	if r.background == nil {
		r.renderBackground()
	}
	screen.DrawImage(r.background, nil)

	for _, a := range arrows {
		r.drawArrow(screen, a.Pose.Position, a.Pose.Heading, DarkenColor(r.colors.ArrowColor))
	}

	if alpha := r.ArcAlpha(); alpha > 0 {
		r.drawCurve(screen, r.Arc(), FadeColor(r.colors.ArcColor, alpha))
	}

	r.drawBow(screen)

	if pose, ok := r.Projectile(); ok {
		r.drawArrow(screen, pose.Position, pose.Heading, r.colors.ArrowColor)
	}

	if msg, good, ok := r.Message(); ok {
		clr := r.colors.BadColor
		if good {
			clr = r.colors.GoodColor
		}
		bounds := text.BoundString(r.fontFace, msg)
		x := (r.width - bounds.Dx()) / 2
		text.Draw(screen, msg, r.fontFace, x, r.height/4, clr)
	}
}

// local переводит точку из системы лука (ось x по направлению выстрела) в экранную.
func (r *SceneRenderer) local(x, y float64) (float32, float32) {
	angle := r.BowAngle()
	sin, cos := math.Sincos(angle)
	wx := r.pivot.X + x*cos - y*sin
	wy := r.pivot.Y + x*sin + y*cos
	return float32(wx), float32(wy)
}

func (r *SceneRenderer) drawBow(screen *ebiten.Image) {
	scale := r.BowScale()
	tipX := r.StringX() - r.pivot.X
	restX := -12.0 * scale

	// Плечи лука — ломаная через центр вращения
	limbs := [][2]float64{
		{restX, -r.bowHalf},
		{2 * scale, -r.bowHalf / 2},
		{8 * scale, 0},
		{2 * scale, r.bowHalf / 2},
		{restX, r.bowHalf},
	}
	for i := 1; i < len(limbs); i++ {
		x0, y0 := r.local(limbs[i-1][0], limbs[i-1][1])
		x1, y1 := r.local(limbs[i][0], limbs[i][1])
		vector.StrokeLine(screen, x0, y0, x1, y1, 3, r.colors.BowColor, true)
	}

	topX, topY := r.local(restX, -r.bowHalf)
	midX, midY := r.local(tipX, 0)
	botX, botY := r.local(restX, r.bowHalf)
	vector.StrokeLine(screen, topX, topY, midX, midY, 1, r.colors.StringColor, true)
	vector.StrokeLine(screen, midX, midY, botX, botY, 1, r.colors.StringColor, true)

	if aim, _, ok := r.Aim(); ok {
		// Стрела на тетиве: хвост у тетивы, наконечник вперёд
		tailX, tailY := r.local(-aim.Power, 0)
		headX, headY := r.local(-aim.Power+r.arrowLength, 0)
		vector.StrokeLine(screen, tailX, tailY, headX, headY, 2, r.colors.ArrowColor, true)
	}
}

func (r *SceneRenderer) drawArrow(screen *ebiten.Image, tail geom.Point, heading float64, clr color.Color) {
	sin, cos := math.Sincos(heading)
	head := geom.Point{X: tail.X + cos*r.arrowLength, Y: tail.Y + sin*r.arrowLength}
	vector.StrokeLine(screen, float32(tail.X), float32(tail.Y), float32(head.X), float32(head.Y), 2, clr, true)

	// Наконечник
	const barb = 6.0
	for _, side := range []float64{-1, 1} {
		a := heading + math.Pi - side*math.Pi/6
		bx := head.X + math.Cos(a)*barb
		by := head.Y + math.Sin(a)*barb
		vector.StrokeLine(screen, float32(head.X), float32(head.Y), float32(bx), float32(by), 2, clr, true)
	}
}

func (r *SceneRenderer) drawCurve(screen *ebiten.Image, curve geom.CubicBezier, clr color.Color) {
	points := curve.Sample(arcSegments)
	for i := 1; i < len(points); i++ {
		p0, p1 := points[i-1], points[i]
		vector.StrokeLine(screen, float32(p0.X), float32(p0.Y), float32(p1.X), float32(p1.Y), 2, clr, true)
	}
}
