// pkg/render/color.go
package render

import "image/color"

// SceneColors — палитра сцены стрельбы.
type SceneColors struct {
	BackgroundColor color.RGBA
	GroundColor     color.RGBA
	BowColor        color.RGBA
	StringColor     color.RGBA
	ArrowColor      color.RGBA
	ArcColor        color.RGBA
	HitSegmentColor color.RGBA
	TextColor       color.RGBA
	GoodColor       color.RGBA
	BadColor        color.RGBA
	RingColors      []color.RGBA // от внешнего кольца к центру
	StrokeWidth     float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// FadeColor умножает цвет на alpha из [0, 1]. Результат premultiplied, как ждёт ebiten.
func FadeColor(c color.RGBA, alpha float64) color.RGBA {
	if alpha <= 0 {
		return color.RGBA{}
	}
	if alpha >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
