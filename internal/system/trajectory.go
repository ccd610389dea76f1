// internal/system/trajectory.go
package system

import (
	"math"

	"go-archery/internal/component"
	"go-archery/internal/config"
	"go-archery/internal/utils"
	"go-archery/pkg/geom"
)

// BuildCurve строит траекторию по углу и силе натяжения.
// Стрела уходит в сторону, противоположную натяжению; радиус кривизны линейно растёт с силой.
func BuildCurve(angle, power float64, pivot geom.Point) component.TrajectoryCurve {
	power = utils.Clamp(power, config.MinPower, config.MaxPower)

	fireAngle := angle - math.Pi
	radius := power * config.PowerToRadius
	offset := geom.Point{X: math.Cos(fireAngle) * radius, Y: math.Sin(fireAngle) * radius}
	arcWidth := offset.X * config.ArcWidthFactor

	return component.TrajectoryCurve{
		Bezier: geom.CubicBezier{
			P0: pivot,
			P1: pivot.Add(offset),
			P2: pivot.Add(geom.Point{X: arcWidth - offset.X, Y: offset.Y + config.ArcDrop}),
			P3: pivot.Add(geom.Point{X: arcWidth, Y: config.ArcDrop}),
		},
		Opacity: utils.Clamp(power/config.OpacityDivisor, 0, 1),
	}
}

// CurveFor — траектория для текущего натяжения.
func CurveFor(aim component.AimState, pivot geom.Point) component.TrajectoryCurve {
	return BuildCurve(aim.Angle, aim.Power, pivot)
}
