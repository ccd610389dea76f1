// internal/component/trajectory.go
package component

import "go-archery/pkg/geom"

// TrajectoryCurve — траектория выстрела. Bezier.P0 всегда совпадает с центром вращения лука.
type TrajectoryCurve struct {
	Bezier  geom.CubicBezier
	Opacity float64 // подсказка для отрисовки превью, [0, 1]
}
