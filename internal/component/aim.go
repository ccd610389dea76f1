// internal/component/aim.go
package component

import (
	"math"

	"go-archery/pkg/geom"
)

// AimState — текущее натяжение лука. Пересчитывается на каждое движение указателя.
type AimState struct {
	Pointer geom.Point // указатель после ограничения относительно центра вращения
	Angle   float64    // истинный угол натяжения вместе с разбросом, радианы
	Power   float64    // расстояние натяжения, всегда в [0, 50]
	Scale   float64    // растяжение лука для отрисовки, [1, 2]
	Jitter  float64    // разброс выстрела, фиксирован на время одного натяжения
}

// BowAngle — угол, в котором смотрит лук (и летит стрела): противоположен натяжению.
func (a AimState) BowAngle() float64 {
	return a.Angle - math.Pi
}
