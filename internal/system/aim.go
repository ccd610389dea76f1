// internal/system/aim.go
package system

import (
	"math"

	"go-archery/internal/component"
	"go-archery/internal/config"
	"go-archery/internal/utils"
	"go-archery/pkg/geom"
)

// AimSystem переводит положение указателя в угол и силу натяжения.
type AimSystem struct {
	rng    *utils.PRNGService
	pivot  geom.Point
	jitter func() float64
}

func NewAimSystem(rng *utils.PRNGService, pivot geom.Point) *AimSystem {
	s := &AimSystem{rng: rng, pivot: pivot}
	s.jitter = func() float64 { return s.rng.Symmetric(config.JitterRange) }
	return s
}

// SetJitterSource подменяет источник разброса (для тестов и повторов).
func (s *AimSystem) SetJitterSource(fn func() float64) {
	if fn != nil {
		s.jitter = fn
	}
}

// BeginDraw начинает новое натяжение: выбирает разброс на весь выстрел и обнуляет силу.
func (s *AimSystem) BeginDraw() component.AimState {
	return component.AimState{
		Pointer: s.pivot,
		Angle:   0,
		Power:   config.MinPower,
		Scale:   config.MinScale,
		Jitter:  s.jitter(),
	}
}

// Update пересчитывает натяжение с разбросом текущего выстрела.
func (s *AimSystem) Update(pointer geom.Point, jitter float64) component.AimState {
	return UpdateAim(pointer, s.pivot, jitter)
}

// UpdateAim — чистая функция прицеливания.
// Указатель не может перейти через центр вращения: x ≤ pivot.x-7, y ≥ pivot.y+7.
// Угол включает разброс, игроку он не показывается.
func UpdateAim(pointer, pivot geom.Point, jitter float64) component.AimState {
	pointer.X = math.Min(pointer.X, pivot.X-config.PivotClearance)
	pointer.Y = math.Max(pointer.Y, pivot.Y+config.PivotClearance)

	d := pointer.Sub(pivot)
	power := utils.Clamp(geom.Distance(pointer, pivot), config.MinPower, config.MaxPower)

	return component.AimState{
		Pointer: pointer,
		Angle:   math.Atan2(d.Y, d.X) + jitter,
		Power:   power,
		Scale:   utils.Clamp(power/config.ScaleDivisor, config.MinScale, config.MaxScale),
		Jitter:  jitter,
	}
}
