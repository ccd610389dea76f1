// internal/system/flight.go
package system

import (
	"go-archery/internal/component"
	"go-archery/internal/entity"
	"go-archery/internal/types"
	"go-archery/pkg/geom"

	"github.com/google/uuid"
)

// Step — положение стрелы на кривой при параметре t. Чистая функция,
// не зависит от частоты кадров: её вызывает внешний цикл.
func Step(curve geom.CubicBezier, t float64) component.Pose {
	return component.Pose{
		Position: curve.At(t),
		Heading:  curve.Heading(t),
	}
}

// FlightSystem ведёт единственную стрелу по замороженной траектории.
type FlightSystem struct {
	ecs      *entity.ECS
	duration float64
}

func NewFlightSystem(ecs *entity.ECS, duration float64) *FlightSystem {
	return &FlightSystem{ecs: ecs, duration: duration}
}

// Launch создаёт стрелу в начале кривой.
func (s *FlightSystem) Launch(curve component.TrajectoryCurve) (types.EntityID, *component.Projectile) {
	p := &component.Projectile{
		ShotID:   uuid.NewString(),
		Curve:    curve,
		Duration: s.duration,
		Pose:     Step(curve.Bezier, 0),
	}
	id := s.ecs.NewEntity()
	s.ecs.Projectiles[id] = p
	return id, p
}

// Advance сдвигает стрелу на dt секунд (линейно по t) и возвращает новое положение.
// exhausted — стрела дошла до конца кривой.
func (s *FlightSystem) Advance(p *component.Projectile, dt float64) (component.Pose, bool) {
	if p.Resolved {
		return p.Pose, p.Exhausted()
	}
	if dt > 0 {
		p.Elapsed += dt
	}
	if p.Duration <= 0 {
		p.T = 1
	} else {
		p.T = p.Elapsed / p.Duration
		if p.T > 1 {
			p.T = 1
		}
	}
	p.Pose = Step(p.Curve.Bezier, p.T)
	return p.Pose, p.Exhausted()
}

// Remove убирает стрелу из полёта.
func (s *FlightSystem) Remove(id types.EntityID) {
	delete(s.ecs.Projectiles, id)
}
