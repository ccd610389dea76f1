// internal/system/collision.go
package system

import (
	"math"

	"go-archery/internal/component"
	"go-archery/internal/entity"
	"go-archery/pkg/geom"
)

// ForwardSegment — отрезок длиной length от позиции стрелы по её направлению.
func ForwardSegment(pose component.Pose, length float64) geom.Segment {
	return geom.Segment{
		P1: pose.Position,
		P2: geom.Point{
			X: pose.Position.X + math.Cos(pose.Heading)*length,
			Y: pose.Position.Y + math.Sin(pose.Heading)*length,
		},
	}
}

// CollisionSystem проверяет стрелу на пересечение с хордой мишени.
type CollisionSystem struct {
	ecs         *entity.ECS
	arrowLength float64
}

func NewCollisionSystem(ecs *entity.ECS, arrowLength float64) *CollisionSystem {
	return &CollisionSystem{ecs: ecs, arrowLength: arrowLength}
}

// Test возвращает точку попадания, если передний отрезок стрелы пересекает хорду мишени.
func (s *CollisionSystem) Test(pose component.Pose) (geom.Intersection, bool) {
	return HitTest(pose, s.ecs.Target, s.arrowLength)
}

// HitTest — чистая проверка попадания.
func HitTest(pose component.Pose, target component.Target, arrowLength float64) (geom.Intersection, bool) {
	hit, ok := geom.Intersect(ForwardSegment(pose, arrowLength), target.HitSegment)
	if !ok || !hit.Hit() {
		return geom.Intersection{}, false
	}
	return hit, true
}
