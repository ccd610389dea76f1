// internal/entity/ecs.go
package entity

import (
	"go-archery/internal/component"
	"go-archery/internal/types"
)

// ECS хранит всё состояние одной сессии стрельбы.
type ECS struct {
	NextID      types.EntityID
	Projectiles map[types.EntityID]*component.Projectile // не больше одной одновременно
	Arrows      map[types.EntityID]*component.Arrow      // стрелы, оставшиеся на сцене
	Aim         *component.AimState                      // nil вне натяжения
	Preview     *component.TrajectoryCurve               // nil вне натяжения
	Target      component.Target
	Score       *component.Score
	Phase       component.Phase
}

func NewECS(target component.Target) *ECS {
	return &ECS{
		NextID:      1,
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Arrows:      make(map[types.EntityID]*component.Arrow),
		Target:      target,
		Score:       &component.Score{},
		Phase:       component.PhaseIdle,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// ActiveProjectile возвращает летящую стрелу, если она есть.
func (ecs *ECS) ActiveProjectile() (types.EntityID, *component.Projectile, bool) {
	for id, p := range ecs.Projectiles {
		if !p.Resolved {
			return id, p, true
		}
	}
	return 0, nil, false
}

// AddArrow оставляет стрелу на сцене и выкидывает самые старые сверх limit.
func (ecs *ECS) AddArrow(arrow *component.Arrow, limit int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Arrows[id] = arrow
	for limit >= 0 && len(ecs.Arrows) > limit {
		oldest := id
		for other := range ecs.Arrows {
			if other < oldest {
				oldest = other
			}
		}
		delete(ecs.Arrows, oldest)
	}
	return id
}
