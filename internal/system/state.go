// internal/system/state.go
package system

import (
	"go-archery/internal/component"
	"go-archery/internal/entity"
	"go-archery/internal/event"
	"go-archery/internal/interfaces"
)

// StateSystem — фазы выстрела: ожидание → натяжение → полёт → ожидание.
type StateSystem struct {
	ecs             *entity.ECS
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.ShotResolved, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type == event.ShotResolved {
		s.SwitchToIdle()
	}
}

// CanDraw — новое натяжение разрешено только когда стрела не летит.
func (s *StateSystem) CanDraw() bool {
	return s.ecs.Phase == component.PhaseIdle
}

func (s *StateSystem) SwitchToDrawing(aim component.AimState, preview component.TrajectoryCurve) {
	s.ecs.Phase = component.PhaseDrawing
	s.ecs.Aim = &aim
	s.ecs.Preview = &preview
}

func (s *StateSystem) SwitchToFlying() {
	s.ecs.Phase = component.PhaseFlying
	s.ecs.Aim = nil
	s.ecs.Preview = nil
}

func (s *StateSystem) SwitchToIdle() {
	s.ecs.Phase = component.PhaseIdle
	s.ecs.Aim = nil
	s.ecs.Preview = nil
	s.gameContext.ClearProjectiles()
}

func (s *StateSystem) Current() component.Phase {
	return s.ecs.Phase
}
