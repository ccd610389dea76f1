package system

import (
	"testing"

	"go-archery/internal/component"
	"go-archery/internal/event"
)

type clearCounter struct {
	calls int
}

func (c *clearCounter) ClearProjectiles() {
	c.calls++
}

func TestStateSystemPhases(t *testing.T) {
	ecs := newTestECS()
	ctx := &clearCounter{}
	d := event.NewDispatcher()
	s := NewStateSystem(ecs, ctx, d)

	if !s.CanDraw() || s.Current() != component.PhaseIdle {
		t.Fatalf("new session must be idle")
	}

	s.SwitchToDrawing(component.AimState{Power: 10}, component.TrajectoryCurve{})
	if s.Current() != component.PhaseDrawing || ecs.Aim == nil || ecs.Preview == nil {
		t.Errorf("drawing phase must store aim and preview")
	}

	s.SwitchToFlying()
	if s.CanDraw() {
		t.Errorf("must not allow a draw while an arrow is flying")
	}
	if ecs.Aim != nil || ecs.Preview != nil {
		t.Errorf("flying phase must drop the aim preview")
	}

	d.Dispatch(event.Event{Type: event.ShotResolved, Data: component.ShotResult{}})
	if s.Current() != component.PhaseIdle {
		t.Errorf("ShotResolved must return to idle, got %s", s.Current())
	}
	if ctx.calls != 1 {
		t.Errorf("ClearProjectiles called %d times, want 1", ctx.calls)
	}
}
