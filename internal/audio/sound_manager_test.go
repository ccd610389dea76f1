package audio

import (
	"math"
	"testing"

	"go-archery/internal/component"
	"go-archery/internal/event"
)

func TestSoundManagerWithoutInitialization(t *testing.T) {
	sm := NewSoundManager()
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("sound call panicked without initialization: %v", r)
		}
	}()

	sm.PlayRelease()
	sm.PlayResult(component.ResultBullseye)
	sm.PlayResult(component.ResultHit)
	sm.PlayResult(component.ResultMiss)
	sm.Cleanup()

	if sm.Played() != 0 {
		t.Errorf("played = %d without a speaker, want 0", sm.Played())
	}
}

func TestAttachHandlesShotEvents(t *testing.T) {
	sm := NewSoundManager()
	d := event.NewDispatcher()
	sm.Attach(d)

	// Неизвестные данные в событии не должны ронять слушателя
	d.Dispatch(event.Event{Type: event.ShotResolved, Data: "garbage"})
	d.Dispatch(event.Event{Type: event.ShotResolved, Data: component.ShotResult{Type: component.ResultHit}})
	d.Dispatch(event.Event{Type: event.ArrowReleased})
	d.Dispatch(event.Event{Type: event.DrawRejected})

	if sm.heard != 4 {
		t.Errorf("heard %d events, want 4", sm.heard)
	}
}

func TestDetachStopsEvents(t *testing.T) {
	sm := NewSoundManager()
	d := event.NewDispatcher()
	other := 0
	d.SubscribeFunc(event.ShotResolved, func(event.Event) { other++ })

	sm.Attach(d)
	d.Dispatch(event.Event{Type: event.ArrowReleased})
	sm.Detach(d)
	d.Dispatch(event.Event{Type: event.ArrowReleased})
	d.Dispatch(event.Event{Type: event.ShotResolved, Data: component.ShotResult{Type: component.ResultMiss}})
	d.Dispatch(event.Event{Type: event.DrawRejected})

	if sm.heard != 1 {
		t.Errorf("heard %d events, want 1 (none after Detach)", sm.heard)
	}
	// Чужие подписки остаются на месте
	if other != 1 {
		t.Errorf("other listener got %d events, want 1", other)
	}
}

func TestGeneratorsStayInRange(t *testing.T) {
	buf := make([][2]float64, int(sampleRate)/5)

	for name, s := range map[string]interface {
		Stream([][2]float64) (int, bool)
	}{
		"swish": NewSwishGenerator(sampleRate),
		"buzz":  NewBuzzGenerator(sampleRate, missFreq),
	} {
		n, ok := s.Stream(buf)
		if n != len(buf) || !ok {
			t.Errorf("%s: Stream = %d, %v", name, n, ok)
		}
		for i, smp := range buf {
			if math.Abs(smp[0]) > 1 || smp[0] != smp[1] {
				t.Fatalf("%s: sample %d = %v, want mono within [-1, 1]", name, i, smp)
			}
		}
	}
}
