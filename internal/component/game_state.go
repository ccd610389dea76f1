// internal/component/game_state.go
package component

// Phase — фаза текущего выстрела
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDrawing
	PhaseFlying
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDrawing:
		return "drawing"
	case PhaseFlying:
		return "flying"
	}
	return "unknown"
}
