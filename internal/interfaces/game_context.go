// internal/interfaces/game_context.go
package interfaces

type GameContext interface {
	ClearProjectiles()
}
