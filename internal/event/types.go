// internal/event/types.go
package event

const (
	DrawStarted   EventType = "DrawStarted"   // Началось натяжение, Data: component.AimState
	DrawRejected  EventType = "DrawRejected"  // Натяжение отклонено, стрела ещё летит
	ArrowReleased EventType = "ArrowReleased" // Стрела выпущена, Data: *component.Projectile
	ShotResolved  EventType = "ShotResolved"  // Попадание или промах, Data: component.ShotResult
)
