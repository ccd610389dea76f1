// internal/interfaces/renderer.go
package interfaces

import "go-archery/internal/component"

//go:generate go tool mockgen -destination=./mocks/renderer_mock.go -package=mocks . Renderer

// Renderer получает от сессии всё, что нужно для отрисовки. Сессия ничего не ждёт в ответ.
type Renderer interface {
	// OnAimUpdate вызывается на каждое движение указателя во время натяжения.
	OnAimUpdate(aim component.AimState, curve component.TrajectoryCurve)
	// OnRelease вызывается один раз при отпускании с замороженной траекторией.
	OnRelease(curve component.TrajectoryCurve)
	// OnProjectileTick вызывается на каждом шаге полёта.
	OnProjectileTick(pose component.Pose)
	// OnResult вызывается один раз на выстрел.
	OnResult(result component.ShotResult)
}

// NopRenderer ничего не рисует. Нужен для безголовых прогонов.
type NopRenderer struct{}

func (NopRenderer) OnAimUpdate(component.AimState, component.TrajectoryCurve) {}
func (NopRenderer) OnRelease(component.TrajectoryCurve)                       {}
func (NopRenderer) OnProjectileTick(component.Pose)                           {}
func (NopRenderer) OnResult(component.ShotResult)                             {}
