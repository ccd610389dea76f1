// pkg/render/scene.go
package render

import (
	"math"

	"go-archery/internal/component"
	"go-archery/internal/config"
	"go-archery/internal/utils"
	"go-archery/pkg/geom"
)

// Scene — состояние отрисовки, которое копится из колбэков сессии.
// Сам по себе ничего не рисует, его читают SceneRenderer и терминальный фронтенд.
type Scene struct {
	pivot geom.Point

	aiming   bool
	aim      component.AimState
	preview  component.TrajectoryCurve
	bowAngle float64 // последний поворот лука, держится и после выстрела

	released component.TrajectoryCurve
	arcFade  float64 // сколько ещё гаснет выпущенная дуга

	relax      float64 // сколько ещё тетива возвращается
	relaxFrom  float64
	relaxScale float64

	flying bool
	pose   component.Pose

	message     string
	messageGood bool
	messageTime float64
}

func NewScene(pivot geom.Point) *Scene {
	return &Scene{pivot: pivot}
}

// OnAimUpdate реализует interfaces.Renderer.
func (s *Scene) OnAimUpdate(aim component.AimState, curve component.TrajectoryCurve) {
	s.aiming = true
	s.aim = aim
	s.preview = curve
	s.bowAngle = utils.NormalizeAngle(aim.BowAngle())
	s.relax = 0
}

// OnRelease реализует interfaces.Renderer.
func (s *Scene) OnRelease(curve component.TrajectoryCurve) {
	s.relaxFrom = s.StringX()
	s.relaxScale = s.BowScale()
	s.relax = config.BowRelaxDuration

	s.aiming = false
	s.released = curve
	s.arcFade = config.ArcFadeDuration
	s.flying = true
	s.pose = component.Pose{Position: curve.Bezier.P0, Heading: curve.Bezier.Heading(0)}
}

// OnProjectileTick реализует interfaces.Renderer.
func (s *Scene) OnProjectileTick(pose component.Pose) {
	s.pose = pose
}

// OnResult реализует interfaces.Renderer.
func (s *Scene) OnResult(result component.ShotResult) {
	s.flying = false
	s.message = result.Message()
	s.messageGood = result.Type != component.ResultMiss
	s.messageTime = config.MessageDuration
}

// Update двигает таймеры анимаций.
func (s *Scene) Update(deltaTime float64) {
	s.arcFade = math.Max(s.arcFade-deltaTime, 0)
	s.relax = math.Max(s.relax-deltaTime, 0)
	s.messageTime = math.Max(s.messageTime-deltaTime, 0)
	if s.messageTime == 0 {
		s.message = ""
	}
}

// Aim возвращает натяжение, если игрок тянет лук.
func (s *Scene) Aim() (component.AimState, component.TrajectoryCurve, bool) {
	return s.aim, s.preview, s.aiming
}

// ArcAlpha — видимость дуги: при натяжении по силе, после выстрела гаснет.
func (s *Scene) ArcAlpha() float64 {
	if s.aiming {
		return s.preview.Opacity
	}
	if config.ArcFadeDuration <= 0 {
		return 0
	}
	return s.released.Opacity * s.arcFade / config.ArcFadeDuration
}

// Arc — кривая, которую сейчас надо показать.
func (s *Scene) Arc() geom.CubicBezier {
	if s.aiming {
		return s.preview.Bezier
	}
	return s.released.Bezier
}

// StringX — x центра тетивы. При натяжении тетива уходит назад, но не правее покоя.
func (s *Scene) StringX() float64 {
	if s.aiming {
		return math.Min(s.pivot.X-s.aim.Power/s.aim.Scale, config.StringRestX)
	}
	return utils.Lerp(s.relaxFrom, config.StringRestX, s.relaxProgress())
}

// BowScale — растяжение лука вдоль оси натяжения.
func (s *Scene) BowScale() float64 {
	if s.aiming {
		return s.aim.Scale
	}
	if s.relaxScale == 0 {
		return config.MinScale
	}
	return utils.Lerp(s.relaxScale, config.MinScale, s.relaxProgress())
}

// BowAngle — поворот лука вокруг центра вращения, в [-π, π].
func (s *Scene) BowAngle() float64 {
	return s.bowAngle
}

func (s *Scene) relaxProgress() float64 {
	if config.BowRelaxDuration <= 0 || s.relax <= 0 {
		return 1
	}
	return utils.ElasticOut(1 - s.relax/config.BowRelaxDuration)
}

// Projectile — поза летящей стрелы.
func (s *Scene) Projectile() (component.Pose, bool) {
	return s.pose, s.flying
}

// Message — текст итога выстрела, пока он не погас.
func (s *Scene) Message() (string, bool, bool) {
	return s.message, s.messageGood, s.message != ""
}
