// internal/app/game.go
package app

import (
	"log"
	"sort"

	"go-archery/internal/component"
	"go-archery/internal/config"
	"go-archery/internal/entity"
	"go-archery/internal/event"
	"go-archery/internal/interfaces"
	"go-archery/internal/system"
	"go-archery/internal/types"
	"go-archery/internal/utils"
	"go-archery/pkg/geom"
)

// Game — одна игровая сессия: прицел, полёт, попадание и счёт.
// Не потокобезопасна, все вызовы идут из одного игрового цикла.
type Game struct {
	ECS             *entity.ECS
	AimSystem       *system.AimSystem
	FlightSystem    *system.FlightSystem
	CollisionSystem *system.CollisionSystem
	ScoringSystem   *system.ScoringSystem
	StateSystem     *system.StateSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	renderer       interfaces.Renderer
	pivot          geom.Point
	sampleStep     float64
	maxSpentArrows int
	jitter         float64 // разброс текущего натяжения
}

// Option настраивает сессию при создании.
type Option func(*gameOptions)

type gameOptions struct {
	seed           int64
	jitterSource   func() float64
	sampleStep     float64
	maxSpentArrows int
	dispatcher     *event.Dispatcher
}

// WithSeed фиксирует сид генератора разброса.
func WithSeed(seed int64) Option {
	return func(o *gameOptions) { o.seed = seed }
}

// WithJitterSource подменяет генератор разброса.
func WithJitterSource(fn func() float64) Option {
	return func(o *gameOptions) { o.jitterSource = fn }
}

// WithSampleStep задаёт максимальный шаг семплирования полёта в секундах.
func WithSampleStep(step float64) Option {
	return func(o *gameOptions) {
		if step > 0 {
			o.sampleStep = step
		}
	}
}

// WithMaxSpentArrows ограничивает число стрел, остающихся на сцене.
func WithMaxSpentArrows(n int) Option {
	return func(o *gameOptions) { o.maxSpentArrows = n }
}

// WithDispatcher позволяет подписаться на события до создания сессии.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(o *gameOptions) { o.dispatcher = d }
}

// NewGame создаёт сессию с фиксированными мишенью и точкой вращения.
func NewGame(renderer interfaces.Renderer, opts ...Option) *Game {
	if renderer == nil {
		renderer = interfaces.NopRenderer{}
	}
	o := gameOptions{
		sampleStep:     config.FlightSampleStep,
		maxSpentArrows: config.MaxSpentArrows,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.dispatcher == nil {
		o.dispatcher = event.NewDispatcher()
	}

	ecs := entity.NewECS(component.Target{Center: config.TargetCenter, HitSegment: config.HitSegment})
	rng := utils.NewPRNGService(o.seed)
	g := &Game{
		ECS:             ecs,
		AimSystem:       system.NewAimSystem(rng, config.Pivot),
		FlightSystem:    system.NewFlightSystem(ecs, config.FlightDuration),
		CollisionSystem: system.NewCollisionSystem(ecs, config.ArrowLength),
		ScoringSystem:   system.NewScoringSystem(ecs),
		EventDispatcher: o.dispatcher,
		Rng:             rng,
		renderer:        renderer,
		pivot:           config.Pivot,
		sampleStep:      o.sampleStep,
		maxSpentArrows:  o.maxSpentArrows,
	}
	g.AimSystem.SetJitterSource(o.jitterSource)
	g.StateSystem = system.NewStateSystem(ecs, g, o.dispatcher)

	listener := &GameEventListener{game: g}
	o.dispatcher.Subscribe(event.ShotResolved, listener)
	o.dispatcher.Subscribe(event.DrawRejected, listener)

	return g
}

// PointerDown начинает натяжение. Пока стрела летит, новое натяжение отклоняется.
// Повторное нажатие во время натяжения ничего не меняет.
func (g *Game) PointerDown(p geom.Point) bool {
	if g.ECS.Phase == component.PhaseDrawing {
		return true
	}
	if !g.StateSystem.CanDraw() {
		g.EventDispatcher.Dispatch(event.Event{Type: event.DrawRejected, Data: p})
		return false
	}

	start := g.AimSystem.BeginDraw()
	g.jitter = start.Jitter
	aim, curve := g.aimAt(p)
	g.EventDispatcher.Dispatch(event.Event{Type: event.DrawStarted, Data: aim})
	g.renderer.OnAimUpdate(aim, curve)
	return true
}

// PointerMove обновляет натяжение. Вне натяжения ничего не делает.
func (g *Game) PointerMove(p geom.Point) {
	if g.ECS.Phase != component.PhaseDrawing {
		return
	}
	aim, curve := g.aimAt(p)
	g.renderer.OnAimUpdate(aim, curve)
}

// PointerUp выпускает стрелу по последней построенной траектории.
func (g *Game) PointerUp() {
	if g.ECS.Phase != component.PhaseDrawing || g.ECS.Preview == nil {
		return
	}
	curve := *g.ECS.Preview

	g.StateSystem.SwitchToFlying()
	_, projectile := g.FlightSystem.Launch(curve)
	g.EventDispatcher.Dispatch(event.Event{Type: event.ArrowReleased, Data: projectile})
	g.renderer.OnRelease(curve)
}

// CancelDraw бросает натяжение без выстрела.
func (g *Game) CancelDraw() {
	if g.ECS.Phase == component.PhaseDrawing {
		g.StateSystem.SwitchToIdle()
	}
}

// Update продвигает полёт на deltaTime секунд. Шаг дробится на sampleStep,
// чтобы длинный кадр не проскочил хорду мишени. Первый шаг с попаданием завершает выстрел.
func (g *Game) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	if g.ECS.Phase != component.PhaseFlying {
		return
	}
	id, projectile, ok := g.ECS.ActiveProjectile()
	if !ok {
		return
	}

	remaining := deltaTime
	for remaining > 0 {
		step := remaining
		if step > g.sampleStep {
			step = g.sampleStep
		}
		remaining -= step

		pose, exhausted := g.FlightSystem.Advance(projectile, step)
		g.renderer.OnProjectileTick(pose)

		if hit, ok := g.CollisionSystem.Test(pose); ok {
			result, applied := g.ScoringSystem.ApplyHit(projectile.ShotID, hit.Point)
			g.resolve(id, projectile, result, applied)
			return
		}
		if exhausted {
			result, applied := g.ScoringSystem.ApplyMiss(projectile.ShotID)
			g.resolve(id, projectile, result, applied)
			return
		}
	}
}

// ForceResolve засчитывает летящую стрелу как промах.
func (g *Game) ForceResolve() bool {
	id, projectile, ok := g.ECS.ActiveProjectile()
	if !ok {
		return false
	}
	result, applied := g.ScoringSystem.ApplyMiss(projectile.ShotID)
	g.resolve(id, projectile, result, applied)
	return true
}

func (g *Game) resolve(id types.EntityID, projectile *component.Projectile, result component.ShotResult, applied bool) {
	projectile.Resolved = true
	if !applied {
		g.StateSystem.SwitchToIdle()
		return
	}
	g.ECS.AddArrow(&component.Arrow{
		ShotID: projectile.ShotID,
		Pose:   projectile.Pose,
		Tier:   result.Tier,
	}, g.maxSpentArrows)

	// Сначала состояние, потом отрисовка
	g.EventDispatcher.Dispatch(event.Event{Type: event.ShotResolved, Data: result})
	g.renderer.OnResult(result)
}

func (g *Game) aimAt(p geom.Point) (component.AimState, component.TrajectoryCurve) {
	aim := g.AimSystem.Update(p, g.jitter)
	curve := system.CurveFor(aim, g.pivot)
	g.StateSystem.SwitchToDrawing(aim, curve)
	return aim, curve
}

// ClearProjectiles убирает завершённые стрелы из полёта.
func (g *Game) ClearProjectiles() {
	for id, p := range g.ECS.Projectiles {
		if p.Resolved {
			g.FlightSystem.Remove(id)
		}
	}
}

// Score возвращает копию счёта.
func (g *Game) Score() component.Score {
	return *g.ECS.Score
}

func (g *Game) Phase() component.Phase {
	return g.ECS.Phase
}

// Aim возвращает текущее натяжение, если игрок тянет лук.
func (g *Game) Aim() (component.AimState, component.TrajectoryCurve, bool) {
	if g.ECS.Aim == nil || g.ECS.Preview == nil {
		return component.AimState{}, component.TrajectoryCurve{}, false
	}
	return *g.ECS.Aim, *g.ECS.Preview, true
}

// Projectile возвращает копию летящей стрелы.
func (g *Game) Projectile() (component.Projectile, bool) {
	_, p, ok := g.ECS.ActiveProjectile()
	if !ok {
		return component.Projectile{}, false
	}
	return *p, true
}

// Arrows возвращает оставшиеся на сцене стрелы от старых к новым.
func (g *Game) Arrows() []component.Arrow {
	ids := make([]types.EntityID, 0, len(g.ECS.Arrows))
	for id := range g.ECS.Arrows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	arrows := make([]component.Arrow, 0, len(ids))
	for _, id := range ids {
		arrows = append(arrows, *g.ECS.Arrows[id])
	}
	return arrows
}

// GameEventListener пишет в лог итоги выстрелов.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.ShotResolved:
		if r, ok := e.Data.(component.ShotResult); ok {
			log.Printf("Shot %s: %s (%+d, distance %.2f), total %d", r.ShotID, r.Tier, r.Points, r.Distance, r.Total)
		}
	case event.DrawRejected:
		log.Printf("Draw rejected: arrow still in flight (phase %s)", l.game.ECS.Phase)
	}
}
