// internal/system/scoring.go
package system

import (
	"log"

	"go-archery/internal/component"
	"go-archery/internal/config"
	"go-archery/internal/entity"
	"go-archery/pkg/geom"
)

// ScoreHit — очки за попадание по расстоянию до центра мишени. Верхней границы нет:
// любое попадание в хорду стоит хотя бы EdgePoints.
func ScoreHit(distance float64) component.Outcome {
	switch {
	case distance < config.BullseyeDistance:
		return component.Outcome{Tier: component.TierBullseye, Points: config.BullseyePoints}
	case distance < config.NearDistance:
		return component.Outcome{Tier: component.TierNear, Points: config.NearPoints}
	default:
		return component.Outcome{Tier: component.TierEdge, Points: config.EdgePoints}
	}
}

// ScoreMiss — штраф за промах.
func ScoreMiss() component.Outcome {
	return component.Outcome{Tier: component.TierMiss, Points: config.MissPoints}
}

// ScoringSystem — единственное место, где меняется счёт.
type ScoringSystem struct {
	ecs     *entity.ECS
	applied map[string]struct{}
}

func NewScoringSystem(ecs *entity.ECS) *ScoringSystem {
	return &ScoringSystem{
		ecs:     ecs,
		applied: make(map[string]struct{}),
	}
}

// ApplyHit засчитывает попадание в точке hit.
func (s *ScoringSystem) ApplyHit(shotID string, hit geom.Point) (component.ShotResult, bool) {
	distance := geom.Distance(hit, s.ecs.Target.Center)
	return s.Apply(shotID, ScoreHit(distance), distance, hit)
}

// ApplyMiss засчитывает промах.
func (s *ScoringSystem) ApplyMiss(shotID string) (component.ShotResult, bool) {
	return s.Apply(shotID, ScoreMiss(), 0, geom.Point{})
}

// Apply применяет результат выстрела к счёту. Один выстрел засчитывается ровно один раз:
// повторный вызов с тем же shotID ничего не меняет и возвращает false.
func (s *ScoringSystem) Apply(shotID string, outcome component.Outcome, distance float64, point geom.Point) (component.ShotResult, bool) {
	if _, done := s.applied[shotID]; done {
		log.Printf("ScoringSystem: shot %s already scored, ignoring %s", shotID, outcome.Tier)
		return component.ShotResult{}, false
	}
	s.applied[shotID] = struct{}{}

	score := s.ecs.Score
	score.Total += outcome.Points
	score.Shots++
	if outcome.Tier != component.TierMiss {
		score.Hits++
	}
	if outcome.Tier == component.TierBullseye {
		score.Bullseyes++
	}

	return component.ShotResult{
		ShotID:   shotID,
		Type:     outcome.Tier.Result(),
		Tier:     outcome.Tier,
		Points:   outcome.Points,
		Total:    score.Total,
		Distance: distance,
		Point:    point,
	}, true
}
