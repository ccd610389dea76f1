// internal/component/score.go
package component

import (
	"fmt"

	"go-archery/pkg/geom"
)

// Tier — категория результата выстрела.
type Tier string

const (
	TierBullseye Tier = "BULLSEYE"
	TierNear     Tier = "NEAR"
	TierEdge     Tier = "EDGE"
	TierMiss     Tier = "MISS"
)

// ResultType — тип результата для внешнего мира: bullseye, hit или miss.
type ResultType string

const (
	ResultBullseye ResultType = "bullseye"
	ResultHit      ResultType = "hit"
	ResultMiss     ResultType = "miss"
)

// Result maps a tier onto the coarser result type reported to renderers.
func (t Tier) Result() ResultType {
	switch t {
	case TierBullseye:
		return ResultBullseye
	case TierNear, TierEdge:
		return ResultHit
	}
	return ResultMiss
}

// Outcome — очки и категория одного выстрела.
type Outcome struct {
	Tier   Tier
	Points int
}

// ShotResult — итог выстрела, сообщается один раз.
type ShotResult struct {
	ShotID   string
	Type     ResultType
	Tier     Tier
	Points   int        // изменение счёта
	Total    int        // счёт после применения
	Distance float64    // расстояние от точки попадания до центра, 0 при промахе
	Point    geom.Point // точка попадания на хорде
}

// Message returns the text shown to the player for this result.
func (r ShotResult) Message() string {
	switch r.Type {
	case ResultBullseye:
		return fmt.Sprintf("Bullseye! %+d Points", r.Points)
	case ResultHit:
		return fmt.Sprintf("Hit! %+d Points", r.Points)
	}
	return fmt.Sprintf("Missed! %+d Points", r.Points)
}

// Score — счёт сессии. Изменяется только через ScoringSystem.
type Score struct {
	Total     int
	Shots     int
	Hits      int
	Bullseyes int
}
