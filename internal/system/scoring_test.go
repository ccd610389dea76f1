package system

import (
	"testing"

	"go-archery/internal/component"
	"go-archery/pkg/geom"
)

func TestScoreHitTiers(t *testing.T) {
	cases := []struct {
		distance float64
		tier     component.Tier
		points   int
	}{
		{0, component.TierBullseye, 100},
		{3.5, component.TierBullseye, 100},
		{6.999, component.TierBullseye, 100},
		{7, component.TierNear, 50},
		{11, component.TierNear, 50},
		{14.999, component.TierNear, 50},
		{15, component.TierEdge, 25},
		{39, component.TierEdge, 25},
		{1000, component.TierEdge, 25},
	}
	for _, c := range cases {
		got := ScoreHit(c.distance)
		if got.Tier != c.tier || got.Points != c.points {
			t.Errorf("ScoreHit(%v) = %+v, want %s/%d", c.distance, got, c.tier, c.points)
		}
	}
}

func TestScoreHitMonotonic(t *testing.T) {
	prev := ScoreHit(0).Points
	for d := 0.0; d < 60; d += 0.25 {
		p := ScoreHit(d).Points
		if p > prev {
			t.Fatalf("points grew with distance at %v: %d > %d", d, p, prev)
		}
		if p < 25 {
			t.Fatalf("valid hit at %v scored %d, below edge points", d, p)
		}
		prev = p
	}
}

func TestScoreMiss(t *testing.T) {
	if got := ScoreMiss(); got.Points != -50 || got.Tier != component.TierMiss {
		t.Errorf("ScoreMiss() = %+v", got)
	}
}

func TestScoringRunningTotal(t *testing.T) {
	ecs := newTestECS()
	scoring := NewScoringSystem(ecs)

	scoring.Apply("a", ScoreHit(1), 1, geom.Point{})
	scoring.ApplyMiss("b")
	last, ok := scoring.Apply("c", ScoreHit(20), 20, geom.Point{})

	if !ok {
		t.Fatalf("third shot was not applied")
	}
	if ecs.Score.Total != 75 || last.Total != 75 {
		t.Errorf("total = %d (result %d), want 75", ecs.Score.Total, last.Total)
	}
	if ecs.Score.Shots != 3 || ecs.Score.Hits != 2 || ecs.Score.Bullseyes != 1 {
		t.Errorf("counters = %+v", *ecs.Score)
	}
}

func TestScoringAppliesShotOnce(t *testing.T) {
	ecs := newTestECS()
	scoring := NewScoringSystem(ecs)

	if _, ok := scoring.ApplyMiss("same"); !ok {
		t.Fatalf("first apply must succeed")
	}
	if _, ok := scoring.ApplyMiss("same"); ok {
		t.Errorf("second apply for the same shot must be ignored")
	}
	if ecs.Score.Total != -50 || ecs.Score.Shots != 1 {
		t.Errorf("score = %+v, want a single miss", *ecs.Score)
	}
}

func TestApplyHitUsesTargetCenter(t *testing.T) {
	ecs := newTestECS()
	scoring := NewScoringSystem(ecs)

	res, _ := scoring.ApplyHit("x", geom.Point{X: 900, Y: 249.5})
	if res.Type != component.ResultBullseye || res.Points != 100 || res.Distance != 0 {
		t.Errorf("center hit = %+v", res)
	}
	if res.Message() != "Bullseye! +100 Points" {
		t.Errorf("Message() = %q", res.Message())
	}
}
