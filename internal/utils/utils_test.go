package utils

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct{ v, lo, hi, want float64 }{
		{-5, 0, 50, 0},
		{25, 0, 50, 25},
		{50.5, 0, 50, 50},
		{1.7, 1, 2, 1.7},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	if got := NormalizeAngle(3 * math.Pi); math.Abs(got-math.Pi) > 1e-9 {
		t.Errorf("NormalizeAngle(3π) = %v, want π", got)
	}
	if got := NormalizeAngle(-math.Pi / 2); got != -math.Pi/2 {
		t.Errorf("NormalizeAngle(-π/2) = %v", got)
	}
}

func TestElasticOutEndpoints(t *testing.T) {
	if ElasticOut(0) != 0 || ElasticOut(1) != 1 {
		t.Errorf("ElasticOut must map 0->0 and 1->1")
	}
	if ElasticOut(-1) != 0 || ElasticOut(2) != 1 {
		t.Errorf("ElasticOut must clamp outside [0, 1]")
	}
}

func TestPRNGSameSeedSameSequence(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 10; i++ {
		if x, y := a.Symmetric(1), b.Symmetric(1); x != y {
			t.Fatalf("step %d: %v != %v", i, x, y)
		}
	}
	if a.Seed() != 42 {
		t.Errorf("Seed() = %d, want 42", a.Seed())
	}
}

func TestPRNGZeroSeedPicksOne(t *testing.T) {
	if NewPRNGService(0).Seed() == 0 {
		t.Errorf("zero seed must be replaced by a time based one")
	}
}

func TestSymmetricStaysInRange(t *testing.T) {
	s := NewPRNGService(7)
	r := 0.015 * math.Pi
	for i := 0; i < 1000; i++ {
		if v := s.Symmetric(r); v < -r || v >= r {
			t.Fatalf("Symmetric(%v) = %v out of range", r, v)
		}
	}
}
