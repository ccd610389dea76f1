package system

import (
	"math"
	"testing"

	"go-archery/internal/config"
	"go-archery/pkg/geom"
)

func TestBuildCurveStraightBack(t *testing.T) {
	curve := BuildCurve(math.Pi, 50, config.Pivot)

	want := geom.CubicBezier{
		P0: geom.Point{X: 100, Y: 250},
		P1: geom.Point{X: 550, Y: 250},
		P2: geom.Point{X: 1000, Y: 300},
		P3: geom.Point{X: 1450, Y: 300},
	}
	if curve.Bezier != want {
		t.Errorf("Bezier = %+v, want %+v", curve.Bezier, want)
	}
	if want := 50.0 / 60; curve.Opacity != want {
		t.Errorf("Opacity = %v, want %v", curve.Opacity, want)
	}
}

func TestBuildCurveShape(t *testing.T) {
	angle := 2.9
	power := 40.0
	c := BuildCurve(angle, power, config.Pivot).Bezier

	ox := math.Cos(angle-math.Pi) * power * 9
	oy := math.Sin(angle-math.Pi) * power * 9
	check := func(name string, got geom.Point, x, y float64) {
		t.Helper()
		if math.Abs(got.X-x) > 1e-9 || math.Abs(got.Y-y) > 1e-9 {
			t.Errorf("%s = %+v, want (%v, %v)", name, got, x, y)
		}
	}
	check("P0", c.P0, 100, 250)
	check("P1", c.P1, 100+ox, 250+oy)
	check("P2", c.P2, 100+2*ox, 250+oy+50)
	check("P3", c.P3, 100+3*ox, 300)
}

func TestBuildCurveDeterministic(t *testing.T) {
	for _, tc := range []struct{ angle, power float64 }{{math.Pi, 50}, {2.5, 12.3}, {3.1, 0}} {
		a := BuildCurve(tc.angle, tc.power, config.Pivot)
		b := BuildCurve(tc.angle, tc.power, config.Pivot)
		if a != b {
			t.Errorf("BuildCurve(%v, %v) not deterministic: %+v vs %+v", tc.angle, tc.power, a, b)
		}
	}
}

func TestBuildCurveClampsPower(t *testing.T) {
	if BuildCurve(math.Pi, 80, config.Pivot) != BuildCurve(math.Pi, 50, config.Pivot) {
		t.Errorf("power above 50 must be clamped")
	}
	zero := BuildCurve(math.Pi, -5, config.Pivot)
	if zero.Bezier.P1 != config.Pivot || zero.Opacity != 0 {
		t.Errorf("negative power must behave as zero, got %+v", zero)
	}
}

func TestCurveStartsAtPivot(t *testing.T) {
	pivot := geom.Point{X: 10, Y: 20}
	if c := BuildCurve(2, 30, pivot); c.Bezier.P0 != pivot {
		t.Errorf("curve must start at the pivot, got %+v", c.Bezier.P0)
	}
}
