// internal/config/config.go
package config

import (
	"image/color"
	"math"

	"go-archery/pkg/geom"
)

const (
	ScreenWidth  = 1000
	ScreenHeight = 500
	MaxDeltaTime = 0.06

	// Натяжение
	MinPower       = 0.0
	MaxPower       = 50.0
	PivotClearance = 7.0 // указатель не может подойти к центру ближе, чем на 7 по каждой оси
	ScaleDivisor   = 30.0
	MinScale       = 1.0
	MaxScale       = 2.0
	JitterRange    = 0.015 * math.Pi

	// Траектория
	PowerToRadius       = 9.0
	ArcWidthFactor      = 3.0
	ArcDrop             = 50.0
	OpacityDivisor      = 60.0
	FlightDuration      = 0.5      // секунды
	FlightSampleStep    = 1.0 / 60 // максимальный шаг семплирования полёта
	MaxFlightSampleStep = 0.02     // за шаг стрела смещается меньше своей длины
	ArrowLength         = 60.0

	// Очки
	BullseyeDistance = 7.0
	NearDistance     = 15.0
	BullseyePoints   = 100
	NearPoints       = 50
	EdgePoints       = 25
	MissPoints       = -50

	// Представление
	TargetRadius     = 40.0 // только для отрисовки, попадание считается по хорде
	MessageDuration  = 2.0  // секунды
	ArcFadeDuration  = 0.3
	BowRelaxDuration = 0.4
	StringRestX      = 88.0
	BowHalfHeight    = 50.0
	MaxSpentArrows   = 20
	HUDOffsetX       = 20
	HUDOffsetY       = 30
	IndicatorRadius  = 10.0
	IndicatorOffsetX = 30
)

var (
	// Pivot — точка вращения лука, из неё стартуют все траектории.
	Pivot = geom.Point{X: 100, Y: 250}
	// TargetCenter — центр мишени, от него считается расстояние попадания.
	TargetCenter = geom.Point{X: 900, Y: 249.5}
	// HitSegment — отрезок, с которым пересекается стрела.
	HitSegment = geom.Segment{P1: geom.Point{X: 875, Y: 280}, P2: geom.Point{X: 925, Y: 220}}
)

var (
	BackgroundColor  = color.RGBA{30, 34, 48, 255}
	GroundColor      = color.RGBA{48, 56, 72, 255}
	BowColor         = color.RGBA{205, 150, 90, 255}
	StringColor      = color.RGBA{230, 230, 230, 255}
	ArrowColor       = color.RGBA{240, 240, 240, 255}
	ArcColor         = color.RGBA{255, 255, 255, 255}
	HitSegmentColor  = color.RGBA{255, 255, 0, 96}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	GoodColor        = color.RGBA{80, 200, 80, 255}
	BadColor         = color.RGBA{220, 60, 60, 255}
	IdleStateColor   = color.RGBA{70, 130, 180, 220}
	DrawStateColor   = color.RGBA{194, 178, 128, 255}
	FlyStateColor    = color.RGBA{220, 60, 60, 220}
	PauseOverlay     = color.RGBA{0, 0, 0, 128}
	TargetRingColors = []color.RGBA{
		{240, 240, 240, 255},
		{220, 60, 60, 255},
		{240, 240, 240, 255},
		{220, 60, 60, 255},
	}
)
