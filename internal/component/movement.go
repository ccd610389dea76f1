// internal/component/movement.go
package component

import "go-archery/pkg/geom"

// Pose — положение и направление стрелы в момент семплирования.
type Pose struct {
	Position geom.Point
	Heading  float64 // радианы, направление касательной к траектории
}
