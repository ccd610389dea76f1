// internal/component/target.go
package component

import "go-archery/pkg/geom"

// Target — неподвижная мишень. Визуально круглая, но попадание проверяется по хорде HitSegment.
type Target struct {
	Center     geom.Point
	HitSegment geom.Segment
}
