// internal/component/arrow.go
package component

// Arrow — уже выпущенная стрела, которая остаётся на сцене после выстрела.
type Arrow struct {
	ShotID string
	Pose   Pose
	Tier   Tier
}
