// internal/component/projectile.go
package component

// Projectile представляет летящую стрелу. Создаётся при отпускании, удаляется при попадании или промахе.
type Projectile struct {
	ShotID   string
	Curve    TrajectoryCurve
	Elapsed  float64 // секунды с момента выстрела
	Duration float64 // полное время полёта по кривой
	T        float64 // позиция на кривой, [0, 1]
	Pose     Pose
	Resolved bool
}

// Exhausted сообщает, дошла ли стрела до конца кривой.
func (p *Projectile) Exhausted() bool {
	return p.T >= 1
}
