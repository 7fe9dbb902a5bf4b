// internal/component/projectile.go
package component

import "github.com/Millie-beep/MillieStarDefender/internal/types"

// TargetKind — тип наземной цели
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetCity
	TargetBattery
)

// TargetRef — явная ссылка на цель, запоминается при появлении снаряда
type TargetRef struct {
	Kind TargetKind
	ID   types.EntityID
}

// Projectile представляет падающий снаряд.
type Projectile struct {
	ID        types.EntityID
	Origin    Position
	Pos       Position
	Target    Position
	TargetRef TargetRef
	Direction Position // единичный вектор от Origin к Target
	Speed     float64
	Destroyed bool
}

// Velocity — смещение за один тик
func (p *Projectile) Velocity() Position {
	return p.Direction.Scale(p.Speed)
}
