// internal/component/interceptor.go
package component

import "github.com/Millie-beep/MillieStarDefender/internal/types"

// InterceptorState — фаза перехватчика
type InterceptorState int

const (
	Flying InterceptorState = iota
	Exploding
)

func (s InterceptorState) String() string {
	switch s {
	case Flying:
		return "FLYING"
	case Exploding:
		return "EXPLODING"
	default:
		return "UNKNOWN"
	}
}

// Interceptor — ракета игрока. Летит к точке прицела, затем взрывается.
type Interceptor struct {
	ID        types.EntityID
	Origin    Position
	Pos       Position
	Target    Position
	Speed     float64
	State     InterceptorState
	Radius    float64
	MaxRadius float64
	Age       int  // тиков в фазе взрыва
	Done      bool // радиус вернулся к нулю
}
