// internal/system/input.go
package system

import (
	"math"

	"github.com/Millie-beep/MillieStarDefender/internal/component"
	"github.com/Millie-beep/MillieStarDefender/internal/config"
	"github.com/Millie-beep/MillieStarDefender/internal/entity"
	"github.com/Millie-beep/MillieStarDefender/internal/event"
	"github.com/Millie-beep/MillieStarDefender/internal/types"
)

// ActionKind — чем закончилось нажатие
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionDirectHit
	ActionFire
)

func (k ActionKind) String() string {
	switch k {
	case ActionDirectHit:
		return "DIRECT_HIT"
	case ActionFire:
		return "FIRE"
	default:
		return "NONE"
	}
}

// Action — результат обработки нажатия
type Action struct {
	Kind         ActionKind
	Hits         int
	BatteryID    types.EntityID
	Interceptors []types.EntityID
}

// InputSystem превращает нажатие в мировых координатах в прямое попадание или выстрел
type InputSystem struct {
	ecs             *entity.ECS
	tuning          config.Tuning
	eventDispatcher *event.Dispatcher
}

func NewInputSystem(ecs *entity.ECS, tuning config.Tuning, eventDispatcher *event.Dispatcher) *InputSystem {
	return &InputSystem{
		ecs:             ecs,
		tuning:          tuning,
		eventDispatcher: eventDispatcher,
	}
}

// ResolveTap: сначала прямые попадания, и только если их нет — выстрел ближайшей установки
func (s *InputSystem) ResolveTap(x, y float64) Action {
	tap := component.Position{X: x, Y: y}

	if hits := s.directHits(tap); hits > 0 {
		// Мгновенный взрыв полного радиуса, сразу в фазе сжатия
		s.ecs.SpawnExplosion(tap, s.tuning.ExplosionMaxRadius, s.tuning.ExplosionGrowTicks)
		return Action{Kind: ActionDirectHit, Hits: hits}
	}

	battery := s.nearestArmedBattery(x)
	if battery == nil {
		return Action{Kind: ActionNone}
	}
	return s.fire(battery, tap)
}

func (s *InputSystem) directHits(tap component.Position) int {
	hits := 0
	for id, proj := range s.ecs.Projectiles {
		if proj.Destroyed {
			continue
		}
		if proj.Pos.DistanceTo(tap) <= s.tuning.DirectHitRadius {
			if CreditKill(s.ecs, s.eventDispatcher, id, s.tuning.KillScore) {
				hits++
			}
		}
	}
	return hits
}

// nearestArmedBattery — при равенстве расстояний побеждает установка левее по списку
func (s *InputSystem) nearestArmedBattery(x float64) *component.Battery {
	var best *component.Battery
	bestDist := math.Inf(1)
	for _, b := range s.ecs.ArmedBatteries() {
		if d := math.Abs(b.X - x); d < bestDist {
			best = b
			bestDist = d
		}
	}
	return best
}

// fire списывает один патрон. Центральная установка выпускает три ракеты за один патрон.
func (s *InputSystem) fire(b *component.Battery, tap component.Position) Action {
	b.Ammo--

	origin := component.Position{X: b.X, Y: s.ecs.GroundY - config.BatteryHeight}
	offsets := []float64{0}
	if b.Center {
		o := s.tuning.CenterFireOffset
		offsets = []float64{-o, 0, o}
	}

	action := Action{Kind: ActionFire, BatteryID: b.ID}
	for _, off := range offsets {
		shift := component.Position{X: off}
		in := s.ecs.SpawnInterceptor(origin.Add(shift), tap.Add(shift), s.tuning.InterceptorSpeed, s.tuning.ExplosionMaxRadius)
		action.Interceptors = append(action.Interceptors, in.ID)
	}
	return action
}
