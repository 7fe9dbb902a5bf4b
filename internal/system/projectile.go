// internal/system/projectile.go
package system

import (
	"github.com/Millie-beep/MillieStarDefender/internal/component"
	"github.com/Millie-beep/MillieStarDefender/internal/entity"
	"github.com/Millie-beep/MillieStarDefender/internal/event"
)

// Допуск на накопленную ошибку округления при последнем шаге
const arrivalEpsilon = 1e-9

// ProjectileSystem двигает снаряды и обрабатывает их падение на землю
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// Update сдвигает каждый живой снаряд на один шаг и возвращает число падений
func (s *ProjectileSystem) Update() int {
	impacts := 0
	for _, proj := range s.ecs.Projectiles {
		if proj.Destroyed {
			continue
		}

		remaining := proj.Target.Sub(proj.Pos).Len()
		if remaining <= proj.Speed+arrivalEpsilon {
			proj.Pos = proj.Target // без перелёта
		} else {
			proj.Pos = proj.Pos.Add(proj.Velocity())
		}

		if proj.Pos.Y >= proj.Target.Y {
			s.hitTarget(proj)
			impacts++
		}
	}
	return impacts
}

// hitTarget срабатывает ровно один раз за жизнь снаряда
func (s *ProjectileSystem) hitTarget(proj *component.Projectile) {
	if !s.ecs.MarkDestroyed(proj.ID) {
		return
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileImpact, Data: proj.TargetRef})

	// Цель могла уже погибнуть — тогда ничего не делаем
	switch proj.TargetRef.Kind {
	case component.TargetCity:
		if s.ecs.DamageCity(proj.TargetRef.ID) {
			s.eventDispatcher.Dispatch(event.Event{Type: event.CityDestroyed, Data: proj.TargetRef.ID})
		}
	case component.TargetBattery:
		if s.ecs.DestroyBattery(proj.TargetRef.ID) {
			s.eventDispatcher.Dispatch(event.Event{Type: event.BatteryDestroyed, Data: proj.TargetRef.ID})
		}
	}
}
