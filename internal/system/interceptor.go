// internal/system/interceptor.go
package system

import (
	"github.com/Millie-beep/MillieStarDefender/internal/component"
	"github.com/Millie-beep/MillieStarDefender/internal/config"
	"github.com/Millie-beep/MillieStarDefender/internal/entity"
	"github.com/Millie-beep/MillieStarDefender/internal/event"
)

// InterceptorSystem ведёт перехватчики к цели и обсчитывает их взрывы
type InterceptorSystem struct {
	ecs             *entity.ECS
	tuning          config.Tuning
	eventDispatcher *event.Dispatcher
}

func NewInterceptorSystem(ecs *entity.ECS, tuning config.Tuning, eventDispatcher *event.Dispatcher) *InterceptorSystem {
	return &InterceptorSystem{
		ecs:             ecs,
		tuning:          tuning,
		eventDispatcher: eventDispatcher,
	}
}

// Update продвигает все перехватчики на тик и возвращает число сбитых снарядов
func (s *InterceptorSystem) Update() int {
	kills := 0
	for _, in := range s.ecs.Interceptors {
		switch in.State {
		case component.Flying:
			s.fly(in)
		case component.Exploding:
			if in.Done {
				continue
			}
			s.explode(in)
			kills += s.destroyInRadius(in)
		}
	}
	return kills
}

func (s *InterceptorSystem) fly(in *component.Interceptor) {
	delta := in.Target.Sub(in.Pos)
	// Переход во взрыв, когда до цели меньше одного шага — иначе будет дрожание вокруг точки
	if delta.Len() < in.Speed {
		in.Pos = in.Target
		in.State = component.Exploding
		in.Radius = 0
		in.Age = 0
		return
	}
	in.Pos = in.Pos.Add(delta.Unit().Scale(in.Speed))
}

// explode: рост радиуса фиксированное число тиков, затем сжатие до нуля
func (s *InterceptorSystem) explode(in *component.Interceptor) {
	inc := s.tuning.ExplosionIncrement
	if in.Age < s.tuning.ExplosionGrowTicks {
		in.Radius += inc
		if in.Radius > in.MaxRadius {
			in.Radius = in.MaxRadius
		}
	} else {
		in.Radius -= inc
		if in.Radius <= 0 {
			in.Radius = 0
			in.Done = true
		}
	}
	in.Age++
}

// destroyInRadius проверяется каждый тик, поэтому снаряд, влетевший во взрыв позже, тоже сбивается
func (s *InterceptorSystem) destroyInRadius(in *component.Interceptor) int {
	if in.Radius <= 0 {
		return 0
	}
	kills := 0
	for id, proj := range s.ecs.Projectiles {
		if proj.Destroyed {
			continue
		}
		if proj.Pos.DistanceTo(in.Pos) <= in.Radius {
			if CreditKill(s.ecs, s.eventDispatcher, id, s.tuning.KillScore) {
				kills++
			}
		}
	}
	return kills
}
