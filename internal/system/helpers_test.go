package system

import (
	"github.com/Millie-beep/MillieStarDefender/internal/config"
	"github.com/Millie-beep/MillieStarDefender/internal/entity"
	"github.com/Millie-beep/MillieStarDefender/internal/event"
	"github.com/Millie-beep/MillieStarDefender/internal/utils"
)

type testWorld struct {
	ecs        *entity.ECS
	tuning     config.Tuning
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	events     map[event.EventType]int
}

func newTestWorld() *testWorld {
	tuning := config.DefaultTuning()
	tuning.Seed = 42
	w := &testWorld{
		ecs:        entity.NewECS(entity.DefaultLayout(tuning)),
		tuning:     tuning,
		dispatcher: event.NewDispatcher(),
		rng:        utils.NewPRNGService(tuning.Seed),
		events:     make(map[event.EventType]int),
	}
	for _, t := range []event.EventType{
		event.ProjectileDestroyed, event.ProjectileImpact, event.CityDestroyed,
		event.BatteryDestroyed, event.ScoreChanged,
	} {
		w.dispatcher.Subscribe(t, event.ListenerFunc(func(e event.Event) {
			w.events[e.Type]++
		}))
	}
	return w
}
