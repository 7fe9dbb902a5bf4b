// internal/system/utils.go
package system

import (
	"github.com/Millie-beep/MillieStarDefender/internal/entity"
	"github.com/Millie-beep/MillieStarDefender/internal/event"
	"github.com/Millie-beep/MillieStarDefender/internal/types"
)

// CreditKill уничтожает снаряд и начисляет очки за него.
// Очки начисляются только один раз за время жизни снаряда.
func CreditKill(ecs *entity.ECS, dispatcher *event.Dispatcher, projectileID types.EntityID, score int) bool {
	if !ecs.MarkDestroyed(projectileID) {
		return false
	}
	ecs.Progress.Score += score
	dispatcher.Dispatch(event.Event{Type: event.ProjectileDestroyed, Data: projectileID})
	dispatcher.Dispatch(event.Event{Type: event.ScoreChanged, Data: ecs.Progress.Score})
	return true
}
