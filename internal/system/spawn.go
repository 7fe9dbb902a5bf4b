// internal/system/spawn.go
package system

import (
	"time"

	"github.com/Millie-beep/MillieStarDefender/internal/component"
	"github.com/Millie-beep/MillieStarDefender/internal/config"
	"github.com/Millie-beep/MillieStarDefender/internal/entity"
	"github.com/Millie-beep/MillieStarDefender/internal/utils"
)

// SpawnSystem выпускает снаряды с интервалом, зависящим от уровня и раунда
type SpawnSystem struct {
	ecs        *entity.ECS
	tuning     config.Tuning
	rng        *utils.PRNGService
	SpawnTimer time.Duration
}

func NewSpawnSystem(ecs *entity.ECS, tuning config.Tuning, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{
		ecs:    ecs,
		tuning: tuning,
		rng:    rng,
	}
}

// Interval — текущий интервал появления снарядов
func (s *SpawnSystem) Interval() time.Duration {
	return s.tuning.SpawnInterval(s.ecs.Progress.Level, s.ecs.Progress.Round)
}

// Update накапливает время и выпускает не больше одного снаряда за кадр
func (s *SpawnSystem) Update(deltaTime time.Duration) *component.Projectile {
	s.SpawnTimer += deltaTime
	if s.SpawnTimer <= s.Interval() {
		return nil
	}
	s.SpawnTimer = 0

	// Патроны кончились — раунд доигрывается без новых снарядов
	if s.ecs.RemainingAmmo() == 0 {
		return nil
	}
	return s.spawnProjectile()
}

// Reset обнуляет таймер, например при смене раунда
func (s *SpawnSystem) Reset() {
	s.SpawnTimer = 0
}

func (s *SpawnSystem) spawnProjectile() *component.Projectile {
	targets := s.ecs.GroundTargets()
	if len(targets) == 0 {
		return nil
	}
	target := targets[s.rng.Intn(len(targets))]

	origin := component.Position{X: s.rng.Range(0, s.ecs.Width), Y: 0}
	aim := component.Position{X: target.X, Y: s.ecs.GroundY}
	speed := s.tuning.ProjectileSpeed(s.ecs.Progress.Level, s.ecs.Progress.Round)

	return s.ecs.SpawnProjectile(origin, aim, target.Ref, speed)
}
