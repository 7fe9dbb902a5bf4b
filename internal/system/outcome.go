// internal/system/outcome.go
package system

import (
	"github.com/Millie-beep/MillieStarDefender/internal/config"
	"github.com/Millie-beep/MillieStarDefender/internal/entity"
)

// Verdict — итог проверки условий окончания
type Verdict int

const (
	VerdictContinue Verdict = iota
	VerdictLost
	VerdictLevelGoal
	VerdictWon
	VerdictAmmoExhausted
)

func (v Verdict) String() string {
	switch v {
	case VerdictLost:
		return "LOST"
	case VerdictLevelGoal:
		return "LEVEL_GOAL"
	case VerdictWon:
		return "WON"
	case VerdictAmmoExhausted:
		return "AMMO_EXHAUSTED"
	default:
		return "CONTINUE"
	}
}

// OutcomeSystem проверяет поражение, цель уровня и исчерпание патронов, строго в этом порядке
type OutcomeSystem struct {
	ecs    *entity.ECS
	tuning config.Tuning
}

func NewOutcomeSystem(ecs *entity.ECS, tuning config.Tuning) *OutcomeSystem {
	return &OutcomeSystem{ecs: ecs, tuning: tuning}
}

// Evaluate возвращает вердикт и бонус. Бонус за раунд сразу прибавляется к счёту.
func (s *OutcomeSystem) Evaluate() (Verdict, int) {
	if len(s.ecs.ActiveBatteries()) == 0 {
		return VerdictLost, 0
	}

	progress := &s.ecs.Progress
	if progress.Score >= s.tuning.LevelGoal(progress.Level) {
		if s.tuning.MaxLevel > 0 && progress.Level >= s.tuning.MaxLevel {
			return VerdictWon, 0
		}
		return VerdictLevelGoal, 0
	}

	if s.ecs.RemainingAmmo() == 0 && s.ecs.LiveProjectiles() == 0 && len(s.ecs.Interceptors) == 0 {
		bonus := s.Bonus()
		progress.Score += bonus
		return VerdictAmmoExhausted, bonus
	}
	return VerdictContinue, 0
}

// Bonus — награда за уцелевшие города и их щиты
func (s *OutcomeSystem) Bonus() int {
	return s.tuning.CityBonus*len(s.ecs.ActiveCities()) + s.tuning.ShieldBonus*s.ecs.ActiveShields()
}
