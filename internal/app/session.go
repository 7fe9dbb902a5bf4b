// internal/app/session.go
package app

import (
	"errors"
	"fmt"

	"github.com/Millie-beep/MillieStarDefender/internal/component"
)

// Trigger — событие, переводящее сессию из одной фазы в другую
type Trigger int

const (
	TriggerStart Trigger = iota
	TriggerPause
	TriggerResume
	TriggerLose
	TriggerWin
	TriggerCompleteRound
	TriggerNextRound
	TriggerNextLevel
	TriggerReplayLevel
	TriggerReset
)

func (t Trigger) String() string {
	switch t {
	case TriggerStart:
		return "Start"
	case TriggerPause:
		return "Pause"
	case TriggerResume:
		return "Resume"
	case TriggerLose:
		return "Lose"
	case TriggerWin:
		return "Win"
	case TriggerCompleteRound:
		return "CompleteRound"
	case TriggerNextRound:
		return "NextRound"
	case TriggerNextLevel:
		return "NextLevel"
	case TriggerReplayLevel:
		return "ReplayLevel"
	case TriggerReset:
		return "Reset"
	default:
		return fmt.Sprintf("Trigger(%d)", int(t))
	}
}

// ErrIllegalTransition — пара (фаза, событие) отсутствует в таблице переходов
var ErrIllegalTransition = errors.New("illegal session transition")

type transitionKey struct {
	from    component.Phase
	trigger Trigger
}

// transitions — полная таблица переходов. Reset разрешён из любой фазы и в таблицу не входит.
var transitions = map[transitionKey]component.Phase{
	{component.PhaseStart, TriggerStart}:           component.PhasePlaying,
	{component.PhasePlaying, TriggerPause}:         component.PhasePaused,
	{component.PhasePaused, TriggerResume}:         component.PhasePlaying,
	{component.PhasePlaying, TriggerLose}:          component.PhaseLost,
	{component.PhasePlaying, TriggerWin}:           component.PhaseWon,
	{component.PhasePlaying, TriggerCompleteRound}: component.PhaseRoundEnd,
	{component.PhaseRoundEnd, TriggerNextRound}:    component.PhasePlaying,
	{component.PhaseRoundEnd, TriggerNextLevel}:    component.PhasePlaying,
	{component.PhaseRoundEnd, TriggerReplayLevel}:  component.PhasePlaying,
}

// Session хранит текущую фазу и причину окончания раунда
type Session struct {
	phase     component.Phase
	reason    component.RoundEndReason
	lastBonus int
}

func NewSession() *Session {
	return &Session{phase: component.PhaseStart}
}

func (s *Session) Phase() component.Phase {
	return s.phase
}

// Can сообщает, допустим ли переход из текущей фазы
func (s *Session) Can(t Trigger) bool {
	if t == TriggerReset {
		return true
	}
	_, ok := s.next(t)
	return ok
}

// next ищет переход в таблице. После цели уровня следующий раунд того же уровня закрыт.
func (s *Session) next(t Trigger) (component.Phase, bool) {
	if t == TriggerNextRound && s.reason == component.RoundEndLevelGoal {
		return s.phase, false
	}
	next, ok := transitions[transitionKey{s.phase, t}]
	return next, ok
}

// Fire выполняет переход. При недопустимом переходе фаза не меняется.
func (s *Session) Fire(t Trigger) (component.Phase, error) {
	if t == TriggerReset {
		s.phase = component.PhaseStart
		s.reason = component.RoundEndNone
		s.lastBonus = 0
		return s.phase, nil
	}
	next, ok := s.next(t)
	if !ok {
		return s.phase, fmt.Errorf("%w: %s in %s", ErrIllegalTransition, t, s.phase)
	}
	if next != component.PhaseRoundEnd {
		s.reason = component.RoundEndNone
		s.lastBonus = 0
	}
	s.phase = next
	return next, nil
}
