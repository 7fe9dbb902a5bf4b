// internal/state/pause_state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игру: Advance не вызывается, ввод по полю игнорируется
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	shared        *Shared
}

func NewPauseState(sm *StateMachine, prevState State, shared *Shared) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		shared:        shared,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := false
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9) || s.shared.PauseClicked() {
		unpause = true
	}

	if unpause {
		if err := s.shared.Game.Resume(); err != nil {
			log.Printf("resume: %v", err)
			return
		}
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
		return
	}
	s.shared.DrawWorld(screen)
}

func (s *PauseState) Exit() {}
