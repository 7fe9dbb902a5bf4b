// internal/state/menu_state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — стартовый экран, фаза START
type MenuState struct {
	sm     *StateMachine
	shared *Shared
}

func NewMenuState(sm *StateMachine, shared *Shared) *MenuState {
	return &MenuState{sm: sm, shared: shared}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if err := m.shared.Game.Start(); err != nil {
			log.Printf("start: %v", err)
			return
		}
		m.sm.SetState(NewGameState(m.sm, m.shared))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.shared.DrawWorld(screen)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
