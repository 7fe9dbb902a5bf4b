// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/Millie-beep/MillieStarDefender/internal/component"
	"github.com/Millie-beep/MillieStarDefender/internal/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// GameState — игра идёт, а также экраны конца раунда, проигрыша и победы
type GameState struct {
	sm            *StateMachine
	shared        *Shared
	lastClickTime time.Time
	touchIDs      []ebiten.TouchID
}

func NewGameState(sm *StateMachine, shared *Shared) *GameState {
	return &GameState{
		sm:            sm,
		shared:        shared,
		lastClickTime: time.Now(),
	}
}

func (g *GameState) Enter() {
	g.lastClickTime = time.Now()
}

func (g *GameState) Update(deltaTime float64) {
	gm := g.shared.Game
	switch gm.Phase() {
	case component.PhasePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
			inpututil.IsKeyJustPressed(ebiten.KeyF9) || g.shared.PauseClicked() {
			if err := gm.Pause(); err != nil {
				log.Printf("pause: %v", err)
				return
			}
			g.sm.SetState(NewPauseState(g.sm, g, g.shared))
			return
		}
		g.handleTaps()
		gm.Advance(g.shared.Now())

	case component.PhaseRoundEnd:
		var err error
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
			err = gm.Continue()
		case inpututil.IsKeyJustPressed(ebiten.KeyN):
			err = gm.NextRound()
		case inpututil.IsKeyJustPressed(ebiten.KeyL):
			err = gm.NextLevel()
		case inpututil.IsKeyJustPressed(ebiten.KeyR):
			err = gm.ReplayLevel()
		}
		if err != nil {
			log.Printf("round end: %v", err)
		}

	case component.PhaseLost, component.PhaseWon:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			gm.Reset()
			g.sm.SetState(NewMenuState(g.sm, g.shared))
		}
	}
}

// handleTaps переводит клики мыши и касания в выстрелы
func (g *GameState) handleTaps() {
	w, h := config.ScreenWidth, config.ScreenHeight
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if time.Since(g.lastClickTime) < config.ClickCooldown*time.Millisecond {
			return
		}
		g.lastClickTime = time.Now()
		x, y := ebiten.CursorPosition()
		g.shared.Game.Tap(float64(x), float64(y), w, h)
	}

	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		g.shared.Game.Tap(float64(x), float64(y), w, h)
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.shared.DrawWorld(screen)
	g.drawHUD(screen)
}

func (g *GameState) drawHUD(screen *ebiten.Image) {
	gm := g.shared.Game
	if face := g.shared.HUDFace; face != nil {
		text.Draw(screen, gm.StatusLine(), face, 16, 24, config.TextLightColor)
	}
	g.shared.Progress.Draw(screen, gm.Score(), gm.LevelStart(), gm.LevelGoal(), gm.Round())

	right := float32(screen.Bounds().Dx() - 24)
	g.shared.Indicator.X = right
	g.shared.Indicator.Draw(screen, color.Color(gm.PhaseColor()))
	g.shared.Pause.X = right
	g.shared.Pause.Draw(screen)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f", ebiten.ActualTPS()), 16, screen.Bounds().Dy()-20)
}

func (g *GameState) Exit() {}
