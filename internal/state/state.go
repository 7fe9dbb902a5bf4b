// internal/state/state.go
package state

import (
	"time"

	game "github.com/Millie-beep/MillieStarDefender/internal/app"
	"github.com/Millie-beep/MillieStarDefender/internal/component"
	"github.com/Millie-beep/MillieStarDefender/internal/config"
	"github.com/Millie-beep/MillieStarDefender/internal/event"
	"github.com/Millie-beep/MillieStarDefender/internal/ui"
	"github.com/Millie-beep/MillieStarDefender/pkg/render/ebitensurface"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current — текущее состояние или nil
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Shared — общие для всех состояний игра и средства отрисовки.
// Состояния меняются, а игра живёт всё время работы окна.
type Shared struct {
	Game      *game.Game
	Surface   *ebitensurface.Surface
	Overlay   *ui.Overlay
	Progress  *ui.ProgressIndicator
	Indicator *ui.StateIndicator
	Pause     *ui.PauseButton
	HUDFace   font.Face
	epoch     time.Time
}

// NewShared связывает игру с отрисовкой и подписывает индикатор на смену фаз
func NewShared(g *game.Game, hudFace, titleFace font.Face) *Shared {
	s := &Shared{
		Game:      g,
		Surface:   ebitensurface.New(hudFace),
		Overlay:   ui.NewOverlay(titleFace, hudFace),
		Progress:  ui.NewProgressIndicator(16, 36),
		Indicator: ui.NewStateIndicator(0, 24, 8),
		Pause:     ui.NewPauseButton(0, 64, 16, config.PausedColor, config.RoundEndColor),
		HUDFace:   hudFace,
		epoch:     time.Now(),
	}
	g.EventDispatcher.Subscribe(event.PhaseChanged, event.ListenerFunc(func(event.Event) {
		s.Indicator.Pulse()
		s.Pause.SetPaused(g.Phase() == component.PhasePaused)
	}))
	return s
}

// Now — монотонное время с момента запуска, которое получает Advance
func (s *Shared) Now() time.Duration {
	return time.Since(s.epoch)
}

// DrawWorld рисует поле и оверлей текущей фазы
func (s *Shared) DrawWorld(screen *ebiten.Image) {
	s.Surface.SetTarget(screen)
	s.Game.Draw(s.Surface)

	if banner, ok := s.Game.Banner(); ok {
		s.Overlay.Draw(screen, banner.Title, banner.Color, banner.Lines...)
	}
}

// PauseClicked — был ли в этом кадре клик по кнопке паузы
func (s *Shared) PauseClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return s.Pause.IsClicked(float32(x), float32(y))
}
