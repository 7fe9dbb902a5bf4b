// internal/termhost/host.go
package termhost

import (
	"context"
	"image/color"
	"log"
	"time"

	game "github.com/Millie-beep/MillieStarDefender/internal/app"
	"github.com/Millie-beep/MillieStarDefender/internal/component"
	"github.com/Millie-beep/MillieStarDefender/internal/config"
	"github.com/Millie-beep/MillieStarDefender/pkg/render"
	"github.com/gdamore/tcell/v2"
)

// command — действие игрока, не зависящее от способа ввода
type command int

const (
	cmdNone command = iota
	cmdStart
	cmdTogglePause
	cmdContinue
	cmdNextRound
	cmdNextLevel
	cmdReplay
	cmdQuit
)

// commandForKey сопоставляет клавишу команде
func commandForKey(key tcell.Key, r rune) command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit
	case tcell.KeyEnter:
		return cmdContinue
	case tcell.KeyRune:
		switch r {
		case ' ':
			return cmdStart
		case 'p', 'P':
			return cmdTogglePause
		case 'n', 'N':
			return cmdNextRound
		case 'l', 'L':
			return cmdNextLevel
		case 'r', 'R':
			return cmdReplay
		case 'q', 'Q':
			return cmdQuit
		}
	}
	return cmdNone
}

// Host крутит игру в терминале. Все изменения мира идут из горутины Run.
type Host struct {
	screen  tcell.Screen
	surface *render.TerminalSurface
	game    *game.Game
	loop    *game.FrameLoop
	epoch   time.Time
	buttons tcell.ButtonMask
}

// New принимает уже инициализированный экран
func New(screen tcell.Screen, g *game.Game) *Host {
	return &Host{
		screen:  screen,
		surface: render.NewTerminalSurface(screen),
		game:    g,
		loop:    game.NewFrameLoop(config.FrameInterval),
		epoch:   time.Now(),
	}
}

// Run обрабатывает ввод и кадры, пока игрок не выйдет или не отменят ctx
func (h *Host) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer h.loop.Cancel()

	events := make(chan tcell.Event, 100)
	go h.pump(ctx, events)

	h.syncLoop()
	h.Render()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !h.HandleEvent(ev) {
				return nil
			}
			h.Render()
		case <-h.loop.C():
			h.Tick(h.loop.Since(h.epoch))
		}
	}
}

// pump читает события экрана, пока жив ctx. nil от PollEvent означает закрытый экран.
func (h *Host) pump(ctx context.Context, events chan<- tcell.Event) {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// Tick — один кадр: шаг симуляции и перерисовка
func (h *Host) Tick(now time.Duration) game.StepOutcome {
	out := h.game.Advance(now)
	h.syncLoop()
	h.Render()
	return out
}

// HandleEvent применяет событие терминала. false — пора выходить.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if !h.apply(commandForKey(ev.Key(), ev.Rune())) {
			return false
		}
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && h.buttons&tcell.Button1 == 0
		h.buttons = buttons
		if pressed {
			h.tap(ev.Position())
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
	h.syncLoop()
	return true
}

func (h *Host) tap(x, y int) {
	if h.game.Phase() == component.PhaseStart {
		h.apply(cmdStart)
		return
	}
	w, ht := h.surface.Size()
	// Центр клетки
	h.game.Tap(float64(x)+0.5, float64(y)+0.5, w, ht)
}

func (h *Host) apply(c command) bool {
	g := h.game
	var err error
	switch c {
	case cmdQuit:
		return false
	case cmdStart:
		if g.Phase() == component.PhaseStart {
			err = g.Start()
		}
	case cmdTogglePause:
		switch g.Phase() {
		case component.PhasePlaying:
			err = g.Pause()
		case component.PhasePaused:
			err = g.Resume()
		}
	case cmdContinue:
		switch g.Phase() {
		case component.PhaseStart:
			err = g.Start()
		case component.PhaseRoundEnd:
			err = g.Continue()
		case component.PhaseLost, component.PhaseWon:
			g.Reset()
		}
	case cmdNextRound:
		err = g.NextRound()
	case cmdNextLevel:
		err = g.NextLevel()
	case cmdReplay:
		err = g.ReplayLevel()
	}
	if err != nil {
		log.Printf("input: %v", err)
	}
	return true
}

// syncLoop держит таймер кадров запущенным только во время игры
func (h *Host) syncLoop() {
	if h.game.Phase() == component.PhasePlaying {
		h.loop.Request()
		return
	}
	h.loop.Cancel()
}

// Render рисует поле, строку состояния и оверлей фазы
func (h *Host) Render() {
	h.game.Draw(h.surface)

	h.drawLine(0, 0, h.game.StatusLine(), config.TextLightColor)
	w, ht := h.surface.Size()
	if banner, ok := h.game.Banner(); ok {
		y := float32(ht/2 - len(banner.Lines))
		h.surface.Text(banner.Title, float32(w/2), y, banner.Color)
		for i, line := range banner.Lines {
			h.surface.Text(line, float32(w/2), y+float32(i+2), config.TextLightColor)
		}
	}
	h.screen.Show()
}

func (h *Host) drawLine(x, y int, str string, c color.RGBA) {
	fg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	style := tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack)
	for i, r := range []rune(str) {
		h.screen.SetContent(x+i, y, r, nil, style)
	}
}
