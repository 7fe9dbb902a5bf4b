package termhost

import (
	"context"
	"strings"
	"testing"
	"time"

	game "github.com/Millie-beep/MillieStarDefender/internal/app"
	"github.com/Millie-beep/MillieStarDefender/internal/component"
	"github.com/Millie-beep/MillieStarDefender/internal/config"
	"github.com/gdamore/tcell/v2"
)

func newTestHost(t *testing.T) (*Host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	tuning := config.DefaultTuning()
	tuning.Seed = 3
	return New(screen, game.NewGame(tuning, nil)), screen
}

func TestCommandForKey(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want command
	}{
		{tcell.KeyRune, ' ', cmdStart},
		{tcell.KeyRune, 'p', cmdTogglePause},
		{tcell.KeyRune, 'N', cmdNextRound},
		{tcell.KeyRune, 'l', cmdNextLevel},
		{tcell.KeyRune, 'r', cmdReplay},
		{tcell.KeyRune, 'q', cmdQuit},
		{tcell.KeyEnter, 0, cmdContinue},
		{tcell.KeyEscape, 0, cmdQuit},
		{tcell.KeyCtrlC, 0, cmdQuit},
		{tcell.KeyRune, 'x', cmdNone},
	}
	for _, tt := range tests {
		if got := commandForKey(tt.key, tt.r); got != tt.want {
			t.Errorf("commandForKey(%v, %q) = %v, want %v", tt.key, tt.r, got, tt.want)
		}
	}
}

func TestLoopRunsOnlyWhilePlaying(t *testing.T) {
	h, _ := newTestHost(t)
	h.syncLoop()
	if h.loop.Running() {
		t.Fatal("loop running in START")
	}

	h.apply(cmdStart)
	h.syncLoop()
	if !h.loop.Running() || h.game.Phase() != component.PhasePlaying {
		t.Fatal("loop must run while playing")
	}

	h.apply(cmdTogglePause)
	h.syncLoop()
	if h.loop.Running() || h.game.Phase() != component.PhasePaused {
		t.Fatal("loop must stop on pause")
	}

	h.apply(cmdTogglePause)
	h.syncLoop()
	if !h.loop.Running() {
		t.Fatal("loop must restart on resume")
	}
	h.loop.Cancel()
}

func TestQuitCommand(t *testing.T) {
	h, _ := newTestHost(t)
	if h.apply(cmdQuit) {
		t.Error("quit must stop the host")
	}
	if !h.apply(cmdNone) {
		t.Error("unknown command must keep running")
	}
}

func TestMouseTapFiresOncePerPress(t *testing.T) {
	h, _ := newTestHost(t)
	defer h.loop.Cancel()

	// Первый клик на стартовом экране запускает игру
	h.HandleEvent(tcell.NewEventMouse(40, 12, tcell.Button1, tcell.ModNone))
	if h.game.Phase() != component.PhasePlaying {
		t.Fatalf("phase %v after click on start screen", h.game.Phase())
	}
	h.HandleEvent(tcell.NewEventMouse(40, 12, tcell.ButtonNone, tcell.ModNone))

	h.HandleEvent(tcell.NewEventMouse(40, 12, tcell.Button1, tcell.ModNone))
	if got := h.game.ECS.RemainingAmmo(); got != 29 {
		t.Fatalf("ammo = %d after one click, want 29", got)
	}
	// Кнопка удерживается — повторного выстрела нет
	h.HandleEvent(tcell.NewEventMouse(41, 12, tcell.Button1, tcell.ModNone))
	if got := h.game.ECS.RemainingAmmo(); got != 29 {
		t.Errorf("held button fired again: ammo %d", got)
	}

	h.HandleEvent(tcell.NewEventMouse(41, 12, tcell.ButtonNone, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(10, 12, tcell.Button1, tcell.ModNone))
	if got := h.game.ECS.RemainingAmmo(); got != 28 {
		t.Errorf("ammo = %d after second click, want 28", got)
	}
}

func TestTickDrawsStatusLine(t *testing.T) {
	h, screen := newTestHost(t)
	defer h.loop.Cancel()
	h.apply(cmdStart)

	out := h.Tick(time.Second)
	if !out.Stepped {
		t.Fatal("tick did not step the game")
	}

	var row strings.Builder
	for x := 0; x < 20; x++ {
		r, _, _, _ := screen.GetContent(x, 0)
		row.WriteRune(r)
	}
	if !strings.HasPrefix(row.String(), "Score 0/500") {
		t.Errorf("status row = %q", row.String())
	}
}

func TestRenderShowsBannerOnStart(t *testing.T) {
	h, screen := newTestHost(t)
	h.Render()

	w, ht := screen.Size()
	found := false
	for y := 0; y < ht && !found; y++ {
		var row strings.Builder
		for x := 0; x < w; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			row.WriteRune(r)
		}
		found = strings.Contains(row.String(), "STAR DEFENDER")
	}
	if !found {
		t.Error("start banner not drawn")
	}
}

func TestContinueResetsAfterLoss(t *testing.T) {
	h, _ := newTestHost(t)
	defer h.loop.Cancel()
	h.apply(cmdStart)
	for _, b := range h.game.ECS.Batteries {
		h.game.ECS.DestroyBattery(b.ID)
	}
	h.Tick(0)
	if h.game.Phase() != component.PhaseLost {
		t.Fatalf("phase %v", h.game.Phase())
	}
	if h.loop.Running() {
		t.Error("loop must stop after loss")
	}

	h.apply(cmdContinue)
	if h.game.Phase() != component.PhaseStart {
		t.Errorf("phase %v after continue, want START", h.game.Phase())
	}
}

func TestPumpStopsWithHost(t *testing.T) {
	h, screen := newTestHost(t)
	ctx, cancel := context.WithCancel(context.Background())

	// Никто не читает канал, как после выхода из Run
	events := make(chan tcell.Event)
	done := make(chan struct{})
	go func() {
		h.pump(ctx, events)
		close(done)
	}()

	screen.InjectMouse(1, 1, tcell.ButtonNone, tcell.ModNone)
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("event pump blocked after the host stopped")
	}
}

func TestNextRoundKeyAfterLevelGoal(t *testing.T) {
	h, _ := newTestHost(t)
	defer h.loop.Cancel()
	h.apply(cmdStart)
	h.game.ECS.Progress.Score = h.game.LevelGoal()
	h.Tick(0)
	if h.game.Phase() != component.PhaseRoundEnd {
		t.Fatalf("phase %v, want ROUND_END", h.game.Phase())
	}

	h.apply(commandForKey(tcell.KeyRune, 'n'))
	if h.game.Phase() != component.PhaseRoundEnd || h.game.Round() != 1 {
		t.Errorf("next round started after level goal: phase %v round %d", h.game.Phase(), h.game.Round())
	}
	h.apply(cmdContinue)
	if h.game.Level() != 2 || h.game.Phase() != component.PhasePlaying {
		t.Errorf("continue: level %d phase %v", h.game.Level(), h.game.Phase())
	}
}
