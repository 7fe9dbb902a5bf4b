package app

import (
	"errors"
	"testing"
	"time"

	"github.com/Millie-beep/MillieStarDefender/internal/component"
	"github.com/Millie-beep/MillieStarDefender/internal/config"
	"github.com/Millie-beep/MillieStarDefender/internal/event"
	"github.com/Millie-beep/MillieStarDefender/internal/system"
	"github.com/Millie-beep/MillieStarDefender/internal/types"
)

const frame = 16 * time.Millisecond

func newTestGame(t *testing.T) *Game {
	t.Helper()
	tuning := config.DefaultTuning()
	tuning.Seed = 7
	return NewGame(tuning, nil)
}

func startedGame(t *testing.T) *Game {
	t.Helper()
	g := newTestGame(t)
	if err := g.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return g
}

// runFrames продвигает игру кадрами по 16мс и возвращает новую метку времени
func runFrames(g *Game, from time.Duration, n int) time.Duration {
	for i := 0; i < n; i++ {
		from += frame
		g.Advance(from)
	}
	return from
}

func TestAdvanceIsNoOpOutsidePlaying(t *testing.T) {
	g := newTestGame(t)
	if out := g.Advance(time.Second); out.Stepped {
		t.Fatal("Advance stepped in START")
	}
	if a := g.Tap(600, 450, config.ScreenWidth, config.ScreenHeight); a.Kind != system.ActionNone {
		t.Errorf("tap in START = %+v", a)
	}
	if got := g.ECS.RemainingAmmo(); got != 30 {
		t.Errorf("ammo changed to %d", got)
	}
}

func TestFirstProjectileAfterInterval(t *testing.T) {
	g := startedGame(t)
	now := time.Duration(0)
	g.Advance(now)

	frames := 0
	for len(g.ECS.Projectiles) == 0 {
		now += frame
		g.Advance(now)
		frames++
		if frames > 200 {
			t.Fatal("no projectile spawned")
		}
	}
	if elapsed := time.Duration(frames) * frame; elapsed <= g.SpawnSystem.Interval() {
		t.Errorf("spawned after %v, interval %v", elapsed, g.SpawnSystem.Interval())
	}
}

func TestLongFrameIsClamped(t *testing.T) {
	g := startedGame(t)
	g.Advance(0)
	out := g.Advance(10 * time.Second)
	if out.DeltaTime != config.MaxFrameDelta {
		t.Errorf("DeltaTime = %v, want %v", out.DeltaTime, config.MaxFrameDelta)
	}
	if out.Spawned != 0 {
		t.Error("a single long frame must not spawn")
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	g := startedGame(t)
	now := runFrames(g, 0, 200)
	g.TapWorld(400, 520)
	snapBefore := g.ECS.Snapshot()

	if err := g.Pause(); err != nil {
		t.Fatal(err)
	}
	if a := g.TapWorld(100, 100); a.Kind != system.ActionNone {
		t.Error("tap accepted while paused")
	}
	for i := 0; i < 100; i++ {
		now += frame
		if out := g.Advance(now); out.Stepped {
			t.Fatal("stepped while paused")
		}
	}
	snapAfter := g.ECS.Snapshot()
	if len(snapAfter.Interceptors) != len(snapBefore.Interceptors) || g.ECS.RemainingAmmo() != 29 {
		t.Error("world changed while paused")
	}

	if err := g.Resume(); err != nil {
		t.Fatal(err)
	}
	now += time.Hour
	if out := g.Advance(now); out.DeltaTime != 0 {
		t.Errorf("first frame after resume dt = %v, want 0", out.DeltaTime)
	}
}

func TestLosingAllBatteries(t *testing.T) {
	g := startedGame(t)
	var phases []string
	g.EventDispatcher.Subscribe(event.PhaseChanged, event.ListenerFunc(func(e event.Event) {
		phases = append(phases, e.Data.(event.PhaseChange).To)
	}))

	for _, b := range g.ECS.Batteries {
		g.ECS.DestroyBattery(b.ID)
	}
	out := g.Advance(0)
	if out.Verdict != system.VerdictLost || g.Phase() != component.PhaseLost {
		t.Fatalf("verdict %v, phase %v", out.Verdict, g.Phase())
	}
	if len(phases) != 1 || phases[0] != component.PhaseLost.String() {
		t.Errorf("phase events = %v", phases)
	}

	g.Reset()
	if g.Phase() != component.PhaseStart || g.Score() != 0 || g.Level() != 1 || g.ECS.RemainingAmmo() != 30 {
		t.Errorf("reset state: phase %v score %d level %d ammo %d", g.Phase(), g.Score(), g.Level(), g.ECS.RemainingAmmo())
	}
}

func TestAmmoExhaustedEndsRoundWithBonus(t *testing.T) {
	g := startedGame(t)
	damaged := g.ECS.Cities[0]
	g.ECS.DamageCity(damaged.ID)
	for _, b := range g.ECS.Batteries {
		b.Ammo = 0
	}

	out := g.Advance(0)
	want := 6*g.Tuning.CityBonus + 17*g.Tuning.ShieldBonus
	if out.Verdict != system.VerdictAmmoExhausted || out.Bonus != want {
		t.Fatalf("verdict %v bonus %d, want AMMO_EXHAUSTED %d", out.Verdict, out.Bonus, want)
	}
	if out.Reason != component.RoundEndAmmoExhausted {
		t.Errorf("step reason = %v", out.Reason)
	}
	if g.Phase() != component.PhaseRoundEnd || g.RoundEndReason() != component.RoundEndAmmoExhausted {
		t.Fatalf("phase %v reason %v", g.Phase(), g.RoundEndReason())
	}
	if g.Score() != want || g.LastBonus() != want {
		t.Errorf("score %d, last bonus %d", g.Score(), g.LastBonus())
	}

	if err := g.NextRound(); err != nil {
		t.Fatal(err)
	}
	if g.Round() != 2 || g.Level() != 1 {
		t.Errorf("level %d round %d", g.Level(), g.Round())
	}
	if g.ECS.RemainingAmmo() != 30 {
		t.Errorf("batteries not refilled: %d", g.ECS.RemainingAmmo())
	}
	if damaged.Shields != damaged.MaxShields-1 {
		t.Error("next round must keep city damage")
	}
}

func TestLevelGoalBeatsAmmoCheck(t *testing.T) {
	g := startedGame(t)
	g.ECS.Progress.Score = g.LevelGoal()
	for _, b := range g.ECS.Batteries {
		b.Ammo = 0
	}
	var completed int
	g.EventDispatcher.Subscribe(event.LevelComplete, event.ListenerFunc(func(event.Event) { completed++ }))

	out := g.Advance(0)
	if out.Verdict != system.VerdictLevelGoal || g.RoundEndReason() != component.RoundEndLevelGoal {
		t.Fatalf("verdict %v reason %v", out.Verdict, g.RoundEndReason())
	}
	if g.Score() != 500 {
		t.Errorf("bonus credited on level goal: score %d", g.Score())
	}
	if completed != 1 {
		t.Errorf("LevelComplete events = %d", completed)
	}

	if err := g.Continue(); err != nil {
		t.Fatal(err)
	}
	if g.Level() != 2 || g.Round() != 1 || g.Phase() != component.PhasePlaying {
		t.Errorf("after next level: level %d round %d phase %v", g.Level(), g.Round(), g.Phase())
	}
}

func TestWinAtMaxLevel(t *testing.T) {
	g := startedGame(t)
	g.ECS.Progress.Level = g.Tuning.MaxLevel
	g.ECS.Progress.Score = g.LevelGoal()

	g.Advance(0)
	if g.Phase() != component.PhaseWon {
		t.Fatalf("phase %v, want WON", g.Phase())
	}
	if err := g.NextLevel(); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("NextLevel after WON: %v", err)
	}
}

func TestReplayLevel(t *testing.T) {
	g := startedGame(t)
	g.ECS.Progress.Level = 3
	g.ECS.Progress.Round = 2
	g.ECS.Progress.Score = 1200
	g.ECS.DamageCity(g.ECS.Cities[0].ID)
	for _, b := range g.ECS.Batteries {
		b.Ammo = 0
	}
	g.Advance(0)
	if g.Phase() != component.PhaseRoundEnd {
		t.Fatalf("phase %v", g.Phase())
	}

	if err := g.ReplayLevel(); err != nil {
		t.Fatal(err)
	}
	if g.Level() != 2 || g.Round() != 1 || g.Score() != 500 {
		t.Errorf("level %d round %d score %d", g.Level(), g.Round(), g.Score())
	}
	if g.ECS.ActiveShields() != 18 {
		t.Errorf("cities not restored: shields %d", g.ECS.ActiveShields())
	}
}

func TestIllegalTransitionKeepsState(t *testing.T) {
	g := startedGame(t)
	if err := g.NextRound(); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("NextRound while playing: %v", err)
	}
	if g.Round() != 1 || g.Phase() != component.PhasePlaying {
		t.Errorf("state changed: round %d phase %v", g.Round(), g.Phase())
	}
}

func TestScoreNeverDecreasesDuringPlay(t *testing.T) {
	g := startedGame(t)
	now := time.Duration(0)
	last := 0
	for i := 0; i < 3000 && g.Phase() == component.PhasePlaying; i++ {
		now += frame
		g.Advance(now)
		// Стреляем по самому низкому снаряду раз в полсекунды
		if i%30 == 0 {
			var lowest *component.Projectile
			for _, p := range g.ECS.Projectiles {
				if !p.Destroyed && (lowest == nil || p.Pos.Y > lowest.Pos.Y) {
					lowest = p
				}
			}
			if lowest != nil {
				g.TapWorld(lowest.Pos.X, lowest.Pos.Y)
			}
		}
		if g.Score() < last {
			t.Fatalf("score decreased from %d to %d at frame %d", last, g.Score(), i)
		}
		last = g.Score()
		if g.ECS.RemainingAmmo() < 0 {
			t.Fatal("negative ammo")
		}
	}
	if last == 0 {
		t.Error("expected at least one kill")
	}
}

func TestTapMapsSurfaceToWorld(t *testing.T) {
	g := startedGame(t)
	a := g.Tap(600, 450, config.ScreenWidth, config.ScreenHeight)
	if a.Kind != system.ActionFire {
		t.Fatalf("action %+v", a)
	}
	in := g.ECS.Interceptors[a.Interceptors[1]]
	if in.Target != (component.Position{X: 400, Y: 300}) {
		t.Errorf("target %+v, want world (400, 300)", in.Target)
	}
}

func TestBannerPerPhase(t *testing.T) {
	g := newTestGame(t)
	if b, ok := g.Banner(); !ok || b.Title == "" {
		t.Error("START must show a banner")
	}
	g.Start()
	if _, ok := g.Banner(); ok {
		t.Error("no banner while playing")
	}
	if g.StatusLine() == "" {
		t.Error("empty status line")
	}
	g.Pause()
	if b, _ := g.Banner(); b.Title != "PAUSED" {
		t.Errorf("banner %q", b.Title)
	}
}

// quietGame — игра без случайных снарядов: интервал появления больше длины теста
func quietGame(t *testing.T) *Game {
	t.Helper()
	tuning := config.DefaultTuning()
	tuning.Seed = 7
	tuning.BaseSpawnIntervalMs = 600_000
	tuning.MinSpawnIntervalMs = 600_000
	g := NewGame(tuning, nil)
	g.Reset()
	if err := g.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return g
}

// fireNextTo ставит почти неподвижный снаряд и стреляет левой батареей рядом с ним
func fireNextTo(t *testing.T, g *Game) (*component.Projectile, types.EntityID) {
	t.Helper()
	p := g.ECS.SpawnProjectile(
		component.Position{X: 140, Y: 290},
		component.Position{X: 140, Y: config.GroundY},
		component.TargetRef{}, 0.01)

	a := g.TapWorld(100, 290)
	if a.Kind != system.ActionFire || len(a.Interceptors) != 1 {
		t.Fatalf("tap = %+v, want a single interceptor", a)
	}
	return p, a.Interceptors[0]
}

func TestInterceptorDetonatesOnProjectile(t *testing.T) {
	g := quietGame(t)
	p, id := fireNextTo(t, g)

	now := time.Duration(0)
	for i := 0; ; i++ {
		if i > 200 {
			t.Fatal("projectile was never destroyed")
		}
		now += frame
		out := g.Advance(now)
		if out.Kills == 0 {
			continue
		}
		if out.Kills != 1 {
			t.Errorf("kills = %d, want 1", out.Kills)
		}
		break
	}

	if _, ok := g.ECS.Projectiles[p.ID]; ok {
		t.Error("destroyed projectile is still in the world")
	}
	if g.Score() != g.Tuning.KillScore {
		t.Errorf("score = %d, want %d", g.Score(), g.Tuning.KillScore)
	}
	in, ok := g.ECS.Interceptors[id]
	if !ok {
		t.Fatal("interceptor removed at the moment of the kill")
	}
	if in.State != component.Exploding || in.Radius <= 0 {
		t.Errorf("interceptor state %v radius %v, want EXPLODING with radius > 0", in.State, in.Radius)
	}
	if g.Phase() != component.PhasePlaying {
		t.Errorf("phase = %v", g.Phase())
	}
}

func TestExplodedInterceptorIsCollected(t *testing.T) {
	g := quietGame(t)
	_, id := fireNextTo(t, g)

	var radii []float64
	removed := false
	now := time.Duration(0)
	for i := 0; i < 400; i++ {
		now += frame
		g.Advance(now)
		in, ok := g.ECS.Interceptors[id]
		if !ok {
			removed = true
			continue
		}
		if removed {
			t.Fatalf("interceptor came back after removal at frame %d", i)
		}
		if in.State == component.Exploding {
			radii = append(radii, in.Radius)
		}
	}
	if !removed {
		t.Fatal("interceptor never removed")
	}
	if len(radii) == 0 {
		t.Fatal("explosion never observed")
	}

	peak := 0
	for i, r := range radii {
		if r > radii[peak] {
			peak = i
		}
	}
	for i := 1; i < len(radii); i++ {
		if i <= peak && radii[i] < radii[i-1] {
			t.Fatalf("radius shrank before the peak: %v", radii)
		}
		if i > peak && radii[i] > radii[i-1] {
			t.Fatalf("radius grew after the peak: %v", radii)
		}
	}
	if last := radii[len(radii)-1]; last > g.Tuning.ExplosionIncrement {
		t.Errorf("last observed radius %v, want at most one increment before removal", last)
	}
	if n := len(g.ECS.Snapshot().Interceptors); n != 0 {
		t.Errorf("snapshot still holds %d interceptors", n)
	}
}

func TestNoSecondFanfareAfterLevelGoal(t *testing.T) {
	g := startedGame(t)
	var completed int
	g.EventDispatcher.Subscribe(event.LevelComplete, event.ListenerFunc(func(event.Event) { completed++ }))
	g.ECS.Progress.Score = g.LevelGoal()
	g.Advance(0)
	if g.Phase() != component.PhaseRoundEnd {
		t.Fatalf("phase %v, want ROUND_END", g.Phase())
	}

	if err := g.NextRound(); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("NextRound after level goal: %v", err)
	}
	if g.Round() != 1 || g.Phase() != component.PhaseRoundEnd {
		t.Errorf("round %d phase %v changed", g.Round(), g.Phase())
	}
	g.Advance(frame)
	if completed != 1 {
		t.Errorf("LevelComplete events = %d, want 1", completed)
	}
}
