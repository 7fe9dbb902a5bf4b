// internal/app/game.go
package app

import (
	"image"
	"log"
	"time"

	"github.com/Millie-beep/MillieStarDefender/internal/component"
	"github.com/Millie-beep/MillieStarDefender/internal/config"
	"github.com/Millie-beep/MillieStarDefender/internal/entity"
	"github.com/Millie-beep/MillieStarDefender/internal/event"
	"github.com/Millie-beep/MillieStarDefender/internal/system"
	"github.com/Millie-beep/MillieStarDefender/internal/types"
	"github.com/Millie-beep/MillieStarDefender/internal/utils"
	"github.com/Millie-beep/MillieStarDefender/pkg/render"
)

// StepOutcome — что произошло за один кадр симуляции
type StepOutcome struct {
	Stepped   bool
	Spawned   types.EntityID // 0, если снаряд не появился
	Impacts   int
	Kills     int
	Verdict   system.Verdict
	Phase     component.Phase
	Reason    component.RoundEndReason
	Bonus     int
	DeltaTime time.Duration
}

// Game holds the main game state and logic.
// Advance и Tap — единственные точки изменения мира, оба вызываются из одного потока хоста.
type Game struct {
	ECS               *entity.ECS
	Tuning            config.Tuning
	Session           *Session
	EventDispatcher   *event.Dispatcher
	Rng               *utils.PRNGService
	SpawnSystem       *system.SpawnSystem
	ProjectileSystem  *system.ProjectileSystem
	InterceptorSystem *system.InterceptorSystem
	OutcomeSystem     *system.OutcomeSystem
	InputSystem       *system.InputSystem
	RenderSystem      *system.RenderSystem

	lastTick    time.Duration
	hasLastTick bool
}

// NewGame initializes a new game instance. background может быть nil.
func NewGame(tuning config.Tuning, background image.Image) *Game {
	ecs := entity.NewECS(entity.DefaultLayout(tuning))
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(tuning.Seed)

	g := &Game{
		ECS:               ecs,
		Tuning:            tuning,
		Session:           NewSession(),
		EventDispatcher:   eventDispatcher,
		Rng:               rng,
		SpawnSystem:       system.NewSpawnSystem(ecs, tuning, rng),
		ProjectileSystem:  system.NewProjectileSystem(ecs, eventDispatcher),
		InterceptorSystem: system.NewInterceptorSystem(ecs, tuning, eventDispatcher),
		OutcomeSystem:     system.NewOutcomeSystem(ecs, tuning),
		InputSystem:       system.NewInputSystem(ecs, tuning, eventDispatcher),
		RenderSystem:      system.NewRenderSystem(background),
	}
	g.RenderSystem.ResetStars(rng)
	log.Printf("New game, seed %d", rng.Seed())
	return g
}

// Advance progresses the game state by one frame. now — монотонная метка времени хоста.
// Вне фазы PLAYING ничего не делает.
func (g *Game) Advance(now time.Duration) StepOutcome {
	if g.Session.Phase() != component.PhasePlaying {
		return StepOutcome{Phase: g.Session.Phase()}
	}

	var dt time.Duration
	if g.hasLastTick {
		dt = now - g.lastTick
		if dt < 0 {
			dt = 0
		}
		if dt > config.MaxFrameDelta {
			dt = config.MaxFrameDelta
		}
	}
	g.lastTick = now
	g.hasLastTick = true

	out := StepOutcome{Stepped: true, DeltaTime: dt}
	if p := g.SpawnSystem.Update(dt); p != nil {
		out.Spawned = p.ID
	}
	out.Impacts = g.ProjectileSystem.Update()
	out.Kills = g.InterceptorSystem.Update()
	g.collectGarbage()

	out.Verdict, out.Bonus = g.OutcomeSystem.Evaluate()
	g.applyVerdict(out.Verdict, out.Bonus)
	out.Phase = g.Session.Phase()
	out.Reason = g.Session.reason
	return out
}

// Tap обрабатывает нажатие в координатах поверхности размера surfaceW x surfaceH
func (g *Game) Tap(screenX, screenY float64, surfaceW, surfaceH int) system.Action {
	wx, wy := utils.ScreenToWorld(screenX, screenY, surfaceW, surfaceH)
	return g.TapWorld(wx, wy)
}

// TapWorld обрабатывает нажатие сразу в мировых координатах
func (g *Game) TapWorld(x, y float64) system.Action {
	if g.Session.Phase() != component.PhasePlaying {
		return system.Action{Kind: system.ActionNone}
	}
	return g.InputSystem.ResolveTap(x, y)
}

// Draw рисует снимок мира, сделанный после шага симуляции
func (g *Game) Draw(dst render.Surface) {
	g.RenderSystem.Draw(dst, g.ECS.Snapshot())
}

// --- Переходы сессии ---

func (g *Game) Start() error {
	if err := g.transition(TriggerStart); err != nil {
		return err
	}
	g.restartClock()
	return nil
}

func (g *Game) Pause() error {
	return g.transition(TriggerPause)
}

func (g *Game) Resume() error {
	if err := g.transition(TriggerResume); err != nil {
		return err
	}
	// Время на паузе не должно попасть в таймер появления
	g.hasLastTick = false
	return nil
}

// NextRound — тот же уровень, следующий раунд. Города не трогаем.
func (g *Game) NextRound() error {
	if err := g.transition(TriggerNextRound); err != nil {
		return err
	}
	g.ECS.Progress.Round++
	g.prepareRound()
	return nil
}

// NextLevel — следующий уровень с первого раунда
func (g *Game) NextLevel() error {
	if err := g.transition(TriggerNextLevel); err != nil {
		return err
	}
	g.ECS.Progress.Level++
	g.ECS.Progress.Round = 1
	g.prepareRound()
	return nil
}

// ReplayLevel откатывает на уровень назад, счёт — к началу этого уровня
func (g *Game) ReplayLevel() error {
	if err := g.transition(TriggerReplayLevel); err != nil {
		return err
	}
	progress := &g.ECS.Progress
	progress.Level--
	if progress.Level < 1 {
		progress.Level = 1
	}
	progress.Round = 1
	progress.Score = (progress.Level - 1) * g.Tuning.WinScorePerLevel
	g.ECS.RestoreCities()
	g.prepareRound()
	g.EventDispatcher.Dispatch(event.Event{Type: event.ScoreChanged, Data: progress.Score})
	return nil
}

// Reset — полный сброс в начальное состояние, разрешён из любой фазы
func (g *Game) Reset() {
	_ = g.transition(TriggerReset)
	g.ECS.Progress = component.Progress{Level: 1, Round: 1}
	g.ECS.RestoreCities()
	g.prepareRound()
	g.RenderSystem.ResetStars(g.Rng)
	g.EventDispatcher.Dispatch(event.Event{Type: event.ScoreChanged, Data: 0})
}

func (g *Game) prepareRound() {
	g.ECS.RefillBatteries()
	g.ECS.ClearProjectiles()
	g.ECS.ClearInterceptors()
	g.restartClock()
}

func (g *Game) restartClock() {
	g.SpawnSystem.Reset()
	g.hasLastTick = false
}

func (g *Game) transition(t Trigger) error {
	from := g.Session.Phase()
	to, err := g.Session.Fire(t)
	if err != nil {
		return err
	}
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.PhaseChanged,
		Data: event.PhaseChange{From: from.String(), To: to.String()},
	})
	return nil
}

func (g *Game) applyVerdict(v system.Verdict, bonus int) {
	result := event.RoundResult{
		Level: g.ECS.Progress.Level,
		Round: g.ECS.Progress.Round,
		Score: g.ECS.Progress.Score,
		Bonus: bonus,
	}

	var err error
	switch v {
	case system.VerdictLost:
		err = g.transition(TriggerLose)
	case system.VerdictWon:
		if err = g.transition(TriggerWin); err == nil {
			g.EventDispatcher.Dispatch(event.Event{Type: event.LevelComplete, Data: result})
		}
	case system.VerdictLevelGoal:
		if err = g.transition(TriggerCompleteRound); err == nil {
			g.Session.reason = component.RoundEndLevelGoal
			g.EventDispatcher.Dispatch(event.Event{Type: event.LevelComplete, Data: result})
		}
	case system.VerdictAmmoExhausted:
		if err = g.transition(TriggerCompleteRound); err == nil {
			g.Session.reason = component.RoundEndAmmoExhausted
			g.Session.lastBonus = bonus
			g.EventDispatcher.Dispatch(event.Event{Type: event.ScoreChanged, Data: g.ECS.Progress.Score})
			g.EventDispatcher.Dispatch(event.Event{Type: event.RoundComplete, Data: result})
		}
	}
	if err != nil {
		log.Printf("Не удалось применить вердикт %s: %v", v, err)
	}
}

func (g *Game) collectGarbage() {
	for id, proj := range g.ECS.Projectiles {
		if proj.Destroyed {
			g.ECS.RemoveProjectile(id)
		}
	}
	for id, in := range g.ECS.Interceptors {
		if in.State == component.Exploding && in.Done {
			g.ECS.RemoveInterceptor(id)
		}
	}
}

// --- Public Accessors ---

func (g *Game) Phase() component.Phase { return g.Session.Phase() }
func (g *Game) Score() int             { return g.ECS.Progress.Score }
func (g *Game) Level() int             { return g.ECS.Progress.Level }
func (g *Game) Round() int             { return g.ECS.Progress.Round }

// RoundEndReason — причина последнего окончания раунда
func (g *Game) RoundEndReason() component.RoundEndReason { return g.Session.reason }

// LastBonus — бонус, начисленный в конце раунда
func (g *Game) LastBonus() int { return g.Session.lastBonus }

// LevelGoal — счёт, необходимый для текущего уровня
func (g *Game) LevelGoal() int { return g.Tuning.LevelGoal(g.ECS.Progress.Level) }
