// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	game "github.com/Millie-beep/MillieStarDefender/internal/app"
	"github.com/Millie-beep/MillieStarDefender/internal/assets"
	"github.com/Millie-beep/MillieStarDefender/internal/audio"
	"github.com/Millie-beep/MillieStarDefender/internal/config"
	"github.com/Millie-beep/MillieStarDefender/internal/debug"
	"github.com/Millie-beep/MillieStarDefender/internal/event"
	"github.com/Millie-beep/MillieStarDefender/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime)
	if deltaTime > config.MaxFrameDelta {
		deltaTime = config.MaxFrameDelta
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime.Seconds())
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	tuningPath := flag.String("tuning", "", "path to tuning JSON (defaults are used when empty)")
	pprofAddr := flag.String("pprof", "localhost:6060", "pprof listen address, empty to disable")
	mute := flag.Bool("mute", false, "disable level-complete fanfare")
	flag.Parse()

	debug.StartProfiler(*pprofAddr)

	tuning := config.DefaultTuning()
	if *tuningPath != "" {
		var err error
		if tuning, err = config.LoadTuning(*tuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	g := game.NewGame(tuning, assets.BackgroundOrNil(config.BackgroundImagePath))
	if !*mute {
		player, err := audio.NewPlayer()
		if err != nil {
			log.Printf("WARNING: audio disabled: %v", err)
		} else {
			g.EventDispatcher.Subscribe(event.LevelComplete, player)
		}
	}

	shared := state.NewShared(g,
		assets.FontFaceOrDefault(config.FontSize),
		assets.FontFaceOrDefault(config.TitleFontSize),
	)
	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewMenuState(sm, shared))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Star Defender")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
