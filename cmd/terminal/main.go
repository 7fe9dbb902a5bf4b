// cmd/terminal/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	game "github.com/Millie-beep/MillieStarDefender/internal/app"
	"github.com/Millie-beep/MillieStarDefender/internal/assets"
	"github.com/Millie-beep/MillieStarDefender/internal/config"
	"github.com/Millie-beep/MillieStarDefender/internal/debug"
	"github.com/Millie-beep/MillieStarDefender/internal/termhost"
	"github.com/gdamore/tcell/v2"
)

func main() {
	tuningPath := flag.String("tuning", "", "path to tuning JSON (defaults are used when empty)")
	pprofAddr := flag.String("pprof", "", "pprof listen address, empty to disable")
	logPath := flag.String("log", "", "log file; logging is discarded when empty")
	flag.Parse()

	// stderr занят экраном терминала
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	if err := run(*tuningPath, *pprofAddr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run: %v\n", err)
		os.Exit(1)
	}
}

func run(tuningPath, pprofAddr string) error {
	tuning := config.DefaultTuning()
	if tuningPath != "" {
		var err error
		if tuning, err = config.LoadTuning(tuningPath); err != nil {
			return err
		}
	}
	debug.StartProfiler(pprofAddr)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	host := termhost.New(screen, game.NewGame(tuning, assets.BackgroundOrNil(config.BackgroundImagePath)))
	if err := host.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
