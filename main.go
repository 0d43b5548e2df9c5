package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dungeon-kernel/internal/game"
	"dungeon-kernel/internal/generate"
	"dungeon-kernel/internal/logger"
	"dungeon-kernel/internal/render"

	"github.com/gdamore/tcell/v2"
)

func main() {
	seed := flag.Int64("seed", 0, "Dungeon seed (0 = random)")
	debug := flag.Bool("debug", false, "Check world invariants after every tick")
	logPath := flag.String("log", "", "Write diagnostic logs to this file")
	palette := flag.String("palette", "classic", "Terrain palette (classic, amber)")
	corridors := flag.String("corridors", "lshaped", "Corridor style (lshaped, zshaped, straight)")
	flag.Parse()

	cfg := game.DefaultConfig()
	cfg.Seed = *seed
	cfg.Debug = *debug
	style, err := generate.ParseCorridorStyle(*corridors)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	cfg.Corridors = style

	if err := run(cfg, *logPath, *palette); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg game.Config, logPath, palette string) error {
	if logPath == "" {
		logger.Discard()
	} else {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger.Init(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	g, err := game.New(screen, cfg, render.PaletteNamed(palette))
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()
	return g.Run(ctx)
}
