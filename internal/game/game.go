package game

import (
	"context"
	"fmt"
	"sort"

	"dungeon-kernel/internal/logger"
	"dungeon-kernel/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Game hosts one engine on a tcell screen: it polls keys, drives the
// engine and redraws after every input. The caller owns the screen's
// Init and Fini.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	engine   *Engine
	cfg      Config
}

// New builds a fresh dungeon and a host for it on screen.
func New(screen tcell.Screen, cfg Config, pal render.Palette) (*Game, error) {
	engine, err := NewEngine(cfg)
	if err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen, pal, cfg.LogVisible),
		engine:   engine,
		cfg:      cfg,
	}, nil
}

// Engine returns the hosted engine.
func (g *Game) Engine() *Engine { return g.engine }

// Run plays until the player quits or ctx is cancelled. The run log is
// saved on the way out and a summary is shown until the next key.
func (g *Game) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = g.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	if err := g.engine.Advance(ctx, ActionNone); err != nil {
		return err
	}
	g.engine.Log().Add("Welcome to the dungeon. Move with arrows, hjklyubn or the numpad.")

	for {
		g.draw()

		switch ev := g.screen.PollEvent().(type) {
		case nil:
			return g.finish(ctx)
		case *tcell.EventInterrupt:
			return g.finish(ctx)
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			act := KeyToAction(ev)
			if act == ActionQuit {
				return g.finish(ctx)
			}
			if g.engine.PlayerDead() {
				continue
			}
			if err := g.engine.Advance(ctx, act); err != nil {
				logger.Log.WithError(err).Error("engine stopped")
				return err
			}
		}
	}
}

func (g *Game) draw() {
	g.renderer.Draw(render.Snapshot(g.engine.World(), g.renderer.Palette(), g.cfg.LogVisible))
}

// finish saves the run log and shows the summary screen until a key is
// pressed or ctx ends.
func (g *Game) finish(ctx context.Context) error {
	log := newRunLog(g.engine)
	saveRunLog(log)
	logger.Log.WithFields(logrus.Fields{
		"turns":   log.TurnsPlayed,
		"outcome": log.Outcome,
	}).Info("run finished")

	if ctx.Err() != nil {
		return nil
	}
	g.renderer.DrawLines(summaryLines(log))
	for {
		switch g.screen.PollEvent().(type) {
		case *tcell.EventKey, *tcell.EventInterrupt, nil:
			return nil
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.DrawLines(summaryLines(log))
		}
	}
}

// summaryLines formats a run log for the end screen.
func summaryLines(log RunLog) []string {
	title := "You leave the dungeon."
	if log.Outcome == "died" {
		title = "The dungeon claims you."
	}
	lines := []string{
		title,
		"",
		fmt.Sprintf("Seed:            %d", log.Seed),
		fmt.Sprintf("Turns survived:  %d", log.TurnsPlayed),
	}

	kinds := make([]string, 0, len(log.EnemiesKilled))
	total := 0
	for k, n := range log.EnemiesKilled {
		kinds = append(kinds, k)
		total += n
	}
	sort.Strings(kinds)
	lines = append(lines, fmt.Sprintf("Enemies slain:   %d", total))
	for _, k := range kinds {
		lines = append(lines, fmt.Sprintf("  %s x%d", k, log.EnemiesKilled[k]))
	}
	if log.CauseOfDeath != "" {
		lines = append(lines, fmt.Sprintf("Killed by:       %s", log.CauseOfDeath))
	}
	return append(lines, "", "Press any key.")
}
