package game

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/factory"
	"dungeon-kernel/internal/gamemap"
	"dungeon-kernel/internal/generate"
	"dungeon-kernel/internal/logger"
	"dungeon-kernel/internal/resource"
	"dungeon-kernel/internal/system"

	"github.com/sirupsen/logrus"
)

// TickError reports a tick aborted by a panic inside the pipeline or the
// reaper. The turn state does not advance.
type TickError struct {
	State resource.RunState
	Cause error
}

func (e *TickError) Error() string {
	return fmt.Sprintf("tick aborted in %s: %v", e.State, e.Cause)
}

func (e *TickError) Unwrap() error { return e.Cause }

// Engine owns one world and drives it one tick at a time. It is not safe
// for concurrent use; hosts run one engine per player.
type Engine struct {
	cfg      Config
	world    *ecs.World
	pipeline *ecs.Dispatcher
	turns    *turnMachine
	turn     int
	kills    map[string]int
}

// NewEngine generates a dungeon from cfg and spawns the player and monsters.
func NewEngine(cfg Config) (*Engine, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		cfg.Seed = seed
	}
	rng := rand.New(rand.NewSource(seed))

	w := ecs.NewWorld()
	if err := component.Register(w); err != nil {
		return nil, fmt.Errorf("register components: %w", err)
	}

	gmap, rooms := generate.RoomsAndCorridors(cfg.levelConfig(rng))
	if len(rooms) == 0 {
		return nil, fmt.Errorf("map builder placed no rooms in %dx%d", cfg.Width, cfg.Height)
	}

	start := rooms[0].CenterPoint()
	player := factory.NewPlayer(w, start.X, start.Y)
	seers := []ecs.Entity{player}
	for _, s := range generate.Populate(rooms, rng) {
		seers = append(seers, factory.NewMonster(w, s.Kind, s.Index, s.X, s.Y))
	}
	if cfg.ViewRange > 0 && cfg.ViewRange != factory.ViewRange {
		for _, e := range seers {
			vs, _ := ecs.Lookup[component.Viewshed](w, e)
			vs.Range = cfg.ViewRange
			w.Insert(e, vs)
		}
	}

	w.SetResource(resource.KeyMap, gmap)
	w.SetResource(resource.KeyPlayerEntity, player)
	w.SetResource(resource.KeyPlayerPosition, start)
	w.SetResource(resource.KeyGameLog, resource.NewGameLog(cfg.LogCap))
	w.SetResource(resource.KeyRunState, resource.PreRun)

	logger.Log.WithFields(logrus.Fields{
		"seed":      seed,
		"rooms":     len(rooms),
		"monsters":  len(seers) - 1,
		"corridors": cfg.Corridors,
	}).Info("dungeon generated")

	return newEngine(cfg, w, resource.PreRun), nil
}

// NewEngineWithWorld wraps a world that is already populated. The world
// must carry every resource; the turn machine starts from its RunState.
func NewEngineWithWorld(cfg Config, w *ecs.World) *Engine {
	state := ecs.FetchResource[resource.RunState](w, resource.KeyRunState)
	return newEngine(cfg, w, state)
}

func newEngine(cfg Config, w *ecs.World, initial resource.RunState) *Engine {
	e := &Engine{
		cfg:      cfg,
		world:    w,
		pipeline: system.NewPipeline(),
		kills:    make(map[string]int),
	}
	e.turns = newTurnMachine(initial, func(s resource.RunState) {
		w.SetResource(resource.KeyRunState, s)
		logger.Log.WithField("state", s).Debug("run state")
	})
	logger.Log.WithField("systems", e.pipeline.Names()).Debug("pipeline ready")
	return e
}

// Tick advances the state machine by one step. act is only consulted in
// AwaitingInput; ActionNone leaves the engine waiting.
func (e *Engine) Tick(ctx context.Context, act Action) (err error) {
	state := e.turns.State()
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("%v", r)
			}
			err = &TickError{State: state, Cause: cause}
			logger.Log.WithError(cause).WithField("state", state).Error("tick aborted")
		}
	}()

	switch state {
	case resource.PreRun:
		e.runSystems()
		err = e.turns.fire(ctx, evStart)
	case resource.AwaitingInput:
		if !act.IsMove() {
			return nil
		}
		dx, dy := actionToDelta(act)
		res := system.TryMovePlayer(e.world, dx, dy)
		logger.Log.WithFields(logrus.Fields{"action": act, "result": res}).Debug("player action")
		err = e.turns.fire(ctx, evAct)
	case resource.PlayerTurn:
		e.runSystems()
		err = e.turns.fire(ctx, evEndTurn)
	case resource.MonsterTurn:
		e.runSystems()
		if err = e.turns.fire(ctx, evMonstersDone); err == nil {
			e.turn++
		}
	}
	if err != nil {
		return err
	}

	if e.cfg.Debug {
		return CheckInvariants(e.world, e.turns.State())
	}
	return nil
}

// Advance ticks until the engine awaits input, applies act, then ticks
// until it awaits input again. ActionNone only drains pending turns.
func (e *Engine) Advance(ctx context.Context, act Action) error {
	if err := e.settle(ctx); err != nil {
		return err
	}
	if !act.IsMove() {
		return nil
	}
	if err := e.Tick(ctx, act); err != nil {
		return err
	}
	return e.settle(ctx)
}

func (e *Engine) settle(ctx context.Context) error {
	for e.turns.State() != resource.AwaitingInput {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.Tick(ctx, ActionNone); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) runSystems() {
	e.pipeline.Run(e.world)
	for _, name := range system.DeleteTheDead(e.world) {
		e.kills[monsterKind(name)]++
	}
}

// monsterKind strips the " #i" suffix spawned monsters are named with.
func monsterKind(name string) string {
	if i := strings.LastIndex(name, " #"); i > 0 {
		return name[:i]
	}
	return name
}

// World returns the simulated world. Hosts read it to build frames.
func (e *Engine) World() *ecs.World { return e.world }

// Map returns the map resource.
func (e *Engine) Map() *gamemap.Map {
	return ecs.FetchResource[*gamemap.Map](e.world, resource.KeyMap)
}

// State returns the current RunState.
func (e *Engine) State() resource.RunState { return e.turns.State() }

// Player returns the player entity.
func (e *Engine) Player() ecs.Entity {
	return ecs.FetchResource[ecs.Entity](e.world, resource.KeyPlayerEntity)
}

// PlayerDead reports whether the player's hp fell below 1.
func (e *Engine) PlayerDead() bool {
	stats, ok := ecs.Lookup[component.CombatStats](e.world, e.Player())
	return ok && stats.HP < 1
}

// Log returns the player-facing message log.
func (e *Engine) Log() *resource.GameLog {
	return ecs.FetchResource[*resource.GameLog](e.world, resource.KeyGameLog)
}

// Turns returns the number of completed monster turns.
func (e *Engine) Turns() int { return e.turn }

// Kills returns monsters reaped so far, by kind.
func (e *Engine) Kills() map[string]int {
	out := make(map[string]int, len(e.kills))
	for k, v := range e.kills {
		out[k] = v
	}
	return out
}

// Config returns the configuration the engine was built with. Seed holds
// the seed actually used.
func (e *Engine) Config() Config { return e.cfg }
