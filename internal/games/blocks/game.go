// Package blocks implements the falling-block puzzle: the piece catalog,
// rotation, the board with its validity check, locking and line clearing,
// and the engine that drives them. Game adapts the engine to the arcade
// platform's fixed-rate Step/Render loop.
package blocks

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "blocks"

// Game runs an Engine at the platform tick rate.
type Game struct {
	cfg        config.BlocksConfig
	preset     config.DifficultyPreset
	difficulty *config.DifficultyManager

	engine   *Engine
	rng      *rand.Rand
	tick     uint64 // Steps since Reset
	tickRate int

	// Gravity runs on wall time. The clock starts on the first step after
	// Reset and excludes every span the game spent halted.
	started   bool
	start     time.Time
	now       time.Time
	halted    bool
	haltedAt  time.Time
	haltedFor time.Duration

	lastCleared int // Rows removed by the most recent lock
	paused      bool
	tooSmall    bool

	screenW int
	screenH int
	layout  layout
}

// New creates a game with the built-in configuration, already reset with
// the default runtime config so it can be queried before the platform
// starts it.
func New() *Game {
	g := &Game{cfg: config.DefaultBlocksConfig()}
	g.Reset(core.DefaultConfig())
	return g
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blocks"
}

// Configure loads configuration from configPath (or the default search
// locations when empty) and applies a difficulty preset.
func (g *Game) Configure(configPath, preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	cfg, err := config.LoadBlocks(configPath)
	if err != nil {
		return err
	}
	config.ApplyBlocksPreset(&cfg, p)
	g.cfg = cfg
	g.preset = p
	return nil
}

// Config returns the configuration the next Reset will use.
func (g *Game) Config() config.BlocksConfig {
	return g.cfg
}

// Reset starts a new game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.tick = 0
	g.started = false
	g.halted = false
	g.haltedFor = 0
	g.lastCleared = 0
	g.paused = false

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.engine = NewEngine(EngineConfig{
		Width:           g.cfg.Board.Width,
		Height:          g.cfg.Board.Height,
		GravityInterval: int64(g.cfg.Gravity.IntervalMs),
	}, g.rng)
	g.updateGravity()

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.layout = computeLayout(g.cfg.Board.Width, g.cfg.Board.Height, width, height)
	g.tooSmall = !g.layout.fits
}

// Engine exposes the underlying engine, mainly for tests and tools.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Step advances the game by one platform tick at the current wall time.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.StepAt(in, time.Now())
}

// StepAt advances the game by one platform tick delivered at now: player
// intents first, then the gravity clock. Gravity fires on elapsed wall
// time, so late or dropped frames do not slow the fall.
func (g *Game) StepAt(in core.InputFrame, now time.Time) core.StepResult {
	g.tick++
	if !g.started {
		g.started = true
		g.start = now
		g.now = now
	} else if now.After(g.now) {
		g.now = now
	}

	if in.Has(core.ActionRestart) && g.engine.GameOver() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.engine.GameOver() {
		g.paused = !g.paused
	}

	g.setHalted(g.paused || g.tooSmall)
	if g.engine.GameOver() || g.halted {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		if intent, ok := intentFor(a); ok {
			g.engine.Apply(intent)
		}
	}

	g.updateGravity()
	if res, ticked := g.engine.Advance(g.clockMs()); ticked && res.Locked {
		g.lastCleared = res.LinesCleared
	}

	return core.StepResult{State: g.State()}
}

// intentFor maps platform actions onto engine intents.
func intentFor(a core.Action) (Intent, bool) {
	switch a {
	case core.ActionLeft:
		return IntentMoveLeft, true
	case core.ActionRight:
		return IntentMoveRight, true
	case core.ActionDown:
		return IntentSoftDrop, true
	case core.ActionRotate:
		return IntentRotate, true
	default:
		return 0, false
	}
}

// setHalted opens or closes a span of wall time that the gravity clock
// skips.
func (g *Game) setHalted(h bool) {
	switch {
	case h && !g.halted:
		g.haltedAt = g.now
	case !h && g.halted:
		g.haltedFor += g.now.Sub(g.haltedAt)
	}
	g.halted = h
}

// clockMs returns the wall milliseconds the game has spent running.
func (g *Game) clockMs() int64 {
	if !g.started {
		return 0
	}
	end := g.now
	if g.halted {
		end = g.haltedAt
	}
	return (end.Sub(g.start) - g.haltedFor).Milliseconds()
}

func (g *Game) updateGravity() {
	ms := g.difficulty.GravityInterval(
		g.cfg.Gravity.IntervalMs,
		g.cfg.Gravity.MinIntervalMs,
		g.engine.Score(),
		g.playedSeconds(),
	)
	g.engine.SetGravityInterval(int64(ms))
}

func (g *Game) level() int {
	return g.difficulty.DisplayLevel(g.engine.Score(), g.playedSeconds())
}

// playedSeconds feeds time-based difficulty progression.
func (g *Game) playedSeconds() int {
	return int(g.clockMs() / 1000)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		Lines:    g.engine.Lines(),
		GameOver: g.engine.GameOver(),
		Paused:   g.paused,
	}
}

// DebugState returns a one-line summary of the game.
func (g *Game) DebugState() string {
	cur := g.engine.Current()
	return fmt.Sprintf("tick=%d clock=%dms status=%s score=%d lines=%d piece=%s@(%d,%d) next=%s gravity=%dms",
		g.tick, g.clockMs(), g.engine.Status(), g.engine.Score(), g.engine.Lines(),
		cur.Kind, cur.X, cur.Y, g.engine.Next().Kind, g.engine.GravityInterval())
}
