package blocks

import (
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Default engine parameters.
const (
	DefaultWidth           = 10
	DefaultHeight          = 20
	DefaultGravityInterval = 500 // milliseconds
)

// Status is the engine's lifecycle state.
type Status int

const (
	StatusRunning Status = iota
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Intent is a discrete player request.
type Intent int

const (
	IntentMoveLeft Intent = iota
	IntentMoveRight
	IntentSoftDrop
	IntentRotate
	IntentQuit // handled by the host loop, never applied by the engine
)

// EngineConfig sizes the board and sets the gravity interval.
type EngineConfig struct {
	Width           int
	Height          int
	GravityInterval int64 // milliseconds between gravity ticks
}

// DefaultEngineConfig returns a 10×20 board with 500ms gravity.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		GravityInterval: DefaultGravityInterval,
	}
}

// TickResult describes what a gravity tick did.
type TickResult struct {
	Moved        bool // piece fell one row
	Locked       bool // piece was committed to the board
	LinesCleared int
	GameOver     bool // the replacement piece could not spawn
}

// Engine owns one game: the board, the falling and next pieces, score and
// status. It is not safe for concurrent use; a single owner must serialize
// every call.
type Engine struct {
	board    *Board
	current  Piece
	next     Piece
	score    int
	lines    int
	pieces   int
	status   Status
	rng      *rand.Rand
	interval int64
	lastTick int64
	armed    bool
}

// NewEngine starts a game with an empty board and two random pieces drawn
// from rng. Zero fields in cfg fall back to the defaults.
func NewEngine(cfg EngineConfig, rng *rand.Rand) *Engine {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.GravityInterval <= 0 {
		cfg.GravityInterval = DefaultGravityInterval
	}

	e := &Engine{
		board:    NewBoard(cfg.Width, cfg.Height),
		rng:      rng,
		interval: cfg.GravityInterval,
		status:   StatusRunning,
	}
	e.current = Spawn(PickRandom(rng), cfg.Width)
	e.next = Spawn(PickRandom(rng), cfg.Width)
	e.pieces = 1
	return e
}

// Board returns the locked-cell grid. Callers must treat it as read-only.
func (e *Engine) Board() *Board { return e.board }

// Current returns the falling piece.
func (e *Engine) Current() Piece { return e.current }

// Next returns the preview piece.
func (e *Engine) Next() Piece { return e.next }

// Score returns the accumulated score.
func (e *Engine) Score() int { return e.score }

// Lines returns the total rows cleared.
func (e *Engine) Lines() int { return e.lines }

// Pieces returns how many pieces have entered play.
func (e *Engine) Pieces() int { return e.pieces }

// Status returns Running or GameOver.
func (e *Engine) Status() Status { return e.status }

// GameOver reports whether the game has ended.
func (e *Engine) GameOver() bool { return e.status == StatusGameOver }

// GravityInterval returns the current milliseconds between gravity ticks.
func (e *Engine) GravityInterval() int64 { return e.interval }

// SetGravityInterval changes the gravity pace. Non-positive values are
// ignored.
func (e *Engine) SetGravityInterval(ms int64) {
	if ms > 0 {
		e.interval = ms
	}
}

// MoveLeft shifts the falling piece one column left if it fits.
func (e *Engine) MoveLeft() bool {
	return e.translate(-1, 0)
}

// MoveRight shifts the falling piece one column right if it fits.
func (e *Engine) MoveRight() bool {
	return e.translate(1, 0)
}

// SoftDrop moves the falling piece one row down if it fits. It never locks;
// locking only happens on a gravity tick.
func (e *Engine) SoftDrop() bool {
	return e.translate(0, 1)
}

func (e *Engine) translate(dx, dy int) bool {
	if e.status != StatusRunning || !e.board.IsValid(e.current, dx, dy) {
		return false
	}
	e.current = e.current.Moved(dx, dy)
	return true
}

// Rotate turns the falling piece clockwise. If the turned piece does not fit
// in place, its x is clamped once so the matrix lies inside the side walls;
// if that still does not fit the rotation is dropped.
func (e *Engine) Rotate() bool {
	if e.status != StatusRunning {
		return false
	}

	rotated := e.current.Rotated()
	if e.board.IsValid(rotated, 0, 0) {
		e.current = rotated
		return true
	}

	kicked := rotated
	kicked.X = core.Clamp(rotated.X, 0, e.board.Width()-rotated.Size())
	if kicked.X != rotated.X && e.board.IsValid(kicked, 0, 0) {
		e.current = kicked
		return true
	}
	return false
}

// Apply dispatches an intent and reports whether it changed the piece.
func (e *Engine) Apply(in Intent) bool {
	switch in {
	case IntentMoveLeft:
		return e.MoveLeft()
	case IntentMoveRight:
		return e.MoveRight()
	case IntentSoftDrop:
		return e.SoftDrop()
	case IntentRotate:
		return e.Rotate()
	default:
		return false
	}
}

// Advance feeds the engine a monotonic millisecond clock reading. The first
// call only starts the clock; afterwards a gravity tick runs whenever at
// least one interval has passed since the previous tick.
func (e *Engine) Advance(nowMs int64) (TickResult, bool) {
	if e.status != StatusRunning {
		return TickResult{}, false
	}
	if !e.armed {
		e.armed = true
		e.lastTick = nowMs
		return TickResult{}, false
	}
	if nowMs-e.lastTick < e.interval {
		return TickResult{}, false
	}
	e.lastTick = nowMs
	return e.Tick(), true
}

// Tick applies one gravity step: the piece falls a row, or, when it cannot,
// it locks, full rows clear, and the next piece takes its place. The game
// ends if that piece does not fit at its spawn position.
func (e *Engine) Tick() TickResult {
	if e.status != StatusRunning {
		return TickResult{}
	}

	if e.board.IsValid(e.current, 0, 1) {
		e.current = e.current.Moved(0, 1)
		return TickResult{Moved: true}
	}

	e.board.Lock(e.current)
	cleared := e.board.ClearLines()
	e.lines += cleared
	e.score += LineScore(cleared)

	e.current = e.next
	e.next = Spawn(PickRandom(e.rng), e.board.Width())
	e.pieces++

	result := TickResult{Locked: true, LinesCleared: cleared}
	if !e.board.IsValid(e.current, 0, 0) {
		e.status = StatusGameOver
		result.GameOver = true
	}
	return result
}
