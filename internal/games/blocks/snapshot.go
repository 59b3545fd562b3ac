package blocks

// EngineSnapshot is everything a renderer needs for one frame, in grid
// coordinates. It shares no memory with the engine.
type EngineSnapshot struct {
	Board     [][]Cell
	Current   Piece
	Next      Piece
	Score     int
	Lines     int
	Pieces    int
	Status    Status
	GravityMs int64
}

// Snapshot copies the engine state.
func (e *Engine) Snapshot() EngineSnapshot {
	current := e.current
	current.Cells = current.Cells.Clone()
	next := e.next
	next.Cells = next.Cells.Clone()

	return EngineSnapshot{
		Board:     e.board.Cells(),
		Current:   current,
		Next:      next,
		Score:     e.score,
		Lines:     e.lines,
		Pieces:    e.pieces,
		Status:    e.status,
		GravityMs: e.interval,
	}
}

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	ClockMs   int64
	Paused    bool
	Level     int
	Engine    EngineSnapshot
	BoardText string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		ClockMs:   g.clockMs(),
		Paused:    g.paused,
		Level:     g.level(),
		Engine:    g.engine.Snapshot(),
		BoardText: g.engine.Board().String(),
	}
}
