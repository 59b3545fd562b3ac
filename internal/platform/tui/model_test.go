package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// fakeGame records what the platform asks of it.
type fakeGame struct {
	resets     int
	resizes    int
	steps      int
	configured string
	got        []core.Action
	state      core.GameState
}

func (g *fakeGame) ID() string                  { return "fake" }
func (g *fakeGame) Title() string               { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig)    { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen)     { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState       { return g.state }
func (g *fakeGame) Resize(width, height int)    { g.resizes++ }
func (g *fakeGame) Configure(_, p string) error { g.configured = p; return nil }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.got = append(g.got, in.Actions...)
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	return core.StepResult{State: g.state}
}

// clockedFake also records the wall time of each tick.
type clockedFake struct {
	fakeGame
	at []time.Time
}

func (g *clockedFake) StepAt(in core.InputFrame, now time.Time) core.StepResult {
	g.at = append(g.at, now)
	return g.fakeGame.Step(in)
}

func init() {
	registry.Register("fake", func() registry.Game { return &fakeGame{} })
}

func newTestModel(t *testing.T, game registry.Game, store *storage.Store) Model {
	t.Helper()
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelQueuesKeysUntilTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, runeKey('a'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(t, m, runeKey('a'))
	if g.steps != 0 {
		t.Fatal("keys must not step the game")
	}

	m = update(t, m, TickMsg{Loop: m.loop})
	want := []core.Action{core.ActionLeft, core.ActionRotate, core.ActionLeft}
	if len(g.got) != len(want) {
		t.Fatalf("game received %v, expected %v", g.got, want)
	}
	for i := range want {
		if g.got[i] != want[i] {
			t.Errorf("action %d = %v, expected %v", i, g.got[i], want[i])
		}
	}

	update(t, m, TickMsg{Loop: m.loop})
	if len(g.got) != len(want) {
		t.Error("input frame was not cleared after the tick")
	}
}

func TestModelIgnoresForeignTicks(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)

	update(t, m, TickMsg{Loop: m.loop + 1000})
	if g.steps != 0 {
		t.Error("tick from another loop stepped the game")
	}
}

func TestModelSavesFinalScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{}
	m := newTestModel(t, g, store)

	g.state = core.GameState{Score: 300, Lines: 3, GameOver: true}
	for i := 0; i < 5; i++ {
		m = update(t, m, TickMsg{Loop: m.loop})
	}

	// Restarted and lost again: a second record.
	g.state = core.GameState{}
	m = update(t, m, TickMsg{Loop: m.loop})
	g.state = core.GameState{Score: 100, Lines: 1, GameOver: true}
	m = update(t, m, TickMsg{Loop: m.loop})

	// Empty games are not recorded.
	g.state = core.GameState{}
	m = update(t, m, TickMsg{Loop: m.loop})
	g.state = core.GameState{GameOver: true}
	update(t, m, TickMsg{Loop: m.loop})

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("saved %d scores, expected 2: %+v", len(scores), scores)
	}
	if scores[0].Score != 300 || scores[0].Lines != 3 || scores[1].Score != 100 {
		t.Errorf("unexpected scores %+v", scores)
	}
}

func TestModelBackPausesThenLeaves(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back during play should pause, not leave")
	}
	m = update(t, m, TickMsg{Loop: m.loop})
	if !m.State().Paused {
		t.Fatal("game should be paused after back")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back while paused should return to the menu")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)
	resets := g.resets

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.resets != resets || g.resizes != 1 {
		t.Errorf("resize: resets %d->%d, resizes %d", resets, g.resets, g.resizes)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen is %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, nil)
	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestSessionFlow(t *testing.T) {
	s := NewSessionModel(SessionOptions{
		Config: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60},
		GameID: "fake",
	})

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenScores {
		t.Fatalf("tab should open the scoreboard, screen=%d", s.screen)
	}
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu {
		t.Fatalf("esc should return to the menu, screen=%d", s.screen)
	}

	step(tea.KeyMsg{Type: tea.KeyDown}) // Easy
	step(tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenGame || s.game == nil {
		t.Fatalf("enter should start a game, screen=%d", s.screen)
	}
	fake := s.game.game.(*fakeGame)
	if fake.configured != "easy" {
		t.Errorf("game configured with %q, expected easy", fake.configured)
	}

	fake.state.GameOver = true
	step(TickMsg{Loop: s.game.loop})
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu || s.game != nil {
		t.Fatalf("back after game over should return to the menu, screen=%d", s.screen)
	}

	step(runeKey('q'))
	if !s.quitting {
		t.Error("q in the menu should end the session")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetColored(0, 0, '█', core.ColorRed)
	s.SetColored(1, 0, '█', core.ColorRed)
	s.DrawText(0, 1, "ok")

	out := RenderScreen(s)
	if got := ansi.Strip(out); got != "██  \nok  " {
		t.Errorf("RenderScreen text = %q", got)
	}
}

func TestModelPassesTickTime(t *testing.T) {
	g := &clockedFake{}
	m := newTestModel(t, g, nil)

	fired := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m = update(t, m, TickMsg{Loop: m.loop, At: fired})
	m = update(t, m, TickMsg{Loop: m.loop, At: fired.Add(250 * time.Millisecond)})
	update(t, m, TickMsg{Loop: m.loop})

	if len(g.at) != 3 || g.steps != 3 {
		t.Fatalf("game stepped %d times with %d timestamps, expected 3", g.steps, len(g.at))
	}
	if !g.at[0].Equal(fired) || !g.at[1].Equal(fired.Add(250*time.Millisecond)) {
		t.Errorf("tick times = %v, expected the TickMsg times", g.at[:2])
	}
	if g.at[2].IsZero() {
		t.Error("a tick without a time should be stepped at the current time")
	}
}
