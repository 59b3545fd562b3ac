package blocks

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Each board cell is drawn two terminal columns wide so cells look square.
const (
	cellW      = 2
	panelW     = 16 // Side panel: next piece and stats
	panelGap   = 2
	previewBox = 6 // Rows for the boxed next-piece preview
)

// layout places the well and side panel on the screen.
type layout struct {
	well  core.Rect // Border rectangle around the board
	panel core.Rect
	fits  bool
}

func computeLayout(boardW, boardH, screenW, screenH int) layout {
	wellW := boardW*cellW + 2
	wellH := boardH + 2
	totalW := wellW + panelGap + panelW

	l := layout{fits: screenW >= totalW && screenH >= wellH}
	x := core.Max(0, (screenW-totalW)/2)
	y := core.Max(0, (screenH-wellH)/2)
	l.well = core.NewRect(x, y, wellW, wellH)
	l.panel = core.NewRect(l.well.Right()+panelGap, y, panelW, wellH)
	return l
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	snap := g.engine.Snapshot()
	g.renderWell(dst, snap)
	g.renderPanel(dst, snap)

	switch {
	case snap.Status == StatusGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score %d - R to restart", snap.Score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderWell draws the border, locked cells and the falling piece.
func (g *Game) renderWell(dst *core.Screen, snap EngineSnapshot) {
	well := g.layout.well
	dst.DrawBox(well, core.ColorGray)

	for y, row := range snap.Board {
		for x, cell := range row {
			if cell.Filled {
				g.drawCell(dst, x, y, cell.Color)
			} else {
				dst.SetColored(well.X+1+x*cellW, well.Y+1+y, ' ', core.ColorDefault)
				dst.SetColored(well.X+2+x*cellW, well.Y+1+y, '.', core.ColorGray)
			}
		}
	}

	if snap.Status == StatusRunning {
		for _, pt := range snap.Current.Blocks() {
			if pt.Y >= 0 {
				g.drawCell(dst, pt.X, pt.Y, snap.Current.Color)
			}
		}
	}
}

func (g *Game) drawCell(dst *core.Screen, x, y int, c core.Color) {
	sx := g.layout.well.X + 1 + x*cellW
	sy := g.layout.well.Y + 1 + y
	dst.SetColored(sx, sy, '█', c)
	dst.SetColored(sx+1, sy, '█', c)
}

// renderPanel draws the next-piece preview and the stats column.
func (g *Game) renderPanel(dst *core.Screen, snap EngineSnapshot) {
	p := g.layout.panel

	box := core.NewRect(p.X, p.Y, p.W, previewBox)
	dst.DrawBox(box, core.ColorGray)
	dst.DrawText(p.X+2, p.Y, " NEXT ")

	next := snap.Next.Cells
	offX := p.X + (p.W-next.Size()*cellW)/2
	for _, pt := range next.Cells() {
		sx := offX + pt.X*cellW
		sy := p.Y + 1 + pt.Y
		dst.SetColored(sx, sy, '█', snap.Next.Color)
		dst.SetColored(sx+1, sy, '█', snap.Next.Color)
	}

	y := p.Y + previewBox + 1
	stats := []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprintf("%d", snap.Score)},
		{"LINES", fmt.Sprintf("%d", snap.Lines)},
		{"LEVEL", fmt.Sprintf("%d", g.level())},
	}
	for _, s := range stats {
		dst.DrawTextColored(p.X+1, y, s.label, core.ColorGray)
		dst.DrawTextColored(p.X+1, y+1, s.value, core.ColorWhite)
		y += 3
	}

	if g.lastCleared > 0 && snap.Status == StatusRunning {
		dst.DrawTextColored(p.X+1, y, fmt.Sprintf("+%d", LineScore(g.lastCleared)), core.ColorYellow)
	}

	hints := []string{"←→ move", "↑  rotate", "↓  drop", "P  pause", "Q  quit"}
	hy := p.Bottom() - len(hints)
	for i, h := range hints {
		dst.DrawTextColored(p.X+1, hy+i, h, core.ColorGray)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	g.drawCenteredText(dst, line1, box.Y+1, core.ColorBrightCyan)
	g.drawCenteredText(dst, line2, box.Y+3, core.ColorWhite)
}

func (g *Game) drawCenteredText(dst *core.Screen, text string, y int, c core.Color) {
	x := (dst.Width() - len([]rune(text))) / 2
	dst.DrawTextColored(x, y, text, c)
}
