package tui

import (
	"math"
	"strconv"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Arena glyphs
const (
	paddleRune = '█'
	ballRune   = '●'
	netRune    = '┆'
)

// Smallest screen the arena is drawn on.
const (
	minArenaWidth  = 20
	minArenaHeight = 8
)

// DrawArena renders a match snapshot onto s: a score row on top and the
// boxed field below it. Overlay lines are centered in the field.
func DrawArena(s *core.Screen, snap pong.Snapshot, overlay ...string) {
	s.Clear()
	if s.Width() < minArenaWidth || s.Height() < minArenaHeight {
		s.DrawTextCentered(s.Height()/2, "Terminal too small", core.ColorRed)
		return
	}

	drawScores(s, snap)

	field := core.CellRect{X: 0, Y: 1, W: s.Width(), H: s.Height() - 1}
	s.DrawBox(field, core.ColorGray)
	inner := core.CellRect{X: field.X + 1, Y: field.Y + 1, W: field.W - 2, H: field.H - 2}

	netX := inner.X + inner.W/2
	for y := inner.Y; y < inner.Bottom(); y += 2 {
		s.SetColored(netX, y, netRune, core.ColorGray)
	}

	v := newViewport(snap.Width, snap.Height, inner)
	v.fill(s, snap.Left.Bounds, paddleRune, core.ColorWhite)
	v.fill(s, snap.Right.Bounds, paddleRune, core.ColorWhite)
	v.fill(s, snap.Ball.Bounds, ballRune, core.ColorBrightWhite)

	top := inner.Y + inner.H/2 - len(overlay)/2
	for i, line := range overlay {
		s.DrawTextCentered(top+i, line, core.ColorYellow)
	}
}

func drawScores(s *core.Screen, snap pong.Snapshot) {
	left := strconv.Itoa(snap.Left.Score)
	right := strconv.Itoa(snap.Right.Score)
	s.DrawTextColored(s.Width()/4-len(left)/2, 0, left, core.ColorCyan)
	s.DrawTextColored(3*s.Width()/4-len(right)/2, 0, right, core.ColorCyan)
}

// viewport maps arena units onto a cell area.
type viewport struct {
	area   core.CellRect
	scaleX float64
	scaleY float64
}

func newViewport(arenaW, arenaH float64, area core.CellRect) viewport {
	return viewport{
		area:   area,
		scaleX: float64(area.W) / arenaW,
		scaleY: float64(area.H) / arenaH,
	}
}

// project returns the cells covered by r. Every rectangle covers at least one cell.
func (v viewport) project(r pong.RectSnapshot) core.CellRect {
	x0 := int(math.Floor(r.X * v.scaleX))
	y0 := int(math.Floor(r.Y * v.scaleY))
	x1 := int(math.Floor((r.X + r.Width) * v.scaleX))
	y1 := int(math.Floor((r.Y + r.Height) * v.scaleY))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.CellRect{X: v.area.X + x0, Y: v.area.Y + y0, W: x1 - x0, H: y1 - y0}
}

// fill draws r clipped to the viewport area.
func (v viewport) fill(s *core.Screen, r pong.RectSnapshot, ch rune, c core.Color) {
	cells := v.project(r)
	x0 := core.Clamp(cells.X, v.area.X, v.area.Right())
	x1 := core.Clamp(cells.Right(), v.area.X, v.area.Right())
	y0 := core.Clamp(cells.Y, v.area.Y, v.area.Bottom())
	y1 := core.Clamp(cells.Bottom(), v.area.Y, v.area.Bottom())
	s.DrawRect(core.CellRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, ch, c)
}
