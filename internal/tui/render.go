package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"

	"ribbit/internal/track"
	"ribbit/internal/view"
)

const (
	tickCount = 5
	// lanesTop is the first canvas row used by lanes, below the overview
	// strip, the tick labels and the axis.
	lanesTop = 3
)

// cell is one canvas position. r == 0 marks the second half of a wide rune.
type cell struct {
	r     rune
	style int
}

// canvas is a grid of cells plus the styles they reference; style 0 is
// unstyled.
type canvas struct {
	w, h   int
	rows   [][]cell
	styles []lipgloss.Style
	byKey  map[string]int
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, styles: []lipgloss.Style{{}}, byKey: map[string]int{}}
	c.rows = make([][]cell, h)
	for y := range c.rows {
		row := make([]cell, w)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		c.rows[y] = row
	}
	return c
}

func (c *canvas) style(key string, s lipgloss.Style) int {
	if i, ok := c.byKey[key]; ok {
		return i
	}
	c.styles = append(c.styles, s)
	c.byKey[key] = len(c.styles) - 1
	return len(c.styles) - 1
}

func (c *canvas) set(x, y int, r rune, style int) {
	if y < 0 || y >= c.h || x < 0 || x >= c.w {
		return
	}
	c.rows[y][x] = cell{r: r, style: style}
}

// text writes s from x, clipped to the canvas, and returns the next column.
func (c *canvas) text(x, y int, s string, style int) int {
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > c.w {
			break
		}
		c.set(x, y, r, style)
		if rw == 2 {
			c.set(x+1, y, 0, style)
		}
		x += rw
	}
	return x
}

func (c *canvas) String() string {
	lines := make([]string, c.h)
	for y, row := range c.rows {
		var b strings.Builder
		var run []rune
		cur := 0
		flush := func() {
			if len(run) == 0 {
				return
			}
			if cur == 0 {
				b.WriteString(string(run))
			} else {
				b.WriteString(c.styles[cur].Render(string(run)))
			}
			run = run[:0]
		}
		for _, cl := range row {
			if cl.style != cur {
				flush()
				cur = cl.style
			}
			if cl.r != 0 {
				run = append(run, cl.r)
			}
		}
		flush()
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// scale maps the current viewport onto w canvas columns.
func (m Model) scale(w int) view.Scale {
	return view.Scale{View: m.vp, X0: 0, Width: float64(w)}
}

// cellSpan converts a placed region to the half-open column range it covers.
func cellSpan(p view.Placed, w int) (int, int) {
	c1 := int(math.Floor(p.X1))
	c2 := int(math.Ceil(p.X2))
	if c2 <= c1 {
		c2 = c1 + 1
	}
	return max(0, c1), min(w, c2)
}

func (m Model) currentTrack() track.Track {
	if m.idx == nil {
		return nil
	}
	return m.idx.Track(m.vp.Contig)
}

// renderTracks draws the overview strip, axis and lanes into a w x h block.
func (m Model) renderTracks(w, h int) string {
	if m.idx == nil || len(m.idx.Contigs()) == 0 {
		msg := dimStyle.Render("no contigs: paste (p) or open a file (o)")
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, msg)
	}
	c := newCanvas(w, h)
	tr := m.currentTrack()
	m.drawOverview(c, tr)
	m.drawAxis(c)

	dim := c.style("dim", dimStyle)
	laneH := max(1, m.cfg.View.LaneHeight)
	hidden := 0
	for _, p := range view.Layout(tr, m.scale(w)) {
		top := view.LaneY(lanesTop, laneH, p.Lane)
		if top+laneH > h {
			hidden++
			continue
		}
		c1, c2 := cellSpan(p, w)
		col := m.palette.Blend(p.Region)
		st := c.style("region"+col, regionStyle(col))
		for y := top; y < top+laneH; y++ {
			for x := c1; x < c2; x++ {
				c.set(x, y, ' ', st)
			}
		}
		if c2-c1 > m.cfg.View.MinLabelWidth {
			label := runewidth.Truncate(p.Region.Label(), c2-c1, "…")
			c.text(c1, top+(laneH-1)/2, label, st)
		}
	}
	if hidden > 0 {
		note := fmt.Sprintf(" +%d hidden ", hidden)
		c.text(max(0, w-runewidth.StringWidth(note)), h-1, note, dim)
	}
	if m.inspectPopup != "" {
		c.drawPopup(strings.Split(m.inspectPopup, "\n"))
	}
	return c.String()
}

// drawOverview charts region density across the whole contig on row 0 and
// marks the visible window.
func (m Model) drawOverview(c *canvas, tr track.Track) {
	length := m.idx.Len(m.vp.Contig)
	br := newBrailleBuf(c.w, 1)
	br.bars(view.Density(tr, length, c.w*2))
	full := view.Scale{View: view.Select(m.vp.Contig, length), Width: float64(c.w)}
	w1 := int(math.Floor(full.X(m.vp.Start)))
	w2 := int(math.Ceil(full.X(m.vp.End)))
	in := c.style("accent", accentStyle)
	out := c.style("dim", dimStyle)
	line := []rune(br.toLines()[0])
	for x := 0; x < c.w; x++ {
		r := line[x]
		st := out
		if x >= w1 && x < max(w2, w1+1) {
			st = in
			if r == ' ' {
				r = '⠤'
			}
		}
		c.set(x, 0, r, st)
	}
}

// drawAxis writes tick labels on row 1 and the axis line on row 2.
func (m Model) drawAxis(c *canvas) {
	dim := c.style("dim", dimStyle)
	for x := 0; x < c.w; x++ {
		c.set(x, 2, '─', dim)
	}
	ticks := view.Ticks(m.vp, tickCount)
	next := 0
	for i, v := range ticks {
		x := 0
		if c.w > 1 {
			x = i * (c.w - 1) / tickCount
		}
		c.set(x, 2, '┬', dim)
		label := strconv.Itoa(v)
		lx := x - runewidth.StringWidth(label)/2
		lx = min(max(lx, next), c.w-runewidth.StringWidth(label))
		if lx < next {
			continue
		}
		next = c.text(lx, 1, label, 0) + 1
	}
	if m.hovering && m.hoverCell >= 0 && m.hoverCell < c.w {
		c.set(m.hoverCell, 2, '▼', c.style("hover", hoverStyle))
	}
}

// regionAt returns the visible region drawn at column x of a w wide canvas,
// preferring the lowest lane.
func (m Model) regionAt(x, w int) (view.Placed, bool) {
	var best view.Placed
	found := false
	for _, p := range view.Layout(m.currentTrack(), m.scale(w)) {
		c1, c2 := cellSpan(p, w)
		if x < c1 || x >= c2 {
			continue
		}
		if !found || p.Lane < best.Lane {
			best, found = p, true
		}
	}
	return best, found
}

func describe(contig string, p view.Placed) string {
	r := p.Region
	unknown := func(ok bool, s string) string {
		if !ok {
			return "?"
		}
		return s
	}
	kind := "top-level"
	if r.Depth > 0 {
		kind = "sub-region"
	}
	lines := []string{
		fmt.Sprintf("Region: %s:%d-%d", contig, r.Start, r.End),
		"Motif: " + unknown(r.Motif != "", r.Motif),
		"Motif Length: " + unknown(r.MotifLen > 0, strconv.Itoa(r.MotifLen)),
		"Purity: " + unknown(r.HasPurity(), strconv.FormatFloat(r.Purity, 'f', -1, 64)),
		"Units: " + unknown(r.Units >= 0, strconv.Itoa(r.Units)),
		"Length: " + strconv.Itoa(r.Length),
		fmt.Sprintf("Call: %s #%d, lane %d", kind, r.Index, p.Lane),
	}
	if r.Degenerate() {
		lines = append(lines, "low confidence: empty or invalid interval")
	}
	return strings.Join(lines, "\n")
}
