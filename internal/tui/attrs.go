package tui

import (
	"strconv"

	table "github.com/charmbracelet/bubbles/table"
	runewidth "github.com/mattn/go-runewidth"

	"ribbit/internal/track"
)

var attrColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "start", Width: 10},
	{Title: "end", Width: 10},
	{Title: "motif", Width: 10},
	{Title: "purity", Width: 7},
	{Title: "units", Width: 6},
	{Title: "length", Width: 7},
	{Title: "name", Width: 20},
}

// refreshAttrsFromCurrent rebuilds the regions table from the regions visible
// in the current viewport.
func (m *Model) refreshAttrsFromCurrent() {
	vis := m.vp.Visible(m.currentTrack())
	if len(vis) == 0 {
		m.showAttrs = false
		m.status = "no regions in view"
		return
	}
	rows := make([]table.Row, 0, len(vis))
	for _, r := range vis {
		rows = append(rows, attrRow(r))
	}
	// clear rows first so the old rows never meet the new columns
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(attrColumns)
	m.tbl.SetRows(rows)
	m.tbl.SetCursor(0)
}

func attrRow(r track.Region) table.Row {
	purity := "?"
	if r.HasPurity() {
		purity = strconv.FormatFloat(r.Purity, 'f', -1, 64)
	}
	units := "?"
	if r.Units >= 0 {
		units = strconv.Itoa(r.Units)
	}
	motif := r.Motif
	if r.Depth > 0 {
		motif = "└ " + motif
	}
	return table.Row{
		strconv.Itoa(r.Index),
		strconv.Itoa(r.Start),
		strconv.Itoa(r.End),
		runewidth.Truncate(motif, attrColumns[3].Width, "…"),
		purity,
		units,
		strconv.Itoa(r.Length),
		runewidth.Truncate(r.Label(), attrColumns[7].Width, "…"),
	}
}

// jumpToSelected frames the region under the table cursor.
func (m *Model) jumpToSelected() {
	vis := m.vp.Visible(m.currentTrack())
	i := m.tbl.Cursor()
	if i < 0 || i >= len(vis) {
		return
	}
	r := vis[i]
	m.vp = m.vp.SetRange(r.Start, r.End)
	m.showAttrs = false
	m.status = "jumped to " + r.Label()
}
