package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const (
	headerHeight = 1
	sidebarGap   = 1
	popupMaxW    = 48
)

// frame is the screen layout shared by View and the mouse handling in Update.
type frame struct {
	contentW int
	contentH int
	footerH  int
	sidebarW int
	mapX     int
	mapY     int
	mapW     int
	mapH     int
}

func (m Model) frame() frame {
	f := frame{contentW: max(10, m.width)}
	if m.showSidebar {
		f.sidebarW = m.cfg.View.SidebarWidth
	}
	f.footerH = 1 + lipgloss.Height(m.help.View(m.keys))
	f.contentH = max(lanesTop+1, m.height-headerHeight-f.footerH)
	f.mapW = f.contentW
	f.mapH = f.contentH
	if m.showSidebar {
		f.mapX = f.sidebarW + sidebarGap
		f.mapW = max(10, f.contentW-f.mapX)
	}
	f.mapY = headerHeight
	return f
}

// resize pushes the current frame into the sized sub-models.
func (m *Model) resize() {
	m.help.Width = max(10, m.width)
	f := m.frame()
	if m.showSidebar {
		m.l.SetSize(f.sidebarW-2, f.contentH-2)
	}
	m.ta.SetWidth(f.mapW)
	m.ta.SetHeight(min(f.mapH, 12))
	m.ti.Width = max(10, f.contentW-lipgloss.Width(m.ti.Prompt)-2)
	m.tbl.SetHeight(min(f.mapH-2, 20))
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	f := m.frame()

	header := titleStyle.Render(" ribbit ─ tandem repeat viewer ")
	if m.vp.Contig != "" {
		shown := len(m.vp.Visible(m.currentTrack()))
		header += dimStyle.Render(fmt.Sprintf("  %s:%d-%d  len %d  zoom %dx  %d/%d regions",
			m.vp.Contig, m.vp.Start, m.vp.End, m.vp.Length, m.vp.Zoom, shown, len(m.currentTrack())))
	}
	header = lipgloss.NewStyle().Width(f.contentW).MaxWidth(f.contentW).Render(header)

	var mapView string
	switch {
	case m.showAttrs:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 2
		}
		w := min(f.mapW, max(32, colW+4))
		box := boxStyle.Width(w - 2).Render(m.tbl.View())
		mapView = lipgloss.Place(f.mapW, f.mapH, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		mapView = lipgloss.NewStyle().Width(f.mapW).Height(f.mapH).Render(m.ta.View())
	default:
		mapView = lipgloss.NewStyle().Width(f.mapW).Height(f.mapH).Render(m.renderTracks(f.mapW, f.mapH))
	}

	body := mapView
	if m.showSidebar {
		sidebar := lipgloss.NewStyle().Width(f.sidebarW).Height(f.contentH).Render(m.l.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, strings.Repeat(" ", sidebarGap), mapView)
	}

	var statusRow string
	if m.gotoMode {
		statusRow = m.ti.View()
	} else {
		status := dimStyle.Render(" " + m.status + " ")
		coords := ""
		if m.hovering {
			coords = hoverStyle.Render(fmt.Sprintf(" %s:%d ", m.vp.Contig, m.hoverPos))
		}
		gap := max(0, f.contentW-lipgloss.Width(status)-lipgloss.Width(coords))
		statusRow = status + strings.Repeat(" ", gap) + coords
	}
	footer := lipgloss.JoinVertical(lipgloss.Left, statusRow, m.help.View(m.keys))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(f.contentW).Height(m.height).Render(ui)
}

// wrapPopup wraps text for the inspect box drawn over the lanes.
func wrapPopup(text string, w int) string {
	inner := max(8, min(popupMaxW, w)-4)
	return wordwrap.String(text, inner)
}

// drawPopup draws a bordered box of lines at the top-left of the lane area.
func (c *canvas) drawPopup(lines []string) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, lipgloss.Width(l))
	}
	st := c.style("popup", popupStyle)
	x0, y0 := 1, lanesTop
	top := "╭" + strings.Repeat("─", inner+2) + "╮"
	bottom := "╰" + strings.Repeat("─", inner+2) + "╯"
	c.text(x0, y0, top, st)
	for i, l := range lines {
		c.text(x0, y0+1+i, "│ "+padRight(l, inner)+" │", st)
	}
	c.text(x0, y0+1+len(lines), bottom, st)
}
