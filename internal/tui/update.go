package tui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ribbit/internal/track"
	"ribbit/internal/view"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
	case loadedMsg:
		m.handleLoaded(msg)
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		m.updateMouse(msg)
		return m, nil
	}
	// Cursor blinks and other ticks go to the focused input.
	switch {
	case m.gotoMode:
		var cmd tea.Cmd
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	case m.pasteMode:
		var cmd tea.Cmd
		m.ta, cmd = m.ta.Update(msg)
		return m, cmd
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the list is filtering it owns the keyboard.
	if m.showSidebar && m.l.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	switch {
	case m.pasteMode:
		return m.updatePaste(msg)
	case m.gotoMode:
		return m.updateGoto(msg)
	case m.showAttrs:
		return m.updateAttrs(msg)
	}
	if msg.Type == tea.KeyEsc && m.inspectPopup != "" {
		m.inspectPopup = ""
		return m, nil
	}

	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Left):
		m.vp = m.vp.Pan(-m.cfg.View.PanFraction)
	case key.Matches(msg, k.Right):
		m.vp = m.vp.Pan(m.cfg.View.PanFraction)
	case key.Matches(msg, k.ZoomIn):
		m.vp = m.vp.ZoomIn()
		m.status = fmt.Sprintf("zoom: %dx", m.vp.Zoom)
	case key.Matches(msg, k.ZoomOut):
		m.vp = m.vp.ZoomOut()
		m.status = fmt.Sprintf("zoom: %dx", m.vp.Zoom)
	case key.Matches(msg, k.Fit):
		m.vp = m.vp.Fit()
		m.status = "fit " + m.vp.Contig
	case key.Matches(msg, k.PrevContig):
		m.stepContig(-1)
	case key.Matches(msg, k.NextContig):
		m.stepContig(1)
	case key.Matches(msg, k.Sidebar):
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.refreshSidebar()
		}
		m.resize()
		return m, nil
	case key.Matches(msg, k.Files):
		m.sideFiles = !m.sideFiles
		m.showSidebar = true
		m.refreshSidebar()
		m.resize()
		return m, nil
	case key.Matches(msg, k.Open):
		if m.showSidebar {
			return m, m.openSelected()
		}
	case key.Matches(msg, k.Goto):
		m.gotoMode = true
		m.ti.SetValue("")
		m.status = "go to"
		return m, tea.Batch(m.ti.Focus(), textinput.Blink)
	case key.Matches(msg, k.Paste):
		m.pasteMode = true
		m.ta.SetValue(m.set.Raw)
		m.status = "paste mode: ctrl+s to parse, esc to cancel"
		return m, m.ta.Focus()
	case key.Matches(msg, k.Attrs):
		m.showAttrs = true
		m.refreshAttrsFromCurrent()
		return m, nil
	case key.Matches(msg, k.Inspect):
		m.toggleInspect()
	case key.Matches(msg, k.Write):
		m.writeRaw()
	case key.Matches(msg, k.Copy):
		m.copyRaw()
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	default:
		// Only keys no binding claims reach the list: cursor moves and the
		// filter prompt.
		if m.showSidebar {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "paste cancelled"
		return m, nil
	case "ctrl+s":
		text := m.ta.Value()
		if strings.TrimSpace(text) == "" {
			m.status = "paste: empty"
			return m, nil
		}
		m.pasteMode = false
		m.ta.Blur()
		m.selPath = ""
		m.applySet(track.ParseString(text))
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m Model) updateGoto(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.gotoMode = false
		m.ti.Blur()
		m.status = "go to cancelled"
		return m, nil
	case tea.KeyEnter:
		m.gotoMode = false
		m.ti.Blur()
		m.gotoRange(m.ti.Value())
		return m, nil
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) updateAttrs(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case msg.Type == tea.KeyEsc, key.Matches(msg, m.keys.Attrs):
		m.showAttrs = false
		return m, nil
	case key.Matches(msg, m.keys.Open):
		m.jumpToSelected()
		return m, nil
	}
	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

func (m *Model) gotoRange(s string) {
	q, err := parseRange(s)
	if err != nil {
		m.status = "go to: " + err.Error()
		return
	}
	if q.Contig != "" && q.Contig != m.vp.Contig {
		if !m.idx.Has(q.Contig) {
			m.status = fmt.Sprintf("go to: unknown contig %q", q.Contig)
			return
		}
		m.selectContig(q.Contig)
	}
	if q.HasRange {
		m.vp = m.vp.SetRange(q.Start, q.End)
	}
	m.status = fmt.Sprintf("%s:%d-%d", m.vp.Contig, m.vp.Start, m.vp.End)
}

func (m *Model) stepContig(step int) {
	next := m.idx.Neighbor(m.vp.Contig, step)
	if next == "" {
		return
	}
	m.selectContig(next)
	if m.showSidebar && !m.sideFiles {
		m.refreshContigs()
	}
	m.status = "contig " + next
}

func (m *Model) refreshSidebar() {
	if m.sideFiles {
		m.refreshDir()
	} else {
		m.refreshContigs()
	}
}

func (m *Model) openSelected() tea.Cmd {
	switch it := m.l.SelectedItem().(type) {
	case contigItem:
		m.selectContig(it.name)
		m.status = "contig " + it.name
	case fileItem:
		m.status = "loading " + it.title
		log.Printf("load %s", it.path)
		return loadFileCmd(it.path)
	}
	return nil
}

// toggleInspect opens a popup for the region under the hover column, or the
// window center when the mouse is elsewhere.
func (m *Model) toggleInspect() {
	if m.inspectPopup != "" {
		m.inspectPopup = ""
		return
	}
	f := m.frame()
	col := f.mapW / 2
	if m.hovering {
		col = m.hoverCell
	}
	m.inspectAt(col, f.mapW)
}

func (m *Model) inspectAt(col, w int) {
	p, ok := m.regionAt(col, w)
	if !ok {
		m.inspectPopup = ""
		m.status = "no region here"
		return
	}
	m.inspectPopup = wrapPopup(describe(m.vp.Contig, p), w)
	m.status = "inspect " + p.Region.Label()
}

func (m *Model) updateMouse(msg tea.MouseMsg) {
	f := m.frame()
	cx, cy := msg.X-f.mapX, msg.Y-f.mapY
	if cx < 0 || cx >= f.mapW || cy < 0 || cy >= f.mapH || m.pasteMode || m.showAttrs {
		m.hovering = false
		return
	}
	m.hovering = true
	m.hoverCell = cx
	m.hoverPos = view.Scale{View: m.vp, Width: float64(f.mapW)}.Genomic(float64(cx))

	if msg.Action != tea.MouseActionPress {
		return
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.vp = m.vp.ZoomIn()
		m.status = fmt.Sprintf("zoom: %dx", m.vp.Zoom)
	case tea.MouseButtonWheelDown:
		m.vp = m.vp.ZoomOut()
		m.status = fmt.Sprintf("zoom: %dx", m.vp.Zoom)
	case tea.MouseButtonLeft:
		if cy >= lanesTop {
			m.inspectAt(cx, f.mapW)
		}
	}
}
