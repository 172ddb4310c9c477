package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ribbit/internal/config"
	"ribbit/internal/track"
	"ribbit/internal/view"
)

type Model struct {
	width  int
	height int

	cfg     config.Config
	palette view.Palette
	keys    keyMap
	help    help.Model

	showSidebar bool
	sideFiles   bool // sidebar lists files instead of contigs

	status string

	// Sidebar
	cwd     string
	l       list.Model
	selPath string

	// Data
	set *track.Set
	idx *track.Index
	vp  view.Viewport

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// go-to range input
	gotoMode bool
	ti       textinput.Model

	// inspect popup
	inspectPopup string

	// hover state
	hovering  bool
	hoverCell int
	hoverPos  int

	// regions table
	showAttrs bool
	tbl       table.Model
}

// New returns a viewer showing the built-in sample with default settings.
func New() Model {
	return NewWithConfig(config.Default())
}

// NewWithConfig returns a viewer showing the built-in sample.
func NewWithConfig(cfg config.Config) Model {
	m := Model{
		cfg:    cfg,
		keys:   defaultKeys(),
		help:   help.New(),
		status: "ribbit ready",
	}
	pal, err := view.NewPalette(cfg.Palette, cfg.Background)
	if err != nil {
		def := config.Default()
		pal, _ = view.NewPalette(def.Palette, def.Background)
		m.status = "palette: " + err.Error()
	}
	m.palette = pal
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Contigs"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste annotation lines here. Ctrl+S to parse; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.MaxHeight = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// go-to input
	m.ti = textinput.New()
	m.ti.Placeholder = "start-end or contig:start-end"
	m.ti.Prompt = "go to: "
	m.ti.CharLimit = 128
	// regions table, columns set per refresh
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)

	set := track.ParseString(track.Sample)
	m.set, m.idx = set, track.BuildIndex(set)
	if cs := m.idx.Contigs(); len(cs) > 0 {
		m.vp = view.Bootstrap(cs[0], m.idx.Len(cs[0]))
	} else {
		m.vp = view.Bootstrap("", 0)
	}
	m.refreshContigs()
	return m
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(path string, cfg config.Config) Model {
	m := NewWithConfig(cfg)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }
