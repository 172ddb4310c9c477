package tui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"ribbit/internal/track"
	"ribbit/internal/view"
)

// annotationExts are the file extensions offered in the files sidebar.
var annotationExts = map[string]bool{".bed": true, ".tsv": true, ".txt": true, ".tr": true, ".ribbit": true}

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

type contigItem struct {
	name    string
	regions int
}

func (c contigItem) Title() string       { return fmt.Sprintf("%s (%d regions)", c.name, c.regions) }
func (c contigItem) Description() string { return "" }
func (c contigItem) FilterValue() string { return c.name }

// loadedMsg carries the result of an asynchronous file load.
type loadedMsg struct {
	path string
	set  *track.Set
	err  error
}

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if annotationExts[ext] {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.Title = "Files"
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no annotation files in current directory"
	}
}

func (m *Model) refreshContigs() {
	var items []list.Item
	for _, c := range m.idx.Contigs() {
		items = append(items, contigItem{name: c, regions: len(m.idx.Track(c))})
	}
	m.l.Title = "Contigs"
	m.l.SetItems(items)
	for i, c := range m.idx.Contigs() {
		if c == m.vp.Contig {
			m.l.Select(i)
		}
	}
}

func readAnnotations(p string) (*track.Set, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, errors.Wrap(err, "open annotations")
	}
	defer f.Close()
	set, err := track.Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", filepath.Base(p))
	}
	return set, nil
}

// loadFileCmd reads and parses p off the event loop.
func loadFileCmd(p string) tea.Cmd {
	return func() tea.Msg {
		set, err := readAnnotations(p)
		return loadedMsg{path: p, set: set, err: err}
	}
}

// loadPath loads p synchronously, used before the program starts.
func (m *Model) loadPath(p string) {
	set, err := readAnnotations(p)
	m.handleLoaded(loadedMsg{path: p, set: set, err: err})
}

func (m *Model) handleLoaded(msg loadedMsg) {
	if msg.err != nil {
		log.Printf("load %s: %v", msg.path, msg.err)
		m.status = "Parse error: " + msg.err.Error()
		return
	}
	m.selPath = msg.path
	m.applySet(msg.set)
}

// applySet replaces the whole session with set. Contig and viewport reset to
// the first contig in natural order.
func (m *Model) applySet(set *track.Set) {
	for _, w := range set.Warnings {
		log.Printf("parse warning: %s", w)
	}
	m.set, m.idx = set, track.BuildIndex(set)
	contigs := m.idx.Contigs()
	m.inspectPopup = ""
	if len(contigs) > 0 {
		m.selectContig(contigs[0])
	} else {
		m.vp = view.Bootstrap("", 0)
	}
	if !m.sideFiles {
		m.refreshContigs()
	}
	m.status = fmt.Sprintf("Parsed %d lines; %d contigs", set.NonBlankLines(), len(contigs))
	if n := len(set.Warnings); n > 0 {
		m.status += fmt.Sprintf(" (%d warnings)", n)
	}
	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
}

func (m *Model) selectContig(c string) {
	if !m.idx.Has(c) {
		return
	}
	m.vp = view.Select(c, m.idx.Len(c))
	m.inspectPopup = ""
	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
}

// writeRaw saves the verbatim source text in the working directory.
func (m *Model) writeRaw() {
	p := filepath.Join(m.cwd, m.cfg.DownloadName)
	if err := os.WriteFile(p, []byte(m.set.Raw), 0o644); err != nil {
		m.status = errors.Wrap(err, "write").Error()
		return
	}
	m.status = fmt.Sprintf("wrote %s (%d bytes)", m.cfg.DownloadName, len(m.set.Raw))
}

// copyRaw puts the verbatim source text on the clipboard.
func (m *Model) copyRaw() {
	if err := clipboard.WriteAll(m.set.Raw); err != nil {
		m.status = errors.Wrap(err, "copy").Error()
		return
	}
	m.status = fmt.Sprintf("copied %d bytes", len(m.set.Raw))
}
