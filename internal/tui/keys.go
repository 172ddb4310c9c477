package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left       key.Binding
	Right      key.Binding
	ZoomIn     key.Binding
	ZoomOut    key.Binding
	Fit        key.Binding
	PrevContig key.Binding
	NextContig key.Binding
	Sidebar    key.Binding
	Files      key.Binding
	Open       key.Binding
	Goto       key.Binding
	Paste      key.Binding
	Attrs      key.Binding
	Inspect    key.Binding
	Write      key.Binding
	Copy       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "pan left")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "pan right")),
		ZoomIn:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:    key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
		Fit:        key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fit")),
		PrevContig: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev contig")),
		NextContig: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next contig")),
		Sidebar:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "sidebar")),
		Files:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "files")),
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Goto:       key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to")),
		Paste:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste")),
		Attrs:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "regions")),
		Inspect:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "inspect")),
		Write:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "write")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.ZoomIn, k.ZoomOut, k.Fit, k.Sidebar, k.Goto, k.Paste, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.ZoomIn, k.ZoomOut, k.Fit},
		{k.PrevContig, k.NextContig, k.Sidebar, k.Files, k.Open},
		{k.Goto, k.Paste, k.Attrs, k.Inspect},
		{k.Write, k.Copy, k.Help, k.Quit},
	}
}
