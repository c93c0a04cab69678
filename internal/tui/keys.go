package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	refresh key.Binding
	quit    key.Binding
}

var keys = keyMap{
	refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{k.refresh, k.quit}
}
