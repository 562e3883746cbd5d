package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Commit key.Binding
	Delete key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Delete, k.Clear, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultKeys = keyMap{
	Commit: key.NewBinding(key.WithKeys("enter", "="), key.WithHelp("enter", "evaluate")),
	Delete: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete")),
	Clear:  key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
	Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
}
