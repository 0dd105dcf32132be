package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	refresh key.Binding
	like    key.Binding
	delete  key.Binding
	copy    key.Binding
	quit    key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	like:    key.NewBinding(key.WithKeys("l", "+"), key.WithHelp("l", "like")),
	delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy url")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n", "esc")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.up, k.down, k.like, k.copy, k.delete, k.refresh, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
