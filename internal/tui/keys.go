package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit    key.Binding
	refresh key.Binding
	ticket  key.Binding
}

var keys = keyMap{
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	ticket:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "show full ticket")),
}
