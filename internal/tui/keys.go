package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	capture key.Binding
	remove  key.Binding
	reset   key.Binding
	send    key.Binding
	save    key.Binding
	info    key.Binding
	back    key.Binding
	quit    key.Binding
}

var keys = keyMap{
	capture: key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "capture")),
	remove:  key.NewBinding(key.WithKeys("backspace", "x"), key.WithHelp("⌫", "remove last")),
	reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	send:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
	save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save result")),
	info:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "about")),
	back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.capture, k.remove, k.reset, k.send, k.save, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.capture, k.remove, k.reset},
		{k.send, k.save},
		{k.info, k.quit},
	}
}
