package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Visible key.Binding
	Focus   key.Binding
	More    key.Binding
	Fewer   key.Binding
	Gravity key.Binding
	Mode    key.Binding
	Set     key.Binding
	Canvas  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Visible: key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "show/hide")),
		Focus:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		More:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "bars (paused)")),
		Fewer:   key.NewBinding(key.WithKeys("-", "_")),
		Gravity: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "gravity")),
		Mode:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "render mode")),
		Set:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "set")),
		Canvas:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "blocks/braille")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Visible, k.Focus, k.More, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Visible, k.Focus, k.More},
		{k.Gravity, k.Mode, k.Canvas},
		{k.Set, k.Help, k.Quit},
	}
}
