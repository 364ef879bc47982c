package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter    key.Binding
	tab      key.Binding
	backtab  key.Binding
	pageUp   key.Binding
	pageDown key.Binding
	copy     key.Binding
	quit     key.Binding
}

var keys = keyMap{
	enter:    key.NewBinding(key.WithKeys("enter")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	pageUp:   key.NewBinding(key.WithKeys("pgup")),
	pageDown: key.NewBinding(key.WithKeys("pgdown")),
	copy:     key.NewBinding(key.WithKeys("ctrl+y")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
}
