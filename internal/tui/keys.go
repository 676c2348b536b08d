package tui

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Down     key.Binding
	Up       key.Binding
	HalfDown key.Binding
	HalfUp   key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Expand   key.Binding
	Refresh  key.Binding
	Help     key.Binding
	Close    key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next review")),
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "previous review")),
		HalfDown: key.NewBinding(key.WithKeys("ctrl+d", "pgdown"), key.WithHelp("ctrl+d", "half page down")),
		HalfUp:   key.NewBinding(key.WithKeys("ctrl+u", "pgup"), key.WithHelp("ctrl+u", "half page up")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first review")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last loaded review")),
		Expand:   key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter", "show full review")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry / load more")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Close:    key.NewBinding(key.WithKeys("esc")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// bindings lists the bindings shown in the help overlay.
func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.HalfDown, k.HalfUp, k.Top, k.Bottom, k.Expand, k.Refresh, k.Help, k.Quit}
}
