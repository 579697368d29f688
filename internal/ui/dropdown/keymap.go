package dropdown

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keys a focused dropdown answers to.
type KeyMap struct {
	Activate key.Binding // open, or commit the highlighted option and close
	Up       key.Binding
	Down     key.Binding
}

// DefaultKeyMap returns the standard dropdown bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "open/select")),
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.Up, k.Down}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
