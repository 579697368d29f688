package ui

import (
	"github.com/atomicstack/selectbox/internal/ui/dispatch"
	"github.com/atomicstack/selectbox/internal/ui/dropdown"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap holds the host-level bindings plus the widget bindings for help.
type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Dismiss key.Binding
	Quit    key.Binding
	widget  dropdown.KeyMap
}

func newKeyMap(widget dropdown.KeyMap) keyMap {
	return keyMap{
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "blur")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		widget:  widget,
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return append(k.widget.ShortHelp(), k.Next, k.Dismiss, k.Quit)
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.widget.ShortHelp(), {k.Next, k.Prev, k.Dismiss, k.Quit}}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m.quit()
	case key.Matches(keyMsg, m.keys.Next):
		return m.dispatcher.FocusNext()
	case key.Matches(keyMsg, m.keys.Prev):
		return m.dispatcher.FocusPrev()
	case key.Matches(keyMsg, m.keys.Dismiss):
		return m.dispatcher.Blur()
	}
	return m.dispatcher.DispatchFocusedKey(keyMsg)
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	ev := dispatch.PointerEvent{X: mouse.X, Y: mouse.Y}
	switch {
	case mouse.Action == tea.MouseActionPress && mouse.Button == tea.MouseButtonLeft:
		ev.Kind = dispatch.PointerClick
	case mouse.Action == tea.MouseActionMotion:
		ev.Kind = dispatch.PointerHover
	default:
		return nil
	}
	return m.dispatcher.DispatchPointer(ev)
}

// handleBlurMsg drops focus when the terminal loses it, closing any open
// list. The surface is remembered so focus can return with the terminal.
func (m *Model) handleBlurMsg(tea.Msg) tea.Cmd {
	m.resumeFocus = m.dispatcher.Focused()
	return m.dispatcher.Blur()
}

func (m *Model) handleFocusMsg(tea.Msg) tea.Cmd {
	resume := m.resumeFocus
	m.resumeFocus = dispatch.None
	if resume == dispatch.None || m.dispatcher.Focused() != dispatch.None {
		return nil
	}
	for _, s := range m.dispatcher.Ring() {
		if s == resume {
			return m.dispatcher.Focus(resume)
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	m.height = size.Height
	m.help.Width = size.Width
	return nil
}
