package ui

import (
	"github.com/atomicstack/selectbox/internal/ui/dispatch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model *Model
	quit  bool
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		switch msg := msg.(type) {
		case nil:
			return
		case tea.QuitMsg:
			h.quit = true
			return
		case tea.BatchMsg:
			for _, c := range msg {
				h.processCmd(c)
			}
			return
		}
		mdl, next := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		cmd = next
	}
}

// Key sends a single key press.
func (h *Harness) Key(k tea.KeyType) {
	h.Send(tea.KeyMsg{Type: k})
}

// Runes sends typed characters as one key message.
func (h *Harness) Runes(s string) {
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// Click presses the left mouse button at (x, y).
func (h *Harness) Click(x, y int) {
	h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

// Hover moves the pointer to (x, y) with no button held.
func (h *Harness) Hover(x, y int) {
	h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
}

// Region returns the on-screen region of s from the latest layout.
func (h *Harness) Region(s dispatch.Surface) (dispatch.Region, bool) {
	if h.model == nil {
		return dispatch.Region{}, false
	}
	for _, r := range h.model.dispatcher.Regions() {
		if r.Surface == s {
			return r, true
		}
	}
	return dispatch.Region{}, false
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// PlainView returns the view with ANSI styling removed.
func (h *Harness) PlainView() string {
	return ansi.Strip(h.View())
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
