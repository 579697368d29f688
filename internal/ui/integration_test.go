package ui

import (
	"testing"

	"github.com/atomicstack/selectbox/internal/options"
	"github.com/atomicstack/selectbox/internal/selection"
	"github.com/atomicstack/selectbox/internal/ui/dispatch"
	"github.com/atomicstack/selectbox/internal/ui/dropdown"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHarness(t *testing.T) *Harness {
	t.Helper()
	return NewHarness(NewModel(options.Default(), 32, false, ""))
}

func clickSurface(t *testing.T, h *Harness, s dispatch.Surface) {
	t.Helper()
	r, ok := h.Region(s)
	require.True(t, ok, "no region for %s", s)
	h.Click(r.X, r.Y)
}

func labels(opts []selection.Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Label
	}
	return out
}

func TestMultipleWidgetByMouse(t *testing.T) {
	h := newTestHarness(t)
	m := h.Model()

	clickSurface(t, h, surfaceMulti)
	require.True(t, m.multi.IsOpen())
	assert.Equal(t, surfaceMulti, m.dispatcher.Focused())

	clickSurface(t, h, dropdown.OptionSurface(surfaceMulti, 1))
	assert.Equal(t, []string{"first", "second"}, labels(m.MultiValue()))
	assert.False(t, m.multi.IsOpen())

	clickSurface(t, h, dropdown.BadgeSurface(surfaceMulti, 0))
	assert.Equal(t, []string{"second"}, labels(m.MultiValue()))

	clickSurface(t, h, dropdown.ClearSurface(surfaceMulti))
	assert.Empty(t, m.MultiValue())
	assert.False(t, m.multi.IsOpen())
	assert.Contains(t, h.PlainView(), "multiple:  (none)")
}

func TestSingleWidgetByKeyboard(t *testing.T) {
	h := newTestHarness(t)
	m := h.Model()

	h.Key(tea.KeyShiftTab)
	h.Key(tea.KeyShiftTab)
	require.Equal(t, surfaceSingle, m.dispatcher.Focused())

	h.Key(tea.KeyEnter)
	require.True(t, m.single.IsOpen())
	h.Key(tea.KeyDown)
	h.Key(tea.KeyDown)
	h.Key(tea.KeyEnter)
	require.NotNil(t, m.SingleValue())
	assert.Equal(t, "third", m.SingleValue().Label)
	assert.False(t, m.single.IsOpen())
	assert.Contains(t, h.PlainView(), "single:    third")
}

func TestTabWalksFocusRing(t *testing.T) {
	h := newTestHarness(t)
	m := h.Model()
	want := []dispatch.Surface{
		surfaceMulti,
		dropdown.BadgeSurface(surfaceMulti, 0),
		dropdown.ClearSurface(surfaceMulti),
		surfaceSingle,
		dropdown.ClearSurface(surfaceSingle),
		surfaceMulti,
	}
	for _, s := range want {
		h.Key(tea.KeyTab)
		assert.Equal(t, s, m.dispatcher.Focused())
	}
}

func TestTabAwayClosesOpenList(t *testing.T) {
	h := newTestHarness(t)
	m := h.Model()
	h.Key(tea.KeyTab)
	h.Key(tea.KeyDown)
	require.True(t, m.multi.IsOpen())

	h.Key(tea.KeyTab)
	assert.False(t, m.multi.IsOpen())
	assert.Equal(t, []string{"first"}, labels(m.MultiValue()))
}

func TestOutsideClickClosesOpenList(t *testing.T) {
	h := newTestHarness(t)
	m := h.Model()
	clickSurface(t, h, surfaceSingle)
	require.True(t, m.single.IsOpen())

	h.Click(200, 200)
	assert.False(t, m.single.IsOpen())
	assert.Equal(t, dispatch.None, m.dispatcher.Focused())
	assert.Equal(t, "first", m.SingleValue().Label)
}

func TestClickingOtherWidgetClosesFirst(t *testing.T) {
	h := newTestHarness(t)
	m := h.Model()
	clickSurface(t, h, surfaceMulti)
	require.True(t, m.multi.IsOpen())

	clickSurface(t, h, surfaceSingle)
	assert.False(t, m.multi.IsOpen())
	assert.True(t, m.single.IsOpen())
}

func TestHoverMovesHighlight(t *testing.T) {
	h := newTestHarness(t)
	m := h.Model()
	clickSurface(t, h, surfaceSingle)
	r, ok := h.Region(dropdown.OptionSurface(surfaceSingle, 4))
	require.True(t, ok)
	h.Hover(r.X+2, r.Y)
	assert.Equal(t, 4, m.single.Highlighted())
	assert.True(t, m.single.IsOpen())
}

func TestTerminalBlurAndFocus(t *testing.T) {
	h := newTestHarness(t)
	m := h.Model()
	h.Key(tea.KeyTab)
	h.Key(tea.KeyEnter)
	require.True(t, m.multi.IsOpen())

	h.Send(tea.BlurMsg{})
	assert.False(t, m.multi.IsOpen())
	assert.Equal(t, dispatch.None, m.dispatcher.Focused())

	h.Send(tea.FocusMsg{})
	assert.Equal(t, surfaceMulti, m.dispatcher.Focused())
	assert.False(t, m.multi.IsOpen(), "regaining focus does not reopen the list")
}

func TestEscapeDropsFocus(t *testing.T) {
	h := newTestHarness(t)
	m := h.Model()
	h.Key(tea.KeyTab)
	h.Key(tea.KeyEnter)
	h.Key(tea.KeyEsc)
	assert.False(t, m.multi.IsOpen())
	assert.Equal(t, dispatch.None, m.dispatcher.Focused())
}

func TestKeysWithoutFocusAreIgnored(t *testing.T) {
	h := newTestHarness(t)
	m := h.Model()
	h.Key(tea.KeyEnter)
	h.Key(tea.KeyDown)
	assert.False(t, m.multi.IsOpen())
	assert.False(t, m.single.IsOpen())
}

func TestQuitUnmountsWidgets(t *testing.T) {
	h := newTestHarness(t)
	m := h.Model()
	require.NotZero(t, m.dispatcher.Len())

	h.Runes("q")
	assert.True(t, h.Quit())
	assert.Zero(t, m.dispatcher.Len())
	assert.False(t, m.multi.Mounted())
	assert.False(t, m.single.Mounted())
	assert.Empty(t, h.View())
}

func TestCtrlCQuits(t *testing.T) {
	h := newTestHarness(t)
	h.Key(tea.KeyCtrlC)
	assert.True(t, h.Quit())
}
