// Package dropdown is the select widget: it binds the selection rules, the
// open/highlight state machine and the input dispatcher to one surface.
//
// The widget is controlled. The host hands it fresh selection.Props on every
// update and receives changes through the callbacks inside those props; the
// widget itself only keeps the open flag and the highlighted index.
//
// Lifecycle:
//   - Mount binds the container click and blur handlers and the initial key
//     listener.
//   - Sync compares {open, options, highlighted} with the values the current
//     key listener captured and rebinds it when they differ. Child affordances
//     (clear button, badges, option rows) are rebound whenever the options or
//     the selection change.
//   - Layout renders a frame and returns its hit regions in screen cells.
//   - Unmount releases every binding the widget holds.
package dropdown

import (
	"slices"

	"github.com/atomicstack/selectbox/internal/logging/events"
	"github.com/atomicstack/selectbox/internal/selection"
	"github.com/atomicstack/selectbox/internal/ui/dispatch"
	"github.com/atomicstack/selectbox/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyDeps are the values a key listener captures when it is bound.
type keyDeps struct {
	open        bool
	highlighted int
	options     []selection.Option
}

func (a keyDeps) equal(b keyDeps) bool {
	return a.open == b.open && a.highlighted == b.highlighted && slices.Equal(a.options, b.options)
}

// childDeps decide when child affordance handlers go stale.
type childDeps struct {
	options  []selection.Option
	selected []selection.Option
}

func (a childDeps) equal(b childDeps) bool {
	return slices.Equal(a.options, b.options) && slices.Equal(a.selected, b.selected)
}

// Model is one mounted dropdown.
type Model struct {
	surface     dispatch.Surface
	dispatcher  *dispatch.Dispatcher
	renderer    Renderer
	keys        KeyMap
	props       selection.Props
	state       state.Dropdown
	placeholder string

	mounted   bool
	keyBind   *dispatch.Binding
	keyDeps   keyDeps
	static    []*dispatch.Binding
	children  []*dispatch.Binding
	childDeps childDeps
	childSet  bool
	frame     Frame
}

// ModelOption customises a Model at construction.
type ModelOption func(*Model)

// WithRenderer swaps the default Lip Gloss renderer.
func WithRenderer(r Renderer) ModelOption {
	return func(m *Model) {
		if r != nil {
			m.renderer = r
		}
	}
}

// WithKeyMap overrides the default key bindings.
func WithKeyMap(k KeyMap) ModelOption {
	return func(m *Model) { m.keys = k }
}

// WithPlaceholder sets the text shown when nothing is selected.
func WithPlaceholder(text string) ModelOption {
	return func(m *Model) { m.placeholder = text }
}

// New creates an unmounted dropdown on surface.
func New(surface dispatch.Surface, d *dispatch.Dispatcher, props selection.Props, opts ...ModelOption) *Model {
	m := &Model{
		surface:    surface,
		dispatcher: d,
		renderer:   NewRenderer(nil),
		keys:       DefaultKeyMap(),
		props:      props,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Surface returns the widget's own interaction surface.
func (m *Model) Surface() dispatch.Surface {
	return m.surface
}

// IsOpen reports whether the option list is expanded.
func (m *Model) IsOpen() bool {
	return m.state.Open
}

// Highlighted returns the keyboard cursor index.
func (m *Model) Highlighted() int {
	return m.state.Highlighted
}

// Props returns the props most recently supplied by the host.
func (m *Model) Props() selection.Props {
	return m.props
}

// KeyMap exposes the bindings so hosts can render help for them.
func (m *Model) KeyMap() KeyMap {
	return m.keys
}

// SetProps replaces the host-supplied props and resynchronises bindings.
func (m *Model) SetProps(p selection.Props) {
	m.props = p
	if m.state.ClampHighlight(len(p.Options)) {
		events.Select.Highlight(string(m.surface), m.state.Highlighted)
	}
	m.Sync()
}

// Mount attaches the widget's listeners. Calling it twice is harmless.
func (m *Model) Mount() {
	if m.mounted || m.dispatcher == nil {
		return
	}
	m.mounted = true
	m.static = []*dispatch.Binding{
		m.dispatcher.BindPointer(m.surface, m.handleContainerPointer),
		m.dispatcher.BindBlur(m.surface, m.handleBlur),
	}
	m.Sync()
}

// Unmount detaches every listener the widget holds.
func (m *Model) Unmount() {
	if !m.mounted {
		return
	}
	released := 0
	for _, b := range m.allBindings() {
		if b.Unbind() {
			released++
		}
	}
	m.keyBind = nil
	m.static = nil
	m.children = nil
	m.childSet = false
	m.mounted = false
	events.Select.Unmount(string(m.surface), released)
}

// Mounted reports whether listeners are attached.
func (m *Model) Mounted() bool {
	return m.mounted
}

func (m *Model) allBindings() []*dispatch.Binding {
	all := make([]*dispatch.Binding, 0, 1+len(m.static)+len(m.children))
	if m.keyBind != nil {
		all = append(all, m.keyBind)
	}
	all = append(all, m.static...)
	return append(all, m.children...)
}

func (m *Model) currentKeyDeps() keyDeps {
	return keyDeps{open: m.state.Open, highlighted: m.state.Highlighted, options: m.props.Options}
}

func (m *Model) currentChildDeps() childDeps {
	return childDeps{options: m.props.Options, selected: m.props.Selected()}
}

// Sync rebinds listeners whose captured values no longer match the widget.
func (m *Model) Sync() {
	if !m.mounted {
		return
	}
	if deps := m.currentKeyDeps(); m.keyBind == nil || !m.keyBind.Active() || !deps.equal(m.keyDeps) {
		// BindKey replaces the old closure on the same surface
		deps.options = slices.Clone(deps.options)
		m.keyDeps = deps
		m.keyBind = m.dispatcher.BindKey(m.surface, m.keyHandler(deps))
		events.Select.Rebind(string(m.surface), deps.open, deps.highlighted, len(deps.options))
	}
	if deps := m.currentChildDeps(); !m.childSet || !deps.equal(m.childDeps) {
		deps.options = slices.Clone(deps.options)
		deps.selected = slices.Clone(deps.selected)
		m.childDeps = deps
		m.childSet = true
		m.bindChildren(deps)
	}
}

func (m *Model) bindChildren(deps childDeps) {
	for _, b := range m.children {
		b.Unbind()
	}
	m.children = m.children[:0]
	d := m.dispatcher

	clearSurface := ClearSurface(m.surface)
	m.children = append(m.children,
		d.BindPointer(clearSurface, m.handleClearPointer),
		d.BindKey(clearSurface, m.activateChild(clearSurface)),
	)
	if m.props.Mode() == selection.Multiple {
		for i, opt := range deps.selected {
			badge := BadgeSurface(m.surface, i)
			m.children = append(m.children,
				d.BindPointer(badge, m.handleBadgePointer(opt)),
				d.BindKey(badge, m.activateChild(badge)),
			)
		}
	}
	for i := range deps.options {
		m.children = append(m.children, d.BindPointer(OptionSurface(m.surface, i), m.handleOptionPointer(i)))
	}
}

func (m *Model) keyHandler(captured keyDeps) dispatch.KeyHandler {
	return func(ev dispatch.KeyEvent) tea.Cmd {
		if ev.Target != m.surface {
			return nil
		}
		if !captured.equal(m.currentKeyDeps()) {
			// stale snapshot: rebind, then let the fresh listener answer
			m.Sync()
			if m.keyDeps.equal(m.currentKeyDeps()) {
				return m.dispatcher.DispatchKey(ev)
			}
			// the values never compare equal to themselves; answer once here
			captured = m.currentKeyDeps()
		}
		n := len(captured.options)
		switch {
		case key.Matches(ev.Key, m.keys.Activate):
			m.apply(state.TriggerActivate, 0, n)
		case key.Matches(ev.Key, m.keys.Up):
			m.apply(state.TriggerArrowUp, 0, n)
		case key.Matches(ev.Key, m.keys.Down):
			m.apply(state.TriggerArrowDown, 0, n)
		default:
			return nil
		}
		m.Sync()
		return nil
	}
}

// activateChild makes Enter/Space on a focused affordance behave like a click.
func (m *Model) activateChild(surface dispatch.Surface) dispatch.KeyHandler {
	return func(ev dispatch.KeyEvent) tea.Cmd {
		if ev.Target != surface || !key.Matches(ev.Key, m.keys.Activate) {
			return nil
		}
		return m.dispatcher.Activate(surface)
	}
}

func (m *Model) handleContainerPointer(ev *dispatch.PointerEvent) tea.Cmd {
	if ev.Kind != dispatch.PointerClick {
		return nil
	}
	m.apply(state.TriggerSurfaceClick, 0, len(m.props.Options))
	m.Sync()
	return nil
}

func (m *Model) handleOptionPointer(index int) dispatch.PointerHandler {
	return func(ev *dispatch.PointerEvent) tea.Cmd {
		ev.StopPropagation()
		trigger := state.TriggerOptionClick
		if ev.Kind == dispatch.PointerHover {
			trigger = state.TriggerHover
		}
		m.apply(trigger, index, len(m.props.Options))
		m.Sync()
		return nil
	}
}

func (m *Model) handleClearPointer(ev *dispatch.PointerEvent) tea.Cmd {
	if ev.Kind != dispatch.PointerClick {
		return nil
	}
	ev.StopPropagation()
	m.Clear()
	return nil
}

func (m *Model) handleBadgePointer(opt selection.Option) dispatch.PointerHandler {
	return func(ev *dispatch.PointerEvent) tea.Cmd {
		if ev.Kind != dispatch.PointerClick {
			return nil
		}
		ev.StopPropagation()
		m.Toggle(opt)
		return nil
	}
}

func (m *Model) handleBlur() tea.Cmd {
	m.apply(state.TriggerBlur, 0, len(m.props.Options))
	m.Sync()
	return nil
}

// Toggle runs the selection rule for opt against the current props.
func (m *Model) Toggle(opt selection.Option) bool {
	changed := m.props.Toggle(opt)
	events.Select.Toggle(string(m.surface), opt.Value.String(), opt.Label, changed)
	m.Sync()
	return changed
}

// Clear empties the selection through the host callback.
func (m *Model) Clear() {
	m.props.Clear()
	events.Select.Clear(string(m.surface))
	m.Sync()
}

func (m *Model) apply(trigger state.Trigger, index, n int) {
	eff := m.state.Apply(trigger, index, n)
	id := string(m.surface)
	switch {
	case eff.Opened:
		events.Select.Open(id)
	case eff.Closed:
		reason := events.ReasonClick
		switch {
		case trigger == state.TriggerBlur:
			reason = events.ReasonBlur
		case eff.Commit:
			reason = events.ReasonCommit
		}
		events.Select.Close(id, reason)
	case eff.Moved:
		events.Select.Highlight(id, m.state.Highlighted)
	}
	if eff.Commit && eff.Index < len(m.props.Options) {
		m.Toggle(m.props.Options[eff.Index])
	}
}

// Snapshot captures what the renderer needs for the next frame.
func (m *Model) Snapshot(width int) Snapshot {
	var focused dispatch.Surface
	if m.dispatcher != nil {
		focused = m.dispatcher.Focused()
	}
	return Snapshot{
		Surface:     m.surface,
		Focused:     focused,
		Open:        m.state.Open,
		Highlighted: m.state.Highlighted,
		Mode:        m.props.Mode(),
		Options:     m.props.Options,
		Selected:    m.props.Selected(),
		Placeholder: m.placeholder,
		Width:       width,
	}
}

// Layout renders the widget with its top-left cell at (x, y) and returns the
// frame with screen-space regions.
func (m *Model) Layout(x, y, width int) Frame {
	m.Sync()
	frame := m.renderer.Render(m.Snapshot(width))
	for i := range frame.Regions {
		frame.Regions[i] = frame.Regions[i].Offset(x, y)
	}
	m.frame = frame
	return frame
}

// View returns the most recent layout's content.
func (m *Model) View() string {
	return m.frame.Content
}
