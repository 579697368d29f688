// Package dispatch routes raw terminal input to the handlers bound on
// interactive surfaces.
//
// Keys go to the focused surface only: a handler bound on a widget never sees
// keys aimed at one of its descendants. Pointer events hit-test the regions of
// the latest layout, then bubble from the deepest surface towards its
// ancestors until a handler stops propagation. Focus changes fire the blur
// handler of the surface losing focus.
//
// Every Bind call returns a Binding. Binding the same surface again replaces
// the previous handler rather than adding a second one, and Unbind on a
// replaced binding is a no-op, so a widget can rebind freely whenever the
// values its handler captured go stale.
package dispatch

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyEvent is a key press aimed at a surface.
type KeyEvent struct {
	Target Surface
	Key    tea.KeyMsg
}

type (
	KeyHandler     func(KeyEvent) tea.Cmd
	PointerHandler func(*PointerEvent) tea.Cmd
	BlurHandler    func() tea.Cmd
)

type listenerKind int

const (
	keyListener listenerKind = iota
	pointerListener
	blurListener
)

type listener struct {
	id      uint64
	key     KeyHandler
	pointer PointerHandler
	blur    BlurHandler
}

// Dispatcher owns the listener tables, hit regions and focus for one program.
type Dispatcher struct {
	seq       uint64
	listeners map[listenerKind]map[Surface]*listener
	regions   []Region
	focused   Surface
}

// New returns an empty dispatcher.
func New() *Dispatcher {
	return &Dispatcher{
		listeners: map[listenerKind]map[Surface]*listener{
			keyListener:     {},
			pointerListener: {},
			blurListener:    {},
		},
	}
}

// Binding is the handle returned by the Bind methods.
type Binding struct {
	d       *Dispatcher
	kind    listenerKind
	surface Surface
	id      uint64
}

// Surface reports the surface the binding was made on.
func (b *Binding) Surface() Surface {
	if b == nil {
		return None
	}
	return b.surface
}

// Active reports whether the binding is still the current one for its surface.
func (b *Binding) Active() bool {
	if b == nil || b.d == nil {
		return false
	}
	l, ok := b.d.listeners[b.kind][b.surface]
	return ok && l.id == b.id
}

// Unbind detaches the handler if it is still current. It reports whether
// anything was removed.
func (b *Binding) Unbind() bool {
	if !b.Active() {
		return false
	}
	delete(b.d.listeners[b.kind], b.surface)
	return true
}

func (d *Dispatcher) bind(kind listenerKind, s Surface, l *listener) *Binding {
	d.seq++
	l.id = d.seq
	d.listeners[kind][s] = l
	return &Binding{d: d, kind: kind, surface: s, id: l.id}
}

// BindKey installs h as the key handler of s, replacing any earlier one.
func (d *Dispatcher) BindKey(s Surface, h KeyHandler) *Binding {
	return d.bind(keyListener, s, &listener{key: h})
}

// BindPointer installs h as the pointer handler of s, replacing any earlier one.
func (d *Dispatcher) BindPointer(s Surface, h PointerHandler) *Binding {
	return d.bind(pointerListener, s, &listener{pointer: h})
}

// BindBlur installs h to run when s loses focus.
func (d *Dispatcher) BindBlur(s Surface, h BlurHandler) *Binding {
	return d.bind(blurListener, s, &listener{blur: h})
}

// Len counts live bindings of every kind.
func (d *Dispatcher) Len() int {
	n := 0
	for _, table := range d.listeners {
		n += len(table)
	}
	return n
}

// DispatchKey delivers ev to the handler bound on exactly ev.Target.
func (d *Dispatcher) DispatchKey(ev KeyEvent) tea.Cmd {
	if ev.Target == None {
		return nil
	}
	l, ok := d.listeners[keyListener][ev.Target]
	if !ok || l.key == nil {
		return nil
	}
	return l.key(ev)
}

// DispatchFocusedKey sends msg to whichever surface holds focus.
func (d *Dispatcher) DispatchFocusedKey(msg tea.KeyMsg) tea.Cmd {
	return d.DispatchKey(KeyEvent{Target: d.focused, Key: msg})
}
