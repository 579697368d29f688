package dispatch

import (
	tea "github.com/charmbracelet/bubbletea"
)

// PointerKind distinguishes clicks from hover motion.
type PointerKind int

const (
	PointerClick PointerKind = iota
	PointerHover
)

// PointerEvent travels from its Target up through the ancestors. Current is
// the surface whose handler is running.
type PointerEvent struct {
	Kind    PointerKind
	X, Y    int
	Target  Surface
	Current Surface
	stopped bool
}

// StopPropagation keeps the event from reaching any further ancestor.
func (e *PointerEvent) StopPropagation() {
	e.stopped = true
}

// Stopped reports whether a handler stopped the event.
func (e *PointerEvent) Stopped() bool {
	return e.stopped
}

// Region is a rectangle of screen cells owned by a surface.
type Region struct {
	Surface   Surface
	X, Y      int
	Width     int
	Height    int
	Focusable bool
}

// Contains reports whether the cell (x, y) lies inside the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Offset returns the region moved by (dx, dy).
func (r Region) Offset(dx, dy int) Region {
	r.X += dx
	r.Y += dy
	return r
}

// SetRegions replaces the hit regions with those of the latest layout. The
// order also defines the focus ring. When the focused surface disappears,
// focus falls back to its nearest focusable ancestor without firing blur.
func (d *Dispatcher) SetRegions(regions []Region) {
	d.regions = append(d.regions[:0], regions...)
	if d.focused == None || d.isFocusable(d.focused) {
		return
	}
	for s := d.focused.Parent(); s != None; s = s.Parent() {
		if d.isFocusable(s) {
			d.focused = s
			return
		}
	}
	d.focused = None
}

// Regions returns a copy of the installed hit regions.
func (d *Dispatcher) Regions() []Region {
	out := make([]Region, len(d.regions))
	copy(out, d.regions)
	return out
}

// HitTest returns the deepest surface under (x, y). Later regions win ties.
func (d *Dispatcher) HitTest(x, y int) Surface {
	hit := None
	depth := 0
	for _, r := range d.regions {
		if !r.Contains(x, y) {
			continue
		}
		if dd := r.Surface.Depth(); dd >= depth {
			hit = r.Surface
			depth = dd
		}
	}
	return hit
}

// DispatchPointer hit-tests ev and bubbles it. A click also moves focus to the
// root surface under the point, or clears focus when nothing was hit.
func (d *Dispatcher) DispatchPointer(ev PointerEvent) tea.Cmd {
	target := d.HitTest(ev.X, ev.Y)
	var cmds []tea.Cmd
	if ev.Kind == PointerClick {
		next := None
		if root := target.Root(); d.isFocusable(root) {
			next = root
		}
		cmds = append(cmds, d.Focus(next))
	}
	if target != None {
		ev.Target = target
		cmds = append(cmds, d.bubble(&ev))
	}
	return tea.Batch(cmds...)
}

// Activate delivers a synthetic click straight to target, as a keyboard
// press on a focused button does. Focus is left alone.
func (d *Dispatcher) Activate(target Surface) tea.Cmd {
	ev := PointerEvent{Kind: PointerClick, X: -1, Y: -1, Target: target}
	for _, r := range d.regions {
		if r.Surface == target {
			ev.X, ev.Y = r.X, r.Y
			break
		}
	}
	return d.bubble(&ev)
}

func (d *Dispatcher) bubble(ev *PointerEvent) tea.Cmd {
	var cmds []tea.Cmd
	for s := ev.Target; s != None; s = s.Parent() {
		l, ok := d.listeners[pointerListener][s]
		if !ok || l.pointer == nil {
			continue
		}
		ev.Current = s
		cmds = append(cmds, l.pointer(ev))
		if ev.stopped {
			break
		}
	}
	return tea.Batch(cmds...)
}
