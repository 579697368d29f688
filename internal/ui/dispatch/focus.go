package dispatch

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Focused returns the surface holding keyboard focus.
func (d *Dispatcher) Focused() Surface {
	return d.focused
}

// Focus moves keyboard focus to s and runs the blur handler of the surface
// that lost it. Passing None drops focus entirely.
func (d *Dispatcher) Focus(s Surface) tea.Cmd {
	if s == d.focused {
		return nil
	}
	prev := d.focused
	d.focused = s
	if prev == None {
		return nil
	}
	l, ok := d.listeners[blurListener][prev]
	if !ok || l.blur == nil {
		return nil
	}
	return l.blur()
}

// Blur drops focus, as when the terminal window itself loses focus.
func (d *Dispatcher) Blur() tea.Cmd {
	return d.Focus(None)
}

// FocusNext moves focus along the ring of focusable regions.
func (d *Dispatcher) FocusNext() tea.Cmd {
	return d.cycle(1)
}

// FocusPrev moves focus backwards along the ring.
func (d *Dispatcher) FocusPrev() tea.Cmd {
	return d.cycle(-1)
}

// Ring lists the focusable surfaces in layout order.
func (d *Dispatcher) Ring() []Surface {
	ring := make([]Surface, 0, len(d.regions))
	seen := make(map[Surface]struct{}, len(d.regions))
	for _, r := range d.regions {
		if !r.Focusable {
			continue
		}
		if _, dup := seen[r.Surface]; dup {
			continue
		}
		seen[r.Surface] = struct{}{}
		ring = append(ring, r.Surface)
	}
	return ring
}

func (d *Dispatcher) cycle(step int) tea.Cmd {
	ring := d.Ring()
	if len(ring) == 0 {
		return nil
	}
	idx := -1
	for i, s := range ring {
		if s == d.focused {
			idx = i
			break
		}
	}
	var next int
	switch {
	case idx < 0 && step > 0:
		next = 0
	case idx < 0:
		next = len(ring) - 1
	default:
		next = (idx + step + len(ring)) % len(ring)
	}
	return d.Focus(ring[next])
}

func (d *Dispatcher) isFocusable(s Surface) bool {
	if s == None {
		return false
	}
	for _, r := range d.regions {
		if r.Surface == s && r.Focusable {
			return true
		}
	}
	return false
}
