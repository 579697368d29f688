// Package state tracks the transient UI state of a dropdown: whether its
// option list is open and which option the keyboard cursor highlights.
package state

// Trigger is an input that can move the dropdown state machine.
type Trigger int

const (
	TriggerSurfaceClick Trigger = iota
	TriggerBlur
	TriggerActivate
	TriggerArrowUp
	TriggerArrowDown
	TriggerOptionClick
	TriggerHover
)

func (t Trigger) String() string {
	switch t {
	case TriggerSurfaceClick:
		return "surface-click"
	case TriggerBlur:
		return "blur"
	case TriggerActivate:
		return "activate"
	case TriggerArrowUp:
		return "arrow-up"
	case TriggerArrowDown:
		return "arrow-down"
	case TriggerOptionClick:
		return "option-click"
	case TriggerHover:
		return "hover"
	default:
		return "unknown"
	}
}

// Effect describes what a transition did. Commit asks the caller to toggle
// the option at Index.
type Effect struct {
	Opened bool
	Closed bool
	Moved  bool
	Commit bool
	Index  int
}

// Dropdown is the open flag and highlighted index owned by one widget.
type Dropdown struct {
	Open        bool
	Highlighted int
}

// Apply runs trigger against the state. index is only read by
// TriggerOptionClick and TriggerHover; n is the current option count.
func (d *Dropdown) Apply(trigger Trigger, index, n int) Effect {
	switch trigger {
	case TriggerSurfaceClick:
		if d.Open {
			return d.close()
		}
		return d.open()
	case TriggerBlur:
		if !d.Open {
			return Effect{}
		}
		return d.close()
	case TriggerActivate:
		if !d.Open {
			return d.open()
		}
		eff := d.close()
		if n > 0 {
			d.ClampHighlight(n)
			eff.Commit = true
			eff.Index = d.Highlighted
		}
		return eff
	case TriggerArrowUp, TriggerArrowDown:
		if !d.Open {
			return d.open()
		}
		delta := 1
		if trigger == TriggerArrowUp {
			delta = -1
		}
		return Effect{Moved: d.moveHighlightBy(delta, n)}
	case TriggerOptionClick:
		if !d.Open {
			return Effect{}
		}
		eff := d.close()
		if index >= 0 && index < n {
			eff.Commit = true
			eff.Index = index
		}
		return eff
	case TriggerHover:
		if !d.Open || index < 0 || index >= n {
			return Effect{}
		}
		moved := d.Highlighted != index
		d.Highlighted = index
		return Effect{Moved: moved}
	}
	return Effect{}
}

func (d *Dropdown) open() Effect {
	d.Open = true
	d.Highlighted = 0
	return Effect{Opened: true}
}

func (d *Dropdown) close() Effect {
	d.Open = false
	return Effect{Closed: true}
}
