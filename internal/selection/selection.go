// Package selection holds the mode-aware rules for mutating a dropdown
// selection. It never stores the selection itself: every call reads the value
// the host supplied in Props and hands the result back through the host's
// change callback.
package selection

// Mode fixes whether a widget selects one option or many.
type Mode int

const (
	Single Mode = iota
	Multiple
)

func (m Mode) String() string {
	switch m {
	case Single:
		return "single"
	case Multiple:
		return "multiple"
	default:
		return "unknown"
	}
}

// Props is the host-supplied contract for one render pass. Build it with
// NewSingle or NewMultiple; the mode tag then decides which value and
// callback arm is live.
type Props struct {
	Options []Option

	mode     Mode
	single   *Option
	multi    []Option
	onSingle func(*Option)
	onMulti  func([]Option)
}

// NewSingle builds single-choice props. value may be nil for no selection.
func NewSingle(options []Option, value *Option, onChange func(*Option)) Props {
	return Props{Options: options, mode: Single, single: value, onSingle: onChange}
}

// NewMultiple builds multiple-choice props.
func NewMultiple(options []Option, value []Option, onChange func([]Option)) Props {
	return Props{Options: options, mode: Multiple, multi: value, onMulti: onChange}
}

// Mode returns the mode tag fixed at construction.
func (p Props) Mode() Mode {
	return p.mode
}

// Value returns the single-mode selection (nil in multiple mode).
func (p Props) Value() *Option {
	return p.single
}

// Values returns the multiple-mode selection (nil in single mode).
func (p Props) Values() []Option {
	return p.multi
}

// Selected returns the current selection as a slice for either mode.
func (p Props) Selected() []Option {
	if p.mode == Multiple {
		return p.multi
	}
	if p.single == nil {
		return nil
	}
	return []Option{*p.single}
}

// Toggle applies the mode's toggle rule to option and reports whether a
// change was emitted. Selecting the current option in single mode is a no-op.
func (p Props) Toggle(option Option) bool {
	if p.mode == Multiple {
		p.emitMulti(ToggleMultiple(p.multi, option))
		return true
	}
	next, changed := ToggleSingle(p.single, option)
	if !changed {
		return false
	}
	p.emitSingle(next)
	return true
}

// Clear empties the selection unconditionally.
func (p Props) Clear() {
	if p.mode == Multiple {
		p.emitMulti([]Option{})
		return
	}
	p.emitSingle(nil)
}

// IsSelected reports membership by value.
func (p Props) IsSelected(option Option) bool {
	if p.mode == Multiple {
		return Contains(p.multi, option)
	}
	return p.single != nil && p.single.Value == option.Value
}

func (p Props) emitMulti(next []Option) {
	if p.onMulti != nil {
		p.onMulti(next)
	}
}

func (p Props) emitSingle(next *Option) {
	if p.onSingle != nil {
		p.onSingle(next)
	}
}

// ToggleMultiple removes option when an entry with its value is present and
// appends it otherwise. The input slice is never modified.
func ToggleMultiple(value []Option, option Option) []Option {
	next := make([]Option, 0, len(value)+1)
	removed := false
	for _, existing := range value {
		if existing.Value == option.Value {
			removed = true
			continue
		}
		next = append(next, existing)
	}
	if !removed {
		next = append(next, option)
	}
	return next
}

// ToggleSingle returns the new single selection and whether it changed.
func ToggleSingle(value *Option, option Option) (*Option, bool) {
	if value != nil && value.Value == option.Value {
		return value, false
	}
	selected := option
	return &selected, true
}

// Contains reports whether value holds an entry with option's value.
func Contains(value []Option, option Option) bool {
	return IndexOf(value, option.Value) >= 0
}
