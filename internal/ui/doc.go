// Package ui contains the Bubble Tea program that hosts two select widgets:
// one in multiple mode and one in single mode.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Host keys (tab, shift+tab, esc, q) move or drop focus and quit. Every
//     other key is handed to the dispatcher, which delivers it to the surface
//     holding focus and nowhere else.
//   - Mouse presses and motion become pointer events; the dispatcher hit-tests
//     them against the regions of the last layout and bubbles them from the
//     deepest surface outwards.
//   - finishUpdate re-lays out both widgets after every message so hit regions
//     and the focus ring always match what is on screen.
//
// State ownership:
//   - The host owns the selected values. Each widget receives them through
//     selection.Props together with an onChange callback; the callback stores
//     the new value and immediately hands the widget fresh props.
//   - Each dropdown.Model owns only its open flag and highlighted index.
//   - Listener bookkeeping lives in internal/ui/dispatch.
package ui
