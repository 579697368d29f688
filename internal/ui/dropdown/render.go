package dropdown

import (
	"strconv"
	"strings"

	"github.com/atomicstack/selectbox/internal/selection"
	"github.com/atomicstack/selectbox/internal/theme"
	"github.com/atomicstack/selectbox/internal/ui/dispatch"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	defaultWidth = 32
	minWidth     = 16
	// " × │ ▾" to the right of the value area
	controlsWidth = 6
	// left border plus left padding
	contentInset = 2
	ellipsis     = "…"
	checkMark    = "✓ "
	noMark       = "  "
	removeMark   = "×"
	caretClosed  = "▾"
	caretOpen    = "▴"
)

// Snapshot is everything a renderer may look at for one frame.
type Snapshot struct {
	Surface     dispatch.Surface
	Focused     dispatch.Surface
	Open        bool
	Highlighted int
	Mode        selection.Mode
	Options     []selection.Option
	Selected    []selection.Option
	Placeholder string
	Width       int
}

// Frame is a rendered dropdown with hit regions relative to its top-left cell.
type Frame struct {
	Content string
	Width   int
	Height  int
	Regions []dispatch.Region
}

// Renderer turns a snapshot into a frame. It never decides selection
// semantics; it only draws what the snapshot says.
type Renderer interface {
	Render(Snapshot) Frame
}

// ClearSurface names the clear affordance of a dropdown.
func ClearSurface(root dispatch.Surface) dispatch.Surface {
	return root.Child("clear")
}

// BadgeSurface names the i-th removable badge of a multiple dropdown.
func BadgeSurface(root dispatch.Surface, i int) dispatch.Surface {
	return root.Child("badge", strconv.Itoa(i))
}

// OptionSurface names the i-th entry of the option list.
func OptionSurface(root dispatch.Surface, i int) dispatch.Surface {
	return root.Child("option", strconv.Itoa(i))
}

type boxRenderer struct {
	styles *theme.Styles
}

// NewRenderer returns the bordered Lip Gloss renderer.
func NewRenderer(styles *theme.Styles) Renderer {
	if styles == nil {
		styles = theme.Default()
	}
	return &boxRenderer{styles: styles}
}

func (r *boxRenderer) Render(s Snapshot) Frame {
	width := s.Width
	if width <= 0 {
		width = defaultWidth
	}
	if width < minWidth {
		width = minWidth
	}
	valueWidth := width - 2*contentInset - controlsWidth

	rows, badges := r.valueRows(s, valueWidth)
	lines := make([]string, len(rows))
	for i, row := range rows {
		trail := strings.Repeat(" ", controlsWidth)
		if i == 0 {
			trail = r.controls(s)
		}
		lines[i] = row + trail
	}
	boxStyle := r.styles.Container
	if s.Focused.Within(s.Surface) {
		boxStyle = r.styles.FocusedContainer
	}
	box := render(boxStyle, strings.Join(lines, "\n"))
	boxHeight := len(rows) + 2

	regions := make([]dispatch.Region, 0, 2+len(badges)+len(s.Options))
	regions = append(regions, dispatch.Region{Surface: s.Surface, Width: width, Height: boxHeight, Focusable: true})
	for _, b := range badges {
		regions = append(regions, b.Offset(contentInset, 1))
	}
	regions = append(regions, dispatch.Region{
		Surface:   ClearSurface(s.Surface),
		X:         contentInset + valueWidth + 1,
		Y:         1,
		Width:     1,
		Height:    1,
		Focusable: true,
	})

	frame := Frame{Content: box, Width: width, Height: boxHeight}
	if s.Open {
		list, listHeight, options := r.optionList(s, width)
		frame.Content = lipgloss.JoinVertical(lipgloss.Left, box, list)
		frame.Height += listHeight
		for _, o := range options {
			regions = append(regions, o.Offset(0, boxHeight))
		}
	}
	frame.Regions = regions
	return frame
}

// valueRows lays out the current selection into rows exactly valueWidth wide.
// Badge regions are relative to the first value cell.
func (r *boxRenderer) valueRows(s Snapshot, valueWidth int) ([]string, []dispatch.Region) {
	if len(s.Selected) == 0 {
		text := truncate.StringWithTail(s.Placeholder, uint(valueWidth), ellipsis)
		return []string{pad(render(r.styles.Placeholder, text), valueWidth)}, nil
	}
	if s.Mode != selection.Multiple {
		text := truncate.StringWithTail(s.Selected[0].Label, uint(valueWidth), ellipsis)
		return []string{pad(render(r.styles.Value, text), valueWidth)}, nil
	}

	var (
		rows    []string
		regions []dispatch.Region
		row     strings.Builder
		col     int
	)
	for i, opt := range s.Selected {
		// " label × " with the label clipped so one badge always fits a row
		label := truncate.StringWithTail(opt.Label, uint(max(valueWidth-4, 1)), ellipsis)
		badgeWidth := lipgloss.Width(label) + 4
		if col > 0 && col+1+badgeWidth > valueWidth {
			rows = append(rows, pad(row.String(), valueWidth))
			row.Reset()
			col = 0
		}
		if col > 0 {
			row.WriteString(" ")
			col++
		}
		surface := BadgeSurface(s.Surface, i)
		labelStyle, removeStyle := r.styles.Badge, r.styles.BadgeRemove
		if s.Focused == surface {
			labelStyle, removeStyle = r.styles.FocusedBadge, r.styles.FocusedBadge
		}
		row.WriteString(render(labelStyle, " "+label+" "))
		row.WriteString(render(removeStyle, removeMark+" "))
		regions = append(regions, dispatch.Region{
			Surface:   surface,
			X:         col,
			Y:         len(rows),
			Width:     badgeWidth,
			Height:    1,
			Focusable: true,
		})
		col += badgeWidth
	}
	rows = append(rows, pad(row.String(), valueWidth))
	return rows, regions
}

func (r *boxRenderer) controls(s Snapshot) string {
	clearStyle := r.styles.ClearButton
	if s.Focused == ClearSurface(s.Surface) {
		clearStyle = r.styles.FocusedClear
	}
	caret := caretClosed
	if s.Open {
		caret = caretOpen
	}
	return " " + render(clearStyle, removeMark) + " " + render(r.styles.Divider, "│") + " " + render(r.styles.Caret, caret)
}

func (r *boxRenderer) optionList(s Snapshot, width int) (string, int, []dispatch.Region) {
	inner := width - 2
	if len(s.Options) == 0 {
		return render(r.styles.Options, pad(render(r.styles.Info, "(no options)"), inner)), 3, nil
	}
	lines := make([]string, len(s.Options))
	regions := make([]dispatch.Region, len(s.Options))
	for i, opt := range s.Options {
		selected := selection.Contains(s.Selected, opt)
		mark := noMark
		if selected {
			mark = checkMark
		}
		label := truncate.StringWithTail(opt.Label, uint(max(inner-len(noMark), 1)), ellipsis)
		style := r.styles.Option
		switch {
		case i == s.Highlighted:
			style = r.styles.HighlightedOption
		case selected:
			style = r.styles.SelectedOption
		}
		lines[i] = render(style, pad(mark+label, inner))
		regions[i] = dispatch.Region{Surface: OptionSurface(s.Surface, i), X: 1, Y: 1 + i, Width: inner, Height: 1}
	}
	return render(r.styles.Options, strings.Join(lines, "\n")), len(lines) + 2, regions
}

func render(style *lipgloss.Style, s string) string {
	if style == nil {
		return s
	}
	return style.Render(s)
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
