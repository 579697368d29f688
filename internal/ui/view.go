package ui

import (
	"strings"

	"github.com/atomicstack/selectbox/internal/format/table"
	"github.com/atomicstack/selectbox/internal/selection"
	"github.com/atomicstack/selectbox/internal/ui/dispatch"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const emptyValue = "(none)"

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return m.rendered
}

// layout renders every widget at its screen position and installs the
// resulting hit regions. Widgets stack vertically under their captions, so an
// open list pushes everything below it down.
func (m *Model) layout() {
	var (
		lines   []string
		regions []dispatch.Region
		y       int
	)
	add := func(block string) {
		lines = append(lines, block)
		y += lipgloss.Height(block)
	}

	add(render(styles.Header, headerTitle))
	add("")
	width := m.widgetWidth()
	for _, w := range m.widgets() {
		add(render(styles.Info, w.label))
		frame := w.model.Layout(0, y, width)
		regions = append(regions, frame.Regions...)
		add(frame.Content)
		add("")
	}
	for _, line := range m.statusLines(width) {
		add(line)
	}
	if m.showFooter {
		add("")
		add(render(styles.Footer, m.help.View(m.keys)))
	}

	m.dispatcher.SetRegions(regions)
	m.rendered = strings.Join(lines, "\n")
}

func (m *Model) widgetWidth() int {
	switch {
	case m.fixedWidth:
		return m.width
	case m.width <= 0:
		return defaultWidgetWidth
	case m.width > maxWidgetWidth:
		return maxWidgetWidth
	default:
		return m.width
	}
}

// statusLines reports the host-owned values, one aligned row per widget.
func (m *Model) statusLines(width int) []string {
	var single []selection.Option
	if m.singleValue != nil {
		single = []selection.Option{*m.singleValue}
	}
	rows := [][]string{
		{"multiple:", joinLabels(m.multiValue)},
		{"single:", joinLabels(single)},
	}
	lines := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft})
	for i, line := range lines {
		lines[i] = render(styles.Info, truncate.StringWithTail(line, uint(max(width, 1)), "…"))
	}
	return lines
}

func joinLabels(values []selection.Option) string {
	if len(values) == 0 {
		return emptyValue
	}
	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = v.Label
	}
	return strings.Join(labels, ", ")
}

func render(style *lipgloss.Style, s string) string {
	if style == nil {
		return s
	}
	return style.Render(s)
}
