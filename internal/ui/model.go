package ui

import (
	"reflect"

	"github.com/atomicstack/selectbox/internal/logging/events"
	"github.com/atomicstack/selectbox/internal/selection"
	"github.com/atomicstack/selectbox/internal/theme"
	"github.com/atomicstack/selectbox/internal/ui/dispatch"
	"github.com/atomicstack/selectbox/internal/ui/dropdown"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	surfaceMulti  dispatch.Surface = "multi"
	surfaceSingle dispatch.Surface = "single"

	headerTitle        = "selectbox"
	defaultPlaceholder = "Select..."
	defaultWidgetWidth = 40
	maxWidgetWidth     = 60
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// widget pairs a mounted dropdown with its caption.
type widget struct {
	label string
	model *dropdown.Model
}

// Model implements the Bubble Tea model for the demo host.
type Model struct {
	dispatcher *dispatch.Dispatcher
	options    []selection.Option

	multi       *dropdown.Model
	single      *dropdown.Model
	multiValue  []selection.Option
	singleValue *selection.Option

	width       int
	height      int
	fixedWidth  bool
	showFooter  bool
	keys        keyMap
	help        help.Model
	rendered    string
	lastFocus   dispatch.Surface
	resumeFocus dispatch.Surface
	quitting    bool

	handlers map[reflect.Type]msgHandler
}

// NewModel mounts both widgets over options. The multiple widget starts with
// the first option selected, as does the single one. A positive width pins the
// widget width; otherwise it follows the terminal.
func NewModel(options []selection.Option, width int, showFooter bool, placeholder string) *Model {
	if placeholder == "" {
		placeholder = defaultPlaceholder
	}
	m := &Model{
		dispatcher: dispatch.New(),
		options:    options,
		multiValue: []selection.Option{},
		showFooter: showFooter,
		help:       help.New(),
	}
	if len(options) > 0 {
		first := options[0]
		m.multiValue = []selection.Option{first}
		m.singleValue = &first
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	m.multi = dropdown.New(surfaceMulti, m.dispatcher, m.multiProps(), dropdown.WithPlaceholder(placeholder))
	m.single = dropdown.New(surfaceSingle, m.dispatcher, m.singleProps(), dropdown.WithPlaceholder(placeholder))
	m.keys = newKeyMap(m.multi.KeyMap())
	m.multi.Mount()
	m.single.Mount()
	m.registerHandlers()
	m.layout()
	return m
}

func (m *Model) multiProps() selection.Props {
	return selection.NewMultiple(m.options, m.multiValue, m.setMultiValue)
}

func (m *Model) singleProps() selection.Props {
	return selection.NewSingle(m.options, m.singleValue, m.setSingleValue)
}

func (m *Model) setMultiValue(next []selection.Option) {
	m.multiValue = next
	events.Host.Change(string(surfaceMulti), valueStrings(next))
	m.multi.SetProps(m.multiProps())
}

func (m *Model) setSingleValue(next *selection.Option) {
	m.singleValue = next
	var values []string
	if next != nil {
		values = valueStrings([]selection.Option{*next})
	}
	events.Host.Change(string(surfaceSingle), values)
	m.single.SetProps(m.singleProps())
}

func valueStrings(opts []selection.Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Value.String()
	}
	return out
}

// MultiValue returns the host-owned value of the multiple widget.
func (m *Model) MultiValue() []selection.Option {
	return m.multiValue
}

// SingleValue returns the host-owned value of the single widget.
func (m *Model) SingleValue() *selection.Option {
	return m.singleValue
}

func (m *Model) widgets() []widget {
	return []widget{
		{label: "Multiple", model: m.multi},
		{label: "Single", model: m.single},
	}
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.FocusMsg{}):      m.handleFocusMsg,
		reflect.TypeOf(tea.BlurMsg{}):       m.handleBlurMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if !m.quitting {
		m.layout()
		if focused := m.dispatcher.Focused(); focused != m.lastFocus {
			// a focus fallback during layout changes the styling
			m.lastFocus = focused
			events.Host.Focus(string(focused))
			m.layout()
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) quit() tea.Cmd {
	m.multi.Unmount()
	m.single.Unmount()
	m.quitting = true
	m.rendered = ""
	return tea.Quit
}
