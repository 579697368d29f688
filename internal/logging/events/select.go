package events

import "github.com/atomicstack/selectbox/internal/logging"

type SelectTracer struct{}

type HostTracer struct{}

type closeReason string

const (
	ReasonClick  closeReason = "click"
	ReasonBlur   closeReason = "blur"
	ReasonCommit closeReason = "commit"
)

var (
	Select = SelectTracer{}
	Host   = HostTracer{}
)

func (SelectTracer) Open(id string) {
	logging.Trace("select.open", map[string]interface{}{"select": id})
}

func (SelectTracer) Close(id string, reason closeReason) {
	logging.Trace("select.close", map[string]interface{}{"select": id, "reason": string(reason)})
}

func (SelectTracer) Highlight(id string, index int) {
	logging.Trace("select.highlight", map[string]interface{}{"select": id, "index": index})
}

func (SelectTracer) Toggle(id, value, label string, changed bool) {
	logging.Trace("select.toggle", map[string]interface{}{
		"select":  id,
		"value":   value,
		"label":   label,
		"changed": changed,
	})
}

func (SelectTracer) Clear(id string) {
	logging.Trace("select.clear", map[string]interface{}{"select": id})
}

func (SelectTracer) Rebind(id string, open bool, highlighted, options int) {
	logging.Trace("select.rebind", map[string]interface{}{
		"select":      id,
		"open":        open,
		"highlighted": highlighted,
		"options":     options,
	})
}

func (SelectTracer) Unmount(id string, released int) {
	logging.Trace("select.unmount", map[string]interface{}{"select": id, "released": released})
}

func (HostTracer) Change(id string, values []string) {
	logging.Trace("host.change", map[string]interface{}{"select": id, "values": values})
}

func (HostTracer) Focus(surface string) {
	logging.Trace("host.focus", map[string]interface{}{"surface": surface})
}
