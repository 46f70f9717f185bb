package bot

import (
	"io"
	"strings"

	"github.com/VictoriaMetrics/metrics"
)

// Metrics counts handled commands. Each Bot owns its own set so sessions and
// tests never share counters.
type Metrics struct {
	set *metrics.Set
}

// NewMetrics creates an empty metric set.
func NewMetrics() *Metrics {
	return &Metrics{set: metrics.NewSet()}
}

// commandLabel bounds label cardinality to the known command names.
func commandLabel(command string) string {
	if _, ok := handlers[command]; ok {
		return command
	}
	switch command {
	case cmdClose, cmdExit:
		return command
	}
	return "unknown"
}

func (m *Metrics) observeCommand(command string) {
	m.set.GetOrCreateCounter(joinQuote("addressbook_commands_total{command=", commandLabel(command), "}")).Inc()
}

func (m *Metrics) observeError(command string) {
	m.set.GetOrCreateCounter(joinQuote("addressbook_command_errors_total{command=", commandLabel(command), "}")).Inc()
}

// Commands returns how many times command has been handled.
func (m *Metrics) Commands(command string) uint64 {
	return m.set.GetOrCreateCounter(joinQuote("addressbook_commands_total{command=", commandLabel(command), "}")).Get()
}

// WritePrometheus writes the counters in Prometheus text exposition format.
func (m *Metrics) WritePrometheus(w io.Writer) {
	m.set.WritePrometheus(w)
}

// joinQuote is [strings.Join] with " as separator.
func joinQuote(elems ...string) string { return strings.Join(elems, `"`) }
