// Package metrics provides the counter sink the catalog tools report to.
//
// Counters are addressed by dotted names, "calls.<tool>" for invocations
// and "errors.<tool>.<category>" for failures.
package metrics

import (
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder increments named counters.
type Recorder interface {
	Inc(name string)
}

// CallName is the counter incremented once per invocation of tool.
func CallName(tool string) string {
	return "calls." + tool
}

// ErrorName is the counter incremented when tool fails with category.
func ErrorName(tool, category string) string {
	return "errors." + tool + "." + category
}

// Nop discards every increment.
type Nop struct{}

// Inc does nothing.
func (Nop) Inc(string) {}

// Prometheus maps dotted counter names onto two labelled counter vectors.
type Prometheus struct {
	registry *prometheus.Registry
	calls    *prometheus.CounterVec
	errors   *prometheus.CounterVec
}

// NewPrometheus registers the counters on a fresh registry.
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "glue_mcp",
			Name:      "calls_total",
			Help:      "Tool invocations by tool name.",
		}, []string{"tool"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "glue_mcp",
			Name:      "errors_total",
			Help:      "Tool failures by tool name and failure category.",
		}, []string{"tool", "category"}),
	}

	p.registry.MustRegister(
		p.calls,
		p.errors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return p
}

// Inc parses name and increments the matching series. Names that are not
// built by CallName or ErrorName are dropped.
func (p *Prometheus) Inc(name string) {
	parts := strings.Split(name, ".")

	switch {
	case len(parts) == 2 && parts[0] == "calls":
		p.calls.WithLabelValues(parts[1]).Inc()
	case len(parts) == 3 && parts[0] == "errors":
		p.errors.WithLabelValues(parts[1], parts[2]).Inc()
	default:
		log.Warn("Dropping counter with unexpected name", "name", name)
	}
}

// Registry exposes the underlying registry, mostly for tests.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
