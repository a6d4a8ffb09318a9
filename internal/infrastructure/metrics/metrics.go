// Package metrics define las métricas Prometheus del inventario: mutaciones del libro y catálogo,
// recargas de la vista y reportes generados.
package metrics

import (
	"time"

	"github.com/jhoicas/inventario-planchas/internal/application/inventory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventario"

var _ inventory.Metrics = (*Metrics)(nil)

// Metrics implementa inventory.Metrics. Se registra en el Registerer que se le pase,
// para que los tests usen un registro propio.
type Metrics struct {
	mutations      *prometheus.CounterVec
	reloads        *prometheus.CounterVec
	reloadDuration prometheus.Histogram
	reports        *prometheus.CounterVec
}

// New crea y registra las métricas.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		// Labels: entity (movement, product, user), op (create, update, delete...), result (ok, error)
		mutations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Total de mutaciones del libro y el catálogo por resultado.",
		}, []string{"entity", "op", "result"}),
		// Label result: applied, stale, error
		reloads: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reloads_total",
			Help:      "Total de recargas de la vista de inventario por resultado.",
		}, []string{"result"}),
		reloadDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reload_duration_seconds",
			Help:      "Duración de la lectura completa de catálogo y libro.",
			Buckets:   prometheus.DefBuckets,
		}),
		reports: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_generated_total",
			Help:      "Total de reportes exportados por tipo y formato.",
		}, []string{"type", "format"}),
	}
}

// ObserveMutation cuenta una mutación; err distinto de nil cuenta como error.
func (m *Metrics) ObserveMutation(entity, op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.mutations.WithLabelValues(entity, op, result).Inc()
}

// ObserveReload cuenta una recarga y registra su duración.
func (m *Metrics) ObserveReload(result string, elapsed time.Duration) {
	m.reloads.WithLabelValues(result).Inc()
	m.reloadDuration.Observe(elapsed.Seconds())
}

// ObserveReport cuenta un reporte exportado.
func (m *Metrics) ObserveReport(reportType, format string) {
	m.reports.WithLabelValues(reportType, format).Inc()
}
