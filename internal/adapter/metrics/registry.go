package metrics

import "github.com/prometheus/client_golang/prometheus"

// RegistryMetrics tracks application lifecycle and container binding changes.
type RegistryMetrics struct {
	ApplicationsCreated prometheus.Counter
	ApplicationsDeleted prometheus.Counter
	Applications        prometheus.Gauge
	BindingOps          *prometheus.CounterVec
}

func NewRegistryMetrics(reg prometheus.Registerer) *RegistryMetrics {
	m := &RegistryMetrics{
		ApplicationsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "registry",
			Name:      "applications_created_total",
			Help:      "Total number of applications created.",
		}),
		ApplicationsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "registry",
			Name:      "applications_deleted_total",
			Help:      "Total number of application records removed.",
		}),
		Applications: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "registry",
			Name:      "applications",
			Help:      "Number of applications currently registered.",
		}),
		BindingOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "registry",
			Name:      "binding_operations_total",
			Help:      "Total number of container binding operations, by operation.",
		}, []string{"op"}),
	}

	reg.MustRegister(m.ApplicationsCreated, m.ApplicationsDeleted, m.Applications, m.BindingOps)
	return m
}

func (m *RegistryMetrics) ApplicationCreated() {
	m.ApplicationsCreated.Inc()
	m.Applications.Inc()
}

func (m *RegistryMetrics) ApplicationsRemoved(n int) {
	if n <= 0 {
		return
	}
	m.ApplicationsDeleted.Add(float64(n))
	m.Applications.Sub(float64(n))
}

func (m *RegistryMetrics) BindingChanged(op string) {
	m.BindingOps.WithLabelValues(op).Inc()
}
