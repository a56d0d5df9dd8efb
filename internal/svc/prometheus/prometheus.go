package prometheus

import (
	"github.com/meetmux/api/internal/instance"
	"github.com/prometheus/client_golang/prometheus"
)

type Options struct {
	Labels prometheus.Labels
}

func New(o Options) instance.Prometheus {
	return &Instance{
		gatewaySessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "api_gateway_sessions",
			Help:        "The current number of gateway sessions",
			ConstLabels: o.Labels,
		}),
		eventsDispatched: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "api_events_dispatched_total",
			Help:        "The total number of dispatched events",
			ConstLabels: o.Labels,
		}),
		discoveryQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "api_discovery_queries_total",
			Help:        "The total number of event discovery queries",
			ConstLabels: o.Labels,
		}),
	}
}

type Instance struct {
	gatewaySessions  prometheus.Gauge
	eventsDispatched prometheus.Counter
	discoveryQueries prometheus.Counter
}

func (m *Instance) Register(r prometheus.Registerer) {
	r.MustRegister(
		m.gatewaySessions,
		m.eventsDispatched,
		m.discoveryQueries,
	)
}

func (m *Instance) GatewaySessions() prometheus.Gauge {
	return m.gatewaySessions
}

func (m *Instance) EventsDispatched() prometheus.Counter {
	return m.eventsDispatched
}

func (m *Instance) DiscoveryQueries() prometheus.Counter {
	return m.discoveryQueries
}
