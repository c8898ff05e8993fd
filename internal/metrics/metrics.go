// Package metrics описывает метрики prometheus сервиса подписок.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "subscriptions"

// Результаты обращения к платёжному сервису.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics набор счётчиков сервиса. Методы безопасно вызывать у nil.
type Metrics struct {
	GatewayRequests *prometheus.CounterVec
	Transitions     *prometheus.CounterVec
}

// New создаёт счётчики и регистрирует их в reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		GatewayRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gateway_requests_total",
			Help:      "Requests to the payment service by operation type and result.",
		}, []string{"type", "result"}),
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Persisted subscription transitions by event.",
		}, []string{"event"}),
	}
	reg.MustRegister(m.GatewayRequests, m.Transitions)
	return m
}

// ObserveGateway учитывает один вызов платёжного сервиса.
func (m *Metrics) ObserveGateway(kind, result string) {
	if m == nil {
		return
	}
	m.GatewayRequests.WithLabelValues(kind, result).Inc()
}

// ObserveTransition учитывает сохранённый переход подписки.
func (m *Metrics) ObserveTransition(event string) {
	if m == nil {
		return
	}
	m.Transitions.WithLabelValues(event).Inc()
}
