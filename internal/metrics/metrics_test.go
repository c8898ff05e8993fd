package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Observe(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveGateway("payment", ResultSuccess)
	m.ObserveGateway("payment", ResultSuccess)
	m.ObserveGateway("refund", ResultFailure)
	m.ObserveTransition("subscription.cancelled")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.GatewayRequests.WithLabelValues("payment", ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GatewayRequests.WithLabelValues("refund", ResultFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transitions.WithLabelValues("subscription.cancelled")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveGateway("payment", ResultSuccess)
		m.ObserveTransition("subscription.purchased")
	})
}

func TestNew_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
