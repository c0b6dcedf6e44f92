package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Aleph-Alpha/logship/v1/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveOperation_Success(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "test", Namespace: "logship"})

	m.ObserveOperation(observability.OperationContext{
		Component: "rabbitlog",
		Operation: "publish",
		Resource:  "logs",
		Duration:  5 * time.Millisecond,
		Size:      128,
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("rabbitlog", "publish", "success")))
	assert.Equal(t, 128.0, testutil.ToFloat64(m.payloadBytes.WithLabelValues("rabbitlog", "logs")))
}

func TestObserveOperation_Error(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "test"})

	m.ObserveOperation(observability.OperationContext{
		Component: "rabbitlog",
		Operation: "connect",
		Resource:  "localhost:5672",
		Error:     errors.New("refused"),
		Size:      10,
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("rabbitlog", "connect", "error")))
	assert.Equal(t, 0, testutil.CollectAndCount(m.payloadBytes))
}

func TestMetricsEndpoint(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "svc", Namespace: "logship"})
	m.ObserveOperation(observability.OperationContext{Component: "rabbitlog", Operation: "publish"})

	rec := httptest.NewRecorder()
	m.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `logship_operations_total{component="rabbitlog",operation="publish",service="svc",status="success"} 1`), body)
}

func TestCreateCounter(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "svc"})
	c := m.CreateCounter("custom_total", "custom", []string{"kind"})
	c.WithLabelValues("a").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(c.WithLabelValues("a")))
}

func TestDefaultAddress(t *testing.T) {
	m := NewMetrics(Config{})
	assert.Equal(t, DefaultMetricsAddress, m.Server.Addr)
}

func TestCreateHistogram(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "svc", Namespace: "logship"})
	h := m.CreateHistogram("record_size_bytes", "record size", []string{"level"}, []float64{64, 256, 1024})
	h.WithLabelValues("info").Observe(100)
	h.WithLabelValues("info").Observe(2000)

	expected := `
# HELP logship_record_size_bytes record size
# TYPE logship_record_size_bytes histogram
logship_record_size_bytes_bucket{level="info",service="svc",le="64"} 0
logship_record_size_bytes_bucket{level="info",service="svc",le="256"} 1
logship_record_size_bytes_bucket{level="info",service="svc",le="1024"} 1
logship_record_size_bytes_bucket{level="info",service="svc",le="+Inf"} 2
logship_record_size_bytes_sum{level="info",service="svc"} 2100
logship_record_size_bytes_count{level="info",service="svc"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected), "logship_record_size_bytes"))
}

func TestCreateGauge(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "svc"})
	g := m.CreateGauge("connected", "broker connection state", []string{"exchange"})
	g.WithLabelValues("logs").Set(1)
	g.WithLabelValues("logs").Dec()

	assert.Equal(t, 0.0, testutil.ToFloat64(g.WithLabelValues("logs")))
	assert.Equal(t, 1, testutil.CollectAndCount(g))
}

func TestCreateDuplicateMetricPanics(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "svc"})
	m.CreateGauge("connected", "broker connection state", nil)

	assert.Panics(t, func() { m.CreateGauge("connected", "broker connection state", nil) })
}
