package observability

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/erp-backend/internal/platform/logger"
)

func TestMetricsWritePrometheus(t *testing.T) {
	m := New()
	m.ObserveAPI("GET", "/api/orders/:id", "200", 20*time.Millisecond)
	m.ObserveAPI("GET", "/api/orders/:id", "404", 5*time.Millisecond)
	m.IncAPIError("persistence_conflict")
	m.ObserveAggregateOperation("order.place", "success", time.Millisecond)
	m.IncAggregateConflict("order.place")
	m.IncChangeEvent("order", "created", "published")

	var buf bytes.Buffer
	require.NoError(t, m.WritePrometheus(&buf))
	out := buf.String()

	assert.Contains(t, out, "# TYPE erp_api_requests_total counter")
	assert.Contains(t, out, `erp_api_requests_total{method="GET",route="/api/orders/:id",status="200"} 1`)
	assert.Contains(t, out, `erp_api_request_duration_seconds_count{method="GET",route="/api/orders/:id"} 2`)
	assert.Contains(t, out, `erp_api_request_duration_seconds_bucket{method="GET",route="/api/orders/:id",le="+Inf"} 2`)
	assert.Contains(t, out, `erp_api_errors_total{code="persistence_conflict"} 1`)
	assert.Contains(t, out, `erp_aggregate_operations_total{operation="order.place",status="success"} 1`)
	assert.Contains(t, out, `erp_aggregate_conflicts_total{operation="order.place"} 1`)
	assert.Contains(t, out, `erp_change_events_total{entity="order",action="created",outcome="published"} 1`)
}

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := NewHistogramVec("h", "help", []string{"op"}, []float64{1, 0.1})
	h.Observe(0.05, "x")
	h.Observe(0.5, "x")
	h.Observe(5, "x")

	var buf bytes.Buffer
	require.NoError(t, h.WritePrometheus(&buf))
	out := buf.String()
	assert.Contains(t, out, `h_bucket{op="x",le="0.1"} 1`)
	assert.Contains(t, out, `h_bucket{op="x",le="1"} 2`)
	assert.Contains(t, out, `h_bucket{op="x",le="+Inf"} 3`)
	assert.Equal(t, uint64(3), h.Count("x"))
	assert.Less(t, strings.Index(out, `le="0.1"`), strings.Index(out, `le="1"`))
}

func TestGaugeIncDec(t *testing.T) {
	g := NewGauge("g", "help")
	g.Inc()
	g.Inc()
	g.Dec()
	assert.Equal(t, float64(1), g.Value())
}

func TestLabelEscaping(t *testing.T) {
	assert.Equal(t, `{k="a\"b\\c\nd"}`, labelString([]string{"k"}, []string{"a\"b\\c\nd"}))
	assert.Equal(t, `{k="unknown"}`, labelString([]string{"k"}, nil))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/", "200", time.Millisecond)
	m.ApiInflightInc()
	m.IncAggregateConflict("x")
	require.NoError(t, m.WritePrometheus(&bytes.Buffer{}))
	require.NoError(t, m.StartServer(context.Background(), logger.NewNop(), ":0"))

	rec := httptest.NewRecorder()
	m.WriteHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 503, rec.Code)
}

func TestInitDisabledReturnsNil(t *testing.T) {
	assert.Nil(t, Init(logger.NewNop(), false))
}

func TestParseHeaders(t *testing.T) {
	assert.Nil(t, ParseHeaders(""))
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, ParseHeaders("a=1, b=2,bad,=x"))
}

func TestInitOTelDisabledIsNoop(t *testing.T) {
	shutdown := InitOTel(context.Background(), logger.NewNop(), OtelConfig{})
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}
