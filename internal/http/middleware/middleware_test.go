package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/erp-backend/internal/http/response"
	"github.com/yungbote/erp-backend/internal/observability"
	"github.com/yungbote/erp-backend/internal/platform/ctxutil"
	"github.com/yungbote/erp-backend/internal/platform/logger"
)

func TestAttachTraceContextKeepsIncomingIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext())

	var seen *ctxutil.TraceData
	r.GET("/x", func(c *gin.Context) {
		seen = ctxutil.GetTraceData(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-Id", "req-1")
	req.Header.Set("X-Trace-Id", "trace-1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if seen == nil || seen.RequestID != "req-1" || seen.TraceID != "trace-1" {
		t.Fatalf("trace data: %+v", seen)
	}
	if got := rec.Header().Get("X-Request-Id"); got != "req-1" {
		t.Fatalf("request id header: got=%q", got)
	}
}

func TestAttachTraceContextGeneratesIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rec.Header().Get("X-Request-Id") == "" || rec.Header().Get("X-Trace-Id") == "" {
		t.Fatalf("expected generated ids, headers=%v", rec.Header())
	}
}

func TestMetricsCountsRequestsAndErrorCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := observability.New()
	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/api/orders/:id", func(c *gin.Context) {
		response.RespondError(c, http.StatusServiceUnavailable, "storage_unavailable", nil)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders/1", nil))

	var buf bytes.Buffer
	if err := m.WritePrometheus(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `erp_api_requests_total{method="GET",route="/api/orders/:id",status="503"} 1`) {
		t.Fatalf("missing request sample:\n%s", out)
	}
	if !strings.Contains(out, `erp_api_errors_total{code="storage_unavailable"} 1`) {
		t.Fatalf("missing error sample:\n%s", out)
	}
}

func TestMetricsNilIsPassThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics(nil))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("status: got=%d", rec.Code)
	}
}

func TestRequestLoggerToleratesNilLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for _, log := range []*logger.Logger{nil, logger.NewNop()} {
		r := gin.New()
		r.Use(AttachTraceContext(), RequestLogger(log))
		r.GET("/x", func(c *gin.Context) {
			response.RespondError(c, http.StatusNotFound, "not_found", nil)
		})
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status: got=%d", rec.Code)
		}
	}
}
