package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, "calls.list_databases", CallName("list_databases"))
	assert.Equal(t, "errors.get_table_metadata.aws_call_error", ErrorName("get_table_metadata", "aws_call_error"))
}

func TestPrometheusInc(t *testing.T) {
	p := NewPrometheus()

	p.Inc(CallName("list_databases"))
	p.Inc(CallName("list_databases"))
	p.Inc(ErrorName("list_databases", "aws_call_error"))

	assert.Equal(t, 2.0, testutil.ToFloat64(p.calls.WithLabelValues("list_databases")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.errors.WithLabelValues("list_databases", "aws_call_error")))
}

func TestPrometheusDropsUnexpectedNames(t *testing.T) {
	p := NewPrometheus()

	assert.NotPanics(t, func() {
		p.Inc("something")
		p.Inc("calls.a.b.c")
	})
	assert.Equal(t, 0, testutil.CollectAndCount(p.calls))
	assert.Equal(t, 0, testutil.CollectAndCount(p.errors))
}

func TestPrometheusHandler(t *testing.T) {
	p := NewPrometheus()
	p.Inc(CallName("get_database_metadata"))

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `glue_mcp_calls_total{tool="get_database_metadata"} 1`))
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { Nop{}.Inc("calls.x") })
}
