package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheus_CountsRequestsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	p := NewPrometheus(NewPrometheusOptions{
		Registerer:              reg,
		ReqCntURLLabelMappingFn: func(c *gin.Context) string { return c.FullPath() },
	})

	r := gin.New()
	p.Use(r)
	r.GET("/course/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/course/"+id, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	require.Equal(t, 2.0, testutil.ToFloat64(p.reqCnt.WithLabelValues("200", http.MethodGet, "/course/:id", "")))
}

func TestNewPrometheus_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := NewPrometheus(NewPrometheusOptions{Registerer: reg})
	b := NewPrometheus(NewPrometheusOptions{Registerer: reg})
	require.Same(t, a.reqCnt, b.reqCnt)
}

func TestOutcome(t *testing.T) {
	require.Equal(t, "ok", Outcome(nil))
	require.Equal(t, "error", Outcome(errors.New("x")))
}
