package metrics

/* request metrics adapted from https://github.com/zsais/go-gin-prometheus:
- zap-compatible logger interface
- no push gateway, optional dedicated listener
*/

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var reqCnt = &Metric{
	ID:          "reqCnt",
	Name:        "req_total",
	Description: "How many HTTP requests processed, partitioned by status code, method and route.",
	Type:        "counter_vec",
	Args:        []string{"code", "method", "url", "ref"},
}

var reqDur = &Metric{
	ID:          "reqDur",
	Name:        "req_dur_ms",
	Description: "The HTTP request latencies in milliseconds.",
	Type:        "histogram_vec",
	Args:        []string{"code", "method", "url", "ref"},
}

var resSz = &Metric{
	ID:          "resSz",
	Name:        "resp_sz_bytes",
	Description: "The HTTP response sizes in bytes.",
	Type:        "summary_vec",
	Args:        []string{"code", "method", "url", "ref"},
}

const defaultMetricPath = "/metrics"

type Logger interface {
	Errorf(format string, v ...interface{})
	Infow(msg string, keysAndValues ...interface{})
}

// RequestCounterURLLabelMappingFn controls the cardinality of the "url"
// label, typically by returning the route template instead of the raw path.
type RequestCounterURLLabelMappingFn func(c *gin.Context) string

// Prometheus records per-request metrics and exposes the default registry.
type Prometheus struct {
	reqCnt *prometheus.CounterVec
	reqDur *prometheus.HistogramVec
	resSz  *prometheus.SummaryVec

	listenAddress string
	metricsPath   string
	urlLabel      RequestCounterURLLabelMappingFn
	logger        Logger
	server        *http.Server
}

type NewPrometheusOptions struct {
	Subsystem               string
	MetricsPath             string
	ListenAddress           string
	ReqCntURLLabelMappingFn RequestCounterURLLabelMappingFn
	Logger                  Logger
	Registerer              prometheus.Registerer
}

func NewPrometheus(options NewPrometheusOptions) *Prometheus {
	p := &Prometheus{
		listenAddress: options.ListenAddress,
		metricsPath:   options.MetricsPath,
		urlLabel:      options.ReqCntURLLabelMappingFn,
		logger:        options.Logger,
	}
	if p.metricsPath == "" {
		p.metricsPath = defaultMetricPath
	}
	if p.urlLabel == nil {
		p.urlLabel = func(c *gin.Context) string { return c.Request.URL.Path }
	}
	reg := options.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	p.reqCnt = p.register(reg, reqCnt, options.Subsystem).(*prometheus.CounterVec)
	p.reqDur = p.register(reg, reqDur, options.Subsystem).(*prometheus.HistogramVec)
	p.resSz = p.register(reg, resSz, options.Subsystem).(*prometheus.SummaryVec)
	return p
}

// register returns the already registered collector when a previous
// instance registered the same definition.
func (p *Prometheus) register(reg prometheus.Registerer, m *Metric, subsystem string) prometheus.Collector {
	c := NewMetric(m, subsystem)
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector
		}
		if p.logger != nil {
			p.logger.Errorf("%s could not be registered in Prometheus, err=%v", m.Name, err)
		}
	}
	return c
}

// Use adds the middleware to e and exposes the metrics endpoint, either on
// e itself or on the dedicated listen address.
func (p *Prometheus) Use(e *gin.Engine) {
	e.Use(p.HandlerFunc())
	if p.listenAddress == "" {
		e.GET(p.metricsPath, gin.WrapH(promhttp.Handler()))
		return
	}
	mux := http.NewServeMux()
	mux.Handle(p.metricsPath, promhttp.Handler())
	p.server = &http.Server{Addr: p.listenAddress, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := p.server.ListenAndServe(); err != nil && err != http.ErrServerClosed && p.logger != nil {
			p.logger.Errorf("metrics server error: %v", err)
		}
	}()
	if p.logger != nil {
		p.logger.Infow("metrics started", "addr", p.listenAddress)
	}
}

// Close stops the dedicated metrics listener if one was started.
func (p *Prometheus) Close() error {
	if p.server == nil {
		return nil
	}
	return p.server.Close()
}

// HandlerFunc defines handler function for middleware
func (p *Prometheus) HandlerFunc() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == p.metricsPath {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		url := p.urlLabel(c)
		ref := c.Request.Header.Get(RefererKey)

		p.reqDur.WithLabelValues(status, c.Request.Method, url, ref).Observe(MillisecondsSince(start))
		p.reqCnt.WithLabelValues(status, c.Request.Method, url, ref).Inc()
		p.resSz.WithLabelValues(status, c.Request.Method, url, ref).Observe(float64(c.Writer.Size()))
	}
}

func MillisecondsSince(t time.Time) float64 {
	return float64(time.Since(t)) / float64(time.Millisecond)
}
