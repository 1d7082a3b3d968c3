package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "coursehub"

var HistogramBuckets = []float64{
	// fast responses
	5, 10, 25, 50, 75, 100, 150, 200, 300, 500,
	// gateway round trips
	750, 1000, 1500, 2000, 3000, 5000, 10000,
}

// Metric is a definition for the name, description, type and labels of a
// collector. MetricCollector is filled once registered.
type Metric struct {
	MetricCollector prometheus.Collector
	ID              string
	Name            string
	Description     string
	Type            string
	Args            []string
}

// NewMetric associates a prometheus.Collector based on Metric.Type.
func NewMetric(m *Metric, subsystem string) prometheus.Collector {
	switch m.Type {
	case "counter_vec":
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem, Name: m.Name, Help: m.Description,
		}, m.Args)
	case "gauge_vec":
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem, Name: m.Name, Help: m.Description,
		}, m.Args)
	case "histogram_vec":
		return prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: subsystem, Name: m.Name, Help: m.Description, Buckets: HistogramBuckets,
		}, m.Args)
	case "summary_vec":
		return prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Namespace: namespace, Subsystem: subsystem, Name: m.Name, Help: m.Description,
		}, m.Args)
	}
	return nil
}

var subscriptionTransitions = &Metric{
	ID:          "subTransitions",
	Name:        "transitions_total",
	Description: "Subscription lifecycle transitions, partitioned by transition and outcome.",
	Type:        "counter_vec",
	Args:        []string{"transition", "outcome"},
}

var gatewayDur = &Metric{
	ID:          "gatewayDur",
	Name:        "request_dur_ms",
	Description: "Billing gateway call latency in milliseconds.",
	Type:        "histogram_vec",
	Args:        []string{"op", "outcome"},
}

var statsRecomputes = &Metric{
	ID:          "statsRecomputes",
	Name:        "recomputes_total",
	Description: "Statistics snapshot writes, partitioned by trigger and outcome.",
	Type:        "counter_vec",
	Args:        []string{"trigger", "outcome"},
}

var statsLatest = &Metric{
	ID:          "statsLatest",
	Name:        "latest_value",
	Description: "Values held by the most recent statistics snapshot.",
	Type:        "gauge_vec",
	Args:        []string{"metric"},
}

var (
	SubscriptionTransitions = mustRegister(subscriptionTransitions, "subscription").(*prometheus.CounterVec)
	GatewayDuration         = mustRegister(gatewayDur, "gateway").(*prometheus.HistogramVec)
	StatsRecomputes         = mustRegister(statsRecomputes, "stats").(*prometheus.CounterVec)
	StatsLatest             = mustRegister(statsLatest, "stats").(*prometheus.GaugeVec)
)

func mustRegister(m *Metric, subsystem string) prometheus.Collector {
	c := NewMetric(m, subsystem)
	prometheus.MustRegister(c)
	m.MetricCollector = c
	return c
}

// Outcome turns an error into the outcome label value.
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

const (
	RefererKey = "X-Referer"
)
