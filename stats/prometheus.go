package stats

import "github.com/prometheus/client_golang/prometheus"

// PrometheusCollector is a StatisticCollector that exposes message counts
// as Prometheus counters, labeled by ecu id, app id, and log level,
// alongside a separate counter for non-verbose messages.
type PrometheusCollector struct {
	messages   *prometheus.CounterVec
	nonVerbose prometheus.Counter
}

var _ StatisticCollector = (*PrometheusCollector)(nil)

// NewPrometheusCollector creates a PrometheusCollector and registers its
// metrics with reg.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	c := &PrometheusCollector{
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dltcore",
			Name:      "messages_total",
			Help:      "Number of DLT messages observed, by ecu id, app id, and log level.",
		}, []string{"ecu_id", "app_id", "level"}),
		nonVerbose: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dltcore",
			Name:      "non_verbose_messages_total",
			Help:      "Number of non-verbose DLT messages observed.",
		}),
	}

	reg.MustRegister(c.messages, c.nonVerbose)

	return c
}

// CollectStatistic implements StatisticCollector.
func (c *PrometheusCollector) CollectStatistic(s Statistic) error {
	ecu := ecuIDOf(s)

	appID := ""
	level := "non_log"
	nonVerbose := true

	if s.ExtendedHeader != nil {
		appID = s.ExtendedHeader.AppID
		nonVerbose = !s.IsVerbose
		if s.LogLevel != nil {
			level = s.LogLevel.String()
		}
	}

	if nonVerbose {
		c.nonVerbose.Inc()
	}

	c.messages.WithLabelValues(ecu, appID, level).Inc()

	return nil
}
