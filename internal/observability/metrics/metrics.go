package metrics

import "github.com/prometheus/client_golang/prometheus"

// SiteMetrics exposes counters and histograms for the public site flows.
type SiteMetrics struct {
	bookingsTotal    *prometheus.CounterVec
	submissionsTotal *prometheus.CounterVec
	chatTotal        *prometheus.CounterVec
	chatLatency      *prometheus.HistogramVec
	cacheTotal       *prometheus.CounterVec
}

func NewSiteMetrics(reg prometheus.Registerer) *SiteMetrics {
	m := &SiteMetrics{
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medassist",
			Subsystem: "appointments",
			Name:      "bookings_total",
			Help:      "Appointment booking attempts by outcome",
		}, []string{"outcome"}),
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medassist",
			Subsystem: "forms",
			Name:      "submissions_total",
			Help:      "Contact and review form submissions by outcome",
		}, []string{"form", "outcome"}),
		chatTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medassist",
			Subsystem: "chat",
			Name:      "completions_total",
			Help:      "Chat completions by provider and status",
		}, []string{"provider", "status"}),
		chatLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "medassist",
			Subsystem: "chat",
			Name:      "completion_latency_seconds",
			Help:      "Latency of chat completions",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider"}),
		cacheTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medassist",
			Subsystem: "content",
			Name:      "cache_lookups_total",
			Help:      "Content cache lookups by resource and result",
		}, []string{"resource", "result"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookingsTotal, m.submissionsTotal, m.chatTotal, m.chatLatency, m.cacheTotal)
	return m
}

func (m *SiteMetrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(outcome).Inc()
}

func (m *SiteMetrics) ObserveSubmission(form, outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(form, outcome).Inc()
}

func (m *SiteMetrics) ObserveChat(provider, status string, seconds float64) {
	if m == nil {
		return
	}
	m.chatTotal.WithLabelValues(provider, status).Inc()
	m.chatLatency.WithLabelValues(provider).Observe(seconds)
}

func (m *SiteMetrics) ObserveCache(resource string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheTotal.WithLabelValues(resource, result).Inc()
}
