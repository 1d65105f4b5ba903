package notify

import (
	"campuslinkhub/internal/feed"
	"campuslinkhub/models"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts feed events and tracks the feed size.
type Metrics struct {
	Events *prometheus.CounterVec
	Posts  prometheus.Gauge
}

// NewMetrics registers the feed collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "linkhub_feed_events_total",
			Help: "Total number of applied feed mutations by kind",
		}, []string{"kind"}),
		Posts: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "linkhub_feed_posts",
			Help: "Number of posts currently in the feed",
		}),
	}
	reg.MustRegister(m.Events, m.Posts)
	return m
}

// FeedChanged implements feed.Observer.
func (m *Metrics) FeedChanged(ev feed.Event, posts models.Posts) {
	m.Events.WithLabelValues(string(ev.Kind)).Inc()
	m.Posts.Set(float64(len(posts)))
}
