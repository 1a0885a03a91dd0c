package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result label values.
const (
	ResultOK           = "ok"
	ResultInvalid      = "invalid"
	ResultStoreError   = "store_error"
	ResultRenderError  = "render_error"
	ResultNotFound     = "not_found"
	ResultServeFailure = "error"
)

// Metrics covers the submit and download paths.
type Metrics struct {
	Submissions    *prometheus.CounterVec
	RenderDuration prometheus.Histogram
	Downloads      *prometheus.CounterVec
}

// New registers all collectors on reg. Tests pass a fresh prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Submissions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "epass_submissions_total",
			Help: "Visitor submissions by outcome",
		}, []string{"result"}),
		RenderDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "epass_render_duration_seconds",
			Help:    "Time spent rendering and writing one pass",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		Downloads: f.NewCounterVec(prometheus.CounterOpts{
			Name: "epass_downloads_total",
			Help: "Pass download requests by outcome",
		}, []string{"result"}),
	}
}

func (m *Metrics) IncSubmission(result string) {
	m.Submissions.WithLabelValues(result).Inc()
}

// ObserveRender records a render. Call with time.Now() taken before rendering.
func (m *Metrics) ObserveRender(start time.Time) {
	m.RenderDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncDownload(result string) {
	m.Downloads.WithLabelValues(result).Inc()
}

// Handler exposes g (usually prometheus.DefaultGatherer) for gin.
func Handler(g prometheus.Gatherer) gin.HandlerFunc {
	h := promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}
