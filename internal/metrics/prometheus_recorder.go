package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once            sync.Once
	documents       *prom.CounterVec
	linkVerdicts    *prom.CounterVec
	extractDuration prom.Histogram
	uniqueLinks     prom.Gauge
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.documents = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "linkextr",
			Name:      "documents_total",
			Help:      "Markdown sources processed by outcome",
		}, []string{"result"})
		pr.linkVerdicts = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "linkextr",
			Name:      "link_verdicts_total",
			Help:      "Link-like nodes seen, by keep or discard verdict",
		}, []string{"verdict"})
		pr.extractDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "linkextr",
			Name:      "extract_duration_seconds",
			Help:      "Time spent extracting links from a single source",
			Buckets:   prom.DefBuckets,
		})
		pr.uniqueLinks = prom.NewGauge(prom.GaugeOpts{
			Namespace: "linkextr",
			Name:      "unique_links",
			Help:      "Number of distinct links in the last result set",
		})
		reg.MustRegister(pr.documents, pr.linkVerdicts, pr.extractDuration, pr.uniqueLinks)
	})
	return pr
}

func (p *PrometheusRecorder) IncDocument(result ResultLabel) {
	if p == nil || p.documents == nil {
		return
	}
	p.documents.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) IncLinkVerdict(verdict string) {
	if p == nil || p.linkVerdicts == nil {
		return
	}
	p.linkVerdicts.WithLabelValues(verdict).Inc()
}

func (p *PrometheusRecorder) ObserveExtractDuration(d time.Duration) {
	if p == nil || p.extractDuration == nil {
		return
	}
	p.extractDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) SetUniqueLinks(n int) {
	if p == nil || p.uniqueLinks == nil {
		return
	}
	p.uniqueLinks.Set(float64(n))
}

// WriteTextfile writes every metric gathered from g to path in the
// Prometheus text exposition format.
func WriteTextfile(path string, g prom.Gatherer) error {
	return prom.WriteToTextfile(path, g)
}
