package metrics

import "time"

// ResultLabel enumerates per-document outcomes for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
)

// Recorder defines observability hooks for link extraction. Implementations
// may forward to Prometheus or a test double; all methods must be safe for
// concurrent use because sources are processed in parallel.
type Recorder interface {
	IncDocument(result ResultLabel)
	IncLinkVerdict(verdict string)
	ObserveExtractDuration(d time.Duration)
	SetUniqueLinks(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncDocument(ResultLabel)              {}
func (NoopRecorder) IncLinkVerdict(string)                {}
func (NoopRecorder) ObserveExtractDuration(time.Duration) {}
func (NoopRecorder) SetUniqueLinks(int)                   {}
