package metrics

import (
	"testing"
	"time"
)

var (
	_ Recorder = NoopRecorder{}
	_ Recorder = (*PrometheusRecorder)(nil)
)

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.IncDocument(ResultSuccess)
	r.IncLinkVerdict("kept")
	r.ObserveExtractDuration(time.Millisecond)
	r.SetUniqueLinks(0)
}
