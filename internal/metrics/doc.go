// Package metrics provides optional observability for link extraction runs.
//
// Components receive a Recorder through their options and default to
// NoopRecorder, so nothing needs nil checks:
//
//	opts := linkextract.Options{Recorder: metrics.NoopRecorder{}}
//
// To collect real numbers, swap in a PrometheusRecorder and write the
// registry out once the run is done:
//
//	reg := prom.NewRegistry()
//	opts.Recorder = metrics.NewPrometheusRecorder(reg)
//	// ... run ...
//	_ = metrics.WriteTextfile("linkextr.prom", reg)
//
// The textfile format is what node_exporter's textfile collector reads, which
// suits a batch tool that exits before anything could scrape it.
package metrics
