// Package extract runs link collection over many sources and writes the
// combined result.
package extract

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"git.home.luguber.info/inful/linkextr/internal/linkextract"
	"git.home.luguber.info/inful/linkextr/internal/logfields"
	"git.home.luguber.info/inful/linkextr/internal/metrics"
	"git.home.luguber.info/inful/linkextr/internal/source"
	"git.home.luguber.info/inful/linkextr/internal/util/sets"
)

// Options configures a run.
type Options struct {
	Collect  linkextract.Options
	Jobs     int // sources processed at once; 0 means runtime.NumCPU()
	Recorder metrics.Recorder
	Logger   *slog.Logger
}

func (o Options) jobs() int {
	if o.Jobs <= 0 {
		return runtime.NumCPU()
	}
	return o.Jobs
}

// Run reads every source, collects its links and returns the union.
//
// Each source produces its own set; sets are merged only after all workers
// finish. The first read error cancels the remaining work and is returned.
func Run(ctx context.Context, sources []source.Source, opts Options) (sets.Set[string], error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	rec := opts.Recorder
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}

	collect := opts.Collect
	collect.Recorder = rec
	collect.Logger = log

	start := time.Now()
	results := make([]sets.Set[string], len(sources))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs())

	for i, src := range sources {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			content, err := src.Read()
			if err != nil {
				rec.IncDocument(metrics.ResultFailed)
				log.Error("Failed to read source", logfields.Source(src.Name), logfields.Error(err))
				return err
			}

			links := linkextract.CollectDocument(content, collect)
			rec.IncDocument(metrics.ResultSuccess)
			log.Debug("Collected links", logfields.Source(src.Name), logfields.Links(links.Len()))
			results[i] = links
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := sets.Union(results...)
	rec.SetUniqueLinks(out.Len())
	log.Info("Extraction complete",
		logfields.Sources(len(sources)),
		logfields.Links(out.Len()),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return out, nil
}
