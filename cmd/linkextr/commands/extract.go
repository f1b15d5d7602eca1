package commands

import (
	"context"
	"os/signal"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/linkextr/internal/config"
	"git.home.luguber.info/inful/linkextr/internal/discovery"
	"git.home.luguber.info/inful/linkextr/internal/extract"
	ferrors "git.home.luguber.info/inful/linkextr/internal/foundation/errors"
	"git.home.luguber.info/inful/linkextr/internal/linkextract"
	"git.home.luguber.info/inful/linkextr/internal/logfields"
	"git.home.luguber.info/inful/linkextr/internal/metrics"
	"git.home.luguber.info/inful/linkextr/internal/source"
)

// ExtractCmd implements the default 'extract' command.
type ExtractCmd struct {
	Flags ExtractFlags `embed:""`
	Paths []string     `arg:"" optional:"" help:"Markdown files or directories; stdin when omitted"`
}

func (e *ExtractCmd) Run(g *Global, root *CLI) error {
	cfg, err := e.Flags.Resolve(root)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return RunExtraction(ctx, g, cfg, e.Paths)
}

// RunExtraction resolves paths, collects links from every source and
// writes the sorted result to the configured output.
func RunExtraction(ctx context.Context, g *Global, cfg *config.Config, paths []string) error {
	log := g.logger()

	srcs, err := discovery.Resolve(paths, discovery.Options{
		Extensions: cfg.Extensions,
		Exclude:    cfg.Exclude,
	})
	if err != nil {
		return err
	}
	for i, s := range srcs {
		if s.Name == source.StdinName {
			srcs[i] = source.Reader(source.StdinName, g.stdin())
		}
	}

	var rec metrics.Recorder = metrics.NoopRecorder{}
	var reg *prom.Registry
	if cfg.MetricsFile != "" {
		reg = prom.NewRegistry()
		rec = metrics.NewPrometheusRecorder(reg)
	}

	links, err := extract.Run(ctx, srcs, extract.Options{
		Collect: linkextract.Options{
			Prefix:  cfg.Prefix,
			Images:  cfg.Images,
			AllURIs: cfg.AllURIs,
		},
		Jobs:     cfg.Jobs,
		Recorder: rec,
		Logger:   log,
	})
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		if err := extract.Write(g.stdout(), links, cfg.Format); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write output").Build()
		}
	} else {
		if err := extract.WriteFile(cfg.Output, links, cfg.Format); err != nil {
			return err
		}
		log.Info("Wrote links", logfields.Output(cfg.Output), logfields.Links(links.Len()))
	}

	if reg != nil {
		if err := metrics.WriteTextfile(cfg.MetricsFile, reg); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write metrics file").
				WithContext("path", cfg.MetricsFile).Build()
		}
	}
	return nil
}
