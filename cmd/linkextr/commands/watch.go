package commands

import (
	"context"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/linkextr/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Flags ExtractFlags `embed:""`
	Paths []string     `arg:"" help:"Markdown files or directories to watch"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	cfg, err := w.Flags.Resolve(root)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	watcher, err := watch.New(w.Paths, func(ctx context.Context) error {
		return RunExtraction(ctx, g, cfg, w.Paths)
	}, watch.Options{
		Extensions: cfg.Extensions,
		Ignore:     []string{cfg.Output, cfg.MetricsFile},
		Logger:     g.logger(),
	})
	if err != nil {
		return err
	}
	return watcher.Run(ctx)
}
