package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/linkextr/internal/config"
)

// Global carries process-wide handles into every command.
type Global struct {
	Logger *slog.Logger
	Stdin  io.Reader
	Stdout io.Writer
}

func (g *Global) logger() *slog.Logger {
	if g == nil || g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

func (g *Global) stdin() io.Reader {
	if g == nil || g.Stdin == nil {
		return os.Stdin
	}
	return g.Stdin
}

func (g *Global) stdout() io.Writer {
	if g == nil || g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (default: ./linkextr.yaml when present)" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Extract ExtractCmd `cmd:"" default:"withargs" help:"Extract links from Markdown files or stdin (default command)"`
	Watch   WatchCmd   `cmd:"" help:"Re-run extraction whenever watched Markdown files change"`
	Init    InitCmd    `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// ExtractFlags are shared by the extract and watch commands. Each one
// overrides its config file counterpart when set.
type ExtractFlags struct {
	Output      string `short:"o" help:"Write links to this file instead of stdout" type:"path"`
	Prefix      string `short:"p" help:"Origin joined in front of absolute-path links, e.g. https://example.com"`
	AllURIs     bool   `short:"a" name:"alluri" help:"Also keep links without a host (relative paths)"`
	Images      bool   `short:"i" help:"Also extract image sources"`
	Format      string `short:"f" help:"Output format (text or json)"`
	Jobs        int    `short:"j" help:"Sources processed in parallel (0 = one per CPU)"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics to this textfile after each run" type:"path"`
}

// Resolve loads the configuration named by the root --config flag and
// applies the flags on top of it.
func (f ExtractFlags) Resolve(root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}

	if f.Output != "" {
		cfg.Output = f.Output
	}
	if f.Prefix != "" {
		cfg.Prefix = f.Prefix
	}
	cfg.AllURIs = cfg.AllURIs || f.AllURIs
	cfg.Images = cfg.Images || f.Images
	if f.Format != "" {
		cfg.Format = config.Format(f.Format)
	}
	if f.Jobs != 0 {
		cfg.Jobs = f.Jobs
	}
	if f.MetricsFile != "" {
		cfg.MetricsFile = f.MetricsFile
	}

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}
