// Package watch reruns an extraction whenever watched Markdown files change.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	ferrors "git.home.luguber.info/inful/linkextr/internal/foundation/errors"
	"git.home.luguber.info/inful/linkextr/internal/logfields"
)

// DefaultDebounce collapses bursts of editor writes into one run.
const DefaultDebounce = 300 * time.Millisecond

// RunFunc performs one extraction pass.
type RunFunc func(ctx context.Context) error

// Options configures a Watcher.
type Options struct {
	Extensions []string      // files in watched directories that trigger a run
	Ignore     []string      // paths never triggering a run, e.g. the output file
	Debounce   time.Duration // defaults to DefaultDebounce
	Logger     *slog.Logger
}

// Watcher monitors files and directories and calls run after changes settle.
type Watcher struct {
	run      RunFunc
	opts     Options
	log      *slog.Logger
	watcher  *fsnotify.Watcher
	files    map[string]struct{} // explicitly watched files, absolute
	dirs     []string            // explicitly watched directories, absolute
	ignore   map[string]struct{}
	debounce time.Duration
}

// New creates a watcher over paths. Directories are watched recursively;
// a file is watched through its parent directory.
func New(paths []string, run RunFunc, opts Options) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, ferrors.ValidationError("watch needs at least one path").Build()
	}

	w := &Watcher{
		run:      run,
		opts:     opts,
		log:      opts.Logger,
		files:    map[string]struct{}{},
		ignore:   map[string]struct{}{},
		debounce: opts.Debounce,
	}
	if w.log == nil {
		w.log = slog.Default()
	}
	if w.debounce <= 0 {
		w.debounce = DefaultDebounce
	}

	for _, p := range opts.Ignore {
		if p == "" {
			continue
		}
		if abs, err := filepath.Abs(p); err == nil {
			w.ignore[abs] = struct{}{}
		}
	}

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to resolve watch path").
				WithContext("path", p).Build()
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryNotFound, "watch path not found").
				WithContext("path", p).Build()
		}
		if info.IsDir() {
			w.dirs = append(w.dirs, abs)
		} else {
			w.files[abs] = struct{}{}
		}
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "failed to create file watcher").Build()
	}
	w.watcher = fw

	for _, dir := range w.dirs {
		w.addDirsRecursive(dir)
	}
	for file := range w.files {
		if err := fw.Add(filepath.Dir(file)); err != nil {
			_ = fw.Close()
			return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to watch directory").
				WithContext("path", filepath.Dir(file)).Build()
		}
	}
	return w, nil
}

// Run performs an initial pass, then reruns after each settled burst of
// changes until ctx is done. Failed passes are logged and do not stop the
// watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			w.log.Warn("Error closing file watcher", logfields.Error(err))
		}
	}()

	w.log.Info("Watching for changes", logfields.Sources(len(w.dirs)+len(w.files)))
	w.pass(ctx, "initial")

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.handleEvent(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("Watcher error", logfields.Error(err))
		case <-fire:
			fire = nil
			w.pass(ctx, "change")
		}
	}
}

func (w *Watcher) pass(ctx context.Context, reason string) {
	start := time.Now()
	if err := w.run(ctx); err != nil {
		w.log.Error("Extraction failed", logfields.Event(reason), logfields.Error(err))
		return
	}
	w.log.Debug("Extraction pass finished", logfields.Event(reason),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
}

// handleEvent reports whether ev should trigger a run. New directories
// under a watched tree are added to the watch list.
func (w *Watcher) handleEvent(ev fsnotify.Event) bool {
	if _, skip := w.ignore[ev.Name]; skip {
		return false
	}
	if _, ok := w.files[ev.Name]; ok {
		w.log.Debug("File change detected", logfields.Path(ev.Name), logfields.Event(ev.Op.String()))
		return true
	}
	if !w.underWatchedDir(ev.Name) || shouldIgnoreEvent(ev.Name) {
		return false
	}

	if ev.Op.Has(fsnotify.Create) {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			w.addDirsRecursive(ev.Name)
			return true
		}
	}

	if !w.matchesExtension(ev.Name) {
		return false
	}
	w.log.Debug("File change detected", logfields.Path(ev.Name), logfields.Event(ev.Op.String()))
	return true
}

func (w *Watcher) underWatchedDir(path string) bool {
	for _, dir := range w.dirs {
		if path == dir || strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (w *Watcher) matchesExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, want := range w.opts.Extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

func (w *Watcher) addDirsRecursive(root string) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			w.log.Warn("Watch add failed", logfields.Path(path), logfields.Error(err))
		}
		return nil
	})
}

// shouldIgnoreEvent returns true for hidden, editor swap and lock files.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)

	if strings.HasPrefix(base, ".") {
		return true
	}

	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#") {
		return true
	}

	return base == "Thumbs.db"
}

