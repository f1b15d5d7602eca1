// Package discovery turns command-line path arguments into Markdown sources.
package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	ferrors "git.home.luguber.info/inful/linkextr/internal/foundation/errors"
	"git.home.luguber.info/inful/linkextr/internal/logfields"
	"git.home.luguber.info/inful/linkextr/internal/source"
)

// Options controls which files a directory walk picks up.
type Options struct {
	Extensions []string // matched case-insensitively, with leading dot
	Exclude    []string // filepath.Match patterns applied to base names
}

// Resolve maps path arguments to sources.
//
// No paths means standard input. A directory is walked recursively for
// matching files; any other path is read as a file whatever its extension.
// Standard input can only be read once, so repeated "-" arguments yield a
// single source.
func Resolve(paths []string, opts Options) ([]source.Source, error) {
	if len(paths) == 0 {
		return []source.Source{source.Stdin()}, nil
	}

	var out []source.Source
	stdin := false
	for _, p := range paths {
		if p == source.StdinName {
			if !stdin {
				out = append(out, source.Stdin())
				stdin = true
			}
			continue
		}

		info, err := os.Stat(p)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ferrors.NotFoundError(fmt.Sprintf("path does not exist: %s", p)).
				WithContext("path", p).Build()
		}
		if err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to stat input").
				WithContext("path", p).Build()
		}

		if !info.IsDir() {
			out = append(out, source.File(p))
			continue
		}

		files, err := Walk(p, opts)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			slog.Warn("No Markdown files found", logfields.Path(p))
		}
		for _, f := range files {
			out = append(out, source.File(f))
		}
	}
	return out, nil
}

// Walk returns the matching files below root in lexical order. Hidden files
// and directories are skipped.
func Walk(root string, opts Options) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		name := d.Name()
		if path != root && strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() || !d.Type().IsRegular() && d.Type()&fs.ModeSymlink == 0 {
			return nil
		}

		if !hasExtension(name, opts.Extensions) {
			return nil
		}
		if excluded(name, opts.Exclude) {
			slog.Debug("Excluded file", logfields.Path(path))
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to walk directory").
			WithContext("path", root).Build()
	}

	slices.Sort(files)
	slog.Debug("Discovered Markdown files", logfields.Path(root), logfields.Sources(len(files)))
	return files, nil
}

func hasExtension(name string, extensions []string) bool {
	ext := filepath.Ext(name)
	for _, want := range extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

func excluded(name string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}
