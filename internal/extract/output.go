package extract

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/linkextr/internal/config"
	ferrors "git.home.luguber.info/inful/linkextr/internal/foundation/errors"
	"git.home.luguber.info/inful/linkextr/internal/util/sets"
)

// Write emits links in ascending order: one per line for FormatText, a JSON
// array for FormatJSON.
func Write(w io.Writer, links sets.Set[string], format config.Format) error {
	sorted := sets.Sorted(links)

	if format == config.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(sorted)
	}

	bw := bufio.NewWriter(w)
	for _, link := range sorted {
		if _, err := bw.WriteString(link + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes links to path, replacing it atomically. An empty path
// writes to stdout.
func WriteFile(path string, links sets.Set[string], format config.Format) error {
	if path == "" {
		return Write(os.Stdout, links, format)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to create output file").
			WithContext("path", path).Build()
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if err := Write(tmp, links, format); err != nil {
		_ = tmp.Close()
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write output").
			WithContext("path", path).Build()
	}
	if err := tmp.Close(); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to close output").
			WithContext("path", path).Build()
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to set output permissions").
			WithContext("path", path).Build()
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to replace output file").
			WithContext("path", path).Build()
	}
	return nil
}
