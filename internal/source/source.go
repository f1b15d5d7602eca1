// Package source opens Markdown inputs and decodes them to UTF-8 text.
package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	ferrors "git.home.luguber.info/inful/linkextr/internal/foundation/errors"
)

// StdinName is the display name used for standard input.
const StdinName = "-"

// Source is a named Markdown input that can be read once or many times.
type Source struct {
	Name string
	open func() (io.ReadCloser, error)
}

// File returns a source reading the file at path.
func File(path string) Source {
	return Source{
		Name: path,
		open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// Reader returns a source over r. It is meant to be read once.
func Reader(name string, r io.Reader) Source {
	return Source{
		Name: name,
		open: func() (io.ReadCloser, error) { return io.NopCloser(r), nil },
	}
}

// Stdin returns a source over os.Stdin.
func Stdin() Source {
	return Reader(StdinName, os.Stdin)
}

// Read returns the decoded content of the source.
func (s Source) Read() (string, error) {
	if s.open == nil {
		return "", ferrors.InternalError(fmt.Sprintf("source %q has no reader", s.Name)).Build()
	}

	rc, err := s.open()
	if err != nil {
		return "", classifyOpenError(s.Name, err)
	}
	defer func() {
		_ = rc.Close()
	}()

	content, err := Decode(rc)
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to read source").
			WithContext("path", s.Name).Build()
	}
	return content, nil
}

// Decode reads r to the end as UTF-8. A leading UTF-8 or UTF-16 byte order
// mark selects the encoding and is removed.
func Decode(r io.Reader) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func classifyOpenError(name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return ferrors.WrapError(err, ferrors.CategoryNotFound, "input not found").
			WithContext("path", name).Build()
	}
	return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to open input").
		WithContext("path", name).Build()
}
