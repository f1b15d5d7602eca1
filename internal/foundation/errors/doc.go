// Package errors provides the classified error type used across linkextr.
//
// Core extraction never fails on bad input, so classified errors only come
// from the outer surface: reading sources, loading configuration and writing
// results. The CLI adapter turns a category into an exit code.
//
// Example usage:
//
//	err := errors.WrapError(cause, errors.CategoryFileSystem, "read source").
//		WithContext("path", path).
//		Build()
package errors
