package nupkg

import "errors"

var (
	// ErrNilStreamSource is returned when a reader is constructed
	// without a stream source.
	ErrNilStreamSource = errors.New("nupkg: nil stream source")

	// ErrEmptyPath is returned by a file-backed stream source built
	// from an empty path.
	ErrEmptyPath = errors.New("nupkg: empty archive path")
)
