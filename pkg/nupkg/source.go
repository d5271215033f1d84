package nupkg

import (
	"bytes"
	"io"

	"github.com/spf13/afero"
)

// StreamSource yields a fresh readable stream over the whole archive on
// each invocation. Implementations must not assume a previously
// returned stream is still open, and must support concurrent
// invocation; no component retains a stream past the call that opened
// it.
type StreamSource func() (io.ReadCloser, error)

// FileSource returns a StreamSource that opens path on the given
// filesystem on every call.
func FileSource(fsys afero.Fs, path string) StreamSource {
	return func() (io.ReadCloser, error) {
		if path == "" {
			return nil, ErrEmptyPath
		}
		return fsys.Open(path)
	}
}

// OSFileSource returns a StreamSource over a path on the host
// filesystem.
func OSFileSource(path string) StreamSource {
	return FileSource(afero.NewOsFs(), path)
}

// BytesSource returns a StreamSource over an in-memory archive. Each
// call returns an independent reader positioned at the start.
func BytesSource(data []byte) StreamSource {
	return func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}
}
