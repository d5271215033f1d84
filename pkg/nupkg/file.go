package nupkg

import (
	"bytes"
	"fmt"
	"io"

	"nupkg/pkg/framework"
)

// PackageFile is one payload entry. Content is snapshotted into memory
// at construction so the archive handle need not stay open; framework
// inference also runs exactly once at construction.
type PackageFile struct {
	path            string
	effectivePath   string
	targetFramework framework.Framework
	data            []byte
}

func newPackageFile(path string, r io.Reader) (*PackageFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("materialize entry %s: %w", path, err)
	}
	fw, effective := framework.ParsePath(path)
	return &PackageFile{
		path:            path,
		effectivePath:   effective,
		targetFramework: fw,
		data:            data,
	}, nil
}

// Path returns the normalized entry path inside the archive.
func (f *PackageFile) Path() string {
	return f.path
}

// EffectivePath is the path with any framework token removed, or the
// path unchanged when no framework was inferred.
func (f *PackageFile) EffectivePath() string {
	return f.effectivePath
}

// TargetFramework returns the inferred framework; the zero value means
// none.
func (f *PackageFile) TargetFramework() framework.Framework {
	return f.targetFramework
}

// Size returns the uncompressed content length in bytes.
func (f *PackageFile) Size() int64 {
	return int64(len(f.data))
}

// Open returns a fresh reader over the snapshotted content. Safe to
// call any number of times, concurrently.
func (f *PackageFile) Open() io.ReadCloser {
	return io.NopCloser(bytes.NewReader(f.data))
}

// SupportedFrameworks returns the singleton inferred framework, or an
// empty slice when none was inferred. Never nil.
func (f *PackageFile) SupportedFrameworks() []framework.Framework {
	if f.targetFramework.IsNone() {
		return []framework.Framework{}
	}
	return []framework.Framework{f.targetFramework}
}
