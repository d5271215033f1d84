package nupkg

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	"nupkg/pkg/nuspec"

	"github.com/klauspost/compress/flate"
)

// openArchive opens a fresh stream from the source, snapshots it into
// memory and returns a zip reader over the snapshot. The stream never
// outlives this call.
func openArchive(source StreamSource) (*zip.Reader, error) {
	stream, err := source()
	if err != nil {
		return nil, fmt.Errorf("open archive stream: %w", err)
	}
	defer stream.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read archive stream: %w", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip archive: %w", err)
	}
	zr.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		return flate.NewReader(r)
	})
	return zr, nil
}

// extractManifest locates the manifest entry, extracts it into memory
// and sanitizes it. If several entries match the manifest convention
// the last extracted wins; if none match the result is empty and the
// manifest parser reports the failure.
func extractManifest(source StreamSource) ([]byte, error) {
	zr, err := openArchive(source)
	if err != nil {
		return nil, err
	}

	var manifest []byte
	for _, entry := range zr.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		name := normalizeEntryPath(entry.Name)
		if !isManifestPath(name) {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("open manifest entry %s: %w", name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("extract manifest entry %s: %w", name, err)
		}
		manifest = data
	}
	return nuspec.Sanitize(manifest), nil
}
