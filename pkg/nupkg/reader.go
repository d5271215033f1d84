// Package nupkg provides read-only, on-demand access to the contents
// of a zip-format package archive: the parsed manifest, the payload
// file list with per-file framework metadata, the assembly-reference
// subset, and the union of supported target frameworks. The archive is
// never held open between queries; derived lists can be cached in an
// injected TTL store.
package nupkg

import (
	"fmt"

	"nupkg/pkg/cache"
	"nupkg/pkg/framework"
	"nupkg/pkg/logger"
	"nupkg/pkg/nuspec"

	"github.com/scylladb/go-set/strset"
)

const (
	filesCacheKind      = "files"
	assembliesCacheKind = "assemblies"
)

// CacheInvalidator is implemented by readers whose derived lists can be
// cached. Callers that need to force a re-scan should depend on this
// capability, not on the concrete reader type.
type CacheInvalidator interface {
	ClearCache()
}

// PackageReader reads one package archive through a StreamSource. The
// manifest is extracted and parsed during construction and is immutable
// afterwards; file and assembly lists are computed on demand and
// optionally cached.
type PackageReader struct {
	source   StreamSource
	store    cache.Store // nil when caching is disabled
	manifest *nuspec.Manifest
}

var _ CacheInvalidator = (*PackageReader)(nil)

// Option configures a PackageReader at construction.
type Option func(*PackageReader)

// WithCache attaches a cache store; without it every query re-scans the
// archive.
func WithCache(store cache.Store) Option {
	return func(r *PackageReader) {
		r.store = store
	}
}

// NewPackageReader constructs a reader over the archive produced by
// source. The manifest is read immediately; a reader that cannot parse
// its own manifest is never returned.
func NewPackageReader(source StreamSource, opts ...Option) (*PackageReader, error) {
	if source == nil {
		return nil, ErrNilStreamSource
	}
	r := &PackageReader{source: source}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.ensureManifest(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *PackageReader) ensureManifest() error {
	data, err := extractManifest(r.source)
	if err != nil {
		return err
	}
	m, err := nuspec.Parse(data)
	if err != nil {
		return err
	}
	r.manifest = m
	logger.Debug("manifest bound", "id", m.Metadata.ID, "version", m.Metadata.Version)
	return nil
}

// Manifest returns the parsed manifest. Immutable for the life of the
// reader.
func (r *PackageReader) Manifest() *nuspec.Manifest {
	return r.manifest
}

func (r *PackageReader) ID() string {
	return r.manifest.Metadata.ID
}

func (r *PackageReader) Version() string {
	return r.manifest.Metadata.Version
}

// Files returns the payload files of the archive, serving from the
// cache when one is attached and its entry is still live.
func (r *PackageReader) Files() ([]*PackageFile, error) {
	if r.store == nil {
		return r.scanFiles()
	}
	v, err := r.store.GetOrAdd(r.cacheKey(filesCacheKind), func() (any, error) {
		return r.scanFiles()
	})
	if err != nil {
		return nil, err
	}
	return v.([]*PackageFile), nil
}

// AssemblyReferences returns the loadable-assembly subset of Files,
// under its own cache key. The result is always derived from the files
// list, never from an independent archive scan.
func (r *PackageReader) AssemblyReferences() ([]AssemblyReference, error) {
	if r.store == nil {
		return r.collectAssemblies()
	}
	v, err := r.store.GetOrAdd(r.cacheKey(assembliesCacheKind), func() (any, error) {
		return r.collectAssemblies()
	})
	if err != nil {
		return nil, err
	}
	return v.([]AssemblyReference), nil
}

func (r *PackageReader) collectAssemblies() ([]AssemblyReference, error) {
	files, err := r.Files()
	if err != nil {
		return nil, err
	}
	refs := make([]AssemblyReference, 0, len(files))
	for _, f := range files {
		if isAssemblyReference(f.Path()) {
			refs = append(refs, AssemblyReference{f})
		}
	}
	return refs, nil
}

// SupportedFrameworks returns the deduplicated union of the manifest's
// declared frameworks and every payload file's inferred framework. With
// caching attached the per-file frameworks come from the cached file
// list; without it a lighter scan runs that skips content
// materialization. Both paths are observably equivalent.
func (r *PackageReader) SupportedFrameworks() ([]framework.Framework, error) {
	seen := strset.New()
	var result []framework.Framework
	add := func(fw framework.Framework) {
		if fw.IsNone() || seen.Has(fw.String()) {
			return
		}
		seen.Add(fw.String())
		result = append(result, fw)
	}

	for _, fw := range r.manifest.DeclaredFrameworks() {
		add(fw)
	}

	if r.store != nil {
		files, err := r.Files()
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			add(f.TargetFramework())
		}
	} else {
		fws, err := r.scanFrameworks()
		if err != nil {
			return nil, err
		}
		for _, fw := range fws {
			add(fw)
		}
	}
	return result, nil
}

// ClearCache drops both cached lists for this reader's identity,
// forcing the next query to re-scan. No-op when caching is disabled.
func (r *PackageReader) ClearCache() {
	if r.store == nil {
		return
	}
	r.store.Remove(r.cacheKey(filesCacheKind))
	r.store.Remove(r.cacheKey(assembliesCacheKind))
}

func (r *PackageReader) cacheKey(kind string) string {
	return cache.Key(kind, r.ID(), r.Version())
}

// scanFiles opens a fresh stream, enumerates entries, and builds a
// PackageFile per payload entry.
func (r *PackageReader) scanFiles() ([]*PackageFile, error) {
	zr, err := openArchive(r.source)
	if err != nil {
		return nil, err
	}

	files := make([]*PackageFile, 0, len(zr.File))
	for _, entry := range zr.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		name := normalizeEntryPath(entry.Name)
		if !IsPayloadEntry(name) {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("open entry %s: %w", name, err)
		}
		pf, err := newPackageFile(name, rc)
		rc.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, pf)
	}
	logger.Debug("archive scan complete", "id", r.ID(), "version", r.Version(), "files", len(files))
	return files, nil
}

// scanFrameworks enumerates payload entries and infers their frameworks
// without materializing content. Used only when no cache is attached.
func (r *PackageReader) scanFrameworks() ([]framework.Framework, error) {
	zr, err := openArchive(r.source)
	if err != nil {
		return nil, err
	}

	var fws []framework.Framework
	for _, entry := range zr.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		name := normalizeEntryPath(entry.Name)
		if !IsPayloadEntry(name) {
			continue
		}
		fw, _ := framework.ParsePath(name)
		fws = append(fws, fw)
	}
	return fws, nil
}
