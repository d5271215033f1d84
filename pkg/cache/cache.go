// Package cache provides the keyed get-or-compute store used to avoid
// re-scanning package archives on every query. Entries are advisory
// speedups: callers must produce identical logical results with or
// without a store attached.
package cache

import "fmt"

// Store is a keyed get-or-compute store with a fixed time-to-live set
// at construction. GetOrAdd must be atomic per key: concurrent callers
// may compute in parallel, but exactly one computed value is stored and
// every caller observes a consistent value.
type Store interface {
	GetOrAdd(key string, compute func() (any, error)) (any, error)
	Remove(key string)
}

// Key builds the cache key for one derived view of one package
// identity, e.g. Key("files", "Foo", "1.0.0") -> "files_Foo_1.0.0".
func Key(kind, id, version string) string {
	return fmt.Sprintf("%s_%s_%s", kind, id, version)
}
