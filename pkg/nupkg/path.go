package nupkg

import (
	"net/url"
	"strings"
)

// normalizeEntryPath converts a container-native entry name into the
// normalized form the classification layer works with: URI-decoded,
// forward slashes only, no leading slash.
func normalizeEntryPath(name string) string {
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	name = strings.ReplaceAll(name, "\\", "/")
	return strings.TrimPrefix(name, "/")
}
