package nupkg

import "strings"

// Directories reserved for container-internal metadata; entries under
// them are never payload.
var excludedPrefixes = []string{"_rels", "package"}

const manifestExtension = ".nuspec"

// IsPayloadEntry reports whether a normalized entry path denotes a
// payload file, i.e. it is neither the manifest itself nor located
// under a reserved container-internal directory. Pure function of the
// path; directory comparison is case-insensitive.
func IsPayloadEntry(path string) bool {
	if path == "" || isManifestPath(path) {
		return false
	}
	first, _, _ := strings.Cut(path, "/")
	for _, prefix := range excludedPrefixes {
		if strings.EqualFold(first, prefix) {
			return false
		}
	}
	return true
}

func isManifestPath(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), manifestExtension)
}
