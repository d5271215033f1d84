package nupkg

import (
	"path"
	"strings"
)

var assemblyExtensions = []string{".dll", ".exe", ".winmd"}

const resourceAssemblySuffix = ".resources.dll"

// AssemblyReference is a payload file that can be loaded as an
// assembly. It is always derived from the files list, never from a
// separate archive scan.
type AssemblyReference struct {
	*PackageFile
}

// Name returns the assembly file name without its directory.
func (a AssemblyReference) Name() string {
	return path.Base(a.Path())
}

// isAssemblyReference reports whether a normalized payload path denotes
// a loadable assembly: under lib/, with an assembly extension, and not
// a satellite resource assembly.
func isAssemblyReference(p string) bool {
	lower := strings.ToLower(p)
	if !strings.HasPrefix(lower, "lib/") {
		return false
	}
	if strings.HasSuffix(lower, resourceAssemblySuffix) {
		return false
	}
	for _, ext := range assemblyExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
