// Package framework infers target framework identifiers from package
// archive entry paths. Inference is pure and total: any input yields a
// (possibly zero) Framework and an effective path, never an error.
package framework

import (
	"strings"
)

// Framework identifies a target framework parsed from a short folder
// name such as "net45" or "netstandard2.0". The zero value means the
// path carries no framework information.
type Framework struct {
	Identifier string
	Version    string
	Profile    string
}

// None is the zero Framework.
var None = Framework{}

func (f Framework) IsNone() bool {
	return f.Identifier == ""
}

// String returns the short folder form, e.g. "net45" or "net40-client".
// The zero value renders as the empty string.
func (f Framework) String() string {
	if f.IsNone() {
		return ""
	}
	s := f.Identifier + f.Version
	if f.Profile != "" {
		s += "-" + f.Profile
	}
	return s
}

// Folders at the archive root whose immediate child directory may name
// a target framework, e.g. lib/net45/Foo.dll.
var contentFolders = map[string]struct{}{
	"lib":     {},
	"content": {},
	"tools":   {},
	"build":   {},
}

// Parse parses a single framework folder token such as "net45" or
// "netstandard2.0" or "net40-client". Tokens that do not start with a
// letter, or contain characters outside the folder-name alphabet,
// yield None.
func Parse(token string) Framework {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return None
	}

	name := token
	profile := ""
	if idx := strings.Index(token, "-"); idx != -1 {
		name = token[:idx]
		profile = token[idx+1:]
	}

	// Identifier is the leading run of letters; the rest is the version.
	split := len(name)
	for i := 0; i < len(name); i++ {
		if !isLetter(name[i]) {
			split = i
			break
		}
	}
	if split == 0 {
		return None
	}

	version := name[split:]
	for i := 0; i < len(version); i++ {
		if !isDigit(version[i]) && version[i] != '.' {
			return None
		}
	}

	return Framework{Identifier: name[:split], Version: version, Profile: profile}
}

// ParsePath infers a framework from a normalized forward-slash entry
// path. For paths of the form <folder>/<framework>/<rest...> where
// <folder> is a known content folder, it returns the parsed framework
// and <rest...> as the effective path. Everything else returns None and
// the path unchanged.
func ParsePath(path string) (Framework, string) {
	parts := strings.Split(path, "/")
	if len(parts) < 3 {
		return None, path
	}
	if _, ok := contentFolders[strings.ToLower(parts[0])]; !ok {
		return None, path
	}
	fw := Parse(parts[1])
	if fw.IsNone() {
		return None, path
	}
	return fw, strings.Join(parts[2:], "/")
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
