// Package nuspec parses the manifest file found inside a package
// archive: identity, version, dependency groups and framework
// assemblies. Input buffers are expected to have passed through
// Sanitize first.
package nuspec

import (
	"encoding/xml"
	"fmt"
	"strings"

	"nupkg/pkg/framework"
)

// Manifest is the parsed package manifest.
type Manifest struct {
	XMLName  xml.Name `xml:"package"`
	Metadata Metadata `xml:"metadata"`
}

type Metadata struct {
	ID          string `xml:"id"`
	Version     string `xml:"version"`
	Title       string `xml:"title"`
	Authors     string `xml:"authors"`
	Description string `xml:"description"`
	LicenseURL  string `xml:"licenseUrl"`
	ProjectURL  string `xml:"projectUrl"`
	Tags        string `xml:"tags"`

	Dependencies        DependencySection   `xml:"dependencies"`
	FrameworkAssemblies []FrameworkAssembly `xml:"frameworkAssemblies>frameworkAssembly"`
}

// DependencySection holds both the grouped form and the legacy flat
// form; real-world manifests use one or the other.
type DependencySection struct {
	Groups       []DependencyGroup `xml:"group"`
	Dependencies []Dependency      `xml:"dependency"`
}

type DependencyGroup struct {
	TargetFramework string       `xml:"targetFramework,attr"`
	Dependencies    []Dependency `xml:"dependency"`
}

type Dependency struct {
	ID           string `xml:"id,attr"`
	VersionRange string `xml:"version,attr"`
}

type FrameworkAssembly struct {
	AssemblyName string `xml:"assemblyName,attr"`
	// TargetFramework may hold a comma or semicolon separated list.
	TargetFramework string `xml:"targetFramework,attr"`
}

// ParseError reports a missing or malformed manifest.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse manifest: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parse manifest: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse decodes a sanitized manifest buffer. An empty buffer, XML that
// does not decode, or a manifest without id/version all fail with a
// *ParseError.
func Parse(data []byte) (*Manifest, error) {
	if len(data) == 0 {
		return nil, &ParseError{Reason: "empty manifest"}
	}

	var m Manifest
	if err := xml.Unmarshal(data, &m); err != nil {
		return nil, &ParseError{Reason: "malformed XML", Err: err}
	}
	if strings.TrimSpace(m.Metadata.ID) == "" {
		return nil, &ParseError{Reason: "missing package id"}
	}
	if strings.TrimSpace(m.Metadata.Version) == "" {
		return nil, &ParseError{Reason: "missing package version"}
	}
	return &m, nil
}

// AllDependencies flattens grouped and legacy flat dependencies into a
// single list.
func (m *Manifest) AllDependencies() []Dependency {
	deps := make([]Dependency, 0, len(m.Metadata.Dependencies.Dependencies))
	deps = append(deps, m.Metadata.Dependencies.Dependencies...)
	for _, g := range m.Metadata.Dependencies.Groups {
		deps = append(deps, g.Dependencies...)
	}
	return deps
}

// DeclaredFrameworks returns the frameworks the manifest itself names:
// dependency group target frameworks plus framework assembly target
// frameworks. Unparseable or empty tokens are skipped; duplicates are
// preserved (callers dedup).
func (m *Manifest) DeclaredFrameworks() []framework.Framework {
	var fws []framework.Framework
	add := func(token string) {
		fw := framework.Parse(token)
		if !fw.IsNone() {
			fws = append(fws, fw)
		}
	}

	for _, g := range m.Metadata.Dependencies.Groups {
		add(g.TargetFramework)
	}
	for _, fa := range m.Metadata.FrameworkAssemblies {
		for _, token := range splitFrameworkList(fa.TargetFramework) {
			add(token)
		}
	}
	return fws
}

func splitFrameworkList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';'
	})
}
