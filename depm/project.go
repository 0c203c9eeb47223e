// Package depm implements resolution of prebuilt binary Kestrel libraries:
// discovering library roots, checking compatibility, constructing
// package-fragment providers for the IR generator, and building the built-ins
// module from a project's standard-library artifact.
package depm

import "kestrelc/sem"

// Project carries the per-session state library resolution needs from the
// host: the language version being compiled against and a cache of library
// records.  Library records are cached for the project's session and the host
// invalidates them when the project's library configuration changes.
//
// The cache itself is not synchronized: a host calling in from several
// project-indexing threads must serialize first-access races per distinct
// library path.
type Project struct {
	// Name is the project name, used in diagnostics.
	Name string

	// Version is the language version the project compiles against.
	Version sem.LanguageVersion

	libCache map[string]*LibraryInfo
}

// NewProject creates a new project record.
func NewProject(name string, version sem.LanguageVersion) *Project {
	return &Project{
		Name:     name,
		Version:  version,
		libCache: make(map[string]*LibraryInfo),
	}
}

// cachedLibrary returns the cached library record for a root path, if any.
func (p *Project) cachedLibrary(root string) (*LibraryInfo, bool) {
	li, ok := p.libCache[root]
	return li, ok
}

// cacheLibrary stores a library record in the session cache.
func (p *Project) cacheLibrary(li *LibraryInfo) {
	p.libCache[li.root] = li
}

// InvalidateLibraries drops all cached library records.  The host calls this
// when the project's library configuration changes.
func (p *Project) InvalidateLibraries() {
	p.libCache = make(map[string]*LibraryInfo)
}
