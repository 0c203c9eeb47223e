package depm

import (
	"os"
	"path/filepath"
	"strings"

	"kestrelc/common"
	"kestrelc/sem"
)

// Library represents one project library as configured by the host's project
// model: a named set of candidate binary artifact roots.
type Library struct {
	// Name is the library's configured name.
	Name string

	// Files is the list of candidate artifact paths.
	Files []string
}

// CapLibrary attaches the resolved library record to the module descriptor
// built for it, so built-ins construction can walk a module's dependency
// closure and find the backing artifacts.
var CapLibrary = sem.NewCapability[*LibraryInfo]("library-info")

// IsLibraryRoot is the platform predicate deciding whether a file is a
// Kestrel library root: a `.kslib` directory containing a library manifest.
func IsLibraryRoot(path string) bool {
	if !strings.HasSuffix(path, common.LibraryRootExt) {
		return false
	}

	info, err := os.Stat(filepath.Join(path, common.LibraryManifestName))
	return err == nil && !info.IsDir()
}

// CreateLibraryInfo resolves a project library into library records: one
// entry per compatible binary root found.  Candidates that are not library
// roots, cannot be read, or are incompatible with the project's language
// version are skipped silently.
func CreateLibraryInfo(proj *Project, lib *Library, loader MetadataLoader) []*LibraryInfo {
	var infos []*LibraryInfo

	for _, path := range lib.Files {
		if !IsLibraryRoot(path) {
			continue
		}

		li, ok := proj.cachedLibrary(path)
		if !ok {
			li = NewLibraryInfo(proj, lib, path, loader)
			proj.cacheLibrary(li)
		}

		if !li.Compatible() {
			continue
		}

		infos = append(infos, li)
	}

	return infos
}

// -----------------------------------------------------------------------------

// LibraryInfo represents one resolved binary library artifact.  Its expensive
// fields (the resolved library handle) are computed at most once and memoized;
// the record provides no intrinsic locking.
type LibraryInfo struct {
	project *Project
	library *Library
	root    string
	loader  MetadataLoader

	resolved    *ResolvedLibrary
	resolveErr  error
	resolveDone bool
}

// NewLibraryInfo creates a new library record for a binary root.
func NewLibraryInfo(proj *Project, lib *Library, root string, loader MetadataLoader) *LibraryInfo {
	return &LibraryInfo{project: proj, library: lib, root: root, loader: loader}
}

// Root returns the local file-system root path of the artifact.
func (li *LibraryInfo) Root() string {
	return li.root
}

// Library returns the owning library container.
func (li *LibraryInfo) Library() *Library {
	return li.library
}

// Resolved returns the resolved-library handle, reading the artifact's
// manifest on first access.  The result, success or failure, is memoized.
func (li *LibraryInfo) Resolved() (*ResolvedLibrary, error) {
	if !li.resolveDone {
		li.resolved, li.resolveErr = resolveLibrary(li.root)
		li.resolveDone = true
	}

	return li.resolved, li.resolveErr
}

// Compatible indicates whether the artifact is usable with the project's
// language version.  An artifact that cannot be resolved is incompatible.
func (li *LibraryInfo) Compatible() bool {
	res, err := li.Resolved()
	if err != nil {
		return false
	}

	libVersion, err := sem.ParseLanguageVersion(res.Manifest.LanguageVersion)
	if err != nil {
		return false
	}

	// A library is compatible when it was built for the same major language
	// version and is not newer than the project's version.
	return libVersion.Major == li.project.Version.Major && libVersion.Compare(li.project.Version) <= 0
}

// IsStdlib indicates whether the artifact is flagged as the standard-library
// artifact.  A resolution failure reads as false.
func (li *LibraryInfo) IsStdlib() bool {
	res, err := li.Resolved()
	if err != nil {
		return false
	}

	return res.Manifest.Stdlib
}

// IsInterop indicates whether the artifact represents an interop library.  A
// resolution failure reads as false.
func (li *LibraryInfo) IsInterop() bool {
	res, err := li.Resolved()
	if err != nil {
		return false
	}

	return res.Manifest.Interop
}
