package common

// KestrelVersion is the current Kestrel toolchain version as a string.
const KestrelVersion string = "0.4.1"

// KestrelFileExt is the file extension for a Kestrel source file.
const KestrelFileExt string = ".ks"

// LibraryRootExt is the extension marking a directory as a prebuilt Kestrel
// library root.
const LibraryRootExt string = ".kslib"

// LibraryManifestName is the name of the manifest file found at the root of
// every prebuilt library.
const LibraryManifestName string = "kestrel-lib.toml"

// LibraryPackageDir is the directory inside a library root that holds the
// per-package declaration listings.
const LibraryPackageDir string = "packages"

// StdlibModuleName is the canonical name of the standard library module.
const StdlibModuleName string = "kestrel.core"
