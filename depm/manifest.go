package depm

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"

	"kestrelc/common"
	"kestrelc/sem"
)

// Manifest is a library manifest as it is encoded in TOML at the artifact
// root.
type Manifest struct {
	Name            string   `toml:"name"`
	Version         string   `toml:"version"`
	LanguageVersion string   `toml:"language-version"`
	Packages        []string `toml:"packages"`
	Stdlib          bool     `toml:"stdlib"`
	Interop         bool     `toml:"interop"`
}

// ResolvedLibrary is the resolved handle to a binary library artifact: its
// root path together with its validated manifest.
type ResolvedLibrary struct {
	// Root is the artifact's file-system root.
	Root string

	// Manifest is the deserialized library manifest.
	Manifest *Manifest
}

// resolveLibrary reads and validates the manifest of the artifact at root.
func resolveLibrary(root string) (*ResolvedLibrary, error) {
	buff, err := ioutil.ReadFile(filepath.Join(root, common.LibraryManifestName))
	if err != nil {
		return nil, fmt.Errorf("unable to read library manifest at `%s`: %w", root, err)
	}

	manifest := &Manifest{}
	if err := toml.Unmarshal(buff, manifest); err != nil {
		return nil, fmt.Errorf("error parsing library manifest at `%s`: %w", root, err)
	}

	if manifest.Name == "" {
		return nil, fmt.Errorf("library manifest at `%s` is missing a name", root)
	}

	if manifest.LanguageVersion == "" {
		return nil, fmt.Errorf("library manifest at `%s` is missing a language version", root)
	}

	return &ResolvedLibrary{Root: root, Manifest: manifest}, nil
}

// -----------------------------------------------------------------------------

// ModuleHeader is the deserialized header of a library module: the module
// name and the list of package names the module declares.
type ModuleHeader struct {
	// ModuleName is the name of the module the artifact was compiled from.
	ModuleName string

	// Packages is the list of declared package names.
	Packages []string
}

// MetadataLoader maps a resolved library handle to its deserialized module
// header and to package contents on demand.  Implementations are expected to
// cache: the resolution subsystem asks for the same package at most once per
// provider but makes no stronger guarantee.
type MetadataLoader interface {
	// LoadHeader loads the module header of a resolved library.
	LoadHeader(res *ResolvedLibrary) (*ModuleHeader, error)

	// LoadPackage loads the declarations of one package, attributing them to
	// the given module descriptor.
	LoadPackage(res *ResolvedLibrary, module *sem.ModuleDescriptor, pkg string) ([]sem.Descriptor, error)
}

// -----------------------------------------------------------------------------

// TOMLMetadataLoader is the development metadata loader: it reads library
// declaration listings from TOML files under the artifact's `packages`
// directory.  Production artifacts use a binary format read by a
// platform-specific loader; that format is outside this package.
type TOMLMetadataLoader struct {
	// classes caches class descriptors by artifact root and qualified name so
	// that supertype references across packages of one artifact share one
	// descriptor.
	classes map[string]*sem.ClassDescriptor
}

// NewTOMLMetadataLoader creates a new TOML metadata loader.
func NewTOMLMetadataLoader() *TOMLMetadataLoader {
	return &TOMLMetadataLoader{classes: make(map[string]*sem.ClassDescriptor)}
}

func (l *TOMLMetadataLoader) LoadHeader(res *ResolvedLibrary) (*ModuleHeader, error) {
	return &ModuleHeader{
		ModuleName: res.Manifest.Name,
		Packages:   res.Manifest.Packages,
	}, nil
}

// tomlClass is a class entry in a package declaration listing.
type tomlClass struct {
	Name       string   `toml:"name"`
	Supertypes []string `toml:"supertypes"`
	Container  bool     `toml:"container"`
}

// tomlFunc is a function entry in a package declaration listing.
type tomlFunc struct {
	Name   string   `toml:"name"`
	Params []string `toml:"params"`
	Return string   `toml:"return"`
}

// tomlProp is a property entry in a package declaration listing.
type tomlProp struct {
	Name    string `toml:"name"`
	Type    string `toml:"type"`
	Mutable bool   `toml:"mutable"`
}

// tomlPackage is a package declaration listing as encoded in TOML.
type tomlPackage struct {
	Classes []tomlClass `toml:"classes"`
	Funcs   []tomlFunc  `toml:"funcs"`
	Props   []tomlProp  `toml:"props"`
}

func (l *TOMLMetadataLoader) LoadPackage(res *ResolvedLibrary, module *sem.ModuleDescriptor, pkg string) ([]sem.Descriptor, error) {
	path := filepath.Join(res.Root, common.LibraryPackageDir, pkg+".toml")

	buff, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read package listing `%s`: %w", path, err)
	}

	listing := &tomlPackage{}
	if err := toml.Unmarshal(buff, listing); err != nil {
		return nil, fmt.Errorf("error parsing package listing `%s`: %w", path, err)
	}

	var descs []sem.Descriptor

	for _, cls := range listing.Classes {
		origin := sem.OriginDeserialized
		if cls.Container {
			origin = sem.OriginContainer
		}

		desc := l.classForOrigin(res, module, pkg, cls.Name, origin)

		for _, sup := range cls.Supertypes {
			supPkg, supName := splitQualifiedName(sup)
			desc.Supertypes = append(desc.Supertypes, l.classFor(res, module, supPkg, supName))
		}

		descs = append(descs, desc)
	}

	for _, fn := range listing.Funcs {
		desc := sem.NewFuncDescriptor(module, pkg, fn.Name, sem.OriginDeserialized)

		for _, param := range fn.Params {
			name, typ, err := l.parseParam(res, module, param)
			if err != nil {
				return nil, fmt.Errorf("in package listing `%s`: %w", path, err)
			}

			desc.AddParam(sem.NewParamDescriptor(module, pkg, name, typ))
		}

		if fn.Return != "" {
			desc.Return = l.parseType(res, module, fn.Return)
		}

		descs = append(descs, desc)
	}

	for _, prop := range listing.Props {
		desc := sem.NewPropertyDescriptor(module, pkg, prop.Name, sem.OriginDeserialized)
		desc.Type = l.parseType(res, module, prop.Type)
		desc.Mutable = prop.Mutable

		descs = append(descs, desc)
	}

	return descs, nil
}

// classFor provides or creates the shared class descriptor for a qualified
// class name within one artifact.
func (l *TOMLMetadataLoader) classFor(res *ResolvedLibrary, module *sem.ModuleDescriptor, pkg, name string) *sem.ClassDescriptor {
	return l.classForOrigin(res, module, pkg, name, sem.OriginDeserialized)
}

// classForOrigin is classFor with an explicit descriptor origin, used when
// the class's own listing entry reveals it to be a multi-file-class container
// whose references must go through the facade-class generator.  A descriptor
// created earlier for a forward reference keeps its original origin.
func (l *TOMLMetadataLoader) classForOrigin(res *ResolvedLibrary, module *sem.ModuleDescriptor, pkg, name string, origin int) *sem.ClassDescriptor {
	key := res.Root + "|" + pkg + "." + name
	if desc, ok := l.classes[key]; ok {
		return desc
	}

	desc := sem.NewClassDescriptor(module, pkg, name, origin)
	l.classes[key] = desc

	return desc
}

// parseParam parses a `name: type` parameter entry.
func (l *TOMLMetadataLoader) parseParam(res *ResolvedLibrary, module *sem.ModuleDescriptor, entry string) (string, sem.Type, error) {
	parts := strings.SplitN(entry, ":", 2)
	if len(parts) != 2 {
		return "", sem.Type{}, fmt.Errorf("malformed parameter entry `%s`", entry)
	}

	return strings.TrimSpace(parts[0]), l.parseType(res, module, strings.TrimSpace(parts[1])), nil
}

// parseType parses a qualified type string of the form `pkg.Class` with an
// optional trailing `?` nullability marker.
func (l *TOMLMetadataLoader) parseType(res *ResolvedLibrary, module *sem.ModuleDescriptor, s string) sem.Type {
	nullable := strings.HasSuffix(s, "?")
	s = strings.TrimSuffix(s, "?")

	pkg, name := splitQualifiedName(s)
	return sem.Type{Class: l.classFor(res, module, pkg, name), Nullable: nullable}
}

// splitQualifiedName splits `pkg.path.Name` into its package path and final
// name segment.
func splitQualifiedName(qual string) (string, string) {
	if i := strings.LastIndex(qual, "."); i >= 0 {
		return qual[:i], qual[i+1:]
	}

	return "", qual
}
