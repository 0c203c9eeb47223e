package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"

	"kestrelc/depm"
	"kestrelc/report"
	"kestrelc/sem"
	"kestrelc/util"
)

// execLibCommand executes the `lib` subcommand and its subcommands.
func execLibCommand(result *olive.ArgParseResult) {
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "list":
		execLibList(subResult)
	case "packages":
		execLibPackages(subResult)
	}
}

// execLibList searches a directory for library roots and reports each root's
// manifest data and compatibility verdict.
func execLibList(result *olive.ArgParseResult) {
	searchPath, _ := result.PrimaryArg()

	version := sem.CurrentVersion
	if arg, ok := result.Arguments["language-version"]; ok {
		parsed, err := sem.ParseLanguageVersion(arg.(string))
		if err != nil {
			report.ReportFatal(err.Error())
		}

		version = parsed
	}

	roots := findLibraryRoots(searchPath)
	if len(roots) == 0 {
		report.DisplayInfoMessage("Libraries", fmt.Sprintf("no library roots under `%s`", searchPath))
		return
	}

	proj := depm.NewProject("kestrelc", version)
	lib := &depm.Library{Name: filepath.Base(searchPath), Files: roots}
	loader := depm.NewTOMLMetadataLoader()

	for _, root := range roots {
		li := depm.NewLibraryInfo(proj, lib, root, loader)

		res, err := li.Resolved()
		if err != nil {
			report.ReportStdError("error", err)
			continue
		}

		verdict := "incompatible"
		if li.Compatible() {
			verdict = "compatible"
		}

		tag := "library"
		if li.IsStdlib() {
			tag = "stdlib"
		} else if li.IsInterop() {
			tag = "interop"
		}

		report.DisplayInfoMessage(tag, fmt.Sprintf(
			"%s v%s (language %s, %s) at %s",
			res.Manifest.Name, res.Manifest.Version, res.Manifest.LanguageVersion, verdict, root,
		))
	}
}

// execLibPackages prints the package names declared by a library's module
// header.
func execLibPackages(result *olive.ArgParseResult) {
	root, _ := result.PrimaryArg()

	if !depm.IsLibraryRoot(root) {
		report.ReportFatal("`%s` is not a library root", root)
	}

	proj := depm.NewProject("kestrelc", sem.CurrentVersion)
	lib := &depm.Library{Name: filepath.Base(root), Files: []string{root}}
	loader := depm.NewTOMLMetadataLoader()

	li := depm.NewLibraryInfo(proj, lib, root, loader)
	res, err := li.Resolved()
	if err != nil {
		report.ReportFatal(err.Error())
	}

	header, err := loader.LoadHeader(res)
	if err != nil {
		report.ReportFatal(err.Error())
	}

	report.DisplayInfoMessage("Module", header.ModuleName)
	for _, pkg := range header.Packages {
		report.DisplayInfoMessage("Package", pkg)
	}
}

// findLibraryRoots collects the library roots directly under a directory.
// The search path itself may be a library root.
func findLibraryRoots(searchPath string) []string {
	if depm.IsLibraryRoot(searchPath) {
		return []string{searchPath}
	}

	entries, err := os.ReadDir(searchPath)
	if err != nil {
		report.ReportFatal("unable to read `%s`: %s", searchPath, err.Error())
	}

	paths := util.Map(entries, func(entry os.DirEntry) string {
		return filepath.Join(searchPath, entry.Name())
	})

	var roots []string
	for _, path := range paths {
		if depm.IsLibraryRoot(path) {
			roots = append(roots, path)
		}
	}

	return roots
}
