// Package sem defines the semantic model shared between the semantic analyzer
// and IR generation: module descriptors, declaration descriptors, semantic
// types, and the binding information mapping syntax nodes to resolved facts.
package sem

import (
	"fmt"
	"strconv"
	"strings"
)

// LanguageVersion identifies a version of the Kestrel language.
type LanguageVersion struct {
	Major, Minor int
}

// CurrentVersion is the language version this toolchain implements.
var CurrentVersion = LanguageVersion{Major: 1, Minor: 4}

// ParseLanguageVersion parses a language version of the form `major.minor`.
func ParseLanguageVersion(s string) (LanguageVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return LanguageVersion{}, fmt.Errorf("malformed language version: `%s`", s)
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return LanguageVersion{}, fmt.Errorf("malformed language version: `%s`", s)
	}

	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return LanguageVersion{}, fmt.Errorf("malformed language version: `%s`", s)
	}

	return LanguageVersion{Major: major, Minor: minor}, nil
}

// Compare returns a negative number if v is older than other, zero if they are
// equal, and a positive number if v is newer than other.
func (v LanguageVersion) Compare(other LanguageVersion) int {
	if v.Major != other.Major {
		return v.Major - other.Major
	}

	return v.Minor - other.Minor
}

func (v LanguageVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}
