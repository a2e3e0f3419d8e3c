package bundle

import (
	"path/filepath"
	"strings"
)

// Filter reports whether a file found in a scanned directory gets bundled.
type Filter func(path string) bool

// ExtensionSet is a set of file extensions, each including its leading dot.
type ExtensionSet map[string]bool

// DefaultQueryExtension marks query definition files.
const DefaultQueryExtension = ".scm"

// DefaultExcludedExtensions lists interface variants skipped in favour of
// the primary file with the same stem (ocaml.mli versus ocaml.ml).
var DefaultExcludedExtensions = []string{".mli"}

// SplitName splits a base file name into its stem and extension. The
// extension starts at the last dot; a name whose only dot is the leading
// one, such as ".bashrc", has no extension.
func SplitName(base string) (stem, ext string) {
	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return base, ""
	}
	return base[:i], base[i:]
}

// QueryFilter includes only files with exactly the given extension.
func QueryFilter(ext string) Filter {
	return func(path string) bool {
		_, fileExt := SplitName(filepath.Base(path))
		return fileExt != "" && fileExt == ext
	}
}

// SampleFilter includes files whose extension is known and not excluded.
func SampleFilter(known ExtensionSet, excluded ...string) Filter {
	skip := make(map[string]bool, len(excluded))
	for _, ext := range excluded {
		skip[ext] = true
	}

	return func(path string) bool {
		_, fileExt := SplitName(filepath.Base(path))
		if fileExt == "" || skip[fileExt] {
			return false
		}
		return known[fileExt]
	}
}
