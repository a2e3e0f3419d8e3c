// Package registry holds the table of languages the formatter recognizes,
// along with the file extensions mapped to each of them.
package registry

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed languages.toml
var defaultTable []byte

// Language describes one language and the file extensions that map to it.
type Language struct {
	Name       string        `toml:"name"`
	Extensions []string      `toml:"extensions"`
	Maturity   MaturityLevel `toml:"maturity"`
}

// Supported reports whether the language is past the experimental stage.
func (l Language) Supported() bool {
	return l.Maturity.Supported()
}

type table struct {
	Languages []Language `toml:"language"`
}

// Registry is an immutable, name-ordered language table.
type Registry struct {
	languages   []Language
	byName      map[string]int
	byExtension map[string]int
}

// Parse builds a registry from a TOML language table.
func Parse(data []byte) (*Registry, error) {
	var t table
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse language table: %w", err)
	}

	languages := append([]Language(nil), t.Languages...)
	sort.Slice(languages, func(i, j int) bool {
		return languages[i].Name < languages[j].Name
	})

	r := &Registry{
		languages:   languages,
		byName:      make(map[string]int, len(languages)),
		byExtension: make(map[string]int),
	}
	for i, language := range languages {
		if language.Name == "" {
			return nil, fmt.Errorf("language #%d has no name", i+1)
		}
		if _, dup := r.byName[language.Name]; dup {
			return nil, fmt.Errorf("language %q is defined more than once", language.Name)
		}
		r.byName[language.Name] = i

		for _, ext := range language.Extensions {
			if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
				return nil, fmt.Errorf("language %q: extension %q must start with a dot", language.Name, ext)
			}
			if owner, dup := r.byExtension[ext]; dup {
				return nil, fmt.Errorf("extension %q is claimed by both %q and %q", ext, languages[owner].Name, language.Name)
			}
			r.byExtension[ext] = i
		}
	}

	return r, nil
}

// MustParse is like Parse but panics on error.
func MustParse(data []byte) *Registry {
	r, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return r
}

// Languages returns a copy of the registered languages ordered by name.
func (r *Registry) Languages() []Language {
	languages := make([]Language, len(r.languages))
	for i, language := range r.languages {
		language.Extensions = append([]string(nil), language.Extensions...)
		languages[i] = language
	}
	return languages
}

// Lookup returns the language registered under name.
func (r *Registry) Lookup(name string) (Language, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Language{}, false
	}
	return r.languages[i], true
}

// IsSupported reports whether name is a registered, non-experimental language.
func (r *Registry) IsSupported(name string) bool {
	language, ok := r.Lookup(name)
	return ok && language.Supported()
}

// LanguageForExtension returns the language registered for the provided extension.
func (r *Registry) LanguageForExtension(ext string) (Language, bool) {
	i, ok := r.byExtension[ext]
	if !ok {
		return Language{}, false
	}
	return r.languages[i], true
}

// KnownExtensions returns every registered extension, experimental languages included.
func (r *Registry) KnownExtensions() map[string]bool {
	extensions := make(map[string]bool, len(r.byExtension))
	for ext := range r.byExtension {
		extensions[ext] = true
	}
	return extensions
}

// SortedExtensions returns all registered extensions in sorted order.
func (r *Registry) SortedExtensions() []string {
	extensions := make([]string, 0, len(r.byExtension))
	for ext := range r.byExtension {
		extensions = append(extensions, ext)
	}
	sort.Strings(extensions)
	return extensions
}

var defaultRegistry = MustParse(defaultTable)

// Default returns the registry built from the embedded language table.
func Default() *Registry {
	return defaultRegistry
}

// IsSupported reports whether name is supported by the default registry.
func IsSupported(name string) bool {
	return defaultRegistry.IsSupported(name)
}

// KnownExtensions returns the extensions of the default registry.
func KnownExtensions() map[string]bool {
	return defaultRegistry.KnownExtensions()
}

// Languages returns the languages of the default registry.
func Languages() []Language {
	return defaultRegistry.Languages()
}
