package bundle

import "sort"

// SupportLookup reports whether an asset key names a supported language.
type SupportLookup interface {
	IsSupported(key string) bool
}

// SupportFunc adapts a plain function to SupportLookup.
type SupportFunc func(key string) bool

func (f SupportFunc) IsSupported(key string) bool {
	return f(key)
}

// Entry is one bundled language: its query and its sample input.
type Entry struct {
	Key       string
	Supported bool
	Query     string
	Input     string
}

// Join pairs query definitions with sample inputs by key. Only keys present
// in both maps produce an entry, and entries come back sorted by key.
func Join(queries, inputs AssetMap, support SupportLookup) []Entry {
	keys := make([]string, 0, len(queries))
	for key := range queries {
		if _, ok := inputs[key]; ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, Entry{
			Key:       key,
			Supported: support.IsSupported(key),
			Query:     queries[key],
			Input:     inputs[key],
		})
	}
	return entries
}

// Unmatched returns the sorted query keys that have no sample input.
func Unmatched(queries, inputs AssetMap) []string {
	var keys []string
	for key := range queries {
		if _, ok := inputs[key]; !ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
