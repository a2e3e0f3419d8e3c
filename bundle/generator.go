// Package bundle turns per-language query definitions and sample inputs into
// a single generated TypeScript module.
//
// Both directories are scanned, matched by file stem, escaped for template
// literals and rendered in key order, so identical inputs always produce
// byte-identical output.
package bundle

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
)

// Generator bundles the assets of two directories into one module.
type Generator struct {
	QueriesDir string
	InputsDir  string

	// QueryExtension selects query files; DefaultQueryExtension when empty.
	QueryExtension string
	// KnownExtensions selects sample inputs.
	KnownExtensions ExtensionSet
	// ExcludedExtensions are dropped from the sample inputs even when known.
	ExcludedExtensions []string

	Support SupportLookup
	Options RenderOptions
	Logger  *log.Logger
}

// Result describes one bundling run.
type Result struct {
	Content string
	Entries []Entry
	// Unmatched lists query keys without a sample input.
	Unmatched []string
	// Files lists every asset file read, queries first.
	Files []string
}

func (g *Generator) logger() *log.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return log.New(io.Discard)
}

// Bundle scans both directories and renders the module without writing it.
func (g *Generator) Bundle() (*Result, error) {
	if g.Support == nil {
		return nil, errors.New("bundle: no support lookup configured")
	}

	queryExt := g.QueryExtension
	if queryExt == "" {
		queryExt = DefaultQueryExtension
	}
	logger := g.logger()

	queries, err := Collect(g.QueriesDir, QueryFilter(queryExt))
	if err != nil {
		return nil, err
	}
	logger.Debug("collected query definitions", "dir", g.QueriesDir, "count", len(queries.Assets))

	inputs, err := Collect(g.InputsDir, SampleFilter(g.KnownExtensions, g.ExcludedExtensions...))
	if err != nil {
		return nil, err
	}
	logger.Debug("collected sample inputs", "dir", g.InputsDir, "count", len(inputs.Assets))

	entries := Join(queries.Assets, inputs.Assets, g.Support)
	unmatched := Unmatched(queries.Assets, inputs.Assets)
	if len(unmatched) > 0 {
		logger.Debug("query definitions without sample input", "keys", unmatched)
	}

	return &Result{
		Content:   Render(entries, g.Options),
		Entries:   entries,
		Unmatched: unmatched,
		Files:     append(queries.Files, inputs.Files...),
	}, nil
}

// Run bundles the assets and writes the module to outPath, replacing any
// existing file. Nothing is written when bundling fails.
func (g *Generator) Run(outPath string) (*Result, error) {
	result, err := g.Bundle()
	if err != nil {
		return nil, err
	}

	if err := WriteFile(outPath, result.Content); err != nil {
		return nil, err
	}
	g.logger().Info("wrote generated module", "path", outPath, "languages", len(result.Entries))

	return result, nil
}

// Check bundles the assets and compares them with the module at outPath.
// It returns ErrStale along with a line diff when they differ.
func (g *Generator) Check(outPath string) (*Result, string, error) {
	result, err := g.Bundle()
	if err != nil {
		return nil, "", err
	}

	existing, err := os.ReadFile(outPath)
	if errors.Is(err, fs.ErrNotExist) {
		return result, "", fmt.Errorf("%w: %s does not exist", ErrStale, outPath)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", outPath, err)
	}

	if diff := LineDiff(string(existing), result.Content); diff != "" {
		return result, diff, fmt.Errorf("%w: %s", ErrStale, outPath)
	}
	return result, "", nil
}
