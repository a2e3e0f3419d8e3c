package bundle

import "strings"

// RerunHints returns one rerun-if-changed line per input directory, for the
// surrounding build to decide when the module must be regenerated.
func RerunHints(dirs ...string) []string {
	hints := make([]string, len(dirs))
	for i, dir := range dirs {
		hints[i] = "rerun-if-changed=" + dir
	}
	return hints
}

var depfileEscaper = strings.NewReplacer(
	`\`, `\\`,
	" ", `\ `,
	"#", `\#`,
	"$", "$$",
)

// FormatDepfile renders a Make rule stating that target depends on deps.
func FormatDepfile(target string, deps []string) string {
	var sb strings.Builder
	sb.WriteString(depfileEscaper.Replace(target))
	sb.WriteString(":")
	for _, dep := range deps {
		sb.WriteString(" \\\n  ")
		sb.WriteString(depfileEscaper.Replace(dep))
	}
	sb.WriteString("\n")
	return sb.String()
}

// WriteDepfile writes the Make rule produced by FormatDepfile to path.
func WriteDepfile(path, target string, deps []string) error {
	return WriteFile(path, FormatDepfile(target, deps))
}
