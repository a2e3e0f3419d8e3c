package bundle

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultFileName is the name of the generated module inside the output directory.
const DefaultFileName = "languages_export.ts"

// RenderOptions controls the header of the generated module.
type RenderOptions struct {
	// Generator names the tool in the header comment.
	Generator string
	// Command tells readers how to regenerate the module.
	Command string
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.Generator == "" {
		o.Generator = "playground"
	}
	if o.Command == "" {
		o.Command = "playground generate"
	}
	return o
}

// Render produces the TypeScript module exporting entries as a record
// collection keyed by language. Entries are written in the order given.
func Render(entries []Entry, opts RenderOptions) string {
	opts = opts.withDefaults()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("// This file is automatically generated by %s.\n", opts.Generator))
	sb.WriteString("// It is not intended for manual editing.\n")
	sb.WriteString(fmt.Sprintf("// To generate, please run `%s`\n", opts.Command))
	sb.WriteString("const languages: {[index: string]: any} = {\n")

	for _, entry := range entries {
		sb.WriteString(fmt.Sprintf("  %s: {\n", strconv.Quote(entry.Key)))
		sb.WriteString(fmt.Sprintf("    supported: `%s`,\n", strconv.FormatBool(entry.Supported)))
		sb.WriteString("    query: `" + entry.Query + "`,\n")
		sb.WriteString("    input: `" + entry.Input + "`,\n")
		sb.WriteString("  },\n")
	}

	sb.WriteString("};\n")
	sb.WriteString("\n")
	sb.WriteString("export default languages;\n")
	return sb.String()
}
