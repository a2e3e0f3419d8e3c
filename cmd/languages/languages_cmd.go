package languages

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/playground/registry"
)

type languagesOptions struct {
	supportedOnly bool
}

// NewCommand returns a new languages command instance.
func NewCommand() *cobra.Command {
	opts := &languagesOptions{}

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List known languages, their file extensions and maturity",
		Long: `List the languages the formatter knows about, the sample-input file
extensions mapped to each of them and their maturity. Experimental languages
are bundled into the playground but flagged as unsupported.

Examples:
  playground languages
  playground languages --supported`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLanguages(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.supportedOnly, "supported", false, "Only list supported (non-experimental) languages")

	return cmd
}

func runLanguages(cmd *cobra.Command, opts *languagesOptions) error {
	for _, language := range registry.Languages() {
		if opts.supportedOnly && !language.Supported() {
			continue
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s) %s\n",
			language.Maturity.Symbol(),
			language.Name,
			strings.Join(language.Extensions, ", "),
			language.Maturity.DisplayName()); err != nil {
			return err
		}
	}

	return nil
}
