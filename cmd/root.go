package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/playground/cmd/generate"
	"github.com/LegacyCodeHQ/playground/cmd/languages"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

// rootCmd represents the base command when called without any subcommands
var rootCmd = NewRootCommand()

// NewRootCommand returns the playground command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "playground",
		Short: "Bundle language queries and sample inputs for the web playground",
		Long: `Playground bundles the per-language query definitions and sample inputs
into a single generated TypeScript module consumed by the web playground.

Use 'playground --help' to see all available commands, or 'playground <command> --help'
for detailed information about a specific command.`,
		Version:       version,
		SilenceUsage:  true,
	}

	cmd.AddCommand(generate.NewCommand())
	cmd.AddCommand(languages.NewCommand())

	cmd.Annotations = map[string]string{
		"buildDate": buildDate,
		"commit":    commit,
	}

	// Customize version template to show additional build info
	cmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
