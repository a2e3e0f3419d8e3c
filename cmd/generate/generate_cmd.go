package generate

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/playground/bundle"
	"github.com/LegacyCodeHQ/playground/internal/config"
	"github.com/LegacyCodeHQ/playground/internal/logging"
	"github.com/LegacyCodeHQ/playground/registry"
)

type generateOptions struct {
	configFile string
	check      bool
	verbose    bool
}

// NewCommand returns a new generate command instance.
func NewCommand() *cobra.Command {
	opts := &generateOptions{}
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Bundle queries and sample inputs into the playground module",
		Long: `Scan the query definitions and sample inputs, pair them by file stem and
write a TypeScript module exporting every pair, sorted by language name.

The output directory comes from --out-dir or the OUT_DIR environment variable.
One rerun-if-changed line is printed per input directory so the surrounding
build knows when to run the step again.

Examples:
  OUT_DIR=web/src playground generate
  playground generate --out-dir web/src --depfile build/languages.d
  playground generate --out-dir web/src --check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().String("queries-dir", defaults.QueriesDir, "Directory holding the query definitions")
	cmd.Flags().String("inputs-dir", defaults.InputsDir, "Directory holding the sample inputs")
	cmd.Flags().StringP("out-dir", "o", "", "Output directory (default: $OUT_DIR)")
	cmd.Flags().String("file-name", defaults.FileName, "Name of the generated module")
	cmd.Flags().String("query-ext", defaults.QueryExt, "Extension of query definition files")
	cmd.Flags().StringSlice("exclude-ext", defaults.ExcludeExt, "Sample input extensions to skip (comma-separated)")
	cmd.Flags().String("depfile", "", "Write a Make-style dependency file listing every input read")
	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "Config file (default: ./"+config.ConfigFileName+" when present)")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Fail if the generated module is out of date instead of writing it")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: opts.configFile,
		WorkDir:    workDir,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	languages := registry.Default()
	generator := &bundle.Generator{
		QueriesDir:         cfg.QueriesDir,
		InputsDir:          cfg.InputsDir,
		QueryExtension:     cfg.QueryExt,
		KnownExtensions:    languages.KnownExtensions(),
		ExcludedExtensions: cfg.ExcludeExt,
		Support:            languages,
		Options: bundle.RenderOptions{
			Generator: "playground",
			Command:   "playground generate",
		},
		Logger: logging.New(cmd.ErrOrStderr(), opts.verbose),
	}

	out := cmd.OutOrStdout()
	for _, hint := range bundle.RerunHints(cfg.QueriesDir, cfg.InputsDir) {
		fmt.Fprintln(out, hint)
	}

	outPath := cfg.OutputPath()
	if opts.check {
		return runCheck(cmd, generator, outPath)
	}

	result, err := generator.Run(outPath)
	if err != nil {
		return err
	}

	if cfg.Depfile != "" {
		deps := append([]string{cfg.QueriesDir, cfg.InputsDir}, result.Files...)
		if err := bundle.WriteDepfile(cfg.Depfile, outPath, deps); err != nil {
			return fmt.Errorf("failed to write depfile: %w", err)
		}
	}

	return nil
}

func runCheck(cmd *cobra.Command, generator *bundle.Generator, outPath string) error {
	result, diff, err := generator.Check(outPath)
	if errors.Is(err, bundle.ErrStale) && diff != "" {
		fmt.Fprint(cmd.OutOrStdout(), diff)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date (%d languages)\n", outPath, len(result.Entries))
	return nil
}
