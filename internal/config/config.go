// Package config resolves the settings of the generate command from flags,
// environment variables, an optional playground.toml and built-in defaults,
// in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/LegacyCodeHQ/playground/bundle"
)

const (
	// ConfigFileName is the optional config file looked up in the working directory.
	ConfigFileName = "playground.toml"
	// EnvPrefix prefixes every environment variable the tool reads.
	EnvPrefix = "PLAYGROUND"
	// OutDirEnv is the build-system variable naming the output directory.
	OutDirEnv = "OUT_DIR"
)

// ErrOutDirUnset is returned when no output directory has been configured.
var ErrOutDirUnset = errors.New("output directory is not set (use --out-dir or the OUT_DIR environment variable)")

// Config holds the resolved generator settings.
type Config struct {
	QueriesDir string   `mapstructure:"queries_dir"`
	InputsDir  string   `mapstructure:"inputs_dir"`
	OutDir     string   `mapstructure:"out_dir"`
	FileName   string   `mapstructure:"file_name"`
	QueryExt   string   `mapstructure:"query_ext"`
	ExcludeExt []string `mapstructure:"exclude_ext"`
	Depfile    string   `mapstructure:"depfile"`
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() Config {
	return Config{
		QueriesDir: "../languages/",
		InputsDir:  "../topiary/tests/samples/input/",
		FileName:   bundle.DefaultFileName,
		QueryExt:   bundle.DefaultQueryExtension,
		ExcludeExt: append([]string(nil), bundle.DefaultExcludedExtensions...),
	}
}

// LoadOptions controls where Load looks for settings.
type LoadOptions struct {
	// ConfigFile is read exclusively when set; it must exist.
	ConfigFile string
	// WorkDir is searched for ConfigFileName when ConfigFile is empty.
	WorkDir string
	// Flags are bound by key name (queries-dir binds queries_dir).
	Flags *pflag.FlagSet
}

var keys = []string{"queries_dir", "inputs_dir", "out_dir", "file_name", "query_ext", "exclude_ext", "depfile"}

// Load resolves the configuration. It does not validate it.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("queries_dir", defaults.QueriesDir)
	v.SetDefault("inputs_dir", defaults.InputsDir)
	v.SetDefault("out_dir", defaults.OutDir)
	v.SetDefault("file_name", defaults.FileName)
	v.SetDefault("query_ext", defaults.QueryExt)
	v.SetDefault("exclude_ext", defaults.ExcludeExt)
	v.SetDefault("depfile", defaults.Depfile)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	if err := v.BindEnv("out_dir", EnvPrefix+"_OUT_DIR", OutDirEnv); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", OutDirEnv, err)
	}

	configFile := opts.ConfigFile
	if configFile == "" {
		candidate := filepath.Join(opts.WorkDir, ConfigFileName)
		if fileExists(candidate) {
			configFile = candidate
		}
	} else if !fileExists(configFile) {
		return nil, fmt.Errorf("config file not found: %s", configFile)
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	if opts.Flags != nil {
		for _, key := range keys {
			flag := opts.Flags.Lookup(strings.ReplaceAll(key, "_", "-"))
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag --%s: %w", flag.Name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Validate reports settings the generator cannot work with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutDir) == "" {
		return ErrOutDirUnset
	}
	if c.QueriesDir == "" || c.InputsDir == "" {
		return errors.New("queries and inputs directories must both be set")
	}
	if c.FileName == "" || strings.ContainsAny(c.FileName, `/\`) {
		return fmt.Errorf("invalid output file name %q", c.FileName)
	}
	if !strings.HasPrefix(c.QueryExt, ".") {
		return fmt.Errorf("query extension %q must start with a dot", c.QueryExt)
	}
	for _, ext := range c.ExcludeExt {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("excluded extension %q must start with a dot", ext)
		}
	}
	return nil
}

// OutputPath is where the generated module is written.
func (c *Config) OutputPath() string {
	return filepath.Join(c.OutDir, c.FileName)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
