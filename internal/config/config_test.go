package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		OutDirEnv,
		"PLAYGROUND_OUT_DIR",
		"PLAYGROUND_QUERIES_DIR",
		"PLAYGROUND_INPUTS_DIR",
		"PLAYGROUND_FILE_NAME",
		"PLAYGROUND_QUERY_EXT",
		"PLAYGROUND_EXCLUDE_EXT",
		"PLAYGROUND_DEPFILE",
	} {
		t.Setenv(name, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(LoadOptions{WorkDir: t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), *cfg)
	assert.ErrorIs(t, cfg.Validate(), ErrOutDirUnset)
}

func TestLoad_OutDirFromBuildEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(OutDirEnv, "/tmp/build/out")

	cfg, err := Load(LoadOptions{WorkDir: t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/build/out", cfg.OutDir)
	assert.Equal(t, filepath.Join("/tmp/build/out", "languages_export.ts"), cfg.OutputPath())
	require.NoError(t, cfg.Validate())
}

func TestLoad_PrefixedEnvWinsOverOutDir(t *testing.T) {
	clearEnv(t)
	t.Setenv(OutDirEnv, "/from/out_dir")
	t.Setenv("PLAYGROUND_OUT_DIR", "/from/prefixed")
	t.Setenv("PLAYGROUND_EXCLUDE_EXT", ".mli,.hpp")

	cfg, err := Load(LoadOptions{WorkDir: t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, "/from/prefixed", cfg.OutDir)
	assert.Equal(t, []string{".mli", ".hpp"}, cfg.ExcludeExt)
}

func TestLoad_ConfigFileInWorkDir(t *testing.T) {
	clearEnv(t)
	workDir := t.TempDir()
	content := "queries_dir = \"queries\"\ninputs_dir = \"samples\"\nout_dir = \"dist\"\nexclude_ext = [\".mli\", \".rei\"]\n"
	require.NoError(t, os.WriteFile(filepath.Join(workDir, ConfigFileName), []byte(content), 0o644))

	cfg, err := Load(LoadOptions{WorkDir: workDir})
	require.NoError(t, err)

	assert.Equal(t, "queries", cfg.QueriesDir)
	assert.Equal(t, "samples", cfg.InputsDir)
	assert.Equal(t, "dist", cfg.OutDir)
	assert.Equal(t, []string{".mli", ".rei"}, cfg.ExcludeExt)
	assert.Equal(t, ".scm", cfg.QueryExt)
}

func TestLoad_EnvWinsOverConfigFile(t *testing.T) {
	clearEnv(t)
	workDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(workDir, ConfigFileName), []byte("out_dir = \"dist\"\n"), 0o644))
	t.Setenv(OutDirEnv, "/from/env")

	cfg, err := Load(LoadOptions{WorkDir: workDir})
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.OutDir)
}

func TestLoad_FlagsWinOverEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(OutDirEnv, "/from/env")

	flags := pflag.NewFlagSet("generate", pflag.ContinueOnError)
	flags.String("out-dir", "", "")
	flags.String("queries-dir", "", "")
	flags.StringSlice("exclude-ext", nil, "")
	require.NoError(t, flags.Parse([]string{"--out-dir", "/from/flag", "--exclude-ext", ".a,.b"}))

	cfg, err := Load(LoadOptions{WorkDir: t.TempDir(), Flags: flags})
	require.NoError(t, err)

	assert.Equal(t, "/from/flag", cfg.OutDir)
	assert.Equal(t, []string{".a", ".b"}, cfg.ExcludeExt)
	assert.Equal(t, "../languages/", cfg.QueriesDir, "unchanged flags keep the default")
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "missing.toml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_InvalidConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("out_dir = \n"), 0o644))

	_, err := Load(LoadOptions{ConfigFile: path})
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	valid := DefaultConfig()
	valid.OutDir = "out"

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "blank out dir", mutate: func(c *Config) { c.OutDir = "  " }, wantErr: true},
		{name: "empty queries dir", mutate: func(c *Config) { c.QueriesDir = "" }, wantErr: true},
		{name: "file name with separator", mutate: func(c *Config) { c.FileName = "a/b.ts" }, wantErr: true},
		{name: "empty file name", mutate: func(c *Config) { c.FileName = "" }, wantErr: true},
		{name: "query ext without dot", mutate: func(c *Config) { c.QueryExt = "scm" }, wantErr: true},
		{name: "excluded ext without dot", mutate: func(c *Config) { c.ExcludeExt = []string{"mli"} }, wantErr: true},
		{name: "no exclusions", mutate: func(c *Config) { c.ExcludeExt = nil }, wantErr: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			cfg.ExcludeExt = append([]string(nil), valid.ExcludeExt...)
			tc.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestConfigValidate_SentinelError(t *testing.T) {
	cfg := DefaultConfig()

	err := cfg.Validate()
	if !errors.Is(err, ErrOutDirUnset) {
		t.Fatalf("Validate() error = %v, want ErrOutDirUnset", err)
	}
}
