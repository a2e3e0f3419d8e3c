package languages

import (
	"bytes"
	"testing"
)

func TestLanguagesCommand_PrintsSupportedLanguagesAndExtensions(t *testing.T) {
	cmd := NewCommand()
	cmd.SetArgs([]string{"--supported"})
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("cmd.Execute() error = %v", err)
	}

	expected := `● bash (.sh, .bash) Actively Tested
✓ json (.json, .avsc, .geojson, .gltf, .har, .ice, .jsonl, .mcmeta, .topojson, .webmanifest) Stable
● nickel (.ncl) Actively Tested
✓ ocaml (.ml) Stable
✓ ocaml_interface (.mli) Stable
◐ ocamllex (.mll) Basic Tests
● rust (.rs) Actively Tested
✓ toml (.toml) Stable
◐ tree_sitter_query (.scm) Basic Tests
`

	if out.String() != expected {
		t.Fatalf("output = %q, want %q", out.String(), expected)
	}
}

func TestLanguagesCommand_IncludesExperimentalByDefault(t *testing.T) {
	cmd := NewCommand()
	cmd.SetArgs([]string{})
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("cmd.Execute() error = %v", err)
	}

	if !bytes.Contains(out.Bytes(), []byte("○ wit (.wit) Experimental\n")) {
		t.Fatalf("output missing experimental language:\n%s", out.String())
	}
}
