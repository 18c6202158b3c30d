package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "camlet.yaml")
	data := "prompt: \"camlet> \"\ncolor: false\ndump_tokens: true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Prompt != "camlet> " {
		t.Errorf("prompt: got %q", cfg.Prompt)
	}
	if cfg.Color == nil || *cfg.Color {
		t.Errorf("color: got %v, want false", cfg.Color)
	}
	if !cfg.DumpTokens || cfg.DumpAST {
		t.Errorf("dump flags: tokens=%v ast=%v", cfg.DumpTokens, cfg.DumpAST)
	}
}

func TestLoadConfigMissingExplicitPath(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("explicit missing path should error")
	}
}

func TestLoadConfigMissingDefaultIsNotAnError(t *testing.T) {
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			t.Fatal(err)
		}
	})
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Prompt != "" || cfg.Color != nil {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camlet.yaml")
	if err := os.WriteFile(path, []byte("prompt: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("malformed yaml should error")
	}
}

func TestIsSourceFile(t *testing.T) {
	for path, want := range map[string]bool{
		"prog.cml":  true,
		"prog.ml":   true,
		"prog.go":   false,
		"prog":      false,
		"a/b/x.cml": true,
	} {
		if got := isSourceFile(path); got != want {
			t.Errorf("isSourceFile(%q): got %v, want %v", path, got, want)
		}
	}
}
