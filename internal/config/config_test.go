package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return p
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestLoadFile_Basic(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "detect-secrets.yaml", "exclude_lines: '^#'\nall_files: true\nbaseline: .secrets.baseline\n")
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.ExcludeLines == nil || *cfg.ExcludeLines != "^#" {
		t.Fatalf("expected exclude_lines=^#, got %#v", cfg.ExcludeLines)
	}
	if cfg.AllFiles == nil || !*cfg.AllFiles {
		t.Fatalf("expected all_files=true")
	}
	if cfg.Baseline == nil || *cfg.Baseline != ".secrets.baseline" {
		t.Fatalf("expected baseline, got %#v", cfg.Baseline)
	}
	if cfg.ExcludeFiles != nil {
		t.Fatalf("expected exclude_files unset, got %q", *cfg.ExcludeFiles)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "detect-secrets.yaml", "all_files: [nope\n")
	if _, err := LoadFile(p); err == nil {
		t.Fatal("expected YAML error")
	}
}

func TestLoadLocal_PrefersDotfile(t *testing.T) {
	dir := t.TempDir()
	// place both, expect the dotfile to be picked first by search order
	writeTemp(t, dir, "detect-secrets.yaml", "exclude_files: vendor\n")
	writeTemp(t, dir, ".secrets.yaml", "exclude_files: node_modules\n")
	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("LoadLocal: %v", err)
	}
	if cfg.ExcludeFiles == nil || *cfg.ExcludeFiles != "node_modules" {
		t.Fatalf("expected exclude_files from .secrets.yaml, got %#v", cfg.ExcludeFiles)
	}
}

func TestLoadLocal_NoConfig(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadLocal(dir); err == nil {
		t.Fatal("expected error when no local config exists")
	}
}

func TestLoadGlobal_XDG_Config(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "detect-secrets")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeTemp(t, cfgDir, "config.yml", "use_all_plugins: true\n")
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal: %v", err)
	}
	if cfg.UseAllPlugins == nil || !*cfg.UseAllPlugins {
		t.Fatalf("expected use_all_plugins=true from global config, got %#v", cfg.UseAllPlugins)
	}
}

func TestLoadGlobal_NoConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	// Simulate no HOME as well by clearing HOME; LoadGlobal should error
	t.Setenv("HOME", "")
	if _, err := LoadGlobal(); err == nil {
		t.Fatal("expected error when no global config dir exists")
	}
}

func TestMergeAndFlagDefaults(t *testing.T) {
	local := FileConfig{ExcludeLines: strPtr("local"), AllFiles: boolPtr(false)}
	global := FileConfig{ExcludeLines: strPtr("global"), ExcludeFiles: strPtr("vendor/"), AllFiles: boolPtr(true)}

	got := Merge(local, global).FlagDefaults()
	want := map[string]string{
		"exclude-lines": "local",
		"exclude-files": "vendor/",
		"all-files":     "false",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("%s: expected %q, got %q", k, v, got[k])
		}
	}
	if len(FileConfig{}.FlagDefaults()) != 0 {
		t.Fatal("expected no defaults from an empty config")
	}
}
