package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestHelpSucceeds(t *testing.T) {
	t.Parallel()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--help"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("--help: %v", err)
	}
	if !strings.Contains(out.String(), "rtnt") {
		t.Fatalf("help output missing usage:\n%s", out.String())
	}
}

func TestVersionSucceeds(t *testing.T) {
	t.Parallel()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("--version: %v", err)
	}
}

func TestUnknownFlagFails(t *testing.T) {
	t.Parallel()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--definitely-not-a-flag"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected unknown flag error")
	}
}

func TestUnexpectedArgFails(t *testing.T) {
	t.Parallel()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"stray"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected positional arg error")
	}
}

func TestResolvePathsOverrides(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	keys := filepath.Join(dir, "custom-keys.json")

	paths := resolvePaths(&options{Dir: dir, Keys: keys})
	if paths.SaveDir != dir {
		t.Fatalf("SaveDir = %q, want %q", paths.SaveDir, dir)
	}
	if got := paths.BindingsPath(); got != keys {
		t.Fatalf("BindingsPath = %q, want %q", got, keys)
	}

	defaults := resolvePaths(&options{})
	if defaults.SaveDir == "" || defaults.ConfigDir == "" {
		t.Fatalf("default paths must resolve: %+v", defaults)
	}
}
