package icongen

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("icongen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("ZENFLOW_ICONS_OUTPUT_DIR", "")

	tests := []struct {
		name     string
		defaults Defaults
		design   string
		manifest bool
		rootRel  bool
	}{
		{name: "appicons", defaults: AppIcons, design: "breathing", manifest: true, rootRel: true},
		{name: "zenicons", defaults: ZenIcons, design: "ripples", manifest: false, rootRel: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := ParseConfig(newFlagSet(), nil, tc.defaults)
			if err != nil {
				t.Fatalf("parse config: %v", err)
			}
			if cfg.Design != tc.design || cfg.Manifest != tc.manifest || cfg.RootRelative != tc.rootRel {
				t.Fatalf("cfg = %+v", cfg)
			}
			if cfg.OutputDir != DefaultOutputDir {
				t.Fatalf("output dir = %q, want %q", cfg.OutputDir, DefaultOutputDir)
			}
			if !cfg.Strict || cfg.Locale != "en-US" || cfg.LogLevel != "info" || cfg.DryRun {
				t.Fatalf("unexpected ambient defaults: %+v", cfg)
			}
		})
	}
}

func TestParseConfigReadsEnv(t *testing.T) {
	t.Setenv("ZENFLOW_ICONS_OUTPUT_DIR", "build/icons")
	t.Setenv("ZENFLOW_ICONS_STRICT", "false")
	t.Setenv("ZENFLOW_ICONS_LOCALE", "fr-FR")
	t.Setenv("ZENFLOW_ICONS_LOG_TIMESTAMPS", "true")

	cfg, err := ParseConfig(newFlagSet(), []string{}, AppIcons)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.OutputDir != "build/icons" || cfg.Strict || cfg.Locale != "fr-FR" || !cfg.LogTimestamps {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("ZENFLOW_ICONS_OUTPUT_DIR", "env/icons")

	cfg, err := ParseConfig(newFlagSet(), []string{
		"-out", "flag/icons",
		"-design", "ripples",
		"-manifest=false",
		"-dry-run",
		"-log-level", "debug",
		"-log-timestamps",
		"-root", "/src/zenflow",
	}, AppIcons)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.OutputDir != "flag/icons" || cfg.Design != "ripples" || cfg.Manifest || !cfg.DryRun || cfg.LogLevel != "debug" || !cfg.LogTimestamps || cfg.Root != "/src/zenflow" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestParseConfigRejectsRootForWorkingDirOutput(t *testing.T) {
	_, err := ParseConfig(newFlagSet(), []string{"-root", "/src/zenflow"}, ZenIcons)
	if err == nil || !strings.Contains(err.Error(), "-root only applies") {
		t.Fatalf("err = %v, want -root rejection", err)
	}
}

func TestParseConfigRejectsInvalidInput(t *testing.T) {
	if _, err := ParseConfig(nil, nil, AppIcons); err == nil {
		t.Fatal("expected nil flag set to be rejected")
	}

	_, err := ParseConfig(newFlagSet(), []string{"-unknown"}, AppIcons)
	if err == nil || !strings.Contains(err.Error(), "flag provided but not defined") {
		t.Fatalf("err = %v, want invalid flag message", err)
	}

	t.Setenv("ZENFLOW_ICONS_STRICT", "sometimes")
	if _, err := ParseConfig(newFlagSet(), nil, AppIcons); err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("err = %v, want env parse error", err)
	}
}

func TestResolveOutputDir(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("eval temp dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/zenflow\n"), 0o644); err != nil {
		t.Fatalf("write go.mod: %v", err)
	}
	nested := filepath.Join(root, "Scripts")
	if err := os.Mkdir(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	chdir(t, nested)

	got, err := resolveOutputDir(Config{OutputDir: DefaultOutputDir, RootRelative: true})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if want := filepath.Join(root, DefaultOutputDir); got != want {
		t.Fatalf("resolved %q, want %q", got, want)
	}

	got, err = resolveOutputDir(Config{OutputDir: DefaultOutputDir})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != DefaultOutputDir {
		t.Fatalf("working-dir output resolved to %q, want %q", got, DefaultOutputDir)
	}

	abs := filepath.Join(root, "elsewhere")
	got, err = resolveOutputDir(Config{OutputDir: abs, RootRelative: true})
	if err != nil || got != abs {
		t.Fatalf("absolute output = %q, %v", got, err)
	}
}

func TestResolveOutputDirWithoutModule(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := resolveOutputDir(Config{RootRelative: true})
	if err == nil {
		t.Fatal("expected root resolution error")
	}
	if !strings.Contains(err.Error(), "go.mod not found above") {
		t.Fatalf("error = %q, want go.mod not found", err.Error())
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
}
