package icongen

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zenflow/zenflow-icons/internal/iconset"
	platformcmd "github.com/zenflow/zenflow-icons/internal/platform/cmd"
)

// DefaultOutputDir is the app icon set inside the Xcode project.
var DefaultOutputDir = filepath.Join("ZenFlow", "Assets.xcassets", "AppIcon.appiconset")

// Config holds configuration for one icon generation run.
type Config struct {
	OutputDir string `env:"ICONS_OUTPUT_DIR"`
	Strict    bool   `env:"ICONS_STRICT" envDefault:"true"`
	Locale    string `env:"ICONS_LOCALE" envDefault:"en-US"`
	LogLevel  string `env:"ICONS_LOG_LEVEL" envDefault:"info"`

	// LogTimestamps prefixes diagnostic lines with the time of day.
	LogTimestamps bool `env:"ICONS_LOG_TIMESTAMPS"`

	// Root is the project root used when RootRelative is set. Blank means
	// the nearest directory above the working directory holding go.mod.
	Root         string
	RootRelative bool
	Design       string
	Manifest     bool
	DryRun       bool
}

// Defaults are the per-command settings applied before env and flags.
type Defaults struct {
	Design       string
	Manifest     bool
	RootRelative bool
}

// AppIcons generates the breathing circles set plus Contents.json, placed
// relative to the project root.
var AppIcons = Defaults{Design: "breathing", Manifest: true, RootRelative: true}

// ZenIcons generates the ripples set relative to the working directory.
var ZenIcons = Defaults{Design: "ripples"}

// ParseConfig loads env defaults and then flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string, defaults Defaults) (Config, error) {
	if fs == nil {
		return Config{}, errors.New("flag parser is required")
	}
	cfg := Config{
		Design:       defaults.Design,
		Manifest:     defaults.Manifest,
		RootRelative: defaults.RootRelative,
	}
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		cfg.OutputDir = DefaultOutputDir
	}

	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "output directory for the icon set (default: ZENFLOW_ICONS_OUTPUT_DIR or "+DefaultOutputDir+")")
	fs.StringVar(&cfg.Root, "root", cfg.Root, "project root for relative output paths (defaults to locating go.mod; appicons only)")
	fs.StringVar(&cfg.Design, "design", cfg.Design, "artwork to render (breathing|ripples)")
	fs.BoolVar(&cfg.Manifest, "manifest", cfg.Manifest, "write "+iconset.ContentsFilename+" next to the icons")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "list the files that would be written without rendering")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "exit non-zero when any icon or the manifest fails")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "BCP 47 locale for the summary")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "diagnostic log level (debug|info|warn|error|disabled)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "prefix diagnostic lines with the time of day")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if !cfg.RootRelative && strings.TrimSpace(cfg.Root) != "" {
		return Config{}, errors.New("-root only applies when output is relative to the project root")
	}
	return cfg, nil
}

// resolveOutputDir turns cfg.OutputDir into the directory icons land in.
func resolveOutputDir(cfg Config) (string, error) {
	out := strings.TrimSpace(cfg.OutputDir)
	if out == "" {
		out = DefaultOutputDir
	}
	if filepath.IsAbs(out) || !cfg.RootRelative {
		return filepath.Clean(out), nil
	}
	root, err := resolveRoot(cfg.Root)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, out), nil
}

// resolveRoot chooses the project root so the icon set lands in the right tree.
func resolveRoot(flagRoot string) (string, error) {
	if strings.TrimSpace(flagRoot) != "" {
		return filepath.Clean(flagRoot), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working dir: %w", err)
	}
	return findModuleRoot(wd)
}

// findModuleRoot walks upward to the first directory containing go.mod.
func findModuleRoot(start string) (string, error) {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("go.mod not found above %s", start)
}
