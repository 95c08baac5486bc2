// Package icongen renders the app icon set to disk.
//
// A run walks the size table in order, renders and saves each icon, and keeps
// going when one fails. Failures are collected in a Report; nothing already
// written is rolled back.
package icongen

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/zenflow/zenflow-icons/internal/iconset"
	"github.com/zenflow/zenflow-icons/internal/platform/i18n"
	applog "github.com/zenflow/zenflow-icons/internal/platform/log"
	"github.com/zenflow/zenflow-icons/internal/render"
)

const tracerName = "github.com/zenflow/zenflow-icons/internal/tools/icongen"

type generator struct {
	design  render.Design
	entries []iconset.Entry
	dir     string
	out     io.Writer
	printer *message.Printer
	log     zerolog.Logger
	tracer  trace.Tracer
}

// Run generates the icon set described by cfg.
//
// Progress and the final summary go to out; structured diagnostics go to
// errOut. The returned Report is populated even when err is non-nil. With
// cfg.Strict, any failed icon or manifest makes Run return an error wrapping
// ErrIncomplete after the summary has been printed.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) (Report, error) {
	if out == nil {
		out = io.Discard
	}
	if ctx == nil {
		ctx = context.Background()
	}

	design, err := render.Lookup(cfg.Design)
	if err != nil {
		return Report{}, err
	}
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return Report{}, fmt.Errorf("parse locale %q: %w", cfg.Locale, err)
	}
	logger, err := applog.New(errOut, applog.Options{
		Level:     cfg.LogLevel,
		Timestamp: cfg.LogTimestamps,
		Fields:    map[string]string{"design": design.Name()},
	})
	if err != nil {
		return Report{}, err
	}
	dir, err := resolveOutputDir(cfg)
	if err != nil {
		return Report{}, err
	}

	g := &generator{
		design:  design,
		entries: iconset.AppIcon(),
		dir:     dir,
		out:     out,
		printer: i18n.Printer(tag),
		log:     logger,
		tracer:  otel.Tracer(tracerName),
	}

	report := Report{Design: design.Name(), OutputDir: dir, DryRun: cfg.DryRun, Manifest: cfg.Manifest}
	if cfg.Manifest {
		report.ManifestPath = filepath.Join(dir, iconset.ContentsFilename)
	}

	g.printHeader()
	if cfg.DryRun {
		g.plan(report)
		return report, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return report, fmt.Errorf("create output dir: %w", err)
	}

	report.Outcomes = g.generate(ctx)
	if cfg.Manifest {
		report.ManifestErr = g.writeManifest(ctx, report.ManifestPath)
		g.printManifest(report.ManifestErr)
	}
	g.printSummary(report)

	if cfg.Strict {
		return report, report.Err()
	}
	return report, nil
}

// generate renders every entry in table order, recording each outcome.
func (g *generator) generate(ctx context.Context) []Outcome {
	outcomes := make([]Outcome, 0, len(g.entries))
	for _, e := range g.entries {
		path := filepath.Join(g.dir, e.Filename)
		var err error
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		} else {
			err = g.writeIcon(ctx, e, path)
		}
		outcomes = append(outcomes, Outcome{Entry: e, Path: path, Err: err})

		if err != nil {
			g.log.Error().Err(err).Str("file", e.Filename).Int("pixels", e.Pixels()).Msg("icon failed")
			g.printLine("icons.fail", e.Filename, err)
			continue
		}
		g.log.Debug().Str("path", path).Int("pixels", e.Pixels()).Msg("icon written")
		g.printLine("icons.ok", e.Filename, dimensions(e))
	}
	return outcomes
}

func (g *generator) writeIcon(ctx context.Context, e iconset.Entry, path string) (err error) {
	_, span := g.tracer.Start(ctx, "icongen.write_icon", trace.WithAttributes(
		attribute.String("icon.filename", e.Filename),
		attribute.Int("icon.pixels", e.Pixels()),
		attribute.String("icon.design", g.design.Name()),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	img, err := renderIcon(g.design, e.Pixels())
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write icon: %w", err)
	}
	return nil
}

// renderIcon turns a renderer panic into an entry failure.
func renderIcon(d render.Design, size int) (img image.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render %dpx: %v", size, r)
		}
	}()
	return d.Render(size), nil
}

func (g *generator) writeManifest(ctx context.Context, path string) (err error) {
	_, span := g.tracer.Start(ctx, "icongen.write_manifest", trace.WithAttributes(
		attribute.Int("manifest.images", len(g.entries)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var buf bytes.Buffer
	if err := iconset.NewContents(g.entries).Encode(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

func (g *generator) printManifest(err error) {
	if err != nil {
		g.log.Error().Err(err).Str("file", iconset.ContentsFilename).Msg("manifest failed")
		g.printLine("icons.fail", iconset.ContentsFilename, err)
		return
	}
	g.printLine("icons.ok_manifest", iconset.ContentsFilename)
}

func (g *generator) plan(report Report) {
	for _, e := range g.entries {
		g.printLine("icons.plan", filepath.Join(g.dir, e.Filename), dimensions(e))
	}
	if report.Manifest {
		g.printLine("icons.plan_manifest", report.ManifestPath)
	}
}

func (g *generator) printHeader() {
	g.printLine("icons.title")
	g.printLine("icons.design", g.design.Name())
	g.printLine("icons.output", g.dir)
	fmt.Fprintln(g.out)
}

func (g *generator) printSummary(r Report) {
	fmt.Fprintln(g.out)
	g.printLine("icons.success", r.Succeeded(), r.Total())
	if failed := r.Failed(); failed > 0 {
		g.printLine("icons.failed", failed)
	}
	g.printLine("icons.saved", r.OutputDir)
}

// printLine prints one localized line.
func (g *generator) printLine(key string, args ...any) {
	g.printer.Fprintf(g.out, key, args...)
	fmt.Fprintln(g.out)
}

// dimensions formats the pixel size without locale digit grouping.
func dimensions(e iconset.Entry) string {
	return fmt.Sprintf("%dx%dpx", e.Pixels(), e.Pixels())
}
