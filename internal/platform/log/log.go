// Package log builds the structured loggers used by the icon commands.
package log

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "info"

// Options controls logger construction.
type Options struct {
	// Level is a zerolog level name (debug, info, warn, error, disabled).
	Level string
	// Timestamp adds a time field to every line.
	Timestamp bool
	// Fields are attached to every event.
	Fields map[string]string
}

// ParseLevel resolves a level name, treating blank as DefaultLevel.
func ParseLevel(raw string) (zerolog.Level, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		name = DefaultLevel
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level %q: %w", raw, err)
	}
	return level, nil
}

// New returns a console logger writing plain (uncoloured) lines to w.
// A nil writer yields a disabled logger.
func New(w io.Writer, opts Options) (zerolog.Logger, error) {
	if w == nil {
		return zerolog.Nop(), nil
	}
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.TimeOnly,
	}
	if !opts.Timestamp {
		console.PartsExclude = []string{zerolog.TimestampFieldName}
	}

	return build(console, level, opts), nil
}

// build attaches the fixed fields in key order.
func build(w io.Writer, level zerolog.Level, opts Options) zerolog.Logger {
	ctx := zerolog.New(w).Level(level).With()
	if opts.Timestamp {
		ctx = ctx.Timestamp()
	}
	keys := make([]string, 0, len(opts.Fields))
	for k := range opts.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		ctx = ctx.Str(k, opts.Fields[k])
	}
	return ctx.Logger()
}
