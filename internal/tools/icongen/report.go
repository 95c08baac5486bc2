package icongen

import (
	"errors"
	"fmt"

	"github.com/zenflow/zenflow-icons/internal/iconset"
)

// ErrIncomplete reports that at least one icon or the manifest was not written.
var ErrIncomplete = errors.New("icon set incomplete")

// Outcome records what happened to one size table entry.
type Outcome struct {
	Entry iconset.Entry
	Path  string
	Err   error
}

// OK reports whether the icon was written.
func (o Outcome) OK() bool { return o.Err == nil }

// Report accumulates per-entry outcomes for one run.
type Report struct {
	Design    string
	OutputDir string
	DryRun    bool
	Outcomes  []Outcome

	// Manifest is set when the run was asked to write Contents.json.
	Manifest     bool
	ManifestPath string
	ManifestErr  error
}

// Total is the number of icons attempted.
func (r Report) Total() int { return len(r.Outcomes) }

// Succeeded counts the icons written.
func (r Report) Succeeded() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.OK() {
			n++
		}
	}
	return n
}

// Failed counts failed icons plus a failed manifest.
func (r Report) Failed() int {
	n := r.Total() - r.Succeeded()
	if r.Manifest && r.ManifestErr != nil {
		n++
	}
	return n
}

// Err joins every failure, or returns nil when the run was complete.
func (r Report) Err() error {
	if r.Failed() == 0 {
		return nil
	}
	errs := []error{fmt.Errorf("%w: %d failed", ErrIncomplete, r.Failed())}
	for _, o := range r.Outcomes {
		if o.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", o.Entry.Filename, o.Err))
		}
	}
	if r.Manifest && r.ManifestErr != nil {
		errs = append(errs, fmt.Errorf("%s: %w", iconset.ContentsFilename, r.ManifestErr))
	}
	return errors.Join(errs...)
}
