package icongen

import (
	"errors"
	"strings"
	"testing"

	"github.com/zenflow/zenflow-icons/internal/iconset"
)

func TestReportCounts(t *testing.T) {
	entries := iconset.AppIcon()[:3]
	report := Report{
		Outcomes: []Outcome{
			{Entry: entries[0]},
			{Entry: entries[1], Err: errors.New("encode png: boom")},
			{Entry: entries[2]},
		},
	}
	if report.Total() != 3 || report.Succeeded() != 2 || report.Failed() != 1 {
		t.Fatalf("counts = %d/%d/%d", report.Total(), report.Succeeded(), report.Failed())
	}

	report.Manifest = true
	report.ManifestErr = errors.New("read-only")
	if report.Failed() != 2 {
		t.Fatalf("failed = %d, want manifest counted", report.Failed())
	}

	err := report.Err()
	if !errors.Is(err, ErrIncomplete) {
		t.Fatalf("err = %v, want ErrIncomplete", err)
	}
	for _, want := range []string{"icon-20@3x.png: encode png: boom", "Contents.json: read-only", "2 failed"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("err = %q, missing %q", err.Error(), want)
		}
	}
}

func TestReportIgnoresManifestErrorWhenNotRequested(t *testing.T) {
	report := Report{
		Outcomes:    []Outcome{{Entry: iconset.AppIcon()[0]}},
		ManifestErr: errors.New("stale"),
	}
	if report.Failed() != 0 || report.Err() != nil {
		t.Fatalf("failed = %d, err = %v", report.Failed(), report.Err())
	}
}
