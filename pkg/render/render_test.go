package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/genboids/geneticboids/pkg/core"
	"github.com/genboids/geneticboids/pkg/population"
)

func TestVideoFilename_Format(t *testing.T) {
	got := VideoFilename(255)
	if got != "gb-ff.mp4" {
		t.Errorf("expected gb-ff.mp4, got %s", got)
	}
}

func TestVideoFilename_NegativeSeedDoesNotPanic(t *testing.T) {
	got := VideoFilename(-1)
	if !strings.HasPrefix(got, "gb-") || !strings.HasSuffix(got, ".mp4") {
		t.Errorf("expected well-formed filename, got %s", got)
	}
}

func TestNullRenderer_AlwaysSucceeds(t *testing.T) {
	var r Renderer = NullRenderer{}
	if err := r.Render(nil, 0, 0, 0, 0, Stats{}); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

func TestTextRenderer_WritesSummaryLine(t *testing.T) {
	var buf bytes.Buffer
	r := TextRenderer{W: &buf}

	snap := []population.AgentSnapshot{
		{Position: core.Position{X: 10, Y: 20}},
		{Position: core.Position{X: 30, Y: 5}},
	}

	if err := r.Render(snap, 2, 5, 100, 4.16, Stats{Survivors: 3, ErrorMin: 0.1, ErrorAvg: 0.2, ErrorMax: 0.5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"gen=2", "iter=5", "frame=100", "n=2", "survivors=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got %q", want, out)
		}
	}
}
