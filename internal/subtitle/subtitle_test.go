package subtitle

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEncode(t *testing.T) {
	doc := Document{Cues: []Cue{
		{Start: 0, End: 1500 * time.Millisecond, Text: "Hello"},
		{Start: 1500 * time.Millisecond, End: 3 * time.Second, Text: "World"},
	}}

	want := "1\n00:00:00,000 --> 00:00:01,500\nHello\n\n" +
		"2\n00:00:01,500 --> 00:00:03,000\nWorld\n\n"

	if got := doc.Encode(); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncodeEmptyDocument(t *testing.T) {
	if got := (Document{}).Encode(); got != "" {
		t.Errorf("empty document encoded to %q, want empty string", got)
	}
}

func TestEncodeMultilineCue(t *testing.T) {
	doc := Document{Cues: []Cue{
		{Start: 0, End: 2 * time.Second, Text: "First line\nSecond line"},
	}}

	want := "1\n00:00:00,000 --> 00:00:02,000\nFirst line\nSecond line\n\n"
	if got := doc.Encode(); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestFromSegments(t *testing.T) {
	segments := []Segment{
		{Start: 0, End: time.Second, Text: "  padded  "},
		{Start: 5 * time.Second, End: 3 * time.Second, Text: "out of order kept"},
		{Start: time.Second, End: 2 * time.Second, Text: "third"},
	}

	doc := FromSegments(segments)

	if len(doc.Cues) != 3 {
		t.Fatalf("expected 3 cues, got %d", len(doc.Cues))
	}
	if doc.Cues[0].Text != "padded" {
		t.Errorf("cue 0 text = %q, want trimmed %q", doc.Cues[0].Text, "padded")
	}
	// segment order and timing pass through untouched, even when odd
	if doc.Cues[1].Start != 5*time.Second || doc.Cues[1].End != 3*time.Second {
		t.Errorf("cue 1 timing altered: %v -> %v", doc.Cues[1].Start, doc.Cues[1].End)
	}
	if doc.Cues[2].Text != "third" {
		t.Errorf("cue order changed: got %q at index 2", doc.Cues[2].Text)
	}
}

func TestFromSegmentsEmpty(t *testing.T) {
	doc := FromSegments(nil)
	if len(doc.Cues) != 0 {
		t.Errorf("expected no cues, got %d", len(doc.Cues))
	}
}

func TestWriteFile(t *testing.T) {
	doc := Document{Cues: []Cue{
		{Start: 0, End: time.Second, Text: "Hello"},
	}}

	path := filepath.Join(t.TempDir(), "nested", "out.srt")
	if err := doc.WriteFile(path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}
	if string(data) != doc.Encode() {
		t.Errorf("file content %q does not match encoding %q", data, doc.Encode())
	}
}
