package subtitle

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Cue is a single timed subtitle entry. The index is assigned at
// encode time from the cue's position in the document.
type Cue struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// Document is an ordered subtitle track. Insertion order is playback order.
type Document struct {
	Cues []Cue
}

// Segment is a transcribed span of audio as returned by a
// transcription collaborator.
type Segment struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// FromSegments maps transcription segments onto a subtitle document.
// Segments keep their order and their timing; only surrounding
// whitespace is trimmed from the text.
func FromSegments(segments []Segment) Document {
	cues := make([]Cue, len(segments))
	for i, seg := range segments {
		cues[i] = Cue{
			Start: seg.Start,
			End:   seg.End,
			Text:  strings.TrimSpace(seg.Text),
		}
	}
	return Document{Cues: cues}
}

// Encode renders the document as SRT text: for each cue a 1-based index
// line, a timestamp line, the text lines, and a blank separator.
// An empty document encodes to an empty string.
func (d Document) Encode() string {
	var sb strings.Builder
	for i, cue := range d.Cues {
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString("\n")
		sb.WriteString(FormatTimestamp(cue.Start))
		sb.WriteString(" --> ")
		sb.WriteString(FormatTimestamp(cue.End))
		sb.WriteString("\n")
		sb.WriteString(cue.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// WriteFile encodes the document and writes it in a single operation,
// so a failed write never leaves a partially encoded track behind.
func (d Document) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(d.Encode()), 0644)
}
