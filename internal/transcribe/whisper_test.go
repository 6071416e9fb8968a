package transcribe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// fakeRunner records the invocation and optionally writes a canned
// transcript where the real whisper CLI would.
type fakeRunner struct {
	name       string
	args       []string
	stderr     string
	err        error
	transcript string
}

func (r *fakeRunner) Run(ctx context.Context, name string, args ...string) (commandResult, error) {
	r.name = name
	r.args = args

	if r.err != nil {
		return commandResult{Stderr: r.stderr, ExitCode: 1}, r.err
	}

	if r.transcript != "" {
		// mimic whisper writing <stem>.json into --output_dir
		var outDir, input string
		input = args[0]
		for i, a := range args {
			if a == "--output_dir" && i+1 < len(args) {
				outDir = args[i+1]
			}
		}
		stem := filepath.Base(input)
		stem = stem[:len(stem)-len(filepath.Ext(stem))]
		if err := os.WriteFile(filepath.Join(outDir, stem+".json"), []byte(r.transcript), 0644); err != nil {
			return commandResult{}, err
		}
	}

	return commandResult{}, nil
}

func newTestTranscriber(t *testing.T, runner *fakeRunner, opts Options) *WhisperTranscriber {
	t.Helper()
	tr := NewWhisperTranscriber(opts)
	tr.runner = runner
	tr.mkdirTemp = func(dir, pattern string) (string, error) {
		return t.TempDir(), nil
	}
	tr.removeAll = func(string) error { return nil }
	return tr
}

func touch(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("audio"), 0644); err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	return path
}

func TestWhisperTranscribe(t *testing.T) {
	runner := &fakeRunner{
		transcript: `{
			"text": " Hello world. How are you?",
			"language": "en",
			"segments": [
				{"start": 0.0, "end": 1.5, "text": " Hello world. "},
				{"start": 1.5, "end": 3.0, "text": " How are you?"}
			]
		}`,
	}
	tr := newTestTranscriber(t, runner, Options{Model: "small"})

	audio := touch(t, "speech.wav")
	result, err := tr.Transcribe(context.Background(), audio)
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}

	if len(result.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(result.Segments))
	}
	if result.Segments[0].Text != "Hello world." {
		t.Errorf("segment 0 text = %q, want trimmed %q", result.Segments[0].Text, "Hello world.")
	}
	if result.Segments[1].Start != 1500*time.Millisecond {
		t.Errorf("segment 1 start = %v, want 1.5s", result.Segments[1].Start)
	}
	if result.Language != "en" {
		t.Errorf("language = %q, want en", result.Language)
	}
	if result.Duration != 3*time.Second {
		t.Errorf("duration = %v, want 3s", result.Duration)
	}
}

func TestWhisperModelTokenPassedThrough(t *testing.T) {
	// unknown tokens are handed through; rejecting them is whisper's job
	runner := &fakeRunner{transcript: `{"text": "hi", "segments": [{"start": 0, "end": 1, "text": "hi"}]}`}
	tr := newTestTranscriber(t, runner, Options{Model: "enormous"})

	audio := touch(t, "speech.wav")
	if _, err := tr.Transcribe(context.Background(), audio); err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}

	found := false
	for i, a := range runner.args {
		if a == "--model" && i+1 < len(runner.args) && runner.args[i+1] == "enormous" {
			found = true
		}
	}
	if !found {
		t.Errorf("model token not passed through: %v", runner.args)
	}
}

func TestWhisperDefaultModel(t *testing.T) {
	tr := NewWhisperTranscriber(Options{})
	if tr.model != "medium" {
		t.Errorf("default model = %q, want medium", tr.model)
	}
}

func TestWhisperFailureCarriesStderr(t *testing.T) {
	runner := &fakeRunner{
		err:    errors.New("exit status 1"),
		stderr: "RuntimeError: Model enormous not found",
	}
	tr := newTestTranscriber(t, runner, Options{})

	audio := touch(t, "speech.wav")
	_, err := tr.Transcribe(context.Background(), audio)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); !strings.Contains(got, "Model enormous not found") {
		t.Errorf("error %q does not carry whisper's diagnostic", got)
	}
}

func TestWhisperMissingInput(t *testing.T) {
	tr := newTestTranscriber(t, &fakeRunner{}, Options{})
	if _, err := tr.Transcribe(context.Background(), "/nonexistent/audio.wav"); err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestParseWhisperJSON(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantCount int
		wantErr   bool
	}{
		{
			name:      "segments",
			data:      `{"text": "a b", "segments": [{"start": 0, "end": 1, "text": "a"}, {"start": 1, "end": 2, "text": "b"}]}`,
			wantCount: 2,
		},
		{
			name:    "invalid JSON",
			data:    `{"text": "broken`,
			wantErr: true,
		},
		{
			name:    "empty transcript",
			data:    `{"text": "", "segments": []}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseWhisperJSON([]byte(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(result.Segments) != tt.wantCount {
				t.Errorf("got %d segments, want %d", len(result.Segments), tt.wantCount)
			}
		})
	}
}
