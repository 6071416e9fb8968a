package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/jacobcui/media-tools/internal/media"
	"github.com/jacobcui/media-tools/internal/subtitle"
)

// commandResult is an internal process execution response.
type commandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// commandRunner abstracts process execution for testability.
type commandRunner interface {
	Run(ctx context.Context, name string, args ...string) (commandResult, error)
}

// execRunner executes commands via os/exec.
type execRunner struct{}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) (commandResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := commandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
	if err != nil {
		result.ExitCode = -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		}
		return result, err
	}

	return result, nil
}

// WhisperTranscriber runs the local whisper CLI. The model field is the
// size token (tiny, base, small, medium, large) passed straight through.
type WhisperTranscriber struct {
	binary    string
	model     string
	options   Options
	runner    commandRunner
	mkdirTemp func(dir, pattern string) (string, error)
	removeAll func(path string) error
}

func NewWhisperTranscriber(opts Options) *WhisperTranscriber {
	model := opts.Model
	if model == "" {
		model = "medium"
	}

	return &WhisperTranscriber{
		binary:    "whisper",
		model:     model,
		options:   opts,
		runner:    &execRunner{},
		mkdirTemp: os.MkdirTemp,
		removeAll: os.RemoveAll,
	}
}

// JSON output written by the whisper CLI with --output_format json
type whisperOutput struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Segments []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
}

// Transcribe runs whisper over one audio file and reads back its JSON
// segment list.
func (t *WhisperTranscriber) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	if _, err := os.Stat(audioPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", media.ErrInputNotFound, audioPath)
	}

	outDir, err := t.mkdirTemp("", "whisper-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create whisper output directory: %w", err)
	}
	defer func() { _ = t.removeAll(outDir) }()

	args := []string{
		audioPath,
		"--model", t.model,
		"--output_format", "json",
		"--output_dir", outDir,
	}
	if t.options.Language != "" {
		args = append(args, "--language", t.options.Language)
	}

	result, err := t.runner.Run(ctx, t.binary, args...)
	if err != nil {
		diag := strings.TrimSpace(result.Stderr)
		if diag != "" {
			return nil, fmt.Errorf("whisper failed: %s", diag)
		}
		return nil, fmt.Errorf("whisper failed: %w", err)
	}

	jsonPath := filepath.Join(outDir, media.Stem(audioPath)+".json")
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("whisper produced no transcript: %w", err)
	}

	return parseWhisperJSON(data)
}

func parseWhisperJSON(data []byte) (*Result, error) {
	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse whisper output: %w", err)
	}

	if len(out.Segments) == 0 && strings.TrimSpace(out.Text) == "" {
		return nil, fmt.Errorf("whisper output contains no segments or text")
	}

	segments := make([]subtitle.Segment, len(out.Segments))
	var last time.Duration
	for i, seg := range out.Segments {
		segments[i] = subtitle.Segment{
			Start: time.Duration(seg.Start * float64(time.Second)),
			End:   time.Duration(seg.End * float64(time.Second)),
			Text:  strings.TrimSpace(seg.Text),
		}
		if segments[i].End > last {
			last = segments[i].End
		}
	}

	return &Result{
		Segments: segments,
		Language: out.Language,
		Duration: last,
	}, nil
}
