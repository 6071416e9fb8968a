// Package pipeline turns one media file into an SRT subtitle track by
// chaining the audio-extraction and transcription collaborators.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jacobcui/media-tools/internal/logging"
	"github.com/jacobcui/media-tools/internal/media"
	"github.com/jacobcui/media-tools/internal/subtitle"
	"github.com/jacobcui/media-tools/internal/transcribe"
)

// Stage identifies which pipeline step failed.
type Stage string

const (
	StageExtract    Stage = "extract"
	StageTranscribe Stage = "transcribe"
	StageEncode     Stage = "encode"
)

// StageError is a stage-aware pipeline failure.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Extractor isolates a video's audio track into a standalone file.
type Extractor func(videoPath, outputPath string) error

// Pipeline runs extract -> transcribe -> encode for one file at a time.
type Pipeline struct {
	transcriber transcribe.Transcriber
	extract     Extractor
	remove      func(path string) error
	logger      *logging.Logger
}

func New(transcriber transcribe.Transcriber, logger *logging.Logger) *Pipeline {
	return &Pipeline{
		transcriber: transcriber,
		extract: func(videoPath, outputPath string) error {
			return media.ExtractAudio(videoPath, outputPath, media.DefaultExtractAudioOptions())
		},
		remove: os.Remove,
		logger: logger,
	}
}

// Run transcribes mediaPath and writes the subtitle track to srtPath.
// Video inputs get their audio isolated to a temporary WAV first; the
// WAV is removed best-effort afterwards, with failures logged only.
// The subtitle file is encoded in memory and written once, after every
// segment has been mapped.
func (p *Pipeline) Run(ctx context.Context, mediaPath, srtPath string) error {
	audioPath := mediaPath

	if media.IsVideoFile(mediaPath) {
		tempAudio := filepath.Join(
			filepath.Dir(srtPath),
			media.Stem(mediaPath)+"_temp.wav",
		)
		if err := p.extract(mediaPath, tempAudio); err != nil {
			return &StageError{Stage: StageExtract, Err: err}
		}
		audioPath = tempAudio

		defer func() {
			if err := p.remove(tempAudio); err != nil && !os.IsNotExist(err) {
				p.logger.Warnw("Failed to remove temporary audio",
					"path", tempAudio,
					"error", err,
				)
			}
		}()
	}

	result, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return &StageError{Stage: StageTranscribe, Err: err}
	}

	doc := subtitle.FromSegments(result.Segments)
	if err := doc.WriteFile(srtPath); err != nil {
		return &StageError{Stage: StageEncode, Err: err}
	}

	return nil
}
