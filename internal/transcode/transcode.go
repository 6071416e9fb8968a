// Package transcode drives an external ffmpeg process through one
// conversion job, relaying its progress stream as it runs.
package transcode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	ffmpegbin "github.com/jacobcui/media-tools/internal/ffmpeg"
	"github.com/jacobcui/media-tools/internal/media"
	"github.com/jacobcui/media-tools/internal/progress"
)

// ErrOutputExists reports that the conversion target already exists;
// existing files are never silently overwritten.
var ErrOutputExists = errors.New("output file already exists")

// Profile is the codec configuration for a conversion. It is fixed for
// the lifetime of the process, never tuned per job.
type Profile struct {
	VideoCodec string
	AudioCodec string
	CRF        int
	Preset     string
}

// DefaultProfile is the h264/aac profile used for all conversions.
func DefaultProfile() Profile {
	return Profile{
		VideoCodec: "libx264",
		AudioCodec: "aac",
		CRF:        18,
		Preset:     "slow",
	}
}

// ProbeError reports that the input's duration could not be determined
// before the conversion started.
type ProbeError struct {
	Path string
	Err  error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("probe of %s failed: %v", e.Path, e.Err)
}

func (e *ProbeError) Unwrap() error { return e.Err }

// ExitError reports a non-zero ffmpeg exit. Diagnostic carries the
// process's stderr output verbatim.
type ExitError struct {
	Path       string
	Diagnostic string
	Err        error
}

func (e *ExitError) Error() string {
	if e.Diagnostic != "" {
		return fmt.Sprintf("transcode of %s failed: %s", e.Path, e.Diagnostic)
	}
	return fmt.Sprintf("transcode of %s failed: %v", e.Path, e.Err)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Converter runs conversions with a fixed profile. One job at a time;
// each call owns its subprocess and progress state exclusively.
type Converter struct {
	profile Profile
}

func NewConverter(profile Profile) *Converter {
	return &Converter{profile: profile}
}

// Convert transcodes inputPath into outputPath, reporting completion
// percentages through onProgress while ffmpeg runs. It blocks until the
// progress channel closes and the process exits. The input file is
// left untouched. No timeout is applied; a hung ffmpeg hangs the call.
func (c *Converter) Convert(
	ctx context.Context,
	inputPath, outputPath string,
	onProgress progress.Func,
) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", media.ErrInputNotFound, inputPath)
	}
	if _, err := os.Stat(outputPath); err == nil {
		return fmt.Errorf("%w: %s", ErrOutputExists, outputPath)
	}

	total, err := media.Duration(inputPath)
	if err != nil {
		return &ProbeError{Path: inputPath, Err: err}
	}

	ffmpegPath, err := ffmpegbin.FFmpegPath()
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, ffmpegPath, c.args(inputPath, outputPath)...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to open ffmpeg progress pipe: %w", err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	// drain the progress channel until ffmpeg closes it
	tracker := progress.NewTracker(total, onProgress)
	drainErr := tracker.Consume(stdout)

	if err := cmd.Wait(); err != nil {
		return &ExitError{
			Path:       inputPath,
			Diagnostic: strings.TrimSpace(stderr.String()),
			Err:        err,
		}
	}
	if drainErr != nil {
		return fmt.Errorf("failed reading ffmpeg progress: %w", drainErr)
	}

	return nil
}

// args compiles the full ffmpeg command line for one conversion.
func (c *Converter) args(inputPath, outputPath string) []string {
	return ffmpeg.Input(inputPath).
		Output(outputPath, ffmpeg.KwArgs{
			"vcodec": c.profile.VideoCodec,
			"acodec": c.profile.AudioCodec,
			"crf":    c.profile.CRF,
			"preset": c.profile.Preset,
		}).
		GlobalArgs("-progress", "pipe:1", "-nostats").
		OverWriteOutput().
		GetArgs()
}
