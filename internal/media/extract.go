package media

import (
	"fmt"
	"os"
	"path/filepath"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	ffmpegbin "github.com/jacobcui/media-tools/internal/ffmpeg"
)

// holds options for audio extraction
type ExtractAudioOptions struct {
	Codec      string // audio codec (pcm_s16le, libmp3lame, aac)
	SampleRate int    // sample rate in Hz
	Channels   int    // 1 = mono, 2 = stereo
}

// DefaultExtractAudioOptions returns the 16kHz mono WAV settings used
// for transcription input.
func DefaultExtractAudioOptions() ExtractAudioOptions {
	return ExtractAudioOptions{
		Codec:      "pcm_s16le",
		SampleRate: 16000,
		Channels:   1,
	}
}

// ExtractAudio isolates the audio track of a video file into a
// standalone audio file.
func ExtractAudio(videoPath, outputPath string, opts ExtractAudioOptions) error {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrInputNotFound, videoPath)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ffmpegPath, err := ffmpegbin.FFmpegPath()
	if err != nil {
		return err
	}

	kwargs := ffmpeg.KwArgs{
		"vn":     "", // no video
		"acodec": opts.Codec,
		"ar":     opts.SampleRate,
		"ac":     opts.Channels,
	}

	err = ffmpeg.Input(videoPath).
		Output(outputPath, kwargs).
		OverWriteOutput().
		SetFfmpegPath(ffmpegPath).
		Run()

	if err != nil {
		return fmt.Errorf("ffmpeg extraction failed: %w", err)
	}

	return nil
}
