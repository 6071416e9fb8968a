package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jacobcui/media-tools/internal/media"
	"github.com/jacobcui/media-tools/internal/pipeline"
	"github.com/jacobcui/media-tools/internal/transcribe"
)

var subtitlesCmd = &cobra.Command{
	Use:   "subtitles [media_file]",
	Short: "Generate an SRT subtitle track for an MP4 or MP3 file",
	Long: `Generate subtitles for the given media file.

Video input has its audio track extracted to a temporary WAV before
transcription; the WAV is removed afterwards. The subtitle file is
written next to the input unless --output-dir says otherwise.

Examples:
  media-tools subtitles lecture.mp4
  media-tools subtitles interview.mp3 -m small
  media-tools subtitles talk.mp4 --provider openai -k $OPENAI_API_KEY`,
	Args: cobra.ExactArgs(1),
	RunE: runSubtitles,
}

func init() {
	rootCmd.AddCommand(subtitlesCmd)

	subtitlesCmd.Flags().
		StringP("model", "m", "medium", "Whisper model size (tiny, base, small, medium, large)")
	subtitlesCmd.Flags().
		String("provider", "whisper", "Transcription provider (whisper, openai, gemini)")
	subtitlesCmd.Flags().
		StringP("api-key", "k", "", "API key for the openai/gemini providers (or OPENAI_API_KEY / GEMINI_API_KEY)")
	subtitlesCmd.Flags().
		StringP("output-dir", "o", "", "Output directory for the subtitle file")
	subtitlesCmd.Flags().
		StringP("language", "l", "", "Source language of the audio (default: auto-detect)")
}

func runSubtitles(cmd *cobra.Command, args []string) error {
	mediaPath := args[0]
	ctx := context.Background()

	if _, err := os.Stat(mediaPath); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", media.ErrInputNotFound, mediaPath)
	}

	ext := strings.ToLower(filepath.Ext(mediaPath))
	if ext != ".mp4" && ext != ".mp3" {
		return fmt.Errorf("%w: expected an MP4 or MP3 file, got %s", media.ErrUnsupportedFormat, mediaPath)
	}

	model, _ := cmd.Flags().GetString("model")
	providerStr, _ := cmd.Flags().GetString("provider")
	apiKey, _ := cmd.Flags().GetString("api-key")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	language, _ := cmd.Flags().GetString("language")

	if outputDir == "" {
		outputDir = filepath.Dir(mediaPath)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	provider := transcribe.Provider(strings.ToLower(providerStr))
	if apiKey == "" {
		switch provider {
		case transcribe.ProviderOpenAI:
			apiKey = os.Getenv("OPENAI_API_KEY")
		case transcribe.ProviderGemini:
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
	}

	transcriber, err := transcribe.Factory(ctx, provider, apiKey, transcribe.Options{
		Language: language,
		Model:    model,
	})
	if err != nil {
		return fmt.Errorf("failed to create transcriber: %w", err)
	}

	srtPath := filepath.Join(outputDir, media.Stem(mediaPath)+".srt")

	logger.Infow("Generating subtitles",
		"input", mediaPath,
		"output", srtPath,
		"provider", providerStr,
		"model", model,
	)

	if err := pipeline.New(transcriber, logger).Run(ctx, mediaPath, srtPath); err != nil {
		return fmt.Errorf("subtitle generation failed: %w", err)
	}

	absOutput, _ := filepath.Abs(srtPath)
	fmt.Printf("Subtitles generated successfully: %s\n", absOutput)

	return nil
}
