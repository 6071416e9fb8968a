package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jacobcui/media-tools/internal/media"
	"github.com/jacobcui/media-tools/internal/subtitle"
)

var srtToTextCmd = &cobra.Command{
	Use:   "srt-to-text [srt_file]",
	Short: "Reduce an SRT subtitle file to plain text",
	Long: `Extract only the spoken lines from an SRT file, dropping indices,
timestamps and blank separators. Timing information is discarded.

Examples:
  media-tools srt-to-text lecture.srt
  media-tools srt-to-text lecture.srt -o transcript.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runSrtToText,
}

func init() {
	rootCmd.AddCommand(srtToTextCmd)

	srtToTextCmd.Flags().
		StringP("output", "o", "", "Output text file path (default: input with .txt extension)")
}

func runSrtToText(cmd *cobra.Command, args []string) error {
	srtPath := args[0]

	if _, err := os.Stat(srtPath); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", media.ErrInputNotFound, srtPath)
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = strings.TrimSuffix(srtPath, filepath.Ext(srtPath)) + ".txt"
	}

	data, err := os.ReadFile(srtPath)
	if err != nil {
		return fmt.Errorf("failed to read SRT file: %w", err)
	}

	text := subtitle.PlainText(string(data))
	if err := os.WriteFile(outputPath, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write text file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Successfully converted to text: %s\n", absOutput)

	return nil
}
