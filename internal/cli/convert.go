package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jacobcui/media-tools/internal/media"
	"github.com/jacobcui/media-tools/internal/rename"
	"github.com/jacobcui/media-tools/internal/transcode"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert MOV files to MP4, renamed by capture date",
	Long: `Convert MOV files to MP4 using a fixed h264/aac profile. The output
is written next to the input as YYYYMMDD_<name>.mp4, dated by the
file's modification time. Files whose names already carry a date
prefix are skipped.

A directory is processed one file at a time; a failing file does not
stop the rest of the batch.

Examples:
  media-tools convert --file holiday.mov
  media-tools convert --dir ~/camera-roll`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().String("file", "", "Single MOV file to convert")
	convertCmd.Flags().String("dir", "", "Directory containing MOV files to convert")
	convertCmd.MarkFlagsMutuallyExclusive("file", "dir")
	convertCmd.MarkFlagsOneRequired("file", "dir")
}

func runConvert(cmd *cobra.Command, args []string) error {
	filePath, _ := cmd.Flags().GetString("file")
	dirPath, _ := cmd.Flags().GetString("dir")

	converter := transcode.NewConverter(transcode.DefaultProfile())
	ctx := context.Background()

	if filePath != "" {
		if !strings.EqualFold(filepath.Ext(filePath), ".mov") {
			return fmt.Errorf("%w: %s is not a MOV file", media.ErrUnsupportedFormat, filePath)
		}
		output, err := convertOne(ctx, converter, filePath)
		if err != nil {
			return err
		}
		if output != "" {
			fmt.Printf("Successfully converted and renamed: %s -> %s\n", filePath, output)
		}
		return nil
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("%w: %s", media.ErrInputNotFound, dirPath)
	}

	var converted, failed int
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".mov") {
			continue
		}

		inputPath := filepath.Join(dirPath, entry.Name())
		output, err := convertOne(ctx, converter, inputPath)
		if err != nil {
			// one bad file must not stop the batch
			logger.Errorw("Conversion failed",
				"input", inputPath,
				"error", err,
			)
			failed++
			continue
		}
		if output != "" {
			converted++
			fmt.Printf("Successfully converted and renamed: %s -> %s\n", entry.Name(), output)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d conversion(s) failed, %d succeeded", failed, converted)
	}

	return nil
}

// convertOne converts a single file, or returns an empty path when the
// file is skipped as already processed.
func convertOne(ctx context.Context, converter *transcode.Converter, inputPath string) (string, error) {
	if rename.IsDated(inputPath) {
		logger.Infow("Skipping already processed file", "input", inputPath)
		return "", nil
	}

	outputPath, err := rename.ConvertedPath(inputPath)
	if err != nil {
		return "", err
	}

	onProgress := func(percent int) {
		fmt.Printf("\rConverting %s: %3d%%", filepath.Base(inputPath), percent)
	}

	err = converter.Convert(ctx, inputPath, outputPath, onProgress)
	fmt.Println()
	if err != nil {
		return "", err
	}

	return outputPath, nil
}
