package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jacobcui/media-tools/internal/media"
	"github.com/jacobcui/media-tools/internal/rename"
)

// seam for tests; EXIF fixtures are unwieldy
var imageDate = rename.ImageDate

var renameImagesCmd = &cobra.Command{
	Use:   "rename-images",
	Short: "Rename images to YYYY-MM-DD_<name> by EXIF capture date",
	Long: `Walk a directory tree and rename every image to a date-prefixed
name derived from its EXIF DateTimeOriginal (or DateTime) tag.

Images already carrying a date prefix are skipped, as are images
without a usable EXIF date. A failing file does not stop the rest.

Example:
  media-tools rename-images --dir ~/photos`,
	RunE: runRenameImages,
}

func init() {
	rootCmd.AddCommand(renameImagesCmd)

	renameImagesCmd.Flags().String("dir", "", "Directory containing images to rename")
	_ = renameImagesCmd.MarkFlagRequired("dir")
}

func runRenameImages(cmd *cobra.Command, args []string) error {
	dirPath, _ := cmd.Flags().GetString("dir")

	if info, err := os.Stat(dirPath); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: directory %s", media.ErrInputNotFound, dirPath)
	}

	var renamed, failed int

	walkErr := filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !media.IsImageFile(path) {
			return nil
		}

		if rename.IsDated(path) {
			logger.Debugw("Skipping already dated image", "path", path)
			return nil
		}

		date, derr := imageDate(path)
		if derr != nil {
			logger.Errorw("Failed to read EXIF data", "path", path, "error", derr)
			failed++
			return nil
		}
		if date == "" {
			logger.Infow("Skipping image without EXIF date", "path", path)
			return nil
		}

		plan := rename.NewPlan(path, date)
		if aerr := plan.Apply(); aerr != nil {
			logger.Errorw("Rename failed", "path", path, "error", aerr)
			failed++
			return nil
		}

		renamed++
		fmt.Printf("Renamed: %s -> %s\n", filepath.Base(path), filepath.Base(plan.NewPath))
		return nil
	})
	if walkErr != nil {
		return fmt.Errorf("failed to walk %s: %w", dirPath, walkErr)
	}

	if failed > 0 {
		return fmt.Errorf("%d rename(s) failed, %d succeeded", failed, renamed)
	}

	return nil
}
