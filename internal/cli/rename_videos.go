package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jacobcui/media-tools/internal/media"
	"github.com/jacobcui/media-tools/internal/rename"
)

var renameVideosCmd = &cobra.Command{
	Use:   "rename-videos",
	Short: "Rename MP4 files to YYYY-MM-DD_<name> by creation date",
	Long: `Rename MP4 files to a date-prefixed name. The date comes from the
container's creation_time tag when present, otherwise from the file's
modification time.

Files already carrying a date prefix are skipped; a failing file does
not stop the rest.

Examples:
  media-tools rename-videos --dir ~/videos
  media-tools rename-videos --dir ~/videos --recursive=false`,
	RunE: runRenameVideos,
}

func init() {
	rootCmd.AddCommand(renameVideosCmd)

	renameVideosCmd.Flags().String("dir", "", "Directory containing MP4 files to rename")
	renameVideosCmd.Flags().Bool("recursive", true, "Process subdirectories recursively")
	_ = renameVideosCmd.MarkFlagRequired("dir")
}

func runRenameVideos(cmd *cobra.Command, args []string) error {
	dirPath, _ := cmd.Flags().GetString("dir")
	recursive, _ := cmd.Flags().GetBool("recursive")

	if info, err := os.Stat(dirPath); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: directory %s", media.ErrInputNotFound, dirPath)
	}

	paths, err := listVideos(dirPath, recursive)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Println("No MP4 files found in the specified directory")
		return nil
	}

	var renamed, failed int
	for _, path := range paths {
		if rename.IsDated(path) {
			logger.Infow("Skipping already dated video", "path", path)
			continue
		}

		date, derr := rename.VideoDate(path)
		if derr != nil {
			logger.Errorw("Could not derive creation date", "path", path, "error", derr)
			failed++
			continue
		}

		plan := rename.NewPlan(path, date)
		if aerr := plan.Apply(); aerr != nil {
			logger.Errorw("Rename failed", "path", path, "error", aerr)
			failed++
			continue
		}

		renamed++
		fmt.Printf("Renamed: %s -> %s\n", filepath.Base(path), filepath.Base(plan.NewPath))
	}

	if failed > 0 {
		return fmt.Errorf("%d rename(s) failed, %d succeeded", failed, renamed)
	}

	return nil
}

func listVideos(dirPath string, recursive bool) ([]string, error) {
	var paths []string

	if recursive {
		err := filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".mp4") {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", dirPath, err)
		}
		return paths, nil
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dirPath, err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.EqualFold(filepath.Ext(entry.Name()), ".mp4") {
			paths = append(paths, filepath.Join(dirPath, entry.Name()))
		}
	}
	return paths, nil
}
