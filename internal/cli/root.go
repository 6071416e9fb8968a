package cli

import (
	"github.com/jacobcui/media-tools/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "media-tools",
	Short: "Personal media utilities",
	Long: `media-tools is a small collection of personal media utilities:

  subtitles      generate an SRT subtitle track for an audio/video file
  srt-to-text    reduce an SRT file to its plain prose
  convert        convert MOV files to MP4, renamed by capture date
  rename-images  rename images by their EXIF capture date
  rename-videos  rename MP4 files by their container creation date`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
