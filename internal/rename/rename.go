// Package rename derives capture dates for media files and renames
// them to a date-prefixed form.
package rename

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/jacobcui/media-tools/internal/media"
)

// ErrTargetExists reports a rename target that is already taken;
// existing files are never overwritten.
var ErrTargetExists = errors.New("target file already exists")

const (
	// LayoutDashed is the YYYY-MM-DD prefix used by the renamers.
	LayoutDashed = "2006-01-02"
	// LayoutCompact is the YYYYMMDD prefix used by the converter.
	LayoutCompact = "20060102"
)

// Purely structural: any leading digit run of the right shape counts,
// whether or not it is a real calendar date.
var datedPrefix = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}_|\d{8}_)`)

// IsDated reports whether a file name already carries a date prefix,
// meaning it has been processed before and should be skipped.
func IsDated(filename string) bool {
	return datedPrefix.MatchString(filepath.Base(filename))
}

// Plan is one pending rename: where the file is, the derived calendar
// date, and where it should end up.
type Plan struct {
	OriginalPath string
	Date         string
	NewPath      string
}

// NewPlan computes the date-prefixed target path next to the original.
func NewPlan(originalPath, date string) Plan {
	dir := filepath.Dir(originalPath)
	name := filepath.Base(originalPath)
	return Plan{
		OriginalPath: originalPath,
		Date:         date,
		NewPath:      filepath.Join(dir, date+"_"+name),
	}
}

// Apply performs the rename. It refuses to clobber an existing target.
func (p Plan) Apply() error {
	if _, err := os.Stat(p.NewPath); err == nil {
		return fmt.Errorf("%w: %s", ErrTargetExists, p.NewPath)
	}
	if err := os.Rename(p.OriginalPath, p.NewPath); err != nil {
		return fmt.Errorf("failed to rename %s: %w", p.OriginalPath, err)
	}
	return nil
}

// ModTimeDate formats the file's modification time with the given layout.
func ModTimeDate(path, layout string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", media.ErrInputNotFound, path)
	}
	return info.ModTime().Format(layout), nil
}

// ConvertedPath computes the converter's output path for a video:
// YYYYMMDD_<stem>.mp4 in the input's directory, dated by modification
// time.
func ConvertedPath(inputPath string) (string, error) {
	date, err := ModTimeDate(inputPath, LayoutCompact)
	if err != nil {
		return "", err
	}
	dir := filepath.Dir(inputPath)
	return filepath.Join(dir, date+"_"+media.Stem(inputPath)+".mp4"), nil
}
