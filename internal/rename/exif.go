package rename

import (
	"fmt"
	"os"

	"github.com/rwcarlsen/goexif/exif"
)

// ImageDate reads the capture date out of an image's EXIF block,
// preferring DateTimeOriginal and falling back to DateTime. An image
// without a usable EXIF date is not an error here; the caller decides
// whether to skip.
func ImageDate(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		// no EXIF block at all
		return "", nil
	}

	taken, err := x.DateTime()
	if err != nil {
		return "", nil
	}

	return taken.Format(LayoutDashed), nil
}
