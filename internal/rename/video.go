package rename

import (
	"strings"
	"time"

	"github.com/jacobcui/media-tools/internal/media"
)

// creation_time tags show up in a few shapes depending on the muxer
var creationLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// VideoDate derives a video's capture date from its container
// creation_time tag, falling back to file modification time when the
// tag is missing or unparseable.
func VideoDate(path string) (string, error) {
	tag, err := media.CreationTag(path)
	if err != nil {
		return "", err
	}

	if tag != "" {
		if date, ok := parseCreationTag(tag); ok {
			return date, nil
		}
	}

	return ModTimeDate(path, LayoutDashed)
}

// parseCreationTag normalizes a container creation_time value, dropping
// fractional seconds and the zone suffix before parsing.
func parseCreationTag(tag string) (string, bool) {
	trimmed := strings.SplitN(tag, ".", 2)[0]
	trimmed = strings.TrimSuffix(trimmed, "Z")
	for _, layout := range creationLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.Format(LayoutDashed), true
		}
	}
	return "", false
}
