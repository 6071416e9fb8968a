package subtitle

import (
	"strings"
	"unicode"
)

// PlainText extracts the prose out of SRT text: index lines, timestamp
// lines and blank lines are dropped, the remaining lines are joined with
// single newlines. Timing is discarded on purpose; this is not a parser
// and never reconstructs cues.
func PlainText(srt string) string {
	var kept []string

	for _, line := range strings.Split(srt, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Contains(line, "-->") {
			continue
		}
		if isNumeric(line) {
			continue
		}
		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
