// Package progress reduces the key=value stream ffmpeg emits on its
// -progress channel to a completion percentage.
package progress

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"
)

// Func receives a completion percentage between 0 and 100.
type Func func(percent int)

// Tracker consumes one job's progress stream. It is not safe for
// reuse across jobs; build a new one per conversion.
type Tracker struct {
	total  time.Duration
	report Func
	last   int
}

// NewTracker creates a tracker for a job whose input runs for total.
// report may be nil, in which case updates are computed but discarded.
func NewTracker(total time.Duration, report Func) *Tracker {
	return &Tracker{total: total, report: report}
}

// Consume reads key=value lines until the stream ends. Only out_time_ms
// lines change the percentage; anything unrecognized or malformed is
// skipped. Stream end is not an error.
func (t *Tracker) Consume(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		t.handleLine(scanner.Text())
	}
	return scanner.Err()
}

func (t *Tracker) handleLine(line string) {
	parts := strings.Split(strings.TrimSpace(line), "=")
	if len(parts) != 2 || parts[0] != "out_time_ms" {
		return
	}

	// the value is microseconds of processed media time, despite the name
	micros, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return
	}

	if t.total <= 0 {
		return
	}

	seconds := micros / 1_000_000
	percent := int(seconds / t.total.Seconds() * 100)
	if percent > 100 {
		percent = 100
	}
	if percent < t.last {
		percent = t.last
	}
	t.last = percent

	if t.report != nil {
		t.report(percent)
	}
}

// Percent returns the last computed percentage.
func (t *Tracker) Percent() int {
	return t.last
}
