package media

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"time"

	ffmpegbin "github.com/jacobcui/media-tools/internal/ffmpeg"
)

// JSON output from ffprobe
type probeOutput struct {
	Format struct {
		Duration string            `json:"duration"`
		Tags     map[string]string `json:"tags"`
	} `json:"format"`
	Streams []struct {
		Tags map[string]string `json:"tags"`
	} `json:"streams"`
}

func probe(filePath string) (*probeOutput, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, filePath)
	}

	ffprobePath, err := ffmpegbin.FFprobePath()
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(ffprobePath,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		filePath,
	)

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	var result probeOutput
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	return &result, nil
}

// Duration probes the total duration of an audio or video file.
func Duration(filePath string) (time.Duration, error) {
	result, err := probe(filePath)
	if err != nil {
		return 0, err
	}

	var seconds float64
	if _, err := fmt.Sscanf(result.Format.Duration, "%f", &seconds); err != nil {
		return 0, fmt.Errorf("no duration metadata: %w", err)
	}

	return time.Duration(seconds * float64(time.Second)), nil
}

// CreationTag returns the container's creation_time tag, looking at the
// format tags first and then each stream. Empty when the container
// carries no creation date.
func CreationTag(filePath string) (string, error) {
	result, err := probe(filePath)
	if err != nil {
		return "", err
	}

	if v := result.Format.Tags["creation_time"]; v != "" {
		return v, nil
	}
	for _, stream := range result.Streams {
		if v := stream.Tags["creation_time"]; v != "" {
			return v, nil
		}
	}

	return "", nil
}
