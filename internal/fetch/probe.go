package fetch

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ffprobe invocation constants. yt-dlp's audio postprocessing already
// requires ffmpeg, so ffprobe is present wherever Fetch can succeed.
const (
	FFprobeCommand      = "ffprobe"
	FFprobeLogLevel     = "error"
	FFprobeShowEntries  = "format=duration"
	FFprobeOutputFormat = "default=noprint_wrappers=1:nokey=1"
)

// probeDuration returns the track length in whole seconds. A probe failure
// is not fatal to the job; callers treat the duration as optional metadata.
func probeDuration(ctx context.Context, path string) (int, error) {
	cmd := exec.CommandContext(ctx, FFprobeCommand,
		"-v", FFprobeLogLevel,
		"-show_entries", FFprobeShowEntries,
		"-of", FFprobeOutputFormat,
		path)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("failed to run ffprobe: %w", err)
	}
	return parseProbeOutput(string(output))
}

// parseProbeOutput converts ffprobe's duration line to whole seconds
func parseProbeOutput(output string) (int, error) {
	durationStr := strings.TrimSpace(output)
	duration, err := strconv.ParseFloat(durationStr, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration: %w", err)
	}
	return int(duration), nil
}
