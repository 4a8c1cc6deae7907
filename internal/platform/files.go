package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// AudioFileExtension is the extension produced by the transcoding step.
const AudioFileExtension = ".mp3"

// Extensions of transient files yt-dlp leaves behind mid-download.
var SkippedExtensions = []string{".part", ".ytdl", ".webp", ".jpg"}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// JobDir creates and returns the private staging subdirectory for a job.
// Scoping every job to its own directory keeps concurrent downloads from
// colliding on title-derived filenames and makes cleanup a single RemoveAll.
func JobDir(stagingDir, jobID string) (string, error) {
	if jobID == "" {
		return "", fmt.Errorf("empty job ID")
	}
	dir := filepath.Join(stagingDir, jobID)
	if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
		return "", fmt.Errorf("failed to create job dir %s: %w", dir, err)
	}
	return dir, nil
}

// FindAudioFile returns the transcoded audio file inside a job directory.
// The postprocessor renames the download after extraction, so the final
// filename is discovered rather than predicted from the output template.
func FindAudioFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read job dir %s: %w", dir, err)
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if isTransientFile(name) {
			continue
		}
		if strings.EqualFold(filepath.Ext(name), AudioFileExtension) {
			candidates = append(candidates, filepath.Join(dir, name))
		}
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("no audio file found in %s", dir)
	}

	// Deterministic pick if more than one file survived
	sort.Strings(candidates)
	return candidates[0], nil
}

// isTransientFile reports whether a filename belongs to an in-progress
// download or a thumbnail sidecar rather than the finished track.
func isTransientFile(name string) bool {
	for _, ext := range SkippedExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
