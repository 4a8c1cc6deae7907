package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DownloadJob represents one unit of work: a single video whose audio track
// is fetched, transcoded and delivered to a chat.
type DownloadJob struct {
	ID            string
	URL           string
	SequenceIndex int // 1-based playlist position, 0 for single videos
	Status        JobStatus
	Title         string    // video title, filled in after fetch
	LastError     string    // last error message if any
	StartedAt     time.Time // when the job was created
	FinishedAt    time.Time // when the job reached a terminal state
}

// NewJob creates a pending job with a unique identifier. The identifier also
// names the job's private staging directory, so two jobs can never collide on
// disk regardless of their video titles.
func NewJob(url string, sequenceIndex int) *DownloadJob {
	return &DownloadJob{
		ID:            uuid.NewString(),
		URL:           url,
		SequenceIndex: sequenceIndex,
		Status:        JobStatusPending,
		StartedAt:     time.Now(),
	}
}

// HasSequence reports whether the job originated from a playlist position.
func (j *DownloadJob) HasSequence() bool {
	return j.SequenceIndex > 0
}

// FilenamePrefix returns the zero-padded ordinal prefix used to keep
// playlist-derived files in source order, or an empty string for single
// videos.
func (j *DownloadJob) FilenamePrefix() string {
	if j.SequenceIndex <= 0 {
		return ""
	}
	return fmt.Sprintf("%02d - ", j.SequenceIndex)
}

// GetDisplayTitle returns the video title when known, falling back to the
// source URL.
func (j *DownloadJob) GetDisplayTitle() string {
	if j.Title != "" && !strings.HasPrefix(j.Title, "http") {
		return j.Title
	}
	return j.URL
}

// FetchResult is a downloaded, transcoded audio file staged on local disk.
//
// The result owns its staging directory: Dir is private to the job that
// produced it and is removed exactly once after the delivery attempt
// completes, success or failure.
type FetchResult struct {
	Path     string // absolute or staging-relative path to the audio file
	Dir      string // the job's private staging directory containing Path
	Title    string // video title for the audio caption
	Duration int    // track length in seconds, 0 if unknown
}
