package fetch

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/yt-audio-bot/internal/model"
	"github.com/ytget/yt-audio-bot/internal/platform"
)

// Timeout constants
const (
	DefaultFetchTimeout     = 10 * time.Minute
	DefaultEnumerateTimeout = 60 * time.Second
)

// Audio extraction settings
const (
	FormatSelector      = "bestaudio/best"
	AudioFormat         = "mp3"
	DefaultAudioQuality = "192K"
	OutputTemplate      = "%(title)s.%(ext)s"
)

// Service downloads and transcodes single videos via yt-dlp and enumerates
// playlists without downloading. Each fetch stages its output in a private
// per-job directory under stagingDir.
type Service struct {
	stagingDir       string
	quality          string
	fetchTimeout     time.Duration
	enumerateTimeout time.Duration
}

// NewService creates a new fetch service
func NewService(stagingDir string) *Service {
	return &Service{
		stagingDir:       stagingDir,
		quality:          DefaultAudioQuality,
		fetchTimeout:     DefaultFetchTimeout,
		enumerateTimeout: DefaultEnumerateTimeout,
	}
}

// SetAudioQuality sets the target audio quality (e.g. "192K")
func (s *Service) SetAudioQuality(quality string) {
	if quality != "" {
		s.quality = quality
	}
}

// SetFetchTimeout sets the per-item download and transcode deadline
func (s *Service) SetFetchTimeout(timeout time.Duration) {
	if timeout > 0 {
		s.fetchTimeout = timeout
	}
}

// Fetch downloads the best available audio for job.URL into the job's
// private staging directory, transcoded to MP3 with cover art and metadata
// tags embedded. On failure the partial staging directory is removed, so a
// FetchResult is returned if and only if its backing file exists.
func (s *Service) Fetch(ctx context.Context, job *model.DownloadJob) (*model.FetchResult, error) {
	jobDir, err := platform.JobDir(s.stagingDir, job.ID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	dl := ytdlp.New().
		Format(FormatSelector).
		NoPlaylist().
		ExtractAudio().
		AudioFormat(AudioFormat).
		AudioQuality(s.quality).
		EmbedThumbnail().
		EmbedMetadata().
		RestrictFilenames().
		ForceOverwrites().
		Output(filepath.Join(jobDir, job.FilenamePrefix()+OutputTemplate))

	result, err := dl.Run(ctx, job.URL)
	if err != nil {
		s.discard(jobDir)
		return nil, fmt.Errorf("yt-dlp failed for %s: %w", job.URL, err)
	}

	path, err := platform.FindAudioFile(jobDir)
	if err != nil {
		s.discard(jobDir)
		return nil, err
	}

	res := &model.FetchResult{
		Path:  path,
		Dir:   jobDir,
		Title: extractTitle(result, job.URL),
	}
	if duration, err := probeDuration(ctx, path); err == nil {
		res.Duration = duration
	}
	return res, nil
}

// extractTitle pulls the video title from yt-dlp's extracted info, falling
// back to the source URL
func extractTitle(result *ytdlp.Result, fallback string) string {
	if result == nil {
		return fallback
	}
	info, err := result.GetExtractedInfo()
	if err != nil || len(info) == 0 {
		return fallback
	}
	if info[0].Title != nil && *info[0].Title != "" {
		return *info[0].Title
	}
	return fallback
}

// discard removes a job directory that will never reach delivery
func (s *Service) discard(jobDir string) {
	if err := os.RemoveAll(jobDir); err != nil {
		log.Printf("Failed to discard job dir %s: %v", jobDir, err)
	}
}
