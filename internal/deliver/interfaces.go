package deliver

import (
	"context"

	"github.com/ytget/yt-audio-bot/internal/model"
)

// Fetcher produces staged audio files and enumerates playlists. Implemented
// by fetch.Service.
type Fetcher interface {
	// Fetch downloads and transcodes the job's video into a staged audio
	// file. A result is returned if and only if its backing file exists.
	Fetch(ctx context.Context, job *model.DownloadJob) (*model.FetchResult, error)

	// Enumerate resolves a playlist URL into its items in source order
	// without downloading.
	Enumerate(ctx context.Context, playlistURL string) (*model.Playlist, error)
}

// Sink uploads staged audio files to a chat and carries plain-text notices.
// Implemented by telegram.AudioSink.
type Sink interface {
	// Deliver uploads the staged file as an audio attachment with a title.
	// Success means the transport acknowledged the upload.
	Deliver(ctx context.Context, chatID int64, res *model.FetchResult) error

	// Notify sends a plain text message to the chat. Best effort; failures
	// never abort the surrounding job sequence.
	Notify(ctx context.Context, chatID int64, text string) error
}
