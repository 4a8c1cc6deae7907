package fetch

// Package fetch implements the media fetcher built on top of yt-dlp (via
// github.com/lrstanley/go-ytdlp) for audio extraction and transcoding, and
// github.com/ytget/ytdlp/v2 for flat playlist enumeration. Every download is
// staged in a private per-job directory owned by the returned FetchResult.
