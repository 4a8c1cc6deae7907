package fetch

import (
	"context"
	"fmt"
	"strings"

	ytdlpv2 "github.com/ytget/ytdlp/v2"

	"github.com/ytget/yt-audio-bot/internal/model"
)

// URL parameters and separators
const (
	PlaylistURLParam = "list="
	ParamSeparator   = "&"
)

// URL templates
const (
	VideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// Enumerate resolves playlist membership without downloading anything: one
// network round-trip yielding item URLs in source playlist order.
func (s *Service) Enumerate(ctx context.Context, playlistURL string) (*model.Playlist, error) {
	playlistID := ExtractPlaylistID(playlistURL)
	if playlistID == "" {
		return nil, fmt.Errorf("could not extract playlist ID from URL: %s", playlistURL)
	}

	ctx, cancel := context.WithTimeout(ctx, s.enumerateTimeout)
	defer cancel()

	d := ytdlpv2.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	playlist := &model.Playlist{
		ID:    playlistID,
		URL:   playlistURL,
		Items: make([]model.PlaylistItem, 0, len(items)),
	}
	for _, it := range items {
		playlist.Items = append(playlist.Items, model.PlaylistItem{
			VideoID: it.VideoID,
			Title:   it.Title,
			URL:     fmt.Sprintf(VideoURLTemplate, it.VideoID),
		})
	}
	return playlist, nil
}

// ExtractPlaylistID extracts the playlist ID from various URL formats:
//   - https://www.youtube.com/playlist?list=PLAYLIST_ID
//   - https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID
//   - https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID&index=1
func ExtractPlaylistID(url string) string {
	if !strings.Contains(url, PlaylistURLParam) {
		return ""
	}
	parts := strings.Split(url, PlaylistURLParam)
	if len(parts) < 2 {
		return ""
	}
	playlistID := parts[1]
	if strings.Contains(playlistID, ParamSeparator) {
		playlistID = strings.Split(playlistID, ParamSeparator)[0]
	}
	return playlistID
}
