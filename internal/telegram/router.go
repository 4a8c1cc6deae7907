package telegram

import (
	"regexp"
	"strings"
)

// RequestKind classifies an inbound message
type RequestKind int

const (
	// KindUnknown means the message matched nothing and is ignored
	KindUnknown RequestKind = iota

	// KindStart is the /start command
	KindStart

	// KindPlaylist is a YouTube playlist URL
	KindPlaylist

	// KindVideo is a single YouTube video URL (watch or youtu.be form)
	KindVideo
)

var (
	playlistPattern = regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/playlist\?list=[A-Za-z0-9_-]+`)
	videoPattern    = regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/watch\?v=[A-Za-z0-9_-]{11}|(?:https?://)?youtu\.be/[A-Za-z0-9_-]{11}`)
)

// Classify decides how an inbound message should be handled. Playlist links
// are matched before video links; a watch URL that merely carries a list
// parameter is still a single video.
func Classify(text string) RequestKind {
	text = strings.TrimSpace(text)
	switch {
	case text == "/start":
		return KindStart
	case playlistPattern.MatchString(text):
		return KindPlaylist
	case videoPattern.MatchString(text):
		return KindVideo
	default:
		return KindUnknown
	}
}
