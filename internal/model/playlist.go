package model

// PlaylistItem is a single enumerated video in a playlist. Items carry only
// identity and ordering; downloading happens per item later.
type PlaylistItem struct {
	VideoID string
	Title   string
	URL     string
}

// Playlist is the transient result of enumerating a playlist URL. It exists
// only while a playlist request is expanded into per-item jobs and is never
// persisted. Items preserve source playlist order.
type Playlist struct {
	ID    string
	URL   string
	Items []PlaylistItem
}

// Size returns the number of enumerated items.
func (p *Playlist) Size() int {
	return len(p.Items)
}

// IsEmpty reports whether enumeration yielded no items.
func (p *Playlist) IsEmpty() bool {
	return len(p.Items) == 0
}
