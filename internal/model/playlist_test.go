package model

import "testing"

func TestPlaylist_Size(t *testing.T) {
	playlist := &Playlist{
		ID:  "PL123",
		URL: "https://youtube.com/playlist?list=PL123",
		Items: []PlaylistItem{
			{VideoID: "aaaaaaaaaaa", Title: "First", URL: "https://www.youtube.com/watch?v=aaaaaaaaaaa"},
			{VideoID: "bbbbbbbbbbb", Title: "Second", URL: "https://www.youtube.com/watch?v=bbbbbbbbbbb"},
		},
	}

	if playlist.Size() != 2 {
		t.Errorf("Expected size 2, got %d", playlist.Size())
	}

	if playlist.IsEmpty() {
		t.Error("Playlist with items should not be empty")
	}
}

func TestPlaylist_IsEmpty(t *testing.T) {
	playlist := &Playlist{ID: "PL123"}

	if !playlist.IsEmpty() {
		t.Error("Playlist without items should be empty")
	}

	if playlist.Size() != 0 {
		t.Errorf("Expected size 0, got %d", playlist.Size())
	}
}

func TestPlaylist_OrderPreserved(t *testing.T) {
	playlist := &Playlist{}
	for _, id := range []string{"first000000", "second00000", "third000000"} {
		playlist.Items = append(playlist.Items, PlaylistItem{VideoID: id})
	}

	expected := []string{"first000000", "second00000", "third000000"}
	for i, item := range playlist.Items {
		if item.VideoID != expected[i] {
			t.Errorf("Item %d = %s, expected %s", i, item.VideoID, expected[i])
		}
	}
}
