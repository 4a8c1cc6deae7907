package telegram

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected RequestKind
	}{
		{
			name:     "start command",
			text:     "/start",
			expected: KindStart,
		},
		{
			name:     "playlist URL",
			text:     "https://youtube.com/playlist?list=PL123",
			expected: KindPlaylist,
		},
		{
			name:     "playlist URL with www",
			text:     "https://www.youtube.com/playlist?list=PLabc_-123",
			expected: KindPlaylist,
		},
		{
			name:     "playlist URL without scheme",
			text:     "youtube.com/playlist?list=PL123",
			expected: KindPlaylist,
		},
		{
			name:     "video watch URL",
			text:     "https://youtube.com/watch?v=dQw4w9WgXcQ",
			expected: KindVideo,
		},
		{
			name:     "video watch URL with www",
			text:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			expected: KindVideo,
		},
		{
			name:     "short youtu.be URL",
			text:     "https://youtu.be/dQw4w9WgXcQ",
			expected: KindVideo,
		},
		{
			name:     "watch URL with list parameter is still a video",
			text:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PL123",
			expected: KindVideo,
		},
		{
			name:     "surrounding whitespace is trimmed",
			text:     "  https://youtu.be/dQw4w9WgXcQ \n",
			expected: KindVideo,
		},
		{
			name:     "video ID too short",
			text:     "https://youtube.com/watch?v=short",
			expected: KindUnknown,
		},
		{
			name:     "plain text",
			text:     "hello there",
			expected: KindUnknown,
		},
		{
			name:     "unrelated URL",
			text:     "https://example.com/watch?v=dQw4w9WgXcQ",
			expected: KindUnknown,
		},
		{
			name:     "empty message",
			text:     "",
			expected: KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Classify(tt.text); result != tt.expected {
				t.Errorf("Classify(%q) = %v, expected %v", tt.text, result, tt.expected)
			}
		})
	}
}
