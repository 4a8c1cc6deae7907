package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ytget/yt-audio-bot/internal/model"
)

// AudioSink uploads staged audio files through the Telegram Bot API. It
// implements deliver.Sink.
type AudioSink struct {
	api *tgbotapi.BotAPI
}

// NewAudioSink creates a sink bound to an authorized bot client
func NewAudioSink(api *tgbotapi.BotAPI) *AudioSink {
	return &AudioSink{api: api}
}

// Deliver uploads the staged file as an audio attachment with its title.
// Success means Telegram acknowledged the upload.
func (s *AudioSink) Deliver(ctx context.Context, chatID int64, res *model.FetchResult) error {
	audio := tgbotapi.NewAudio(chatID, tgbotapi.FilePath(res.Path))
	audio.Title = res.Title
	if res.Duration > 0 {
		audio.Duration = res.Duration
	}
	if _, err := s.api.Send(audio); err != nil {
		return fmt.Errorf("failed to send audio to chat %d: %w", chatID, err)
	}
	return nil
}

// Notify sends a plain text message to the chat
func (s *AudioSink) Notify(ctx context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := s.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send message to chat %d: %w", chatID, err)
	}
	return nil
}
