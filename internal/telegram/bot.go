package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ytget/yt-audio-bot/internal/deliver"
)

// DefaultUpdateTimeout is the long-poll timeout in seconds
const DefaultUpdateTimeout = 60

// User-facing messages
const (
	welcomeText      = "Send me a YouTube video or playlist URL, and I'll download the audio tracks for you!"
	ackVideoText     = "Downloading and converting audio. This may take a while..."
	ackPlaylistText  = "Downloading and converting playlist. This may take a while..."
	videoFailText    = "Sorry, I couldn't download that video."
	playlistFailText = "Sorry, I couldn't read that playlist."
)

// Orchestrator is the subset of the deliver service the bot drives
type Orchestrator interface {
	DeliverSingle(ctx context.Context, chatID int64, sourceURL string, sequenceIndex int) error
	DeliverPlaylist(ctx context.Context, chatID int64, playlistURL string) (*deliver.Summary, error)
}

// Notifier sends plain text messages to a chat
type Notifier interface {
	Notify(ctx context.Context, chatID int64, text string) error
}

// Bot receives inbound messages over long polling, classifies them, and
// drives the orchestration core. The chat client is an injected dependency
// rather than package state, so the routing logic is testable without a live
// transport.
type Bot struct {
	api           *tgbotapi.BotAPI
	core          Orchestrator
	notifier      Notifier
	updateTimeout int
}

// NewBot creates a bot around an authorized API client
func NewBot(api *tgbotapi.BotAPI, core Orchestrator, notifier Notifier) *Bot {
	return &Bot{
		api:           api,
		core:          core,
		notifier:      notifier,
		updateTimeout: DefaultUpdateTimeout,
	}
}

// Run polls for updates until the context is cancelled. Each message is
// handled on its own goroutine, so independent chats proceed concurrently
// while the core keeps every single request strictly sequential.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.updateTimeout

	updates := b.api.GetUpdatesChan(u)
	log.Printf("Bot running as @%s", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			go b.handleMessage(ctx, update.Message.Chat.ID, update.Message.Text)
		}
	}
}

// handleMessage routes one inbound message. Unrecognized text is ignored
// without touching the fetcher or the sink.
func (b *Bot) handleMessage(ctx context.Context, chatID int64, text string) {
	text = strings.TrimSpace(text)

	switch Classify(text) {
	case KindStart:
		b.notify(ctx, chatID, welcomeText)

	case KindPlaylist:
		b.notify(ctx, chatID, ackPlaylistText)
		summary, err := b.core.DeliverPlaylist(ctx, chatID, text)
		if err != nil {
			log.Printf("Playlist request failed for chat %d: %v", chatID, err)
			b.notify(ctx, chatID, playlistFailText)
			return
		}
		if !summary.AllDelivered() {
			b.notify(ctx, chatID, summaryText(summary))
		}

	case KindVideo:
		b.notify(ctx, chatID, ackVideoText)
		if err := b.core.DeliverSingle(ctx, chatID, text, 0); err != nil {
			log.Printf("Video request failed for chat %d: %v", chatID, err)
			b.notify(ctx, chatID, videoFailText)
		}
	}
}

// notify sends a text message, logging instead of failing the request when
// the transport rejects it
func (b *Bot) notify(ctx context.Context, chatID int64, text string) {
	if err := b.notifier.Notify(ctx, chatID, text); err != nil {
		log.Printf("Failed to notify chat %d: %v", chatID, err)
	}
}

// summaryText renders the end-of-playlist report for partially failed runs
func summaryText(summary *deliver.Summary) string {
	return fmt.Sprintf("Done: %d of %d tracks delivered.", summary.Delivered, summary.Total)
}
