package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"

	"github.com/ytget/yt-audio-bot/internal/config"
	"github.com/ytget/yt-audio-bot/internal/deliver"
	"github.com/ytget/yt-audio-bot/internal/fetch"
	"github.com/ytget/yt-audio-bot/internal/model"
	"github.com/ytget/yt-audio-bot/internal/platform"
	"github.com/ytget/yt-audio-bot/internal/telegram"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	log.Printf("yt-audio-bot v%s starting...", version)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	settings := config.NewSettings()

	token := settings.APIToken()
	if token == "" {
		log.Fatalf("%s is not set", config.KeyAPIToken)
	}

	stagingDir := settings.DownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(stagingDir); err != nil {
		log.Fatalf("Failed to create staging dir %s: %v", stagingDir, err)
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Fatalf("Failed to create bot API client: %v", err)
	}
	log.Printf("Authorized on account @%s", api.Self.UserName)

	fetcher := fetch.NewService(stagingDir)
	fetcher.SetAudioQuality(settings.AudioQuality())
	fetcher.SetFetchTimeout(settings.FetchTimeout())

	sink := telegram.NewAudioSink(api)

	core := deliver.NewService(fetcher, sink, settings.ItemDelay())
	core.SetUpdateCallback(func(job *model.DownloadJob) {
		if job.Status == model.JobStatusFailed {
			log.Printf("Job %s (%s) failed: %s", job.ID, job.GetDisplayTitle(), job.LastError)
			return
		}
		log.Printf("Job %s (%s): %s", job.ID, job.GetDisplayTitle(), job.Status)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bot := telegram.NewBot(api, core, sink)
	bot.Run(ctx)
}
