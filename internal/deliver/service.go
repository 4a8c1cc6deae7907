package deliver

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/ytget/yt-audio-bot/internal/model"
)

// DefaultItemDelay is the minimum spacing between successive playlist item
// deliveries, protecting the fetch backend's implicit rate limits.
const DefaultItemDelay = 1 * time.Second

// Service is the orchestration core: it turns one chat request into one or
// more completed deliveries with deterministic ordering and staging cleanup.
// Playlist items are processed strictly one at a time; a later item never
// starts before the previous one has been delivered or failed.
type Service struct {
	fetcher  Fetcher
	sink     Sink
	limiter  *rate.Limiter
	onUpdate func(*model.DownloadJob) // callback for job status changes
}

// NewService creates a new orchestration service. itemDelay is the minimum
// spacing between successive item deliveries; non-positive values fall back
// to DefaultItemDelay. The limiter is shared across all requests, so
// concurrent chats also respect the backend spacing.
func NewService(fetcher Fetcher, sink Sink, itemDelay time.Duration) *Service {
	if itemDelay <= 0 {
		itemDelay = DefaultItemDelay
	}
	return &Service{
		fetcher: fetcher,
		sink:    sink,
		limiter: rate.NewLimiter(rate.Every(itemDelay), 1),
	}
}

// SetUpdateCallback sets the callback function for job status updates
func (s *Service) SetUpdateCallback(callback func(*model.DownloadJob)) {
	s.onUpdate = callback
}

// Summary reports the outcome of a playlist run.
type Summary struct {
	Total     int
	Delivered int
	Failed    int
}

// AllDelivered reports whether every enumerated item reached the chat.
func (sm *Summary) AllDelivered() bool {
	return sm.Failed == 0 && sm.Delivered == sm.Total
}

// DeliverSingle fetches one video's audio track and uploads it to the chat.
// sequenceIndex is the 1-based playlist position, or 0 for a standalone
// video; it only affects the output filename prefix.
//
// Once the fetcher has produced a file, the job's staging directory is
// removed on every exit path. A removal failure after successful delivery is
// logged as a CleanupError and does not change the job's outcome.
func (s *Service) DeliverSingle(ctx context.Context, chatID int64, sourceURL string, sequenceIndex int) error {
	job := model.NewJob(sourceURL, sequenceIndex)
	s.setStatus(job, model.JobStatusFetching)

	res, err := s.fetcher.Fetch(ctx, job)
	if err != nil {
		s.fail(job, err)
		return &FetchError{URL: sourceURL, Err: err}
	}
	job.Title = res.Title
	s.setStatus(job, model.JobStatusFetched)

	defer func() {
		if err := os.RemoveAll(res.Dir); err != nil {
			log.Printf("%v", &CleanupError{Path: res.Dir, Err: err})
			return
		}
		if job.Status == model.JobStatusDelivered {
			s.setStatus(job, model.JobStatusCleaned)
		}
	}()

	s.setStatus(job, model.JobStatusDelivering)
	if err := s.sink.Deliver(ctx, chatID, res); err != nil {
		s.fail(job, err)
		return &DeliveryError{ChatID: chatID, Err: err}
	}

	job.FinishedAt = time.Now()
	s.setStatus(job, model.JobStatusDelivered)
	return nil
}

// DeliverPlaylist expands a playlist URL into an ordered sequence of
// single-item jobs and delivers them strictly sequentially, waiting out the
// configured minimum delay between items. A failed item is reported to the
// chat and the run continues with the next item; only enumeration failures
// and empty playlists abort the whole request.
func (s *Service) DeliverPlaylist(ctx context.Context, chatID int64, playlistURL string) (*Summary, error) {
	playlist, err := s.fetcher.Enumerate(ctx, playlistURL)
	if err != nil {
		return nil, &FetchError{URL: playlistURL, Err: err}
	}
	if playlist.IsEmpty() {
		return nil, ErrEmptyPlaylist
	}

	summary := &Summary{Total: playlist.Size()}
	for i, item := range playlist.Items {
		if err := s.limiter.Wait(ctx); err != nil {
			return summary, err
		}

		index := i + 1
		if err := s.DeliverSingle(ctx, chatID, item.URL, index); err != nil {
			summary.Failed++
			log.Printf("Playlist item %d/%d failed: %v", index, summary.Total, err)
			s.notifyItemFailure(ctx, chatID, index, item)
			continue
		}
		summary.Delivered++
	}
	return summary, nil
}

// notifyItemFailure tells the requesting chat that one item was skipped
func (s *Service) notifyItemFailure(ctx context.Context, chatID int64, index int, item model.PlaylistItem) {
	name := item.Title
	if name == "" {
		name = item.URL
	}
	text := fmt.Sprintf("Couldn't process track %d (%s), skipping it.", index, name)
	if err := s.sink.Notify(ctx, chatID, text); err != nil {
		log.Printf("Failed to notify chat %d about item %d: %v", chatID, index, err)
	}
}

// setStatus advances the job state machine and fires the update callback
func (s *Service) setStatus(job *model.DownloadJob, status model.JobStatus) {
	job.Status = status
	if s.onUpdate != nil {
		s.onUpdate(job)
	}
}

// fail records a terminal failure on the job
func (s *Service) fail(job *model.DownloadJob, err error) {
	job.LastError = err.Error()
	job.FinishedAt = time.Now()
	s.setStatus(job, model.JobStatusFailed)
}
