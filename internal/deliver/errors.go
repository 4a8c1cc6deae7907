package deliver

import (
	"errors"
	"fmt"
)

// ErrEmptyPlaylist indicates playlist enumeration returned no items.
var ErrEmptyPlaylist = errors.New("playlist contains no items")

// FetchError wraps an extraction or transcoding failure for a single job.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch failed for %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// DeliveryError wraps a failed upload to the chat transport. The staged file
// has already been removed by the time this error is returned.
type DeliveryError struct {
	ChatID int64
	Err    error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery to chat %d failed: %v", e.ChatID, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// CleanupError wraps a failed removal of a job's staging directory. It is
// logged rather than returned when the delivery itself succeeded.
type CleanupError struct {
	Path string
	Err  error
}

func (e *CleanupError) Error() string {
	return fmt.Sprintf("cleanup of %s failed: %v", e.Path, e.Err)
}

func (e *CleanupError) Unwrap() error {
	return e.Err
}
