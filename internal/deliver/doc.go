package deliver

// Package deliver implements the download-and-deliver orchestration core: it
// sequences fetch, upload and cleanup for single videos, and drives playlist
// expansion into an ordered sequence of single-item jobs with rate-limited
// spacing between them. Item failures are contained at the item boundary and
// reported to the requesting chat.
