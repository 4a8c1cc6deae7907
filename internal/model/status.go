package model

// JobStatus represents the lifecycle state of a download job.
//
// Transitions: Pending -> Fetching -> Fetched -> Delivering ->
// Delivered|Failed -> Cleaned. A job is attempted exactly once; there are no
// retry transitions.
type JobStatus string

const (
	// JobStatusPending means the job is created but not started
	JobStatusPending JobStatus = "Pending"

	// JobStatusFetching means the audio track is being downloaded and transcoded
	JobStatusFetching JobStatus = "Fetching"

	// JobStatusFetched means a staged file exists and is awaiting delivery
	JobStatusFetched JobStatus = "Fetched"

	// JobStatusDelivering means the staged file is being uploaded to the chat
	JobStatusDelivering JobStatus = "Delivering"

	// JobStatusDelivered means the chat transport acknowledged the upload
	JobStatusDelivered JobStatus = "Delivered"

	// JobStatusFailed means the fetch or the delivery failed
	JobStatusFailed JobStatus = "Failed"

	// JobStatusCleaned means the staged file was removed after delivery
	JobStatusCleaned JobStatus = "Cleaned"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true if the job is in an in-flight state
func (js JobStatus) IsActive() bool {
	return js == JobStatusFetching || js == JobStatusFetched || js == JobStatusDelivering
}

// IsFinished returns true if the job is in a terminal state (delivered,
// cleaned, or failed)
func (js JobStatus) IsFinished() bool {
	return js == JobStatusDelivered || js == JobStatusCleaned || js == JobStatusFailed
}
