package entity

import "time"

// DownloadState is the lifecycle of a download.
type DownloadState string

const (
	DownloadInProgress DownloadState = "in_progress"
	DownloadCompleted  DownloadState = "completed"
	DownloadFailed     DownloadState = "failed"
	DownloadCancelled  DownloadState = "cancelled"
)

// Download is a record in the downloads list. Records are keyed by ID;
// StartTime is data only.
type Download struct {
	ID            string        `json:"id"`
	URL           string        `json:"url"`
	Filename      string        `json:"filename"`
	Path          string        `json:"path,omitempty"`
	State         DownloadState `json:"state"`
	ReceivedBytes int64         `json:"received_bytes"`
	TotalBytes    int64         `json:"total_bytes"`
	StartTime     time.Time     `json:"start_time"`
}
