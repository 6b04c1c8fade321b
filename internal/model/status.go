package model

// DownloadStatus represents the lifecycle state of a download.
type DownloadStatus string

const (
	// DownloadPending means the request arrived but the user has not picked
	// a save location yet
	DownloadPending DownloadStatus = "Pending"

	// DownloadAccepted means the user supplied a save path and the transfer
	// is running
	DownloadAccepted DownloadStatus = "Accepted"

	// DownloadCancelled means the user declined the request or aborted the
	// transfer
	DownloadCancelled DownloadStatus = "Cancelled"

	// DownloadCompleted means the file was written in full
	DownloadCompleted DownloadStatus = "Completed"

	// DownloadFailed means the transfer ended with an error
	DownloadFailed DownloadStatus = "Failed"
)

// String returns the string representation of DownloadStatus
func (ds DownloadStatus) String() string {
	return string(ds)
}

// IsActive returns true if the download still needs attention from the backend
func (ds DownloadStatus) IsActive() bool {
	return ds == DownloadPending || ds == DownloadAccepted
}

// IsTerminal returns true if the download reached a final state. Terminal
// downloads are reported exactly once and never retried.
func (ds DownloadStatus) IsTerminal() bool {
	return ds == DownloadCancelled || ds == DownloadCompleted || ds == DownloadFailed
}
