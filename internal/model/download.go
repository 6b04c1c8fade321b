package model

import (
	"strings"
	"time"
)

// Download represents a single download request and its transfer state. A
// download is transient: it lives for the duration of the session and is
// never persisted.
type Download struct {
	ID            string
	URL           string
	SuggestedName string // filename hinted by the engine or the URL
	TargetPath    string // chosen save location, empty until accepted
	Status        DownloadStatus
	Received      int64  // bytes written so far
	Total         int64  // expected size in bytes, -1 if unknown
	LastError     string // last error message if any
	StartedAt     time.Time
	FinishedAt    time.Time
}

// Percent returns transfer progress in 0..100, or -1 when the total size is
// unknown.
func (d *Download) Percent() int {
	if d.Status == DownloadCompleted {
		return 100
	}
	if d.Total <= 0 {
		return -1
	}
	pct := int(float64(d.Received) / float64(d.Total) * 100)
	if pct > 100 {
		pct = 100
	}
	return pct
}

// DisplayName returns the suggested name, the target filename, or the URL in
// order of preference.
func (d *Download) DisplayName() string {
	if d.SuggestedName != "" {
		return d.SuggestedName
	}

	if d.TargetPath != "" {
		parts := strings.FieldsFunc(d.TargetPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			return parts[len(parts)-1]
		}
	}

	return d.URL
}
