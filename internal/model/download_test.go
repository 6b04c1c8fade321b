package model

import "testing"

func TestDownload_Percent(t *testing.T) {
	tests := []struct {
		status   DownloadStatus
		received int64
		total    int64
		expected int
	}{
		{DownloadAccepted, 0, -1, -1},
		{DownloadAccepted, 512, 0, -1},
		{DownloadAccepted, 50, 200, 25},
		{DownloadAccepted, 200, 200, 100},
		{DownloadAccepted, 400, 200, 100},
		{DownloadCompleted, 0, -1, 100},
	}

	for _, test := range tests {
		d := &Download{Status: test.status, Received: test.received, Total: test.total}
		if got := d.Percent(); got != test.expected {
			t.Errorf("Percent() with received=%d total=%d status=%s = %d, expected %d",
				test.received, test.total, test.status, got, test.expected)
		}
	}
}

func TestDownload_DisplayName(t *testing.T) {
	tests := []struct {
		suggested string
		target    string
		url       string
		expected  string
	}{
		{"report.pdf", "/home/u/Downloads/report.pdf", "https://x.test/report.pdf", "report.pdf"},
		{"", "/home/u/Downloads/archive.zip", "https://x.test/dl", "archive.zip"},
		{"", "C:\\Users\\u\\archive.zip", "https://x.test/dl", "archive.zip"},
		{"", "", "https://x.test/dl", "https://x.test/dl"},
	}

	for _, test := range tests {
		d := &Download{SuggestedName: test.suggested, TargetPath: test.target, URL: test.url}
		if got := d.DisplayName(); got != test.expected {
			t.Errorf("DisplayName() with suggested=%q target=%q = %q, expected %q",
				test.suggested, test.target, got, test.expected)
		}
	}
}
