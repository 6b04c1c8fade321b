package engine

import (
	"strings"
	"testing"
)

func TestParsePage_RelativeIconResolved(t *testing.T) {
	doc := `<html><head><title>T</title><link rel="icon" href="img/fav.png"></head><body>hi</body></html>`
	page := parsePage("https://example.com/a/b.html", strings.NewReader(doc))

	if page.IconURL != "https://example.com/a/img/fav.png" {
		t.Errorf("IconURL = %q", page.IconURL)
	}
	if page.Title != "T" {
		t.Errorf("Title = %q", page.Title)
	}
}

func TestParsePage_NoIcon(t *testing.T) {
	doc := `<html><head><title>T</title></head><body>hi</body></html>`
	page := parsePage("https://example.com/", strings.NewReader(doc))

	if page.IconURL != "" {
		t.Errorf("expected no icon, got %q", page.IconURL)
	}
}

func TestParsePage_BlockSpacing(t *testing.T) {
	doc := `<html><body><p>first</p><p>second</p></body></html>`
	page := parsePage("https://example.com/", strings.NewReader(doc))

	if !strings.Contains(page.Text, "first\nsecond") {
		t.Errorf("paragraphs should be line-separated, got %q", page.Text)
	}
}

func TestRenderable(t *testing.T) {
	tests := []struct {
		contentType string
		expected    bool
	}{
		{"text/html; charset=utf-8", true},
		{"text/plain", true},
		{"application/xhtml+xml", true},
		{"application/pdf", false},
		{"application/octet-stream", false},
		{"image/png", false},
		{"", true},
	}

	for _, test := range tests {
		if got := renderable(test.contentType); got != test.expected {
			t.Errorf("renderable(%q) = %v, expected %v", test.contentType, got, test.expected)
		}
	}
}
