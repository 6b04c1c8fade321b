// Package bookmarks persists name/URL pairs in a flat file, one record per
// line. The file is the single source of truth: every read goes back to disk
// so external edits are picked up on the next view.
package bookmarks

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Delimiter joins the two record fields. It is unlikely to appear in a
// bookmark name and must not change, existing bookmark files depend on it.
const Delimiter = "|||"

// DefaultFileName is the bookmark file name inside the data directory.
const DefaultFileName = "bookmarks.txt"

// ErrAlreadyExists is returned by Add when the URL is already bookmarked.
var ErrAlreadyExists = errors.New("bookmark already exists")

// Bookmark is a persisted name/URL pair. URLs are unique within the store;
// names may collide.
type Bookmark struct {
	Name string
	URL  string
}

// Store reads and writes the bookmark file at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store bound to the given file path. The file and its
// directory are created lazily on the first write.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the bookmark file path.
func (s *Store) Path() string {
	return s.path
}

// List returns all bookmarks in file order. A missing file is an empty store,
// not an error. Malformed lines are skipped.
func (s *Store) List() ([]Bookmark, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read bookmarks: %w", err)
	}

	var out []Bookmark
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, Delimiter)
		if len(parts) != 2 {
			continue
		}
		out = append(out, Bookmark{Name: parts[0], URL: parts[1]})
	}
	return out, nil
}

// Add appends a bookmark and persists it synchronously. URLs are matched by
// exact string comparison, no normalization; a duplicate returns
// ErrAlreadyExists.
func (s *Store) Add(name, url string) error {
	existing, err := s.List()
	if err != nil {
		return err
	}
	for _, b := range existing {
		if b.URL == url {
			return ErrAlreadyExists
		}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create bookmarks dir: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open bookmarks: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s%s%s\n", sanitizeName(name), Delimiter, url); err != nil {
		return fmt.Errorf("append bookmark: %w", err)
	}
	return nil
}

// Delete removes every record whose URL exactly matches. Deleting an absent
// URL, or deleting from a missing file, is a no-op.
func (s *Store) Delete(url string) error {
	existing, err := s.List()
	if err != nil {
		return err
	}

	kept := make([]Bookmark, 0, len(existing))
	for _, b := range existing {
		if b.URL != url {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(existing) {
		return nil
	}

	var sb strings.Builder
	for _, b := range kept {
		fmt.Fprintf(&sb, "%s%s%s\n", b.Name, Delimiter, b.URL)
	}
	if err := os.WriteFile(s.path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("rewrite bookmarks: %w", err)
	}
	return nil
}

// sanitizeName keeps the one-record-per-line format intact for names pasted
// with embedded line breaks.
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, "\n", " ")
	name = strings.ReplaceAll(name, "\r", " ")
	return strings.TrimSpace(name)
}
