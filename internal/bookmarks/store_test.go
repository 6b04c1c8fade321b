package bookmarks

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "bookmarks.txt"))
}

func TestStore_ListMissingFile(t *testing.T) {
	s := newTestStore(t)

	got, err := s.List()
	if err != nil {
		t.Fatalf("List() on missing file returned error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty list, got %d entries", len(got))
	}
}

func TestStore_AddListRoundTrip(t *testing.T) {
	s := newTestStore(t)

	want := []Bookmark{
		{Name: "DuckDuckGo", URL: "https://duckduckgo.com/"},
		{Name: "Example", URL: "http://example.com"},
		{Name: "Go", URL: "https://go.dev/"},
	}
	for _, b := range want {
		if err := s.Add(b.Name, b.URL); err != nil {
			t.Fatalf("Add(%q, %q) failed: %v", b.Name, b.URL, err)
		}
	}

	got, err := s.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d bookmarks, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bookmark %d = %+v, expected %+v (insertion order must hold)", i, got[i], want[i])
		}
	}
}

func TestStore_AddDuplicateURL(t *testing.T) {
	s := newTestStore(t)

	if err := s.Add("A", "http://x.com"); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}

	err := s.Add("B", "http://x.com")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("second Add = %v, expected ErrAlreadyExists", err)
	}

	got, _ := s.List()
	if len(got) != 1 {
		t.Fatalf("expected 1 bookmark after duplicate Add, got %d", len(got))
	}
	if got[0].Name != "A" {
		t.Errorf("duplicate Add must keep the first entry, got name %q", got[0].Name)
	}
}

func TestStore_AddAllowsNameCollisions(t *testing.T) {
	s := newTestStore(t)

	if err := s.Add("Same", "https://a.test/"); err != nil {
		t.Fatal(err)
	}
	if err := s.Add("Same", "https://b.test/"); err != nil {
		t.Fatalf("name collision must be allowed: %v", err)
	}

	got, _ := s.List()
	if len(got) != 2 {
		t.Errorf("expected 2 bookmarks, got %d", len(got))
	}
}

func TestStore_DeleteAbsentIsNoop(t *testing.T) {
	s := newTestStore(t)

	if err := s.Delete("http://notthere.com"); err != nil {
		t.Fatalf("Delete on missing file returned error: %v", err)
	}

	if err := s.Add("A", "https://a.test/"); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete("http://notthere.com"); err != nil {
		t.Fatalf("Delete of absent URL returned error: %v", err)
	}

	got, _ := s.List()
	if len(got) != 1 {
		t.Errorf("Delete of absent URL changed the store: %d entries", len(got))
	}
}

func TestStore_DeleteRemovesAllMatches(t *testing.T) {
	s := newTestStore(t)

	if err := s.Add("A", "https://a.test/"); err != nil {
		t.Fatal(err)
	}
	if err := s.Add("B", "https://b.test/"); err != nil {
		t.Fatal(err)
	}
	if err := s.Add("C", "https://c.test/"); err != nil {
		t.Fatal(err)
	}

	if err := s.Delete("https://b.test/"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	got, _ := s.List()
	if len(got) != 2 {
		t.Fatalf("expected 2 bookmarks after delete, got %d", len(got))
	}
	if got[0].Name != "A" || got[1].Name != "C" {
		t.Errorf("delete disturbed surviving order: %+v", got)
	}
}

func TestStore_CreatesDirectoryOnFirstWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "bookmarks.txt")
	s := NewStore(path)

	if err := s.Add("A", "https://a.test/"); err != nil {
		t.Fatalf("Add with missing directory failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("bookmark file was not created: %v", err)
	}
}

func TestStore_SkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.txt")
	raw := "Good|||https://a.test/\ngarbage line\n|||too|||many|||fields\n"
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := NewStore(path).List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Good" {
		t.Errorf("expected only the well-formed record, got %+v", got)
	}
}

func TestStore_NameWithLineBreaksStaysOneRecord(t *testing.T) {
	s := newTestStore(t)

	if err := s.Add("Multi\nLine\rName", "https://a.test/"); err != nil {
		t.Fatal(err)
	}

	got, _ := s.List()
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].Name != "Multi Line Name" {
		t.Errorf("expected sanitized name, got %q", got[0].Name)
	}
}
