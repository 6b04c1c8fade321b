package model

import "testing"

func TestSession_OpenSetsCurrent(t *testing.T) {
	s := NewSession()

	if s.Current() != nil {
		t.Fatal("empty session should have no current tab")
	}

	first := s.Open("https://duckduckgo.com/", "Homepage")
	if s.Current() == nil || s.Current().ID != first {
		t.Errorf("expected first opened tab to be current")
	}

	second := s.Open("https://example.com/", "Blank")
	if s.Current().ID != second {
		t.Errorf("expected newly opened tab to be current")
	}

	if s.Len() != 2 {
		t.Errorf("expected 2 tabs, got %d", s.Len())
	}
}

func TestSession_LastTabNeverCloses(t *testing.T) {
	s := NewSession()
	only := s.Open("https://duckduckgo.com/", "Homepage")

	s.Close(only)

	if s.Len() != 1 {
		t.Fatalf("sole tab must survive Close, got %d tabs", s.Len())
	}
	if s.Current() == nil || s.Current().ID != only {
		t.Error("sole tab must remain current after suppressed Close")
	}
}

func TestSession_CloseCurrentSelectsFormerIndex(t *testing.T) {
	s := NewSession()
	a := s.Open("https://a.test/", "A")
	b := s.Open("https://b.test/", "B")
	c := s.Open("https://c.test/", "C")

	s.SetCurrent(b)
	s.Close(b)

	// The tab that took b's index position becomes current.
	if got := s.Current().ID; got != c {
		t.Errorf("expected %s to be current, got %s", c, got)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 tabs, got %d", s.Len())
	}
	_ = a
}

func TestSession_CloseLastPositionSelectsNewLast(t *testing.T) {
	s := NewSession()
	a := s.Open("https://a.test/", "A")
	b := s.Open("https://b.test/", "B")

	// b is current and last; closing it falls back to the new last tab.
	s.Close(b)

	if got := s.Current().ID; got != a {
		t.Errorf("expected %s to be current, got %s", a, got)
	}
}

func TestSession_ClosePrecedingTabKeepsCurrent(t *testing.T) {
	s := NewSession()
	a := s.Open("https://a.test/", "A")
	b := s.Open("https://b.test/", "B")

	s.SetCurrent(b)
	s.Close(a)

	if got := s.Current().ID; got != b {
		t.Errorf("expected %s to stay current, got %s", b, got)
	}
}

func TestSession_SetCurrentUnknownIsNoop(t *testing.T) {
	s := NewSession()
	a := s.Open("https://a.test/", "A")

	s.SetCurrent("no-such-tab")

	if got := s.Current().ID; got != a {
		t.Errorf("unknown SetCurrent must not change the current tab")
	}
}

func TestSession_ExactlyOneCurrentAfterMutations(t *testing.T) {
	s := NewSession()
	ids := []string{
		s.Open("https://a.test/", "A"),
		s.Open("https://b.test/", "B"),
		s.Open("https://c.test/", "C"),
		s.Open("https://d.test/", "D"),
	}

	s.SetCurrent(ids[1])
	s.Close(ids[3])
	s.Close(ids[0])
	s.SetCurrent(ids[2])
	s.Close(ids[2])

	if s.Len() == 0 {
		t.Fatal("session unexpectedly empty")
	}
	cur := s.Current()
	if cur == nil {
		t.Fatal("non-empty session must have a current tab")
	}
	matches := 0
	for _, tab := range s.Tabs() {
		if tab.ID == cur.ID {
			matches++
		}
	}
	if matches != 1 {
		t.Errorf("current tab appears %d times in the tab list", matches)
	}
}

func TestSession_StaleUpdatesIgnored(t *testing.T) {
	s := NewSession()
	a := s.Open("https://a.test/", "A")
	b := s.Open("https://b.test/", "B")

	s.Close(a)

	// Late callbacks from the engine behind the closed tab must neither
	// panic nor resurrect it.
	s.SetTitle(a, "Ghost")
	s.SetProgress(a, 50)
	s.SetURL(a, "https://ghost.test/")
	s.SetLoading(a, true)

	if s.Len() != 1 {
		t.Fatalf("stale update resurrected a tab: %d tabs", s.Len())
	}
	if s.Get(a) != nil {
		t.Error("closed tab still reachable")
	}
	if s.Current().ID != b {
		t.Error("current tab changed by stale update")
	}
}

func TestSession_ProgressResetAndCompletion(t *testing.T) {
	s := NewSession()
	id := s.Open("https://a.test/", "A")

	s.SetProgress(id, 0)
	if tab := s.Get(id); !tab.Loading || tab.Progress != 0 {
		t.Errorf("progress 0 should mark the tab loading")
	}

	s.SetProgress(id, 100)
	if tab := s.Get(id); tab.Loading || tab.Progress != 100 {
		t.Errorf("progress 100 should clear the loading flag")
	}

	s.SetProgress(id, 250)
	if tab := s.Get(id); tab.Progress != 100 {
		t.Errorf("progress must be clamped to 100, got %d", tab.Progress)
	}
}

func TestTab_DisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"", DefaultTabTitle},
		{"Example Domain", "Example Domain"},
	}

	for _, test := range tests {
		tab := &Tab{Title: test.title}
		if got := tab.DisplayTitle(); got != test.expected {
			t.Errorf("DisplayTitle() with title=%q = %q, expected %q", test.title, got, test.expected)
		}
	}
}
