package model

import "github.com/google/uuid"

// Session owns the ordered collection of open tabs and tracks which one is
// current. The rendering engine behind each tab is referenced by ID only and
// never owned by the session.
//
// All methods must be called from the UI event loop goroutine; the session
// does no locking of its own. Mutators addressed at a tab that no longer
// exists are silent no-ops so that late engine callbacks for a closed tab
// cannot corrupt state.
type Session struct {
	tabs    []*Tab
	current int // index into tabs, -1 while empty
}

// NewSession creates an empty session with no current tab.
func NewSession() *Session {
	return &Session{current: -1}
}

// Open appends a new tab, makes it current, and returns its ID. Progress
// starts at zero and the title starts as the given label.
func (s *Session) Open(url, label string) string {
	t := &Tab{
		ID:    uuid.NewString(),
		URL:   url,
		Title: label,
	}
	s.tabs = append(s.tabs, t)
	s.current = len(s.tabs) - 1
	return t.ID
}

// Close removes the named tab. The sole remaining tab is never closable, so
// closing it is a no-op. When the closed tab was current, the tab that takes
// its former index position becomes current, or the new last tab if the
// closed one was last.
func (s *Session) Close(id string) {
	if len(s.tabs) <= 1 {
		return
	}
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.tabs = append(s.tabs[:i], s.tabs[i+1:]...)
	switch {
	case s.current > i:
		s.current--
	case s.current == i:
		if s.current >= len(s.tabs) {
			s.current = len(s.tabs) - 1
		}
	}
}

// SetCurrent switches the current tab. Unknown IDs are ignored.
func (s *Session) SetCurrent(id string) {
	if i := s.indexOf(id); i >= 0 {
		s.current = i
	}
}

// Current returns the current tab, or nil when the session is empty.
func (s *Session) Current() *Tab {
	if s.current < 0 || s.current >= len(s.tabs) {
		return nil
	}
	return s.tabs[s.current]
}

// Tabs returns the tabs in order. The slice is a copy; the tabs are not.
func (s *Session) Tabs() []*Tab {
	out := make([]*Tab, len(s.tabs))
	copy(out, s.tabs)
	return out
}

// Len returns the number of open tabs.
func (s *Session) Len() int {
	return len(s.tabs)
}

// Get returns the tab with the given ID, or nil.
func (s *Session) Get(id string) *Tab {
	if i := s.indexOf(id); i >= 0 {
		return s.tabs[i]
	}
	return nil
}

// IndexOf returns the position of the tab with the given ID, or -1.
func (s *Session) IndexOf(id string) int {
	return s.indexOf(id)
}

// At returns the tab at the given position, or nil when out of range.
func (s *Session) At(i int) *Tab {
	if i < 0 || i >= len(s.tabs) {
		return nil
	}
	return s.tabs[i]
}

// SetProgress records load progress for the named tab. Stale IDs are ignored.
func (s *Session) SetProgress(id string, pct int) {
	if t := s.Get(id); t != nil {
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		t.Progress = pct
		t.Loading = pct < 100
	}
}

// SetTitle records the engine-reported title for the named tab. Stale IDs are
// ignored.
func (s *Session) SetTitle(id, title string) {
	if t := s.Get(id); t != nil {
		t.Title = title
	}
}

// SetURL records the navigated URL for the named tab. Stale IDs are ignored.
func (s *Session) SetURL(id, url string) {
	if t := s.Get(id); t != nil {
		t.URL = url
	}
}

// SetLoading flips the loading flag for the named tab. Stale IDs are ignored.
func (s *Session) SetLoading(id string, loading bool) {
	if t := s.Get(id); t != nil {
		t.Loading = loading
	}
}

func (s *Session) indexOf(id string) int {
	for i, t := range s.tabs {
		if t.ID == id {
			return i
		}
	}
	return -1
}
