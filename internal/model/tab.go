package model

// DefaultTabTitle is shown until the engine reports a page title.
const DefaultTabTitle = "New Tab"

// Tab is one open page within the session.
type Tab struct {
	ID       string
	URL      string
	Title    string
	Progress int // 0 to 100
	Loading  bool
}

// DisplayTitle returns the page title, falling back to the placeholder for
// tabs that have not reported one yet.
func (t *Tab) DisplayTitle() string {
	if t.Title == "" {
		return DefaultTabTitle
	}
	return t.Title
}
